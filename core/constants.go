package core

import (
	"errors"
	"time"
)

// Engine defaults
const (
	DefaultMaxConnections = 1024
	DefaultReadTimeout    = 10 * time.Second
	DefaultWriteTimeout   = 30 * time.Second

	// ReadBufferSize is the initial pooled buffer for a request
	ReadBufferSize = 4096

	// MaxRequestSize bounds header block plus body
	MaxRequestSize = 64 * 1024
)

// Error definitions
var (
	ErrServerClosed    = errors.New("server closed")
	ErrRequestTooLarge = errors.New("request too large")
)
