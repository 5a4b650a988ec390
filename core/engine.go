package core

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net"
	"strconv"
	"sync"
	"time"

	"golang.org/x/net/netutil"

	"github.com/searchktools/micro-http/core/http"
	"github.com/searchktools/micro-http/core/pools"
)

// Handler produces the response for a parsed request. The engine owns
// writing the bytes and closing the connection; handlers only build the
// Response value.
type Handler func(req *http.Request) *http.Response

// Engine is an HTTP/1.0 server: it accepts a connection, reads one
// request, writes one serialized response, and closes. No keep-alive,
// no pipelining.
type Engine struct {
	handler Handler

	maxConnections int
	readTimeout    time.Duration
	writeTimeout   time.Duration

	bytePool *pools.BytePool

	mu sync.Mutex
	ln net.Listener
}

// NewEngine creates an engine with default limits
func NewEngine() *Engine {
	return &Engine{
		maxConnections: DefaultMaxConnections,
		readTimeout:    DefaultReadTimeout,
		writeTimeout:   DefaultWriteTimeout,
		bytePool:       pools.NewBytePool(),
	}
}

// SetHandler registers the request handler. Must be called before the
// engine starts serving.
func (e *Engine) SetHandler(h Handler) {
	e.handler = h
}

// SetReadTimeout sets the per-connection read deadline
func (e *Engine) SetReadTimeout(d time.Duration) {
	e.readTimeout = d
}

// SetWriteTimeout sets the per-connection write deadline
func (e *Engine) SetWriteTimeout(d time.Duration) {
	e.writeTimeout = d
}

// SetMaxConnections caps concurrently served connections (0 disables
// the cap)
func (e *Engine) SetMaxConnections(n int) {
	e.maxConnections = n
}

// Run listens on addr and serves until Close
func (e *Engine) Run(addr string) error {
	lc := net.ListenConfig{Control: listenControl}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}
	return e.Serve(ln)
}

// Serve accepts connections from ln, one goroutine per connection
func (e *Engine) Serve(ln net.Listener) error {
	if e.maxConnections > 0 {
		ln = netutil.LimitListener(ln, e.maxConnections)
	}

	e.mu.Lock()
	e.ln = ln
	e.mu.Unlock()

	log.Printf("HTTP/1.0 server listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return ErrServerClosed
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return err
		}
		go e.serveConn(conn)
	}
}

// Close stops the listener; in-flight connections finish on their own
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ln == nil {
		return nil
	}
	return e.ln.Close()
}

func (e *Engine) serveConn(conn net.Conn) {
	defer conn.Close()

	var resp *http.Response
	req, err := e.readRequest(conn)
	if err != nil {
		resp = errorResponse(http.StatusBadRequest, "bad request")
	} else {
		resp = e.dispatch(req)
		http.ReleaseRequest(req)
	}

	if e.writeTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(e.writeTimeout))
	}
	if _, err := conn.Write(resp.Raw()); err != nil {
		log.Printf("write to %s failed: %v", conn.RemoteAddr(), err)
	}
}

var crlfCRLF = []byte("\r\n\r\n")

// readRequest reads one request from the connection: the header block
// into a pooled buffer, then the remainder of the declared body.
func (e *Engine) readRequest(conn net.Conn) (*http.Request, error) {
	buf := e.bytePool.Get(ReadBufferSize)
	defer func() { e.bytePool.Put(buf) }()

	if e.readTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(e.readTimeout))
	}

	total := 0
	headerEnd := -1
	for headerEnd == -1 {
		if total == len(buf) {
			if total >= MaxRequestSize {
				return nil, ErrRequestTooLarge
			}
			bigger := e.bytePool.Get(min(total*2, MaxRequestSize))
			copy(bigger, buf[:total])
			e.bytePool.Put(buf)
			buf = bigger
		}

		n, err := conn.Read(buf[total:])
		if n > 0 {
			total += n
			if idx := bytes.Index(buf[:total], crlfCRLF); idx != -1 {
				headerEnd = idx + len(crlfCRLF)
			}
		}
		if err != nil && headerEnd == -1 {
			return nil, err
		}
	}

	req, err := http.ParseRequest(buf[:total])
	if err != nil {
		return nil, err
	}

	// Read the rest of the body when Content-Length says more is coming
	if want, convErr := strconv.Atoi(req.ContentLength); convErr == nil && want > 0 {
		if want > MaxRequestSize {
			http.ReleaseRequest(req)
			return nil, ErrRequestTooLarge
		}
		if len(req.Body) > want {
			req.Body = req.Body[:want]
		}
		for len(req.Body) < want {
			n, err := conn.Read(buf[:min(len(buf), want-len(req.Body))])
			if n > 0 {
				req.Body = append(req.Body, buf[:n]...)
			}
			if err != nil {
				http.ReleaseRequest(req)
				return nil, err
			}
		}
	}

	return req, nil
}

// dispatch invokes the handler, converting panics and nil results into
// 500 responses
func (e *Engine) dispatch(req *http.Request) (resp *http.Response) {
	if e.handler == nil {
		return errorResponse(http.StatusNotImplemented, "not implemented")
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("handler panic on %s %s: %v", req.Method, req.Path, r)
			resp = errorResponse(http.StatusInternalServerError, "internal server error")
		}
	}()

	resp = e.handler(req)
	if resp == nil {
		resp = errorResponse(http.StatusInternalServerError, "internal server error")
	}
	return resp
}

// errorResponse builds a plain-text response for a status code
func errorResponse(code http.StatusCode, message string) *http.Response {
	resp := http.NewResponse(code)
	resp.SetBody(http.NewBody(message))
	return resp
}
