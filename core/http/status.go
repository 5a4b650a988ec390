package http

// Version is the HTTP protocol version carried on the status line
type Version int

const (
	// HTTP10 is the only version this server speaks: one request per
	// connection, framing by Content-Length alone
	HTTP10 Version = iota
)

// Raw returns the fixed wire form of the version
func (v Version) Raw() []byte {
	return []byte("HTTP/1.0")
}

// StatusCode is the closed set of statuses a response can carry
type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusBadRequest          StatusCode = 400
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
	StatusNotImplemented      StatusCode = 501
)

// Raw returns the fixed 3-digit ASCII form of the status code
func (s StatusCode) Raw() []byte {
	switch s {
	case StatusOK:
		return []byte("200")
	case StatusBadRequest:
		return []byte("400")
	case StatusNotFound:
		return []byte("404")
	case StatusInternalServerError:
		return []byte("500")
	case StatusNotImplemented:
		return []byte("501")
	default:
		return []byte("500")
	}
}

// StatusLine pairs the protocol version with a status code. The reason
// phrase is always empty, so the wire form carries a trailing space
// before CRLF.
type StatusLine struct {
	version Version
	code    StatusCode
}

// NewStatusLine binds the fixed HTTP/1.0 version to the given code
func NewStatusLine(code StatusCode) StatusLine {
	return StatusLine{
		version: HTTP10,
		code:    code,
	}
}

// Raw produces `<version> SP <code> SP CR LF`
func (l StatusLine) Raw() []byte {
	buf := make([]byte, 0, 16)
	buf = append(buf, l.version.Raw()...)
	buf = append(buf, ' ')
	buf = append(buf, l.code.Raw()...)
	buf = append(buf, ' ', '\r', '\n')
	return buf
}
