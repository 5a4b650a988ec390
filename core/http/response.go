package http

import "strconv"

// Response is a single HTTP/1.0 response: one status line, one header
// block, and an optional body. The status is fixed at construction; the
// body is the only mutable part.
type Response struct {
	statusLine StatusLine
	headers    Headers
	body       *Body
}

// NewResponse creates a response with empty headers and no body
func NewResponse(code StatusCode) *Response {
	return &Response{
		statusLine: NewStatusLine(code),
	}
}

// SetBody stores a copy of the body and derives the Content-Length and
// Content-Type (text/plain) headers from it. Calling it again replaces
// both the body and the derived headers.
func (r *Response) SetBody(body Body) {
	r.SetBodyWithType(body, PlainText)
}

// SetBodyWithType is SetBody with an explicit media type
func (r *Response) SetBodyWithType(body Body, mediaType MediaType) {
	r.headers.Set(ContentLength, strconv.Itoa(body.Len()))
	r.headers.Set(ContentType, mediaType.String())
	b := body.Clone()
	r.body = &b
}

// AddHeader appends an entry to the header block
func (r *Response) AddHeader(name HeaderName, value string) {
	r.headers.Add(name, value)
}

// Raw serializes the response: status line, header block with its blank
// line terminator, then the body bytes (empty when no body is set). The
// declared Content-Length is the only framing a receiver gets.
func (r *Response) Raw() []byte {
	statusLine := r.statusLine.Raw()
	headers := r.headers.Raw()

	size := len(statusLine) + len(headers)
	if r.body != nil {
		size += r.body.Len()
	}

	buf := make([]byte, 0, size)
	buf = append(buf, statusLine...)
	buf = append(buf, headers...)
	if r.body != nil {
		buf = append(buf, r.body.data...)
	}
	return buf
}

// Status returns the status code the response was constructed with
func (r *Response) Status() StatusCode {
	return r.statusLine.code
}

// Body returns a copy of the stored body, or nil when none is set
func (r *Response) Body() *Body {
	if r.body == nil {
		return nil
	}
	b := r.body.Clone()
	return &b
}
