package http

// Body holds a response payload. Reads copy: callers never get a view
// of the stored bytes.
type Body struct {
	data []byte
}

// NewBody creates a body from text
func NewBody(s string) Body {
	return Body{data: []byte(s)}
}

// NewBodyFromBytes creates a body from a copy of b
func NewBodyFromBytes(b []byte) Body {
	data := make([]byte, len(b))
	copy(data, b)
	return Body{data: data}
}

// Len returns the payload length in bytes
func (b Body) Len() int {
	return len(b.data)
}

// Raw returns a copy of the payload bytes
func (b Body) Raw() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Clone returns a deep copy of the body
func (b Body) Clone() Body {
	return Body{data: b.Raw()}
}
