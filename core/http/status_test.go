package http

import (
	"bytes"
	"testing"
)

// TestStatusCodeRaw checks the fixed 3-digit mapping for every variant
func TestStatusCodeRaw(t *testing.T) {
	cases := []struct {
		code StatusCode
		want string
	}{
		{StatusOK, "200"},
		{StatusBadRequest, "400"},
		{StatusNotFound, "404"},
		{StatusInternalServerError, "500"},
		{StatusNotImplemented, "501"},
	}

	for _, c := range cases {
		got := c.code.Raw()
		if len(got) != 3 {
			t.Errorf("Expected 3 bytes for %d, got %d", int(c.code), len(got))
		}
		if string(got) != c.want {
			t.Errorf("Expected %s, got %s", c.want, got)
		}
	}
}

func TestVersionRaw(t *testing.T) {
	if got := HTTP10.Raw(); string(got) != "HTTP/1.0" {
		t.Errorf("Expected HTTP/1.0, got %s", got)
	}
}

// TestStatusLineRaw checks the exact spacing: one space after the
// version, one space for the empty reason phrase, then CRLF
func TestStatusLineRaw(t *testing.T) {
	line := NewStatusLine(StatusOK)
	if got := line.Raw(); string(got) != "HTTP/1.0 200 \r\n" {
		t.Errorf("Expected %q, got %q", "HTTP/1.0 200 \r\n", got)
	}

	line = NewStatusLine(StatusNotFound)
	if got := line.Raw(); string(got) != "HTTP/1.0 404 \r\n" {
		t.Errorf("Expected %q, got %q", "HTTP/1.0 404 \r\n", got)
	}
}

// TestStatusLineRawStable serialization has no state: repeated calls
// yield identical bytes
func TestStatusLineRawStable(t *testing.T) {
	line := NewStatusLine(StatusInternalServerError)
	first := line.Raw()
	second := line.Raw()
	if !bytes.Equal(first, second) {
		t.Errorf("Expected identical output, got %q then %q", first, second)
	}
}
