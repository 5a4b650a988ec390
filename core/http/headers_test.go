package http

import (
	"strings"
	"testing"
)

func TestHeaderNameString(t *testing.T) {
	if ContentLength.String() != "Content-Length" {
		t.Errorf("Expected Content-Length, got %s", ContentLength.String())
	}
	if ContentType.String() != "Content-Type" {
		t.Errorf("Expected Content-Type, got %s", ContentType.String())
	}
}

// TestHeadersRawEmpty an empty collection still emits the blank line
// terminator
func TestHeadersRawEmpty(t *testing.T) {
	var h Headers
	if got := h.Raw(); string(got) != "\r\n" {
		t.Errorf("Expected lone CRLF, got %q", got)
	}
}

func TestHeadersRaw(t *testing.T) {
	var h Headers
	h.Add(ContentLength, "14")
	h.Add(ContentType, "text/plain")

	want := "Content-Length: 14\r\nContent-Type: text/plain\r\n\r\n"
	if got := h.Raw(); string(got) != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestHeadersAddDuplicate Add does not suppress duplicates
func TestHeadersAddDuplicate(t *testing.T) {
	var h Headers
	h.Add(ContentLength, "1")
	h.Add(ContentLength, "2")

	if h.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", h.Len())
	}
	if n := strings.Count(string(h.Raw()), "Content-Length:"); n != 2 {
		t.Errorf("Expected 2 Content-Length lines, got %d", n)
	}
}

// TestHeadersSet Set replaces in place instead of appending
func TestHeadersSet(t *testing.T) {
	var h Headers
	h.Set(ContentLength, "1")
	h.Set(ContentLength, "2")

	if h.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", h.Len())
	}
	if v, ok := h.Get(ContentLength); !ok || v != "2" {
		t.Errorf("Expected value 2, got %q (found=%v)", v, ok)
	}
}

func TestHeadersGetMissing(t *testing.T) {
	var h Headers
	if _, ok := h.Get(ContentType); ok {
		t.Error("Expected no entry for Content-Type")
	}
}
