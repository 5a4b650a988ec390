package http

// HeaderName is the closed set of header fields a response can emit
type HeaderName int

const (
	ContentLength HeaderName = iota
	ContentType
)

// String returns the canonical wire name of the header
func (h HeaderName) String() string {
	switch h {
	case ContentLength:
		return "Content-Length"
	case ContentType:
		return "Content-Type"
	default:
		return ""
	}
}

type headerEntry struct {
	name  HeaderName
	value string
}

// Headers is an ordered collection of header entries. The zero value is
// an empty collection ready to use.
type Headers struct {
	entries []headerEntry
}

// Add appends an entry. Duplicates are not suppressed: adding the same
// name twice produces two header lines.
func (h *Headers) Add(name HeaderName, value string) {
	h.entries = append(h.entries, headerEntry{name: name, value: value})
}

// Set replaces the value of the first entry with the given name, or
// appends a new entry when none exists.
func (h *Headers) Set(name HeaderName, value string) {
	for i := range h.entries {
		if h.entries[i].name == name {
			h.entries[i].value = value
			return
		}
	}
	h.Add(name, value)
}

// Get returns the value of the first entry with the given name
func (h *Headers) Get(name HeaderName) (string, bool) {
	for i := range h.entries {
		if h.entries[i].name == name {
			return h.entries[i].value, true
		}
	}
	return "", false
}

// Len returns the number of entries
func (h *Headers) Len() int {
	return len(h.entries)
}

// Raw serializes the header block: one `Name: value\r\n` line per entry
// in insertion order, then one terminating blank line. The terminator is
// emitted even when the collection is empty.
func (h *Headers) Raw() []byte {
	buf := make([]byte, 0, 64)
	for _, e := range h.entries {
		buf = append(buf, e.name.String()...)
		buf = append(buf, ':', ' ')
		buf = append(buf, e.value...)
		buf = append(buf, '\r', '\n')
	}
	return append(buf, '\r', '\n')
}
