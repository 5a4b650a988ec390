package http

// MediaType is the closed set of MIME types a body can declare
type MediaType int

const (
	PlainText MediaType = iota
	TextHTML
	ApplicationJSON
	OctetStream
)

// String returns the fixed MIME string for the media type
func (m MediaType) String() string {
	switch m {
	case PlainText:
		return "text/plain"
	case TextHTML:
		return "text/html"
	case ApplicationJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
