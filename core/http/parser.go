package http

import (
	"bytes"
	"errors"
)

var (
	ErrInvalidRequest = errors.New("invalid HTTP request")
)

// ParseRequest parses a complete HTTP/1.0 request. The returned request
// comes from the package pool; release it with ReleaseRequest when done.
func ParseRequest(data []byte) (*Request, error) {
	req := AcquireRequest()

	// Request line
	lineEnd := bytes.IndexByte(data, '\n')
	if lineEnd == -1 {
		ReleaseRequest(req)
		return nil, ErrInvalidRequest
	}
	line := trimCR(data[:lineEnd])

	// METHOD SP PATH SP PROTO
	sp1 := bytes.IndexByte(line, ' ')
	if sp1 == -1 {
		ReleaseRequest(req)
		return nil, ErrInvalidRequest
	}
	sp2 := bytes.IndexByte(line[sp1+1:], ' ')
	if sp2 == -1 {
		ReleaseRequest(req)
		return nil, ErrInvalidRequest
	}
	sp2 += sp1 + 1

	req.Method = string(line[:sp1])
	req.Path = string(line[sp1+1 : sp2])
	req.Proto = string(line[sp2+1:])

	if req.Method == "" || req.Path == "" {
		ReleaseRequest(req)
		return nil, ErrInvalidRequest
	}

	if idx := bytes.IndexByte([]byte(req.Path), '?'); idx != -1 {
		parseQuery(req, idx)
	}

	// Header lines until the blank line terminator
	data = data[lineEnd+1:]
	for {
		lineEnd = bytes.IndexByte(data, '\n')
		if lineEnd == -1 {
			ReleaseRequest(req)
			return nil, ErrInvalidRequest
		}
		line = trimCR(data[:lineEnd])
		data = data[lineEnd+1:]

		if len(line) == 0 {
			break
		}

		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			ReleaseRequest(req)
			return nil, ErrInvalidRequest
		}
		key := string(bytes.TrimSpace(line[:colon]))
		value := string(bytes.TrimSpace(line[colon+1:]))
		req.SetHeader(key, value)
	}

	// Whatever follows the blank line is body
	if len(data) > 0 {
		req.Body = append(req.Body[:0], data...)
	}

	return req, nil
}

func trimCR(line []byte) []byte {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		return line[:len(line)-1]
	}
	return line
}

// parseQuery splits the query string off req.Path into req.Query
func parseQuery(req *Request, idx int) {
	queryStr := req.Path[idx+1:]
	req.Path = req.Path[:idx]

	if req.Query == nil {
		req.Query = make(map[string]string)
	}

	for _, pair := range bytes.Split([]byte(queryStr), []byte("&")) {
		kv := bytes.SplitN(pair, []byte("="), 2)
		if len(kv) == 2 {
			req.Query[string(kv[0])] = string(kv[1])
		} else if len(kv) == 1 && len(kv[0]) > 0 {
			req.Query[string(kv[0])] = ""
		}
	}
}
