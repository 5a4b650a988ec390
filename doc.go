/*
Package micro-http provides a minimal HTTP/1.0 server built around an
exact wire-format response serializer.

The core of the module is the Response type: given a status code, an
optional body, and the headers derived from that body, it produces the
precise byte sequence written to the client socket — status line,
header block terminated by a blank line, then the raw body framed
solely by Content-Length. Everything else (listener, request parser,
handler seam) exists to carry those bytes.

Features

  - Bit-exact HTTP/1.0 response serialization (status line, headers, body)
  - Closed status, header and media type enumerations with total byte mappings
  - One request per connection: no keep-alive, no chunked encoding
  - Pooled request objects and tiered read buffers
  - Connection cap via golang.org/x/net/netutil
  - Listener socket tuning via golang.org/x/sys/unix

Quick Start

Basic usage example:

package main

import (
    "github.com/searchktools/micro-http/app"
    "github.com/searchktools/micro-http/config"
    "github.com/searchktools/micro-http/core/http"
)

func main() {
    cfg := config.New()
    application := app.New(cfg)

    application.Engine().SetHandler(func(req *http.Request) *http.Response {
        resp := http.NewResponse(http.StatusOK)
        resp.SetBody(http.NewBody("Hello, World!"))
        return resp
    })

    application.Run()
}

Modules

The module is organized into several packages:

  - app: Application lifecycle management
  - config: Configuration loading
  - core: HTTP/1.0 server engine
  - core/http: Response serialization, request parsing
  - core/pools: Read buffer pooling

Wire Format

Response.Raw produces exactly:

	<HTTP-version> <status-code> \r\n
	[<Header-Name>: <value>\r\n]*
	\r\n
	<body-bytes>

The reason phrase is always empty, so the status line carries a
trailing space before CRLF. The header block ends with one blank line
even when no headers are present.

For more information, see https://github.com/searchktools/micro-http
*/
package microhttp
