package binder

import (
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// bodyReader wraps the raw request body in a decompressing reader according
// to the Content-Encoding header. The returned reader exposes the same
// byte-stream capability as the raw body, so the collector is agnostic to
// whether decompression is occurring; the size limit consequently applies to
// decompressed bytes.
//
// Closing the returned reader releases decoder state only; the request body
// itself stays owned by the server.
func bodyReader(r *http.Request) (io.ReadCloser, error) {
	encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
	switch encoding {
	case "", "identity":
		return io.NopCloser(r.Body), nil
	case "gzip":
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPayloadRead, err)
		}
		return gz, nil
	case "deflate":
		return flate.NewReader(r.Body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(r.Body)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
	}
}
