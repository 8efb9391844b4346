package binder

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

const (
	// initialBufferSize is the pre-allocated capacity for the body buffer.
	// Growth beyond it is amortized and always bounded by the limit.
	initialBufferSize = 8192

	// readChunkSize is the scratch size for a single read from the source.
	readChunkSize = 4096
)

// collectBody drains src into memory, enforcing limit on the accumulated
// size. It reads one chunk at a time and checks for cancellation between
// chunks, so an abandoned request stops consuming the source at the next
// chunk boundary. On any failure the partial buffer is discarded and never
// returned.
//
// Errors from src are reported as ErrPayloadRead with the source error
// wrapped; crossing the limit is reported as ErrPayloadTooLarge at the chunk
// that crosses it, without reading further.
func collectBody(ctx context.Context, src io.Reader, limit int64) ([]byte, error) {
	capacity := int64(initialBufferSize)
	if limit < capacity {
		capacity = limit
	}
	buf := bytes.NewBuffer(make([]byte, 0, capacity))
	chunk := make([]byte, readChunkSize)

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrPayloadRead, ctx.Err())
		default:
		}

		n, err := src.Read(chunk)
		if n > 0 {
			if int64(buf.Len())+int64(n) > limit {
				return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrPayloadTooLarge, limit)
			}
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPayloadRead, err)
		}
	}
}
