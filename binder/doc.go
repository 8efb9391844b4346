// Package binder extracts typed values from XML HTTP request bodies with a
// content-type gate and a hard byte-size ceiling enforced before decoding.
//
// The extraction pipeline runs strictly in order: content-type check (fail
// fast, before any body byte is consumed), configuration resolution, size-
// bounded body collection, XML decode. Any failure at an earlier stage skips
// all later stages.
//
// # Size limiting
//
// The configured limit (default 262144 bytes) is enforced twice: against the
// declared Content-Length before the stream is touched, and authoritatively
// against the accumulated size as chunks arrive. Worst-case memory for one
// extraction is O(limit) regardless of how large a hostile body claims or
// turns out to be. A body whose cumulative size equals the limit exactly
// succeeds; one more byte fails.
//
// # Configuration
//
// Configs are immutable and safe for concurrent reuse. They attach to
// requests through standard middleware:
//
//	cfg := binder.NewConfig(
//		binder.WithLimit(4096),
//		binder.WithContentType(func(mediaType string) bool {
//			return mediaType == "text/plain"
//		}),
//	)
//
//	r := chi.NewRouter()
//	r.Use(binder.SharedMiddleware(binder.NewShared(appCfg))) // app-wide
//	r.With(binder.Middleware(cfg)).Post("/orders", handler)  // per-route
//
// Route-scoped configs win over application-scoped ones, which win over the
// process-wide default. NewConfigFromEnv builds a config from XMLKIT_*
// environment variables.
//
// # Compressed bodies
//
// Bodies with Content-Encoding gzip, deflate or br are decompressed
// transparently; the size limit applies to the decompressed byte count.
//
// # Error Handling
//
// Failures are classified by sentinel errors usable with errors.Is:
//
//   - ErrMissingContentType, ErrUnsupportedMediaType: the content-type gate
//     rejected the request
//   - ErrPayloadTooLarge: declared or accumulated size exceeds the limit
//   - ErrInvalidXML: the complete, size-valid body failed to parse
//   - ErrPayloadRead: the underlying body stream reported an error
//   - ErrUnsupportedEncoding: unrecognized Content-Encoding
//
// All categories are terminal for the extraction attempt; the package never
// retries. Hosts typically map ErrPayloadTooLarge to 413 and everything else
// to 400, which is what the xmlkit root package's default error handler does.
package binder
