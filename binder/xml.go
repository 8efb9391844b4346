package binder

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/xmlkit/pkg/logger"
)

// BindXML creates an XML binder function.
//
// The binder validates the declared content type (text/xml, application/xml,
// or whatever the effective config's predicate accepts), rejects bodies whose
// declared length exceeds the configured limit without reading them, collects
// the body incrementally while enforcing the limit on the accumulated size,
// and finally unmarshals the complete buffer into v.
//
// The effective config is resolved from the request context: route-scoped
// first (see Middleware), then application-scoped (SharedMiddleware), then
// the process-wide default of 256KB with built-in XML types only.
//
// Example:
//
//	handler := xmlkit.HandlerFunc[xmlkit.Context, CreateOrderRequest](
//		func(ctx xmlkit.Context, req CreateOrderRequest) xmlkit.Response {
//			// req is populated from the XML body
//			return xmlkit.XMLResponse(order)
//		},
//	)
//
//	http.HandleFunc("/orders", xmlkit.Wrap(handler,
//		xmlkit.WithBinder(binder.BindXML()),
//	))
func BindXML() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindXML(r, v)
	}
}

// XML extracts a typed value from the request's XML body in one call.
//
// Example:
//
//	order, err := binder.XML[CreateOrderRequest](r)
func XML[T any](r *http.Request) (T, error) {
	var v T
	err := bindXML(r, &v)
	return v, err
}

func bindXML(r *http.Request, v any) error {
	cfg := resolveConfig(r.Context())

	// Content type is checked before any body byte is consumed.
	if err := cfg.checkContentType(r); err != nil {
		return err
	}

	// Fast path: a body self-declared as too large is rejected without
	// issuing a single read against the stream.
	if r.ContentLength > cfg.limit {
		return fmt.Errorf("%w: declared length %d exceeds limit of %d bytes",
			ErrPayloadTooLarge, r.ContentLength, cfg.limit)
	}

	src, err := bodyReader(r)
	if err != nil {
		return err
	}
	defer src.Close()

	body, err := collectBody(r.Context(), src, cfg.limit)
	if err != nil {
		return err
	}

	if err := xml.Unmarshal(body, v); err != nil {
		slog.DebugContext(r.Context(), "failed to deserialize xml payload",
			slog.String("path", r.URL.Path),
			logger.Error(err),
			logger.Component("binder"),
		)
		return fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}
	return nil
}
