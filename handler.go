package xmlkit

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/xmlkit/binder"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
// Example:
//
//	handler := xmlkit.HandlerFunc[xmlkit.Context, CreateOrderRequest](
//		func(ctx xmlkit.Context, req CreateOrderRequest) xmlkit.Response {
//			order := createOrder(req.SKU, req.Count)
//			return xmlkit.XMLResponse(order)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	bind           Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	log            *slog.Logger
}

// WithBinder sets a custom request binder. The default is binder.BindXML().
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.bind = b
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger[C Context, R any](log *slog.Logger) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if log != nil {
			c.log = log
		}
	}
}

// ClassifyError maps an error to the HTTPError the default error handler
// responds with. Binding failures are translated per category: payload size
// violations yield 413, content-type rejections, malformed XML and transport
// failures yield 400; an HTTPError passes through unchanged; anything else
// is a 500.
func ClassifyError(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrPayloadTooLarge):
		return ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrUnsupportedEncoding),
		errors.Is(err, binder.ErrInvalidXML),
		errors.Is(err, binder.ErrPayloadRead):
		return ErrBadRequest
	default:
		return ErrInternalServerError
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc. Unless overridden
// with WithBinder, requests are bound from their XML body.
//
// Usage with standard context:
//
//	handler := xmlkit.HandlerFunc[xmlkit.Context, CreateOrderRequest](...)
//	http.HandleFunc("/orders", xmlkit.Wrap(handler))
//
// With options:
//
//	http.HandleFunc("/orders", xmlkit.Wrap(handler,
//		xmlkit.WithBinder(customBinder),
//		xmlkit.WithErrorHandler(customErrorHandler),
//		xmlkit.WithLogger(logger),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		bind: binder.BindXML(),
		log:  slog.Default(),
	}

	cfg.contextFactory = func(w http.ResponseWriter, r *http.Request) C {
		ctx := NewContext(w, r)
		if c, ok := any(ctx).(C); ok {
			return c
		}
		panic("cannot use default context factory with custom context type - provide WithContextFactory")
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.errorHandler == nil {
		cfg.errorHandler = newDefaultErrorHandler[C](cfg.log)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		if err := cfg.bind(r, &req); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
