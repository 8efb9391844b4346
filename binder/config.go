package binder

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/xmlkit/pkg/config"
)

// DefaultBodyLimit is the default maximum size for XML request bodies (256KB).
const DefaultBodyLimit int64 = 262_144

// ContentTypePredicate reports whether a parsed media type (without
// parameters, e.g. "text/plain") is acceptable in addition to the built-in
// XML types. Implementations must be safe for concurrent use; a pure
// function is the common case.
type ContentTypePredicate func(mediaType string) bool

// Config controls XML body extraction for a request. It is immutable after
// construction, so a single instance may be shared by any number of
// concurrent requests without synchronization.
type Config struct {
	limit       int64
	contentType ContentTypePredicate
}

// ConfigOption configures a Config during construction.
type ConfigOption func(*Config)

// WithLimit sets the maximum permitted body size in bytes. The limit is
// checked against the declared Content-Length before the body is read and
// against the accumulated size while it streams in.
func WithLimit(limit int64) ConfigOption {
	if limit <= 0 {
		panic("WithLimit: limit must be > 0")
	}
	return func(c *Config) { c.limit = limit }
}

// WithContentType sets a predicate extending the accepted media types beyond
// the built-in text/xml and application/xml.
func WithContentType(pred ContentTypePredicate) ConfigOption {
	if pred == nil {
		panic("WithContentType: nil predicate")
	}
	return func(c *Config) { c.contentType = pred }
}

// NewConfig creates an extraction config. Without options it is equivalent
// to the process-wide default: 256KB limit, built-in XML types only.
func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{limit: DefaultBodyLimit}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Limit returns the maximum permitted body size in bytes.
func (c *Config) Limit() int64 { return c.limit }

// defaultConfig is the process-wide fallback used when no config is attached
// to the request. Never mutated.
var defaultConfig = &Config{limit: DefaultBodyLimit}

// checkContentType validates the declared media type before any body byte is
// consumed. Parameters such as charset are ignored for the comparison.
func (c *Config) checkContentType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected text/xml or application/xml", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: cannot parse %q: %v", ErrUnsupportedMediaType, contentType, err)
	}

	if mediaType == "text/xml" || mediaType == "application/xml" {
		return nil
	}
	if c.contentType != nil && c.contentType(mediaType) {
		return nil
	}
	return fmt.Errorf("%w: got %s, expected text/xml or application/xml", ErrUnsupportedMediaType, mediaType)
}

// envConfig maps extraction settings to environment variables.
type envConfig struct {
	Limit        int64    `env:"XMLKIT_BODY_LIMIT" envDefault:"262144"`
	ContentTypes []string `env:"XMLKIT_CONTENT_TYPES" envSeparator:","`
}

// NewConfigFromEnv builds a Config from environment variables:
//
//   - XMLKIT_BODY_LIMIT: maximum body size in bytes (default 262144)
//   - XMLKIT_CONTENT_TYPES: comma-separated media types accepted in addition
//     to the built-in XML types, e.g. "text/plain,application/soap+xml"
func NewConfigFromEnv() (*Config, error) {
	var ec envConfig
	if err := config.Load(&ec); err != nil {
		return nil, err
	}
	if ec.Limit <= 0 {
		return nil, fmt.Errorf("XMLKIT_BODY_LIMIT must be > 0, got %d", ec.Limit)
	}

	opts := []ConfigOption{WithLimit(ec.Limit)}
	if len(ec.ContentTypes) > 0 {
		allowed := make(map[string]struct{}, len(ec.ContentTypes))
		for _, mt := range ec.ContentTypes {
			mt = strings.ToLower(strings.TrimSpace(mt))
			if mt != "" {
				allowed[mt] = struct{}{}
			}
		}
		opts = append(opts, WithContentType(func(mediaType string) bool {
			_, ok := allowed[strings.ToLower(mediaType)]
			return ok
		}))
	}
	return NewConfig(opts...), nil
}

// Shared is an immutable handle around a Config intended for attachment at a
// broader scope (e.g. an application-wide middleware chain) so that many
// routes reuse one instance. A route-scoped Config always takes precedence
// over a Shared one.
type Shared struct {
	cfg *Config
}

// NewShared wraps cfg for application-scoped attachment. A nil cfg wraps the
// process-wide default.
func NewShared(cfg *Config) *Shared {
	if cfg == nil {
		cfg = defaultConfig
	}
	return &Shared{cfg: cfg}
}

// Config returns the wrapped config.
func (s *Shared) Config() *Config { return s.cfg }

type configCtxKey struct{}
type sharedCtxKey struct{}

// WithConfig attaches a route-scoped extraction config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configCtxKey{}, cfg)
}

// WithSharedConfig attaches an application-scoped shared config to the context.
func WithSharedConfig(ctx context.Context, s *Shared) context.Context {
	return context.WithValue(ctx, sharedCtxKey{}, s)
}

// resolveConfig selects the effective config for a request. Lookup order,
// first match wins: route-scoped Config, application-scoped Shared wrapper,
// process-wide default. It never fails and repeated calls for the same
// request yield the same instance.
func resolveConfig(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configCtxKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	if s, ok := ctx.Value(sharedCtxKey{}).(*Shared); ok && s != nil && s.cfg != nil {
		return s.cfg
	}
	return defaultConfig
}
