package binder

import "net/http"

// Middleware attaches a route-scoped extraction config to every request
// passing through it. It is compatible with any router that accepts
// func(http.Handler) http.Handler middleware, including chi:
//
//	r := chi.NewRouter()
//	r.With(binder.Middleware(binder.NewConfig(binder.WithLimit(4096)))).
//		Post("/orders", handler)
func Middleware(cfg *Config) func(http.Handler) http.Handler {
	if cfg == nil {
		panic("Middleware: nil config")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithConfig(r.Context(), cfg)))
		})
	}
}

// SharedMiddleware attaches an application-scoped shared config. Routes that
// also carry a route-scoped config via Middleware keep their own settings;
// everything else falls through to the shared instance.
func SharedMiddleware(s *Shared) func(http.Handler) http.Handler {
	if s == nil {
		panic("SharedMiddleware: nil shared config")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithSharedConfig(r.Context(), s)))
		})
	}
}
