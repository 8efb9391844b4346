package xmlkit

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/xmlkit/pkg/logger"
	"github.com/dmitrymomot/xmlkit/pkg/requestid"
)

// newDefaultErrorHandler builds the error handler Wrap installs when none is
// configured. It classifies the error, logs it with request context, and
// writes a plain-text response with the mapped status code.
func newDefaultErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx C, err error) {
		httpErr := ClassifyError(err)

		level := slog.LevelWarn
		if httpErr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
	}
}
