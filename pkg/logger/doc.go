// Package logger provides slog attribute helpers with consistent keys for
// structured logging across xmlkit packages.
//
// Helpers return an empty slog.Attr for absent values, so they can be passed
// unconditionally:
//
//	log.LogAttrs(ctx, slog.LevelWarn, "request error",
//		logger.RequestID(requestid.FromContext(ctx)),
//		logger.Error(err),
//		logger.Component("error_handler"),
//	)
package logger
