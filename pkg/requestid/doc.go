// Package requestid provides HTTP middleware and context helpers for request
// correlation identifiers.
//
// The middleware reuses a valid client-supplied "X-Request-ID" header or
// generates a UUIDv4, stores the ID in the request context, and echoes it in
// the response header. FromContext retrieves the ID for logging; the xmlkit
// default error handler includes it in every error log record.
package requestid
