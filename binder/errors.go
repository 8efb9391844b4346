package binder

import "errors"

// Common binding errors
var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("xml payload size is bigger than allowed")
	ErrInvalidXML           = errors.New("invalid XML")
	ErrPayloadRead          = errors.New("failed to read request payload")
	ErrUnsupportedEncoding  = errors.New("unsupported content encoding")
)
