// Package xmlkit provides a minimal, type-safe toolkit for handling XML HTTP
// requests in Go services.
//
// It focuses on one boundary problem: converting a raw, possibly compressed
// request body into a validated, strongly-typed value — or a categorized
// failure — while enforcing a content-type policy and a hard byte ceiling
// before anything is decoded.
//
// Key Features:
//
//   - Type-safe HTTP handlers using generics
//   - Size-bounded XML body extraction with fail-fast content-type checks
//   - Per-route, application-wide, and default extraction configs
//   - Transparent gzip/deflate/brotli request decompression
//   - Router-agnostic design
//
// Basic Usage:
//
//	// Define your request type
//	type CreateOrderRequest struct {
//		XMLName xml.Name `xml:"Order"`
//		SKU     string   `xml:"sku"`
//		Count   int      `xml:"count"`
//	}
//
//	// Create a type-safe handler; the XML binder is applied by default
//	handler := xmlkit.HandlerFunc[xmlkit.Context, CreateOrderRequest](
//		func(ctx xmlkit.Context, req CreateOrderRequest) xmlkit.Response {
//			order := createOrder(req.SKU, req.Count)
//			return xmlkit.XMLResponse(order)
//		},
//	)
//
//	// Use with any router
//	http.Handle("/orders", xmlkit.Wrap(handler))
//
// Extraction failures are translated by the default error handler: payload
// size violations return 413 Request Entity Too Large, every other category
// (content type, malformed XML, transport) returns 400 Bad Request.
//
// The binder subpackage exposes the extraction pipeline directly for hosts
// that bring their own handler plumbing.
package xmlkit
