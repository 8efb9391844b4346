package xmlkit

import (
	"encoding/xml"
	"net/http"
)

// xmlResponse implements Response for XML rendering.
type xmlResponse struct {
	status int
	v      any
}

func (x xmlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(x.status)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(x.v)
}

// XMLResponse creates a 200 OK response with an XML-encoded body.
func XMLResponse(v any) Response {
	return xmlResponse{status: http.StatusOK, v: v}
}

// XMLResponseWithStatus creates an XML response with a custom status code.
func XMLResponseWithStatus(v any, status int) Response {
	return xmlResponse{status: status, v: v}
}
