package mux

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"net/http"
)

// encodeResponse writes one encoded body with the given status code and
// content type. The body is encoded into a buffer first; a failing
// encoder yields a plain 500 with no partial output on the wire.
func encodeResponse(w http.ResponseWriter, code int, contentType string, encode func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

// ResponseJSON writes v as an "application/json" response with the given
// status code.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	encodeResponse(w, code, "application/json", func(buf *bytes.Buffer) error {
		return json.NewEncoder(buf).Encode(v)
	})
}

// ResponseXML writes v as an "application/xml" response with the given
// status code.
func ResponseXML(w http.ResponseWriter, code int, v any) {
	encodeResponse(w, code, "application/xml", func(buf *bytes.Buffer) error {
		return xml.NewEncoder(buf).Encode(v)
	})
}
