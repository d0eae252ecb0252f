package mux

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
)

// decoder is satisfied by both *json.Decoder and *xml.Decoder.
type decoder interface {
	Decode(v any) error
}

// decodeOne decodes exactly one value from dec into v. Trailing content
// after the first value is an error.
func decodeOne(dec decoder, v any, format string) error {
	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("mux: trailing data after " + format + " value")
	}

	return nil
}

// BindJSON decodes the request body as a single JSON value into v.
// Fields in the body that do not map to exported struct fields are
// rejected; pass true to allow them.
func BindJSON(r *http.Request, v any, allowUnknownFields ...bool) error {
	dec := json.NewDecoder(r.Body)
	if len(allowUnknownFields) == 0 || !allowUnknownFields[0] {
		dec.DisallowUnknownFields()
	}

	return decodeOne(dec, v, "JSON")
}

// BindXML decodes the request body as a single XML document into v.
func BindXML(r *http.Request, v any) error {
	return decodeOne(xml.NewDecoder(r.Body), v, "XML")
}
