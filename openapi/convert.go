package openapi

import (
	"strings"

	"github.com/rulemux/rulemux/mux"
)

// converterSchema maps a route converter tag and its parsed arguments to
// a JSON Schema fragment. Unknown tags fall back to a plain string schema
// rather than failing; routes written for other converter sets still
// document cleanly.
func converterSchema(tag string, args []any, kwargs map[string]any) *Schema {
	switch tag {
	case "any":
		enum := args
		if enum == nil {
			enum = []any{}
		}
		return &Schema{
			Type:  "array",
			Items: &Schema{Type: "string", Enum: enum},
		}

	case "int":
		s := &Schema{Type: "integer", Format: "int32"}
		if v, ok := kwargs["min"]; ok {
			s.Minimum = v
		}
		if v, ok := kwargs["max"]; ok {
			s.Maximum = v
		}
		return s

	case "float":
		return &Schema{Type: "number", Format: "float"}

	case "uuid":
		return &Schema{Type: "string", Format: "uuid"}

	case "path":
		return &Schema{Type: "string", Format: "path"}

	case "string":
		s := &Schema{Type: "string"}
		if v, ok := kwargs["length"]; ok {
			s.Length = v
		}
		if v, ok := kwargs["maxLength"]; ok {
			s.MaxLength = v
		}
		if v, ok := kwargs["minLength"]; ok {
			s.MinLength = v
		}
		return s
	}

	return &Schema{Type: "string"}
}

// ParsePath converts a route rule into its normalized document form.
// Variable placeholders are rendered as {name} and each one yields a
// required path parameter whose schema is derived from its converter.
//
//	ParsePath("/items/<int(min=1,max=10):id>")
//	// "/items/{id}", one integer parameter with minimum 1 and maximum 10
func ParsePath(rule string) (string, []*Parameter, error) {
	segments, err := mux.ParseRule(rule)
	if err != nil {
		return "", nil, err
	}

	var (
		path   strings.Builder
		params []*Parameter
	)

	for _, seg := range segments {
		if !seg.IsVariable() {
			path.WriteString(seg.Static)
			continue
		}

		path.WriteString("{" + seg.Variable + "}")

		var (
			args   []any
			kwargs map[string]any
		)
		if seg.Args != "" {
			args, kwargs = mux.ParseConverterArgs(seg.Args)
		}

		params = append(params, &Parameter{
			Name:     seg.Variable,
			In:       "path",
			Required: true,
			Schema:   converterSchema(seg.Converter, args, kwargs),
		})
	}

	return path.String(), params, nil
}
