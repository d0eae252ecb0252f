package openapi

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Schemer can be implemented by declared model types to supply their own
// schema body instead of the reflection-derived one. Bodies may carry a
// nested "definitions" map; the registry hoists it during flattening.
type Schemer interface {
	Schema() map[string]any
}

// SchemaOf returns the schema name and body for a declared model value.
// The name is the model's type name; the body is either the value's own
// Schema() output or derived from its struct fields. Nested named struct
// types are emitted into the body's "definitions" map and referenced via
// "#/definitions/<Name>".
func SchemaOf(v any) (string, map[string]any) {
	t := reflect.TypeOf(v)
	if t == nil {
		return "", nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()

	if s, ok := v.(Schemer); ok {
		return name, s.Schema()
	}

	b := &schemaBuilder{
		defs:    make(map[string]any),
		visited: make(map[reflect.Type]bool),
	}
	body := b.objectSchema(t)

	if len(b.defs) > 0 {
		body["definitions"] = b.defs
	}

	return name, body
}

// schemaBuilder derives object schemas from struct types, collecting
// nested named types into a shared definitions map.
type schemaBuilder struct {
	defs    map[string]any
	visited map[reflect.Type]bool
}

// objectSchema builds the schema body for one struct type.
func (b *schemaBuilder) objectSchema(t reflect.Type) map[string]any {
	body := map[string]any{
		"title": t.Name(),
		"type":  "object",
	}

	properties := make(map[string]any)
	var required []string
	b.collectFields(t, properties, &required)

	if len(properties) > 0 {
		body["properties"] = properties
	}
	if len(required) > 0 {
		body["required"] = required
	}

	return body
}

// collectFields walks exported struct fields into the properties map.
// Anonymous embedded structs without a json tag name are inlined the way
// encoding/json inlines them.
func (b *schemaBuilder) collectFields(t reflect.Type, properties map[string]any, required *[]string) {
	for i := range t.NumField() {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, omitempty := parseJSONTag(jsonTag)

		if field.Anonymous && name == "" {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != reflect.TypeOf(time.Time{}) {
				b.collectFields(ft, properties, required)
				continue
			}
		}

		if name == "" {
			name = field.Name
		}

		optional := omitempty || field.Type.Kind() == reflect.Pointer

		fieldSchema := b.fieldSchema(field.Type)
		if fieldSchema == nil {
			continue
		}
		applySchemaTag(fieldSchema, field.Tag.Get("openapi"))

		properties[name] = fieldSchema
		if !optional {
			*required = append(*required, name)
		}
	}
}

// fieldSchema maps one Go type to its schema fragment. Named struct types
// become $ref entries backed by the definitions map.
func (b *schemaBuilder) fieldSchema(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == reflect.TypeOf(time.Time{}) {
		return map[string]any{"type": "string", "format": "date-time"}
	}

	if t.Kind() == reflect.Struct && t.Name() != "" {
		if !b.visited[t] {
			b.visited[t] = true
			b.defs[t.Name()] = b.objectSchema(t)
		}
		return map[string]any{"$ref": "#/definitions/" + t.Name()}
	}

	switch t.Kind() {
	case reflect.Bool:
		return map[string]any{"type": "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}

	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}

	case reflect.String:
		return map[string]any{"type": "string"}

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return map[string]any{"type": "string", "format": "byte"}
		}
		return map[string]any{"type": "array", "items": b.fieldSchema(t.Elem())}

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return map[string]any{"type": "object"}
		}
		return map[string]any{"type": "object", "additionalProperties": b.fieldSchema(t.Elem())}

	case reflect.Struct:
		// Anonymous struct type, inlined.
		body := b.objectSchema(t)
		delete(body, "title")
		return body

	case reflect.Interface:
		return map[string]any{}
	}

	return nil
}

func parseJSONTag(tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	name, rest, _ := strings.Cut(tag, ",")
	return name, strings.Contains(rest, "omitempty") || strings.Contains(rest, "omitzero")
}

// applySchemaTag parses the `openapi` struct tag and applies constraints
// to the field schema. Keys map to JSON Schema validation keywords.
func applySchemaTag(schema map[string]any, tag string) {
	if tag == "" {
		return
	}

	for part := range strings.SplitSeq(tag, ",") {
		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "description", "format", "pattern", "title":
			schema[key] = value
		case "minimum", "maximum":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				schema[key] = v
			}
		case "minLength", "maxLength", "minItems", "maxItems":
			if v, err := strconv.Atoi(value); err == nil {
				schema[key] = v
			}
		case "enum":
			values := strings.Split(value, "|")
			enum := make([]any, len(values))
			for i, v := range values {
				enum[i] = v
			}
			schema[key] = enum
		case "example":
			schema[key] = exampleValue(schema, value)
		case "deprecated":
			schema[key] = true
		}
	}
}

// exampleValue converts a string tag value based on the schema's type.
func exampleValue(schema map[string]any, value string) any {
	switch schema["type"] {
	case "integer":
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	case "number":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case "boolean":
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}
