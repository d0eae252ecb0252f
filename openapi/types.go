package openapi

// Info describes the API in the document's info block.
//
// See: https://spec.openapis.org/oas/v3.0.2#info-object
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Tag is a document-level tag entry. Operations reference tags by name.
//
// See: https://spec.openapis.org/oas/v3.0.2#tag-object
type Tag struct {
	Name string `json:"name"`
}

// PathItem maps a lowercase HTTP method to its operation.
//
// See: https://spec.openapis.org/oas/v3.0.2#path-item-object
type PathItem map[string]*Operation

// Operation is the documented behavior of one (path, method) pair.
//
// See: https://spec.openapis.org/oas/v3.0.2#operation-object
type Operation struct {
	Summary     string               `json:"summary"`
	Description string               `json:"description"`
	OperationID string               `json:"operationID"`
	Tags        []string             `json:"tags"`
	Parameters  []*Parameter         `json:"parameters"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses"`
}

// Parameter describes a single path or query parameter.
//
// See: https://spec.openapis.org/oas/v3.0.2#parameter-object
type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required"`
	Schema   *Schema `json:"schema"`
}

// RequestBody describes the body of a request.
//
// See: https://spec.openapis.org/oas/v3.0.2#request-body-object
type RequestBody struct {
	Content map[string]*MediaType `json:"content"`
}

// MediaType holds the schema for one content type.
//
// See: https://spec.openapis.org/oas/v3.0.2#media-type-object
type MediaType struct {
	Schema *Schema `json:"schema"`
}

// Response describes a single response keyed by status code.
//
// See: https://spec.openapis.org/oas/v3.0.2#response-object
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// Schema is a JSON Schema fragment as produced by the converter table or
// referencing a registered model. The length constraint keys are carried
// verbatim from converter arguments, so Length is non-standard on purpose.
//
// See: https://spec.openapis.org/oas/v3.0.2#schema-object
type Schema struct {
	Ref       string  `json:"$ref,omitempty"`
	Type      string  `json:"type,omitempty"`
	Format    string  `json:"format,omitempty"`
	Items     *Schema `json:"items,omitempty"`
	Enum      []any   `json:"enum,omitzero"`
	Minimum   any     `json:"minimum,omitempty"`
	Maximum   any     `json:"maximum,omitempty"`
	Length    any     `json:"length,omitempty"`
	MinLength any     `json:"minLength,omitempty"`
	MaxLength any     `json:"maxLength,omitempty"`
}

// Components holds the reusable schema objects collected from declared
// models.
//
// See: https://spec.openapis.org/oas/v3.0.2#components-object
type Components struct {
	Schemas map[string]map[string]any `json:"schemas"`
}

// Document is the root aggregate assembled by the Generator. Definitions
// holds nested named definitions hoisted out of the component schemas by
// the registry's flattening pass.
type Document struct {
	OpenAPI     string                    `json:"openapi"`
	Info        Info                      `json:"info"`
	Tags        []Tag                     `json:"tags"`
	Paths       map[string]PathItem       `json:"paths"`
	Components  Components                `json:"components"`
	Definitions map[string]map[string]any `json:"definitions"`
}
