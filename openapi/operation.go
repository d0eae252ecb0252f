package openapi

import (
	"strings"
	"unicode"
)

// buildOperation assembles the operation object for one (route, method)
// pair from its metadata and path parameters. The registry collects every
// declared model schema encountered along the way.
func buildOperation(reg *Registry, name, method string, meta *Meta, pathParams []*Parameter) *Operation {
	if meta == nil {
		meta = &Meta{}
	}

	summary, description := splitDoc(meta.doc)
	if summary == "" {
		summary = capitalize(name)
	}

	tags := meta.tags
	if tags == nil {
		tags = []string{}
	}

	op := &Operation{
		Summary:     summary,
		Description: description,
		OperationID: name + "__" + strings.ToLower(method),
		Tags:        tags,
		Responses:   make(map[string]*Response),
	}

	params := make([]*Parameter, 0, len(pathParams)+1)
	params = append(params, pathParams...)

	if meta.body != nil {
		op.RequestBody = requestBody(reg, meta.body)
	}
	// A declared form model replaces the body model.
	if meta.form != nil {
		op.RequestBody = requestBody(reg, meta.form)
	}

	if meta.query != nil {
		queryName, schema := SchemaOf(meta.query)
		reg.Register(queryName, schema)
		params = append(params, &Parameter{
			Name:     queryName,
			In:       "query",
			Required: true,
			Schema:   &Schema{Ref: "#/components/schemas/" + queryName},
		})
	}
	op.Parameters = params

	has2xx := false
	for code, message := range meta.errors {
		if strings.HasPrefix(code, "2") {
			has2xx = true
		}
		op.Responses[code] = &Response{Description: message}
	}

	if meta.response != nil {
		responseName, schema := SchemaOf(meta.response)
		reg.Register(responseName, schema)
		op.Responses["200"] = &Response{
			Description: "Successful Response",
			Content: map[string]*MediaType{
				"application/json": {
					Schema: &Schema{Ref: "#/components/schemas/" + responseName},
				},
			},
		}
	} else if !has2xx {
		op.Responses["200"] = &Response{Description: "Successful Response"}
	}

	if meta.query != nil || meta.body != nil || meta.form != nil || meta.response != nil {
		op.Responses["400"] = &Response{Description: "Validation Error"}
	}

	return op
}

// requestBody registers the model schema and returns a request body
// referencing it.
func requestBody(reg *Registry, model any) *RequestBody {
	name, schema := SchemaOf(model)
	reg.Register(name, schema)
	return &RequestBody{
		Content: map[string]*MediaType{
			"application/json": {
				Schema: &Schema{Ref: "#/components/schemas/" + name},
			},
		},
	}
}

// splitDoc separates documentation text into summary and description at
// the first blank line.
func splitDoc(doc string) (string, string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return "", ""
	}
	summary, description, found := strings.Cut(doc, "\n\n")
	if !found {
		return doc, ""
	}
	return summary, description
}

// capitalize uppercases the first rune and lowercases the rest, matching
// the derived-summary convention for undocumented handlers.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
