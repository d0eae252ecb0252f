package openapi

// Registry collects declared model schemas by name during one document
// assembly. Its lifetime is scoped to a single assembly pass; a fresh
// registry is created per Generator run so registrations never leak
// between documents.
type Registry struct {
	schemas     map[string]map[string]any
	definitions map[string]map[string]any
	flattened   bool
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]map[string]any),
	}
}

// Register stores a schema body under the given name. Registering the
// same name again overwrites the previous body silently; the last
// registration wins.
func (r *Registry) Register(name string, schema map[string]any) {
	r.schemas[name] = schema
}

// Schemas returns the registered schema bodies keyed by name.
func (r *Registry) Schemas() map[string]map[string]any {
	return r.schemas
}

// Flatten hoists every nested "definitions" sub-map out of the
// registered schemas into one document-level definitions mapping,
// removing the sub-map from its parent. It runs at most once; later
// calls return the result of the first pass.
func (r *Registry) Flatten() map[string]map[string]any {
	if r.flattened {
		return r.definitions
	}
	r.flattened = true
	r.definitions = make(map[string]map[string]any)

	for _, schema := range r.schemas {
		nested, ok := schema["definitions"]
		if !ok {
			continue
		}
		if defs, ok := nested.(map[string]any); ok {
			for name, body := range defs {
				if m, ok := body.(map[string]any); ok {
					r.definitions[name] = m
				}
			}
		}
		delete(schema, "definitions")
	}

	return r.definitions
}
