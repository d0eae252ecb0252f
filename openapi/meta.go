package openapi

// Scheme identifies which registration mechanism attached a Meta record
// to a route. The inclusion policy compares schemes, so metadata written
// by another framework's integration can be recognized and excluded.
type Scheme string

// SchemeLocal marks metadata attached through this package's own
// Describe and Register calls.
const SchemeLocal Scheme = "rulemux"

// Meta is the documentation record attached to one route: free-form
// documentation text, declared request and response model values,
// declared error responses, and tags. All fields are optional; a zero
// Meta documents a route with derived defaults only.
type Meta struct {
	scheme   Scheme
	doc      string
	query    any
	body     any
	form     any
	response any
	errors   map[string]string
	tags     []string
}

// NewMeta creates an empty metadata record attached under SchemeLocal.
func NewMeta() *Meta {
	return &Meta{scheme: SchemeLocal}
}

// WithScheme overrides the record's registration scheme. Integrations
// that attach metadata on behalf of another framework use this to mark
// their records as foreign.
func (m *Meta) WithScheme(s Scheme) *Meta {
	m.scheme = s
	return m
}

// Doc sets the documentation text. The first paragraph (up to a blank
// line) becomes the operation summary, the remainder the description.
func (m *Meta) Doc(doc string) *Meta {
	m.doc = doc
	return m
}

// Query declares the query parameter model. The model is registered as a
// named schema and referenced as one required query parameter.
func (m *Meta) Query(model any) *Meta {
	m.query = model
	return m
}

// Body declares the request body model.
func (m *Meta) Body(model any) *Meta {
	m.body = model
	return m
}

// Form declares the form body model. When both Body and Form are set,
// the form model wins.
func (m *Meta) Form(model any) *Meta {
	m.form = model
	return m
}

// Response declares the success response model, documented under the 200
// status code.
func (m *Meta) Response(model any) *Meta {
	m.response = model
	return m
}

// Error declares one error response with its status code and message.
func (m *Meta) Error(code, message string) *Meta {
	if m.errors == nil {
		m.errors = make(map[string]string)
	}
	m.errors[code] = message
	return m
}

// Tags sets the operation tags.
func (m *Meta) Tags(tags ...string) *Meta {
	m.tags = tags
	return m
}
