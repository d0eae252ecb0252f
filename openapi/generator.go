package openapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/rulemux/rulemux/mux"
)

// Mode selects the inclusion policy deciding which routes appear in the
// document.
type Mode string

const (
	// ModeNormal includes every route except those whose metadata was
	// attached by a different registration scheme. Routes with no
	// metadata at all are included; only foreign metadata excludes.
	ModeNormal Mode = "normal"

	// ModeGreedy includes every route regardless of metadata.
	ModeGreedy Mode = "greedy"

	// ModeStrict includes only routes whose metadata was attached under
	// SchemeLocal.
	ModeStrict Mode = "strict"
)

// Config configures document generation. The zero value is usable; empty
// fields fall back to the documented defaults.
type Config struct {
	// Endpoint is the serving path of the document and viewer pages
	// (default "/docs/"). Routes under it never appear in the document.
	Endpoint string

	// URLPrefix is prepended to Endpoint when deciding which routes to
	// exclude, for routers mounted under a common prefix.
	URLPrefix string

	// StaticPrefix excludes static asset routes (default "/static").
	StaticPrefix string

	// Mode is the inclusion policy (default ModeNormal).
	Mode Mode

	// Version is the declared OpenAPI version string (default "3.0.2").
	Version string

	// Info is the document info block (default title "Service
	// Documents", version "latest").
	Info Info

	// ExtraProps is merged over the assembled document as the final
	// step. Nested maps merge key by key; other values replace.
	ExtraProps map[string]any
}

func (c *Config) setDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "/docs/"
	}
	if c.StaticPrefix == "" {
		c.StaticPrefix = "/static"
	}
	if c.Mode == "" {
		c.Mode = ModeNormal
	}
	if c.Version == "" {
		c.Version = "3.0.2"
	}
	if c.Info == (Info{}) {
		c.Info = Info{Title: "Service Documents", Version: "latest"}
	}
}

// Generator walks a router's route table and assembles the OpenAPI
// document from the routes and their attached metadata. The document is
// computed once on first access and cached for the generator's lifetime;
// route or metadata changes made afterwards are not picked up.
type Generator struct {
	cfg    Config
	router *mux.Router
	meta   map[*mux.Route]*Meta

	once sync.Once
	doc  map[string]any
	err  error
}

// New creates a generator for the given router.
func New(router *mux.Router, cfg Config) *Generator {
	cfg.setDefaults()
	return &Generator{
		cfg:    cfg,
		router: router,
		meta:   make(map[*mux.Route]*Meta),
	}
}

// Describe attaches a fresh metadata record to the route and returns it
// for fluent configuration:
//
//	gen.Describe(route).
//	    Doc("List users.").
//	    Response(UserList{}).
//	    Tags("users")
func (g *Generator) Describe(route *mux.Route) *Meta {
	m := NewMeta()
	g.meta[route] = m
	return m
}

// Register attaches a pre-built metadata record to the route. The record
// keeps whatever scheme it carries, so integrations can register foreign
// metadata that the inclusion policy will recognize.
func (g *Generator) Register(route *mux.Route, m *Meta) {
	g.meta[route] = m
}

// Document returns the assembled document. The first call computes and
// caches it; subsequent calls return the identical cached value, errors
// included.
func (g *Generator) Document() (map[string]any, error) {
	g.once.Do(func() {
		g.doc, g.err = g.assemble()
	})
	return g.doc, g.err
}

// bypass reports whether the route with the given metadata is excluded
// by the inclusion policy.
func (g *Generator) bypass(m *Meta) bool {
	switch g.cfg.Mode {
	case ModeGreedy:
		return false
	case ModeStrict:
		return m == nil || m.scheme != SchemeLocal
	}
	// Normal mode: metadata attached by a different scheme excludes the
	// route, but a route with no metadata at all is still included.
	return m != nil && m.scheme != "" && m.scheme != SchemeLocal
}

// assemble performs one full pass over the route table. A malformed
// route rule aborts the pass; everything else degrades to documented
// fallbacks.
func (g *Generator) assemble() (map[string]any, error) {
	reg := NewRegistry()
	paths := make(map[string]PathItem)

	tagSeen := make(map[string]bool)
	tags := []Tag{}

	skipPrefix := g.cfg.URLPrefix + g.cfg.Endpoint
	skipBase := strings.TrimRight(skipPrefix, "/")

	err := g.router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if _, ok := route.GetHandler().(*mux.Router); ok {
			return nil
		}
		if err := route.GetError(); err != nil {
			return err
		}

		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		if tpl == skipBase || strings.HasPrefix(tpl, skipPrefix) || strings.HasPrefix(tpl, g.cfg.StaticPrefix) {
			return nil
		}

		meta := g.meta[route]
		if g.bypass(meta) {
			return nil
		}

		path, params, err := ParsePath(tpl)
		if err != nil {
			return err
		}

		name := route.GetName()
		if name == "" {
			name = deriveName(path)
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{http.MethodGet}
		}

		// Multiple routes may share a path with different methods.
		item, ok := paths[path]
		if !ok {
			item = make(PathItem)
			paths[path] = item
		}

		for _, method := range methods {
			if method == http.MethodHead || method == http.MethodOptions {
				continue
			}

			if meta != nil {
				for _, tag := range meta.tags {
					if !tagSeen[tag] {
						tagSeen[tag] = true
						tags = append(tags, Tag{Name: tag})
					}
				}
			}

			item[strings.ToLower(method)] = buildOperation(reg, name, method, meta, params)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	definitions := reg.Flatten()

	doc := Document{
		OpenAPI:     g.cfg.Version,
		Info:        g.cfg.Info,
		Tags:        tags,
		Paths:       paths,
		Components:  Components{Schemas: reg.Schemas()},
		Definitions: definitions,
	}

	// Round-trip through JSON so the cached document and the extra
	// props merge operate on one uniform map representation.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	if len(g.cfg.ExtraProps) > 0 {
		Merge(out, g.cfg.ExtraProps)
	}

	return out, nil
}

// deriveName builds an operation name from a normalized path when the
// route has no name, e.g. "/users/{id}" becomes "users_id".
func deriveName(path string) string {
	var words []string
	for _, field := range strings.FieldsFunc(path, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	}) {
		words = append(words, field)
	}
	if len(words) == 0 {
		return "index"
	}
	return strings.Join(words, "_")
}
