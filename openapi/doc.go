// Package openapi derives an OpenAPI document from a mux router's route
// table and per-route metadata.
//
// A Generator walks the router, parses each route rule into a normalized
// path with typed path parameters, correlates the route with its
// attached metadata (documentation text, declared request and response
// models, error responses, tags), and assembles everything into one
// document. The document is computed once and cached.
//
// # Basic Usage
//
//	r := mux.NewRouter()
//	gen := openapi.New(r, openapi.Config{
//	    Info: openapi.Info{Title: "Users API", Version: "1.0.0"},
//	})
//
//	route := r.HandleFunc("/users/<int:id>", getUser).
//	    Methods(http.MethodGet).
//	    Name("get_user")
//
//	gen.Describe(route).
//	    Doc("Fetch one user.\n\nLooks the user up by numeric ID.").
//	    Response(User{}).
//	    Error("404", "User not found").
//	    Tags("users")
//
//	gen.Handle(nil) // serve /docs/, /docs/openapi.json, /docs/openapi.yaml
//
// # Route Rules
//
// Path parameters come from the route rule's converters. A rule like
// "/items/<int(min=1,max=10):id>" documents as path "/items/{id}" with
// an integer parameter constrained to the 1..10 range. Unknown converter
// tags degrade to plain string parameters.
//
// # Declared Models
//
// Query, Body, Form and Response accept any Go value. Struct types are
// described through reflection: exported fields become properties, json
// tags control naming and optionality, and an `openapi` tag can add
// validation keywords:
//
//	type User struct {
//	    ID    int    `json:"id"`
//	    Name  string `json:"name" openapi:"minLength=1"`
//	    Email string `json:"email,omitempty" openapi:"format=email"`
//	}
//
// Types that implement Schemer supply their own schema body instead.
// Declared models are registered under their type name in the document's
// component schemas; nested named types are hoisted into the top-level
// definitions map.
//
// # Inclusion Policy
//
// Config.Mode decides which routes the document covers. ModeNormal (the
// default) includes all routes except those whose metadata was attached
// by a foreign scheme, ModeStrict includes only routes described through
// this package, and ModeGreedy includes everything. Routes under the
// serving endpoint or the static prefix are always excluded.
//
// # Overrides
//
// Config.ExtraProps is merged over the assembled document recursively,
// so callers can override or extend any part of it:
//
//	ExtraProps: map[string]any{
//	    "components": map[string]any{
//	        "securitySchemes": map[string]any{...},
//	    },
//	}
package openapi
