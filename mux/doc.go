// Package mux implements a request router and dispatcher for matching
// incoming HTTP requests to their respective handler functions.
//
// The package implements routing semantics based on:
//   - RFC 9110 (HTTP Semantics, successor to RFC 7231)
//   - RFC 3986 (URIs)
//   - RFC 7538 (308 Permanent Redirect)
//
// # Router
//
// Create a new router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/articles/<category>/<int:id>", ArticleHandler)
//	r.HandleFunc("/products/<key>", ProductHandler)
//	http.Handle("/", r)
//
// # Route Rules
//
// Route rules mix static text with variable placeholders of the form
// <converter(args):name>. The converter decides which values the variable
// accepts; the optional argument list refines it. Omitting the converter
// selects the default converter, which matches a single path segment:
//
//	r.HandleFunc("/users/<name>", handler)
//	r.HandleFunc("/users/<int:id>", handler)
//	r.HandleFunc("/pages/<int(min=1,max=100):page>", handler)
//	r.HandleFunc("/files/<path:subpath>", handler)
//
// Available converters:
//
//	string  - a single path segment, optionally constrained by
//	          length, minlength and maxlength arguments (the default)
//	int     - unsigned integer, optionally constrained by min and max
//	float   - decimal number (e.g. 3.14, .5)
//	uuid    - RFC 4122 UUID (e.g. 550e8400-e29b-41d4-a716-446655440000)
//	path    - like string but also matches slashes
//	any     - one of a fixed set of literal values, e.g. <any(a, b):x>
//
// Unknown converter names match a single path segment. See ParseRule for
// the exact placeholder grammar.
//
// Variables are extracted and stored in the request context, accessible
// via the Vars function:
//
//	vars := mux.Vars(r)
//	category := vars["category"]
//
// # Matchers
//
// Routes support multiple matchers that can be combined:
//
//	// Method matching
//	r.HandleFunc("/users", handler).Methods(http.MethodGet, http.MethodPost)
//
//	// Custom matcher function
//	r.HandleFunc("/custom", handler).MatcherFunc(func(r *http.Request, rm *mux.RouteMatch) bool {
//	    return r.Header.Get("X-Custom") != ""
//	})
//
// # Subrouters
//
// Subrouters can be used to group routes under a common path prefix:
//
//	s := r.PathPrefix("/api").Subrouter()
//	s.HandleFunc("/users", UsersHandler)
//
// # Error Handling
//
// The Router provides two handler fields for error responses:
//
// NotFoundHandler is called when no route matches a request. Corresponds
// to 404 Not Found per RFC 9110 Section 15.5.5.
//
// MethodNotAllowedHandler is called when a route matches the path but not
// the method. If nil, a default 405 handler is used. The Allow header is
// always set before this handler is invoked, per RFC 9110 Section 15.5.6.
//
//	r.NotFoundHandler = http.HandlerFunc(custom404Handler)
//	r.MethodNotAllowedHandler = http.HandlerFunc(custom405Handler)
//
// # Context Functions
//
// Vars returns all route variables for the current request as a map:
//
//	vars := mux.Vars(r)
//
// VarGet returns a single route variable by name and a boolean indicating
// whether it exists:
//
//	id, ok := mux.VarGet(r, "id")
//
// CurrentRoute returns the matched route for the current request. This only
// works when called inside the handler of the matched route:
//
//	route := mux.CurrentRoute(r)
//	tpl, _ := route.GetPathTemplate()
//
// SetURLVars sets the URL variables for the given request, intended for
// testing route handlers:
//
//	req = mux.SetURLVars(req, map[string]string{"id": "42"})
//
// # Middleware
//
// Middleware can be added to a router to wrap matched handlers:
//
//	r.Use(mux.MiddlewareFunc(loggingMiddleware))
//
// CORSMethodMiddleware automatically sets the Access-Control-Allow-Methods
// response header based on registered route methods:
//
//	r.Use(mux.CORSMethodMiddleware(r))
//
// # URL Building
//
// Named routes support reverse URL building:
//
//	r.HandleFunc("/articles/<category>/<int:id>", handler).Name("article")
//	url, err := r.Get("article").URLPath("category", "tech", "id", "42")
//
// # Route Inspection
//
// Routes expose methods to inspect their configuration:
//
//	tpl, _ := route.GetPathTemplate()  // e.g. "/articles/<category>/<int:id>"
//	methods, _ := route.GetMethods()   // e.g. ["GET", "POST"]
//	vars, _ := route.GetVarNames()     // e.g. ["category", "id"]
//
// # Strict Slash
//
// StrictSlash defines the trailing slash behavior for new routes. When true,
// if the route path is "/path/", accessing "/path" will redirect to "/path/"
// and vice versa. Uses 308 Permanent Redirect (RFC 7538) to preserve the
// original request method:
//
//	r.StrictSlash(true)
//
// # Path Cleaning
//
// By default, the router cleans request paths by removing dot segments per
// RFC 3986 Section 5.2.4. SkipClean disables this behavior:
//
//	r.SkipClean(true)
//
// UseEncodedPath tells the router to match the percent-encoded original path
// (RFC 3986 Section 2.1) instead of the decoded path:
//
//	r.UseEncodedPath()
//
// # Request Binding
//
// BindJSON and BindXML decode a request body into a Go value. BindJSON
// rejects unknown fields by default; pass true to allow them. Both
// functions reject trailing data after the first value.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    var req CreateUserRequest
//	    if err := mux.BindJSON(r, &req); err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    // use req
//	}
//
// # Response Helpers
//
// ResponseJSON and ResponseXML encode a value and write it to the response
// with the appropriate Content-Type header. If encoding fails, an HTTP 500
// Internal Server Error is written instead.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    data := map[string]string{"message": "hello"}
//	    mux.ResponseJSON(w, http.StatusOK, data)
//	}
//
// # Walking Routes
//
// Walk traverses the router and all its subrouters, calling a function for
// each registered route:
//
//	r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
//	    tpl, _ := route.GetPathTemplate()
//	    fmt.Println(tpl)
//	    return nil
//	})
//
// Return SkipRouter from the walk function to skip descending into a
// subrouter.
package mux
