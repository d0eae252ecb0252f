package mux

import (
	"net/http"
	"strings"
	"sync"
)

// Router holds the route table and dispatches requests to the handler
// of the first matching route.
//
// It implements http.Handler:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/users/<int:id>", handler)
//	http.ListenAndServe(":8080", r)
type Router struct {
	// NotFoundHandler is called when no route matches.
	// If nil, http.NotFoundHandler() is used.
	// Corresponds to 404 Not Found per RFC 7231 Section 6.5.4.
	NotFoundHandler http.Handler

	// MethodNotAllowedHandler is called when a route matches the path
	// but not the method. If nil, a default 405 handler is used.
	// Per RFC 7231 Section 6.5.5, the Allow header is always set before
	// this handler is invoked.
	MethodNotAllowedHandler http.Handler

	parent      parentRoute
	routes      []*Route
	namedRoutes map[string]*Route
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per route
	// to avoid re-wrapping on every request.
	handlerCache sync.Map // map[*Route]http.Handler

	strictSlash    bool
	skipClean      bool
	useEncodedPath bool
}

// NewRouter returns an empty router with no routes registered.
func NewRouter() *Router {
	return &Router{
		namedRoutes: make(map[string]*Route),
	}
}

// ServeHTTP matches the request against the route table and invokes
// the winning handler, answering 404, 405 or a strict-slash redirect
// when no route takes the request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Normalize the request path per RFC 3986 Section 5.2.4
	// (removing dot segments) unless SkipClean is enabled.
	if !r.skipClean {
		path := req.URL.Path
		if r.useEncodedPath {
			path = requestURIPath(req.URL)
		}
		if cleaned := cleanPath(path); cleaned != path {
			u := *req.URL
			u.Path = cleaned
			u.RawPath = ""
			req = req.Clone(req.Context())
			req.URL = &u
		}
	}

	var match RouteMatch
	var handler http.Handler

	if r.Match(req, &match) {
		handler = match.Handler
		if handler == nil {
			handler = defaultNotFoundHandler
		}
		req = setRouteContext(req, match.Route, match.Vars)
	} else {
		if match.methodNotAllowed {
			// RFC 7231 Section 6.5.5: the origin server MUST generate
			// an Allow header field in a 405 response.
			allowed := allowedMethods(r, req)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			handler = r.MethodNotAllowedHandler
			if handler == nil {
				handler = defaultMethodNotAllowedHandler
			}
		} else {
			handler = r.NotFoundHandler
			if handler == nil {
				handler = defaultNotFoundHandler
			}
		}
	}

	// Apply strict slash redirect if needed.
	if match.Route != nil && match.Route.strictSlash {
		tpl := match.Route.pathRegexp
		if tpl != nil {
			tplHasSlash := strings.HasSuffix(tpl.template, "/")
			urlHasSlash := strings.HasSuffix(req.URL.Path, "/")
			if tplHasSlash != urlHasSlash && strings.TrimSuffix(req.URL.Path, "/") != "" {
				u := *req.URL
				if tplHasSlash {
					u.Path += "/"
				} else {
					u.Path = strings.TrimSuffix(u.Path, "/")
				}
				// RFC 7538 Section 3: 308 preserves the request method,
				// unlike 301 which allows clients to change POST to GET.
				http.Redirect(w, req, u.String(), http.StatusPermanentRedirect)
				return
			}
		}
	}

	handler.ServeHTTP(w, req)
}

// Match attempts to match the given request against the router's routes.
// Distinguishes between 404 Not Found and 405 Method Not Allowed by
// tracking method mismatches independently across route iteration.
func (r *Router) Match(req *http.Request, match *RouteMatch) bool {
	var methodNotAllowed bool
	for _, route := range r.routes {
		if route.Match(req, match) {
			if match.Handler != nil && len(r.middlewares) > 0 {
				if cached, ok := r.handlerCache.Load(match.Route); ok {
					match.Handler = cached.(http.Handler)
				} else {
					wrapped := r.applyMiddleware(match.Handler)
					r.handlerCache.Store(match.Route, wrapped)
					match.Handler = wrapped
				}
			}
			return true
		}
		if match.MatchErr == ErrMethodMismatch {
			methodNotAllowed = true
		}
	}

	if methodNotAllowed {
		match.MatchErr = ErrMethodMismatch
		match.methodNotAllowed = true
		return false
	}

	match.MatchErr = ErrNotFound
	return false
}

// StrictSlash defines the trailing slash behavior for new routes.
// When true, if the route path is "/path/", accessing "/path" will
// redirect to "/path/" and vice versa. Uses 308 Permanent Redirect
// (RFC 7538) to preserve the original request method.
func (r *Router) StrictSlash(value bool) *Router {
	r.strictSlash = value
	return r
}

// SkipClean defines the path cleaning behavior for new routes.
// When true, the path will not be cleaned (path.Clean will not be called).
func (r *Router) SkipClean(value bool) *Router {
	r.skipClean = value
	return r
}

// UseEncodedPath tells the router to match the percent-encoded original
// path (RFC 3986 Section 2.1) to the routes, instead of the decoded path.
func (r *Router) UseEncodedPath() *Router {
	r.useEncodedPath = true
	return r
}

// --- Route registration ---

// NewRoute appends an empty route to the table, inheriting the
// router's slash, clean and encoding settings.
func (r *Router) NewRoute() *Route {
	route := &Route{
		parent:         r,
		namedRoutes:    r.namedRoutes,
		strictSlash:    r.strictSlash,
		skipClean:      r.skipClean,
		useEncodedPath: r.useEncodedPath,
	}
	r.routes = append(r.routes, route)
	return route
}

// Handle registers handler under the given rule; see ParseRule for the
// placeholder syntax the rule accepts.
func (r *Router) Handle(path string, handler http.Handler) *Route {
	return r.NewRoute().Path(path).Handler(handler)
}

// HandleFunc is the http.HandlerFunc form of Handle.
func (r *Router) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *Route {
	return r.NewRoute().Path(path).HandlerFunc(f)
}

// PathPrefix registers a new route matching a rule prefix, usually
// followed by Subrouter to group routes under it.
func (r *Router) PathPrefix(tpl string) *Route {
	return r.NewRoute().PathPrefix(tpl)
}

// Get returns the route registered under the given name, or nil.
func (r *Router) Get(name string) *Route {
	return r.namedRoutes[name]
}

// Walk visits every route in the router and its subrouters in
// registration order, calling walkFn with the route, its owning router
// and the ancestor prefix routes. Returning SkipRouter from walkFn
// skips the subtree below a prefix route.
func (r *Router) Walk(walkFn WalkFunc) error {
	return r.walk(walkFn, nil)
}

func (r *Router) walk(walkFn WalkFunc, ancestors []*Route) error {
	for _, route := range r.routes {
		err := walkFn(route, r, ancestors)
		if err == SkipRouter {
			continue
		}
		if err != nil {
			return err
		}
		if route.handler != nil {
			if sr, ok := route.handler.(*Router); ok {
				if err := sr.walk(walkFn, append(ancestors, route)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// --- parentRoute interface implementation ---

func (r *Router) getNamedRoutes() map[string]*Route {
	return r.namedRoutes
}

func (r *Router) getPathRegexp() *routeRegexp {
	if r.parent != nil {
		return r.parent.getPathRegexp()
	}
	return nil
}

// applyMiddleware wraps the handler with all registered middleware.
func (r *Router) applyMiddleware(handler http.Handler) http.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i].Middleware(handler)
	}
	return handler
}

// Use appends a MiddlewareFunc to the chain. Middleware is applied to
// matched handlers only.
func (r *Router) Use(mwf ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mwf...)
}
