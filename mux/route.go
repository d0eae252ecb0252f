package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// matcher is the interface implemented by route matchers.
type matcher interface {
	Match(*http.Request, *RouteMatch) bool
}

// parentRoute is the interface implemented by types that can serve as a
// route's parent (Router, or Route via Subrouter).
type parentRoute interface {
	getNamedRoutes() map[string]*Route
	getPathRegexp() *routeRegexp
}

// Route pairs one rule with its handler and matchers. The rule is both
// a request matcher and a reverse template for URL building.
type Route struct {
	parent      parentRoute
	handler     http.Handler
	matchers    []matcher
	pathRegexp  *routeRegexp
	name        string
	err         error
	namedRoutes map[string]*Route

	strictSlash    bool
	skipClean      bool
	useEncodedPath bool
}

// Match reports whether the route accepts the request, filling match
// with the handler, route and extracted rule variables on success.
func (r *Route) Match(req *http.Request, match *RouteMatch) bool {
	if r.err != nil {
		return false
	}

	var methodMismatch bool

	for _, m := range r.matchers {
		if !m.Match(req, match) {
			if _, ok := m.(methodMatcher); ok {
				methodMismatch = true
				continue
			}
			if match.MatchErr == ErrMethodMismatch {
				methodMismatch = true
				continue
			}
			return false
		}
	}

	if r.pathRegexp != nil && !r.pathRegexp.Match(req, match) {
		return false
	}

	// If the method didn't match but everything else did, record the
	// mismatch so the router can answer 405 instead of 404.
	if methodMismatch {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	// If the handler is a Router (subrouter), delegate to it.
	if r.handler != nil {
		if router, ok := r.handler.(*Router); ok {
			return router.Match(req, match)
		}
	}

	match.Route = r
	match.Handler = r.handler
	r.setMatch(req, match)

	return true
}

// setMatch extracts path variables from the request and stores them in
// the match.
func (r *Route) setMatch(req *http.Request, m *RouteMatch) {
	if r.pathRegexp == nil || len(r.pathRegexp.varsN) == 0 {
		return
	}
	if m.Vars == nil {
		m.Vars = make(map[string]string, len(r.pathRegexp.varsN))
	}

	p := req.URL.Path
	if r.pathRegexp.useEncodedPath {
		p = requestURIPath(req.URL)
	}
	r.pathRegexp.setVars(p, m.Vars)

	if r.pathRegexp.useEncodedPath {
		for _, name := range r.pathRegexp.varsN {
			if val, ok := m.Vars[name]; ok {
				if unescaped, err := url.PathUnescape(val); err == nil {
					m.Vars[name] = unescaped
				}
			}
		}
	}
}

// --- Matchers ---

// addMatcher adds a matcher to the route.
func (r *Route) addMatcher(m matcher) *Route {
	if r.err == nil {
		r.matchers = append(r.matchers, m)
	}
	return r
}

// addRegexpMatcher compiles a path or prefix rule for the route. When the
// route belongs to a subrouter, the parent's rule is prepended so the
// compiled rule covers the full path.
func (r *Route) addRegexpMatcher(tpl string, typ regexpType) error {
	if r.err != nil {
		return r.err
	}

	if r.parent != nil {
		if pr := r.parent.getPathRegexp(); pr != nil {
			tpl = strings.TrimRight(pr.template, "/") + tpl
		}
	}

	rr, err := newRouteRegexp(tpl, typ, routeRegexpOptions{
		strictSlash:    r.strictSlash,
		useEncodedPath: r.useEncodedPath,
	})
	if err != nil {
		return err
	}

	r.pathRegexp = rr
	return nil
}

// Handler sets the http.Handler dispatched when the route matches.
func (r *Route) Handler(handler http.Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// HandlerFunc is the http.HandlerFunc form of Handler.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// GetHandler returns the handler set on the route, or nil.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// Name names the route so it can be fetched later with Router.Get for
// reverse URL building. Naming a route twice is an error.
func (r *Route) Name(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("mux: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		r.name = name
		if r.namedRoutes != nil {
			r.namedRoutes[name] = r
		}
	}
	return r
}

// GetName returns the name for the route, if any.
func (r *Route) GetName() string {
	return r.name
}

// Path adds a path matcher to the route. The rule may contain
// <converter(args):name> placeholders; see ParseRule for the syntax.
func (r *Route) Path(tpl string) *Route {
	r.err = r.addRegexpMatcher(tpl, regexpTypePath)
	return r
}

// PathPrefix adds a path prefix matcher to the route. The prefix rule
// supports the same placeholder syntax as Path.
func (r *Route) PathPrefix(tpl string) *Route {
	r.err = r.addRegexpMatcher(tpl, regexpTypePrefix)
	return r
}

// Methods adds a method matcher to the route. Methods are matched against
// the request method token defined in RFC 7231 Section 4.
// Calling Methods multiple times replaces the previous method matcher.
func (r *Route) Methods(methods ...string) *Route {
	for i, m := range methods {
		methods[i] = strings.ToUpper(m)
	}
	// Remove existing method matchers to allow replacing via chained calls.
	filtered := r.matchers[:0]
	for _, m := range r.matchers {
		if _, ok := m.(methodMatcher); !ok {
			filtered = append(filtered, m)
		}
	}
	r.matchers = filtered
	return r.addMatcher(methodMatcher(methods))
}

// MatcherFunc adds an arbitrary predicate to the route's matchers.
func (r *Route) MatcherFunc(f MatcherFunc) *Route {
	return r.addMatcher(f)
}

// Subrouter turns the route into a nested Router. The route's prefix
// rule is prepended to every rule registered on the returned router.
func (r *Route) Subrouter() *Router {
	router := &Router{
		parent:         r,
		namedRoutes:    r.namedRoutes,
		strictSlash:    r.strictSlash,
		skipClean:      r.skipClean,
		useEncodedPath: r.useEncodedPath,
	}
	r.handler = router
	return router
}

// --- URL Building ---

// URLPath builds the path part of the URL for the route per RFC 3986
// Section 3.3. It accepts a sequence of key/value pairs for the route
// variables.
func (r *Route) URLPath(pairs ...string) (*url.URL, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.pathRegexp == nil {
		return nil, errors.New("mux: route doesn't have a path")
	}
	values, err := mapFromPairs(pairs...)
	if err != nil {
		return nil, err
	}
	path, err := r.pathRegexp.url(values)
	if err != nil {
		return nil, err
	}
	return &url.URL{Path: path}, nil
}

// --- Inspection ---

// GetPathTemplate returns the rule for the route path, if defined.
func (r *Route) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.pathRegexp == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	return r.pathRegexp.template, nil
}

// GetMethods returns the methods the route matches against.
func (r *Route) GetMethods() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.matchers {
		if methods, ok := m.(methodMatcher); ok {
			return []string(methods), nil
		}
	}
	return nil, errors.New("mux: route doesn't have methods")
}

// GetVarNames returns the variable names for the route in rule order.
func (r *Route) GetVarNames() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.pathRegexp == nil {
		return nil, nil
	}
	return r.pathRegexp.varsN, nil
}

// GetError returns any error that was set on the route.
func (r *Route) GetError() error {
	return r.err
}

// --- parentRoute interface implementation ---

func (r *Route) getNamedRoutes() map[string]*Route {
	return r.namedRoutes
}

func (r *Route) getPathRegexp() *routeRegexp {
	return r.pathRegexp
}

// methodMatcher matches the request method token (RFC 7231 Section 4)
// against a list of allowed methods.
type methodMatcher []string

func (m methodMatcher) Match(r *http.Request, _ *RouteMatch) bool {
	return matchInArray([]string(m), r.Method)
}
