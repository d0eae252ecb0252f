package mux

import (
	"context"
	"errors"
	"net/http"
)

// RouteMatch stores information about a matched route.
type RouteMatch struct {
	Route   *Route
	Handler http.Handler
	Vars    map[string]string

	// MatchErr is set to appropriate matching error.
	// It is set to ErrMethodMismatch if there is a mismatch in
	// the request method and route method.
	MatchErr error

	methodNotAllowed bool
}

var (
	// ErrMethodMismatch is returned when the method in the request does
	// not match the method defined against the route.
	ErrMethodMismatch = errors.New("method is not allowed")

	// ErrNotFound is returned when no route match is found.
	ErrNotFound = errors.New("no matching route was found")

	// SkipRouter is used as a return value from WalkFuncs to indicate
	// that the router that walk is about to descend down to should be
	// skipped.
	SkipRouter = errors.New("skip this router")
)

// MatcherFunc is the function signature used by custom matchers.
type MatcherFunc func(*http.Request, *RouteMatch) bool

// Match returns the match for a given request.
func (m MatcherFunc) Match(r *http.Request, match *RouteMatch) bool {
	return m(r, match)
}

// MiddlewareFunc is a function which receives an http.Handler and
// returns another http.Handler. Middleware is called after a route is
// matched but before the route's handler runs.
type MiddlewareFunc func(http.Handler) http.Handler

// Middleware allows MiddlewareFunc to implement the middleware
// interface.
func (mw MiddlewareFunc) Middleware(handler http.Handler) http.Handler {
	return mw(handler)
}

// WalkFunc is the type of the function called for each route visited by
// Walk. At every invocation, it is given the current route and the
// current router, plus a list of parent routes that lead to the current
// route.
type WalkFunc func(route *Route, router *Router, ancestors []*Route) error

type contextKey int

const (
	varsKey contextKey = iota
	routeKey
)

// Vars returns the route variables for the current request, if any.
func Vars(r *http.Request) map[string]string {
	if rv := r.Context().Value(varsKey); rv != nil {
		return rv.(map[string]string)
	}
	return nil
}

// VarGet returns the named route variable for the current request and a
// boolean indicating whether it exists.
func VarGet(r *http.Request, name string) (string, bool) {
	v, ok := Vars(r)[name]
	return v, ok
}

// CurrentRoute returns the matched route for the current request, if
// any. This only works when called inside the handler of the matched
// route because the matched route is stored in the request context.
func CurrentRoute(r *http.Request) *Route {
	if rv := r.Context().Value(routeKey); rv != nil {
		return rv.(*Route)
	}
	return nil
}

// SetURLVars sets the URL variables for the given request, and returns
// a shallow copy of the request. This API should only be used for
// testing.
func SetURLVars(r *http.Request, val map[string]string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), varsKey, val))
}

// setRouteContext stores the matched route and its variables in the
// request context.
func setRouteContext(r *http.Request, route *Route, vars map[string]string) *http.Request {
	ctx := context.WithValue(r.Context(), routeKey, route)
	if vars != nil {
		ctx = context.WithValue(ctx, varsKey, vars)
	}
	return r.WithContext(ctx)
}
