package mux

import (
	"net/http"
	"strings"
)

// CORSMethodMiddleware sets the Access-Control-Allow-Methods response
// header (Fetch Standard, CORS protocol) to every method registered for
// the rules matching the request path. It runs the same route-table scan
// that fills the Allow header on 405 responses, so the two headers always
// agree. When no matching rule declares methods the header is left unset.
func CORSMethodMiddleware(r *Router) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if methods := allowedMethods(r, req); len(methods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ","))
			}
			next.ServeHTTP(w, req)
		})
	}
}
