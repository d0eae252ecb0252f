package mux

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
)

// cleanPath returns the canonical path for p, eliminating . and ..
// elements (RFC 3986 Section 5.2.4).
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}

	return np
}

// requestURIPath returns the raw (percent-encoded) path of the request
// URL, falling back to the decoded path when no raw form is present.
func requestURIPath(u *url.URL) string {
	if u.RawPath != "" {
		return u.RawPath
	}
	return u.Path
}

// mapFromPairs converts variadic string pairs to a map.
func mapFromPairs(pairs ...string) (map[string]string, error) {
	length, err := checkPairs(pairs...)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, length/2)
	for i := 0; i < length; i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m, nil
}

// checkPairs returns the count of strings passed in, and an error if
// the count is not an even number.
func checkPairs(pairs ...string) (int, error) {
	length := len(pairs)
	if length%2 != 0 {
		return length, fmt.Errorf("mux: number of parameters must be multiple of 2, got %v", pairs)
	}
	return length, nil
}

// matchInArray returns true if the given string value is in the array.
func matchInArray(arr []string, value string) bool {
	for _, v := range arr {
		if v == value {
			return true
		}
	}
	return false
}

// allowedMethods collects, sorted, the methods of every route whose
// path matches the request. Feeds both the Allow header (RFC 7231
// Section 7.4.1) and CORSMethodMiddleware.
func allowedMethods(r *Router, req *http.Request) []string {
	seen := make(map[string]struct{})
	for _, route := range r.routes {
		if route.err != nil || route.pathRegexp == nil {
			continue
		}
		var m RouteMatch
		if !route.pathRegexp.Match(req, &m) {
			continue
		}
		methods, err := route.GetMethods()
		if err != nil {
			continue
		}
		for _, method := range methods {
			seen[strings.ToUpper(method)] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for method := range seen {
		out = append(out, method)
	}
	sort.Strings(out)
	return out
}

var defaultNotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "404 page not found", http.StatusNotFound)
})

var defaultMethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
})
