package mux

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
)

// regexpType represents the kind of template being compiled.
type regexpType int

const (
	regexpTypePath regexpType = iota
	regexpTypePrefix
)

// routeRegexpOptions holds options for regexp compilation.
type routeRegexpOptions struct {
	strictSlash    bool
	useEncodedPath bool
}

// routeRegexp stores a compiled route rule and metadata about it.
type routeRegexp struct {
	// template is the original rule string.
	template string
	// strictSlash indicates optional trailing slash matching.
	strictSlash bool
	// useEncodedPath indicates matching against the encoded path.
	useEncodedPath bool
	// regexp is the compiled expression for the whole rule.
	regexp *regexp.Regexp
	// reverse is the rule with %s placeholders for URL building.
	reverse string
	// varsN are the variable names in rule order.
	varsN []string
	// varsR validate each captured variable value.
	varsR []varMatcher
	// wildcard indicates a prefix match (no $ anchor).
	wildcard bool
}

// newRouteRegexp parses a route rule and compiles it into a routeRegexp.
// Each placeholder becomes a capture group using its converter's pattern;
// static text is matched literally.
func newRouteRegexp(tpl string, typ regexpType, options routeRegexpOptions) (*routeRegexp, error) {
	segments, err := ParseRule(tpl)
	if err != nil {
		return nil, err
	}

	var (
		pattern strings.Builder
		reverse strings.Builder
		varsN   []string
		varsR   []varMatcher
	)
	pattern.WriteByte('^')

	for i, seg := range segments {
		if !seg.IsVariable() {
			raw := seg.Static
			// With strictSlash the trailing slash becomes an optional
			// [/]? group below; the reverse template keeps the original
			// text for URL building.
			if options.strictSlash && typ == regexpTypePath && i == len(segments)-1 {
				raw = strings.TrimSuffix(raw, "/")
			}
			pattern.WriteString(regexp.QuoteMeta(raw))
			reverse.WriteString(strings.ReplaceAll(seg.Static, "%", "%%"))
			continue
		}

		patt, matcher := converterPattern(seg.Converter, seg.Args)
		fmt.Fprintf(&pattern, "(%s)", patt)
		reverse.WriteString("%s")

		if matcher == nil {
			compiled, err := compileRegexp("^(?:" + patt + ")$")
			if err != nil {
				return nil, fmt.Errorf("mux: invalid pattern %q for variable %q: %w", patt, seg.Variable, err)
			}
			matcher = compiled
		}

		varsN = append(varsN, seg.Variable)
		varsR = append(varsR, matcher)
	}

	wildcard := typ == regexpTypePrefix
	if !wildcard {
		if options.strictSlash && typ == regexpTypePath {
			pattern.WriteString("[/]?")
		}
		pattern.WriteByte('$')
	}

	reg, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, err
	}

	return &routeRegexp{
		template:       tpl,
		strictSlash:    options.strictSlash,
		useEncodedPath: options.useEncodedPath,
		regexp:         reg,
		reverse:        reverse.String(),
		varsN:          varsN,
		varsR:          varsR,
		wildcard:       wildcard,
	}, nil
}

// Match checks whether the compiled rule matches the request path and
// every captured variable passes its converter's validator.
func (r *routeRegexp) Match(req *http.Request, _ *RouteMatch) bool {
	p := req.URL.Path
	// Use the percent-encoded path per RFC 3986 Section 2.1 when
	// configured.
	if r.useEncodedPath {
		p = requestURIPath(req.URL)
	}

	matches := r.regexp.FindStringSubmatch(p)
	if matches == nil {
		return false
	}
	for i := range r.varsN {
		if i+1 < len(matches) && !r.varsR[i].MatchString(matches[i+1]) {
			return false
		}
	}
	return true
}

// url builds a URL path from the rule and the given variable values.
func (r *routeRegexp) url(values map[string]string) (string, error) {
	urlValues := make([]any, len(r.varsN))
	for i, name := range r.varsN {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("mux: missing route variable %q", name)
		}
		if !r.varsR[i].MatchString(v) {
			return "", fmt.Errorf("mux: variable %q doesn't match, expected %q", name, r.varsR[i].String())
		}
		urlValues[i] = v
	}
	return fmt.Sprintf(r.reverse, urlValues...), nil
}

// setVars extracts variables from input and writes them into dst.
// Returns true if the input matched the rule.
func (r *routeRegexp) setVars(input string, dst map[string]string) bool {
	matches := r.regexp.FindStringSubmatch(input)
	if matches == nil {
		return false
	}
	for i, name := range r.varsN {
		if i+1 < len(matches) {
			dst[name] = matches[i+1]
		}
	}
	return true
}

// regexpCache caches compiled regular expressions by pattern string. The
// number of unique patterns is bounded by the number of registered
// routes, so the cache grows to a fixed size and stays there.
var regexpCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given pattern,
// compiling and caching it on first use.
func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := regexpCache.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil
}
