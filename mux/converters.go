package mux

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// varMatcher validates a single route variable value beyond what the
// route regexp already guarantees. *regexp.Regexp satisfies this
// interface.
type varMatcher interface {
	MatchString(string) bool
	String() string
}

const uuidPattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// uuidMatcher validates UUID values with uuid.Parse, which enforces
// RFC 4122 variant rules the pattern alone cannot.
type uuidMatcher struct{}

func (uuidMatcher) MatchString(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func (uuidMatcher) String() string { return uuidPattern }

// intMatcher validates integer values against optional min/max bounds
// from the converter arguments, e.g. <int(min=1,max=10):id>.
type intMatcher struct {
	min, max *int
}

func (m *intMatcher) MatchString(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	if m.min != nil && n < *m.min {
		return false
	}
	if m.max != nil && n > *m.max {
		return false
	}
	return true
}

func (m *intMatcher) String() string { return `[0-9]+` }

// lengthMatcher validates string values against length constraints from
// the converter arguments, e.g. <string(length=2):code>.
type lengthMatcher struct {
	length, minLen, maxLen *int
}

func (m *lengthMatcher) MatchString(s string) bool {
	if m.length != nil && len(s) != *m.length {
		return false
	}
	if m.minLen != nil && len(s) < *m.minLen {
		return false
	}
	if m.maxLen != nil && len(s) > *m.maxLen {
		return false
	}
	return true
}

func (m *lengthMatcher) String() string { return `[^/]+` }

// converterPattern returns the regex fragment and optional value matcher
// for one placeholder. rawArgs is the unparsed argument string from the
// rule. Unknown converter names fall back to the default single-segment
// pattern rather than failing; the openapi package applies the same
// permissive fallback when deriving parameter schemas.
func converterPattern(name, rawArgs string) (string, varMatcher) {
	args, kwargs := ParseConverterArgs(rawArgs)

	switch name {
	case "int":
		return `[0-9]+`, &intMatcher{
			min: intKwarg(kwargs, "min"),
			max: intKwarg(kwargs, "max"),
		}

	case "float":
		return `[0-9]*\.?[0-9]+`, nil

	case "uuid":
		return uuidPattern, uuidMatcher{}

	case "path":
		// Matches across path separators; must not start with one so the
		// preceding static slash stays unambiguous.
		return `[^/].*?`, nil

	case "any":
		if len(args) == 0 {
			return `[^/]+`, nil
		}
		quoted := make([]string, len(args))
		for i, a := range args {
			quoted[i] = regexp.QuoteMeta(fmt.Sprint(a))
		}
		return "(?:" + strings.Join(quoted, "|") + ")", nil

	case "string", ConverterDefault:
		m := &lengthMatcher{
			length: intKwarg(kwargs, "length"),
			minLen: intKwarg(kwargs, "minlength"),
			maxLen: intKwarg(kwargs, "maxlength"),
		}
		if m.length == nil && m.minLen == nil && m.maxLen == nil {
			return `[^/]+`, nil
		}
		return `[^/]+`, m
	}

	return `[^/]+`, nil
}

// intKwarg extracts an integer keyword argument, tolerating float values
// such as min=1.0.
func intKwarg(kwargs map[string]any, key string) *int {
	v, ok := kwargs[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int:
		return &n
	case float64:
		i := int(n)
		return &i
	}
	return nil
}
