package mux

import (
	"fmt"
	"strconv"
	"strings"
)

// ConverterDefault is the converter assigned to placeholders that do not
// name one, e.g. "/users/<id>".
const ConverterDefault = "default"

// Segment is one parsed element of a route rule. A segment is either
// literal text or a variable placeholder; Variable is empty for literal
// segments. Segment order is significant: concatenating the segments in
// order reproduces the rule.
type Segment struct {
	// Static holds literal rule text. Empty for variable segments.
	Static string

	// Converter is the converter name of a variable segment. Placeholders
	// without an explicit converter get ConverterDefault.
	Converter string

	// Args is the raw converter argument string, without the surrounding
	// parentheses. Empty when the placeholder has no arguments.
	Args string

	// Variable is the placeholder name. Empty for static segments.
	Variable string
}

// IsVariable reports whether the segment is a variable placeholder.
func (s Segment) IsVariable() bool { return s.Variable != "" }

// DuplicateVariableError is returned by ParseRule when a rule uses the
// same variable name in two placeholders.
type DuplicateVariableError struct {
	Rule     string
	Variable string
}

func (e *DuplicateVariableError) Error() string {
	return fmt.Sprintf("mux: variable name %q used twice in rule %q", e.Variable, e.Rule)
}

// MalformedRuleError is returned by ParseRule when a rule contains stray
// angle brackets that do not form a valid placeholder.
type MalformedRuleError struct {
	Rule string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("mux: malformed url rule %q", e.Rule)
}

// ParseRule splits a route rule into an ordered sequence of segments.
//
// A rule consists of literal text interleaved with placeholders of the
// form <converter(args):variable> where the converter and its arguments
// are optional:
//
//	/users/<id>
//	/users/<uuid:id>
//	/items/<int(min=1,max=10):id>
//	/files/<path:rest>
//
// Converter and variable names must start with a letter or underscore and
// contain only letters, digits, and underscores. Text after the last
// placeholder becomes a trailing static segment; if that text still
// contains '<' or '>' the rule is rejected with a MalformedRuleError.
// Reusing a variable name within one rule yields a DuplicateVariableError.
func ParseRule(rule string) ([]Segment, error) {
	var segments []Segment
	used := make(map[string]bool)

	pos := 0
	for pos < len(rule) {
		open := strings.IndexByte(rule[pos:], '<')
		if open < 0 {
			break
		}

		seg, end, ok := scanPlaceholder(rule, pos+open)
		if !ok {
			break
		}

		if static := rule[pos : pos+open]; static != "" {
			segments = append(segments, Segment{Static: static})
		}

		if used[seg.Variable] {
			return nil, &DuplicateVariableError{Rule: rule, Variable: seg.Variable}
		}
		used[seg.Variable] = true

		segments = append(segments, seg)
		pos = end
	}

	if pos < len(rule) {
		remainder := rule[pos:]
		if strings.ContainsAny(remainder, "<>") {
			return nil, &MalformedRuleError{Rule: rule}
		}
		segments = append(segments, Segment{Static: remainder})
	}

	return segments, nil
}

// scanPlaceholder attempts to parse a placeholder starting at the '<' at
// rule[start]. It returns the parsed segment and the index just past the
// closing '>'. The scan mirrors the grammar exactly: an optional
// "converter" or "converter(args)" prefix followed by ':', then the
// variable name, then '>'. Argument scanning is lazy; the arguments end
// at the first "):" that lets the rest of the placeholder parse.
func scanPlaceholder(rule string, start int) (Segment, int, bool) {
	p := start + 1
	ident := scanIdent(rule, p)
	if ident == "" {
		return Segment{}, 0, false
	}
	p += len(ident)
	if p >= len(rule) {
		return Segment{}, 0, false
	}

	switch rule[p] {
	case '(':
		// Converter with arguments. Find each candidate "):" terminator
		// in turn; arguments cannot span lines.
		for k := p + 1; k < len(rule)-1; k++ {
			if rule[k] == '\n' {
				break
			}
			if rule[k] != ')' || rule[k+1] != ':' {
				continue
			}
			args := rule[p+1 : k]
			variable := scanIdent(rule, k+2)
			if variable == "" {
				continue
			}
			end := k + 2 + len(variable)
			if end < len(rule) && rule[end] == '>' {
				return Segment{Converter: ident, Args: args, Variable: variable}, end + 1, true
			}
		}
		return Segment{}, 0, false

	case ':':
		// Converter without arguments.
		variable := scanIdent(rule, p+1)
		if variable == "" {
			return Segment{}, 0, false
		}
		end := p + 1 + len(variable)
		if end < len(rule) && rule[end] == '>' {
			return Segment{Converter: ident, Variable: variable}, end + 1, true
		}
		return Segment{}, 0, false

	case '>':
		// Bare variable, default converter.
		return Segment{Converter: ConverterDefault, Variable: ident}, p + 1, true
	}

	return Segment{}, 0, false
}

// scanIdent returns the identifier starting at rule[pos], or "" when the
// character at pos cannot start one. Identifiers match
// [a-zA-Z_][a-zA-Z0-9_]*.
func scanIdent(rule string, pos int) string {
	i := pos
	for i < len(rule) {
		c := rule[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == pos {
				return ""
			}
		default:
			return rule[pos:i]
		}
		i++
	}
	return rule[pos:i]
}

// ParseConverterArgs splits a raw converter argument string into
// positional and keyword arguments. Arguments are comma separated;
// "name=value" pairs become keyword arguments, everything else is
// positional. Scalar values are converted: True/False/true/false to bool,
// None to nil, integers to int, decimals to float64; quoted strings lose
// their quotes; anything else stays a string.
//
//	ParseConverterArgs("min=1,max=10")   // kwargs: min=1 max=10
//	ParseConverterArgs("'a',\"b\",c")    // args: a b c
func ParseConverterArgs(raw string) ([]any, map[string]any) {
	var args []any
	kwargs := make(map[string]any)

	for _, token := range splitArgs(raw) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, value, isKwarg := cutKwarg(token)
		if isKwarg {
			kwargs[name] = convertArgValue(value)
		} else {
			args = append(args, convertArgValue(token))
		}
	}

	return args, kwargs
}

// splitArgs splits on commas that are not inside single or double quotes.
func splitArgs(raw string) []string {
	var (
		tokens []string
		begin  int
		quote  byte
	)
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			tokens = append(tokens, raw[begin:i])
			begin = i + 1
		}
	}
	return append(tokens, raw[begin:])
}

// cutKwarg splits "name=value" when name is a plain identifier. A '='
// inside a quoted positional value does not start a keyword argument.
func cutKwarg(token string) (string, string, bool) {
	name, value, found := strings.Cut(token, "=")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if name == "" || scanIdent(name, 0) != name {
		return "", "", false
	}
	return name, strings.TrimSpace(value), true
}

// convertArgValue maps a raw argument token to its scalar value.
func convertArgValue(token string) any {
	switch token {
	case "True", "true":
		return true
	case "False", "false":
		return false
	case "None":
		return nil
	}

	if len(token) >= 2 {
		if q := token[0]; (q == '\'' || q == '"') && token[len(token)-1] == q {
			return token[1 : len(token)-1]
		}
	}

	if n, err := strconv.Atoi(token); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}

	return token
}
