// Package loosejson parses near-JSON text with a bounded set of textual
// repairs.
//
// User-authored layer definitions arrive from URL parameters and text
// fields, where single quotes and bare identifiers are common:
//
//	{id:'custom',type:'geojson',url:'https://x/y.geojson'}
//
// Parse first attempts a strict parse. On failure, and only if the text
// starts with '{' or '[', it applies three repairs in fixed order:
//
//  1. Normalize quote characters to double quotes, preserving
//     backslash-escaped quotes.
//  2. Quote bare object keys (a bare token immediately followed by ':').
//  3. Quote bare scalar values that are not boolean, null, numeric,
//     already quoted, or a nested object/array.
//
// The repairs are a quote-aware text scan, not a real parser. Trailing
// commas and unquoted brace-template URLs are not repaired; text that
// remains unparseable yields an error, never a panic. Already-valid quoted
// strings and numeric literals are never mutated.
package loosejson

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/alansaviolobo/atlaskit/pkg/errors"
)

// numberRegex matches a JSON numeric literal.
var numberRegex = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Parse parses s as JSON, repairing near-JSON text when a strict parse
// fails. It returns the decoded value, or an error with code REPAIR_FAILED
// when the text cannot be made parseable.
func Parse(s string) (any, error) {
	trimmed := strings.TrimSpace(s)

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		return v, nil
	}

	repaired, ok := Repair(trimmed)
	if !ok {
		return nil, errors.New(errors.ErrCodeRepairFailed, "text does not look like JSON: %.40q", trimmed)
	}

	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRepairFailed, err, "text is not parseable after repair")
	}

	return v, nil
}

// Object parses s like Parse but requires the result to be a JSON object.
func Object(s string) (map[string]any, error) {
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeRepairFailed, "expected a JSON object, got %T", v)
	}

	return obj, nil
}

// Repair applies the bounded repairs to s and returns the repaired text.
// The boolean is false when s does not start with '{' or '[', in which case
// no repair is attempted and s is returned unchanged.
//
// Repair does not guarantee the result parses; callers must re-parse.
func Repair(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return s, false
	}

	out := normalizeQuotes(trimmed)
	out = quoteBareTokens(out)

	return out, true
}

// normalizeQuotes converts unescaped single quotes to double quotes.
// A backslash-escaped single quote becomes a literal single quote, since
// the surrounding string is now double-quoted. All other escapes pass
// through untouched.
func normalizeQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	escaped := false
	for _, r := range s {
		if escaped {
			if r == '\'' {
				b.WriteRune('\'')
			} else {
				b.WriteByte('\\')
				b.WriteRune(r)
			}
			escaped = false
			continue
		}

		switch r {
		case '\\':
			escaped = true
		case '\'':
			b.WriteByte('"')
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteByte('\\')
	}

	return b.String()
}

// quoteBareTokens wraps bare keys and bare scalar values with double
// quotes in a single pass. The pass tracks string state, so structural
// characters inside already-quoted strings (a ':' in a URL, a ',' in a
// title) are never treated as delimiters. Keys end at ':'; values run to
// the next top-level ',', '}' or ']', which is what lets an unquoted URL
// keep its colons and slashes. Boolean, null and numeric value tokens
// stay unquoted.
func quoteBareTokens(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	inString := false
	escaped := false
	expectValue := false
	var stack []byte

	inArray := func() bool {
		return len(stack) > 0 && stack[len(stack)-1] == '['
	}

	for i := 0; i < len(s); {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			i++
			continue
		}

		switch c {
		case '"':
			inString = true
			b.WriteByte(c)
			i++
		case ':':
			expectValue = true
			b.WriteByte(c)
			i++
		case '{', '[':
			stack = append(stack, c)
			expectValue = c == '['
			b.WriteByte(c)
			i++
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			expectValue = false
			b.WriteByte(c)
			i++
		case ',':
			expectValue = inArray()
			b.WriteByte(c)
			i++
		case ' ', '\t', '\n', '\r':
			b.WriteByte(c)
			i++
		default:
			stop := ":,}]"
			if expectValue {
				stop = ",}]"
			}
			start := i
			for i < len(s) && !strings.ContainsRune(stop, rune(s[i])) {
				i++
			}

			raw := s[start:i]
			token := strings.TrimRight(raw, " \t\r\n")
			if !expectValue || !isLiteral(token) {
				b.WriteByte('"')
				b.WriteString(token)
				b.WriteByte('"')
				b.WriteString(raw[len(token):])
			} else {
				b.WriteString(raw)
			}
			expectValue = false
		}
	}

	return b.String()
}

func isLiteral(token string) bool {
	return token == "true" || token == "false" || token == "null" || numberRegex.MatchString(token)
}
