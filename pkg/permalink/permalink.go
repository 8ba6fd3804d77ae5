// Package permalink encodes and decodes the layers URL parameter.
//
// The parameter is a comma-separated, ordered list of layer references.
// Each entry is either a bare logical layer id, resolved against the
// catalog, or an inline JSON-looking object literal carrying its whole
// definition:
//
//	hospitals,{id:'custom',type:'geojson',url:'https://x/y.geojson'}
//
// Commas inside an object literal or inside a quoted string never split
// the list. Inline objects are parsed with the loosejson repair parser;
// entries that still fail to parse fall back to bare-id treatment so that
// a mangled permalink degrades instead of erroring.
//
// Inline configs are re-serialized in a canonical minified form with
// single-quote string delimiters, so the parameter value survives in a
// URL without percent-encoding every double quote. Percent-encoding of
// the parameter as a whole is the URL layer's job, not this codec's.
package permalink

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alansaviolobo/atlaskit/pkg/layers"
	"github.com/alansaviolobo/atlaskit/pkg/loosejson"
)

// Reference is one entry of the layer list: a bare id or an inline config.
type Reference struct {
	// ID is the logical layer id. For inline entries it is the config's id.
	ID string

	// Config is the inline definition, nil for bare references.
	Config *layers.Config

	// raw is the canonical serialized form of an inline entry, kept so
	// that re-encoding reproduces the entry byte-for-byte.
	raw string
}

// Bare returns a reference to a catalog layer by id.
func Bare(id string) Reference {
	return Reference{ID: id}
}

// Inline returns a reference carrying its whole definition.
func Inline(cfg *layers.Config) Reference {
	return Reference{ID: cfg.ID, Config: cfg, raw: canonical(cfg)}
}

// IsInline reports whether the reference carries an inline definition.
func (r Reference) IsInline() bool {
	return r.Config != nil
}

// String returns the entry as it appears in the URL parameter.
func (r Reference) String() string {
	if r.Config == nil {
		return r.ID
	}
	if r.raw == "" {
		return canonical(r.Config)
	}
	return r.raw
}

// Decode splits the layers parameter value into an ordered reference list.
//
// The scan is a single left-to-right pass holding three pieces of state:
// the active quote character (a different quote character seen while
// already inside a string is literal content, not a terminator), an
// escape flag consuming the character after a backslash verbatim, and a
// brace depth counter maintained only outside quoted regions. A comma
// separates entries only at depth zero outside any quote.
func Decode(param string) []Reference {
	var refs []Reference

	var entry strings.Builder
	var quote rune
	depth := 0
	escaped := false

	flush := func() {
		token := strings.TrimSpace(entry.String())
		entry.Reset()
		if token == "" {
			return
		}
		refs = append(refs, classify(token))
	}

	for _, r := range param {
		if escaped {
			entry.WriteRune(r)
			escaped = false
			continue
		}

		switch {
		case r == '\\':
			entry.WriteRune(r)
			escaped = true
		case quote != 0:
			entry.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			entry.WriteRune(r)
			quote = r
		case r == '{':
			entry.WriteRune(r)
			depth++
		case r == '}':
			entry.WriteRune(r)
			depth--
		case r == ',' && depth == 0:
			flush()
		default:
			entry.WriteRune(r)
		}
	}
	flush()

	return refs
}

// classify turns one completed entry into a reference. Object-looking
// entries are repair-parsed; anything else, including objects that stay
// unparseable after repair, is treated as a bare id.
func classify(token string) Reference {
	if !strings.HasPrefix(token, "{") || !strings.HasSuffix(token, "}") {
		return Bare(token)
	}

	obj, err := loosejson.Object(token)
	if err != nil {
		return Bare(token)
	}

	return Inline(layers.FromMap(obj))
}

// Encode joins a reference list back into a layers parameter value.
// Decoding the result yields a logically equivalent list: same ids, same
// inline field sets. Formatting of inline entries is canonical, so
// re-encoding a decoded value may differ from the original only
// cosmetically.
func Encode(refs []Reference) string {
	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}

// canonical renders a config as minified JSON with single-quote string
// delimiters. Embedded single quotes and embedded double quotes are both
// backslash-escaped, keeping the value readable by the repair parser.
// HTML escaping is off: attribution values carry markup, and <
// entities would not survive a decode intact.
func canonical(cfg *layers.Config) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg); err != nil {
		// Config maps hold only JSON-decoded values, so this is a
		// genuinely unexpected fault; degrade to the bare id.
		return cfg.ID
	}
	return singleQuoted(bytes.TrimRight(buf.Bytes(), "\n"))
}

func singleQuoted(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))

	inString := false
	escaped := false

	for _, r := range string(data) {
		if inString && escaped {
			b.WriteByte('\\')
			b.WriteRune(r)
			escaped = false
			continue
		}

		switch {
		case r == '"':
			b.WriteByte('\'')
			inString = !inString
		case inString && r == '\\':
			escaped = true
		case inString && r == '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
