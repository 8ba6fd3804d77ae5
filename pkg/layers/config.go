package layers

import (
	"encoding/json"
	"sort"

	"github.com/alansaviolobo/atlaskit/pkg/loosejson"
)

// Base field names shared by every layer kind. Everything else is either
// declared by the kind's TypeSpec or reported as an unrecognized field.
var baseFields = map[string]bool{
	"id":               true,
	"type":             true,
	"title":            true,
	"description":      true,
	"attribution":      true,
	"initiallyChecked": true,
	"style":            true,
	"inspect":          true,
}

// Config is a single layer configuration.
//
// Base fields are typed; type-specific fields live in Fields so that a
// config survives a decode/encode round trip without the registry having
// to know about it first. Unknown fields are preserved and surface as
// validation warnings, never hard errors.
type Config struct {
	ID               string         `json:"id"`
	Type             string         `json:"type"`
	Title            string         `json:"title,omitempty"`
	Description      string         `json:"description,omitempty"`
	Attribution      string         `json:"attribution,omitempty"`
	InitiallyChecked bool           `json:"initiallyChecked,omitempty"`
	Style            map[string]any `json:"style,omitempty"`
	Inspect          map[string]any `json:"inspect,omitempty"`

	// Fields holds type-specific and unrecognized top-level fields.
	Fields map[string]any `json:"-"`
}

// FromMap builds a Config from a decoded JSON object.
func FromMap(m map[string]any) *Config {
	c := &Config{}

	for k, v := range m {
		switch k {
		case "id":
			c.ID, _ = v.(string)
		case "type":
			c.Type, _ = v.(string)
		case "title":
			c.Title, _ = v.(string)
		case "description":
			c.Description, _ = v.(string)
		case "attribution":
			c.Attribution, _ = v.(string)
		case "initiallyChecked":
			c.InitiallyChecked, _ = v.(bool)
		case "style":
			c.Style, _ = v.(map[string]any)
		case "inspect":
			c.Inspect, _ = v.(map[string]any)
		default:
			if c.Fields == nil {
				c.Fields = make(map[string]any)
			}
			c.Fields[k] = v
		}
	}

	return c
}

// ParseConfig parses near-JSON text into a Config using the repair parser.
func ParseConfig(text string) (*Config, error) {
	obj, err := loosejson.Object(text)
	if err != nil {
		return nil, err
	}
	return FromMap(obj), nil
}

// Field returns a type-specific field by name.
func (c *Config) Field(name string) (any, bool) {
	v, ok := c.Fields[name]
	return v, ok
}

// Has reports whether the config carries the named field, checking both
// base fields and type-specific fields. Base string fields count as
// present only when non-empty.
func (c *Config) Has(name string) bool {
	switch name {
	case "id":
		return c.ID != ""
	case "type":
		return c.Type != ""
	case "title":
		return c.Title != ""
	case "description":
		return c.Description != ""
	case "attribution":
		return c.Attribution != ""
	case "initiallyChecked":
		return true
	case "style":
		return c.Style != nil
	case "inspect":
		return c.Inspect != nil
	}
	_, ok := c.Fields[name]
	return ok
}

// FieldNames returns the names of all type-specific fields, sorted.
func (c *Config) FieldNames() []string {
	names := make([]string, 0, len(c.Fields))
	for k := range c.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ToMap flattens the config back into a single JSON object.
func (c *Config) ToMap() map[string]any {
	m := make(map[string]any, len(c.Fields)+4)

	for k, v := range c.Fields {
		m[k] = v
	}

	m["id"] = c.ID
	m["type"] = c.Type
	if c.Title != "" {
		m["title"] = c.Title
	}
	if c.Description != "" {
		m["description"] = c.Description
	}
	if c.Attribution != "" {
		m["attribution"] = c.Attribution
	}
	if c.InitiallyChecked {
		m["initiallyChecked"] = true
	}
	if c.Style != nil {
		m["style"] = c.Style
	}
	if c.Inspect != nil {
		m["inspect"] = c.Inspect
	}

	return m
}

// MarshalJSON serializes the flattened object form.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToMap())
}

// UnmarshalJSON parses the flattened object form.
func (c *Config) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*c = *FromMap(m)
	return nil
}
