// Package catalog loads the atlas layer-catalog document.
//
// A catalog is a JSON (or YAML, for local files) document with a layers
// array of layer configurations. Catalogs come from three places, in
// order of preference: a remote URL (fetched with retry and cached), a
// local file (optionally watched for edits), and a small built-in default
// table used when fetching fails, so the viewer fails static, never blank.
package catalog

import (
	"fmt"
	"sort"

	"github.com/alansaviolobo/atlaskit/pkg/errors"
	"github.com/alansaviolobo/atlaskit/pkg/layers"
	"github.com/alansaviolobo/atlaskit/pkg/permalink"
)

// Document is a layer catalog: the set of logical layers a viewer offers,
// keyed by id, in display order.
type Document struct {
	Name   string           `json:"name,omitempty"`
	Layers []*layers.Config `json:"layers"`
}

// rawDocument is the decoded wire form, shared by the JSON and YAML paths.
type rawDocument struct {
	Name   string           `json:"name" yaml:"name"`
	Layers []map[string]any `json:"layers" yaml:"layers"`
}

func fromRaw(raw rawDocument) *Document {
	doc := &Document{Name: raw.Name, Layers: make([]*layers.Config, 0, len(raw.Layers))}
	for _, m := range raw.Layers {
		doc.Layers = append(doc.Layers, layers.FromMap(m))
	}
	return doc
}

// Layer returns a layer configuration by id.
func (d *Document) Layer(id string) (*layers.Config, bool) {
	for _, l := range d.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// IDs returns all layer ids in the catalog, sorted.
func (d *Document) IDs() []string {
	ids := make([]string, 0, len(d.Layers))
	for _, l := range d.Layers {
		ids = append(ids, l.ID)
	}
	sort.Strings(ids)
	return ids
}

// Resolve maps a decoded reference list to concrete configurations.
// Inline references carry their own config; bare ids are looked up in the
// catalog. Unresolvable ids are returned separately so the caller can
// decide between warning and failing.
func (d *Document) Resolve(refs []permalink.Reference) (configs []*layers.Config, missing []string) {
	for _, ref := range refs {
		if ref.IsInline() {
			configs = append(configs, ref.Config)
			continue
		}
		if cfg, ok := d.Layer(ref.ID); ok {
			configs = append(configs, cfg)
			continue
		}
		missing = append(missing, ref.ID)
	}
	return configs, missing
}

// Validate checks every layer in the catalog and enforces id uniqueness
// within the document. The map is keyed by layer id (or list position for
// layers without an id).
func (d *Document) Validate() (map[string]layers.Result, error) {
	results := make(map[string]layers.Result, len(d.Layers))
	seen := make(map[string]bool, len(d.Layers))

	for i, l := range d.Layers {
		key := l.ID
		if key == "" {
			key = fmt.Sprintf("#%d", i)
		}
		if seen[key] {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate layer id: %q", key)
		}
		seen[key] = true
		results[key] = layers.Validate(l)
	}

	return results, nil
}
