package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alansaviolobo/atlaskit/pkg/errors"
	"github.com/alansaviolobo/atlaskit/pkg/layers"
	"github.com/alansaviolobo/atlaskit/pkg/permalink"
)

func testDoc() *Document {
	return &Document{
		Name: "test",
		Layers: []*layers.Config{
			{ID: "osm", Type: "tms", Fields: map[string]any{"url": "https://a/{z}/{x}/{y}.png"}},
			{ID: "hospitals", Type: "geojson", Fields: map[string]any{"url": "https://x/h.geojson"}},
		},
	}
}

func TestLayerLookup(t *testing.T) {
	doc := testDoc()

	if cfg, ok := doc.Layer("osm"); !ok || cfg.Type != "tms" {
		t.Errorf("Layer(osm) = %v, %v", cfg, ok)
	}
	if _, ok := doc.Layer("missing"); ok {
		t.Error("Layer(missing) found")
	}
}

func TestIDs(t *testing.T) {
	got := testDoc().IDs()
	want := []string{"hospitals", "osm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestResolve(t *testing.T) {
	doc := testDoc()

	inline := &layers.Config{ID: "custom", Type: "geojson", Fields: map[string]any{"url": "https://x/c.geojson"}}
	refs := []permalink.Reference{
		permalink.Bare("hospitals"),
		permalink.Inline(inline),
		permalink.Bare("nonexistent"),
	}

	configs, missing := doc.Resolve(refs)

	if len(configs) != 2 {
		t.Fatalf("Resolve() = %d configs, want 2", len(configs))
	}
	if configs[0].ID != "hospitals" || configs[1].ID != "custom" {
		t.Errorf("configs = [%s %s]", configs[0].ID, configs[1].ID)
	}
	if !reflect.DeepEqual(missing, []string{"nonexistent"}) {
		t.Errorf("missing = %v", missing)
	}
}

func TestValidate(t *testing.T) {
	doc := testDoc()
	doc.Layers = append(doc.Layers, &layers.Config{ID: "broken", Type: "img", Fields: map[string]any{"url": "https://x/a.png"}})

	results, err := doc.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if !results["osm"].Valid || !results["hospitals"].Valid {
		t.Error("valid layers flagged invalid")
	}
	if results["broken"].Valid {
		t.Error("img layer without bounds passed validation")
	}
}

func TestValidateDuplicateID(t *testing.T) {
	doc := testDoc()
	doc.Layers = append(doc.Layers, &layers.Config{ID: "osm", Type: "tms", Fields: map[string]any{"url": "https://b"}})

	_, err := doc.Validate()
	if err == nil {
		t.Fatal("Validate() accepted duplicate ids")
	}
	if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
		t.Errorf("code = %v, want INVALID_CATALOG", errors.GetCode(err))
	}
}

func TestDefault(t *testing.T) {
	doc := Default()

	if len(doc.Layers) == 0 {
		t.Fatal("Default() catalog is empty")
	}

	osm, ok := doc.Layer("osm")
	if !ok {
		t.Fatal("default catalog missing osm layer")
	}
	if !osm.InitiallyChecked {
		t.Error("osm base layer not initially checked")
	}

	results, err := doc.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	for id, res := range results {
		if !res.Valid {
			t.Errorf("default layer %s invalid: %v", id, res.Errors)
		}
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"name":"local","layers":[{"id":"osm","type":"tms","url":"https://a/{z}/{x}/{y}.png"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Name != "local" {
		t.Errorf("Name = %q", doc.Name)
	}
	if cfg, ok := doc.Layer("osm"); !ok || !cfg.Has("url") {
		t.Errorf("layer not loaded: %v, %v", cfg, ok)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `name: local
layers:
  - id: osm
    type: tms
    url: https://a/{z}/{x}/{y}.png
  - id: hospitals
    type: geojson
    url: https://x/h.geojson
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Layers) != 2 {
		t.Fatalf("loaded %d layers, want 2", len(doc.Layers))
	}
	if doc.Layers[1].Type != "geojson" {
		t.Errorf("Type = %q", doc.Layers[1].Type)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load() succeeded on missing file")
	}
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("code = %v, want NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
		t.Errorf("code = %v, want INVALID_CATALOG", errors.GetCode(err))
	}
}
