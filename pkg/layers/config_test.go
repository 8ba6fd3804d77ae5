package layers

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`{id:'custom',type:'geojson',url:'https://x/y.geojson'}`)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.ID != "custom" {
		t.Errorf("ID = %q, want custom", cfg.ID)
	}
	if cfg.Type != "geojson" {
		t.Errorf("Type = %q, want geojson", cfg.Type)
	}
	if v, ok := cfg.Field("url"); !ok || v != "https://x/y.geojson" {
		t.Errorf("Field(url) = %v, %v", v, ok)
	}
}

func TestParseConfigError(t *testing.T) {
	if _, err := ParseConfig(`{bad json`); err == nil {
		t.Fatal("ParseConfig() succeeded on unparseable text")
	}
}

func TestFromMapBaseAndExtraFields(t *testing.T) {
	cfg := FromMap(map[string]any{
		"id":               "rain",
		"type":             "csv",
		"title":            "Rainfall",
		"initiallyChecked": true,
		"url":              "https://x/rain.csv",
		"latField":         "lat",
	})

	if cfg.Title != "Rainfall" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if !cfg.InitiallyChecked {
		t.Error("InitiallyChecked = false, want true")
	}
	if got := cfg.FieldNames(); !reflect.DeepEqual(got, []string{"latField", "url"}) {
		t.Errorf("FieldNames() = %v", got)
	}
	if !cfg.Has("url") || !cfg.Has("title") || cfg.Has("description") {
		t.Error("Has() misreports field presence")
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	in := &Config{
		ID:          "sat",
		Type:        "tms",
		Title:       "Satellite",
		Attribution: `<a href="https://example.com">Example</a>`,
		Fields: map[string]any{
			"url":     "https://tiles.example.com/{z}/{x}/{y}.png",
			"maxzoom": float64(19),
		},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out Config
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(in.ToMap(), out.ToMap()) {
		t.Errorf("round trip changed config:\n in %#v\nout %#v", in.ToMap(), out.ToMap())
	}
}

func TestToMapOmitsEmptyBaseFields(t *testing.T) {
	cfg := &Config{ID: "a", Type: "tms"}
	m := cfg.ToMap()

	if _, ok := m["title"]; ok {
		t.Error("ToMap() carries empty title")
	}
	if _, ok := m["initiallyChecked"]; ok {
		t.Error("ToMap() carries false initiallyChecked")
	}
	if m["id"] != "a" || m["type"] != "tms" {
		t.Errorf("ToMap() = %v", m)
	}
}
