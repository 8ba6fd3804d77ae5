package layers

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		cfg          *Config
		wantValid    bool
		wantError    string // substring of some error, "" means no errors
		wantWarning  string // substring of some warning, "" means no warnings
	}{
		{
			name:      "valid tms layer",
			cfg:       &Config{ID: "osm", Type: "tms", Fields: map[string]any{"url": "https://tile.example.com/{z}/{x}/{y}.png"}},
			wantValid: true,
		},
		{
			name:      "missing id",
			cfg:       &Config{Type: "tms", Fields: map[string]any{"url": "https://x"}},
			wantValid: false,
			wantError: "missing required field: id",
		},
		{
			name:      "missing type",
			cfg:       &Config{ID: "osm"},
			wantValid: false,
			wantError: "missing required field: type",
		},
		{
			name:        "unknown type warns without erroring",
			cfg:         &Config{ID: "x", Type: "hologram"},
			wantValid:   false,
			wantWarning: `unknown layer type: "hologram"`,
		},
		{
			name:      "img missing bounds names the field",
			cfg:       &Config{ID: "overlay", Type: "img", Fields: map[string]any{"url": "https://x/a.png"}},
			wantValid: false,
			wantError: "missing required field: bounds",
		},
		{
			name:      "geojson with url",
			cfg:       &Config{ID: "plots", Type: "geojson", Fields: map[string]any{"url": "https://x/p.geojson"}},
			wantValid: true,
		},
		{
			name:      "geojson with inline data",
			cfg:       &Config{ID: "plots", Type: "geojson", Fields: map[string]any{"data": map[string]any{"type": "FeatureCollection"}}},
			wantValid: true,
		},
		{
			name:      "geojson with neither url nor data",
			cfg:       &Config{ID: "plots", Type: "geojson"},
			wantValid: false,
			wantError: "at least one of",
		},
		{
			name:      "style with sourceLayer",
			cfg:       &Config{ID: "water", Type: "style", Fields: map[string]any{"sourceLayer": "water"}},
			wantValid: true,
		},
		{
			name:      "wms missing layers",
			cfg:       &Config{ID: "w", Type: "wms", Fields: map[string]any{"url": "https://x/wms"}},
			wantValid: false,
			wantError: "missing required field: layers",
		},
		{
			name:        "unrecognized field warns",
			cfg:         &Config{ID: "osm", Type: "tms", Fields: map[string]any{"url": "https://x", "opacityy": 0.5}},
			wantValid:   true,
			wantWarning: "unrecognized field: opacityy",
		},
		{
			name:      "nil config",
			cfg:       nil,
			wantValid: false,
			wantError: "missing layer configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.cfg)

			if res.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors %v, warnings %v)", res.Valid, tt.wantValid, res.Errors, res.Warnings)
			}

			if tt.wantError == "" && len(res.Errors) > 0 {
				t.Errorf("Errors = %v, want none", res.Errors)
			}
			if tt.wantError != "" && !containsSubstring(res.Errors, tt.wantError) {
				t.Errorf("Errors = %v, want one containing %q", res.Errors, tt.wantError)
			}

			if tt.wantWarning == "" && len(res.Warnings) > 0 {
				t.Errorf("Warnings = %v, want none", res.Warnings)
			}
			if tt.wantWarning != "" && !containsSubstring(res.Warnings, tt.wantWarning) {
				t.Errorf("Warnings = %v, want one containing %q", res.Warnings, tt.wantWarning)
			}
		})
	}
}

func TestValidateBaseFieldsAlwaysAllowed(t *testing.T) {
	cfg := &Config{
		ID:          "osm",
		Type:        "tms",
		Title:       "OpenStreetMap",
		Description: "Base map",
		Attribution: "© OSM",
		Style:       map[string]any{"raster-opacity": 0.8},
		Inspect:     map[string]any{"title": "name"},
		Fields:      map[string]any{"url": "https://x"},
	}

	res := Validate(cfg)
	if !res.Valid || len(res.Warnings) > 0 {
		t.Errorf("base fields flagged: valid=%v warnings=%v", res.Valid, res.Warnings)
	}
}

func TestValidateResultSlicesNeverNil(t *testing.T) {
	res := Validate(&Config{ID: "osm", Type: "tms", Fields: map[string]any{"url": "https://x"}})
	if res.Errors == nil || res.Warnings == nil {
		t.Error("Result slices must be empty, not nil, for stable JSON output")
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
