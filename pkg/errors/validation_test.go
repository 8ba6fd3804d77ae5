package errors

import (
	"strings"
	"testing"
)

func TestValidateLayerID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple", id: "osm", wantErr: false},
		{name: "with separators", id: "geojson-plots.v2_1:a", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "leading dash", id: "-osm", wantErr: true},
		{name: "comma", id: "a,b", wantErr: true},
		{name: "brace", id: "{osm}", wantErr: true},
		{name: "quote", id: "o'sm", wantErr: true},
		{name: "space", id: "open street", wantErr: true},
		{name: "control character", id: "osm\n", wantErr: true},
		{name: "max length", id: strings.Repeat("a", 128), wantErr: false},
		{name: "too long", id: strings.Repeat("a", 129), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayerID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayerID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://tile.example.com/{z}/{x}/{y}.png"); err != nil {
		t.Errorf("template URL rejected: %v", err)
	}
	if err := ValidateURL("http://example.com"); err != nil {
		t.Errorf("http URL rejected: %v", err)
	}
	if err := ValidateURL(""); err == nil {
		t.Error("empty URL accepted")
	}
	if err := ValidateURL("javascript:alert(1)"); err == nil {
		t.Error("javascript scheme accepted")
	}
	if err := ValidateURL("ftp://example.com"); err == nil {
		t.Error("ftp scheme accepted")
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		bounds  []float64
		wantErr bool
	}{
		{name: "world", bounds: []float64{-180, -90, 180, 90}, wantErr: false},
		{name: "city extent", bounds: []float64{77.1, 28.4, 77.3, 28.8}, wantErr: false},
		{name: "too few values", bounds: []float64{0, 0, 1}, wantErr: true},
		{name: "west out of range", bounds: []float64{-181, 0, 0, 1}, wantErr: true},
		{name: "north out of range", bounds: []float64{0, 0, 1, 91}, wantErr: true},
		{name: "south above north", bounds: []float64{0, 10, 1, 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBounds(tt.bounds)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBounds(%v) error = %v, wantErr %v", tt.bounds, err, tt.wantErr)
			}
		})
	}
}

func TestValidateShareName(t *testing.T) {
	if err := ValidateShareName(""); err != nil {
		t.Errorf("empty name rejected: %v", err)
	}
	if err := ValidateShareName("My favourite map"); err != nil {
		t.Errorf("normal name rejected: %v", err)
	}
	if err := ValidateShareName(strings.Repeat("x", 257)); err == nil {
		t.Error("overlong name accepted")
	}
	if err := ValidateShareName("bad\x00name"); err == nil {
		t.Error("control characters accepted")
	}
}
