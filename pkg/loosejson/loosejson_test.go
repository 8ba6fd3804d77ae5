package loosejson

import (
	"reflect"
	"testing"

	"github.com/alansaviolobo/atlaskit/pkg/errors"
)

func TestParseStrict(t *testing.T) {
	v, err := Parse(`{"id":"osm","opacity":0.5}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("Parse() = %T, want map", v)
	}
	if obj["id"] != "osm" {
		t.Errorf("id = %v, want osm", obj["id"])
	}
	if obj["opacity"] != 0.5 {
		t.Errorf("opacity = %v, want 0.5", obj["opacity"])
	}
}

func TestParseRepaired(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "single quotes",
			input: `{'id':'custom','type':'geojson'}`,
			want:  map[string]any{"id": "custom", "type": "geojson"},
		},
		{
			name:  "bare keys",
			input: `{id:"custom",type:"geojson"}`,
			want:  map[string]any{"id": "custom", "type": "geojson"},
		},
		{
			name:  "bare keys and single quotes with numbers",
			input: `{name: 'a', count: 2}`,
			want:  map[string]any{"name": "a", "count": float64(2)},
		},
		{
			name:  "bare scalar values",
			input: `{id:custom,type:geojson}`,
			want:  map[string]any{"id": "custom", "type": "geojson"},
		},
		{
			name:  "bare url value keeps its colon",
			input: `{url:https://x/y.geojson}`,
			want:  map[string]any{"url": "https://x/y.geojson"},
		},
		{
			name:  "single-quoted url untouched",
			input: `{id:'custom',type:'geojson',url:'https://x/y.geojson'}`,
			want:  map[string]any{"id": "custom", "type": "geojson", "url": "https://x/y.geojson"},
		},
		{
			name:  "booleans and null survive",
			input: `{a:true,b:false,c:null,d:1.5}`,
			want:  map[string]any{"a": true, "b": false, "c": nil, "d": 1.5},
		},
		{
			name:  "escaped single quote becomes literal",
			input: `{title:'it\'s here'}`,
			want:  map[string]any{"title": "it's here"},
		},
		{
			name:  "escaped double quote inside single-quoted string",
			input: `{attribution:'© <a href=\"https://osm.org\">OSM</a>'}`,
			want:  map[string]any{"attribution": `© <a href="https://osm.org">OSM</a>`},
		},
		{
			name:  "structural chars inside quoted strings",
			input: `{title:'a, b: c',url:'https://x'}`,
			want:  map[string]any{"title": "a, b: c", "url": "https://x"},
		},
		{
			name:  "nested object",
			input: `{id:a,style:{color:red,width:2}}`,
			want:  map[string]any{"id": "a", "style": map[string]any{"color": "red", "width": float64(2)}},
		},
		{
			name:  "numeric array untouched",
			input: `{bounds:[-180,-90,180,90]}`,
			want:  map[string]any{"bounds": []any{float64(-180), float64(-90), float64(180), float64(90)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(v, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, v, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "truncated object", input: `{bad json`},
		{name: "not json at all", input: `hello world`},
		{name: "empty", input: ``},
		{name: "trailing comma stays broken", input: `{a:1,}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, errors.ErrCodeRepairFailed) {
				t.Errorf("Parse(%q) code = %v, want REPAIR_FAILED", tt.input, errors.GetCode(err))
			}
		})
	}
}

func TestObject(t *testing.T) {
	obj, err := Object(`{id:osm}`)
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	if obj["id"] != "osm" {
		t.Errorf("id = %v, want osm", obj["id"])
	}

	if _, err := Object(`[1,2,3]`); err == nil {
		t.Error("Object() on array succeeded, want error")
	}
}

func TestRepairSkipsNonJSON(t *testing.T) {
	out, ok := Repair("plain text")
	if ok {
		t.Error("Repair() attempted repair on non-JSON text")
	}
	if out != "plain text" {
		t.Errorf("Repair() = %q, want input unchanged", out)
	}
}

func TestRepairIdempotentOnValid(t *testing.T) {
	in := `{"id":"osm","url":"https://tile.openstreetmap.org/{z}/{x}/{y}.png"}`
	out, ok := Repair(in)
	if !ok {
		t.Fatal("Repair() declined valid object text")
	}
	if out != in {
		t.Errorf("Repair() mutated valid JSON:\n got %s\nwant %s", out, in)
	}
}
