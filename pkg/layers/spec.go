package layers

import "sort"

// Property describes a single field of a layer kind.
type Property struct {
	Type        string   // "string", "number", "boolean", "array", "object"
	Default     any      // template pre-fill value (nil means zero value)
	Enum        []string // allowed values, when closed
	Description string
}

// TypeSpec is the specification of one layer kind: which fields a
// configuration of that kind must and may carry.
type TypeSpec struct {
	Name          string
	Description   string
	Required      []string
	Optional      []string
	RequiredOneOf []string
	Properties    map[string]Property
}

// specs is the closed enumeration of layer kinds. The registry is a static
// table: adding a kind means adding an entry here, nothing else.
var specs = map[string]TypeSpec{
	"style": {
		Name:          "style",
		Description:   "Toggles style layers already present in the base map style",
		RequiredOneOf: []string{"sourceLayer", "styleLayers"},
		Properties: map[string]Property{
			"sourceLayer": {Type: "string", Description: "Source-layer name whose style layers this layer controls"},
			"styleLayers": {Type: "array", Description: "Explicit list of style-layer ids to toggle"},
		},
	},
	"vector": {
		Name:        "vector",
		Description: "Vector tile service rendered with the layer's style block",
		Required:    []string{"url", "sourceLayer"},
		Optional:    []string{"minzoom", "maxzoom", "scheme", "promoteId"},
		Properties: map[string]Property{
			"url":         {Type: "string", Default: "", Description: "Tile URL template with {z}/{x}/{y} placeholders"},
			"sourceLayer": {Type: "string", Default: "", Description: "Source-layer name inside the tiles"},
			"minzoom":     {Type: "number", Default: float64(0)},
			"maxzoom":     {Type: "number", Default: float64(22)},
			"scheme":      {Type: "string", Enum: []string{"xyz", "tms"}, Default: "xyz"},
			"promoteId":   {Type: "string", Description: "Feature property promoted to feature id"},
		},
	},
	"tms": {
		Name:        "tms",
		Description: "Raster XYZ/TMS tile service",
		Required:    []string{"url"},
		Optional:    []string{"minzoom", "maxzoom", "tileSize", "scheme"},
		Properties: map[string]Property{
			"url":      {Type: "string", Default: "", Description: "Tile URL template with {z}/{x}/{y} placeholders"},
			"minzoom":  {Type: "number", Default: float64(0)},
			"maxzoom":  {Type: "number", Default: float64(22)},
			"tileSize": {Type: "number", Default: float64(256)},
			"scheme":   {Type: "string", Enum: []string{"xyz", "tms"}, Default: "xyz"},
		},
	},
	"wmts": {
		Name:        "wmts",
		Description: "OGC WMTS tile service",
		Required:    []string{"url"},
		Optional:    []string{"layer", "tileMatrixSet", "format", "minzoom", "maxzoom"},
		Properties: map[string]Property{
			"url":           {Type: "string", Default: "", Description: "GetTile URL or RESTful template"},
			"layer":         {Type: "string", Description: "WMTS layer identifier"},
			"tileMatrixSet": {Type: "string", Default: "EPSG:3857"},
			"format":        {Type: "string", Default: "image/png"},
			"minzoom":       {Type: "number", Default: float64(0)},
			"maxzoom":       {Type: "number", Default: float64(22)},
		},
	},
	"wms": {
		Name:        "wms",
		Description: "OGC WMS image service sliced into tiles",
		Required:    []string{"url", "layers"},
		Optional:    []string{"format", "version", "transparent", "width", "height"},
		Properties: map[string]Property{
			"url":         {Type: "string", Default: "", Description: "WMS endpoint URL"},
			"layers":      {Type: "string", Default: "", Description: "Comma-separated WMS layer names"},
			"format":      {Type: "string", Default: "image/png"},
			"version":     {Type: "string", Enum: []string{"1.1.1", "1.3.0"}, Default: "1.3.0"},
			"transparent": {Type: "boolean", Default: true},
			"width":       {Type: "number", Default: float64(256)},
			"height":      {Type: "number", Default: float64(256)},
		},
	},
	"geojson": {
		Name:          "geojson",
		Description:   "GeoJSON document, fetched from a URL or carried inline",
		Optional:      []string{"cluster", "promoteId"},
		RequiredOneOf: []string{"url", "data"},
		Properties: map[string]Property{
			"url":       {Type: "string", Description: "URL of the GeoJSON document"},
			"data":      {Type: "object", Description: "Inline GeoJSON object"},
			"cluster":   {Type: "boolean", Default: false},
			"promoteId": {Type: "string"},
		},
	},
	"csv": {
		Name:        "csv",
		Description: "Delimited point data converted to features",
		Required:    []string{"url"},
		Optional:    []string{"latField", "lonField", "delimiter"},
		Properties: map[string]Property{
			"url":       {Type: "string", Default: "", Description: "URL of the delimited text document"},
			"latField":  {Type: "string", Default: "latitude"},
			"lonField":  {Type: "string", Default: "longitude"},
			"delimiter": {Type: "string", Default: ","},
		},
	},
	"img": {
		Name:        "img",
		Description: "Single georeferenced image overlay",
		Required:    []string{"url", "bounds"},
		Optional:    []string{"opacity"},
		Properties: map[string]Property{
			"url":     {Type: "string", Default: "", Description: "Image URL"},
			"bounds":  {Type: "array", Default: []any{float64(-180), float64(-90), float64(180), float64(90)}, Description: "[west, south, east, north]"},
			"opacity": {Type: "number", Default: float64(1)},
		},
	},
	"raster-style-layer": {
		Name:        "raster-style-layer",
		Description: "Toggles a raster style layer already present in the base map style",
		Required:    []string{"styleLayer"},
		Optional:    []string{"opacity"},
		Properties: map[string]Property{
			"styleLayer": {Type: "string", Default: "", Description: "Style-layer id to toggle"},
			"opacity":    {Type: "number", Default: float64(1)},
		},
	},
	"layer-group": {
		Name:        "layer-group",
		Description: "Radio-button group of mutually exclusive member layers",
		Required:    []string{"layers"},
		Optional:    []string{"defaultLayer"},
		Properties: map[string]Property{
			"layers":       {Type: "array", Default: []any{}, Description: "Member layer ids, exactly one active at a time"},
			"defaultLayer": {Type: "string", Description: "Member selected when the group is first enabled"},
		},
	},
}

// Spec returns the specification for a layer kind.
func Spec(layerType string) (TypeSpec, bool) {
	s, ok := specs[layerType]
	return s, ok
}

// Types returns the names of all registered layer kinds, sorted.
func Types() []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
