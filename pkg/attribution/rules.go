package attribution

import "strings"

// ownerRule recognizes one style-layer naming convention: a kind prefix
// followed by the logical layer id, optionally followed by a render-role
// suffix ("vector-plots-outline" belongs to logical layer "plots").
type ownerRule struct {
	prefix string
}

// ownerRules is the fixed, ordered table of id-prefix conventions tried
// when a style layer carries no explicit group metadata. New naming
// conventions are added here; the inference algorithm itself never
// changes.
var ownerRules = []ownerRule{
	{prefix: "vector-"},
	{prefix: "geojson-"},
	{prefix: "csv-"},
	{prefix: "tms-"},
	{prefix: "raster-"},
	{prefix: "wms-"},
	{prefix: "wmts-"},
	{prefix: "img-"},
}

// roleSuffixes are render-role suffixes appended by widget code when one
// logical layer expands into several style layers.
var roleSuffixes = []string{
	"-fill",
	"-line",
	"-outline",
	"-circle",
	"-symbol",
	"-label",
	"-layer",
}

// inferOwner maps a style layer to the logical layer id that owns it, in
// strict priority order: explicit group metadata, then the prefix-pattern
// table, then direct or prefix match against the registered ids (in
// registration order). Returns "" when nothing matches.
func inferOwner(l StyleLayer, registered []string) string {
	if l.GroupID != "" {
		return l.GroupID
	}

	for _, rule := range ownerRules {
		if rest, ok := strings.CutPrefix(l.ID, rule.prefix); ok && rest != "" {
			return stripRole(rest)
		}
	}

	for _, id := range registered {
		if l.ID == id || strings.HasPrefix(l.ID, id+"-") {
			return id
		}
	}

	return ""
}

func stripRole(id string) string {
	for _, suffix := range roleSuffixes {
		if rest, ok := strings.CutSuffix(id, suffix); ok && rest != "" {
			return rest
		}
	}
	return id
}
