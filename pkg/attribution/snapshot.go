// Package attribution derives the credit footer of an atlas viewer from
// the render engine's current state.
//
// The reconciler never reaches into a live engine handle. It consumes
// immutable [Snapshot] values describing the style graph at one instant
// (style layers, sources, camera) and recomputes the full attribution
// string from scratch on every call. Full recomputation makes the
// algorithm idempotent and immune to duplicate or out-of-order events:
// the most recent snapshot always wins, and there is no diff state to
// corrupt.
package attribution

// StyleLayer is one rendering instruction in the engine's style graph.
// Several style layers can belong to one logical layer.
type StyleLayer struct {
	// ID is the style-layer id.
	ID string `json:"id"`

	// Source is the id of the data source feeding this style layer.
	Source string `json:"source"`

	// SourceLayer is the source-layer name for vector sources, if any.
	SourceLayer string `json:"sourceLayer,omitempty"`

	// Visibility is the layout visibility value. An empty value counts as
	// visible, matching the engine's default.
	Visibility string `json:"visibility,omitempty"`

	// GroupID is optional metadata naming the logical layer that owns
	// this style layer. When present it overrides all id-based inference.
	GroupID string `json:"groupId,omitempty"`
}

// Visible reports whether the style layer currently renders.
func (l StyleLayer) Visible() bool {
	return l.Visibility == "" || l.Visibility == "visible"
}

// Source is one data-supply object in the engine's style.
type Source struct {
	ID          string `json:"id"`
	Attribution string `json:"attribution,omitempty"`
}

// Camera is the current map view position.
type Camera struct {
	Zoom float64 `json:"zoom"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Snapshot is a read-only capture of the render engine's state.
type Snapshot struct {
	// Loaded is false until the engine has finished loading its style.
	// Reconciling an unloaded snapshot is a no-op, not an error.
	Loaded bool `json:"loaded"`

	// Layers are the style layers in style order.
	Layers []StyleLayer `json:"layers"`

	// Sources are the style's data sources.
	Sources []Source `json:"sources"`

	// Camera is the current view, used to rewrite location-hash
	// placeholders in attribution links.
	Camera Camera `json:"camera"`
}
