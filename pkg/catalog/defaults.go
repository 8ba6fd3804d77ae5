package catalog

import "github.com/alansaviolobo/atlaskit/pkg/layers"

// Default returns the built-in fallback catalog, used when no catalog is
// configured or the configured one cannot be fetched. It carries just
// enough base layers for the viewer to come up with something on screen.
func Default() *Document {
	return &Document{
		Name: "built-in defaults",
		Layers: []*layers.Config{
			{
				ID:               "osm",
				Type:             "tms",
				Title:            "OpenStreetMap",
				Attribution:      `© <a href="https://www.openstreetmap.org/copyright">OpenStreetMap contributors</a>`,
				InitiallyChecked: true,
				Fields: map[string]any{
					"url":     "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
					"maxzoom": float64(19),
				},
			},
			{
				ID:          "satellite",
				Type:        "tms",
				Title:       "Satellite",
				Attribution: `<a href="https://www.esri.com/">Esri</a> World Imagery`,
				Fields: map[string]any{
					"url":     "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
					"maxzoom": float64(18),
				},
			},
		},
	}
}
