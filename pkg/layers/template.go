package layers

import (
	"strings"

	"github.com/google/uuid"

	"github.com/alansaviolobo/atlaskit/pkg/errors"
)

// Template returns a minimal valid configuration for a layer kind: a fresh
// id, the type, and every required field pre-filled from its declared
// default (or the zero value for its property type when no default is
// declared). Kinds with a requiredOneOf constraint get the first listed
// alternative pre-filled.
func Template(layerType string) (*Config, error) {
	spec, ok := specs[layerType]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownLayerType, "unknown layer type: %q", layerType)
	}

	cfg := &Config{
		ID:     layerType + "-" + uuid.NewString()[:8],
		Type:   layerType,
		Fields: make(map[string]any),
	}

	fill := spec.Required
	if len(fill) == 0 && len(spec.RequiredOneOf) > 0 {
		fill = spec.RequiredOneOf[:1]
	}

	for _, field := range fill {
		cfg.Fields[field] = fieldSentinel(spec, field)
	}

	return cfg, nil
}

func fieldSentinel(spec TypeSpec, field string) any {
	prop, ok := spec.Properties[field]
	if ok && prop.Default != nil {
		return prop.Default
	}

	switch {
	case !ok, prop.Type == "string":
		return ""
	case prop.Type == "number":
		return float64(0)
	case prop.Type == "boolean":
		return false
	case prop.Type == "array":
		return []any{}
	default:
		return map[string]any{}
	}
}

// TypeFromID guesses the layer kind a bare id most likely refers to, based
// on conventional id prefixes ("geojson-plots", "csv-rainfall"). Returns
// false when no prefix matches.
func TypeFromID(id string) (string, bool) {
	for _, t := range Types() {
		if strings.HasPrefix(id, t+"-") {
			return t, true
		}
	}
	return "", false
}
