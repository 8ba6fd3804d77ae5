package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alansaviolobo/atlaskit/pkg/errors"
)

// Load reads a catalog document from a local file. Files ending in .yml
// or .yaml are parsed as YAML, everything else as JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read catalog file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func parseYAML(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "catalog document is not valid YAML")
	}
	return fromRaw(raw), nil
}
