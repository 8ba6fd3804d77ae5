package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// layerIDRegex matches valid logical layer identifiers. Ids appear verbatim
// in the layers URL parameter, so commas, braces and quotes are excluded.
var layerIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateLayerID validates a logical layer identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 128 characters
//   - No characters with meaning to the layer-list codec (comma, brace, quote)
func ValidateLayerID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLayer, "layer id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidLayer, "layer id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLayer, "layer id contains control characters")
		}
	}

	if !layerIDRegex.MatchString(id) {
		return New(ErrCodeInvalidLayer, "invalid layer id: %q", id)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https). Tile URL templates
// with {z}/{x}/{y} placeholders are accepted as-is.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateBounds validates a [west, south, east, north] bounding box.
func ValidateBounds(bounds []float64) error {
	if len(bounds) != 4 {
		return New(ErrCodeInvalidInput, "bounds must have exactly 4 values, got %d", len(bounds))
	}

	west, south, east, north := bounds[0], bounds[1], bounds[2], bounds[3]

	if west < -180 || west > 180 || east < -180 || east > 180 {
		return New(ErrCodeInvalidInput, "bounds longitude out of range [-180, 180]")
	}
	if south < -90 || south > 90 || north < -90 || north > 90 {
		return New(ErrCodeInvalidInput, "bounds latitude out of range [-90, 90]")
	}
	if south > north {
		return New(ErrCodeInvalidInput, "bounds south (%v) greater than north (%v)", south, north)
	}

	return nil
}

// ValidateShareName validates a user-supplied name for a saved layer set.
func ValidateShareName(name string) error {
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "share name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "share name contains control characters")
		}
	}

	return nil
}
