package layers

import "fmt"

// Result is the outcome of validating a configuration.
//
// Errors are structural violations that make the config unusable.
// Warnings flag suspicious but tolerated content (unknown kinds,
// unrecognized fields); they never make a save fail on their own.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks a configuration against its kind's TypeSpec.
//
// A config is valid only if id and type are present, every required field
// is present, and (when declared) at least one requiredOneOf field is
// present. An unrecognized type short-circuits with Valid=false and a
// warning rather than an error, so callers can tell "unknown kind" apart
// from "malformed config". Fields outside required, optional and the base
// set produce warnings, never errors.
func Validate(cfg *Config) Result {
	res := Result{Valid: true, Errors: []string{}, Warnings: []string{}}

	if cfg == nil {
		res.Valid = false
		res.errorf("missing layer configuration")
		return res
	}

	if cfg.ID == "" {
		res.Valid = false
		res.errorf("missing required field: id")
	}
	if cfg.Type == "" {
		res.Valid = false
		res.errorf("missing required field: type")
		return res
	}

	spec, ok := specs[cfg.Type]
	if !ok {
		res.Valid = false
		res.warnf("unknown layer type: %q", cfg.Type)
		return res
	}

	for _, field := range spec.Required {
		if !cfg.Has(field) {
			res.Valid = false
			res.errorf("layer type %q: missing required field: %s", cfg.Type, field)
		}
	}

	if len(spec.RequiredOneOf) > 0 {
		found := false
		for _, field := range spec.RequiredOneOf {
			if cfg.Has(field) {
				found = true
				break
			}
		}
		if !found {
			res.Valid = false
			res.errorf("layer type %q: at least one of %v is required", cfg.Type, spec.RequiredOneOf)
		}
	}

	allowed := make(map[string]bool, len(spec.Required)+len(spec.Optional)+len(spec.RequiredOneOf))
	for _, f := range spec.Required {
		allowed[f] = true
	}
	for _, f := range spec.Optional {
		allowed[f] = true
	}
	for _, f := range spec.RequiredOneOf {
		allowed[f] = true
	}

	for _, field := range cfg.FieldNames() {
		if !allowed[field] && !baseFields[field] {
			res.warnf("layer type %q: unrecognized field: %s", cfg.Type, field)
		}
	}

	return res
}
