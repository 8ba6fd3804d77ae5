// Package layers defines the layer configuration model and the closed
// registry of layer kinds an atlas can display.
//
// A layer configuration is a loosely-typed object with an id, a type
// discriminator from a fixed enumeration, type-specific fields, and a
// shared set of base fields (title, attribution, style overrides, and so
// on). The registry holds one [TypeSpec] per kind and validates candidate
// configurations against it.
//
// The registry is stateless and deterministic: the same inputs always
// yield identical outputs, and there is no hidden mutable state. All
// validation failures are returned as data ([Result]), never panics.
package layers
