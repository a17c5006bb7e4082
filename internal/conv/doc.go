// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// Tool arguments arrive as decoded JSON (float64 numbers, strings, booleans) or as
// hand-built Go maps; AsInt, AsBool and AsString coerce them into the primitive the
// operation expects and report whether the coercion was lossless.
package conv
