// Package protocol owns the NXT wire value model and field codec.
//
// Ownership boundary:
// - type tags and typed value construction
// - field-level encode/decode primitives
// - numeric range constants for caller-side validation
package protocol
