// Package data owns the validated domain model for control socket replies.
//
// Ownership boundary:
// - domain types for monitors, workspaces, clients, layers, devices,
//   version info and options
// - normalizers from generic wire trees into validated domain values
// - sentinel and variant coercions (special workspace id, transforms,
//   tablet unions, option values)
//
// Every value returned by a decoder here is a fully validated immutable
// snapshot. Decoders never default a field that failed to decode; any
// violation surfaces as a typed wire error naming the entity and field.
package data
