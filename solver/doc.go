// Package solver implements SolverAdapter (spec §4.11): a uniform
// facade over heterogeneous back-end APIs, each reduced to a small set
// of typed attribute get/set tables keyed by AttributeKey, library
// autoload via environment-variable/well-known-path discovery, and
// raw (back-end-native-named) parameter access dispatched by the
// parameter's native type.
//
// Each back-end is its own adapter value implementing Backend; the
// generic machinery here (attribute dispatch tables, autoload search)
// is shared, while raw parameters go straight to the Backend's own
// GetRawParameter/SetRawParameter, which resolve the native type. This matches spec §4.11's "table of
// typed attribute getters/setters" shape rather than one bespoke
// struct per back-end API surface.
package solver
