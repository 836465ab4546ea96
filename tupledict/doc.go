// Package tupledict implements a sparse mapping from tuple keys to
// values, with a wildcard-capable Select and a Cartesian-product
// builder (MakeTupleDict), per spec §4.3/§4.4.
//
// Grounded on matrix/builder_helper.go's deterministic range/product
// construction helpers, generalized from "build matrix fixtures from
// coordinate ranges" to "build an arbitrary tuple-keyed value map".
package tupledict
