// SPDX-License-Identifier: MIT
// File: builder.go
// Role: MakeTupleDict, the Cartesian-product builder (spec §4.3/§4.4),
// generalized from matrix/builder_helper.go's range/product idiom.

package tupledict

import "fmt"

// Skip is the null sentinel: a rule function returns it as its value
// (or returns ok=false) to have MakeTupleDict omit that coordinate entirely (spec §4.3's "skips
// entries where rule returns the null sentinel").
var Skip = struct{}{}

// Coord is one dimension's set of candidate values for the Cartesian
// product. A Coord element that is itself a []interface{} is flattened
// into the tuple key in place (spec's "flattens any nested tuples"),
// e.g. a Coord of [][]interface{}{{1,"a"},{1,"b"}} contributes two
// flattened components per selected value, not one.
type Coord []interface{}

// Rule computes the value for one flattened tuple key. Returning ok=false
// (or returning the Skip sentinel as value) causes MakeTupleDict to omit
// that entry.
type Rule[V any] func(key []interface{}) (value V, ok bool)

// MakeTupleDict takes the Cartesian product of coords, flattens any
// nested-tuple ([]interface{}) elements, applies rule to each flattened
// key, and stores the result unless rule reports ok=false or returns Skip.
//
// Complexity: O(prod(len(coords)) * cost(rule)).
func MakeTupleDict[V any](rule Rule[V], coords ...Coord) (*TupleDict[V], error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("tupledict: MakeTupleDict requires at least one coordinate")
	}

	// First pass: compute the flattened arity by flattening one sample
	// element from each coord (all elements of a coord must flatten to
	// the same width; mismatches surface as a build error below).
	flatArity := 0
	for _, c := range coords {
		if len(c) == 0 {
			return nil, fmt.Errorf("tupledict: empty coordinate set")
		}
		flatArity += flattenWidth(c[0])
	}

	d := New[V](flatArity)
	key := make([]interface{}, 0, flatArity)
	if err := product(coords, 0, key, rule, d); err != nil {
		return nil, err
	}
	return d, nil
}

func flattenWidth(v interface{}) int {
	if nested, ok := v.([]interface{}); ok {
		return len(nested)
	}
	return 1
}

func flattenInto(key []interface{}, v interface{}) []interface{} {
	if nested, ok := v.([]interface{}); ok {
		return append(key, nested...)
	}
	return append(key, v)
}

func product[V any](coords []Coord, dim int, prefix []interface{}, rule Rule[V], d *TupleDict[V]) error {
	if dim == len(coords) {
		value, ok := rule(prefix)
		if !ok || any(value) == any(Skip) {
			return nil
		}
		key := append([]interface{}(nil), prefix...)
		return d.Set(key, value)
	}
	for _, v := range coords[dim] {
		next := flattenInto(append([]interface{}(nil), prefix...), v)
		if err := product(coords, dim+1, next, rule, d); err != nil {
			return err
		}
	}
	return nil
}
