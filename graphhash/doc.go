// Package graphhash computes a structural shape hash over an nlgraph.Graph
// (spec §4.6): the sequence of op categories and their wiring, plus the
// slot indices within the graph's own variable/parameter tables, but
// never the external VarIdx values nor the numeric value of constants.
// Two graphs with the same shape hash are grouped together and must
// additionally pass StructurallyEqual before being merged into one
// equivalence class; the first-recorded graph in a class is its
// representative.
//
// Grounded on matrix/impl_adjacency.go's canonicalization-before-hashing
// idiom (stable ordering so isomorphic inputs hash identically) and on
// converterts's representation-normalization style.
package graphhash
