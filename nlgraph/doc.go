// Package nlgraph implements the nonlinear expression-graph recorder of
// spec §4.5: a directed acyclic graph of operation nodes (Constant,
// Variable, Parameter, Unary, Binary, Ternary, Nary), entered through a
// thread-local scoped context, with integer-power expansion and explicit
// constructors to fold exprcore values (VarIdx/SAF/SQF/ExprBuilder) in as
// equivalent subgraphs.
//
// Grounded on core/types.go's arena-of-structs-by-integer-id shape (a
// Graph owns its Vertex/Edge catalogs by index; here a Graph owns its
// Node catalog by index) and on dfs/bfs's "id-parented record" style for
// the node categories.
package nlgraph
