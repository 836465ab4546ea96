// SPDX-License-Identifier: MIT
// Package model implements NLPModel (spec §4.10): the single
// orchestrator that owns an Indexer per entity kind (variables, linear
// constraints, quadratic constraints, nonlinear constraints/objective
// terms), the group registry over recorded nlgraph.Graphs, and the
// Optimize() pipeline wiring autodiff -> codegen -> jit together into
// a Compiled problem (Optimize does not call a solver back end).
//
// One orchestrator, same discipline builder.BuildGraph uses for
// composing a core.Graph from constructors: variables/constraints are
// accumulated through method calls that validate and return sentinel
// errors, and Optimize() is the single place that resolves everything
// accumulated so far into a solver-ready problem. No partial-apply
// recovery is attempted on a failed Optimize(); callers fix the model
// and call it again.
package model
