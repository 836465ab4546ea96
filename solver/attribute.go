// SPDX-License-Identifier: MIT
// File: attribute.go
// Role: the abstract AttributeKey enumeration and the native-typed
// value it carries, per spec §4.11's attribute surface table.

package solver

// EntityKind distinguishes which table a given AttributeKey's closures
// are registered against.
type EntityKind int

const (
	EntityVariable EntityKind = iota
	EntityConstraint
	EntityModel
)

// AttributeKey is the closed enumeration spec §4.11's table lists.
type AttributeKey int

const (
	AttrValue AttributeKey = iota
	AttrLowerBound
	AttrUpperBound
	AttrPrimalStart
	AttrReducedCost
	AttrDomain
	AttrName
	AttrPrimal
	AttrDual
	AttrIIS
	AttrObjectiveSense
	AttrObjectiveValue
	AttrObjectiveBound
	AttrDualObjectiveValue
	AttrRelativeGap
	AttrBarrierIterations
	AttrSimplexIterations
	AttrNodeCount
	AttrNumberOfThreads
	AttrSilent
	AttrTimeLimitSec
	AttrSolveTimeSec
	AttrTerminationStatus
	AttrPrimalStatus
	AttrDualStatus
	AttrSolverName
	AttrSolverVersion
)

// TerminationStatus enumerates solve outcomes.
type TerminationStatus int

const (
	OptimizeNotCalled TerminationStatus = iota
	Optimal
	Infeasible
	DualInfeasible
	InfeasibleOrUnbounded
	LocallySolved
	LocallyInfeasible
	AlmostOptimal
	IterationLimit
	TimeLimit
	NodeLimit
	SolutionLimit
	MemoryLimit
	ObjectiveLimit
	NumericalError
	InvalidModel
	InvalidOption
	Interrupted
	OtherError
)

// SolutionStatus enumerates PrimalStatus/DualStatus values.
type SolutionStatus int

const (
	NoSolution SolutionStatus = iota
	FeasiblePoint
	NearlyFeasiblePoint
	InfeasiblePoint
	InfeasibilityCertificate
	UnknownSolutionStatus
)

// ObjSense is ObjectiveSense's value type.
type ObjSense int

const (
	Minimize ObjSense = iota
	Maximize
)

// Value is the type-tagged union every attribute getter returns and
// every setter accepts — one field per native type spec §4.11 names
// (float, int, bool, string, plus this package's own enums), with only
// the field matching Kind meaningful.
type Value struct {
	Kind ValueKind

	Float  float64
	Int    int
	Bool   bool
	String string
	Domain DomainValue
	Sense  ObjSense
	Status TerminationStatus
	SolStatus SolutionStatus
}

// ValueKind tags which field of Value is populated.
type ValueKind int

const (
	KindFloat ValueKind = iota
	KindInt
	KindBool
	KindString
	KindDomain
	KindSense
	KindStatus
	KindSolStatus
)

// DomainValue mirrors exprcore.Domain without importing exprcore here,
// since the abstract attribute surface is solver-agnostic and must not
// depend on the modeling layer's own package.
type DomainValue int

const (
	DomainContinuous DomainValue = iota
	DomainInteger
	DomainBinary
	DomainSemiContinuous
)
