// SPDX-License-Identifier: MIT
// File: backend.go
// Role: the per-back-end attribute dispatch tables (spec §4.11: "two
// tables per entity kind: get-function map and set-function map from
// the abstract AttributeKey enum to a closure taking the native
// handle"). Grounded on matrix/errors.go's sentinel-table discipline,
// generalized from "one error per violated invariant" to "one typed
// closure per (entity-kind, AttributeKey)".

package solver

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/katalvlaran/modeling/modelerr"
)

// NativeHandle is whatever identifier the loaded back-end library uses
// for one of its own variables/constraints/the model itself (typically
// a small integer column/row index, occasionally an opaque pointer —
// the adapter treats it as an opaque uintptr-sized value either way).
type NativeHandle uintptr

// Getter reads one attribute off a native handle.
type Getter func(h NativeHandle) (Value, error)

// Setter writes one attribute onto a native handle.
type Setter func(h NativeHandle, v Value) error

// AttributeTable is one entity kind's (get,set) closure maps.
type AttributeTable struct {
	Get map[AttributeKey]Getter
	Set map[AttributeKey]Setter
}

func newAttributeTable() AttributeTable {
	return AttributeTable{Get: make(map[AttributeKey]Getter), Set: make(map[AttributeKey]Setter)}
}

// Backend is what one solver back-end's adapter file must supply: one
// AttributeTable per entity kind, plus raw (native-named) parameter
// access dispatched by the parameter's own declared type, plus the
// handful of structural operations (add/delete/solve) that sit outside
// the attribute enumeration entirely.
type Backend interface {
	Name() string
	Tables() (variable, constraint, model AttributeTable)

	// RawParameter looks up name's native type and returns its current
	// value typed accordingly (spec §4.11's "dispatches to the
	// matching typed getter/setter").
	GetRawParameter(name string) (Value, error)
	SetRawParameter(name string, v Value) error

	AddVariable(lower, upper float64, domain DomainValue) (NativeHandle, error)
	DeleteVariable(h NativeHandle) error
	AddLinearConstraint(coeffs map[NativeHandle]float64, sense int, rhs float64) (NativeHandle, error)
	DeleteConstraint(h NativeHandle) error

	SetObjectiveSense(s ObjSense) error
	Optimize() (TerminationStatus, error)
}

// Adapter is the public entry point model/solver-driving code uses; it
// wraps a concrete Backend and applies the same attribute-dispatch
// logic regardless of which back-end is loaded, so model code never
// type-switches on the back-end itself.
type Adapter struct {
	backend Backend
	varTab, consTab, modelTab AttributeTable
	silent  bool
}

// NewAdapter wraps backend, snapshotting its three attribute tables.
// By default the adapter is not silent and carries no time limit;
// WithSilent/WithTimeLimitSec set either before the first Optimize.
func NewAdapter(backend Backend, opts ...AdapterOption) *Adapter {
	v, c, m := backend.Tables()
	a := &Adapter{backend: backend, varTab: v, consTab: c, modelTab: m}
	var cfg adapterConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	a.applyOptions(cfg)
	return a
}

func (a *Adapter) tableFor(kind EntityKind) AttributeTable {
	switch kind {
	case EntityVariable:
		return a.varTab
	case EntityConstraint:
		return a.consTab
	default:
		return a.modelTab
	}
}

// GetAttribute routes a query through the entity kind's get-table; a
// missing entry is ErrUnknownAttribute (spec §4.11: "an absent entry is
// a hard error with the attribute name").
func (a *Adapter) GetAttribute(kind EntityKind, h NativeHandle, key AttributeKey) (Value, error) {
	tab := a.tableFor(kind)
	fn, ok := tab.Get[key]
	if !ok {
		return Value{}, modelerr.AttributeError(ErrUnknownAttribute, fmt.Sprintf("%v", key))
	}
	return fn(h)
}

// SetAttribute routes a write through the entity kind's set-table.
func (a *Adapter) SetAttribute(kind EntityKind, h NativeHandle, key AttributeKey, v Value) error {
	tab := a.tableFor(kind)
	fn, ok := tab.Set[key]
	if !ok {
		return modelerr.AttributeError(ErrUnknownAttribute, fmt.Sprintf("%v", key))
	}
	return fn(h, v)
}

// Silent and TimeLimitSec are spec §4.11's two named model attributes
// called out by name in SPEC_FULL.md's orchestration notes; both are
// ordinary AttrSilent/AttrTimeLimitSec round-trips through the model
// table, exposed as typed convenience methods.
func (a *Adapter) SetSilent(silent bool) error {
	if err := a.SetAttribute(EntityModel, 0, AttrSilent, Value{Kind: KindBool, Bool: silent}); err != nil {
		return err
	}
	a.silent = silent
	return nil
}

func (a *Adapter) SetTimeLimitSec(seconds float64) error {
	return a.SetAttribute(EntityModel, 0, AttrTimeLimitSec, Value{Kind: KindFloat, Float: seconds})
}

func (a *Adapter) TerminationStatus() (TerminationStatus, error) {
	v, err := a.GetAttribute(EntityModel, 0, AttrTerminationStatus)
	if err != nil {
		return OptimizeNotCalled, err
	}
	return v.Status, nil
}

// Optimize drives the back end's own solve. Unless silenced via
// SetSilent, it traces entry/exit through gosl/io the way the rest of
// the pack's own solve drivers report iteration/termination state —
// this module has no logging framework of its own, so a verbose trace
// is io.Pf/io.Pforan directly, gated on the same Silent attribute a
// real back end would otherwise honor natively.
func (a *Adapter) Optimize() (TerminationStatus, error) {
	if !a.silent {
		io.Pf("solver: %s: optimize starting\n", a.backend.Name())
	}
	status, err := a.backend.Optimize()
	if !a.silent {
		if err != nil {
			io.PfRed("solver: %s: optimize failed: %v\n", a.backend.Name(), err)
		} else {
			io.Pforan("solver: %s: optimize finished: %v\n", a.backend.Name(), status)
		}
	}
	return status, err
}
