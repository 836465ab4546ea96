// SPDX-License-Identifier: MIT
package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// toyBackend is a minimal in-memory Backend used only to exercise
// Adapter's dispatch logic; it is not a real solver binding.
type toyBackend struct {
	values map[NativeHandle]float64
	sense  ObjSense
}

func newToyBackend() *toyBackend {
	return &toyBackend{values: make(map[NativeHandle]float64)}
}

func (b *toyBackend) Name() string { return "toy" }

func (b *toyBackend) Tables() (variable, constraint, model AttributeTable) {
	variable = newAttributeTable()
	variable.Get[AttrValue] = func(h NativeHandle) (Value, error) {
		return Value{Kind: KindFloat, Float: b.values[h]}, nil
	}
	variable.Set[AttrValue] = func(h NativeHandle, v Value) error {
		b.values[h] = v.Float
		return nil
	}

	constraint = newAttributeTable()

	model = newAttributeTable()
	model.Set[AttrSilent] = func(h NativeHandle, v Value) error { return nil }
	model.Set[AttrTimeLimitSec] = func(h NativeHandle, v Value) error { return nil }
	model.Get[AttrTerminationStatus] = func(h NativeHandle) (Value, error) {
		return Value{Kind: KindStatus, Status: Optimal}, nil
	}
	return
}

func (b *toyBackend) GetRawParameter(name string) (Value, error) { return Value{}, ErrUnknownParameter }
func (b *toyBackend) SetRawParameter(name string, v Value) error { return ErrUnknownParameter }

func (b *toyBackend) AddVariable(lower, upper float64, domain DomainValue) (NativeHandle, error) {
	return NativeHandle(len(b.values)), nil
}
func (b *toyBackend) DeleteVariable(h NativeHandle) error { delete(b.values, h); return nil }
func (b *toyBackend) AddLinearConstraint(coeffs map[NativeHandle]float64, sense int, rhs float64) (NativeHandle, error) {
	return 0, nil
}
func (b *toyBackend) DeleteConstraint(h NativeHandle) error { return nil }
func (b *toyBackend) SetObjectiveSense(s ObjSense) error    { b.sense = s; return nil }
func (b *toyBackend) Optimize() (TerminationStatus, error)  { return Optimal, nil }

func TestAdapterGetSetAttributeRoundTrips(t *testing.T) {
	a := NewAdapter(newToyBackend())
	require.NoError(t, a.SetAttribute(EntityVariable, 1, AttrValue, Value{Kind: KindFloat, Float: 3.5}))
	v, err := a.GetAttribute(EntityVariable, 1, AttrValue)
	require.NoError(t, err)
	require.Equal(t, 3.5, v.Float)
}

func TestAdapterUnknownAttributeIsHardError(t *testing.T) {
	a := NewAdapter(newToyBackend())
	_, err := a.GetAttribute(EntityVariable, 0, AttrDualObjectiveValue)
	require.ErrorIs(t, err, ErrUnknownAttribute)
	err = a.SetAttribute(EntityConstraint, 0, AttrDual, Value{})
	require.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestAdapterSilentAndTimeLimitAndTerminationStatus(t *testing.T) {
	a := NewAdapter(newToyBackend())
	require.NoError(t, a.SetSilent(true))
	require.NoError(t, a.SetTimeLimitSec(30))
	status, err := a.TerminationStatus()
	require.NoError(t, err)
	require.Equal(t, Optimal, status)
}

func TestNewAdapterWithOptionsSetsInitialState(t *testing.T) {
	a := NewAdapter(newToyBackend(), WithSilent(true), WithTimeLimitSec(15))
	require.True(t, a.silent)
}

func TestAdapterOptimizePassesThrough(t *testing.T) {
	a := NewAdapter(newToyBackend())
	status, err := a.Optimize()
	require.NoError(t, err)
	require.Equal(t, Optimal, status)
}

func TestLibrarySpecCandidatesPrefersHomeEnvVar(t *testing.T) {
	t.Setenv("GUROBI_HOME", "/opt/gurobi1100/linux64")
	cands := GurobiSpec.candidates()
	require.NotEmpty(t, cands)
	require.Contains(t, cands[0], "/opt/gurobi1100/linux64")
	require.Contains(t, cands, "libgurobi110.so")
}

func TestLibrarySpecCandidatesFallsBackToDefaultNames(t *testing.T) {
	t.Setenv("HiGHS_HOME", "")
	cands := HighsSpec.candidates()
	require.Equal(t, []string{"libhighs.so"}, cands)
}

func TestAutoloadLibraryFailsWhenNoCandidateResolves(t *testing.T) {
	_, err := autoloadLibrary(LibrarySpec{DefaultNamesUnix: []string{"libdoesnotexist-modeling.so"}})
	require.ErrorIs(t, err, ErrLibraryNotFound)
}
