// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options for NewAdapter, grounded on builder/options.go's
// "type Option func(*config); With* mutate one unexported struct" shape,
// applied here to the two named model attributes (spec §4.11) a caller
// most often wants set before the first Optimize call: Silent and
// TimeLimitSec.

package solver

// adapterConfig is NewAdapter's resolved construction-time state.
type adapterConfig struct {
	silent       bool
	hasTimeLimit bool
	timeLimitSec float64
}

// AdapterOption customizes NewAdapter.
type AdapterOption func(*adapterConfig)

// WithSilent sets the adapter's initial Silent state, equivalent to
// calling SetSilent immediately after construction.
func WithSilent(silent bool) AdapterOption {
	return func(c *adapterConfig) { c.silent = silent }
}

// WithTimeLimitSec sets the adapter's initial TimeLimitSec, equivalent
// to calling SetTimeLimitSec immediately after construction.
func WithTimeLimitSec(seconds float64) AdapterOption {
	return func(c *adapterConfig) {
		c.timeLimitSec = seconds
		c.hasTimeLimit = true
	}
}

// applyOptions pushes cfg's resolved settings through the same
// attribute tables SetSilent/SetTimeLimitSec use. A back end that
// doesn't register one of these two model attributes simply keeps its
// own native default for that one; the adapter's local silent field
// (which only gates this package's own io tracing, not the back end)
// is always set regardless.
func (a *Adapter) applyOptions(cfg adapterConfig) {
	a.silent = cfg.silent
	_ = a.SetAttribute(EntityModel, 0, AttrSilent, Value{Kind: KindBool, Bool: cfg.silent})
	if cfg.hasTimeLimit {
		_ = a.SetAttribute(EntityModel, 0, AttrTimeLimitSec, Value{Kind: KindFloat, Float: cfg.timeLimitSec})
	}
}
