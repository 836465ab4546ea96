// SPDX-License-Identifier: MIT
package model

import "errors"

var (
	// ErrUnknownVariable is returned when a VarIdx was never issued by
	// this model's variable Indexer (or was deleted).
	ErrUnknownVariable = errors.New("model: unknown variable handle")
	// ErrNoObjective is returned by Optimize when no objective was set.
	ErrNoObjective = errors.New("model: no objective set")
	// ErrAlreadyCompiled guards against mutating the model's variables
	// or constraints after Optimize has already built a solver problem;
	// a compiled model cannot be reopened for mutation.
	ErrAlreadyCompiled = errors.New("model: model already compiled; build a new model")
	// ErrEmptyExpression is returned when a constraint/objective method
	// is given a nil expression.
	ErrEmptyExpression = errors.New("model: empty expression")
)
