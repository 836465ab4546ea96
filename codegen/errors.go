package codegen

import "errors"

// ErrNoOutputs is returned when asked to lower an empty root list.
var ErrNoOutputs = errors.New("codegen: no output roots to lower")

// ErrUnknownOp reports a node kind or operator with no lowering rule:
// the node alphabet is closed, so reaching this means a new nlgraph op was added without a
// matching lowering rule here.
var ErrUnknownOp = errors.New("codegen: no lowering rule for operator")
