package autodiff

import "errors"

// ErrNoOutputs is returned when Differentiate is asked to differentiate
// a representative with an empty output vector (ny == 0).
var ErrNoOutputs = errors.New("autodiff: representative has no output roots")
