package geom

import "errors"

// ErrDimensionMismatch is returned when a coordinate vector does not have the
// arity expected by the operation.
var ErrDimensionMismatch = errors.New("geom: dimension mismatch")
