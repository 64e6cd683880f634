package core

import "errors"

// ErrInvalidConfiguration is returned when a component is constructed with
// values it cannot run with (empty option lists, non-positive radius or
// limits, a target that cannot fit in the field). Callers wrap it with
// context using fmt.Errorf("...: %w", ...).
var ErrInvalidConfiguration = errors.New("invalid configuration")
