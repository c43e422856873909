package glow

import "errors"

// ErrNoRegistry is returned by constructors that were handed a nil
// registry. It is a wiring mistake, not a runtime condition.
var ErrNoRegistry = errors.New("glow: no registry (component used outside a mounted grid)")
