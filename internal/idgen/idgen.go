package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique session identifier. Override in tests
// for determinism.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new session identifier.
func New() string { return NewFunc() }
