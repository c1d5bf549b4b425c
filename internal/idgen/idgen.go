package idgen

import "github.com/google/uuid"

// NewFunc returns a fresh globally unique identifier as string. Override in
// tests for determinism. The identifier space is large enough that
// collisions are negligible, so callers do not re-check for duplicates.
var NewFunc = func() string { return uuid.New().String() }

// New is a thin wrapper around NewFunc.
func New() string { return NewFunc() }
