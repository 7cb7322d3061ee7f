package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrStoreUnavailable = errors.New("record store not available")
)
