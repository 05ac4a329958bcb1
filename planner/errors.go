package planner

import "github.com/pkg/errors"

var (
	// ErrNotFound means the function name is not known to the relevant table.
	ErrNotFound = errors.New("function not found")
	// ErrSignatureMismatch means the name is known but no registered overload's
	// argument types equal the query. No implicit widening is attempted.
	ErrSignatureMismatch = errors.New("no overload matches argument types")
	// ErrInvalidDescriptor means the descriptor set handed to NewRegistryInfo
	// is structurally invalid, e.g. it registers the same signature twice.
	ErrInvalidDescriptor = errors.New("invalid descriptor set")
)
