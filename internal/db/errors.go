package db

import "fmt"

// PersistenceError indicates storage was unavailable or an operation
// against it failed. When creation fails, the data handed to the
// adapter is lost; callers are expected to log this path.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
