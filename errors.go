package revenge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the revenge package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("revenge: invalid move notation")

	// History errors
	ErrEmptyHistory = errors.New("revenge: no move to undo")

	// Storage errors
	ErrPersistence = errors.New("revenge: persistence failure")

	// State errors
	ErrInvalidState = errors.New("revenge: invalid cube state")
)

// PersistenceError reports a failed load, save or move log.
// Persistence failures never block play; they are logged and retried.
type PersistenceError struct {
	Op  string // load, save or log
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("revenge: persistence failure: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPersistence) true for every PersistenceError.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
