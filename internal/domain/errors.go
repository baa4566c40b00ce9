package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrInconsistentState = errors.New("collecting state without active case")
	ErrBatchNotFound     = errors.New("batch not found")
	ErrEvidenceNotFound  = errors.New("evidence not found")
	ErrCaseNotFound      = errors.New("case not found")

	// ErrTransient marks network/timeout failures from collaborators.
	// Adapters wrap with %w so callers can errors.Is against it.
	ErrTransient = errors.New("transient collaborator failure")
)

// PersistenceError reports a failed session store write. The in-memory state
// is not considered committed when one of these is returned.
type PersistenceError struct {
	Err error
	Op  string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
