package engine

import (
	"fmt"

	"github.com/abhisek/paesdiag/internal/itembank"
)

// CountMismatchError indicates a submitted answer batch of the wrong size.
// The submission is rejected whole; no partial state is committed.
type CountMismatchError struct {
	Stage string // "routing" or "stage2"
	Got   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%s: got %d answers, want %d", e.Stage, e.Got, itembank.PoolSize)
}

// SequenceError indicates an operation attempted before its prerequisite
// stage completed.
type SequenceError struct {
	Op   string
	Need string
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Need)
}

// IncompleteSessionError indicates the result was requested before the
// session reached the Complete phase.
type IncompleteSessionError struct {
	Phase Phase
}

func (e *IncompleteSessionError) Error() string {
	return fmt.Sprintf("session not complete: phase %s", e.Phase)
}
