package service

import "errors"

var (
	// ErrValidation indicates bad input shape or range.
	ErrValidation = errors.New("invalid input")
	// ErrConflict indicates a state precondition lost to another writer.
	ErrConflict = errors.New("conflicting state")
	// ErrNotFound indicates an unknown id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition indicates an illegal status-machine edge.
	ErrInvalidTransition = errors.New("invalid status transition")
)
