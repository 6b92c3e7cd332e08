package services

import (
	"fmt"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// WriteError reports that a rewritten document could not be persisted.
type WriteError struct {
	Path    string // Document path
	Message string // Underlying failure
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %s", e.Path, e.Message)
}

// Unwrap lets callers match the error with errors.Is(err, slnmatrix.ErrWriteFailed).
func (e *WriteError) Unwrap() error {
	return slnmatrix.ErrWriteFailed
}
