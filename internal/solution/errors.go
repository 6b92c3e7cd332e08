package solution

import (
	"fmt"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// ParseError reports a structural failure in a solution manifest.
type ParseError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("solution %s: %s", e.Path, e.Message)
	}
	return "solution: " + e.Message
}

// Unwrap lets callers match the error with errors.Is(err, slnmatrix.ErrMalformedSolution).
func (e *ParseError) Unwrap() error {
	return slnmatrix.ErrMalformedSolution
}
