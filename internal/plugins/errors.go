package plugins

import (
	"fmt"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// RuleError reports an invalid plugin-compatibility rule.
type RuleError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid plugin rule for %q: %s", e.Path, e.Message)
}

// Unwrap lets callers match the error with errors.Is(err, slnmatrix.ErrInvalidConfig).
func (e *RuleError) Unwrap() error {
	return slnmatrix.ErrInvalidConfig
}
