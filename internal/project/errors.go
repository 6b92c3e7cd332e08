package project

import (
	"fmt"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// StructureError reports that a project document is missing a structural
// precondition (unparseable XML or a missing anchor block).
type StructureError struct {
	Path    string // Document path
	Anchor  string // Missing anchor, empty for general parse failures
	Message string // Primary error message
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	if e.Anchor != "" {
		return fmt.Sprintf("project %s: missing %s anchor", e.Path, e.Anchor)
	}
	return fmt.Sprintf("project %s: %s", e.Path, e.Message)
}

// Unwrap classifies the failure for errors.Is: a named missing anchor
// matches slnmatrix.ErrMissingAnchor, every other structural failure
// matches slnmatrix.ErrMalformedProject.
func (e *StructureError) Unwrap() error {
	if e.Anchor != "" {
		return slnmatrix.ErrMissingAnchor
	}
	return slnmatrix.ErrMalformedProject
}
