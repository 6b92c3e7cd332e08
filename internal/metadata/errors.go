package metadata

import (
	"fmt"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// LookupError reports that compatibility metadata for a project could not
// be resolved. It carries the offending source path when one is known.
type LookupError struct {
	ProjectName string // Project whose metadata was requested
	Path        string // Metadata file involved, empty if unknown
	Message     string // Primary error message
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("metadata lookup for %q failed at %s: %s", e.ProjectName, e.Path, e.Message)
	}
	return fmt.Sprintf("metadata lookup for %q failed: %s", e.ProjectName, e.Message)
}

// Unwrap lets callers match the error with errors.Is(err, slnmatrix.ErrMetadataLookup).
func (e *LookupError) Unwrap() error {
	return slnmatrix.ErrMetadataLookup
}
