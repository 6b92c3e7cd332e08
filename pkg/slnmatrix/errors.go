package slnmatrix

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := rewriter.Rewrite(path, text)
//	if errors.Is(err, slnmatrix.ErrMissingAnchor) {
//	    // Document lacks a required anchor block
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSolutionNotFound indicates no solution manifest was found under
	// the rewrite root.
	ErrSolutionNotFound = errors.New("solution manifest not found")

	// ErrMalformedSolution indicates the solution manifest could not be
	// parsed (missing Global boundary or malformed Project declaration).
	ErrMalformedSolution = errors.New("malformed solution manifest")

	// ErrMissingAnchor indicates a project document lacks one of the
	// required anchor blocks (debug template, Debug|AnyCPU, Release|AnyCPU).
	ErrMissingAnchor = errors.New("missing anchor block")

	// ErrMalformedProject indicates a project document could not be
	// processed for a structural reason other than a missing anchor
	// (unparseable XML, missing root element, unexpected fault).
	ErrMalformedProject = errors.New("malformed project document")

	// ErrMetadataLookup indicates the metadata collaborator could not
	// resolve a project or asset path.
	ErrMetadataLookup = errors.New("metadata lookup failed")

	// ErrWriteFailed indicates a rewritten document could not be written
	// back to disk.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrSolutionNotFound):
		return ExitSolutionMissing
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	return ExitGeneralError
}
