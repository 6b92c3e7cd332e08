package slnmatrix

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("loading: %w", ErrInvalidConfig), ExitConfigError},
		{"solution missing", ErrSolutionNotFound, ExitSolutionMissing},
		{"write failed", ErrWriteFailed, ExitWriteFailed},
		{"anchor errors are not fatal to the run", ErrMissingAnchor, ExitGeneralError},
		{"malformed documents are not fatal to the run", ErrMalformedProject, ExitGeneralError},
		{"unknown", errors.New("boom"), ExitGeneralError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
