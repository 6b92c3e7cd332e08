package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mgrebenkin/slnmatrix/internal/files/filesystem"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// Scanner discovers build documents from a directory tree. Scanner is
// safe for concurrent use by multiple goroutines as long as the provided
// fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.Provider
}

// NewScanner creates a workspace scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a workspace scanner with a custom filesystem
// provider. This is primarily useful for testing with in-memory
// filesystems. Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.Provider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// Discover walks the workspace rooted at root and collects its build
// documents: the solution manifest directly at the root and every
// project descriptor anywhere in the tree. Both lists come back sorted
// so repeated runs process documents in the same order. A missing
// solution is reported through an empty SolutionPath, not an error;
// the caller decides whether that is fatal.
func (s *Scanner) Discover(root string) (slnmatrix.Discovery, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return slnmatrix.Discovery{}, fmt.Errorf("failed to open workspace: %w", err)
	}

	var solutions []string
	var projects []string

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(file.Path())) {
		case slnmatrix.SolutionExt:
			// Only the root-level manifest describes this workspace;
			// nested ones belong to embedded packages.
			if atRoot(file.RelativePath()) {
				solutions = append(solutions, file.Path())
			}
		case slnmatrix.ProjectExt:
			projects = append(projects, file.Path())
		}
		return nil
	})
	if err != nil {
		return slnmatrix.Discovery{}, err
	}

	sort.Strings(solutions)
	sort.Strings(projects)

	discovery := slnmatrix.Discovery{ProjectPaths: projects}
	if len(solutions) > 0 {
		discovery.SolutionPath = solutions[0]
	}
	return discovery, nil
}

// atRoot reports whether a relative path names a direct child of the
// walked root.
func atRoot(relPath string) bool {
	return !strings.Contains(filepath.ToSlash(relPath), "/")
}

// Verify Scanner implements the interface at compile time
var _ slnmatrix.WorkspaceScanner = (*Scanner)(nil)
