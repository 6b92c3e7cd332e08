package services

import (
	"fmt"

	"github.com/mgrebenkin/slnmatrix/internal/checksum"
	"github.com/mgrebenkin/slnmatrix/internal/files/filesystem"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// DocumentRewriter transforms one build document given its path and
// current text. On failure it returns the original text unchanged. Both
// the solution and the project rewriter satisfy this.
type DocumentRewriter interface {
	Rewrite(path, text string) (string, error)
}

// DocumentStatus is the per-document outcome of a synchronization run.
type DocumentStatus string

const (
	// StatusRewritten means the document changed and was written back
	// (or would have been, under dry-run).
	StatusRewritten DocumentStatus = "rewritten"
	// StatusUnchanged means the rewrite produced byte-identical content
	// and the write was skipped.
	StatusUnchanged DocumentStatus = "unchanged"
	// StatusFailed means the document could not be rewritten or written
	// back; its on-disk content is untouched.
	StatusFailed DocumentStatus = "failed"
)

// DocumentResult records the outcome for one document.
type DocumentResult struct {
	Path   string
	Status DocumentStatus
	Err    error // nil unless Status is StatusFailed
}

// Summary aggregates the outcomes of one synchronization run.
type Summary struct {
	Results []DocumentResult
}

// Counts returns the number of rewritten, unchanged and failed documents.
func (s Summary) Counts() (rewritten, unchanged, failed int) {
	for _, r := range s.Results {
		switch r.Status {
		case StatusRewritten:
			rewritten++
		case StatusUnchanged:
			unchanged++
		case StatusFailed:
			failed++
		}
	}
	return
}

// FirstError returns the first per-document failure, or nil when every
// document succeeded.
func (s Summary) FirstError() error {
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			return r.Err
		}
	}
	return nil
}

// Options control a synchronization run.
type Options struct {
	// DryRun rewrites every document in memory and reports outcomes
	// without writing anything back.
	DryRun bool
}

// Synchronizer orchestrates one workspace synchronization: discover the
// solution manifest and project descriptors, rewrite each in memory, and
// persist only real changes. A failed document never aborts the run; its
// original content stays on disk and the failure is carried in the
// summary.
//
// Thread-Safety: safe for concurrent Run() calls as long as the injected
// collaborators are thread-safe and runs target disjoint workspaces.
type Synchronizer struct {
	scanner    slnmatrix.WorkspaceScanner
	solution   DocumentRewriter
	project    DocumentRewriter
	fsProvider filesystem.Provider
	calculator checksum.Calculator
	logger     slnmatrix.Logger
}

// NewSynchronizer creates a synchronizer with all dependencies injected.
// Panics on nil dependencies: those are programmer errors that should
// fail loudly at startup, not surface as nil dereferences mid-run.
func NewSynchronizer(
	scanner slnmatrix.WorkspaceScanner,
	solution DocumentRewriter,
	project DocumentRewriter,
	fsProvider filesystem.Provider,
	calculator checksum.Calculator,
	logger slnmatrix.Logger,
) *Synchronizer {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if solution == nil {
		panic("solution rewriter cannot be nil")
	}
	if project == nil {
		panic("project rewriter cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Synchronizer{
		scanner:    scanner,
		solution:   solution,
		project:    project,
		fsProvider: fsProvider,
		calculator: calculator,
		logger:     logger,
	}
}

// Run synchronizes the workspace rooted at root. It returns an error
// only for workspace-level failures (unreadable root, missing solution
// manifest); per-document failures are reported through the summary.
func (s *Synchronizer) Run(root string, opts Options) (Summary, error) {
	discovery, err := s.scanner.Discover(root)
	if err != nil {
		return Summary{}, err
	}
	if discovery.SolutionPath == "" {
		return Summary{}, fmt.Errorf("no solution manifest in %s: %w", root, slnmatrix.ErrSolutionNotFound)
	}

	s.logger.Verbose("workspace %s: 1 solution, %d projects", root, len(discovery.ProjectPaths))

	summary := Summary{}
	summary.Results = append(summary.Results, s.processDocument(discovery.SolutionPath, s.solution, opts))
	for _, path := range discovery.ProjectPaths {
		summary.Results = append(summary.Results, s.processDocument(path, s.project, opts))
	}

	rewritten, unchanged, failed := summary.Counts()
	s.logger.Info("synchronized %s: %d rewritten, %d unchanged, %d failed", root, rewritten, unchanged, failed)
	return summary, nil
}

// processDocument rewrites one document in memory and decides whether
// the result needs to reach the disk at all.
func (s *Synchronizer) processDocument(path string, rewriter DocumentRewriter, opts Options) DocumentResult {
	original, err := s.fsProvider.ReadFile(path)
	if err != nil {
		s.logger.Error("cannot read %s: %v", path, err)
		return DocumentResult{Path: path, Status: StatusFailed, Err: err}
	}

	rewritten, err := rewriter.Rewrite(path, string(original))
	if err != nil {
		return DocumentResult{Path: path, Status: StatusFailed, Err: err}
	}

	if s.calculator.CalculateRaw([]byte(rewritten)) == s.calculator.CalculateRaw(original) {
		s.logger.Verbose("%s: already synchronized, write skipped", path)
		return DocumentResult{Path: path, Status: StatusUnchanged}
	}
	if s.calculator.CalculateNormalized([]byte(rewritten)) == s.calculator.CalculateNormalized(original) {
		s.logger.Verbose("%s: formatting-only change", path)
	}

	if opts.DryRun {
		s.logger.Info("%s: would rewrite (dry run)", path)
		return DocumentResult{Path: path, Status: StatusRewritten}
	}

	if err := s.fsProvider.WriteFile(path, []byte(rewritten)); err != nil {
		werr := &WriteError{Path: path, Message: err.Error()}
		s.logger.Error("%v", werr)
		return DocumentResult{Path: path, Status: StatusFailed, Err: werr}
	}

	s.logger.Verbose("%s: rewritten", path)
	return DocumentResult{Path: path, Status: StatusRewritten}
}
