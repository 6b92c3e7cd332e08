package slnmatrix

// Discovery is the result of scanning a workspace directory for build
// documents.
type Discovery struct {
	// SolutionPath is the solution manifest found at the workspace root.
	// Empty when the root carries none; the caller decides whether that
	// is fatal.
	SolutionPath string

	// ProjectPaths lists every project descriptor under the root,
	// sorted lexicographically for deterministic processing order.
	ProjectPaths []string
}

// WorkspaceScanner discovers the build documents of a workspace.
type WorkspaceScanner interface {
	Discover(root string) (Discovery, error)
}
