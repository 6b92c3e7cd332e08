package metadata

import (
	"strings"
	"sync"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// packageRootMarkers identify metadata files that live under a read-only
// dependency root. Projects sourced from such a root are package projects
// and are excluded from configuration synthesis.
var packageRootMarkers = []string{"Packages/", "PackageCache/"}

// editorNameSuffixes flag projects whose output only runs inside the
// editor host, by naming convention.
var editorNameSuffixes = []string{".Editor", "-Editor"}

// ProjectInfo is the cached resolution result for one project.
type ProjectInfo struct {
	Class slnmatrix.ProjectClass

	// Meta is nil when the project has no metadata record, which makes it
	// valid under every triple by default.
	Meta *slnmatrix.AssemblyMetadata
}

// Resolver maps project names to classification and compatibility data,
// caching results for its lifetime. Construct one per run and share it
// between the solution and project rewriters; the cache is guarded so
// concurrent first use populates it exactly once per project.
type Resolver struct {
	source slnmatrix.MetadataSource

	mu    sync.Mutex
	cache map[string]ProjectInfo
}

// NewResolver creates a resolver over the given metadata source.
func NewResolver(source slnmatrix.MetadataSource) *Resolver {
	return &Resolver{
		source: source,
		cache:  make(map[string]ProjectInfo),
	}
}

// Resolve returns the classification and metadata for a project name.
// The first call per name consults the source; later calls hit the cache.
// Lookup failures are not cached, so a corrected collaborator can succeed
// on a subsequent call.
func (r *Resolver) Resolve(projectName string) (ProjectInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info, ok := r.cache[projectName]; ok {
		return info, nil
	}

	meta, err := r.source.Lookup(projectName)
	if err != nil {
		return ProjectInfo{}, err
	}

	info := ProjectInfo{
		Class: Classify(projectName, meta),
		Meta:  meta,
	}
	r.cache[projectName] = info
	return info, nil
}

// Classify derives the tri-state project classification from the project
// name and its metadata record. Package classification wins over
// editor-only: a package project receives no synthesized configurations
// regardless of what else its metadata says.
func Classify(projectName string, meta *slnmatrix.AssemblyMetadata) slnmatrix.ProjectClass {
	if meta != nil && underPackageRoot(meta.SourcePath) {
		return slnmatrix.ClassPackage
	}

	for _, suffix := range editorNameSuffixes {
		if strings.HasSuffix(projectName, suffix) {
			return slnmatrix.ClassEditorOnly
		}
	}

	if meta != nil && len(meta.IncludePlatforms) == 1 &&
		strings.EqualFold(meta.IncludePlatforms[0], string(slnmatrix.TargetEditor)) {
		return slnmatrix.ClassEditorOnly
	}

	return slnmatrix.ClassNormal
}

func underPackageRoot(sourcePath string) bool {
	if sourcePath == "" {
		return false
	}
	normalized := strings.ReplaceAll(sourcePath, "\\", "/")
	for _, marker := range packageRootMarkers {
		if strings.HasPrefix(normalized, marker) || strings.Contains(normalized, "/"+marker) {
			return true
		}
	}
	return false
}
