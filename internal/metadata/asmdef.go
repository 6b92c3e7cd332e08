package metadata

import (
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/mgrebenkin/slnmatrix/internal/files/filesystem"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// AssemblyDefExt is the extension of assembly-definition files.
const AssemblyDefExt = ".asmdef"

// assemblyDefinition is the on-disk JSON shape of an assembly-definition
// file. Only the compatibility-relevant fields are modeled; everything
// else in the file is ignored.
type assemblyDefinition struct {
	Name             string   `json:"name"`
	IncludePlatforms []string `json:"includePlatforms"`
	ExcludePlatforms []string `json:"excludePlatforms"`
}

// FileSource resolves project metadata from assembly-definition files
// found under a root directory. The directory is scanned lazily on first
// lookup and exactly once per FileSource lifetime.
type FileSource struct {
	root string
	fs   filesystem.Provider

	once    sync.Once
	byName  map[string]*slnmatrix.AssemblyMetadata
	scanErr error
}

// NewFileSource creates a file-backed metadata source rooted at root.
func NewFileSource(root string, fs filesystem.Provider) *FileSource {
	return &FileSource{
		root: root,
		fs:   fs,
	}
}

// Lookup implements slnmatrix.MetadataSource. Unknown projects yield a
// nil record and nil error; scan failures surface as lookup errors on
// every call.
func (s *FileSource) Lookup(projectName string) (*slnmatrix.AssemblyMetadata, error) {
	s.once.Do(s.scan)
	if s.scanErr != nil {
		return nil, &LookupError{ProjectName: projectName, Message: s.scanErr.Error()}
	}
	return s.byName[projectName], nil
}

func (s *FileSource) scan() {
	s.byName = make(map[string]*slnmatrix.AssemblyMetadata)

	dir, err := s.fs.Open(s.root)
	if err != nil {
		s.scanErr = err
		return
	}

	s.scanErr = dir.Walk(func(f filesystem.File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.Info().IsDir() || !strings.HasSuffix(f.Path(), AssemblyDefExt) {
			return nil
		}

		content, err := f.ReadContent()
		if err != nil {
			return err
		}

		var def assemblyDefinition
		if err := json.Unmarshal(content, &def); err != nil {
			return &LookupError{
				ProjectName: baseName(f.RelativePath()),
				Path:        f.RelativePath(),
				Message:     err.Error(),
			}
		}

		name := def.Name
		if name == "" {
			name = baseName(f.RelativePath())
		}

		s.byName[name] = &slnmatrix.AssemblyMetadata{
			Name:             name,
			IncludePlatforms: def.IncludePlatforms,
			ExcludePlatforms: def.ExcludePlatforms,
			SourcePath:       filesystemSlash(f.RelativePath()),
		}
		return nil
	})
}

func baseName(path string) string {
	path = filesystemSlash(path)
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		path = path[idx+1:]
	}
	return strings.TrimSuffix(path, AssemblyDefExt)
}

func filesystemSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// StaticSource is a map-backed metadata source, fed from tool
// configuration or assembled directly in tests.
type StaticSource struct {
	records map[string]*slnmatrix.AssemblyMetadata
}

// NewStaticSource creates a static source over the given records.
func NewStaticSource(records map[string]*slnmatrix.AssemblyMetadata) *StaticSource {
	if records == nil {
		records = make(map[string]*slnmatrix.AssemblyMetadata)
	}
	return &StaticSource{records: records}
}

// Lookup implements slnmatrix.MetadataSource.
func (s *StaticSource) Lookup(projectName string) (*slnmatrix.AssemblyMetadata, error) {
	return s.records[projectName], nil
}

// MultiSource consults sources in order and returns the first non-nil
// record. Configuration overrides are placed ahead of the file source so
// they win.
type MultiSource []slnmatrix.MetadataSource

// Lookup implements slnmatrix.MetadataSource.
func (m MultiSource) Lookup(projectName string) (*slnmatrix.AssemblyMetadata, error) {
	for _, source := range m {
		meta, err := source.Lookup(projectName)
		if err != nil {
			return nil, err
		}
		if meta != nil {
			return meta, nil
		}
	}
	return nil, nil
}
