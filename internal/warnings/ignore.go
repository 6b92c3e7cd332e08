// Package warnings sources the warning-suppression list merged into every
// project's debug template, from a compiler response file.
package warnings

import (
	"sort"
	"strings"
	"sync"

	"github.com/mgrebenkin/slnmatrix/internal/files/filesystem"
)

// nowarnDirective is the response-file directive carrying suppressed
// warning codes, e.g. "-nowarn:0169,0649".
const nowarnDirective = "-nowarn:"

// ResponseFileSource reads suppressed warning codes from a plain-text
// response file. The file is parsed lazily on first use and exactly once.
// A missing file is not an error: it yields an empty suppression list.
type ResponseFileSource struct {
	path string
	fs   filesystem.Provider

	once  sync.Once
	codes []string
	err   error
}

// NewResponseFileSource creates a source reading from the given path.
func NewResponseFileSource(path string, fs filesystem.Provider) *ResponseFileSource {
	return &ResponseFileSource{path: path, fs: fs}
}

// IgnoredWarnings implements slnmatrix.WarningSource.
func (s *ResponseFileSource) IgnoredWarnings() ([]string, error) {
	s.once.Do(func() {
		if s.path == "" {
			return
		}
		if _, statErr := s.fs.Stat(s.path); statErr != nil {
			return
		}
		content, readErr := s.fs.ReadFile(s.path)
		if readErr != nil {
			s.err = readErr
			return
		}
		s.codes = ParseDirectives(string(content))
	})
	return s.codes, s.err
}

// ParseDirectives extracts warning codes from response-file text. Only
// -nowarn directives are interpreted; codes may be comma or semicolon
// separated, and lines starting with '#' are comments.
func ParseDirectives(content string) []string {
	set := make(map[string]struct{})

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lower := strings.ToLower(line)
		if !strings.HasPrefix(lower, nowarnDirective) {
			continue
		}
		raw := line[len(nowarnDirective):]
		for _, code := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' }) {
			if code = strings.TrimSpace(code); code != "" {
				set[code] = struct{}{}
			}
		}
	}

	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// StaticSource serves a fixed suppression list, for tests and for callers
// that already hold the codes.
type StaticSource struct {
	codes []string
}

// NewStaticSource creates a static warning source.
func NewStaticSource(codes []string) *StaticSource {
	return &StaticSource{codes: codes}
}

// IgnoredWarnings implements slnmatrix.WarningSource.
func (s *StaticSource) IgnoredWarnings() ([]string, error) {
	return s.codes, nil
}
