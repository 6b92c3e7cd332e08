package defines

import (
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// ConfigSource serves per-platform custom symbols from tool
// configuration. Values are stored as parsed lists; semicolon-delimited
// source text should be split with Split before construction.
type ConfigSource struct {
	custom map[slnmatrix.Platform][]string
}

// NewConfigSource creates a DefineSource over the given custom symbol map.
func NewConfigSource(custom map[slnmatrix.Platform][]string) *ConfigSource {
	if custom == nil {
		custom = make(map[slnmatrix.Platform][]string)
	}
	return &ConfigSource{custom: custom}
}

// CustomDefines implements slnmatrix.DefineSource.
func (s *ConfigSource) CustomDefines(platform slnmatrix.Platform) ([]string, error) {
	return s.custom[platform], nil
}
