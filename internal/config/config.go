// Package config loads the slnmatrix.yaml tool configuration from the
// rewrite root and converts it to the domain types the collaborator
// sources consume.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mgrebenkin/slnmatrix/internal/plugins"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// AssemblyConfig overrides or supplies compatibility metadata for one
// project by name, taking precedence over any .asmdef record.
type AssemblyConfig struct {
	IncludePlatforms []string `yaml:"include_platforms,omitempty"`
	ExcludePlatforms []string `yaml:"exclude_platforms,omitempty"`
	Path             string   `yaml:"path,omitempty"`
}

// PluginRuleConfig is one plugin-compatibility rule; exactly one of the
// two lists should be set.
type PluginRuleConfig struct {
	Path             string   `yaml:"path"`
	ExcludePlatforms []string `yaml:"exclude_platforms,omitempty"`
	OnlyPlatforms    []string `yaml:"only_platforms,omitempty"`
}

// DefinesConfig carries the externally configured custom preprocessor
// symbols per platform.
type DefinesConfig struct {
	Custom map[string][]string `yaml:"custom"`
}

// WarningsConfig points at the compiler response file holding -nowarn
// directives.
type WarningsConfig struct {
	ResponseFile string `yaml:"response_file,omitempty"`
}

// ToolConfig is the root of slnmatrix.yaml.
type ToolConfig struct {
	Platforms  []string                  `yaml:"platforms,omitempty"`
	Defines    DefinesConfig             `yaml:"defines"`
	Assemblies map[string]AssemblyConfig `yaml:"assemblies,omitempty"`
	Plugins    []PluginRuleConfig        `yaml:"plugins,omitempty"`
	Warnings   WarningsConfig            `yaml:"warnings"`
}

// Load reads slnmatrix.yaml from sourcePath. A missing file yields
// ErrConfigNotFound; callers typically fall back to Default().
func Load(sourcePath string) (*ToolConfig, error) {
	configPath := filepath.Join(sourcePath, slnmatrix.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", slnmatrix.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Default returns the zero configuration: built-in platforms, no custom
// defines, no overrides.
func Default() *ToolConfig {
	return &ToolConfig{}
}

// PlatformList resolves the configured platform names, defaulting to the
// built-in set when none are configured.
func (c *ToolConfig) PlatformList() ([]slnmatrix.Platform, error) {
	if len(c.Platforms) == 0 {
		return slnmatrix.DefaultPlatforms(), nil
	}

	out := make([]slnmatrix.Platform, 0, len(c.Platforms))
	for _, name := range c.Platforms {
		p, err := slnmatrix.ParsePlatform(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", slnmatrix.ErrInvalidConfig, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// CustomDefines converts the configured custom symbol map to domain keys.
func (c *ToolConfig) CustomDefines() (map[slnmatrix.Platform][]string, error) {
	out := make(map[slnmatrix.Platform][]string, len(c.Defines.Custom))
	for name, symbols := range c.Defines.Custom {
		p, err := slnmatrix.ParsePlatform(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", slnmatrix.ErrInvalidConfig, err)
		}
		out[p] = symbols
	}
	return out, nil
}

// AssemblyRecords converts configured assembly overrides to metadata
// records keyed by project name.
func (c *ToolConfig) AssemblyRecords() map[string]*slnmatrix.AssemblyMetadata {
	out := make(map[string]*slnmatrix.AssemblyMetadata, len(c.Assemblies))
	for name, a := range c.Assemblies {
		out[name] = &slnmatrix.AssemblyMetadata{
			Name:             name,
			IncludePlatforms: a.IncludePlatforms,
			ExcludePlatforms: a.ExcludePlatforms,
			SourcePath:       a.Path,
		}
	}
	return out
}

// PluginRules converts configured plugin rules to the plugins package form.
func (c *ToolConfig) PluginRules() []plugins.Rule {
	out := make([]plugins.Rule, 0, len(c.Plugins))
	for _, r := range c.Plugins {
		out = append(out, plugins.Rule{
			Path:             r.Path,
			ExcludePlatforms: r.ExcludePlatforms,
			OnlyPlatforms:    r.OnlyPlatforms,
		})
	}
	return out
}
