// Package plugins answers plugin-compatibility queries for asset-rooted
// file references: which platforms and targets an asset is excluded from.
package plugins

import (
	"strings"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// Rule describes compatibility for one asset path, in one of two modes:
// ExcludePlatforms lists what the asset is NOT compatible with, while
// OnlyPlatforms lists the complete set it IS compatible with. Entries may
// name platforms or targets (Editor/Player). Setting both on one rule is
// rejected at construction.
type Rule struct {
	Path             string
	ExcludePlatforms []string
	OnlyPlatforms    []string
}

// ConfigSource is a PluginSource backed by configured rules. Both rule
// modes are normalized against the active platform set into the single
// excluded-set form the rewriters consume.
type ConfigSource struct {
	platforms []slnmatrix.Platform
	rules     []Rule
}

// NewConfigSource creates a plugin-compatibility source for the given
// platform set and rules.
func NewConfigSource(platforms []slnmatrix.Platform, rules []Rule) (*ConfigSource, error) {
	if len(platforms) == 0 {
		platforms = slnmatrix.DefaultPlatforms()
	}
	for _, r := range rules {
		if len(r.ExcludePlatforms) > 0 && len(r.OnlyPlatforms) > 0 {
			return nil, &RuleError{Path: r.Path, Message: "rule sets both exclude_platforms and only_platforms"}
		}
	}
	return &ConfigSource{platforms: platforms, rules: rules}, nil
}

// Exclusions implements slnmatrix.PluginSource. Asset paths with no
// matching rule are excluded from nothing.
func (s *ConfigSource) Exclusions(assetPath string) (slnmatrix.ExclusionSet, error) {
	normalized := normalizePath(assetPath)

	for _, r := range s.rules {
		if !pathMatches(normalizePath(r.Path), normalized) {
			continue
		}
		if len(r.OnlyPlatforms) > 0 {
			return s.invert(r.OnlyPlatforms), nil
		}
		return s.collect(r.ExcludePlatforms), nil
	}

	return slnmatrix.NewExclusionSet(), nil
}

// collect maps "excluded unless listed" rule entries directly onto the
// exclusion set.
func (s *ConfigSource) collect(entries []string) slnmatrix.ExclusionSet {
	excl := slnmatrix.NewExclusionSet()
	for _, entry := range entries {
		s.apply(&excl, entry)
	}
	return excl
}

// invert handles the "compatible only with listed" mode: everything in
// the active platform/target universe that is not listed becomes excluded.
func (s *ConfigSource) invert(entries []string) slnmatrix.ExclusionSet {
	listed := slnmatrix.NewExclusionSet()
	for _, entry := range entries {
		s.apply(&listed, entry)
	}

	excl := slnmatrix.NewExclusionSet()
	for _, p := range s.platforms {
		if !listed.ExcludesPlatform(p) {
			excl.Platforms[p] = true
		}
	}
	for _, t := range slnmatrix.Targets() {
		if !listed.ExcludesTarget(t) {
			excl.Targets[t] = true
		}
	}
	return excl
}

func (s *ConfigSource) apply(set *slnmatrix.ExclusionSet, entry string) {
	for _, t := range slnmatrix.Targets() {
		if strings.EqualFold(entry, string(t)) {
			set.Targets[t] = true
			return
		}
	}
	for _, p := range s.platforms {
		if strings.EqualFold(entry, string(p)) {
			set.Platforms[p] = true
			return
		}
	}
}

func normalizePath(p string) string {
	return strings.ToLower(strings.ReplaceAll(p, "\\", "/"))
}

// pathMatches accepts exact matches and suffix matches so rules can be
// written with or without the asset-root prefix.
func pathMatches(rulePath, assetPath string) bool {
	return rulePath == assetPath || strings.HasSuffix(assetPath, "/"+rulePath) || strings.HasSuffix(assetPath, rulePath)
}
