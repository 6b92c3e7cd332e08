// Package matrix enumerates the configuration matrix and decides which
// (platform, target, variant) triples apply to a given project.
package matrix

import (
	"strings"

	"github.com/mgrebenkin/slnmatrix/internal/metadata"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// Generator produces the full configuration matrix for a fixed platform
// set and evaluates per-project validity through the metadata resolver.
// The enumeration order is platform-major, then target, then variant, and
// is stable across calls.
type Generator struct {
	platforms []slnmatrix.Platform
	resolver  *metadata.Resolver
}

// New creates a generator over the given platforms. An empty platform
// slice falls back to the built-in default set.
func New(platforms []slnmatrix.Platform, resolver *metadata.Resolver) *Generator {
	if len(platforms) == 0 {
		platforms = slnmatrix.DefaultPlatforms()
	}
	return &Generator{
		platforms: platforms,
		resolver:  resolver,
	}
}

// Platforms returns the platform set the matrix is built from.
func (g *Generator) Platforms() []slnmatrix.Platform {
	return g.platforms
}

// Triples enumerates the full cross product of platforms, targets and
// variants in deterministic order.
func (g *Generator) Triples() []slnmatrix.Triple {
	targets := slnmatrix.Targets()
	variants := slnmatrix.Variants()

	triples := make([]slnmatrix.Triple, 0, len(g.platforms)*len(targets)*len(variants))
	for _, p := range g.platforms {
		for _, t := range targets {
			for _, v := range variants {
				triples = append(triples, slnmatrix.Triple{Platform: p, Target: t, Variant: v})
			}
		}
	}
	return triples
}

// IsValid reports whether the project builds under the given triple.
//
// Package projects are valid under no triple; editor-only projects only
// under Target = Editor. Otherwise the project's include list (when
// present) must match the triple, or its exclude list must not; a project
// with neither list is valid everywhere.
func (g *Generator) IsValid(projectName string, t slnmatrix.Triple) (bool, error) {
	info, err := g.resolver.Resolve(projectName)
	if err != nil {
		return false, err
	}

	switch info.Class {
	case slnmatrix.ClassPackage:
		return false, nil
	case slnmatrix.ClassEditorOnly:
		if t.Target != slnmatrix.TargetEditor {
			return false, nil
		}
	}

	if info.Meta == nil {
		return true, nil
	}

	if len(info.Meta.IncludePlatforms) > 0 {
		for _, entry := range info.Meta.IncludePlatforms {
			if entryMatches(entry, t) {
				return true, nil
			}
		}
		return false, nil
	}

	for _, entry := range info.Meta.ExcludePlatforms {
		if entryMatches(entry, t) {
			return false, nil
		}
	}
	return true, nil
}

// entryMatches implements the metadata list-entry semantics: an entry is
// either an exact target name (Editor/Player) or a platform matched by
// substring or exact name.
func entryMatches(entry string, t slnmatrix.Triple) bool {
	if strings.EqualFold(entry, string(t.Target)) {
		return true
	}
	return strings.Contains(strings.ToLower(string(t.Platform)), strings.ToLower(entry))
}
