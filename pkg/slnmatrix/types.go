package slnmatrix

import (
	"fmt"
	"strings"
)

// Platform identifies a deployment platform. The set is closed at build
// time; extending it means adding a constant and its symbol family in
// internal/defines.
type Platform string

const (
	PlatformWindows Platform = "Windows"
	PlatformIOS     Platform = "iOS"
	PlatformAndroid Platform = "Android"
)

// DefaultPlatforms returns the built-in platform set in enumeration order.
// The order is significant: generated configurations are emitted
// platform-major in this order.
func DefaultPlatforms() []Platform {
	return []Platform{PlatformWindows, PlatformIOS, PlatformAndroid}
}

// ParsePlatform resolves a case-insensitive platform name to its constant.
func ParsePlatform(name string) (Platform, error) {
	for _, p := range DefaultPlatforms() {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q; supported: %v", name, DefaultPlatforms())
}

// Target identifies the execution context a configuration builds for.
type Target string

const (
	TargetEditor Target = "Editor"
	TargetPlayer Target = "Player"
)

// Targets returns all execution targets in enumeration order.
func Targets() []Target {
	return []Target{TargetEditor, TargetPlayer}
}

// Variant identifies the build flavor. Custom includes the externally
// configured custom preprocessor symbols; Clean explicitly excludes them.
type Variant string

const (
	VariantClean  Variant = "Clean"
	VariantCustom Variant = "Custom"
)

// Variants returns all build variants in enumeration order.
func Variants() []Variant {
	return []Variant{VariantClean, VariantCustom}
}

// Triple is one (platform, target, variant) combination, the unit of
// configuration generation.
type Triple struct {
	Platform Platform
	Target   Target
	Variant  Variant
}

// ConfigName derives the canonical configuration name for the triple.
// The mapping is a bijection: distinct triples always produce distinct
// names, and no generated name collides with the baseline Debug or
// Release configurations because of the reserved prefix.
func (t Triple) ConfigName() string {
	return GeneratedConfigPrefix + string(t.Platform) + "-" + string(t.Target) + "-" + string(t.Variant)
}

// String returns a human-readable form for logs and diagnostics.
func (t Triple) String() string {
	return fmt.Sprintf("%s/%s/%s", t.Platform, t.Target, t.Variant)
}

// ProjectClass is the derived classification of a project.
type ProjectClass string

const (
	// ClassNormal projects participate in the full configuration matrix,
	// subject to their platform include/exclude lists.
	ClassNormal ProjectClass = "normal"

	// ClassEditorOnly projects are only valid under Target = Editor.
	ClassEditorOnly ProjectClass = "editor-only"

	// ClassPackage projects come from a read-only dependency root and are
	// excluded from configuration synthesis entirely: they always fall
	// back to the baseline Debug configuration.
	ClassPackage ProjectClass = "package"
)

// AssemblyMetadata is the per-project compatibility record obtained from
// the external metadata source. IncludePlatforms and ExcludePlatforms are
// never interpreted simultaneously: the include list takes precedence
// when present. Entries match platforms by substring or targets by exact
// name (Editor/Player).
type AssemblyMetadata struct {
	Name             string
	IncludePlatforms []string
	ExcludePlatforms []string

	// SourcePath is where the metadata record was found, relative to the
	// scan root. A path under a package root classifies the project as a
	// package project.
	SourcePath string
}

// ExclusionSet is the normalized result of a plugin-compatibility query:
// the platforms and targets an asset must not be built for.
type ExclusionSet struct {
	Platforms map[Platform]bool
	Targets   map[Target]bool
}

// NewExclusionSet returns an empty exclusion set.
func NewExclusionSet() ExclusionSet {
	return ExclusionSet{
		Platforms: make(map[Platform]bool),
		Targets:   make(map[Target]bool),
	}
}

// Empty reports whether nothing is excluded.
func (e ExclusionSet) Empty() bool {
	return len(e.Platforms) == 0 && len(e.Targets) == 0
}

// ExcludesPlatform reports whether the platform is excluded.
func (e ExclusionSet) ExcludesPlatform(p Platform) bool {
	return e.Platforms[p]
}

// ExcludesTarget reports whether the target is excluded.
func (e ExclusionSet) ExcludesTarget(t Target) bool {
	return e.Targets[t]
}
