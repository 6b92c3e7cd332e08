// Package defines computes the preprocessor-symbol set for one
// configuration triple from a template symbol set and the externally
// configured custom symbols.
package defines

import (
	"sort"
	"strings"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// familyMarkers tag a symbol as belonging to a platform family. A symbol
// carrying a marker of a platform other than the triple's is dropped.
// Matching is on the upper-cased symbol, so markers are fixed substrings
// rather than ad-hoc string checks scattered through the rewriters.
var familyMarkers = map[slnmatrix.Platform][]string{
	slnmatrix.PlatformWindows: {"_WIN", "WINDOWS"},
	slnmatrix.PlatformIOS:     {"_IOS", "_IPHONE"},
	slnmatrix.PlatformAndroid: {"_ANDROID"},
}

// editorMarker tags a symbol as editor-only; such symbols are dropped for
// Player-target triples.
const editorMarker = "_EDITOR"

// mandatoryDefines are the platform family symbols added to every triple
// of that platform.
var mandatoryDefines = map[slnmatrix.Platform][]string{
	slnmatrix.PlatformWindows: {"PLATFORM_WINDOWS", "PLATFORM_STANDALONE_WIN"},
	slnmatrix.PlatformIOS:     {"PLATFORM_IOS"},
	slnmatrix.PlatformAndroid: {"PLATFORM_ANDROID"},
}

// Editor-target triples additionally carry the editor symbol and a host-OS
// symbol. The iOS editor runs on a macOS host; every other platform's
// editor runs on a Windows host.
const (
	editorDefine        = "PLATFORM_EDITOR"
	editorHostOSX       = "PLATFORM_EDITOR_OSX"
	editorHostWindows   = "PLATFORM_EDITOR_WIN"
	defineListSeparator = ";"
)

// Compute derives the symbol set for a triple. Starting from the template
// symbols it drops foreign-platform and (for Player targets) editor-only
// symbols, reconciles the custom set per the variant, then adds the
// mandatory platform and target symbols. The result is a set; use Join
// for deterministic serialization.
func Compute(t slnmatrix.Triple, templateDefines, customDefines []string) map[string]struct{} {
	set := make(map[string]struct{})

	for _, d := range templateDefines {
		if d == "" {
			continue
		}
		if taggedForeignPlatform(d, t.Platform) {
			continue
		}
		if t.Target != slnmatrix.TargetEditor && strings.Contains(strings.ToUpper(d), editorMarker) {
			continue
		}
		set[d] = struct{}{}
	}

	switch t.Variant {
	case slnmatrix.VariantCustom:
		for _, d := range customDefines {
			if d != "" {
				set[d] = struct{}{}
			}
		}
	case slnmatrix.VariantClean:
		for _, d := range customDefines {
			delete(set, d)
		}
	}

	for _, d := range mandatoryDefines[t.Platform] {
		set[d] = struct{}{}
	}

	if t.Target == slnmatrix.TargetEditor {
		set[editorDefine] = struct{}{}
		if t.Platform == slnmatrix.PlatformIOS {
			set[editorHostOSX] = struct{}{}
		} else {
			set[editorHostWindows] = struct{}{}
		}
	}

	return set
}

// taggedForeignPlatform reports whether the symbol carries a marker of a
// platform other than own, without also carrying one of own's markers.
func taggedForeignPlatform(symbol string, own slnmatrix.Platform) bool {
	upper := strings.ToUpper(symbol)
	if taggedWith(upper, own) {
		return false
	}
	for platform, markers := range familyMarkers {
		if platform == own {
			continue
		}
		for _, marker := range markers {
			if strings.Contains(upper, marker) {
				return true
			}
		}
	}
	return false
}

func taggedWith(upperSymbol string, platform slnmatrix.Platform) bool {
	for _, marker := range familyMarkers[platform] {
		if strings.Contains(upperSymbol, marker) {
			return true
		}
	}
	return false
}

// Split parses a semicolon-delimited symbol list as found in a
// DefineConstants field.
func Split(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, defineListSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Join serializes a symbol set sorted and semicolon-delimited, so output
// text is deterministic.
func Join(set map[string]struct{}) string {
	return strings.Join(Sorted(set), defineListSeparator)
}

// Sorted returns the set's symbols in sorted order.
func Sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
