package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrebenkin/slnmatrix/internal/metadata"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

func newGenerator(records map[string]*slnmatrix.AssemblyMetadata) *Generator {
	return New(nil, metadata.NewResolver(metadata.NewStaticSource(records)))
}

func TestTriples_FullCrossProductInOrder(t *testing.T) {
	g := newGenerator(nil)

	triples := g.Triples()
	require.Len(t, triples, 3*2*2)

	// Platform-major, then target, then variant.
	assert.Equal(t, slnmatrix.Triple{Platform: slnmatrix.PlatformWindows, Target: slnmatrix.TargetEditor, Variant: slnmatrix.VariantClean}, triples[0])
	assert.Equal(t, slnmatrix.Triple{Platform: slnmatrix.PlatformWindows, Target: slnmatrix.TargetEditor, Variant: slnmatrix.VariantCustom}, triples[1])
	assert.Equal(t, slnmatrix.Triple{Platform: slnmatrix.PlatformWindows, Target: slnmatrix.TargetPlayer, Variant: slnmatrix.VariantClean}, triples[2])
	assert.Equal(t, slnmatrix.Triple{Platform: slnmatrix.PlatformIOS, Target: slnmatrix.TargetEditor, Variant: slnmatrix.VariantClean}, triples[4])
	assert.Equal(t, slnmatrix.Triple{Platform: slnmatrix.PlatformAndroid, Target: slnmatrix.TargetPlayer, Variant: slnmatrix.VariantCustom}, triples[11])

	// Enumeration is stable.
	assert.Equal(t, triples, g.Triples())
}

func TestIsValid_DefaultProject(t *testing.T) {
	g := newGenerator(nil)

	for _, triple := range g.Triples() {
		ok, err := g.IsValid("Game.Core", triple)
		require.NoError(t, err)
		assert.True(t, ok, "expected %s to be valid", triple)
	}
}

func TestIsValid_PackageProjectNeverValid(t *testing.T) {
	g := newGenerator(map[string]*slnmatrix.AssemblyMetadata{
		"Vendor.Lib": {Name: "Vendor.Lib", SourcePath: "Packages/com.vendor/Vendor.Lib.asmdef"},
	})

	for _, triple := range g.Triples() {
		ok, err := g.IsValid("Vendor.Lib", triple)
		require.NoError(t, err)
		assert.False(t, ok, "package project must not be valid under %s", triple)
	}
}

func TestIsValid_EditorOnlyProject(t *testing.T) {
	g := newGenerator(nil)

	for _, triple := range g.Triples() {
		ok, err := g.IsValid("Game.Editor", triple)
		require.NoError(t, err)
		assert.Equal(t, triple.Target == slnmatrix.TargetEditor, ok, "triple %s", triple)
	}
}

func TestIsValid_IncludeList(t *testing.T) {
	g := newGenerator(map[string]*slnmatrix.AssemblyMetadata{
		"Game.Mobile": {Name: "Game.Mobile", IncludePlatforms: []string{"iOS", "Android"}},
	})

	for _, triple := range g.Triples() {
		ok, err := g.IsValid("Game.Mobile", triple)
		require.NoError(t, err)
		want := triple.Platform == slnmatrix.PlatformIOS || triple.Platform == slnmatrix.PlatformAndroid
		assert.Equal(t, want, ok, "triple %s", triple)
	}
}

func TestIsValid_IncludeListSubstringMatch(t *testing.T) {
	g := newGenerator(map[string]*slnmatrix.AssemblyMetadata{
		"Game.Win": {Name: "Game.Win", IncludePlatforms: []string{"Win"}},
	})

	ok, err := g.IsValid("Game.Win", slnmatrix.Triple{Platform: slnmatrix.PlatformWindows, Target: slnmatrix.TargetPlayer, Variant: slnmatrix.VariantClean})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.IsValid("Game.Win", slnmatrix.Triple{Platform: slnmatrix.PlatformAndroid, Target: slnmatrix.TargetPlayer, Variant: slnmatrix.VariantClean})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsValid_IncludeListTargetEntry(t *testing.T) {
	g := newGenerator(map[string]*slnmatrix.AssemblyMetadata{
		// An include list of just Editor classifies the project editor-only
		// and matches only Editor-target triples.
		"Game.Tools": {Name: "Game.Tools", IncludePlatforms: []string{"Editor"}},
	})

	for _, triple := range g.Triples() {
		ok, err := g.IsValid("Game.Tools", triple)
		require.NoError(t, err)
		assert.Equal(t, triple.Target == slnmatrix.TargetEditor, ok, "triple %s", triple)
	}
}

func TestIsValid_ExcludeList(t *testing.T) {
	g := newGenerator(map[string]*slnmatrix.AssemblyMetadata{
		"Game.Desktop": {Name: "Game.Desktop", ExcludePlatforms: []string{"Android", "iOS"}},
	})

	for _, triple := range g.Triples() {
		ok, err := g.IsValid("Game.Desktop", triple)
		require.NoError(t, err)
		assert.Equal(t, triple.Platform == slnmatrix.PlatformWindows, ok, "triple %s", triple)
	}
}

func TestIsValid_IncludeListTakesPrecedence(t *testing.T) {
	g := newGenerator(map[string]*slnmatrix.AssemblyMetadata{
		"Game.Odd": {
			Name:             "Game.Odd",
			IncludePlatforms: []string{"Windows"},
			ExcludePlatforms: []string{"Windows"},
		},
	})

	ok, err := g.IsValid("Game.Odd", slnmatrix.Triple{Platform: slnmatrix.PlatformWindows, Target: slnmatrix.TargetPlayer, Variant: slnmatrix.VariantClean})
	require.NoError(t, err)
	assert.True(t, ok, "include list wins when both lists are present")
}

func TestNew_CustomPlatformSet(t *testing.T) {
	g := New([]slnmatrix.Platform{slnmatrix.PlatformAndroid}, metadata.NewResolver(metadata.NewStaticSource(nil)))

	triples := g.Triples()
	require.Len(t, triples, 4)
	for _, triple := range triples {
		assert.Equal(t, slnmatrix.PlatformAndroid, triple.Platform)
	}
}
