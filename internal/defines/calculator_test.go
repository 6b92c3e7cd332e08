package defines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

func triple(p slnmatrix.Platform, t slnmatrix.Target, v slnmatrix.Variant) slnmatrix.Triple {
	return slnmatrix.Triple{Platform: p, Target: t, Variant: v}
}

func TestCompute_DropsForeignPlatformSymbols(t *testing.T) {
	template := []string{"FEATURE_CHAT", "LEGACY_ANDROID_INPUT", "USE_IOS_KEYCHAIN", "STANDALONE_WINDOWS_GL"}

	set := Compute(triple(slnmatrix.PlatformWindows, slnmatrix.TargetPlayer, slnmatrix.VariantClean), template, nil)

	assert.Contains(t, set, "FEATURE_CHAT")
	assert.Contains(t, set, "STANDALONE_WINDOWS_GL")
	assert.NotContains(t, set, "LEGACY_ANDROID_INPUT")
	assert.NotContains(t, set, "USE_IOS_KEYCHAIN")
}

func TestCompute_DropsEditorSymbolsForPlayer(t *testing.T) {
	template := []string{"TOOLS_EDITOR_HOOKS", "FEATURE_CHAT"}

	player := Compute(triple(slnmatrix.PlatformAndroid, slnmatrix.TargetPlayer, slnmatrix.VariantClean), template, nil)
	editor := Compute(triple(slnmatrix.PlatformAndroid, slnmatrix.TargetEditor, slnmatrix.VariantClean), template, nil)

	assert.NotContains(t, player, "TOOLS_EDITOR_HOOKS")
	assert.Contains(t, editor, "TOOLS_EDITOR_HOOKS")
}

func TestCompute_CleanExcludesCustomSymbols(t *testing.T) {
	custom := []string{"CHEATS_ENABLED", "FEATURE_FLAGS_DEV"}
	template := []string{"FEATURE_CHAT", "CHEATS_ENABLED"}

	set := Compute(triple(slnmatrix.PlatformWindows, slnmatrix.TargetPlayer, slnmatrix.VariantClean), template, custom)

	for _, c := range custom {
		assert.NotContains(t, set, c)
	}
	assert.Contains(t, set, "FEATURE_CHAT")
}

func TestCompute_CustomIncludesFullUnion(t *testing.T) {
	custom := []string{"CHEATS_ENABLED", "FEATURE_FLAGS_DEV"}
	template := []string{"FEATURE_CHAT"}

	set := Compute(triple(slnmatrix.PlatformWindows, slnmatrix.TargetPlayer, slnmatrix.VariantCustom), template, custom)

	for _, c := range custom {
		assert.Contains(t, set, c)
	}
	assert.Contains(t, set, "FEATURE_CHAT")
}

func TestCompute_MandatorySymbols(t *testing.T) {
	tests := []struct {
		name    string
		triple  slnmatrix.Triple
		want    []string
		exclude []string
	}{
		{
			"windows player",
			triple(slnmatrix.PlatformWindows, slnmatrix.TargetPlayer, slnmatrix.VariantClean),
			[]string{"PLATFORM_WINDOWS", "PLATFORM_STANDALONE_WIN"},
			[]string{"PLATFORM_EDITOR", "PLATFORM_EDITOR_WIN"},
		},
		{
			"windows editor",
			triple(slnmatrix.PlatformWindows, slnmatrix.TargetEditor, slnmatrix.VariantClean),
			[]string{"PLATFORM_WINDOWS", "PLATFORM_EDITOR", "PLATFORM_EDITOR_WIN"},
			[]string{"PLATFORM_EDITOR_OSX"},
		},
		{
			"ios editor runs on a mac host",
			triple(slnmatrix.PlatformIOS, slnmatrix.TargetEditor, slnmatrix.VariantClean),
			[]string{"PLATFORM_IOS", "PLATFORM_EDITOR", "PLATFORM_EDITOR_OSX"},
			[]string{"PLATFORM_EDITOR_WIN"},
		},
		{
			"android editor",
			triple(slnmatrix.PlatformAndroid, slnmatrix.TargetEditor, slnmatrix.VariantClean),
			[]string{"PLATFORM_ANDROID", "PLATFORM_EDITOR", "PLATFORM_EDITOR_WIN"},
			[]string{"PLATFORM_EDITOR_OSX"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := Compute(tc.triple, nil, nil)
			for _, d := range tc.want {
				assert.Contains(t, set, d)
			}
			for _, d := range tc.exclude {
				assert.NotContains(t, set, d)
			}
		})
	}
}

func TestCompute_ResultIsASet(t *testing.T) {
	template := []string{"FEATURE_CHAT", "FEATURE_CHAT", "PLATFORM_WINDOWS"}

	set := Compute(triple(slnmatrix.PlatformWindows, slnmatrix.TargetPlayer, slnmatrix.VariantClean), template, nil)
	sorted := Sorted(set)

	seen := map[string]bool{}
	for _, d := range sorted {
		require.False(t, seen[d], "duplicate symbol %q", d)
		seen[d] = true
	}
}

func TestSplitAndJoin(t *testing.T) {
	parts := Split(" FEATURE_CHAT; ;CHEATS_ENABLED;")
	assert.Equal(t, []string{"FEATURE_CHAT", "CHEATS_ENABLED"}, parts)

	set := map[string]struct{}{"B_SYM": {}, "A_SYM": {}}
	assert.Equal(t, "A_SYM;B_SYM", Join(set))
}

func TestConfigSource(t *testing.T) {
	src := NewConfigSource(map[slnmatrix.Platform][]string{
		slnmatrix.PlatformIOS: {"IOS_PUSH"},
	})

	got, err := src.CustomDefines(slnmatrix.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, []string{"IOS_PUSH"}, got)

	empty, err := src.CustomDefines(slnmatrix.PlatformAndroid)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
