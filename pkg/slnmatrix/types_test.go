package slnmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigName_Bijection(t *testing.T) {
	seen := make(map[string]Triple)
	for _, p := range DefaultPlatforms() {
		for _, tgt := range Targets() {
			for _, v := range Variants() {
				triple := Triple{Platform: p, Target: tgt, Variant: v}
				name := triple.ConfigName()

				prev, dup := seen[name]
				require.False(t, dup, "name %q generated by both %s and %s", name, prev, triple)
				seen[name] = triple

				assert.NotEqual(t, BaselineConfigName, name)
				assert.NotEqual(t, DonorConfigName, name)
			}
		}
	}
	assert.Len(t, seen, len(DefaultPlatforms())*len(Targets())*len(Variants()))
}

func TestConfigName_CarriesReservedPrefix(t *testing.T) {
	triple := Triple{Platform: PlatformIOS, Target: TargetPlayer, Variant: VariantCustom}
	name := triple.ConfigName()
	assert.Equal(t, "Auto-iOS-Player-Custom", name)
	assert.Contains(t, name, GeneratedConfigPrefix)
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"Windows", PlatformWindows, false},
		{"windows", PlatformWindows, false},
		{"IOS", PlatformIOS, false},
		{"android", PlatformAndroid, false},
		{"PlayStation", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePlatform(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExclusionSet(t *testing.T) {
	e := NewExclusionSet()
	assert.True(t, e.Empty())

	e.Platforms[PlatformAndroid] = true
	e.Targets[TargetPlayer] = true

	assert.False(t, e.Empty())
	assert.True(t, e.ExcludesPlatform(PlatformAndroid))
	assert.False(t, e.ExcludesPlatform(PlatformWindows))
	assert.True(t, e.ExcludesTarget(TargetPlayer))
	assert.False(t, e.ExcludesTarget(TargetEditor))
}
