package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

// countingSource wraps a StaticSource and counts lookups, to verify the
// one-resolve-per-run caching property.
type countingSource struct {
	inner   slnmatrix.MetadataSource
	lookups int
}

func (c *countingSource) Lookup(name string) (*slnmatrix.AssemblyMetadata, error) {
	c.lookups++
	return c.inner.Lookup(name)
}

type failingSource struct{}

func (failingSource) Lookup(name string) (*slnmatrix.AssemblyMetadata, error) {
	return nil, &LookupError{ProjectName: name, Message: "source unavailable"}
}

func TestResolver_CachesFirstLookup(t *testing.T) {
	src := &countingSource{inner: NewStaticSource(map[string]*slnmatrix.AssemblyMetadata{
		"Game.Core": {Name: "Game.Core"},
	})}
	r := NewResolver(src)

	first, err := r.Resolve("Game.Core")
	require.NoError(t, err)
	second, err := r.Resolve("Game.Core")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.lookups)
}

func TestResolver_UnknownProjectIsNormal(t *testing.T) {
	r := NewResolver(NewStaticSource(nil))

	info, err := r.Resolve("ThirdParty.Utils")
	require.NoError(t, err)

	assert.Equal(t, slnmatrix.ClassNormal, info.Class)
	assert.Nil(t, info.Meta)
}

func TestResolver_LookupFailureNotCached(t *testing.T) {
	r := NewResolver(failingSource{})

	_, err := r.Resolve("Game.Core")
	require.Error(t, err)
	assert.True(t, errors.Is(err, slnmatrix.ErrMetadataLookup))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		project string
		meta    *slnmatrix.AssemblyMetadata
		want    slnmatrix.ProjectClass
	}{
		{"plain name no metadata", "Game.Core", nil, slnmatrix.ClassNormal},
		{"dot editor suffix", "Game.Editor", nil, slnmatrix.ClassEditorOnly},
		{"dash editor suffix", "Assembly-CSharp-Editor", nil, slnmatrix.ClassEditorOnly},
		{
			"editor include list",
			"Game.Tools",
			&slnmatrix.AssemblyMetadata{IncludePlatforms: []string{"Editor"}},
			slnmatrix.ClassEditorOnly,
		},
		{
			"multi-entry include list is not editor-only",
			"Game.Tools",
			&slnmatrix.AssemblyMetadata{IncludePlatforms: []string{"Editor", "Windows"}},
			slnmatrix.ClassNormal,
		},
		{
			"package root",
			"Vendor.Lib",
			&slnmatrix.AssemblyMetadata{SourcePath: "Packages/com.vendor.lib/Vendor.Lib.asmdef"},
			slnmatrix.ClassPackage,
		},
		{
			"package cache root",
			"Vendor.Lib",
			&slnmatrix.AssemblyMetadata{SourcePath: "Library/PackageCache/com.vendor.lib/Vendor.Lib.asmdef"},
			slnmatrix.ClassPackage,
		},
		{
			"package wins over editor suffix",
			"Vendor.Editor",
			&slnmatrix.AssemblyMetadata{SourcePath: "Packages/com.vendor/Vendor.Editor.asmdef"},
			slnmatrix.ClassPackage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.project, tc.meta))
		})
	}
}
