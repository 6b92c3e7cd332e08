package slnmatrix

// The rewriters consume compatibility data through these interfaces.
// Retrieval is deliberately external: the core is a pure text-in/text-out
// transformation keyed by whatever these collaborators report.

// MetadataSource resolves a project name to its assembly compatibility
// metadata. A nil record with a nil error means the project is unknown,
// which makes it valid under every triple by default. A non-nil error is
// a metadata-lookup failure and aborts the document rewrite.
type MetadataSource interface {
	Lookup(projectName string) (*AssemblyMetadata, error)
}

// DefineSource reports the currently configured custom preprocessor
// symbols for a platform. The Custom variant unions them into the
// computed symbol set; the Clean variant removes them.
type DefineSource interface {
	CustomDefines(platform Platform) ([]string, error)
}

// PluginSource reports, for an asset path, the platforms and targets the
// asset is excluded from. Both source sub-modes ("any platform except
// these" and "only these platforms") are normalized into the one
// excluded-set result before it crosses this boundary.
type PluginSource interface {
	Exclusions(assetPath string) (ExclusionSet, error)
}

// WarningSource returns the warning codes to suppress on every project,
// sourced from an external plain-text directive file.
type WarningSource interface {
	IgnoredWarnings() ([]string, error)
}
