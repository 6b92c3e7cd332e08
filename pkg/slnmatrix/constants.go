package slnmatrix

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Rewrite completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitSolutionMissing = 11 // No solution manifest found under the root
	ExitWriteFailed     = 12 // Rewritten document could not be written back
)

const (
	// GeneratedConfigPrefix marks every synthesized configuration name.
	// Blocks carrying this prefix in their activation condition are the
	// product of a previous run and are stripped before regeneration,
	// which keeps the rewrite idempotent.
	GeneratedConfigPrefix = "Auto-"

	// BaselineConfigName is the always-present debug configuration every
	// project maps to when a generated triple does not apply to it.
	BaselineConfigName = "Debug"

	// DonorConfigName is the transient release configuration used only as
	// a clone donor and layout anchor, then deleted.
	DonorConfigName = "Release"

	// SolutionPlatformName is the platform half of solution-level
	// configuration keys ("Debug|Any CPU").
	SolutionPlatformName = "Any CPU"

	// ProjectPlatformName is the platform half of project-level activation
	// conditions ("Debug|AnyCPU").
	ProjectPlatformName = "AnyCPU"

	// OutputPathFormat parameterizes the per-configuration output path by
	// configuration name. Backslashes are MSBuild convention.
	OutputPathFormat = `bin\%s\`

	// WarningLevelValue and TreatWarningsAsErrorsValue are the fixed
	// warning-policy values enforced on the canonical debug template.
	WarningLevelValue          = "4"
	TreatWarningsAsErrorsValue = "true"
)

const (
	// ConfigFileName is the tool configuration file looked up in the
	// rewrite root.
	ConfigFileName = "slnmatrix.yaml"

	// SolutionExt and ProjectExt are the document extensions the scanner
	// discovers.
	SolutionExt = ".sln"
	ProjectExt  = ".csproj"
)
