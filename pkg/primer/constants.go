package primer

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Bootstrap completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitInputError   = 10 // Operator input rejected (malformed name, EOF, cancelled)
	ExitScanError    = 11 // Repository root missing, unreadable or empty
	ExitReplaceError = 13 // Reading or rewriting a file failed mid-substitution
	ExitCleanupError = 14 // Removing the tool artifact or README failed
)

const (
	// ReadmeFileName is the template readme removed from the repository root
	// once every placeholder has been substituted.
	ReadmeFileName = "README.md"

	// GitDirName is the version-control metadata directory, pruned before descent.
	GitDirName = ".git"
)

// OSArtifactNames are file names never opened for substitution.
// The single space entry matches a file literally named " ".
var OSArtifactNames = []string{".DS_Store", " "}
