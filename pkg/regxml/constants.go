package regxml

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess             = 0  // Command completed successfully
	ExitGeneralError        = 1  // Unknown or unclassified error
	ExitUsageError          = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic               = 3  // Internal panic (unexpected crash)
	ExitConfigError         = 10 // Invalid configuration
	ExitMalformedInput      = 11 // Dictionary or KLV input could not be parsed
	ExitDuplicateDefinition = 12 // Dictionary failed uniqueness validation
	ExitNotFound            = 13 // Requested definition is not registered
)

const (
	// ConfigFileName is the project configuration file looked up by the CLI.
	ConfigFileName = "regxml.yaml"

	// EnvDictionaries lists dictionary files, separated by the OS path-list separator.
	EnvDictionaries = "REGXML_DICTIONARIES"

	// EnvVerbose enables verbose logging when set to a true value.
	EnvVerbose = "REGXML_VERBOSE"
)
