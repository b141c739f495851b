package bmecat

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Command completed successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration or options
	ExitInvalidStream      = 20 // Input not readable or output not writable
	ExitFileNotFound       = 21 // Catalog file does not exist
	ExitUnsupportedVersion = 22 // Requested BMECat version is not supported
	ExitInvalidDocument    = 23 // XML is malformed or could not be mapped
)

const (
	// SniffSize is the number of leading bytes inspected for the BMECAT root tag.
	SniffSize = 1024

	// DefaultSpoolThreshold is the input size above which a catalog is spooled
	// through a temporary file instead of being buffered in memory.
	DefaultSpoolThreshold int64 = 100 << 20

	// Namespace12 is the default namespace of BMECat 1.2 new-catalog documents.
	Namespace12 = "http://www.bmecat.org/bmecat/1.2/bmecat_new_catalog"

	// Namespace2005 is the default namespace of BMECat 2005 documents.
	Namespace2005 = "http://www.bmecat.org/bmecat/2005"
)
