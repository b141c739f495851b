package bmecat

// Severity classifies a log message.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger receives non-fatal diagnostics from loading and saving, such as
// unrecognized code tokens or a temp file that could not be removed.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	Log(severity Severity, message string)
}

// QuantityCodeConverter translates vendor-specific unit strings into
// quantity codes. It is consulted before the built-in table; returning
// false falls through to the table.
type QuantityCodeConverter interface {
	Convert(token string) (QuantityCode, bool)
}
