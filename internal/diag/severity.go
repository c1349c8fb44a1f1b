package diag

// Severity defines the importance of an issue.
type Severity uint8

const (
	// SevInfo is for informational issues.
	SevInfo Severity = iota
	// SevWarning is for style issues that do not block anything.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
