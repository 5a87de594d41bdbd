package assembler

import "fmt"

// IssueSeverity represents the severity level of a diagnostic.
type IssueSeverity string

const (
	IssueSeverityCritical IssueSeverity = "CRITICAL"
	IssueSeverityWarning  IssueSeverity = "WARNING"
)

// Issue is one per-line diagnostic produced while assembling. Validation
// failures do not stop a pass; they are collected so a run reports as many
// problems as possible.
type Issue struct {
	Line     int           `json:"line"`
	Message  string        `json:"message"`
	Severity IssueSeverity `json:"severity"`
}

func criticalf(line int, format string, args ...interface{}) *Issue {
	return &Issue{
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
		Severity: IssueSeverityCritical,
	}
}
