// Package renderer provides a way to render assembly diagnostics in
// different formats.
package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mipskit/mipsasm/assembler"
	"github.com/mipskit/mipsasm/profile"
)

// TextRenderer formats the diagnostic report in a structured text format.
type TextRenderer struct {
	profile *profile.AsmProfile
}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer(profile *profile.AsmProfile) Renderer {
	return &TextRenderer{profile: profile}
}

// Render formats and writes the diagnostic report.
func (r *TextRenderer) Render(issues []*assembler.Issue, output io.Writer) error {
	if len(issues) == 0 {
		return nil
	}

	sorted := make([]*assembler.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Line < sorted[j].Line
	})

	numCritical := 0
	for _, issue := range sorted {
		if issue.Severity == assembler.IssueSeverityCritical {
			numCritical++
		}
	}

	var report strings.Builder
	report.WriteString("==============================\n")
	report.WriteString("Assembly Report\n")
	report.WriteString("==============================\n")
	report.WriteString(fmt.Sprintf("Profile: %s\n", r.profile.Name))
	report.WriteString(fmt.Sprintf("Errors: %d\n", numCritical))
	report.WriteString(fmt.Sprintf("Warnings: %d\n\n", len(sorted)-numCritical))
	for i, issue := range sorted {
		report.WriteString(fmt.Sprintf("%d. [%s] line %d: %s\n", i+1, issue.Severity, issue.Line, issue.Message))
	}

	_, err := output.Write([]byte(report.String()))
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
