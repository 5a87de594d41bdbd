package renderer

import (
	"io"

	"github.com/mipskit/mipsasm/assembler"
)

// Renderer defines the interface for rendering assembly diagnostics in
// different formats.
type Renderer interface {
	// Render takes a list of issues and outputs them in the desired format
	// to the provided writer.
	Render(issues []*assembler.Issue, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
