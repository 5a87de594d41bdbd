// Package profile loads assembler configuration from a YAML file.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AsmProfile represents the configuration for one assembly target.
type AsmProfile struct {
	Name         string `yaml:"name"`
	TextStart    uint32 `yaml:"text_start"`    // byte address of the first instruction
	ReportFormat string `yaml:"report_format"` // diagnostic report format: text or json
}

// Default returns the profile used when no file is supplied: a flat text
// segment starting at address 0 with text diagnostics.
func Default() *AsmProfile {
	return &AsmProfile{
		Name:         "mips32",
		TextStart:    0,
		ReportFormat: "text",
	}
}

// LoadProfile loads an assembler profile from a YAML file.
func LoadProfile(filename string) (*AsmProfile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	prof := Default()
	if err := yaml.NewDecoder(file).Decode(prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if prof.TextStart%4 != 0 {
		return nil, fmt.Errorf("profile %q: text_start %#x is not word-aligned", prof.Name, prof.TextStart)
	}
	if prof.ReportFormat != "text" && prof.ReportFormat != "json" {
		return nil, fmt.Errorf("profile %q: invalid report_format %q", prof.Name, prof.ReportFormat)
	}
	return prof, nil
}
