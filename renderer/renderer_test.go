package renderer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mipskit/mipsasm/assembler"
	"github.com/mipskit/mipsasm/profile"
	"github.com/stretchr/testify/assert"
)

func sampleIssues() []*assembler.Issue {
	return []*assembler.Issue{
		{Line: 7, Message: "invalid register name", Severity: assembler.IssueSeverityCritical},
		{Line: 2, Message: "duplicate label", Severity: assembler.IssueSeverityCritical},
	}
}

func TestTextRenderer(t *testing.T) {
	r := NewTextRenderer(profile.Default())
	assert.Equal(t, "text", r.Format())

	var buf bytes.Buffer
	assert.NoError(t, r.Render(sampleIssues(), &buf))
	report := buf.String()
	assert.Contains(t, report, "Errors: 2")
	assert.Contains(t, report, "line 2: duplicate label")
	assert.Contains(t, report, "line 7: invalid register name")
	// Issues come out sorted by line.
	assert.Less(t, strings.Index(report, "line 2"), strings.Index(report, "line 7"))
}

func TestTextRendererNoIssues(t *testing.T) {
	r := NewTextRenderer(profile.Default())
	var buf bytes.Buffer
	assert.NoError(t, r.Render(nil, &buf))
	assert.Equal(t, 0, buf.Len())
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	assert.Equal(t, "json", r.Format())

	var buf bytes.Buffer
	assert.NoError(t, r.Render(sampleIssues(), &buf))

	var decoded []*assembler.Issue
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, 7, decoded[0].Line)
	assert.Equal(t, assembler.IssueSeverityCritical, decoded[0].Severity)
}
