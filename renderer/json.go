package renderer

import (
	"encoding/json"
	"io"

	"github.com/mipskit/mipsasm/assembler"
)

// JSONRenderer renders issues in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(issues []*assembler.Issue, output io.Writer) error {
	return json.NewEncoder(output).Encode(issues)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
