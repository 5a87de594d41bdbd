// Package mips provides the implementation of the asmparser interfaces for
// MIPS assembly source.
package mips

import (
	"fmt"
	"strings"

	"github.com/mipskit/mipsasm/asmparser"
)

// parserImpl implements the asmparser.Parser interface.
type parserImpl struct{}

// NewParser returns a new instance of a MIPS assembly source parser.
func NewParser() asmparser.Parser {
	return &parserImpl{}
}

// separators splits operands the way MIPS source is written: whitespace or
// commas between operands, and parentheses around a base register, so that
// "lw $t0, 0($sp)" tokenizes as [lw $t0 0 $sp].
func separators(r rune) bool {
	switch r {
	case ' ', '\t', '\f', '\v', '\r', '\n', ',', '(', ')':
		return true
	}
	return false
}

// ParseLine parses one raw source line. Everything after '#' is a comment.
// A first token ending in ':' declares a label; the rest of the tokens are
// the mnemonic and its operands. Blank and comment-only lines yield nil.
func (p *parserImpl) ParseLine(raw string, num int) (*asmparser.Line, error) {
	text := raw
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	tokens := strings.FieldsFunc(text, separators)
	if len(tokens) == 0 {
		return nil, nil
	}

	line := &asmparser.Line{Num: num, Raw: raw}
	if name, ok := strings.CutSuffix(tokens[0], ":"); ok {
		if !IsValidLabel(name) {
			return nil, fmt.Errorf("line %d: invalid label %q", num, name)
		}
		line.Label = name
		tokens = tokens[1:]
	}
	if len(tokens) > 0 {
		line.Mnemonic = tokens[0]
		line.Args = tokens[1:]
	}
	return line, nil
}

// IsValidLabel reports whether STR is usable as a label: a letter or
// underscore followed by letters, digits, or underscores.
func IsValidLabel(str string) bool {
	if len(str) == 0 {
		return false
	}
	for i, r := range str {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
