package asmparser

// Parser holds the interface for parsing assembly source text.
type Parser interface {
	// ParseLine parses one raw source line. It returns nil for blank and
	// comment-only lines.
	ParseLine(raw string, num int) (*Line, error)
}

// Line is one logical source line: an optional label binding plus an
// optional instruction.
type Line struct {
	Num      int      // 1-based source line number
	Label    string   // label declared on this line, "" if none
	Mnemonic string   // instruction mnemonic, "" if the line is label-only
	Args     []string // operand tokens in source order
	Raw      string   // original text, for diagnostics
}
