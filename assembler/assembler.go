// Package assembler drives the two passes that turn MIPS assembly source
// into machine words. Pass one expands pseudo-instructions, assigns
// addresses, and binds labels; pass two encodes every real instruction
// against the finished symbol table and fills the relocation table.
package assembler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mipskit/mipsasm/asmparser"
	"github.com/mipskit/mipsasm/asmparser/mips"
	"github.com/mipskit/mipsasm/tables"
	"github.com/mipskit/mipsasm/translate"
)

// Assembler owns one assembly run. The symbol table and relocation table
// live exactly as long as the run; nothing retains them afterwards.
type Assembler struct {
	parser    asmparser.Parser
	textStart uint32
}

// New returns an Assembler whose text segment begins at textStart, which
// must be word-aligned.
func New(textStart uint32) (*Assembler, error) {
	if textStart%4 != 0 {
		return nil, fmt.Errorf("text start %#x: %w", textStart, tables.ErrMisaligned)
	}
	return &Assembler{parser: mips.NewParser(), textStart: textStart}, nil
}

// PassOne reads assembly source from SRC, writes the expanded
// real-instruction text to INTERMEDIATE, and binds every label in SYMTBL.
// A label binds to the running address before its own line's expansion is
// counted. Diagnostics are collected per line; only I/O failures abort.
func (a *Assembler) PassOne(src io.Reader, intermediate io.Writer, symtbl *tables.SymbolTable) ([]*Issue, error) {
	var issues []*Issue
	addr := a.textStart
	scanner := bufio.NewScanner(src)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line, err := a.parser.ParseLine(scanner.Text(), lineNum)
		if err != nil {
			issues = append(issues, criticalf(lineNum, "%v", err))
			continue
		}
		if line == nil {
			continue
		}
		if line.Label != "" {
			if err := symtbl.Add(line.Label, addr); err != nil {
				issues = append(issues, criticalf(lineNum, "%v", err))
			}
		}
		if line.Mnemonic == "" {
			continue
		}
		count, err := translate.ExpandPassOne(intermediate, line.Mnemonic, line.Args)
		if err != nil {
			return issues, fmt.Errorf("pass one at line %d: %w", lineNum, err)
		}
		if count == 0 {
			issues = append(issues, criticalf(lineNum, "invalid instruction: %s", line.Raw))
			continue
		}
		addr += uint32(count) * 4
	}
	if err := scanner.Err(); err != nil {
		return issues, fmt.Errorf("reading source: %w", err)
	}
	return issues, nil
}

// PassTwo reads the expanded instruction text from INTERMEDIATE and writes
// one 8-hex-digit machine word per instruction to OUT, in address order.
// SYMTBL must hold every label; RELTBL collects jump relocations and must
// be in non-unique mode. A failed instruction writes nothing and is
// recorded as a diagnostic.
func (a *Assembler) PassTwo(intermediate io.Reader, out io.Writer, symtbl, reltbl *tables.SymbolTable) ([]*Issue, error) {
	var issues []*Issue
	addr := a.textStart
	scanner := bufio.NewScanner(intermediate)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line, err := a.parser.ParseLine(scanner.Text(), lineNum)
		if err != nil {
			issues = append(issues, criticalf(lineNum, "%v", err))
			continue
		}
		if line == nil || line.Mnemonic == "" {
			continue
		}
		if err := translate.TranslateInstruction(out, line.Mnemonic, line.Args, addr, symtbl, reltbl); err != nil {
			issues = append(issues, criticalf(lineNum, "cannot encode %q: %v", line.Raw, err))
		}
		// The address advances even when encoding failed, so later
		// branch offsets stay consistent with pass one's numbering.
		addr += 4
	}
	if err := scanner.Err(); err != nil {
		return issues, fmt.Errorf("reading intermediate: %w", err)
	}
	return issues, nil
}

// Assemble runs both passes back to back. INTERMEDIATE receives pass one's
// expanded text and is re-read for pass two; REWIND, if non-nil, is called
// between the passes to reposition it at the start (needed for files, not
// for an in-memory buffer). It returns the populated symbol and relocation
// tables along with every diagnostic from both passes.
func (a *Assembler) Assemble(src io.Reader, intermediate io.ReadWriter, out io.Writer,
	rewind func() error) (*tables.SymbolTable, *tables.SymbolTable, []*Issue, error) {
	symtbl := tables.NewSymbolTable(tables.UniqueName)
	reltbl := tables.NewSymbolTable(tables.NonUnique)

	issues, err := a.PassOne(src, intermediate, symtbl)
	if err != nil {
		return nil, nil, issues, err
	}
	if rewind != nil {
		if err := rewind(); err != nil {
			return nil, nil, issues, fmt.Errorf("rewinding intermediate: %w", err)
		}
	}
	moreIssues, err := a.PassTwo(intermediate, out, symtbl, reltbl)
	issues = append(issues, moreIssues...)
	if err != nil {
		return nil, nil, issues, err
	}
	return symtbl, reltbl, issues, nil
}
