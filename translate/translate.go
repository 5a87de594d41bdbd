// Package translate turns parsed MIPS instructions into 32-bit machine
// words. Pass one expands pseudo-instructions to real ones
// (ExpandPassOne); pass two encodes real instructions against a finished
// symbol table (TranslateInstruction).
package translate

import (
	"fmt"
	"io"

	"github.com/mipskit/mipsasm/tables"
)

// TranslateInstruction encodes one real instruction at byte offset ADDR and
// writes it to W as an 8-hex-digit line. SYMTBL resolves branch labels;
// RELTBL, which must tolerate duplicate names, collects jump relocations.
// Branches require SYMTBL and jumps require RELTBL; every failure leaves W
// unwritten for this instruction.
func TranslateInstruction(w io.Writer, name string, args []string, addr uint32,
	symtbl, reltbl *tables.SymbolTable) error {
	ins, ok := instructionSet[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownMnemonic)
	}
	switch ins.format {
	case formatBranch:
		if symtbl == nil {
			return fmt.Errorf("%q needs a symbol table: %w", name, ErrMissingTable)
		}
		return encodeBranch(w, ins.op, args, addr, symtbl)
	case formatJump:
		if reltbl == nil {
			return fmt.Errorf("%q needs a relocation table: %w", name, ErrMissingTable)
		}
		return encodeJump(w, ins.op, args, addr, reltbl)
	case formatRType:
		return encodeRType(w, ins.op, args)
	case formatShift:
		return encodeShift(w, ins.op, args)
	case formatJumpReg:
		return encodeJumpReg(w, ins.op, args)
	case formatAddImm:
		return encodeAddImm(w, ins.op, args)
	case formatOrImm:
		return encodeOrImm(w, ins.op, args)
	case formatLoadUpper:
		return encodeLoadUpper(w, ins.op, args)
	case formatMem:
		return encodeMem(w, ins.op, args)
	case formatMultDiv:
		return encodeMultDiv(w, ins.op, args)
	case formatMoveFrom:
		return encodeMoveFrom(w, ins.op, args)
	default:
		return fmt.Errorf("%q: %w", name, ErrUnknownMnemonic)
	}
}
