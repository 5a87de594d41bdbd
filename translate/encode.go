package translate

import (
	"fmt"
	"io"

	"github.com/mipskit/mipsasm/tables"
)

// branchWindow is 2^17, the byte span reachable by the 16-bit word offset.
const branchWindow = 131072

// writeWord emits one encoded instruction as 8 lowercase hex digits.
func writeWord(w io.Writer, word uint32) error {
	if _, err := fmt.Fprintf(w, "%08x\n", word); err != nil {
		return fmt.Errorf("writing instruction word: %w", err)
	}
	return nil
}

// resolveRegisters maps each name through RegisterNumber, failing on the
// first unrecognized one. No word is written on failure.
func resolveRegisters(names ...string) ([]uint32, error) {
	regs := make([]uint32, len(names))
	for i, name := range names {
		n := RegisterNumber(name)
		if n == InvalidRegister {
			return nil, fmt.Errorf("%q: %w", name, ErrInvalidRegister)
		}
		regs[i] = uint32(n)
	}
	return regs, nil
}

// encodeRType packs an rd/rs/rt register instruction: funct in bits 5-0,
// rd 15-11, rt 20-16, rs 25-21, opcode zero.
func encodeRType(w io.Writer, funct uint32, args []string) error {
	if len(args) != 3 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	rd, rs, rt := regs[0], regs[1], regs[2]
	return writeWord(w, funct|rd<<11|rt<<16|rs<<21)
}

// encodeShift packs a shift-by-constant instruction; the shift amount must
// lie in [0, 31].
func encodeShift(w io.Writer, funct uint32, args []string) error {
	if len(args) != 3 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0], args[1])
	if err != nil {
		return err
	}
	shamt, err := ParseNumber(args[2], 0, 31)
	if err != nil {
		return err
	}
	rd, rt := regs[0], regs[1]
	return writeWord(w, funct|uint32(shamt)<<6|rd<<11|rt<<16)
}

func encodeJumpReg(w io.Writer, funct uint32, args []string) error {
	if len(args) != 1 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0])
	if err != nil {
		return err
	}
	return writeWord(w, funct|regs[0]<<21)
}

// encodeAddImm packs addiu: rt, rs, then a signed 16-bit immediate.
func encodeAddImm(w io.Writer, opcode uint32, args []string) error {
	if len(args) != 3 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0], args[1])
	if err != nil {
		return err
	}
	imm, err := ParseNumber(args[2], -32768, 32767)
	if err != nil {
		return err
	}
	rt, rs := regs[0], regs[1]
	return writeWord(w, uint32(imm)&0xffff|rt<<16|rs<<21|opcode<<26)
}

// encodeOrImm packs ori: rt, rs, then an unsigned 16-bit immediate.
func encodeOrImm(w io.Writer, opcode uint32, args []string) error {
	if len(args) != 3 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0], args[1])
	if err != nil {
		return err
	}
	imm, err := ParseNumber(args[2], 0, 65535)
	if err != nil {
		return err
	}
	rt, rs := regs[0], regs[1]
	return writeWord(w, uint32(imm)&0xffff|rt<<16|rs<<21|opcode<<26)
}

func encodeLoadUpper(w io.Writer, opcode uint32, args []string) error {
	if len(args) != 2 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0])
	if err != nil {
		return err
	}
	imm, err := ParseNumber(args[1], 0, 65535)
	if err != nil {
		return err
	}
	return writeWord(w, uint32(imm)&0xffff|regs[0]<<16|opcode<<26)
}

// encodeMem packs loads and stores: rt, signed offset, base register.
func encodeMem(w io.Writer, opcode uint32, args []string) error {
	if len(args) != 3 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0], args[2])
	if err != nil {
		return err
	}
	imm, err := ParseNumber(args[1], -32768, 32767)
	if err != nil {
		return err
	}
	rt, rs := regs[0], regs[1]
	return writeWord(w, uint32(imm)&0xffff|rt<<16|rs<<21|opcode<<26)
}

func encodeMultDiv(w io.Writer, funct uint32, args []string) error {
	if len(args) != 2 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0], args[1])
	if err != nil {
		return err
	}
	rs, rt := regs[0], regs[1]
	return writeWord(w, funct|rt<<16|rs<<21)
}

func encodeMoveFrom(w io.Writer, funct uint32, args []string) error {
	if len(args) != 1 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0])
	if err != nil {
		return err
	}
	return writeWord(w, funct|regs[0]<<11)
}

// canBranchTo reports whether a branch at SRC can reach DEST. The backward
// bound is 4 bytes short of the forward one; that asymmetry is part of the
// contract and must not be normalized.
func canBranchTo(src, dest uint32) bool {
	diff := int32(dest - src)
	return (diff >= 0 && diff <= branchWindow) || (diff < 0 && diff >= -(branchWindow-4))
}

// encodeBranch resolves the label operand through SYMTBL and packs the
// signed word offset relative to the delay slot.
func encodeBranch(w io.Writer, opcode uint32, args []string, addr uint32, symtbl *tables.SymbolTable) error {
	if len(args) != 3 {
		return ErrBadArity
	}
	regs, err := resolveRegisters(args[0], args[1])
	if err != nil {
		return err
	}
	target, ok := symtbl.Lookup(args[2])
	if !ok {
		return fmt.Errorf("%q: %w", args[2], ErrUnresolvedLabel)
	}
	if !canBranchTo(addr, target) {
		return fmt.Errorf("%q at %#x from %#x: %w", args[2], target, addr, ErrBranchRange)
	}
	offset := (int32(target) - int32(addr) - 4) / 4
	rs, rt := regs[0], regs[1]
	return writeWord(w, uint32(offset)&0xffff|rt<<16|rs<<21|opcode<<26)
}

// encodeJump leaves the target field zero for a later linking stage and
// records the referencing instruction's own address in RELTBL.
func encodeJump(w io.Writer, opcode uint32, args []string, addr uint32, reltbl *tables.SymbolTable) error {
	if len(args) != 1 {
		return ErrBadArity
	}
	if err := reltbl.Add(args[0], addr); err != nil {
		return err
	}
	return writeWord(w, opcode<<26)
}
