package translate

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// expandLine returns the real-instruction lines a source line becomes during
// pass one. Pseudo-instructions expand to their sequences; anything else
// passes through as a single re-serialized line. Only arity and the 32-bit
// representability of li are checked here — register names, ranges, and
// labels are validated in pass two. A nil slice means the line is invalid
// and contributes no instructions.
//
// Expansions that need a scratch register use $at, which is reserved for
// assembler use, so they have no observable effect beyond the destination.
func expandLine(name string, args []string) []string {
	switch name {
	case "li":
		if len(args) != 2 {
			return nil
		}
		imm, err := ParseNumber(args[1], math.MinInt32, math.MaxUint32)
		if err != nil {
			return nil
		}
		if imm < 65536 {
			return []string{fmt.Sprintf("addiu %s $0 %s", args[0], args[1])}
		}
		return []string{
			fmt.Sprintf("lui $at %d", imm>>16),
			fmt.Sprintf("ori %s $at %d", args[0], imm&0xffff),
		}
	case "push":
		if len(args) != 1 {
			return nil
		}
		return []string{
			"addiu $sp $sp -4",
			fmt.Sprintf("sw %s 0($sp)", args[0]),
		}
	case "pop":
		if len(args) != 1 {
			return nil
		}
		return []string{
			fmt.Sprintf("lw %s 0($sp)", args[0]),
			"addiu $sp $sp 4",
		}
	case "mod":
		if len(args) != 3 {
			return nil
		}
		return []string{
			fmt.Sprintf("div %s %s", args[1], args[2]),
			fmt.Sprintf("mfhi %s", args[0]),
		}
	case "subu":
		if len(args) != 3 {
			return nil
		}
		return []string{
			"addiu $at $0 -1",
			fmt.Sprintf("xor $at $at %s", args[2]),
			"addiu $at $at 1",
			fmt.Sprintf("addu %s %s $at", args[0], args[1]),
		}
	}
	if name == "" {
		return nil
	}
	line := name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	return []string{line}
}

// InstructionCount reports how many real instructions NAME with ARGS will
// occupy after expansion, without emitting anything. Zero means the line is
// invalid. Usable before any label address is final.
func InstructionCount(name string, args []string) int {
	return len(expandLine(name, args))
}

// ExpandPassOne writes the pass-one expansion of one source line to W, one
// real instruction per line, and returns how many instructions were written.
// Zero means the line failed validation and nothing was written.
func ExpandPassOne(w io.Writer, name string, args []string) (int, error) {
	lines := expandLine(name, args)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return 0, fmt.Errorf("writing expanded instruction: %w", err)
		}
	}
	return len(lines), nil
}
