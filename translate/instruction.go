package translate

// format identifies the encoding family an instruction belongs to. Each
// family has a fixed operand shape; see the per-family encoders.
type format int

const (
	formatRType format = iota // rd, rs, rt
	formatShift               // rd, rt, shamt
	formatJumpReg             // rs
	formatAddImm              // rt, rs, signed imm
	formatOrImm               // rt, rs, unsigned imm
	formatLoadUpper           // rt, unsigned imm
	formatMem                 // rt, offset, rs(base)
	formatMultDiv             // rs, rt
	formatMoveFrom            // rd
	formatBranch              // rs, rt, label
	formatJump                // label
)

// instruction carries the constant that distinguishes a mnemonic inside its
// family: the funct field for R-type families, the opcode field otherwise.
type instruction struct {
	format format
	op     uint32
}

// instructionSet maps every real (non-pseudo) mnemonic this assembler
// accepts to its encoding descriptor.
var instructionSet = map[string]instruction{
	"addu": {formatRType, 0x21},
	"or":   {formatRType, 0x25},
	"slt":  {formatRType, 0x2a},
	"sltu": {formatRType, 0x2b},
	"xor":  {formatRType, 0x26},

	"sll": {formatShift, 0x00},

	"jr": {formatJumpReg, 0x08},

	"addiu": {formatAddImm, 0x09},
	"ori":   {formatOrImm, 0x0d},
	"lui":   {formatLoadUpper, 0x0f},

	"lb":  {formatMem, 0x20},
	"lbu": {formatMem, 0x24},
	"lw":  {formatMem, 0x23},
	"sb":  {formatMem, 0x28},
	"sw":  {formatMem, 0x2b},

	"mult": {formatMultDiv, 0x18},
	"div":  {formatMultDiv, 0x1a},

	"mfhi": {formatMoveFrom, 0x10},
	"mflo": {formatMoveFrom, 0x12},

	"beq": {formatBranch, 0x04},
	"bne": {formatBranch, 0x05},

	"j":   {formatJump, 0x02},
	"jal": {formatJump, 0x03},
}
