package translate

// InvalidRegister is returned by RegisterNumber for unrecognized names.
const InvalidRegister = -1

// registerNumbers maps register mnemonics to their 5-bit indexes. Register 0
// is accepted under both of its spellings.
var registerNumbers = map[string]int{
	"$zero": 0, "$0": 0,
	"$at": 1,
	"$v0": 2, "$v1": 3,
	"$a0": 4, "$a1": 5, "$a2": 6, "$a3": 7,
	"$t0": 8, "$t1": 9, "$t2": 10, "$t3": 11,
	"$t4": 12, "$t5": 13, "$t6": 14, "$t7": 15,
	"$s0": 16, "$s1": 17, "$s2": 18, "$s3": 19,
	"$s4": 20, "$s5": 21, "$s6": 22, "$s7": 23,
	"$t8": 24, "$t9": 25,
	"$k0": 26, "$k1": 27,
	"$gp": 28, "$sp": 29, "$fp": 30, "$ra": 31,
}

// RegisterNumber resolves a register mnemonic to its number in [0, 31], or
// InvalidRegister if the name is not recognized. It never fails otherwise.
func RegisterNumber(name string) int {
	if n, ok := registerNumbers[name]; ok {
		return n
	}
	return InvalidRegister
}
