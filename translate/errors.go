package translate

import "errors"

// Validation failures returned by the encoders. Callers usually only need
// success or failure; the distinct values exist for diagnostics.
var (
	ErrBadArity        = errors.New("wrong number of operands")
	ErrInvalidRegister = errors.New("invalid register name")
	ErrOperandRange    = errors.New("numeric operand malformed or out of range")
	ErrUnknownMnemonic = errors.New("unknown instruction mnemonic")
	ErrUnresolvedLabel = errors.New("label not found in symbol table")
	ErrBranchRange     = errors.New("branch target outside representable range")
	ErrMissingTable    = errors.New("required symbol or relocation table not supplied")
)
