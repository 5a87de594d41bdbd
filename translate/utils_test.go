package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterNumber(t *testing.T) {
	assert.Equal(t, 0, RegisterNumber("$zero"))
	assert.Equal(t, 0, RegisterNumber("$0"))
	assert.Equal(t, 1, RegisterNumber("$at"))
	assert.Equal(t, 8, RegisterNumber("$t0"))
	assert.Equal(t, 16, RegisterNumber("$s0"))
	assert.Equal(t, 25, RegisterNumber("$t9"))
	assert.Equal(t, 29, RegisterNumber("$sp"))
	assert.Equal(t, 31, RegisterNumber("$ra"))

	assert.Equal(t, InvalidRegister, RegisterNumber("$bogus"))
	assert.Equal(t, InvalidRegister, RegisterNumber("t0"))
	assert.Equal(t, InvalidRegister, RegisterNumber(""))
	assert.Equal(t, InvalidRegister, RegisterNumber("$32"))
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("42", 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = ParseNumber("-42", -100, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(-42), n)

	n, err = ParseNumber("0x1f", 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(31), n)

	n, err = ParseNumber("-0x10", -100, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(-16), n)

	// Bounds are inclusive.
	_, err = ParseNumber("100", 0, 100)
	assert.NoError(t, err)
	_, err = ParseNumber("101", 0, 100)
	assert.ErrorIs(t, err, ErrOperandRange)
	_, err = ParseNumber("-1", 0, 100)
	assert.ErrorIs(t, err, ErrOperandRange)

	// Malformed tokens are rejected, not truncated.
	_, err = ParseNumber("12abc", 0, 100)
	assert.ErrorIs(t, err, ErrOperandRange)
	_, err = ParseNumber("", 0, 100)
	assert.ErrorIs(t, err, ErrOperandRange)

	// Values past the signed 64-bit range never wrap.
	_, err = ParseNumber("9223372036854775808", 0, 9223372036854775807)
	assert.ErrorIs(t, err, ErrOperandRange)
}
