package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	p := NewParser()

	line, err := p.ParseLine("addu $t0, $t1, $t2", 1)
	assert.NoError(t, err)
	assert.Equal(t, "", line.Label)
	assert.Equal(t, "addu", line.Mnemonic)
	assert.Equal(t, []string{"$t0", "$t1", "$t2"}, line.Args)
	assert.Equal(t, 1, line.Num)

	// Space-separated operands work the same as comma-separated ones.
	line, err = p.ParseLine("addu $t0 $t1 $t2", 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"$t0", "$t1", "$t2"}, line.Args)
}

func TestParseLineMemOperand(t *testing.T) {
	p := NewParser()

	// The base register splits out of its parentheses.
	line, err := p.ParseLine("lw $t0, 4($sp)", 1)
	assert.NoError(t, err)
	assert.Equal(t, "lw", line.Mnemonic)
	assert.Equal(t, []string{"$t0", "4", "$sp"}, line.Args)
}

func TestParseLineLabels(t *testing.T) {
	p := NewParser()

	line, err := p.ParseLine("loop: addiu $t0, $t0, -1", 3)
	assert.NoError(t, err)
	assert.Equal(t, "loop", line.Label)
	assert.Equal(t, "addiu", line.Mnemonic)
	assert.Equal(t, []string{"$t0", "$t0", "-1"}, line.Args)

	line, err = p.ParseLine("main:", 1)
	assert.NoError(t, err)
	assert.Equal(t, "main", line.Label)
	assert.Equal(t, "", line.Mnemonic)
	assert.Empty(t, line.Args)

	_, err = p.ParseLine("9lives: jr $ra", 2)
	assert.Error(t, err)
	_, err = p.ParseLine(":", 4)
	assert.Error(t, err)
}

func TestParseLineCommentsAndBlank(t *testing.T) {
	p := NewParser()

	line, err := p.ParseLine("# just a comment", 1)
	assert.NoError(t, err)
	assert.Nil(t, line)

	line, err = p.ParseLine("   ", 2)
	assert.NoError(t, err)
	assert.Nil(t, line)

	line, err = p.ParseLine("", 3)
	assert.NoError(t, err)
	assert.Nil(t, line)

	line, err = p.ParseLine("jr $ra # return", 4)
	assert.NoError(t, err)
	assert.Equal(t, "jr", line.Mnemonic)
	assert.Equal(t, []string{"$ra"}, line.Args)
}

func TestIsValidLabel(t *testing.T) {
	assert.True(t, IsValidLabel("main"))
	assert.True(t, IsValidLabel("_start"))
	assert.True(t, IsValidLabel("loop2"))
	assert.True(t, IsValidLabel("a_b_c"))

	assert.False(t, IsValidLabel(""))
	assert.False(t, IsValidLabel("2start"))
	assert.False(t, IsValidLabel("has-dash"))
	assert.False(t, IsValidLabel("has space"))
}
