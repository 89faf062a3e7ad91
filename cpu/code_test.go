package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeFields(t *testing.T) {
	assert := assert.New(t)

	code := MakeCompute(COMP_D_PLUS_X|comp_A_BIT, DEST_M|DEST_D, JUMP_LE)

	assert.False(code.IsAddress())
	assert.False(code.IsShift())
	assert.True(code.UsesMemory())
	assert.Equal(COMP_D_PLUS_X|comp_A_BIT, code.Comp())
	assert.Equal(DEST_M|DEST_D, code.Dest())
	assert.Equal(JUMP_LE, code.Jump())

	addr := MakeAddress(0x1234)
	assert.True(addr.IsAddress())
	assert.Equal(Word(0x1234), addr.Address())
}

func TestCodeString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code Code
		text string
	}){
		{0x0002, "@2"},
		{0x7fff, "@32767"},
		{0xec10, "D=A"},
		{0xfc10, "D=M"},
		{0xe308, "M=D"},
		{0xe090, "D=D+A"},
		{0xf090, "D=D+M"},
		{0xea87, "0;JMP"},
		{0xe301, "D;JGT"},
		{0xfdfe, "AMD=M+1;JLE"},
		{0xac10, "D=D<<"},
		{0xb008, "M=M>>"},
		{0xa820, "A=A<<"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.code.String(), entry.text)
	}

	// Undefined computation fields decode to a raw marker.
	assert.Equal("#e200", Code(0xe200).String())
}
