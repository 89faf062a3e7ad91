package cpu

import (
	"fmt"
)

// Code is a single Hack instruction word.
//
// A-instruction:  0vvvvvvvvvvvvvvv        (load 15-bit constant into A)
// C-instruction:  111accccccdddjjj        (compute, store, jump)
// Shift:          101accccccdddjjj        (extended one-bit shifts)
type Code Word

// Dest is the 3-bit destination field of a C-instruction.
type Dest Word

const (
	DEST_NONE = Dest(0b000)
	DEST_M    = Dest(0b001)
	DEST_D    = Dest(0b010)
	DEST_A    = Dest(0b100)
)

// Jump is the 3-bit jump field of a C-instruction. The individual bits
// select jump-if-negative, jump-if-zero, and jump-if-positive.
type Jump Word

const (
	JUMP_NONE = Jump(0b000)
	JUMP_GT   = Jump(0b001)
	JUMP_EQ   = Jump(0b010)
	JUMP_GE   = Jump(0b011)
	JUMP_LT   = Jump(0b100)
	JUMP_NE   = Jump(0b101)
	JUMP_LE   = Jump(0b110)
	JUMP_JMP  = Jump(0b111)
)

// Comp is the 7-bit computation field (a-bit plus six control bits).
type Comp Word

const (
	comp_A_BIT = Comp(0b1000000) // Operand is M rather than A.

	COMP_ZERO      = Comp(0b0101010) // 0
	COMP_ONE       = Comp(0b0111111) // 1
	COMP_NEG_ONE   = Comp(0b0111010) // -1
	COMP_D         = Comp(0b0001100) // D
	COMP_X         = Comp(0b0110000) // A or M
	COMP_NOT_D     = Comp(0b0001101) // !D
	COMP_NOT_X     = Comp(0b0110001) // !A or !M
	COMP_NEG_D     = Comp(0b0001111) // -D
	COMP_NEG_X     = Comp(0b0110011) // -A or -M
	COMP_D_PLUS_1  = Comp(0b0011111) // D+1
	COMP_X_PLUS_1  = Comp(0b0110111) // A+1 or M+1
	COMP_D_MINUS_1 = Comp(0b0001110) // D-1
	COMP_X_MINUS_1 = Comp(0b0110010) // A-1 or M-1
	COMP_D_PLUS_X  = Comp(0b0000010) // D+A or D+M
	COMP_D_MINUS_X = Comp(0b0010011) // D-A or D-M
	COMP_X_MINUS_D = Comp(0b0000111) // A-D or M-D
	COMP_D_AND_X   = Comp(0b0000000) // D&A or D&M
	COMP_D_OR_X    = Comp(0b0010101) // D|A or D|M
)

// Shift computation fields, valid only with the 101 prefix.
const (
	SHIFT_A_LEFT  = Comp(0b0100000) // A<<
	SHIFT_D_LEFT  = Comp(0b0110000) // D<<
	SHIFT_M_LEFT  = Comp(0b1100000) // M<<
	SHIFT_A_RIGHT = Comp(0b0000000) // A>>
	SHIFT_D_RIGHT = Comp(0b0010000) // D>>
	SHIFT_M_RIGHT = Comp(0b1000000) // M>>
)

// compNames maps standard computation fields to their mnemonics, with the
// a-bit clear. The a-bit substitutes M for A in the operand.
var compNames = map[Comp]string{
	COMP_ZERO:      "0",
	COMP_ONE:       "1",
	COMP_NEG_ONE:   "-1",
	COMP_D:         "D",
	COMP_X:         "A",
	COMP_NOT_D:     "!D",
	COMP_NOT_X:     "!A",
	COMP_NEG_D:     "-D",
	COMP_NEG_X:     "-A",
	COMP_D_PLUS_1:  "D+1",
	COMP_X_PLUS_1:  "A+1",
	COMP_D_MINUS_1: "D-1",
	COMP_X_MINUS_1: "A-1",
	COMP_D_PLUS_X:  "D+A",
	COMP_D_MINUS_X: "D-A",
	COMP_X_MINUS_D: "A-D",
	COMP_D_AND_X:   "D&A",
	COMP_D_OR_X:    "D|A",
}

var shiftNames = map[Comp]string{
	SHIFT_A_LEFT:  "A<<",
	SHIFT_D_LEFT:  "D<<",
	SHIFT_M_LEFT:  "M<<",
	SHIFT_A_RIGHT: "A>>",
	SHIFT_D_RIGHT: "D>>",
	SHIFT_M_RIGHT: "M>>",
}

var destNames = [8]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}

var jumpNames = [8]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

// MakeAddress creates an A-instruction loading a 15-bit constant.
func MakeAddress(value Word) Code {
	return Code(value & 0x7fff)
}

// MakeCompute creates a standard C-instruction.
func MakeCompute(comp Comp, dest Dest, jump Jump) Code {
	return Code(0b111<<13) | Code(comp&0x7f)<<6 | Code(dest&0x7)<<3 | Code(jump&0x7)
}

// MakeShift creates an extended shift instruction.
func MakeShift(comp Comp, dest Dest, jump Jump) Code {
	return Code(0b101<<13) | Code(comp&0x7f)<<6 | Code(dest&0x7)<<3 | Code(jump&0x7)
}

// IsAddress reports whether the instruction is an A-instruction.
func (code Code) IsAddress() bool {
	return code&0x8000 == 0
}

// IsShift reports whether the instruction uses the extended shift encoding.
func (code Code) IsShift() bool {
	return code&0xe000 == 0b101<<13
}

// Address returns the constant of an A-instruction.
func (code Code) Address() Word {
	return Word(code & 0x7fff)
}

// Comp returns the computation field of a C-instruction.
func (code Code) Comp() Comp {
	return Comp(code>>6) & 0x7f
}

// Dest returns the destination field of a C-instruction.
func (code Code) Dest() Dest {
	return Dest(code>>3) & 0x7
}

// Jump returns the jump field of a C-instruction.
func (code Code) Jump() Jump {
	return Jump(code) & 0x7
}

// UsesMemory reports whether the computation operand is M.
func (code Code) UsesMemory() bool {
	return !code.IsAddress() && code.Comp()&comp_A_BIT != 0
}

// String returns the assembly language representation of the instruction.
func (code Code) String() (out string) {
	if code.IsAddress() {
		return fmt.Sprintf("@%d", code.Address())
	}

	comp := code.Comp()

	var name string
	var ok bool
	if code.IsShift() {
		name, ok = shiftNames[comp]
	} else {
		name, ok = compNames[comp & ^comp_A_BIT]
		if ok && comp&comp_A_BIT != 0 {
			// The a-bit swaps the A operand for M.
			name = replaceOperand(name)
		}
	}
	if !ok {
		return fmt.Sprintf("#%04x", uint16(code))
	}

	out = name
	if dest := code.Dest(); dest != DEST_NONE {
		out = destNames[dest] + "=" + out
	}
	if jump := code.Jump(); jump != JUMP_NONE {
		out = out + ";" + jumpNames[jump]
	}

	return
}

// replaceOperand rewrites an A-operand mnemonic as its M form.
func replaceOperand(name string) string {
	out := make([]byte, len(name))
	for n := range len(name) {
		if name[n] == 'A' {
			out[n] = 'M'
		} else {
			out[n] = name[n]
		}
	}
	return string(out)
}
