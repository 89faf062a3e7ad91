package cpu

import (
	"fmt"
)

// Word is one Hack machine word. Storage is unsigned; the ALU and the
// conditional jumps interpret words as two's-complement.
type Word uint16

// Int returns the signed interpretation of the word.
func (w Word) Int() int {
	return int(int16(w))
}

// String formats the word the way the machine's tooling displays cells.
func (w Word) String() string {
	return fmt.Sprintf("%d", int16(w))
}

// Memory map of the Hack platform.
const (
	SCREEN_BASE = Word(0x4000) // First word of the screen buffer.
	SCREEN_SIZE = Word(0x2000) // Screen buffer length in words.
	KEYBOARD    = Word(0x6000) // Keyboard register, just past the screen.

	RAM_SIZE = int(KEYBOARD) + 1 // Addressable data memory cells.
	ROM_SIZE = 0x8000            // Instruction memory capacity.
)

// Screen geometry. Each buffer word holds 16 horizontally adjacent pixels.
const (
	SCREEN_WIDTH    = 512
	SCREEN_HEIGHT   = 256
	PIXELS_PER_WORD = 16
	WORDS_PER_ROW   = SCREEN_WIDTH / PIXELS_PER_WORD
)

// Bus is the CPU's view of data memory. Address decoding, the memory-mapped
// devices, and bounds policy live behind this interface.
type Bus interface {
	// Read returns the value of one memory cell.
	Read(addr Word) (value Word, err error)
	// Write replaces the value of one memory cell.
	Write(addr Word, value Word) (err error)
}
