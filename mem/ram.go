// Package mem models the Hack data memory: general-purpose RAM, the
// memory-mapped screen buffer, and the keyboard register that immediately
// follows it.
package mem

import (
	"github.com/ezrec/gohack/cpu"
)

// Ram is the Hack data memory. It implements cpu.Bus. Reads of the
// keyboard register are serviced by the attached Keyboard device; writes
// to it are dropped, as the register is read-only to the machine.
type Ram struct {
	Data [cpu.RAM_SIZE]cpu.Word

	Keyboard *Keyboard
}

var _ cpu.Bus = (*Ram)(nil)

// NewRam creates a zeroed memory with a keyboard attached.
func NewRam() (ram *Ram) {
	ram = &Ram{
		Keyboard: &Keyboard{},
	}

	return
}

// Reset clears all memory cells. The keyboard register is a live device
// and is not cleared.
func (ram *Ram) Reset() {
	clear(ram.Data[:])
}

// Read returns the value of one memory cell.
func (ram *Ram) Read(addr cpu.Word) (value cpu.Word, err error) {
	if int(addr) >= len(ram.Data) {
		err = ErrAddressInvalid(addr)
		return
	}

	if addr == cpu.KEYBOARD && ram.Keyboard != nil {
		value = ram.Keyboard.Current()
		return
	}

	value = ram.Data[addr]

	return
}

// Write replaces the value of one memory cell.
func (ram *Ram) Write(addr cpu.Word, value cpu.Word) (err error) {
	if int(addr) >= len(ram.Data) {
		err = ErrAddressInvalid(addr)
		return
	}

	if addr == cpu.KEYBOARD {
		// Read-only device register.
		return
	}

	ram.Data[addr] = value

	return
}

// Screen returns the screen buffer view of this memory.
func (ram *Ram) Screen() *Screen {
	return &Screen{Ram: ram}
}
