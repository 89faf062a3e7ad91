// Package emulator wires the Hack CPU to its data memory and keyboard,
// and runs assembled programs.
package emulator

import (
	"errors"

	"github.com/ezrec/gohack/cpu"
	"github.com/ezrec/gohack/mem"
)

// Emulator state. CPU + RAM + keyboard + the loaded program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Ram      *mem.Ram     // Data memory with mapped devices.
	Program  *cpu.Program // Reference to the currently loaded listing.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	ram := mem.NewRam()

	emu = &Emulator{
		Cpu:     cpu.NewCpu(ram),
		Ram:     ram,
		Program: &cpu.Program{},
	}

	return
}

// Keyboard returns the memory-mapped keyboard device.
func (emu *Emulator) Keyboard() *mem.Keyboard {
	return emu.Ram.Keyboard
}

// Screen returns the screen buffer view.
func (emu *Emulator) Screen() *mem.Screen {
	return emu.Ram.Screen()
}

// Reset loads the program into instruction memory and clears the CPU and
// the data memory.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Rom = emu.Program.Binary()
	emu.Ram.Reset()
	emu.Cpu.Reset()
}

// LineNo returns the source line number of the instruction at PC, when the
// loaded program carries a source mapping.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineAt(emu.Cpu.PC)
}

// Tick executes a single instruction. It reports done when the program
// counter runs off the end of the program, or when the program parks in
// the jump-to-self loop that Hack programs use as a halt marker.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	prev := emu.Cpu.PC

	if haltLoop(emu.Cpu.Rom, prev) {
		done = true
		return
	}

	err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrRomEnd) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	if emu.Cpu.PC == prev {
		done = true
	}

	return
}

// haltLoop reports whether pc sits on the two-instruction halt idiom: an
// A-instruction loading its own address, followed by an unconditional jump.
func haltLoop(rom []cpu.Code, pc cpu.Word) bool {
	if int(pc)+1 >= len(rom) {
		return false
	}

	load, jump := rom[pc], rom[pc+1]

	return load.IsAddress() && load.Address() == pc &&
		!jump.IsAddress() && !jump.IsShift() &&
		jump.Jump() == cpu.JUMP_JMP && jump.Dest() == cpu.DEST_NONE
}

// Run executes at most maxTicks instructions, stopping early when the
// program halts.
func (emu *Emulator) Run(maxTicks int) (done bool, err error) {
	for range maxTicks {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}

	return
}
