package cpu

import (
	"errors"
	"log"
)

// Cpu is the simulation context for the Hack processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Bus Bus    // Data memory.
	Rom []Code // Instruction memory.

	A  Word // Address register.
	D  Word // Data register.
	PC Word // Program counter.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a CPU attached to a data memory bus.
func NewCpu(bus Bus) (cpu *Cpu) {
	cpu = &Cpu{
		Bus: bus,
	}

	return
}

// Reset clears the registers and statistics. The ROM and the bus contents
// are left alone.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.D = 0
	cpu.PC = 0
	cpu.Ticks = 0
}

// Step executes the instruction at PC. Returns ErrRomEnd when the program
// counter has run off the end of the loaded instructions.
func (cpu *Cpu) Step() (err error) {
	if int(cpu.PC) >= len(cpu.Rom) {
		err = ErrRomEnd
		return
	}

	code := cpu.Rom[cpu.PC]

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", cpu.PC, code)
	}

	err = cpu.Execute(code)

	return
}

// Execute executes a single instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrCode(code), err)
		}
	}()

	next := cpu.PC + 1

	if code.IsAddress() {
		cpu.A = code.Address()
		cpu.PC = next
		cpu.Ticks++
		return
	}

	// The memory operand and the M destination both address through the
	// A register as it was when the instruction started.
	addr := cpu.A

	var in Word
	if code.UsesMemory() {
		in, err = cpu.Bus.Read(addr)
		if err != nil {
			return
		}
	} else {
		in = cpu.A
	}

	var out Word
	if code.IsShift() {
		out, err = cpu.shift(code.Comp(), in)
	} else {
		out, err = cpu.compute(code.Comp(), in)
	}
	if err != nil {
		return
	}

	dest := code.Dest()
	if dest&DEST_M != 0 {
		err = cpu.Bus.Write(addr, out)
		if err != nil {
			return
		}
	}
	if dest&DEST_D != 0 {
		cpu.D = out
	}
	if dest&DEST_A != 0 {
		cpu.A = out
	}

	if cpu.jumpTaken(code.Jump(), out) {
		next = cpu.A
	}

	cpu.PC = next
	cpu.Ticks++

	return
}

// compute performs a standard ALU computation. 'in' is the A or M operand
// selected by the a-bit.
func (cpu *Cpu) compute(comp Comp, in Word) (out Word, err error) {
	switch comp & ^comp_A_BIT {
	case COMP_ZERO:
		out = 0
	case COMP_ONE:
		out = 1
	case COMP_NEG_ONE:
		out = 0xffff
	case COMP_D:
		out = cpu.D
	case COMP_X:
		out = in
	case COMP_NOT_D:
		out = ^cpu.D
	case COMP_NOT_X:
		out = ^in
	case COMP_NEG_D:
		out = -cpu.D
	case COMP_NEG_X:
		out = -in
	case COMP_D_PLUS_1:
		out = cpu.D + 1
	case COMP_X_PLUS_1:
		out = in + 1
	case COMP_D_MINUS_1:
		out = cpu.D - 1
	case COMP_X_MINUS_1:
		out = in - 1
	case COMP_D_PLUS_X:
		out = cpu.D + in
	case COMP_D_MINUS_X:
		out = cpu.D - in
	case COMP_X_MINUS_D:
		out = in - cpu.D
	case COMP_D_AND_X:
		out = cpu.D & in
	case COMP_D_OR_X:
		out = cpu.D | in
	default:
		err = ErrCompInvalid
	}

	return
}

// shift performs an extended shift computation. Right shifts are
// arithmetic, matching the course's extended ALU.
func (cpu *Cpu) shift(comp Comp, in Word) (out Word, err error) {
	switch comp {
	case SHIFT_A_LEFT, SHIFT_M_LEFT:
		out = in << 1
	case SHIFT_D_LEFT:
		out = cpu.D << 1
	case SHIFT_A_RIGHT, SHIFT_M_RIGHT:
		out = Word(int16(in) >> 1)
	case SHIFT_D_RIGHT:
		out = Word(int16(cpu.D) >> 1)
	default:
		err = ErrCompInvalid
	}

	return
}

// jumpTaken evaluates the jump field against the signed ALU output.
func (cpu *Cpu) jumpTaken(jump Jump, out Word) bool {
	value := int16(out)

	switch {
	case jump&JUMP_LT != 0 && value < 0:
		return true
	case jump&JUMP_EQ != 0 && value == 0:
		return true
	case jump&JUMP_GT != 0 && value > 0:
		return true
	}

	return false
}
