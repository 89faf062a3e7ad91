package emulator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gohack/cpu"
	"github.com/ezrec/gohack/mem"
	"github.com/ezrec/gohack/routine"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Ram)
	assert.NotNil(emu.Keyboard())
	assert.NotNil(emu.Screen())
}

func doAssemble(t *testing.T, program []string) (prog *cpu.Program) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func loadAsm(t *testing.T, name string) (prog *cpu.Program) {
	assert := assert.New(t)

	file, err := os.Open(filepath.Join("testdata", name))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	asm := &cpu.Assembler{}
	prog, err = asm.Parse(file)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestEmulatorRomEnd(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = doAssemble(t, []string{"@5"})
	emu.Reset()

	done, err := emu.Run(10)
	assert.NoError(err)
	assert.True(done)
	assert.Equal(cpu.Word(5), emu.Cpu.A)
	assert.Equal(1, emu.Cpu.Ticks)
}

// The jump-to-self loop at the end of a program reads as a halt.
func TestEmulatorHalt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = doAssemble(t, []string{
		"@1",
		"D=A",
		"(END)",
		"@END",
		"0;JMP",
	})
	emu.Reset()

	done, err := emu.Run(100)
	assert.NoError(err)
	assert.True(done)
	assert.Equal(cpu.Word(1), emu.Cpu.D)
	assert.Less(emu.Cpu.Ticks, 10)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = doAssemble(t, []string{
		"@32767",
		"A=A+1",
		"D=M",
	})
	emu.Reset()

	_, err := emu.Run(10)
	assert.ErrorIs(err, mem.ErrAddressInvalid(0x8000))

	var er *ErrRuntime
	if assert.ErrorAs(err, &er) {
		assert.Equal(3, er.LineNo)
	}
}

func TestMinMaxSwapProgram(t *testing.T) {
	assert := assert.New(t)

	prog := loadAsm(t, "minmaxswap.asm")

	table := [](struct {
		name   string
		values []int
	}){
		{"mixed", []int{5, -2, 9, 1, -2}},
		{"single", []int{7}},
		{"constant", []int{3, 3, 3}},
		{"empty", []int{}},
		{"sorted", []int{-5, -1, 0, 2, 8}},
		{"ties", []int{4, 0, 4, 0}},
	}

	const base = cpu.Word(1000)

	for _, entry := range table {
		emu := NewEmulator()
		emu.Program = prog
		emu.Reset()

		emu.Ram.Data[14] = base
		emu.Ram.Data[15] = cpu.Word(len(entry.values))
		for n, value := range entry.values {
			emu.Ram.Data[base+cpu.Word(n)] = cpu.Word(value)
		}

		done, err := emu.Run(100000)
		assert.NoError(err, entry.name)
		assert.True(done, entry.name)

		// The native rendition of the same routine is the oracle.
		oracle := mem.NewRam()
		for n, value := range entry.values {
			oracle.Data[base+cpu.Word(n)] = cpu.Word(value)
		}
		region := routine.Region{Base: base, Length: cpu.Word(len(entry.values))}
		assert.NoError(routine.MinMaxSwap(oracle, region))

		for n := range entry.values {
			addr := base + cpu.Word(n)
			assert.Equal(oracle.Data[addr], emu.Ram.Data[addr],
				"%s[%d]", entry.name, n)
		}
	}
}

func TestFillProgram(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = loadAsm(t, "fill.asm")
	emu.Reset()

	// The program never halts; it polls and repaints forever.
	done, err := emu.Run(500000)
	assert.NoError(err)
	assert.False(done)

	value, uniform := emu.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(routine.FILL_WHITE, value)

	emu.Keyboard().Press('A')

	done, err = emu.Run(500000)
	assert.NoError(err)
	assert.False(done)

	value, uniform = emu.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(routine.FILL_BLACK, value)

	emu.Keyboard().Release()

	done, err = emu.Run(500000)
	assert.NoError(err)
	assert.False(done)

	value, uniform = emu.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(routine.FILL_WHITE, value)
}
