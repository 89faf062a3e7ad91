package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gohack/cpu"
)

func TestRam(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()

	value, err := ram.Read(100)
	assert.NoError(err)
	assert.Equal(cpu.Word(0), value)

	err = ram.Write(100, 0x1234)
	assert.NoError(err)

	value, err = ram.Read(100)
	assert.NoError(err)
	assert.Equal(cpu.Word(0x1234), value)

	ram.Reset()

	value, err = ram.Read(100)
	assert.NoError(err)
	assert.Equal(cpu.Word(0), value)
}

func TestRamBounds(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()

	// The keyboard register is the last addressable cell.
	_, err := ram.Read(cpu.KEYBOARD)
	assert.NoError(err)

	_, err = ram.Read(cpu.KEYBOARD + 1)
	assert.ErrorIs(err, ErrAddressInvalid(cpu.KEYBOARD+1))

	err = ram.Write(0x8000, 1)
	assert.ErrorIs(err, ErrAddressInvalid(0x8000))
}

func TestKeyboard(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()

	value, err := ram.Read(cpu.KEYBOARD)
	assert.NoError(err)
	assert.Equal(cpu.Word(0), value)

	ram.Keyboard.Press('A')

	value, err = ram.Read(cpu.KEYBOARD)
	assert.NoError(err)
	assert.Equal(cpu.Word('A'), value)

	// The register is read-only to the machine.
	err = ram.Write(cpu.KEYBOARD, 0)
	assert.NoError(err)

	value, err = ram.Read(cpu.KEYBOARD)
	assert.NoError(err)
	assert.Equal(cpu.Word('A'), value)

	ram.Keyboard.Release()

	value, err = ram.Read(cpu.KEYBOARD)
	assert.NoError(err)
	assert.Equal(cpu.Word(0), value)
}

func TestScreenPixel(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()
	screen := ram.Screen()

	assert.Equal(int(cpu.SCREEN_SIZE), len(screen.Words()))

	// Least significant bit is the leftmost pixel of a word.
	screen.Words()[0] = 0x0001
	assert.True(screen.Pixel(0, 0))
	assert.False(screen.Pixel(1, 0))

	screen.Words()[1] = 0x8000
	assert.True(screen.Pixel(31, 0))
	assert.False(screen.Pixel(30, 0))

	screen.Words()[cpu.WORDS_PER_ROW] = 0x0001
	assert.True(screen.Pixel(0, 1))
	assert.False(screen.Pixel(0, 2))

	// Out of range coordinates read as white.
	assert.False(screen.Pixel(-1, 0))
	assert.False(screen.Pixel(cpu.SCREEN_WIDTH, 0))
	assert.False(screen.Pixel(0, cpu.SCREEN_HEIGHT))
}

func TestScreenUniform(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()
	screen := ram.Screen()

	value, uniform := screen.Uniform()
	assert.True(uniform)
	assert.Equal(cpu.Word(0), value)

	screen.Words()[17] = 0xffff

	_, uniform = screen.Uniform()
	assert.False(uniform)
}
