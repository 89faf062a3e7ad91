package routine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gohack/cpu"
	"github.com/ezrec/gohack/mem"
)

func TestFillStates(t *testing.T) {
	assert := assert.New(t)

	ram := mem.NewRam()
	fl := NewFill(ram)

	assert.Equal(FILL_DISPATCH, fl.State())

	// No key held: dispatch selects a white sweep.
	assert.NoError(fl.Step())
	assert.Equal(FILL_SWEEP_WHITE, fl.State())

	assert.NoError(fl.Step())
	assert.Equal(FILL_DISPATCH, fl.State())

	value, uniform := ram.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(FILL_WHITE, value)

	// Key goes down: the next dispatch selects a black sweep.
	ram.Keyboard.Press(' ')

	assert.NoError(fl.Step())
	assert.Equal(FILL_SWEEP_BLACK, fl.State())

	assert.NoError(fl.Step())
	assert.Equal(FILL_DISPATCH, fl.State())

	value, uniform = ram.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(FILL_BLACK, value)

	// Holding the key repaints black again.
	assert.NoError(fl.Step())
	assert.NoError(fl.Step())

	value, uniform = ram.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(FILL_BLACK, value)

	// Key released: back to white.
	ram.Keyboard.Release()

	assert.NoError(fl.Step())
	assert.NoError(fl.Step())

	value, uniform = ram.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(FILL_WHITE, value)
}

// The sweep pointer stops at the keyboard cell rather than painting it.
func TestFillStopsAtKeyboard(t *testing.T) {
	assert := assert.New(t)

	ram := mem.NewRam()
	fl := NewFill(ram)

	ram.Keyboard.Press('x')

	assert.NoError(fl.Step())
	assert.NoError(fl.Step())

	value, err := ram.Read(fl.Keyboard)
	assert.NoError(err)
	assert.Equal(cpu.Word('x'), value)
}

func TestFillStateString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("dispatch", FILL_DISPATCH.String())
	assert.Equal("sweep-black", FILL_SWEEP_BLACK.String())
	assert.Equal("sweep-white", FILL_SWEEP_WHITE.String())
	assert.Equal("invalid", FillState(99).String())
}

func TestFillRun(t *testing.T) {
	assert := assert.New(t)

	ram := mem.NewRam()
	fl := NewFill(ram)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fl.Run(ctx)
	assert.ErrorIs(err, context.Canceled)

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = fl.Run(ctx)
	assert.ErrorIs(err, context.DeadlineExceeded)

	// No key was ever held, so every completed sweep painted white.
	value, uniform := ram.Screen().Uniform()
	assert.True(uniform)
	assert.Equal(FILL_WHITE, value)
}
