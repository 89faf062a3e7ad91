package routine

import (
	"context"

	"github.com/ezrec/gohack/cpu"
)

// Fill patterns for one screen word.
const (
	FILL_BLACK = cpu.Word(0xffff)
	FILL_WHITE = cpu.Word(0x0000)
)

// FillState is the state of the screen fill machine.
type FillState int

const (
	FILL_DISPATCH    = FillState(0) // Polling the keyboard.
	FILL_SWEEP_BLACK = FillState(1) // Painting every cell black.
	FILL_SWEEP_WHITE = FillState(2) // Painting every cell white.
)

func (fs FillState) String() string {
	switch fs {
	case FILL_DISPATCH:
		return "dispatch"
	case FILL_SWEEP_BLACK:
		return "sweep-black"
	case FILL_SWEEP_WHITE:
		return "sweep-white"
	}

	return "invalid"
}

// Span bounds a sweep: cells [Base, Limit). On the Hack memory map the
// keyboard register sits immediately past the screen buffer, so the sweep
// pointer stops when it reaches the keyboard cell.
type Span struct {
	Base  cpu.Word
	Limit cpu.Word
}

// ScreenSpan is the screen buffer span of the standard memory map.
func ScreenSpan() Span {
	return Span{Base: cpu.SCREEN_BASE, Limit: cpu.KEYBOARD}
}

// Fill continuously reflects keyboard state onto the screen: while any key
// is held every buffer cell is driven black, otherwise white. Every
// dispatch cycle repaints the whole buffer whether or not the state
// changed.
type Fill struct {
	Bus      cpu.Bus
	Keyboard cpu.Word // Address of the polled key register.
	Span     Span

	state FillState
}

// NewFill creates a screen fill over the standard memory map.
func NewFill(bus cpu.Bus) (fl *Fill) {
	fl = &Fill{
		Bus:      bus,
		Keyboard: cpu.KEYBOARD,
		Span:     ScreenSpan(),
	}

	return
}

// State returns the machine's current state.
func (fl *Fill) State() FillState {
	return fl.state
}

// Step runs one state to completion: a dispatch step polls the keyboard
// once and selects a sweep, a sweep step repaints the full span and
// returns to dispatch.
func (fl *Fill) Step() (err error) {
	switch fl.state {
	case FILL_DISPATCH:
		var key cpu.Word
		key, err = fl.Bus.Read(fl.Keyboard)
		if err != nil {
			return
		}
		if key != 0 {
			fl.state = FILL_SWEEP_BLACK
		} else {
			fl.state = FILL_SWEEP_WHITE
		}
	case FILL_SWEEP_BLACK:
		err = fl.sweep(FILL_BLACK)
		fl.state = FILL_DISPATCH
	case FILL_SWEEP_WHITE:
		err = fl.sweep(FILL_WHITE)
		fl.state = FILL_DISPATCH
	}

	return
}

// Run loops the machine until the context is cancelled. The machine has no
// terminal state of its own.
func (fl *Fill) Run(ctx context.Context) (err error) {
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		err = fl.Step()
		if err != nil {
			return
		}
	}
}

// sweep writes one pattern to every cell of the span.
func (fl *Fill) sweep(pattern cpu.Word) (err error) {
	for addr := fl.Span.Base; addr < fl.Span.Limit; addr++ {
		err = fl.Bus.Write(addr, pattern)
		if err != nil {
			return
		}
	}

	return
}
