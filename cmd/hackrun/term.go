package main

import (
	"time"

	"github.com/nsf/termbox-go"

	"github.com/ezrec/gohack/cpu"
	"github.com/ezrec/gohack/emulator"
	"github.com/ezrec/gohack/mem"
)

const (
	// Terminal cells are coarse: one cell previews an 8x8 pixel block.
	termBlockW = 8
	termBlockH = 8

	// Terminals only report key-down events, so a pressed key is held in
	// the keyboard register until no repeat arrives for this long.
	termKeyHold = 250 * time.Millisecond

	termFrame = 33 * time.Millisecond
)

// termKeyCodes maps termbox special keys to Hack key codes.
var termKeyCodes = map[termbox.Key]cpu.Word{
	termbox.KeySpace:      cpu.Word(' '),
	termbox.KeyEnter:      mem.KEY_NEWLINE,
	termbox.KeyBackspace:  mem.KEY_BACKSPACE,
	termbox.KeyBackspace2: mem.KEY_BACKSPACE,
	termbox.KeyArrowLeft:  mem.KEY_LEFT,
	termbox.KeyArrowUp:    mem.KEY_UP,
	termbox.KeyArrowRight: mem.KEY_RIGHT,
	termbox.KeyArrowDown:  mem.KEY_DOWN,
	termbox.KeyHome:       mem.KEY_HOME,
	termbox.KeyEnd:        mem.KEY_END,
	termbox.KeyPgup:       mem.KEY_PAGE_UP,
	termbox.KeyPgdn:       mem.KEY_PAGE_DOWN,
	termbox.KeyInsert:     mem.KEY_INSERT,
	termbox.KeyDelete:     mem.KEY_DELETE,
}

// runTerm runs the machine with a termbox frontend: the screen buffer is
// downsampled to character cells, key events drive the keyboard register,
// and Esc quits.
func runTerm(emu *emulator.Emulator, rate int) (err error) {
	err = termbox.Init()
	if err != nil {
		return
	}
	defer termbox.Close()

	events := make(chan termbox.Event, 8)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	ticker := time.NewTicker(termFrame)
	defer ticker.Stop()

	keyboard := emu.Keyboard()
	var holdUntil time.Time

	for {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc {
				return nil
			}

			code := cpu.Word(ev.Ch)
			if code == 0 {
				code = termKeyCodes[ev.Key]
			}
			if code != 0 {
				keyboard.Press(code)
				holdUntil = time.Now().Add(termKeyHold)
			}

		case <-ticker.C:
			if !holdUntil.IsZero() && time.Now().After(holdUntil) {
				keyboard.Release()
				holdUntil = time.Time{}
			}

			_, err = emu.Run(rate)
			if err != nil {
				return
			}

			drawTerm(emu.Screen())
		}
	}
}

// drawTerm repaints the terminal from the screen buffer.
func drawTerm(screen *mem.Screen) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for cy := 0; cy < cpu.SCREEN_HEIGHT/termBlockH; cy++ {
		for cx := 0; cx < cpu.SCREEN_WIDTH/termBlockW; cx++ {
			if blockSet(screen, cx*termBlockW, cy*termBlockH) {
				termbox.SetCell(cx, cy, '█', termbox.ColorWhite, termbox.ColorDefault)
			}
		}
	}

	termbox.Flush()
}

// blockSet reports whether any pixel of the 8x8 block at (x, y) is black.
func blockSet(screen *mem.Screen, x, y int) bool {
	for dy := 0; dy < termBlockH; dy++ {
		for dx := 0; dx < termBlockW; dx++ {
			if screen.Pixel(x+dx, y+dy) {
				return true
			}
		}
	}

	return false
}
