package main

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ezrec/gohack/cpu"
	"github.com/ezrec/gohack/emulator"
	"github.com/ezrec/gohack/mem"
)

var errTerminated = errors.New("terminated")

// guiKeyCodes maps ebiten keys to Hack key codes. Letters and digits are
// filled in by init.
var guiKeyCodes = map[ebiten.Key]cpu.Word{
	ebiten.KeySpace:      cpu.Word(' '),
	ebiten.KeyEnter:      mem.KEY_NEWLINE,
	ebiten.KeyBackspace:  mem.KEY_BACKSPACE,
	ebiten.KeyArrowLeft:  mem.KEY_LEFT,
	ebiten.KeyArrowUp:    mem.KEY_UP,
	ebiten.KeyArrowRight: mem.KEY_RIGHT,
	ebiten.KeyArrowDown:  mem.KEY_DOWN,
	ebiten.KeyHome:       mem.KEY_HOME,
	ebiten.KeyEnd:        mem.KEY_END,
	ebiten.KeyPageUp:     mem.KEY_PAGE_UP,
	ebiten.KeyPageDown:   mem.KEY_PAGE_DOWN,
	ebiten.KeyInsert:     mem.KEY_INSERT,
	ebiten.KeyDelete:     mem.KEY_DELETE,
}

func init() {
	for n := range 26 {
		guiKeyCodes[ebiten.KeyA+ebiten.Key(n)] = cpu.Word('A' + n)
	}
	for n := range 10 {
		guiKeyCodes[ebiten.KeyDigit0+ebiten.Key(n)] = cpu.Word('0' + n)
	}
}

// game runs the emulator inside the ebiten loop: each frame polls the held
// key, executes a slice of instructions, and repaints the framebuffer.
type game struct {
	emu   *emulator.Emulator
	frame *ebiten.Image
	rate  int
	done  bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errTerminated
	}

	keyboard := g.emu.Keyboard()
	held := cpu.Word(0)
	for key, code := range guiKeyCodes {
		if ebiten.IsKeyPressed(key) {
			held = code
			break
		}
	}
	if held != 0 {
		keyboard.Press(held)
	} else {
		keyboard.Release()
	}

	if !g.done {
		done, err := g.emu.Run(g.rate)
		if err != nil {
			return err
		}
		g.done = done
	}

	screen := g.emu.Screen()
	for y := 0; y < cpu.SCREEN_HEIGHT; y++ {
		for x := 0; x < cpu.SCREEN_WIDTH; x++ {
			if screen.Pixel(x, y) {
				g.frame.Set(x, y, color.Black)
			} else {
				g.frame.Set(x, y, color.White)
			}
		}
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return cpu.SCREEN_WIDTH, cpu.SCREEN_HEIGHT
}

// runGui runs the machine with the graphical framebuffer frontend.
func runGui(emu *emulator.Emulator, rate int) (err error) {
	ebiten.SetWindowSize(cpu.SCREEN_WIDTH*2, cpu.SCREEN_HEIGHT*2)
	ebiten.SetWindowTitle("gohack")

	g := &game{
		emu:   emu,
		frame: ebiten.NewImage(cpu.SCREEN_WIDTH, cpu.SCREEN_HEIGHT),
		rate:  rate,
	}

	err = ebiten.RunGame(g)
	if errors.Is(err, errTerminated) {
		err = nil
	}

	return
}
