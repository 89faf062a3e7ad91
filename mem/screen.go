package mem

import (
	"github.com/ezrec/gohack/cpu"
)

// Screen is a view over the memory-mapped screen buffer. Each buffer word
// holds 16 horizontally adjacent pixels, least significant bit leftmost;
// a set bit is a black pixel.
type Screen struct {
	Ram *Ram
}

// Words returns the live screen buffer region.
func (sc *Screen) Words() []cpu.Word {
	return sc.Ram.Data[cpu.SCREEN_BASE : cpu.SCREEN_BASE+cpu.SCREEN_SIZE]
}

// Pixel reports whether the pixel at (x, y) is black. Out-of-range
// coordinates read as white.
func (sc *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= cpu.SCREEN_WIDTH || y < 0 || y >= cpu.SCREEN_HEIGHT {
		return false
	}

	word := sc.Words()[y*cpu.WORDS_PER_ROW+x/cpu.PIXELS_PER_WORD]

	return word&(1<<(x%cpu.PIXELS_PER_WORD)) != 0
}

// Uniform reports whether every screen word holds the same value, and
// returns that value. Useful for checking full-screen fills.
func (sc *Screen) Uniform() (value cpu.Word, uniform bool) {
	words := sc.Words()

	value = words[0]
	for _, word := range words[1:] {
		if word != value {
			return 0, false
		}
	}

	return value, true
}
