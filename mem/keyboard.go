package mem

import (
	"sync/atomic"

	"github.com/ezrec/gohack/cpu"
)

// Hack key codes for keys without a character representation. Printable
// keys report their ASCII value.
const (
	KEY_NEWLINE   = cpu.Word(128)
	KEY_BACKSPACE = cpu.Word(129)
	KEY_LEFT      = cpu.Word(130)
	KEY_UP        = cpu.Word(131)
	KEY_RIGHT     = cpu.Word(132)
	KEY_DOWN      = cpu.Word(133)
	KEY_HOME      = cpu.Word(134)
	KEY_END       = cpu.Word(135)
	KEY_PAGE_UP   = cpu.Word(136)
	KEY_PAGE_DOWN = cpu.Word(137)
	KEY_INSERT    = cpu.Word(138)
	KEY_DELETE    = cpu.Word(139)
	KEY_ESCAPE    = cpu.Word(140)
	KEY_F1        = cpu.Word(141)
)

// Keyboard is the memory-mapped key register. It holds the code of the key
// currently held down, or zero. A frontend goroutine may update it while
// the machine loop reads it.
type Keyboard struct {
	key atomic.Uint32
}

// Press records a key going down.
func (kb *Keyboard) Press(code cpu.Word) {
	kb.key.Store(uint32(code))
}

// Release records the key going back up.
func (kb *Keyboard) Release() {
	kb.key.Store(0)
}

// Current returns the code of the key held down, or zero.
func (kb *Keyboard) Current() cpu.Word {
	return cpu.Word(kb.key.Load())
}
