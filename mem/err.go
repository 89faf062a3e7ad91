package mem

import (
	"github.com/ezrec/gohack/cpu"
	"github.com/ezrec/gohack/translate"
)

var f = translate.From

// ErrAddressInvalid reports an access outside the data memory.
type ErrAddressInvalid cpu.Word

func (err ErrAddressInvalid) Error() string {
	return f("address 0x%04x outside memory", cpu.Word(err))
}
