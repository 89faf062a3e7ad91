package routine

import (
	"github.com/ezrec/gohack/cpu"
)

// Region locates an externally supplied array: Length cells starting at
// Base. The routine treats both fields as read-only; the caller guarantees
// the region stays within addressable memory.
type Region struct {
	Base   cpu.Word
	Length cpu.Word
}

// MinMaxSwap locates the minimum and the maximum element of the region and
// exchanges the two values in place. When several elements are equal to an
// extremum the first occurrence wins. A zero-length region is a no-op.
//
// The exchange is a single transposition: every other element is left
// untouched, and when both extrema share one position the array is
// unchanged.
func MinMaxSwap(bus cpu.Bus, region Region) (err error) {
	if region.Length == 0 {
		return
	}

	// Trackers seed at the theoretical worst case, so the first element
	// always wins the first comparison.
	minValue := 0x7fff
	minAddr := region.Base
	for n := cpu.Word(0); n < region.Length; n++ {
		var value cpu.Word
		value, err = bus.Read(region.Base + n)
		if err != nil {
			return
		}
		if value.Int() < minValue {
			minValue = value.Int()
			minAddr = region.Base + n
		}
	}

	maxValue := -0x8000
	maxAddr := region.Base
	for n := cpu.Word(0); n < region.Length; n++ {
		var value cpu.Word
		value, err = bus.Read(region.Base + n)
		if err != nil {
			return
		}
		if value.Int() > maxValue {
			maxValue = value.Int()
			maxAddr = region.Base + n
		}
	}

	err = bus.Write(maxAddr, cpu.Word(minValue))
	if err != nil {
		return
	}
	err = bus.Write(minAddr, cpu.Word(maxValue))

	return
}
