package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Listing is one assembled instruction with its source location.
type Listing struct {
	LineNo int    // Source line number.
	Ip     Word   // Instruction address.
	Text   string // Cleaned source text.
	Code   Code   // Encoded instruction.
}

// Program is an assembled (or loaded) instruction stream.
type Program struct {
	Listing []Listing
}

// Codes iterates the program's instructions in address order.
func (prog *Program) Codes() iter.Seq2[Word, Code] {
	return func(yield func(ip Word, code Code) bool) {
		for _, ls := range prog.Listing {
			if !yield(ls.Ip, ls.Code) {
				return
			}
		}
	}
}

// Binary returns the instruction words, ready to load as a ROM.
func (prog *Program) Binary() (codes []Code) {
	codes = make([]Code, 0, len(prog.Listing))
	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}

	return
}

// LineAt returns the source line number of the instruction at ip, or 0
// when the program carries no source mapping for it.
func (prog *Program) LineAt(ip Word) int {
	for _, ls := range prog.Listing {
		if ls.Ip == ip {
			return ls.LineNo
		}
	}

	return 0
}

// WriteTo emits the textual .hack listing, one 16-bit binary string per
// instruction.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, code := range prog.Codes() {
		var wrote int
		wrote, err = fmt.Fprintf(w, "%016b\n", Word(code))
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	return
}

// ReadHack parses a textual .hack listing into a Program. The loaded
// program carries no source mapping.
func ReadHack(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &Program{}

	var lineno int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineno++
		if len(line) == 0 {
			continue
		}

		if len(line) != 16 {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrHackFormat}
			prog = nil
			return
		}

		value, _err := strconv.ParseUint(line, 2, 16)
		if _err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: ErrHackFormat}
			prog = nil
			return
		}

		prog.Listing = append(prog.Listing, Listing{
			LineNo: lineno,
			Ip:     Word(len(prog.Listing)),
			Code:   Code(value),
		})
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}
