package cpu

import (
	"errors"

	"github.com/ezrec/gohack/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrRomEnd      = errors.New(f("rom exhausted"))
	ErrCompInvalid = errors.New(f("comp field invalid"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelSyntax     = errors.New(f("label syntax"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrSymbolReserved  = errors.New(f("symbol reserved"))
	ErrDestInvalid     = errors.New(f("dest invalid"))
	ErrCompMissing     = errors.New(f("comp missing"))
	ErrJumpInvalid     = errors.New(f("jump invalid"))
	ErrAddressRange    = errors.New(f("address out of range"))
	ErrProgramTooLong  = errors.New(f("program exceeds rom"))
	ErrHackFormat      = errors.New(f("not a .hack listing"))
)

// ErrCode tags an error with the instruction that caused it.
type ErrCode Code

func (ec ErrCode) Error() string {
	return f("bad instruction 0x%04x %v", Word(ec), Code(ec).String())
}

func (ec ErrCode) Is(err error) (ok bool) {
	_, ok = err.(ErrCode)
	return
}

// ErrSyntax locates an assembler error in its source listing.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseNumber reports a malformed numeric literal.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrCompInvalidName reports an unknown comp mnemonic.
type ErrCompInvalidName string

func (err ErrCompInvalidName) Error() string {
	return f("'%v' is not a computation", string(err))
}

// ErrParseExpression reports a malformed $( ) compile-time expression.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
