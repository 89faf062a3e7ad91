package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined symbols of the Hack platform.
var sysSymbol = map[string]Word{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": SCREEN_BASE,
	"KBD":    KEYBOARD,
}

func init() {
	for n := Word(0); n < 16; n++ {
		sysSymbol[fmt.Sprintf("R%d", n)] = n
	}
}

// destMap maps destination mnemonics to their field encoding.
var destMap = map[string]Dest{
	"":    DEST_NONE,
	"M":   DEST_M,
	"D":   DEST_D,
	"MD":  DEST_M | DEST_D,
	"A":   DEST_A,
	"AM":  DEST_A | DEST_M,
	"AD":  DEST_A | DEST_D,
	"AMD": DEST_A | DEST_M | DEST_D,
}

// jumpMap maps jump mnemonics to their field encoding.
var jumpMap = map[string]Jump{
	"":    JUMP_NONE,
	"JGT": JUMP_GT,
	"JEQ": JUMP_EQ,
	"JGE": JUMP_GE,
	"JLT": JUMP_LT,
	"JNE": JUMP_NE,
	"JLE": JUMP_LE,
	"JMP": JUMP_JMP,
}

// compMap maps computation mnemonics, including the M-operand and shift
// forms, to their field encoding. Built from the decode tables in code.go.
var compMap = map[string]Comp{}

func init() {
	for bits, name := range compNames {
		compMap[name] = bits
		if strings.ContainsRune(name, 'A') {
			compMap[replaceOperand(name)] = bits | comp_A_BIT
		}
	}
	for bits, name := range shiftNames {
		compMap[name] = bits
	}
}

// Assembler is a two-pass assembler for the Hack assembly language.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines

	Symbol map[string]Word   // Map of labels and variables to addresses.
	Equate map[string]string // Map of equates.

	nextVariable Word // Next free RAM cell for a new variable.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a numeric word.
func (asm *Assembler) valueOf(word string) (value Word, err error) {
	v64, err := strconv.ParseInt(word, 0, 17)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 0xffff || v64 < -0x8000 {
		err = ErrAddressRange
		return
	}

	value = Word(v64)

	return
}

// parenEval does compile-time $(...) evaluations. Equates and the
// predefined symbols are visible to the expression.
func (asm *Assembler) parenEval(expr string) (value Word, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range sysSymbol {
		pred[key] = starlark.MakeInt(int(val))
	}
	for key, str := range asm.Equate {
		value16, _err := asm.valueOf(str)
		if _err != nil {
			// Non-numeric equates cannot appear in expressions.
			continue
		}
		pred[key] = starlark.MakeInt(value16.Int())
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = Word(st_int64)
	return
}

var parenRe = regexp.MustCompile(`\$\([^\$\)]*\)`)

// cleanLine strips the comment, evaluates $( ) expressions, and removes
// all whitespace. An empty result means the line holds no instruction.
func (asm *Assembler) cleanLine(text string) (line string, err error) {
	text, _, _ = strings.Cut(text, "//")

	text = parenRe.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	line = strings.Join(strings.Fields(text), "")

	return
}

// source is one non-empty line of cleaned assembly input.
type source struct {
	LineNo int
	Line   string
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	var line string

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Symbol == nil {
		asm.Symbol = make(map[string]Word, 16)
	}
	clear(asm.Symbol)
	if asm.Equate == nil {
		asm.Equate = make(map[string]string, 16)
	}
	clear(asm.Equate)
	for equ, val := range asm.predefine {
		asm.Equate[equ] = val
	}
	asm.nextVariable = 16

	var sources []source

	// Pass 1: clean the input, collect .equ directives, and assign each
	// (LABEL) the address of the instruction that follows it.
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, text)
		}

		fields := strings.Fields(strings.Split(text, "//")[0])
		if len(fields) > 0 && fields[0] == ".equ" {
			if len(fields) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := asm.Equate[fields[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			asm.Equate[fields[1]] = fields[2]
			continue
		}

		line, err = asm.cleanLine(text)
		if err != nil {
			return
		}
		if len(line) == 0 {
			continue
		}

		if line[0] == '(' {
			err = asm.defineLabel(line, Word(len(sources)))
			if err != nil {
				return
			}
			continue
		}

		sources = append(sources, source{LineNo: lineno, Line: line})
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	if len(sources) > ROM_SIZE {
		err = ErrProgramTooLong
		return
	}

	// Pass 2: encode instructions, allocating variables as they appear.
	prog = &Program{}
	for ip, src := range sources {
		lineno, line = src.LineNo, src.Line

		var code Code
		code, err = asm.encodeLine(line)
		if err != nil {
			prog = nil
			return
		}

		prog.Listing = append(prog.Listing, Listing{
			LineNo: src.LineNo,
			Ip:     Word(ip),
			Text:   line,
			Code:   code,
		})
	}

	return
}

// defineLabel records a (LABEL) declaration at the given instruction address.
func (asm *Assembler) defineLabel(line string, ip Word) (err error) {
	if len(line) < 3 || line[len(line)-1] != ')' {
		return ErrLabelSyntax
	}

	label := line[1 : len(line)-1]
	if label[0] >= '0' && label[0] <= '9' {
		return ErrLabelSyntax
	}

	_, ok := sysSymbol[label]
	if ok {
		return ErrSymbolReserved
	}
	_, ok = asm.Symbol[label]
	if ok {
		return ErrLabelDuplicate
	}

	asm.Symbol[label] = ip

	return
}

// encodeLine encodes one cleaned line as an instruction word.
func (asm *Assembler) encodeLine(line string) (code Code, err error) {
	if line[0] == '@' {
		return asm.encodeAddress(line[1:])
	}

	return asm.encodeCompute(line)
}

// encodeAddress encodes an A-instruction, resolving equates, predefined
// symbols, labels, and variables.
func (asm *Assembler) encodeAddress(symbol string) (code Code, err error) {
	if len(symbol) == 0 {
		err = ErrLabelSyntax
		return
	}

	equ, ok := asm.Equate[symbol]
	if ok {
		symbol = equ
	}

	if symbol[0] >= '0' && symbol[0] <= '9' || symbol[0] == '-' {
		var value Word
		value, err = asm.valueOf(symbol)
		if err != nil {
			return
		}
		if value > 0x7fff {
			err = ErrAddressRange
			return
		}
		code = MakeAddress(value)
		return
	}

	addr, ok := sysSymbol[symbol]
	if !ok {
		addr, ok = asm.Symbol[symbol]
	}
	if !ok {
		// First use of a new variable.
		if asm.nextVariable >= SCREEN_BASE {
			err = ErrAddressRange
			return
		}
		addr = asm.nextVariable
		asm.Symbol[symbol] = addr
		asm.nextVariable++

		if asm.Verbose {
			log.Printf("asm: variable %v at %v", symbol, addr)
		}
	}

	code = MakeAddress(addr)

	return
}

// encodeCompute encodes a dest=comp;jump instruction.
func (asm *Assembler) encodeCompute(line string) (code Code, err error) {
	var destText, jumpText string

	compText := line
	if before, after, found := strings.Cut(compText, "="); found {
		destText = before
		compText = after
	}
	if before, after, found := strings.Cut(compText, ";"); found {
		compText = before
		jumpText = after
	}

	dest, ok := destMap[destText]
	if !ok {
		err = ErrDestInvalid
		return
	}

	jump, ok := jumpMap[jumpText]
	if !ok {
		err = ErrJumpInvalid
		return
	}

	if len(compText) == 0 {
		err = ErrCompMissing
		return
	}

	comp, ok := compMap[compText]
	if !ok {
		err = ErrCompInvalidName(compText)
		return
	}

	if strings.Contains(compText, "<<") || strings.Contains(compText, ">>") {
		code = MakeShift(comp, dest, jump)
	} else {
		code = MakeCompute(comp, dest, jump)
	}

	return
}
