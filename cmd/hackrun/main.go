package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/gohack/cpu"
	"github.com/ezrec/gohack/emulator"
)

// loadProgram reads a .hack listing, or assembles anything else as .asm.
func loadProgram(path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	if strings.HasSuffix(path, ".hack") {
		prog, err = cpu.ReadHack(inf)
		return
	}

	asm := &cpu.Assembler{}
	prog, err = asm.Parse(inf)

	return
}

// parseCell parses an "addr=value" preset. Both parts accept 0x prefixes.
func parseCell(arg string) (addr, value cpu.Word, err error) {
	text, valtext, found := strings.Cut(arg, "=")
	if !found {
		err = fmt.Errorf("'%v' is not addr=value", arg)
		return
	}

	a64, err := strconv.ParseInt(text, 0, 17)
	if err != nil {
		return
	}
	v64, err := strconv.ParseInt(valtext, 0, 17)
	if err != nil {
		return
	}

	addr = cpu.Word(a64)
	value = cpu.Word(v64)

	return
}

func main() {
	var gui bool
	var verbose bool
	var batch int
	var rate int
	var dump string

	var presets []string

	flag.BoolVar(&gui, "gui", false, "Run with the graphical framebuffer")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&batch, "batch", 0, "Run headless for at most N instructions")
	flag.IntVar(&rate, "rate", 100000, "Instructions per display frame")
	flag.StringVar(&dump, "dump", "", "Print RAM cells base:length after a batch run")
	flag.Func("set", "Preset a RAM cell to addr=value (repeatable)", func(arg string) error {
		presets = append(presets, arg)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one program file", os.Args[0])
	}

	prog, err := loadProgram(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v: %v", flag.Arg(0), err)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Reset()

	for _, preset := range presets {
		addr, value, err := parseCell(preset)
		if err != nil {
			log.Fatalf("%v: -set %v", os.Args[0], err)
		}
		err = emu.Ram.Write(addr, value)
		if err != nil {
			log.Fatalf("%v: -set %v: %v", os.Args[0], preset, err)
		}
	}

	switch {
	case batch > 0:
		runBatch(emu, batch, dump)
	case gui:
		err = runGui(emu, rate)
	default:
		err = runTerm(emu, rate)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runBatch runs headless until the program halts or the budget runs out,
// then optionally dumps a memory region.
func runBatch(emu *emulator.Emulator, maxTicks int, dump string) {
	done, err := emu.Run(maxTicks)
	if err != nil {
		log.Fatal(err)
	}

	if done {
		log.Printf("halted after %v instructions", emu.Cpu.Ticks)
	} else {
		log.Printf("still running after %v instructions", emu.Cpu.Ticks)
	}

	if len(dump) == 0 {
		return
	}

	basetext, lentext, found := strings.Cut(dump, ":")
	if !found {
		log.Fatalf("-dump: '%v' is not base:length", dump)
	}
	base, err1 := strconv.ParseInt(basetext, 0, 17)
	length, err2 := strconv.ParseInt(lentext, 0, 17)
	if err1 != nil || err2 != nil {
		log.Fatalf("-dump: '%v' is not base:length", dump)
	}

	for n := int64(0); n < length; n++ {
		value, err := emu.Ram.Read(cpu.Word(base + n))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%5d: %v\n", base+n, value)
	}
}
