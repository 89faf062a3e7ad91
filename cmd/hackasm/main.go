package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/ezrec/gohack/cpu"
)

// assemble compiles one .asm file into a .hack listing.
func assemble(input string, output string, verbose bool) {
	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	defer ouf.Close()

	_, err = prog.WriteTo(ouf)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Printf("%v: %v instructions", output, len(prog.Listing))
	}
}

// hackName derives the output name: same path, .hack extension.
func hackName(input string) string {
	return strings.TrimSuffix(input, ".asm") + ".hack"
}

func main() {
	var output string
	var verbose bool

	flag.StringVar(&output, "o", "", "Output file (single input only)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("%v: No input files", os.Args[0])
	}

	if len(output) != 0 {
		if flag.NArg() != 1 {
			log.Fatalf("%v: -o requires a single input", os.Args[0])
		}
		assemble(flag.Arg(0), output, verbose)
		return
	}

	for _, input := range flag.Args() {
		assemble(input, hackName(input), verbose)
	}
}
