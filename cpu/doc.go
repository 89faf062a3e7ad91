// Package cpu implements the Hack machine core and its assembler.
//
// The machine consists of an address register A, a data register D, a
// program counter, and a flat word-addressed memory reached through a Bus.
// Instructions are 16-bit words: A-instructions load a constant into the A
// register, C-instructions compute an ALU function of A, D and M and
// optionally store the result and jump. The extended 101-prefixed encoding
// adds the one-bit shift operations.
//
// The assembler translates the Hack assembly language (labels, variables,
// predefined symbols, dest=comp;jump mnemonics) into Programs, supporting
// .equ equates and compile-time $( ) expression evaluation.
package cpu
