// Package routine holds the machine-level utility routines of the
// platform: the array min/max exchange and the keyboard-driven screen
// fill. Each routine operates on memory through a cpu.Bus, taking its
// cell addresses as explicit parameters so the logic is independent of
// any particular memory layout.
package routine
