// Package x86 implements a decoder, NASM-style printer and simulator for a
// subset of the Intel 8086 instruction set: register/memory and
// immediate forms of mov, add, sub and cmp, plus the short conditional
// jump and loop instruction family.
//
// The decoder and printer are pure functions of an instruction byte
// stream; they never touch machine state. The simulator models eight
// 16-bit general purpose registers, the zero and sign flags, the
// instruction pointer and a flat 1MiB memory, and executes the
// instruction at IP on each step, so a taken jz or jnz continues at its
// target.
//
// Segment registers, string/IO/interrupt instructions, floating point,
// instruction prefixes, self-modifying code and cycle-accurate timing
// are not modelled.
//
// Example usage:
//
//	listing, err := x86.Disassemble(bytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	listing, trace, err := x86.Simulate(bytes)
package x86
