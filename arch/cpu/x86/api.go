package x86

import (
	"strings"

	"github.com/oisee/i8086dis/log"
)

// Disassemble decodes and prints every instruction in bytes, producing
// a full NASM-compatible listing. It never mutates machine state: there
// is no machine to mutate. Decoding stops and an error is returned as
// soon as any instruction fails to decode.
func Disassemble(bytes []byte) (string, error) {
	instructions, err := decodeAll(bytes)
	if err != nil {
		return "", err
	}
	return Listing(instructions), nil
}

// DisassembleWithLogger behaves like Disassemble but logs one summary
// line through logger, matching the driver's own logging convention.
func DisassembleWithLogger(bytes []byte, logger *log.Logger) (string, error) {
	listing, err := Disassemble(bytes)
	if logger != nil {
		if err != nil {
			logger.Warn("disassembly stopped early", log.Err(err), log.Int("byte_count", len(bytes)))
		} else {
			logger.Info("disassembled program", log.Int("byte_count", len(bytes)))
		}
	}
	return listing, err
}

// DisassembleCommented behaves like Disassemble but suffixes each line
// with the instruction's own encoded bytes as a comment.
func DisassembleCommented(bytes []byte) (string, error) {
	instructions, err := decodeAll(bytes)
	if err != nil {
		return "", err
	}
	return ListingCommented(bytes, instructions), nil
}

// DisassembleBlocks behaves like Disassemble but annotates the listing
// with basic-block boundary markers, grouping instructions between one
// branch and the next.
func DisassembleBlocks(bytes []byte) (string, error) {
	instructions, err := decodeAll(bytes)
	if err != nil {
		return "", err
	}
	return ListingWithBlocks(instructions), nil
}

func decodeAll(bytes []byte) ([]Instruction, error) {
	var instructions []Instruction
	cursor := 0
	for cursor < len(bytes) {
		ins, err := Decode(bytes, cursor)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ins)
		cursor += ins.Length
	}
	return instructions, nil
}

// Simulate decodes bytes the same way Disassemble does, then executes
// the instruction at IP against a fresh Machine, step by step. It
// returns the listing (identical to Disassemble's output) and an
// execution trace: one "<instruction> ; <diff>" line per instruction
// executed, followed by a final registers block.
//
// Step order per instruction: snapshot state, decode, advance IP past
// the instruction's bytes, apply the instruction (which may further
// adjust IP for a taken jump), then emit the diff line. Simulation ends
// when IP reaches or passes the byte count.
func Simulate(bytes []byte) (listing, trace string, err error) {
	return simulate(bytes, nil, false)
}

// SimulateWithLogger behaves like Simulate but logs one summary line.
func SimulateWithLogger(bytes []byte, logger *log.Logger) (listing, trace string, err error) {
	listing, trace, err = simulate(bytes, logger, false)
	if logger != nil {
		if err != nil {
			logger.Warn("simulation stopped early", log.Err(err), log.Int("byte_count", len(bytes)))
		} else {
			logger.Info("simulated program", log.Int("byte_count", len(bytes)))
		}
	}
	return listing, trace, err
}

// SimulateDetailed behaves like SimulateWithLogger but each trace line
// additionally carries the instruction's own encoded bytes in brackets
// between the printed instruction and the " ; " diff, backing the driver's simulate.trace_format=detailed config option.
func SimulateDetailed(bytes []byte, logger *log.Logger) (listing, trace string, err error) {
	listing, trace, err = simulate(bytes, logger, true)
	if logger != nil {
		if err != nil {
			logger.Warn("simulation stopped early", log.Err(err), log.Int("byte_count", len(bytes)))
		} else {
			logger.Info("simulated program", log.Int("byte_count", len(bytes)))
		}
	}
	return listing, trace, err
}

func simulate(bytes []byte, logger *log.Logger, detailed bool) (string, string, error) {
	instructions, err := decodeAll(bytes)
	if err != nil {
		return "", "", &SimError{Decode: err.(*DecodeError)}
	}
	listing := Listing(instructions)

	m := NewMachine(WithLogger(logger))
	var traceLines strings.Builder

	// Execution follows m.IP rather than replaying the instructions
	// slice in order: a taken jump must re-decode at its target, which
	// may not be the next entry in program order.
	for int(m.IP) < len(bytes) {
		at := int(m.IP)
		ins, decErr := Decode(bytes, at)
		if decErr != nil {
			return listing, traceLines.String(), &SimError{Decode: decErr.(*DecodeError)}
		}

		before := takeSnapshot(m)
		m.IP += uint16(ins.Length)

		if execErr := Execute(m, ins); execErr != nil {
			return listing, traceLines.String(), &SimError{Exec: execErr}
		}

		after := takeSnapshot(m)
		traceLines.WriteString(Print(ins))
		if detailed {
			traceLines.WriteString(" [")
			traceLines.WriteString(hexBytes(bytes[at : at+ins.Length]))
			traceLines.WriteString("]")
		}
		traceLines.WriteString(" ; ")
		traceLines.WriteString(diffLine(before, after))
	}

	traceLines.WriteString(finalRegisters(m))
	return listing, traceLines.String(), nil
}
