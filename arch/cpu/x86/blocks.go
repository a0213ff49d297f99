package x86

import (
	"strconv"
	"strings"
)

// ListingWithBlocks behaves like Listing but inserts a blank-line-free
// "; -- block N --" marker before the first instruction of every basic
// block: byte offset 0, and every instruction immediately following one
// in BranchingInstructions. It exists for the driver's optional
// --blocks flag and has no bearing on decoding or execution.
func ListingWithBlocks(instructions []Instruction) string {
	var b strings.Builder
	b.WriteString("bits 16\n")

	block := 0
	boundary := true
	for _, ins := range instructions {
		if boundary {
			b.WriteString("; -- block ")
			b.WriteString(strconv.Itoa(block))
			b.WriteString(" --\n")
			block++
			boundary = false
		}
		b.WriteString(Print(ins))
		b.WriteString("\n")

		if BranchingInstructions.Contains(ins.Mnemonic) {
			boundary = true
		}
	}
	return b.String()
}
