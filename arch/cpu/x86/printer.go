package x86

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a decoded instruction as a single NASM-compatible
// assembly line, without a trailing newline. Every memory operand is
// bracketed, including the bare si/di/bx and direct-address forms that
// some disassemblers special-case incorrectly for mov.
func Print(ins Instruction) string {
	switch ins.NumOps {
	case 0:
		return ins.Mnemonic
	case 1:
		return ins.Mnemonic + " " + printJumpTarget(ins)
	default:
		return ins.Mnemonic + " " + printOperand(ins.Op0(), ins.Op1()) + ", " + printOperand(ins.Op1(), ins.Op0())
	}
}

// printJumpTarget renders the single relative-displacement operand of a
// jump/loop instruction as NASM's "$ + N" form, where N is the
// instruction's own byte length plus the signed displacement.
func printJumpTarget(ins Instruction) string {
	disp := int16(ins.Op0().Imm)
	n := int(ins.Length) + int(disp)
	switch {
	case n == 0:
		return "$"
	case n < 0:
		return fmt.Sprintf("$ - %d", -n)
	default:
		return fmt.Sprintf("$ + %d", n)
	}
}

// printOperand renders one operand. other is the operand on the far
// side of the comma, used only to decide whether a memory operand needs
// a byte/word size prefix (added when the other operand is an immediate).
func printOperand(op, other Operand) string {
	switch op.Kind {
	case OperandRegister:
		return op.Reg.String()
	case OperandMemory:
		text := "[" + printEffAddr(op.Mem) + "]"
		if other.Kind == OperandImmediate {
			prefix := "byte "
			if op.Width == Word {
				prefix = "word "
			}
			return prefix + text
		}
		return text
	case OperandImmediate:
		if op.Width == Byte {
			return strconv.Itoa(int(int8(op.Imm)))
		}
		return strconv.Itoa(int(int16(op.Imm)))
	default:
		return ""
	}
}

func printEffAddr(addr EffAddr) string {
	if addr.Kind == Direct {
		return strconv.Itoa(int(uint16(addr.Disp)))
	}

	base := effAddrBases[addr.Kind]
	if !addr.HasDisp || addr.Disp == 0 {
		return base
	}

	var sb strings.Builder
	sb.WriteString(base)
	if addr.Disp < 0 {
		sb.WriteString(" - ")
		sb.WriteString(strconv.Itoa(int(-addr.Disp)))
	} else {
		sb.WriteString(" + ")
		sb.WriteString(strconv.Itoa(int(addr.Disp)))
	}
	return sb.String()
}

// Listing renders a full program as a NASM-compatible listing, one
// decoded instruction per line, preceded by the mandatory "bits 16"
// directive.
func Listing(instructions []Instruction) string {
	var sb strings.Builder
	sb.WriteString("bits 16\n")
	for _, ins := range instructions {
		sb.WriteString(Print(ins))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ListingCommented behaves like Listing but suffixes each line with a
// "; <hex bytes>" comment holding the instruction's own encoding, read
// back out of raw at the cursor Listing itself does not track. It
// backs the driver's listing.comment_bytes config option.
func ListingCommented(raw []byte, instructions []Instruction) string {
	var sb strings.Builder
	sb.WriteString("bits 16\n")
	cursor := 0
	for _, ins := range instructions {
		sb.WriteString(Print(ins))
		sb.WriteString(" ; ")
		sb.WriteString(hexBytes(raw[cursor : cursor+ins.Length]))
		sb.WriteByte('\n')
		cursor += ins.Length
	}
	return sb.String()
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%02X", v))
	}
	return sb.String()
}
