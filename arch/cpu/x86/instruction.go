package x86

// OperandKind tags which variant of the operand sum type is populated.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandRegister
	OperandMemory
	OperandImmediate
)

// Width is the operand size an instruction or operand acts on.
type Width uint8

const (
	Byte Width = iota
	Word
)

// Operand is the sum type Register | Memory(EffAddr, Width) |
// Immediate(uint16, Width). Only the field matching Kind is meaningful.
type Operand struct {
	Kind  OperandKind
	Reg   Register
	Mem   EffAddr
	Imm   uint16
	Width Width
}

func regOperand(r Register) Operand {
	w := Word
	if !r.Wide() {
		w = Byte
	}
	return Operand{Kind: OperandRegister, Reg: r, Width: w}
}

func memOperand(addr EffAddr, width Width) Operand {
	return Operand{Kind: OperandMemory, Mem: addr, Width: width}
}

func immOperand(value uint16, width Width) Operand {
	return Operand{Kind: OperandImmediate, Imm: value, Width: width}
}

// Instruction is a fully decoded instruction: a mnemonic, up to two
// operands, and the number of bytes it occupies in the instruction
// stream. Decoding never mutates machine state.
type Instruction struct {
	Mnemonic string
	Ops      [2]Operand
	NumOps   int
	Length   int
}

// Op0 returns the first operand, or the zero Operand if the
// instruction takes none.
func (ins Instruction) Op0() Operand {
	return ins.Ops[0]
}

// Op1 returns the second operand, or the zero Operand if the
// instruction takes fewer than two.
func (ins Instruction) Op1() Operand {
	return ins.Ops[1]
}
