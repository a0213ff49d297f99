package x86

import "github.com/oisee/i8086dis/log"

// Machine is the simulated 8086 machine state: eight 16-bit general
// purpose registers, the zero and sign flags, the instruction pointer,
// and a flat 1MiB memory. The decoder and printer never touch a
// Machine; only Execute mutates it.
type Machine struct {
	Words [8]uint16 // indexed by AX,CX,DX,BX,SP,BP,SI,DI minus AX
	ZF    bool
	SF    bool
	IP    uint16

	Mem    *Memory
	logger *log.Logger
}

// NewMachine creates a zero-initialized machine: all registers, flags
// and memory start at zero, per the 8086 power-on-equivalent state this
// package models.
func NewMachine(options ...Option) *Machine {
	opts := newOptions(options...)
	m := &Machine{logger: opts.logger}
	m.Mem = NewMemory(opts.logger)
	return m
}

// GetReg16 reads any of the eight word registers.
func (m *Machine) GetReg16(r Register) uint16 {
	idx, _ := r.WordIndex()
	return m.Words[idx]
}

// SetReg16 writes any of the eight word registers.
func (m *Machine) SetReg16(r Register, value uint16) {
	idx, _ := r.WordIndex()
	m.Words[idx] = value
}

// GetReg8 reads one of the eight byte register halves, masking the
// enclosing word to its low or high byte.
func (m *Machine) GetReg8(r Register) uint8 {
	idx, high := r.WordIndex()
	word := m.Words[idx]
	if high {
		return uint8(word >> 8)
	}
	return uint8(word)
}

// SetReg8 writes one of the eight byte register halves, preserving the
// other byte of the enclosing word. This is the masked update the 8086
// actually performs: word = (word &^ mask) | (value in the right
// position), never a bare OR of the new value into the old word.
func (m *Machine) SetReg8(r Register, value uint8) {
	idx, high := r.WordIndex()
	word := m.Words[idx]
	if high {
		word = word&0x00FF | uint16(value)<<8
	} else {
		word = word&0xFF00 | uint16(value)
	}
	m.Words[idx] = word
}

// GetReg reads r at its declared width.
func (m *Machine) GetReg(r Register) uint16 {
	if r.Wide() {
		return m.GetReg16(r)
	}
	return uint16(m.GetReg8(r))
}

// SetReg writes value to r at its declared width.
func (m *Machine) SetReg(r Register, value uint16) {
	if r.Wide() {
		m.SetReg16(r, value)
		return
	}
	m.SetReg8(r, uint8(value))
}

// EffectiveAddress resolves a decoded memory operand to a 20-bit linear
// address. Segments are not modelled, so the address is simply the
// 16-bit offset zero-extended.
func (m *Machine) EffectiveAddress(addr EffAddr) uint32 {
	if addr.Kind == Direct {
		return uint32(uint16(addr.Disp))
	}

	base := effBaseValue(m, addr.Kind)
	if addr.HasDisp {
		base += uint16(addr.Disp)
	}
	return uint32(base)
}

func effBaseValue(m *Machine, kind EffAddrKind) uint16 {
	switch kind {
	case BxSi:
		return m.GetReg16(BX) + m.GetReg16(SI)
	case BxDi:
		return m.GetReg16(BX) + m.GetReg16(DI)
	case BpSi:
		return m.GetReg16(BP) + m.GetReg16(SI)
	case BpDi:
		return m.GetReg16(BP) + m.GetReg16(DI)
	case Si:
		return m.GetReg16(SI)
	case Di:
		return m.GetReg16(DI)
	case Bx:
		return m.GetReg16(BX)
	case Bp:
		return m.GetReg16(BP)
	default:
		return 0
	}
}

// ReadOperand reads the current value of any operand kind. Immediate
// operands simply return their stored value.
func (m *Machine) ReadOperand(op Operand) uint16 {
	switch op.Kind {
	case OperandRegister:
		return m.GetReg(op.Reg)
	case OperandMemory:
		addr := m.EffectiveAddress(op.Mem)
		if op.Width == Word {
			return m.Mem.Read16(addr)
		}
		return uint16(m.Mem.Read8(addr))
	case OperandImmediate:
		return op.Imm
	default:
		return 0
	}
}

// WriteOperand writes value to a register or memory operand. Writing to
// an immediate operand is a decoder bug, not a runtime condition, so it
// panics rather than returning an error.
func (m *Machine) WriteOperand(op Operand, value uint16) {
	switch op.Kind {
	case OperandRegister:
		m.SetReg(op.Reg, value)
	case OperandMemory:
		addr := m.EffectiveAddress(op.Mem)
		if op.Width == Word {
			m.Mem.Write16(addr, value)
		} else {
			m.Mem.Write8(addr, uint8(value))
		}
	default:
		panic("x86: WriteOperand called on non-addressable operand")
	}
}
