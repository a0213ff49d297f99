package x86

// Execute applies a decoded instruction's effect to m. The caller is
// responsible for having already advanced m.IP past the instruction's
// bytes; Execute only adjusts IP further for a taken jump.
//
// Only mov, add, sub, cmp, jz and jnz are actually evaluated. The rest
// of the decoded jump/loop family is recognized by the decoder and
// printer but reports ExecError here. Of the flags, only ZF and SF are
// modelled; the carry, overflow and parity flags are not.
func Execute(m *Machine, ins Instruction) *ExecError {
	switch ins.Mnemonic {
	case "mov":
		m.WriteOperand(ins.Op0(), m.ReadOperand(ins.Op1()))
		return nil
	case "add":
		result := execArith(m, ins, func(a, b uint16) uint16 { return a + b })
		m.WriteOperand(ins.Op0(), result)
		return nil
	case "sub":
		result := execArith(m, ins, func(a, b uint16) uint16 { return a - b })
		m.WriteOperand(ins.Op0(), result)
		return nil
	case "cmp":
		execArith(m, ins, func(a, b uint16) uint16 { return a - b })
		return nil
	case "jz":
		if m.ZF {
			takeJump(m, ins)
		}
		return nil
	case "jnz":
		if !m.ZF {
			takeJump(m, ins)
		}
		return nil
	default:
		return &ExecError{At: int(m.IP) - ins.Length, Mnemonic: ins.Mnemonic}
	}
}

// execArith computes op and updates ZF/SF from the masked result,
// returning the result so callers that need to store it (add/sub) can,
// while cmp discards it.
func execArith(m *Machine, ins Instruction, op func(a, b uint16) uint16) uint16 {
	dst := ins.Op0()
	a := m.ReadOperand(dst)
	b := m.ReadOperand(ins.Op1())
	result := op(a, b)

	if dst.Width == Byte {
		result &= 0x00FF
		m.ZF = result == 0
		m.SF = result&0x80 != 0
	} else {
		m.ZF = result == 0
		m.SF = result&0x8000 != 0
	}

	return result
}

func takeJump(m *Machine, ins Instruction) {
	disp := int16(ins.Op0().Imm)
	m.IP = uint16(int32(m.IP) + int32(disp))
}
