package x86

// Decode reads a single instruction starting at cursor and returns it
// together with its byte length. Decoding never mutates the input and
// never partially consumes bytes on failure: a returned error means
// cursor should not be advanced.
//
// Opcode bytes are looked up in the 8-bit jump/loop table first, then
// matched against fixed-bit patterns: the 7-bit ImmToMov form, the
// 6-bit ImmArith and r/m forms, the 7-bit accumulator forms, and
// finally the 4-bit RegImmMov form. The patterns do not overlap.
func Decode(b []byte, cursor int) (Instruction, error) {
	if cursor >= len(b) {
		return Instruction{}, &DecodeError{Kind: Truncated, At: cursor, Needed: 1}
	}
	op := b[cursor]

	if mnemonic, ok := jumpOpcodes[op]; ok {
		return decodeJump(b, cursor, mnemonic)
	}

	switch {
	case op&0b11111110 == 0b11000110: // 1100011x: ImmToMov
		return decodeImmToMov(b, cursor)
	case op&0b11111100 == 0b10000000: // 100000sw: ImmArith
		return decodeImmArith(b, cursor)
	case op&0b11111100 == 0b10001000: // 100010dw: mov r/m <-> reg
		return decodeRegRM(b, cursor, "mov")
	case op&0b11111100 == 0b00000000: // 000000dw: add r/m <-> reg
		return decodeRegRM(b, cursor, "add")
	case op&0b11111100 == 0b00101000: // 001010dw: sub r/m <-> reg
		return decodeRegRM(b, cursor, "sub")
	case op&0b11111100 == 0b00111000: // 001110dw: cmp r/m <-> reg
		return decodeRegRM(b, cursor, "cmp")
	case op&0b11111110 == 0b00000100: // 0000010w: add accumulator, imm
		return decodeImmToAcc(b, cursor, "add")
	case op&0b11111110 == 0b00101100: // 0010110w: sub accumulator, imm
		return decodeImmToAcc(b, cursor, "sub")
	case op&0b11111110 == 0b00111100: // 0011110w: cmp accumulator, imm
		return decodeImmToAcc(b, cursor, "cmp")
	case op&0b11110000 == 0b10110000: // 1011wreg: mov reg, imm
		return decodeRegImmMov(b, cursor)
	default:
		return Instruction{}, &DecodeError{Kind: UnknownOpcode, At: cursor, Byte: op}
	}
}

// need checks that n more bytes are available starting at cursor,
// returning a Truncated error describing the shortfall otherwise.
func need(b []byte, cursor, n int) error {
	if cursor+n > len(b) {
		return &DecodeError{Kind: Truncated, At: cursor, Needed: cursor + n - len(b)}
	}
	return nil
}

func decodeJump(b []byte, cursor int, mnemonic string) (Instruction, error) {
	if err := need(b, cursor, 2); err != nil {
		return Instruction{}, err
	}
	disp := int8(b[cursor+1])
	return Instruction{
		Mnemonic: mnemonic,
		Ops:      [2]Operand{immOperand(uint16(int16(disp)), Byte)},
		NumOps:   1,
		Length:   2,
	}, nil
}

// decodeModRM reads the ModR/M byte and any displacement bytes that
// follow it, returning the register-field register, the r/m-side
// operand (a register when mod=3, otherwise a memory operand), and the
// number of bytes consumed from cursor (including the ModR/M byte
// itself).
func decodeModRM(b []byte, cursor int, wide bool) (regField Register, rm Operand, consumed int, err error) {
	if err := need(b, cursor, 1); err != nil {
		return 0, Operand{}, 0, err
	}
	mod, reg, rmField := modRM(b[cursor])
	regField = RegisterFromField(reg, wide)
	consumed = 1

	if mod == 0b11 {
		rm = regOperand(RegisterFromField(rmField, wide))
		return regField, rm, consumed, nil
	}

	kind := effAddrKindFromRM(mod, rmField)
	addr := EffAddr{Kind: kind}

	switch {
	case kind == Direct:
		if err := need(b, cursor+consumed, 2); err != nil {
			return 0, Operand{}, 0, err
		}
		lo, hi := b[cursor+consumed], b[cursor+consumed+1]
		addr.Disp = int16(uint16(hi)<<8 | uint16(lo))
		addr.HasDisp = true
		consumed += 2
	case mod == 0b01:
		if err := need(b, cursor+consumed, 1); err != nil {
			return 0, Operand{}, 0, err
		}
		addr.Disp = int16(int8(b[cursor+consumed]))
		addr.HasDisp = true
		consumed++
	case mod == 0b10:
		if err := need(b, cursor+consumed, 2); err != nil {
			return 0, Operand{}, 0, err
		}
		lo, hi := b[cursor+consumed], b[cursor+consumed+1]
		addr.Disp = int16(uint16(hi)<<8 | uint16(lo))
		addr.HasDisp = true
		consumed += 2
	}

	width := Word
	if !wide {
		width = Byte
	}
	rm = memOperand(addr, width)
	return regField, rm, consumed, nil
}

func decodeRegRM(b []byte, cursor int, mnemonic string) (Instruction, error) {
	op := b[cursor]
	d := op&0b10 != 0
	w := op&0b01 != 0

	reg, rm, consumed, err := decodeModRM(b, cursor+1, w)
	if err != nil {
		return Instruction{}, err
	}

	regOp := regOperand(reg)
	ins := Instruction{Mnemonic: mnemonic, NumOps: 2, Length: 1 + consumed}
	if d {
		ins.Ops = [2]Operand{regOp, rm}
	} else {
		ins.Ops = [2]Operand{rm, regOp}
	}
	return ins, nil
}

func decodeImmArith(b []byte, cursor int) (Instruction, error) {
	op := b[cursor]
	s := op&0b10 != 0
	w := op&0b01 != 0

	if err := need(b, cursor+1, 1); err != nil {
		return Instruction{}, err
	}
	_, regField, _ := modRM(b[cursor+1])
	mnemonic, ok := arithSubOp[regField]
	if !ok {
		return Instruction{}, &DecodeError{Kind: IllegalSubOp, At: cursor, Byte: b[cursor+1]}
	}

	_, rm, consumed, err := decodeModRM(b, cursor+1, w)
	if err != nil {
		return Instruction{}, err
	}

	immStart := cursor + 1 + consumed
	immWidth := Byte
	var immSize int
	var value uint16
	switch {
	case w && s: // sign-extended 8-bit immediate to 16-bit destination
		if err := need(b, immStart, 1); err != nil {
			return Instruction{}, err
		}
		value = uint16(int16(int8(b[immStart])))
		immSize = 1
		immWidth = Word
	case w && !s: // full 16-bit immediate
		if err := need(b, immStart, 2); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[immStart]) | uint16(b[immStart+1])<<8
		immSize = 2
		immWidth = Word
	default: // 8-bit immediate to 8-bit destination
		if err := need(b, immStart, 1); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[immStart])
		immSize = 1
		immWidth = Byte
	}

	return Instruction{
		Mnemonic: mnemonic,
		Ops:      [2]Operand{rm, immOperand(value, immWidth)},
		NumOps:   2,
		Length:   1 + consumed + immSize,
	}, nil
}

func decodeImmToMov(b []byte, cursor int) (Instruction, error) {
	op := b[cursor]
	w := op&0b01 != 0

	if err := need(b, cursor+1, 1); err != nil {
		return Instruction{}, err
	}
	if mod, _, _ := modRM(b[cursor+1]); mod == 0b11 {
		return Instruction{}, &DecodeError{Kind: IllegalSubOp, At: cursor, Byte: op}
	}

	_, rm, consumed, err := decodeModRM(b, cursor+1, w)
	if err != nil {
		return Instruction{}, err
	}

	immStart := cursor + 1 + consumed
	var value uint16
	var immSize int
	width := Byte
	if w {
		if err := need(b, immStart, 2); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[immStart]) | uint16(b[immStart+1])<<8
		immSize = 2
		width = Word
	} else {
		if err := need(b, immStart, 1); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[immStart])
		immSize = 1
	}

	return Instruction{
		Mnemonic: "mov",
		Ops:      [2]Operand{rm, immOperand(value, width)},
		NumOps:   2,
		Length:   1 + consumed + immSize,
	}, nil
}

func decodeImmToAcc(b []byte, cursor int, mnemonic string) (Instruction, error) {
	op := b[cursor]
	w := op&0b01 != 0

	acc := regOperand(AL)
	width := Byte
	var value uint16
	var immSize int
	if w {
		if err := need(b, cursor+1, 2); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[cursor+1]) | uint16(b[cursor+2])<<8
		immSize = 2
		width = Word
		acc = regOperand(AX)
	} else {
		if err := need(b, cursor+1, 1); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[cursor+1])
		immSize = 1
	}

	return Instruction{
		Mnemonic: mnemonic,
		Ops:      [2]Operand{acc, immOperand(value, width)},
		NumOps:   2,
		Length:   1 + immSize,
	}, nil
}

func decodeRegImmMov(b []byte, cursor int) (Instruction, error) {
	op := b[cursor]
	w := op&0b00001000 != 0
	regField := op & 0b00000111

	reg := RegisterFromField(regField, w)
	width := Byte
	var value uint16
	var immSize int
	if w {
		if err := need(b, cursor+1, 2); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[cursor+1]) | uint16(b[cursor+2])<<8
		immSize = 2
		width = Word
	} else {
		if err := need(b, cursor+1, 1); err != nil {
			return Instruction{}, err
		}
		value = uint16(b[cursor+1])
		immSize = 1
	}

	return Instruction{
		Mnemonic: "mov",
		Ops:      [2]Operand{regOperand(reg), immOperand(value, width)},
		NumOps:   2,
		Length:   1 + immSize,
	}, nil
}
