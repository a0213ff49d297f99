package x86

import (
	"testing"

	"github.com/oisee/i8086dis/assert"
)

func TestDecodePrint(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  string
		len   int
	}{
		{"mov reg to reg", []byte{0x89, 0xD9}, "mov cx, bx", 2},
		{"mov imm to reg8", []byte{0xB1, 0x0C}, "mov cl, 12", 2},
		{"mov mem disp8 to reg16", []byte{0x8B, 0x57, 0xE0}, "mov dx, [bx - 32]", 3},
		{"add reg, mem", []byte{0x03, 0x18}, "add bx, [bx + si]", 2},
		{"add reg, imm sign-extended", []byte{0x83, 0xC6, 0x02}, "add si, 2", 3},
		{"jnz short", []byte{0x75, 0x02}, "jnz $ + 4", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Decode(tt.bytes, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.len, ins.Length)
			assert.Equal(t, tt.want, Print(ins))
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode([]byte{0x89}, 0)
	assert.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
	assert.Equal(t, Truncated, decErr.Kind)
}

func TestDecodeUnknownOpcode(t *testing.T) {
	_, err := Decode([]byte{0xF4}, 0) // hlt, not in the supported subset
	assert.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
	assert.Equal(t, UnknownOpcode, decErr.Kind)
}

func TestDecodeIllegalSubOp(t *testing.T) {
	// 83 /1 is or, not one of add/sub/cmp.
	_, err := Decode([]byte{0x83, 0xCE, 0x02}, 0)
	assert.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
	assert.Equal(t, IllegalSubOp, decErr.Kind)
}

func TestDecodeImmToMovRejectsRegisterModRM(t *testing.T) {
	// C6 /0 with mod=11 has no memory destination to write; illegal.
	_, err := Decode([]byte{0xC6, 0xC0, 0x05}, 0)
	assert.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
	assert.Equal(t, IllegalSubOp, decErr.Kind)
}

func TestDecodeNeverPartiallyConsumes(t *testing.T) {
	// ModR/M byte present but the mandatory displacement byte is missing.
	bytes := []byte{0x8B, 0x56} // mov dx, [bp+disp8], disp8 missing
	_, err := Decode(bytes, 0)
	assert.Error(t, err)
}

func TestDecodeImmToMov(t *testing.T) {
	// c6 06 <addr lo> <addr hi> <imm8>: mov byte [direct], imm8
	ins, err := Decode([]byte{0xC6, 0x06, 0x00, 0x01, 0x07}, 0)
	assert.NoError(t, err)
	assert.Equal(t, "mov", ins.Mnemonic)
	assert.Equal(t, "mov byte [256], 7", Print(ins))
}

func TestDirectAddressBracketed(t *testing.T) {
	// 8b 1e <lo> <hi>: mov bx, [0x1234]
	ins, err := Decode([]byte{0x8B, 0x1E, 0x34, 0x12}, 0)
	assert.NoError(t, err)
	assert.Equal(t, "mov bx, [4660]", Print(ins))
}

func TestBareIndexBracketed(t *testing.T) {
	// 8b 04: mov ax, [si]
	ins, err := Decode([]byte{0x8B, 0x04}, 0)
	assert.NoError(t, err)
	assert.Equal(t, "mov ax, [si]", Print(ins))
}

func TestRegisterIndexRoundTrip(t *testing.T) {
	for reg := 0; reg < 16; reg++ {
		r := Register(reg)
		idx, high := r.WordIndex()
		if r.Wide() {
			assert.Equal(t, reg-8, idx)
			assert.False(t, high)
		} else {
			assert.True(t, idx < 4)
		}
	}
}
