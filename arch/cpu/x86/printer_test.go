package x86

import (
	"testing"

	"github.com/oisee/i8086dis/assert"
)

func TestPrintJumpTargetSigns(t *testing.T) {
	tests := []struct {
		name string
		disp int8
		len  int
		want string
	}{
		{"positive", 2, 2, "$ + 4"},
		{"zero net", -2, 2, "$"},
		{"negative", -10, 2, "$ - 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Instruction{
				Mnemonic: "jnz",
				Ops:      [2]Operand{immOperand(uint16(int16(tt.disp)), Byte)},
				NumOps:   1,
				Length:   tt.len,
			}
			assert.Equal(t, "jnz "+tt.want, Print(ins))
		})
	}
}

func TestListingCommentedShowsEncodedBytes(t *testing.T) {
	listing := ListingCommented([]byte{0x89, 0xD9}, []Instruction{
		{Mnemonic: "mov", Ops: [2]Operand{regOperand(CX), regOperand(BX)}, NumOps: 2, Length: 2},
	})
	assert.Equal(t, "bits 16\nmov cx, bx ; 89 D9\n", listing)
}

func TestListingStartsWithBits16(t *testing.T) {
	instructions, err := decodeAll([]byte{0x89, 0xD9})
	assert.NoError(t, err)
	listing := Listing(instructions)
	assert.Equal(t, "bits 16\nmov cx, bx\n", listing)
}
