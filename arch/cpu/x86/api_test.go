package x86

import (
	"testing"

	"github.com/oisee/i8086dis/assert"
	"github.com/oisee/i8086dis/log"
)

func TestDisassembleListingScenarios(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  string
	}{
		{"mov reg to reg", []byte{0x89, 0xD9}, "bits 16\nmov cx, bx\n"},
		{"mov imm to reg8", []byte{0xB1, 0x0C}, "bits 16\nmov cl, 12\n"},
		{"add reg, mem", []byte{0x03, 0x18}, "bits 16\nadd bx, [bx + si]\n"},
		{"add reg, imm", []byte{0x83, 0xC6, 0x02}, "bits 16\nadd si, 2\n"},
		{"jnz short", []byte{0x75, 0x02}, "bits 16\njnz $ + 4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := Disassemble(tt.bytes)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, listing)
		})
	}
}

func TestDisassembleWithLoggerLogsFailure(t *testing.T) {
	logger := log.NewTestLogger(t)
	_, err := DisassembleWithLogger([]byte{0xF4}, logger)
	assert.Error(t, err)
}

func TestSimulateEndToEndScenario(t *testing.T) {
	program := []byte{0xB8, 0x01, 0x00, 0xBB, 0x02, 0x00, 0x01, 0xD8}

	listing, trace, err := Simulate(program)
	assert.NoError(t, err)
	assert.Equal(t, "bits 16\nmov ax, 1\nmov bx, 2\nadd ax, bx\n", listing)
	assert.Contains(t, trace, "Final registers:")
	assert.Contains(t, trace, "ax: 0x0003(3)")
	assert.Contains(t, trace, "bx: 0x0002(2)")
}

func TestSimulateDetailedIncludesEncodedBytes(t *testing.T) {
	program := []byte{0xB8, 0x01, 0x00}

	_, trace, err := SimulateDetailed(program, nil)
	assert.NoError(t, err)
	assert.Contains(t, trace, "mov ax, 1 [B8 01 00] ; ip: 0x0000 -> 0x0003 ax: 0x0000 -> 0x0001\n")
}

func TestSimulateStopsAtUnimplementedJump(t *testing.T) {
	// jmp-equivalent short loop is decodable but not executable: loop $ (0xE2 0xFE)
	program := []byte{0xE2, 0xFE}
	_, _, err := Simulate(program)
	assert.Error(t, err)

	var simErr *SimError
	assert.ErrorAs(t, err, &simErr)
	assert.NotNil(t, simErr.Exec)
}
