package x86

import (
	"fmt"
	"strings"
)

// snapshot captures the portion of machine state a trace step diffs
// against: the instruction pointer, the eight word registers, and the
// two modelled flags.
type snapshot struct {
	ip    uint16
	words [8]uint16
	zf    bool
	sf    bool
}

func takeSnapshot(m *Machine) snapshot {
	return snapshot{ip: m.IP, words: m.Words, zf: m.ZF, sf: m.SF}
}

// wordRegisterOrder is the order register diffs and the final-registers
// block are printed in.
var wordRegisterOrder = [8]Register{AX, CX, DX, BX, SP, BP, SI, DI}

// diffLine renders the state change between before and after as a
// space-separated sequence of "name: 0xOLD -> 0xNEW" entries (ip
// included whenever it changed, registers in width-4 hex), optionally
// followed by a "Flags: <before> -> <after>" entry, terminated by a
// newline.
func diffLine(before, after snapshot) string {
	var entries []string
	if before.ip != after.ip {
		entries = append(entries, fmt.Sprintf("ip: 0x%04X -> 0x%04X", before.ip, after.ip))
	}
	for _, r := range wordRegisterOrder {
		idx, _ := r.WordIndex()
		if before.words[idx] != after.words[idx] {
			entries = append(entries, fmt.Sprintf("%s: 0x%04X -> 0x%04X", r, before.words[idx], after.words[idx]))
		}
	}
	if before.sf != after.sf || before.zf != after.zf {
		entries = append(entries, fmt.Sprintf("Flags: %s -> %s", activeFlags(before.sf, before.zf), activeFlags(after.sf, after.zf)))
	}
	return strings.Join(entries, " ") + "\n"
}

// finalRegisters renders the "Final registers:" block that ends a
// simulation trace: one "reg: 0xHHHH(decimal)" line per word register
// in declaration order, followed by the active-flags summary line.
func finalRegisters(m *Machine) string {
	var sb strings.Builder
	sb.WriteString("Final registers:\n")
	for _, r := range wordRegisterOrder {
		v := m.GetReg16(r)
		fmt.Fprintf(&sb, "%s: 0x%04X(%d)\n", r, v, v)
	}
	fmt.Fprintf(&sb, "Flags: %s\n", activeFlags(m.SF, m.ZF))
	return sb.String()
}
