package x86

// EffAddrKind identifies one of the nine addressing forms reachable
// through a ModR/M byte's mod/rm fields (mod != 3).
type EffAddrKind uint8

// Effective address kinds, following the 8086 ModR/M r/m field table.
const (
	BxSi EffAddrKind = iota
	BxDi
	BpSi
	BpDi
	Si
	Di
	Bp // only reachable with mod=01 or mod=10; rm=110,mod=00 is Direct
	Bx
	Direct // mod=00, rm=110: 16-bit displacement only, no base register
)

var effAddrBases = [...]string{
	BxSi: "bx + si", BxDi: "bx + di",
	BpSi: "bp + si", BpDi: "bp + di",
	Si: "si", Di: "di", Bx: "bx", Bp: "bp",
}

// EffAddr is a decoded memory operand: one of the nine base
// combinations above plus an optional signed displacement.
type EffAddr struct {
	Kind    EffAddrKind
	Disp    int16
	HasDisp bool // true for mod=01, mod=10, and the mod=00/rm=110 direct form
}

// modRM decomposes a ModR/M byte into its mod/reg/rm fields.
func modRM(b byte) (mod, reg, rm uint8) {
	return b >> 6, (b >> 3) & 0x07, b & 0x07
}

// effAddrKindFromRM maps a ModR/M rm field (mod != 3) to its addressing
// kind, applying the rm=110,mod=00 direct-address special case.
func effAddrKindFromRM(mod, rm uint8) EffAddrKind {
	if mod == 0 && rm == 0b110 {
		return Direct
	}
	return EffAddrKind(rm)
}
