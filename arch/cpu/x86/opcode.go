package x86

// jumpOpcodes maps the single opcode byte of every supported short
// jump/loop instruction to its mnemonic. These are the 8-bit encodings
// classified first, ahead of any of the wider r/m and immediate forms.
var jumpOpcodes = map[byte]string{
	0x70: "jo",
	0x71: "jno",
	0x72: "jb",
	0x73: "jnb",
	0x74: "jz",
	0x75: "jnz",
	0x76: "jbe",
	0x77: "ja",
	0x78: "js",
	0x79: "jns",
	0x7A: "jp",
	0x7B: "jnp",
	0x7C: "jl",
	0x7D: "jnl",
	0x7E: "jle",
	0x7F: "jg",
	0xE0: "loopnz",
	0xE1: "loopz",
	0xE2: "loop",
	0xE3: "jcxz",
}

// arithSubOp names the reg-field sub-opcode of the 100000sw (ImmArith)
// encoding. Only add/sub/cmp are in the supported subset; any other
// value is IllegalSubOp.
var arithSubOp = map[uint8]string{
	0b000: "add",
	0b101: "sub",
	0b111: "cmp",
}
