package x86

// activeFlags renders the machine's currently-set flags as NASM/sim
// convention abbreviates them, sign first: "SZ", "S", "Z", or "" when
// neither is set.
func activeFlags(sf, zf bool) string {
	s := ""
	if sf {
		s += "S"
	}
	if zf {
		s += "Z"
	}
	return s
}
