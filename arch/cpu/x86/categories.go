package x86

import "github.com/oisee/i8086dis/set"

// BranchingInstructions contains every mnemonic that can redirect
// control flow: the conditional jump/loop family. Used by the CLI
// driver's optional basic-block annotation.
var BranchingInstructions = set.NewFromSlice([]string{
	"jo", "jno", "jb", "jnb", "jz", "jnz", "jbe", "ja",
	"js", "jns", "jp", "jnp", "jl", "jnl", "jle", "jg",
	"loop", "loopz", "loopnz", "jcxz",
})

// UnconditionalControlTransfer contains mnemonics that never fall
// through to the following instruction. Within the supported subset
// none of the modelled jumps are unconditional, so the set is empty.
// ListingWithBlocks does not consult it; block boundaries come from
// BranchingInstructions.
var UnconditionalControlTransfer = set.New[string]()

// MemoryReadInstructions contains mnemonics that can read a memory
// operand.
var MemoryReadInstructions = set.NewFromSlice([]string{"mov", "add", "sub", "cmp"})

// MemoryWriteInstructions contains mnemonics that can write a memory
// operand. add and sub store to memory when the r/m operand is the
// destination, which this decoder supports, so they are included; cmp
// never writes.
var MemoryWriteInstructions = set.NewFromSlice([]string{"mov", "add", "sub"})

// FlagAffectingInstructions contains mnemonics that update ZF/SF.
var FlagAffectingInstructions = set.NewFromSlice([]string{"add", "sub", "cmp"})
