package x86

import (
	"fmt"

	"github.com/oisee/i8086dis/log"
)

// MemSize is the flat 1MiB address space a Machine exposes, matching
// the 20-bit address range of the real 8086/8088.
const MemSize = 1024 * 1024

// Memory is a flat, unsegmented byte-addressable store. Reads and
// writes beyond MemSize are logged and otherwise ignored rather than
// panicking, since the supported instruction subset never generates
// addresses outside the 16-bit offset range this package models.
type Memory struct {
	data   [MemSize]byte
	logger *log.Logger
}

// NewMemory creates a zero-initialized 1MiB memory.
func NewMemory(logger *log.Logger) *Memory {
	return &Memory{logger: logger}
}

// Read8 reads a byte at addr.
func (m *Memory) Read8(addr uint32) uint8 {
	if addr >= MemSize {
		m.logOutOfBounds("read", addr)
		return 0
	}
	return m.data[addr]
}

// Read16 reads a little-endian word at addr.
func (m *Memory) Read16(addr uint32) uint16 {
	lo := uint16(m.Read8(addr))
	hi := uint16(m.Read8(addr + 1))
	return hi<<8 | lo
}

// Write8 writes a byte at addr.
func (m *Memory) Write8(addr uint32, value uint8) {
	if addr >= MemSize {
		m.logOutOfBounds("write", addr)
		return
	}
	m.data[addr] = value
}

// Write16 writes a little-endian word at addr.
func (m *Memory) Write16(addr uint32, value uint16) {
	m.Write8(addr, uint8(value))
	m.Write8(addr+1, uint8(value>>8))
}

// LoadData copies data into memory starting at addr.
func (m *Memory) LoadData(addr uint32, data []byte) {
	copy(m.data[addr:], data)
}

func (m *Memory) logOutOfBounds(op string, addr uint32) {
	if m.logger == nil {
		return
	}
	m.logger.Debug("memory access out of bounds",
		log.String("op", op),
		log.String("address", fmt.Sprintf("0x%06X", addr)))
}
