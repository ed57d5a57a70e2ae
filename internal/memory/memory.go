// Package memory implements the flat 64 KiB memory of the machine.
package memory

import "fmt"

// Size is the number of addressable bytes.
const Size = 0x10000

// Memory is a contiguous byte array covering the whole 16-bit address
// space. Addressing wraps modulo Size by construction of uint16: a
// runaway program counter never faults.
type Memory struct {
	data [Size]uint8
}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *Memory) Write8(addr uint16, data uint8) {
	m.data[addr] = data
}

// Reset zeroes the whole address space.
func (m *Memory) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Load copies data into memory starting at offset. The copy must fit
// inside the address space; Load never wraps.
func (m *Memory) Load(data []byte, offset int) error {
	if offset < 0 || offset+len(data) > Size {
		return &OutOfBoundsError{Offset: offset, Length: len(data)}
	}
	copy(m.data[offset:], data)
	return nil
}

// OutOfBoundsError reports a bulk load that does not fit inside the
// address space.
type OutOfBoundsError struct {
	Offset int
	Length int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("load of %d bytes at offset %#x exceeds the %d byte address space", e.Length, e.Offset, Size)
}
