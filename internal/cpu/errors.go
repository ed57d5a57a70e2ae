package cpu

import "fmt"

// IllegalOpcodeError reports an opcode with no entry in the operation
// table. The emulator never executes undefined opcodes.
type IllegalOpcodeError struct {
	Opcode uint8
	Addr   uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode %02X at %04X", e.Opcode, e.Addr)
}

// IllegalAddressingModeError reports an opcode with no entry in the
// addressing-mode table.
type IllegalAddressingModeError struct {
	Opcode uint8
	Addr   uint16
}

func (e *IllegalAddressingModeError) Error() string {
	return fmt.Sprintf("no addressing mode for opcode %02X at %04X", e.Opcode, e.Addr)
}

// IllegalTimingError reports an opcode with no entry in the timing
// table.
type IllegalTimingError struct {
	Opcode uint8
	Addr   uint16
}

func (e *IllegalTimingError) Error() string {
	return fmt.Sprintf("no timing for opcode %02X at %04X", e.Opcode, e.Addr)
}

// InvalidEntryAddressError reports an entry address outside the 16-bit
// address space at construction time.
type InvalidEntryAddressError struct {
	Addr int
}

func (e *InvalidEntryAddressError) Error() string {
	return fmt.Sprintf("entry address %#x outside the 64 KiB address space", e.Addr)
}
