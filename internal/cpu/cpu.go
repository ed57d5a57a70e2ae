package cpu

// ReadWriter is the 8-bit data bus the CPU fetches opcodes and
// operands through and stores results to. Addresses wrap modulo
// the 16-bit address space by construction of uint16.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// Interrupt vector locations near the top of the address space.
// The core does not service interrupts; the constants are exposed
// for loaders and future interrupt support.
const (
	VectorNMI   = uint16(0xfffa)
	VectorReset = uint16(0xfffc)
	VectorIRQ   = uint16(0xfffe)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused
	flagV                    // Overflow
	flagN                    // Negative
)

// resetStatus is the reserved-bit pattern the status register holds
// after a reset. Only C, Z, V and N carry semantics in this core.
const resetStatus = flagU | flagI

type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	sp uint8
	p  uint8
	pc uint16

	mem ReadWriter

	entryAddr   uint16
	totalCycles uint64

	// per-instruction scratch, valid only while Step runs
	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool
	stepCycles   uint8
}

// New creates a CPU attached to mem. The entry address is where the
// program counter points after every Reset; it must lie inside the
// 64 KiB address space.
func New(mem ReadWriter, entryAddr int) (*CPU, error) {
	if entryAddr < 0 || entryAddr > 0xffff {
		return nil, &InvalidEntryAddressError{Addr: entryAddr}
	}
	c := &CPU{
		mem:       mem,
		entryAddr: uint16(entryAddr),
	}
	c.Reset()
	return c, nil
}

// Reset returns the CPU to its initial state: registers cleared, the
// status register at its reserved pattern, the program counter at the
// configured entry address and the cycle counter at zero. Memory is
// owned by the caller and is not touched here.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0
	c.p = resetStatus
	c.pc = c.entryAddr
	c.totalCycles = 0
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// Step executes exactly one instruction and returns its cycle cost,
// page-boundary penalties included. On a decode or timing failure the
// CPU is left exactly as it was before the call; the error carries the
// offending opcode and the address it was fetched from.
func (c *CPU) Step() (uint8, error) {
	fetchAddr := c.pc
	opcode := c.read8(c.pc)
	c.pc++

	op := opTable[opcode]
	if op == opNone {
		c.pc = fetchAddr
		return 0, &IllegalOpcodeError{Opcode: opcode, Addr: fetchAddr}
	}

	mode := modeTable[opcode]
	if mode == 0 {
		c.pc = fetchAddr
		return 0, &IllegalAddressingModeError{Opcode: opcode, Addr: fetchAddr}
	}
	c.fetch(mode)

	t := timingTable[opcode]
	if t.base == 0 {
		c.pc = fetchAddr
		c.clearScratch()
		return 0, &IllegalTimingError{Opcode: opcode, Addr: fetchAddr}
	}

	c.stepCycles = t.base
	if c.pageCrossed {
		c.stepCycles += t.penalty
	}
	c.exec(op)
	c.totalCycles += uint64(c.stepCycles)

	cycles := c.stepCycles
	c.clearScratch()
	return cycles, nil
}

func (c *CPU) clearScratch() {
	c.addrMode = 0
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false
	c.stepCycles = 0
}

// A returns the accumulator.
func (c CPU) A() uint8 { return c.a }

// X returns the X index register.
func (c CPU) X() uint8 { return c.x }

// Y returns the Y index register.
func (c CPU) Y() uint8 { return c.y }

// SP returns the stack pointer.
func (c CPU) SP() uint8 { return c.sp }

// PC returns the program counter.
func (c CPU) PC() uint16 { return c.pc }

// Status returns the packed status register.
func (c CPU) Status() uint8 { return c.p }

// TotalCycles returns the number of clock cycles elapsed since the
// last Reset.
func (c CPU) TotalCycles() uint64 { return c.totalCycles }

// Carry reports the carry flag.
func (c CPU) Carry() bool { return c.getFlag(flagC) }

// Zero reports the zero flag.
func (c CPU) Zero() bool { return c.getFlag(flagZ) }

// Overflow reports the overflow flag.
func (c CPU) Overflow() bool { return c.getFlag(flagV) }

// Negative reports the negative flag.
func (c CPU) Negative() bool { return c.getFlag(flagN) }

// SetCarry sets or clears the carry flag. Exposed for hosts that
// prepare arithmetic sequences between instructions.
func (c *CPU) SetCarry(v bool) { c.setFlag(flagC, v) }
