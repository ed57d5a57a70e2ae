package cpu

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// fetch resolves the operand for the current instruction and advances
// the program counter past the operand bytes. Depending on the mode it
// fills operandValue, operandAddr or both.
//
// pageCrossed reports the page-boundary rule used by the timing model:
// consuming the operand bytes pushed the program counter into the next
// 256-byte page. Relative, accumulator and implied operands never
// cross; whether a crossing actually costs anything is decided by the
// penalty column of the timing table.
func (c *CPU) fetch(mode addrMode) {
	c.addrMode = mode
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false

	operandStart := c.pc

	switch mode {
	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.pc))
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPX:
		// uint8 addition keeps the indexed address inside the zero page
		c.operandAddr = uint16(c.read8(c.pc) + c.x)
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPY:
		c.operandAddr = uint16(c.read8(c.pc) + c.y)
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABS:
		c.operandAddr = c.read16(c.pc)
		c.pc += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABSX:
		c.operandAddr = c.read16(c.pc) + uint16(c.x)
		c.pc += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABSY:
		c.operandAddr = c.read16(c.pc) + uint16(c.y)
		c.pc += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDX:
		ptr := c.read8(c.pc) + c.x
		c.pc++
		lo := uint16(c.read8(uint16(ptr)))
		hi := uint16(c.read8(uint16(ptr + 1)))
		c.operandAddr = lo | hi<<8
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDY:
		ptr := c.read8(c.pc)
		c.pc++
		lo := uint16(c.read8(uint16(ptr)))
		hi := uint16(c.read8(uint16(ptr + 1)))
		c.operandAddr = (lo | hi<<8) + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeREL:
		c.operandAddr = uint16(c.read8(c.pc))
		c.pc++
		if c.operandAddr&0x80 > 0 {
			c.operandAddr |= 0xff00 // add leading 1 s to save the sign
		}
		return

	case addrModeACC:
		c.operandValue = c.a
		return

	case addrModeIMP:
		return
	}

	c.pageCrossed = operandStart&0x00ff+(c.pc-operandStart) >= 0x0100
}
