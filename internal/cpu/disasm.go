package cpu

import "fmt"

// Disassemble returns a map of addresses and their corresponding
// instructions from 0x0000 to 0xffff. Opcodes absent from the
// operation table disassemble as "???".
func (c *CPU) Disassemble() map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)

	addr := uint32(0)
	for addr <= 0xffff {
		pc := uint16(addr)
		opcode := c.read8(pc)
		op := opTable[opcode]
		mode := modeTable[opcode]
		if op == opNone || mode == 0 {
			disasm[pc] = fmt.Sprintf("$%04X: ???", pc)
			addr++
			continue
		}

		pc++
		skip := uint32(0)
		switch mode {
		case addrModeIMM:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, op, operand, mode)
			skip = 1
		case addrModeZP:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X {%s}", addr, op, operand, mode)
			skip = 1
		case addrModeZPX:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,X {%s}", addr, op, operand, mode)
			skip = 1
		case addrModeZPY:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%02X,Y {%s}", addr, op, operand, mode)
			skip = 1
		case addrModeABS:
			operand := c.read16(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, op, operand, mode)
			skip = 2
		case addrModeABSX:
			operand := c.read16(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, op, operand, mode)
			skip = 2
		case addrModeABSY:
			operand := c.read16(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X,Y {%s}", addr, op, operand, mode)
			skip = 2
		case addrModeINDX:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", addr, op, operand, mode)
			skip = 1
		case addrModeINDY:
			operand := c.read8(pc)
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", addr, op, operand, mode)
			skip = 1
		case addrModeREL:
			operand := uint16(c.read8(pc))
			pc++
			if operand&0x80 > 0 {
				operand |= 0xff00 // add leading 1 s to save the sign
			}
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, op, pc+operand, mode)
			skip = 1
		case addrModeACC:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s A {%s}", addr, op, mode)
		case addrModeIMP:
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s {%s}", addr, op, mode)
		}

		addr = addr + 1 + skip
	}

	return disasm
}
