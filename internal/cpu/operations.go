package cpu

// exec runs the handler for one operation. The operand has already
// been resolved and the program counter advanced; handlers only touch
// the program counter to take a branch or a jump.
func (c *CPU) exec(op operation) {
	switch op {
	case opADC:
		c.adc()
	case opAND:
		c.and()
	case opASL:
		c.asl()
	case opBCC:
		c.bcc()
	case opBCS:
		c.bcs()
	case opBEQ:
		c.beq()
	case opBIT:
		c.bit()
	case opBMI:
		c.bmi()
	case opBNE:
		c.bne()
	case opBPL:
		c.bpl()
	case opBVC:
		c.bvc()
	case opBVS:
		c.bvs()
	case opCLC:
		c.clc()
	case opCLD:
		c.cld()
	case opCLI:
		c.cli()
	case opCLV:
		c.clv()
	case opCMP:
		c.cmp()
	case opCPX:
		c.cpx()
	case opCPY:
		c.cpy()
	case opDEC:
		c.dec()
	case opDEX:
		c.dex()
	case opDEY:
		c.dey()
	case opEOR:
		c.eor()
	case opINC:
		c.inc()
	case opINX:
		c.inx()
	case opINY:
		c.iny()
	case opJMP:
		c.jmp()
	case opLDA:
		c.lda()
	case opLDX:
		c.ldx()
	case opLDY:
		c.ldy()
	case opLSR:
		c.lsr()
	case opNOP:
		c.nop()
	case opORA:
		c.ora()
	case opROL:
		c.rol()
	case opROR:
		c.ror()
	case opSBC:
		c.sbc()
	case opSEC:
		c.sec()
	case opSED:
		c.sed()
	case opSEI:
		c.sei()
	case opSTA:
		c.sta()
	case opSTX:
		c.stx()
	case opSTY:
		c.sty()
	case opTAX:
		c.tax()
	case opTAY:
		c.tay()
	case opTSX:
		c.tsx()
	case opTXA:
		c.txa()
	case opTXS:
		c.txs()
	case opTYA:
		c.tya()
	}
}

func (c *CPU) adc() {
	r16 := uint16(c.a) + uint16(c.operandValue)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlagsZN(r8)
	c.setFlag(flagV, isSameSign(c.a, c.operandValue) && !isSameSign(c.a, r8))
	c.a = r8
}

func (c *CPU) and() {
	c.a &= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) asl() {
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	r8 := c.operandValue << 1
	c.setFlagsZN(r8)
	if c.addrMode == addrModeACC {
		c.a = r8
	} else {
		c.write8(c.operandAddr, r8)
	}
}

// jmpIf applies the relative displacement when the branch condition
// holds. A taken branch costs one extra cycle, one more when the
// target lies in a different page than the already-advanced pc.
func (c *CPU) jmpIf(condition bool) {
	if !condition {
		return
	}
	c.stepCycles++
	addr := c.pc + c.operandAddr
	if isDiffPage(c.pc, addr) {
		c.stepCycles++
	}
	c.pc = addr
}

func (c *CPU) bcc() {
	c.jmpIf(!c.getFlag(flagC))
}

func (c *CPU) bcs() {
	c.jmpIf(c.getFlag(flagC))
}

func (c *CPU) beq() {
	c.jmpIf(c.getFlag(flagZ))
}

func (c *CPU) bit() {
	m := c.a & c.operandValue
	c.setFlag(flagZ, m == 0)
	c.setFlag(flagN, c.operandValue&flagN > 0)
	c.setFlag(flagV, c.operandValue&flagV > 0)
}

func (c *CPU) bmi() {
	c.jmpIf(c.getFlag(flagN))
}

func (c *CPU) bne() {
	c.jmpIf(!c.getFlag(flagZ))
}

func (c *CPU) bpl() {
	c.jmpIf(!c.getFlag(flagN))
}

func (c *CPU) bvc() {
	c.jmpIf(!c.getFlag(flagV))
}

func (c *CPU) bvs() {
	c.jmpIf(c.getFlag(flagV))
}

func (c *CPU) clc() {
	c.setFlag(flagC, false)
}

func (c *CPU) cld() {
	c.setFlag(flagD, false)
}

func (c *CPU) cli() {
	c.setFlag(flagI, false)
}

func (c *CPU) clv() {
	c.setFlag(flagV, false)
}

func (c *CPU) cmp() {
	c.setFlag(flagC, c.a >= c.operandValue)
	c.setFlagsZN(c.a - c.operandValue)
}

func (c *CPU) cpx() {
	c.setFlag(flagC, c.x >= c.operandValue)
	c.setFlagsZN(c.x - c.operandValue)
}

func (c *CPU) cpy() {
	c.setFlag(flagC, c.y >= c.operandValue)
	c.setFlagsZN(c.y - c.operandValue)
}

func (c *CPU) dec() {
	r := c.operandValue - 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

func (c *CPU) eor() {
	c.a ^= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) inc() {
	r := c.operandValue + 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

func (c *CPU) lda() {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) ldx() {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
}

func (c *CPU) ldy() {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
}

func (c *CPU) lsr() {
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) nop() {
}

func (c *CPU) ora() {
	c.a |= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) rol() {
	r := c.operandValue << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) ror() {
	r := c.operandValue >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	c.setFlagsZN(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) sbc() {
	c.operandValue = ^c.operandValue
	c.adc()
}

func (c *CPU) sec() {
	c.setFlag(flagC, true)
}

func (c *CPU) sed() {
	c.setFlag(flagD, true)
}

func (c *CPU) sei() {
	c.setFlag(flagI, true)
}

func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

func (c *CPU) stx() {
	c.write8(c.operandAddr, c.x)
}

func (c *CPU) sty() {
	c.write8(c.operandAddr, c.y)
}

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}
