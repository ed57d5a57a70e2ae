package cpu

type operation uint8

const (
	opNone operation = iota

	opADC
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opLDA
	opLDX
	opLDY
	opLSR
	opNOP
	opORA
	opROL
	opROR
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTSX
	opTXA
	opTXS
	opTYA
)

var opNames = [...]string{
	opADC: "ADC", opAND: "AND", opASL: "ASL", opBCC: "BCC", opBCS: "BCS",
	opBEQ: "BEQ", opBIT: "BIT", opBMI: "BMI", opBNE: "BNE", opBPL: "BPL",
	opBVC: "BVC", opBVS: "BVS", opCLC: "CLC", opCLD: "CLD", opCLI: "CLI",
	opCLV: "CLV", opCMP: "CMP", opCPX: "CPX", opCPY: "CPY", opDEC: "DEC",
	opDEX: "DEX", opDEY: "DEY", opEOR: "EOR", opINC: "INC", opINX: "INX",
	opINY: "INY", opJMP: "JMP", opLDA: "LDA", opLDX: "LDX", opLDY: "LDY",
	opLSR: "LSR", opNOP: "NOP", opORA: "ORA", opROL: "ROL", opROR: "ROR",
	opSBC: "SBC", opSEC: "SEC", opSED: "SED", opSEI: "SEI", opSTA: "STA",
	opSTX: "STX", opSTY: "STY", opTAX: "TAX", opTAY: "TAY", opTSX: "TSX",
	opTXA: "TXA", opTXS: "TXS", opTYA: "TYA",
}

func (op operation) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "???"
}

// timing is one row of the timing table: the base cycle cost of an
// opcode plus the extra cost charged when operand resolution crossed a
// page boundary. No instruction costs zero cycles, so base == 0 marks
// an unpopulated row.
type timing struct {
	base    uint8
	penalty uint8
}

// The three opcode-keyed tables below are the decode surface of the
// CPU: operation, addressing mode and timing. Opcodes absent from the
// documented instruction set are left unpopulated and make Step fail
// rather than execute. The stack, interrupt and indirect-jump opcodes
// are deliberately not wired up.
//
// The tables must agree: TestOpcodeTablesAgree checks that every
// populated operation row has a mode row and a timing row.

var opTable = [0x100]operation{
	0x01: opORA, 0x05: opORA, 0x06: opASL, 0x09: opORA, 0x0a: opASL,
	0x0d: opORA, 0x0e: opASL, 0x10: opBPL, 0x11: opORA, 0x15: opORA,
	0x16: opASL, 0x18: opCLC, 0x19: opORA, 0x1d: opORA, 0x1e: opASL,
	0x21: opAND, 0x24: opBIT, 0x25: opAND, 0x26: opROL, 0x29: opAND,
	0x2a: opROL, 0x2c: opBIT, 0x2d: opAND, 0x2e: opROL, 0x30: opBMI,
	0x31: opAND, 0x35: opAND, 0x36: opROL, 0x38: opSEC, 0x39: opAND,
	0x3d: opAND, 0x3e: opROL, 0x41: opEOR, 0x45: opEOR, 0x46: opLSR,
	0x49: opEOR, 0x4a: opLSR, 0x4c: opJMP, 0x4d: opEOR, 0x4e: opLSR,
	0x50: opBVC, 0x51: opEOR, 0x55: opEOR, 0x56: opLSR, 0x58: opCLI,
	0x59: opEOR, 0x5d: opEOR, 0x5e: opLSR, 0x61: opADC, 0x65: opADC,
	0x66: opROR, 0x69: opADC, 0x6a: opROR, 0x6d: opADC, 0x6e: opROR,
	0x70: opBVS, 0x71: opADC, 0x75: opADC, 0x76: opROR, 0x78: opSEI,
	0x79: opADC, 0x7d: opADC, 0x7e: opROR, 0x81: opSTA, 0x84: opSTY,
	0x85: opSTA, 0x86: opSTX, 0x88: opDEY, 0x8a: opTXA, 0x8c: opSTY,
	0x8d: opSTA, 0x8e: opSTX, 0x90: opBCC, 0x91: opSTA, 0x94: opSTY,
	0x95: opSTA, 0x96: opSTX, 0x98: opTYA, 0x99: opSTA, 0x9a: opTXS,
	0x9d: opSTA, 0xa0: opLDY, 0xa1: opLDA, 0xa2: opLDX, 0xa4: opLDY,
	0xa5: opLDA, 0xa6: opLDX, 0xa8: opTAY, 0xa9: opLDA, 0xaa: opTAX,
	0xac: opLDY, 0xad: opLDA, 0xae: opLDX, 0xb0: opBCS, 0xb1: opLDA,
	0xb4: opLDY, 0xb5: opLDA, 0xb6: opLDX, 0xb8: opCLV, 0xb9: opLDA,
	0xba: opTSX, 0xbc: opLDY, 0xbd: opLDA, 0xbe: opLDX, 0xc0: opCPY,
	0xc1: opCMP, 0xc4: opCPY, 0xc5: opCMP, 0xc6: opDEC, 0xc8: opINY,
	0xc9: opCMP, 0xca: opDEX, 0xcc: opCPY, 0xcd: opCMP, 0xce: opDEC,
	0xd0: opBNE, 0xd1: opCMP, 0xd5: opCMP, 0xd6: opDEC, 0xd8: opCLD,
	0xd9: opCMP, 0xdd: opCMP, 0xde: opDEC, 0xe0: opCPX, 0xe1: opSBC,
	0xe4: opCPX, 0xe5: opSBC, 0xe6: opINC, 0xe8: opINX, 0xe9: opSBC,
	0xea: opNOP, 0xec: opCPX, 0xed: opSBC, 0xee: opINC, 0xf0: opBEQ,
	0xf1: opSBC, 0xf5: opSBC, 0xf6: opINC, 0xf8: opSED, 0xf9: opSBC,
	0xfd: opSBC, 0xfe: opINC,
}

var modeTable = [0x100]addrMode{
	0x01: addrModeINDX, 0x05: addrModeZP, 0x06: addrModeZP,
	0x09: addrModeIMM, 0x0a: addrModeACC, 0x0d: addrModeABS,
	0x0e: addrModeABS, 0x10: addrModeREL, 0x11: addrModeINDY,
	0x15: addrModeZPX, 0x16: addrModeZPX, 0x18: addrModeIMP,
	0x19: addrModeABSY, 0x1d: addrModeABSX, 0x1e: addrModeABSX,
	0x21: addrModeINDX, 0x24: addrModeZP, 0x25: addrModeZP,
	0x26: addrModeZP, 0x29: addrModeIMM, 0x2a: addrModeACC,
	0x2c: addrModeABS, 0x2d: addrModeABS, 0x2e: addrModeABS,
	0x30: addrModeREL, 0x31: addrModeINDY, 0x35: addrModeZPX,
	0x36: addrModeZPX, 0x38: addrModeIMP, 0x39: addrModeABSY,
	0x3d: addrModeABSX, 0x3e: addrModeABSX, 0x41: addrModeINDX,
	0x45: addrModeZP, 0x46: addrModeZP, 0x49: addrModeIMM,
	0x4a: addrModeACC, 0x4c: addrModeABS, 0x4d: addrModeABS,
	0x4e: addrModeABS, 0x50: addrModeREL, 0x51: addrModeINDY,
	0x55: addrModeZPX, 0x56: addrModeZPX, 0x58: addrModeIMP,
	0x59: addrModeABSY, 0x5d: addrModeABSX, 0x5e: addrModeABSX,
	0x61: addrModeINDX, 0x65: addrModeZP, 0x66: addrModeZP,
	0x69: addrModeIMM, 0x6a: addrModeACC, 0x6d: addrModeABS,
	0x6e: addrModeABS, 0x70: addrModeREL, 0x71: addrModeINDY,
	0x75: addrModeZPX, 0x76: addrModeZPX, 0x78: addrModeIMP,
	0x79: addrModeABSY, 0x7d: addrModeABSX, 0x7e: addrModeABSX,
	0x81: addrModeINDX, 0x84: addrModeZP, 0x85: addrModeZP,
	0x86: addrModeZP, 0x88: addrModeIMP, 0x8a: addrModeIMP,
	0x8c: addrModeABS, 0x8d: addrModeABS, 0x8e: addrModeABS,
	0x90: addrModeREL, 0x91: addrModeINDY, 0x94: addrModeZPX,
	0x95: addrModeZPX, 0x96: addrModeZPY, 0x98: addrModeIMP,
	0x99: addrModeABSY, 0x9a: addrModeIMP, 0x9d: addrModeABSX,
	0xa0: addrModeIMM, 0xa1: addrModeINDX, 0xa2: addrModeIMM,
	0xa4: addrModeZP, 0xa5: addrModeZP, 0xa6: addrModeZP,
	0xa8: addrModeIMP, 0xa9: addrModeIMM, 0xaa: addrModeIMP,
	0xac: addrModeABS, 0xad: addrModeABS, 0xae: addrModeABS,
	0xb0: addrModeREL, 0xb1: addrModeINDY, 0xb4: addrModeZPX,
	0xb5: addrModeZPX, 0xb6: addrModeZPY, 0xb8: addrModeIMP,
	0xb9: addrModeABSY, 0xba: addrModeIMP, 0xbc: addrModeABSX,
	0xbd: addrModeABSX, 0xbe: addrModeABSY, 0xc0: addrModeIMM,
	0xc1: addrModeINDX, 0xc4: addrModeZP, 0xc5: addrModeZP,
	0xc6: addrModeZP, 0xc8: addrModeIMP, 0xc9: addrModeIMM,
	0xca: addrModeIMP, 0xcc: addrModeABS, 0xcd: addrModeABS,
	0xce: addrModeABS, 0xd0: addrModeREL, 0xd1: addrModeINDY,
	0xd5: addrModeZPX, 0xd6: addrModeZPX, 0xd8: addrModeIMP,
	0xd9: addrModeABSY, 0xdd: addrModeABSX, 0xde: addrModeABSX,
	0xe0: addrModeIMM, 0xe1: addrModeINDX, 0xe4: addrModeZP,
	0xe5: addrModeZP, 0xe6: addrModeZP, 0xe8: addrModeIMP,
	0xe9: addrModeIMM, 0xea: addrModeIMP, 0xec: addrModeABS,
	0xed: addrModeABS, 0xee: addrModeABS, 0xf0: addrModeREL,
	0xf1: addrModeINDY, 0xf5: addrModeZPX, 0xf6: addrModeZPX,
	0xf8: addrModeIMP, 0xf9: addrModeABSY, 0xfd: addrModeABSX,
	0xfe: addrModeABSX,
}

var timingTable = [0x100]timing{
	0x01: {base: 6}, 0x05: {base: 3}, 0x06: {base: 5},
	0x09: {base: 2}, 0x0a: {base: 2}, 0x0d: {base: 4},
	0x0e: {base: 6}, 0x10: {base: 2}, 0x11: {base: 5, penalty: 1},
	0x15: {base: 4}, 0x16: {base: 6}, 0x18: {base: 2},
	0x19: {base: 4, penalty: 1}, 0x1d: {base: 4, penalty: 1}, 0x1e: {base: 7},
	0x21: {base: 6}, 0x24: {base: 3}, 0x25: {base: 3},
	0x26: {base: 5}, 0x29: {base: 2}, 0x2a: {base: 2},
	0x2c: {base: 4}, 0x2d: {base: 4}, 0x2e: {base: 6},
	0x30: {base: 2}, 0x31: {base: 5, penalty: 1}, 0x35: {base: 4},
	0x36: {base: 6}, 0x38: {base: 2}, 0x39: {base: 4, penalty: 1},
	0x3d: {base: 4, penalty: 1}, 0x3e: {base: 7}, 0x41: {base: 6},
	0x45: {base: 3}, 0x46: {base: 5}, 0x49: {base: 2},
	0x4a: {base: 2}, 0x4c: {base: 3}, 0x4d: {base: 4},
	0x4e: {base: 6}, 0x50: {base: 2}, 0x51: {base: 5, penalty: 1},
	0x55: {base: 4}, 0x56: {base: 6}, 0x58: {base: 2},
	0x59: {base: 4, penalty: 1}, 0x5d: {base: 4, penalty: 1}, 0x5e: {base: 7},
	0x61: {base: 6}, 0x65: {base: 3}, 0x66: {base: 5},
	0x69: {base: 2}, 0x6a: {base: 2}, 0x6d: {base: 4},
	0x6e: {base: 6}, 0x70: {base: 2}, 0x71: {base: 5, penalty: 1},
	0x75: {base: 4}, 0x76: {base: 6}, 0x78: {base: 2},
	0x79: {base: 4, penalty: 1}, 0x7d: {base: 4, penalty: 1}, 0x7e: {base: 7},
	0x81: {base: 6}, 0x84: {base: 3}, 0x85: {base: 3},
	0x86: {base: 3}, 0x88: {base: 2}, 0x8a: {base: 2},
	0x8c: {base: 4}, 0x8d: {base: 4}, 0x8e: {base: 4},
	0x90: {base: 2}, 0x91: {base: 6}, 0x94: {base: 4},
	0x95: {base: 4}, 0x96: {base: 4}, 0x98: {base: 2},
	0x99: {base: 5}, 0x9a: {base: 2}, 0x9d: {base: 5},
	0xa0: {base: 2}, 0xa1: {base: 6}, 0xa2: {base: 2},
	0xa4: {base: 3}, 0xa5: {base: 3}, 0xa6: {base: 3},
	0xa8: {base: 2}, 0xa9: {base: 2}, 0xaa: {base: 2},
	0xac: {base: 4}, 0xad: {base: 4}, 0xae: {base: 4},
	0xb0: {base: 2}, 0xb1: {base: 5, penalty: 1}, 0xb4: {base: 4},
	0xb5: {base: 4}, 0xb6: {base: 4}, 0xb8: {base: 2},
	0xb9: {base: 4, penalty: 1}, 0xba: {base: 2}, 0xbc: {base: 4, penalty: 1},
	0xbd: {base: 4, penalty: 1}, 0xbe: {base: 4, penalty: 1}, 0xc0: {base: 2},
	0xc1: {base: 6}, 0xc4: {base: 3}, 0xc5: {base: 3},
	0xc6: {base: 5}, 0xc8: {base: 2}, 0xc9: {base: 2},
	0xca: {base: 2}, 0xcc: {base: 4}, 0xcd: {base: 4},
	0xce: {base: 6}, 0xd0: {base: 2}, 0xd1: {base: 5, penalty: 1},
	0xd5: {base: 4}, 0xd6: {base: 6}, 0xd8: {base: 2},
	0xd9: {base: 4, penalty: 1}, 0xdd: {base: 4, penalty: 1}, 0xde: {base: 7},
	0xe0: {base: 2}, 0xe1: {base: 6}, 0xe4: {base: 3},
	0xe5: {base: 3}, 0xe6: {base: 5}, 0xe8: {base: 2},
	0xe9: {base: 2}, 0xea: {base: 2}, 0xec: {base: 4},
	0xed: {base: 4}, 0xee: {base: 6}, 0xf0: {base: 2},
	0xf1: {base: 5, penalty: 1}, 0xf5: {base: 4}, 0xf6: {base: 6},
	0xf8: {base: 2}, 0xf9: {base: 4, penalty: 1}, 0xfd: {base: 4, penalty: 1},
	0xfe: {base: 7},
}
