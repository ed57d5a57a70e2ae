package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMem struct {
	data [0x10000]uint8
}

func (m *testMem) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *testMem) Write8(addr uint16, data uint8) {
	m.data[addr] = data
}

func newTestCPU(t *testing.T) (*CPU, *testMem) {
	t.Helper()
	mem := &testMem{}
	c, err := New(mem, 0)
	require.NoError(t, err)
	return c, mem
}

func Test_ADC(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		initP        uint8
		expectedA    uint8
		expectedP    uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c, _ := newTestCPU(t)
		c.a = in.initA
		c.p = in.initP
		c.operandValue = in.operandValue

		c.adc()

		assert.Equal(t, in.expectedA, c.a, "A register")
		assert.Equal(t, in.expectedP, c.p, "P register")
	}

	t.Run("zero result, no carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0,
			operandValue: 0,
			initP:        0,
			expectedA:    0,
			expectedP:    flagZ,
		})
	})

	t.Run("simple addition, no carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x10,
			operandValue: 0x20,
			initP:        0,
			expectedA:    0x30,
			expectedP:    0,
		})
	})

	t.Run("overflow with carry set", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x1,
			initP:        0,
			expectedA:    0,
			expectedP:    flagZ | flagC,
		})
	})

	t.Run("negative result with overflow", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x7f,
			operandValue: 0x1,
			initP:        0,
			expectedA:    0x80,
			expectedP:    flagN | flagV,
		})
	})

	t.Run("addition with carry in, result is negative", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0x50,
			initP:        flagC,
			expectedA:    0xa1,
			expectedP:    flagN | flagV,
		})
	})

	t.Run("overflow with carry in, result is positive", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x1,
			initP:        flagC,
			expectedA:    0x01,
			expectedP:    flagC,
		})
	})
}

func Test_SBC(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		initP        uint8
		expectedA    uint8
		expectedP    uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c, _ := newTestCPU(t)
		c.a = in.initA
		c.p = in.initP
		c.operandValue = in.operandValue

		c.sbc()

		assert.Equal(t, in.expectedA, c.a, "A register")
		assert.Equal(t, in.expectedP, c.p, "P register")
	}

	t.Run("simple subtraction, borrow clear", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x30,
			operandValue: 0x10,
			initP:        flagC,
			expectedA:    0x20,
			expectedP:    flagC,
		})
	})

	t.Run("subtraction with borrow in", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x30,
			operandValue: 0x10,
			initP:        0,
			expectedA:    0x1f,
			expectedP:    flagC,
		})
	})

	t.Run("underflow clears carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x10,
			operandValue: 0x20,
			initP:        flagC,
			expectedA:    0xf0,
			expectedP:    flagN,
		})
	})

	t.Run("zero result", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x42,
			operandValue: 0x42,
			initP:        flagC,
			expectedA:    0x00,
			expectedP:    flagZ | flagC,
		})
	})
}

func Test_AND(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		expectedA    uint8
		expectedP    uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c, _ := newTestCPU(t)
		c.a = in.initA
		c.p = 0
		c.operandValue = in.operandValue

		c.and()

		assert.Equal(t, in.expectedA, c.a, "A register")
		assert.Equal(t, in.expectedP, c.p, "P register")
	}

	t.Run("ff&0f=0f", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operandValue: 0x0f, expectedA: 0x0f, expectedP: 0})
	})

	t.Run("ff&00=00", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operandValue: 0x00, expectedA: 0x00, expectedP: flagZ})
	})

	t.Run("ff&ff=ff", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operandValue: 0xff, expectedA: 0xff, expectedP: flagN})
	})
}

func Test_ORA_EOR(t *testing.T) {
	t.Run("ora sets bits", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.a = 0x0f
		c.p = 0
		c.operandValue = 0x80

		c.ora()

		assert.Equal(t, uint8(0x8f), c.a)
		assert.Equal(t, flagN, c.p)
	})

	t.Run("eor clears to zero", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.a = 0x55
		c.p = 0
		c.operandValue = 0x55

		c.eor()

		assert.Equal(t, uint8(0x00), c.a)
		assert.Equal(t, flagZ, c.p)
	})
}

func Test_ASL(t *testing.T) {
	t.Run("ACC with carry out", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.operandValue = 0x83
		c.p = 0
		c.addrMode = addrModeACC

		c.asl()

		assert.Equal(t, uint8(0x06), c.a, "A register")
		assert.Equal(t, flagC, c.p, "P register")
	})

	t.Run("ACC with negative", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.operandValue = 0x41
		c.p = 0
		c.addrMode = addrModeACC

		c.asl()

		assert.Equal(t, uint8(0x82), c.a, "A register")
		assert.Equal(t, flagN, c.p, "P register")
	})

	t.Run("ACC with zero", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.operandValue = 0x0
		c.p = 0
		c.addrMode = addrModeACC

		c.asl()

		assert.Equal(t, uint8(0), c.a, "A register")
		assert.Equal(t, flagZ, c.p, "P register")
	})

	t.Run("memory target writes back", func(t *testing.T) {
		c, mem := newTestCPU(t)
		c.addrMode = addrModeZP
		c.operandAddr = 0x0010
		c.operandValue = 0x41
		c.p = 0

		c.asl()

		assert.Equal(t, uint8(0x82), mem.data[0x0010], "memory")
		assert.Equal(t, uint8(0), c.a, "A register untouched")
		assert.Equal(t, flagN, c.p, "P register")
	})
}

func Test_LSR_ROL_ROR(t *testing.T) {
	t.Run("lsr shifts carry out of bit 0", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.operandValue = 0x03
		c.p = 0
		c.addrMode = addrModeACC

		c.lsr()

		assert.Equal(t, uint8(0x01), c.a)
		assert.Equal(t, flagC, c.p)
	})

	t.Run("rol rotates carry into bit 0", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.operandValue = 0x80
		c.p = flagC
		c.addrMode = addrModeACC

		c.rol()

		assert.Equal(t, uint8(0x01), c.a)
		assert.Equal(t, flagC, c.p)
	})

	t.Run("ror rotates carry into bit 7", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.operandValue = 0x01
		c.p = flagC
		c.addrMode = addrModeACC

		c.ror()

		assert.Equal(t, uint8(0x80), c.a)
		assert.Equal(t, flagC|flagN, c.p)
	})

	t.Run("ror memory target", func(t *testing.T) {
		c, mem := newTestCPU(t)
		c.addrMode = addrModeABS
		c.operandAddr = 0x1234
		c.operandValue = 0x02
		c.p = 0

		c.ror()

		assert.Equal(t, uint8(0x01), mem.data[0x1234])
		assert.Equal(t, uint8(0), c.p)
	})
}

func Test_BIT(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		expectedP    uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c, _ := newTestCPU(t)
		c.a = in.initA
		c.p = 0
		c.operandValue = in.operandValue

		c.bit()

		assert.Equal(t, in.expectedP, c.p, "P register")
		assert.Equal(t, in.initA, c.a, "A register untouched")
	}

	t.Run("negative and overflow from operand bits", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xff, operandValue: 0x95, expectedP: flagN | flagV})
	})

	t.Run("zero from masked accumulator", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x6a, operandValue: 0x95, expectedP: flagZ | flagN | flagV})
	})

	t.Run("carry untouched", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.a = 0x01
		c.p = flagC
		c.operandValue = 0x01

		c.bit()

		assert.Equal(t, flagC, c.p)
	})
}

func Test_Branches(t *testing.T) {
	type testArgs struct {
		op             operation
		initP          uint8
		initPC         uint16
		operandAddr    uint16
		expectedPC     uint16
		expectedCycles uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		c, _ := newTestCPU(t)
		c.p = in.initP
		c.pc = in.initPC
		c.operandAddr = in.operandAddr

		c.exec(in.op)

		assert.Equal(t, in.expectedPC, c.pc, "PC")
		assert.Equal(t, in.expectedCycles, c.stepCycles, "extra cycles")
	}

	t.Run("beq not taken", func(t *testing.T) {
		testDo(t, testArgs{
			op:          opBEQ,
			initP:       0,
			initPC:      0x0202,
			operandAddr: 0x0005,
			expectedPC:  0x0202,
		})
	})

	t.Run("beq taken same page", func(t *testing.T) {
		testDo(t, testArgs{
			op:             opBEQ,
			initP:          flagZ,
			initPC:         0x0202,
			operandAddr:    0x0005,
			expectedPC:     0x0207,
			expectedCycles: 1,
		})
	})

	t.Run("beq taken across a page", func(t *testing.T) {
		testDo(t, testArgs{
			op:             opBEQ,
			initP:          flagZ,
			initPC:         0x02f2,
			operandAddr:    0x0020,
			expectedPC:     0x0312,
			expectedCycles: 2,
		})
	})

	t.Run("beq taken backwards", func(t *testing.T) {
		testDo(t, testArgs{
			op:             opBEQ,
			initP:          flagZ,
			initPC:         0x0202,
			operandAddr:    0xfffe, // -2
			expectedPC:     0x0200,
			expectedCycles: 1,
		})
	})

	t.Run("bne mirrors beq", func(t *testing.T) {
		testDo(t, testArgs{
			op:             opBNE,
			initP:          0,
			initPC:         0x0202,
			operandAddr:    0x0005,
			expectedPC:     0x0207,
			expectedCycles: 1,
		})
	})

	t.Run("bcc and bcs", func(t *testing.T) {
		testDo(t, testArgs{
			op:             opBCC,
			initP:          0,
			initPC:         0x0202,
			operandAddr:    0x0002,
			expectedPC:     0x0204,
			expectedCycles: 1,
		})
		testDo(t, testArgs{
			op:          opBCS,
			initP:       0,
			initPC:      0x0202,
			operandAddr: 0x0002,
			expectedPC:  0x0202,
		})
	})

	t.Run("bmi and bpl", func(t *testing.T) {
		testDo(t, testArgs{
			op:             opBMI,
			initP:          flagN,
			initPC:         0x0202,
			operandAddr:    0x0002,
			expectedPC:     0x0204,
			expectedCycles: 1,
		})
		testDo(t, testArgs{
			op:             opBPL,
			initP:          flagN,
			initPC:         0x0202,
			operandAddr:    0x0002,
			expectedPC:     0x0202,
			expectedCycles: 0,
		})
	})

	t.Run("bvc and bvs", func(t *testing.T) {
		testDo(t, testArgs{
			op:             opBVS,
			initP:          flagV,
			initPC:         0x0202,
			operandAddr:    0x0002,
			expectedPC:     0x0204,
			expectedCycles: 1,
		})
		testDo(t, testArgs{
			op:          opBVC,
			initP:       flagV,
			initPC:      0x0202,
			operandAddr: 0x0002,
			expectedPC:  0x0202,
		})
	})
}

func Test_Compares(t *testing.T) {
	type testArgs struct {
		init         uint8
		operandValue uint8
		expectedP    uint8
	}

	cases := []struct {
		name string
		args testArgs
	}{
		{name: "greater sets carry", args: testArgs{init: 0x20, operandValue: 0x10, expectedP: flagC}},
		{name: "equal sets carry and zero", args: testArgs{init: 0x20, operandValue: 0x20, expectedP: flagC | flagZ}},
		{name: "less sets negative", args: testArgs{init: 0x10, operandValue: 0x20, expectedP: flagN}},
	}

	for _, tc := range cases {
		t.Run("cmp "+tc.name, func(t *testing.T) {
			c, _ := newTestCPU(t)
			c.a = tc.args.init
			c.p = 0
			c.operandValue = tc.args.operandValue

			c.cmp()

			assert.Equal(t, tc.args.expectedP, c.p)
			assert.Equal(t, tc.args.init, c.a, "A register untouched")
		})
		t.Run("cpx "+tc.name, func(t *testing.T) {
			c, _ := newTestCPU(t)
			c.x = tc.args.init
			c.p = 0
			c.operandValue = tc.args.operandValue

			c.cpx()

			assert.Equal(t, tc.args.expectedP, c.p)
		})
		t.Run("cpy "+tc.name, func(t *testing.T) {
			c, _ := newTestCPU(t)
			c.y = tc.args.init
			c.p = 0
			c.operandValue = tc.args.operandValue

			c.cpy()

			assert.Equal(t, tc.args.expectedP, c.p)
		})
	}
}

func Test_IncDec(t *testing.T) {
	t.Run("inc wraps and sets zero", func(t *testing.T) {
		c, mem := newTestCPU(t)
		c.operandAddr = 0x0040
		c.operandValue = 0xff
		c.p = 0

		c.inc()

		assert.Equal(t, uint8(0x00), mem.data[0x0040])
		assert.Equal(t, flagZ, c.p)
	})

	t.Run("dec sets negative", func(t *testing.T) {
		c, mem := newTestCPU(t)
		c.operandAddr = 0x0040
		c.operandValue = 0x00
		c.p = 0

		c.dec()

		assert.Equal(t, uint8(0xff), mem.data[0x0040])
		assert.Equal(t, flagN, c.p)
	})

	t.Run("register variants", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.x = 0xff
		c.y = 0x01
		c.p = 0

		c.inx()
		assert.Equal(t, uint8(0x00), c.x)
		assert.True(t, c.Zero())

		c.dey()
		assert.Equal(t, uint8(0x00), c.y)
		assert.True(t, c.Zero())

		c.dex()
		assert.Equal(t, uint8(0xff), c.x)
		assert.True(t, c.Negative())

		c.iny()
		assert.Equal(t, uint8(0x01), c.y)
		assert.False(t, c.Zero())
	})
}

func Test_LoadsStores(t *testing.T) {
	t.Run("lda ldx ldy set flags from value", func(t *testing.T) {
		c, _ := newTestCPU(t)
		c.operandValue = 0x80

		c.lda()
		assert.Equal(t, uint8(0x80), c.a)
		assert.True(t, c.Negative())

		c.operandValue = 0x00
		c.ldx()
		assert.Equal(t, uint8(0x00), c.x)
		assert.True(t, c.Zero())

		c.operandValue = 0x7f
		c.ldy()
		assert.Equal(t, uint8(0x7f), c.y)
		assert.False(t, c.Negative())
		assert.False(t, c.Zero())
	})

	t.Run("sta stx sty leave flags alone", func(t *testing.T) {
		c, mem := newTestCPU(t)
		c.a = 0x11
		c.x = 0x22
		c.y = 0x33
		c.p = flagC

		c.operandAddr = 0x0100
		c.sta()
		c.operandAddr = 0x0101
		c.stx()
		c.operandAddr = 0x0102
		c.sty()

		assert.Equal(t, uint8(0x11), mem.data[0x0100])
		assert.Equal(t, uint8(0x22), mem.data[0x0101])
		assert.Equal(t, uint8(0x33), mem.data[0x0102])
		assert.Equal(t, flagC, c.p)
	})
}

func Test_Transfers(t *testing.T) {
	c, _ := newTestCPU(t)
	c.a = 0x80
	c.p = 0

	c.tax()
	assert.Equal(t, uint8(0x80), c.x)
	assert.True(t, c.Negative())

	c.tay()
	assert.Equal(t, uint8(0x80), c.y)

	c.txs()
	assert.Equal(t, uint8(0x80), c.sp)

	c.x = 0
	c.tsx()
	assert.Equal(t, uint8(0x80), c.x)

	c.a = 0
	c.txa()
	assert.Equal(t, uint8(0x80), c.a)

	c.a = 0
	c.tya()
	assert.Equal(t, uint8(0x80), c.a)
}

func Test_FlagOps(t *testing.T) {
	c, _ := newTestCPU(t)
	c.p = 0

	c.sec()
	assert.True(t, c.getFlag(flagC))
	c.clc()
	assert.False(t, c.getFlag(flagC))

	c.sed()
	assert.True(t, c.getFlag(flagD))
	c.cld()
	assert.False(t, c.getFlag(flagD))

	c.sei()
	assert.True(t, c.getFlag(flagI))
	c.cli()
	assert.False(t, c.getFlag(flagI))

	c.setFlag(flagV, true)
	c.clv()
	assert.False(t, c.getFlag(flagV))
}

func Test_JMP(t *testing.T) {
	c, _ := newTestCPU(t)
	c.operandAddr = 0x4000

	c.jmp()

	assert.Equal(t, uint16(0x4000), c.pc)
}
