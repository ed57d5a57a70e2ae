// Package emu wires the CPU and memory into one machine and hosts the
// run loop. Pacing against a target clock rate lives here, outside the
// CPU, so the core stays deterministic and untimed in tests.
package emu

import (
	"context"
	"fmt"

	"github.com/nevisdale/emu6502/internal/cpu"
	"github.com/nevisdale/emu6502/internal/memory"
)

// Config configures a Machine.
type Config struct {
	// EntryAddr is where the program counter points after Reset.
	EntryAddr int

	// ClockRate is the target clock frequency in Hz for Run.
	// Zero or negative runs unpaced.
	ClockRate int
}

// Machine owns one CPU and its memory. It is not safe for concurrent
// use; execution is single-threaded and a caller may only stop it
// between instructions.
type Machine struct {
	mem       *memory.Memory
	cpu       *cpu.CPU
	clockRate int
}

func New(conf Config) (*Machine, error) {
	mem := memory.New()
	c, err := cpu.New(mem, conf.EntryAddr)
	if err != nil {
		return nil, err
	}
	return &Machine{
		mem:       mem,
		cpu:       c,
		clockRate: conf.ClockRate,
	}, nil
}

// Reset reinitializes the whole machine state atomically: memory
// zeroed, registers and cycle counter cleared, program counter at the
// entry address.
func (m *Machine) Reset() {
	m.mem.Reset()
	m.cpu.Reset()
}

// Load copies data into memory starting at offset. Registers and the
// program counter are unaffected.
func (m *Machine) Load(data []byte, offset int) error {
	return m.mem.Load(data, offset)
}

// Step executes exactly one instruction and returns its cycle cost.
func (m *Machine) Step() (uint8, error) {
	return m.cpu.Step()
}

// CPU returns the machine's CPU for introspection.
func (m *Machine) CPU() *cpu.CPU {
	return m.cpu
}

// Mem returns the machine's memory for introspection.
func (m *Machine) Mem() *memory.Memory {
	return m.mem
}

// Run executes instructions until ctx is cancelled or a step fails.
// Cancellation is only observed between instructions. With a positive
// clock rate each step is paced against wall-clock time; pacing never
// changes execution results, only when they happen.
func (m *Machine) Run(ctx context.Context) error {
	p := newPacer(m.clockRate)
	var elapsed uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cycles, err := m.Step()
		if err != nil {
			return fmt.Errorf("emulation stopped: %w", err)
		}
		elapsed += uint64(cycles)
		p.wait(elapsed)
	}
}
