package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"

	"github.com/pkg/profile"

	"github.com/nevisdale/emu6502/internal/emu"
)

func main() {
	romPath := flag.String("rom", "", "path to a raw binary image")
	offset := flag.Int("offset", 0x0200, "memory offset to load the image at")
	entry := flag.Int("entry", 0x0200, "entry address the program counter starts at")
	hz := flag.Int("hz", 1_000_000, "target clock rate in Hz, 0 runs unpaced")
	disasm := flag.Bool("disasm", false, "print a disassembly of the loaded image and exit")
	prof := flag.Bool("profile", false, "write a CPU profile to the current directory")
	flag.Parse()

	if *prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if err := run(*romPath, *offset, *entry, *hz, *disasm); err != nil {
		log.Fatalf("emu6502: %s\n", err.Error())
	}
}

func run(romPath string, offset, entry, hz int, disasm bool) error {
	if romPath == "" {
		return fmt.Errorf("no image given, use -rom")
	}

	m, err := emu.New(emu.Config{
		EntryAddr: entry,
		ClockRate: hz,
	})
	if err != nil {
		return fmt.Errorf("couldn't create machine: %w", err)
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("couldn't read image: %w", err)
	}

	m.Reset()
	if err := m.Load(data, offset); err != nil {
		return fmt.Errorf("couldn't load image: %w", err)
	}

	if disasm {
		printDisasm(m, offset, offset+len(data))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := m.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Printf("stopped after %d cycles\n", m.CPU().TotalCycles())
			return nil
		}
		return err
	}
	return nil
}

func printDisasm(m *emu.Machine, from, to int) {
	disasm := m.CPU().Disassemble()

	addrs := make([]int, 0, len(disasm))
	for addr := range disasm {
		if int(addr) < from || int(addr) >= to {
			continue
		}
		addrs = append(addrs, int(addr))
	}
	sort.Ints(addrs)

	for _, addr := range addrs {
		fmt.Println(disasm[uint16(addr)])
	}
}
