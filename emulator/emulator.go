// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	PROGRAM_BASE = 0x00 // Load address of programs.
)

var _emulator_defines = map[string]string{
	"PROGRAM_BASE": fmt.Sprintf("0x%02x", PROGRAM_BASE),
}

// Emulator state. CPU + program + output tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // PRN output.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetOutput(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Defines(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the emulator, loading the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(emu.Program)
	return
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// LineNo returns the source line number for the instruction at the PC.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Registers returns the register bank as a string.
func (emu *Emulator) Registers() string {
	return fmt.Sprintf("%v", emu.Cpu.Register)
}

// Tick performs a single instruction of the emulator.
// done is set once the program has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if !emu.Cpu.Running {
		done = true
		return
	}

	lineno := emu.LineNo()
	address := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: address, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
