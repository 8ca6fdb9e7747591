package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":  fmt.Sprintf("%d", MEMORY_SIZE),
	"SP_INIT":      fmt.Sprintf("0x%x", SP_INIT),
	"FLAG_EQUAL":   fmt.Sprintf("0b%03b", FLAG_EQUAL),
	"FLAG_GREATER": fmt.Sprintf("0b%03b", FLAG_GREATER),
	"FLAG_LESS":    fmt.Sprintf("0b%03b", FLAG_LESS),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	// LegacyRet selects the RET behaviour of the first LS-8 emulators:
	// the return address is read from the top of stack, then SP+1 is
	// written into that stack cell and SP itself is left unchanged.
	// When clear, RET pops the return address.
	LegacyRet bool

	Memory   Memory           // Main memory.
	Register [REG_COUNT]uint8 // Register bank. R7 is the stack pointer.
	Pc       uint8            // Address of the next instruction.
	Flag     Flag             // Result of the last CMP.
	Running  bool             // Cleared by HLT.

	Ticks int // Instructions executed since reset.

	output Channel // PRN destination.
}

// NewCpu creates a new, halted CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Register[REG_SP] = SP_INIT

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetOutput sets the channel PRN writes to.
func (cpu *Cpu) SetOutput(output Channel) {
	cpu.output = output
}

// Output returns the channel PRN writes to.
func (cpu *Cpu) Output() Channel {
	return cpu.output
}

// String returns the current CPU state as a trace line.
func (cpu *Cpu) String() string {
	text := &strings.Builder{}

	fmt.Fprintf(text, "TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.Memory.Read(cpu.Pc),
		cpu.Memory.Read(cpu.Pc+1),
		cpu.Memory.Read(cpu.Pc+2),
	)
	for _, reg := range cpu.Register {
		fmt.Fprintf(text, " %02X", reg)
	}
	fmt.Fprintf(text, " | %v", cpu.Flag)

	return text.String()
}

// Reset the CPU state.
// - Clears memory, registers and flags.
// - Loads the program image at address 0.
// - Sets SP to the top of memory and PC to 0.
// - Rewinds the output channel.
func (cpu *Cpu) Reset(prog *Program) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = SP_INIT
	cpu.Pc = 0
	cpu.Flag = 0
	cpu.Ticks = 0
	cpu.Running = false

	if cpu.output != nil {
		cpu.output.Rewind()
	}

	if prog != nil {
		err = cpu.Memory.Load(prog.Binary())
		if err != nil {
			return
		}
	}

	cpu.Running = true

	return
}

// Fetch reads and decodes the instruction at the PC.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	return Decode(
		cpu.Memory.Read(cpu.Pc),
		cpu.Memory.Read(cpu.Pc+1),
		cpu.Memory.Read(cpu.Pc+2),
	)
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	if cpu.Verbose {
		log.Print(cpu.String())
	}

	inst, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(inst)
	return
}

// Run executes instructions until HLT, or the first error.
func (cpu *Cpu) Run() (err error) {
	cpu.Running = true

	for cpu.Running {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, inst)
	}

	reg_a := inst.A & REG_MASK
	reg_b := inst.B & REG_MASK

	next_pc := cpu.Pc + inst.Opcode.Size()

	switch inst.Opcode {
	case OP_HLT:
		cpu.Running = false
		next_pc = cpu.Pc
	case OP_LDI:
		cpu.Register[reg_a] = inst.B
	case OP_PRN:
		if cpu.output == nil {
			err = ErrChannelInvalid
			return
		}
		err = cpu.output.Send(cpu.Register[reg_a])
	case OP_ADD:
		cpu.Register[reg_a], err = cpu.doAlu(ALU_OP_ADD, cpu.Register[reg_a], cpu.Register[reg_b])
	case OP_MUL:
		cpu.Register[reg_a], err = cpu.doAlu(ALU_OP_MUL, cpu.Register[reg_a], cpu.Register[reg_b])
	case OP_CMP:
		_, err = cpu.doAlu(ALU_OP_CMP, cpu.Register[reg_a], cpu.Register[reg_b])
	case OP_PUSH:
		// The source register is read after SP moves, so PUSH R7
		// stores the decremented SP.
		cpu.Register[REG_SP]--
		cpu.Memory.Write(cpu.Register[REG_SP], cpu.Register[reg_a])
	case OP_POP:
		// SP moves after the load, so POP R7 leaves the loaded value + 1.
		cpu.Register[reg_a] = cpu.Peek()
		cpu.Register[REG_SP]++
	case OP_CALL:
		cpu.Push(cpu.Pc + inst.Opcode.Size())
		next_pc = cpu.Register[reg_a]
	case OP_RET:
		if cpu.LegacyRet {
			sp := cpu.Register[REG_SP]
			next_pc = cpu.Memory.Read(sp)
			cpu.Memory.Write(sp, sp+1)
		} else {
			next_pc = cpu.Pop()
		}
	case OP_JMP:
		next_pc = cpu.Register[reg_a]
	case OP_JEQ:
		if cpu.Flag.Equal() {
			next_pc = cpu.Register[reg_a]
		}
	case OP_JNE:
		if !cpu.Flag.Equal() {
			next_pc = cpu.Register[reg_a]
		}
	default:
		err = ErrOpcode(inst.Opcode)
		return
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}
