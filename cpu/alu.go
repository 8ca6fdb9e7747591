package cpu

import (
	"fmt"
)

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_MUL = AluOp(1) // mul
	ALU_OP_CMP = AluOp(2) // cmp
)

var aluOpName = [...]string{
	ALU_OP_ADD: "add",
	ALU_OP_MUL: "mul",
	ALU_OP_CMP: "cmp",
}

func (op AluOp) String() string {
	if op < 0 || int(op) >= len(aluOpName) {
		return fmt.Sprintf("AluOp(%d)", int(op))
	}
	return aluOpName[op]
}

// Alu performs an ALU operation on two register values.
//
// ALU_OP_ADD and ALU_OP_MUL return the result modulo 256, with the flags
// unchanged from fl. ALU_OP_CMP returns a unchanged and replaces the
// flags with the comparison of a to b.
func Alu(op AluOp, a, b uint8, fl Flag) (out uint8, flag Flag, err error) {
	flag = fl

	switch op {
	case ALU_OP_ADD:
		out = a + b
	case ALU_OP_MUL:
		out = a * b
	case ALU_OP_CMP:
		out = a
		flag = Compare(a, b)
	default:
		err = fmt.Errorf("%w: %v", ErrAluUnsupported, op)
	}

	return
}

// doAlu runs op against the CPU flag register.
func (cpu *Cpu) doAlu(op AluOp, a, b uint8) (out uint8, err error) {
	out, flag, err := Alu(op, a, b, cpu.Flag)
	if err != nil {
		return
	}

	cpu.Flag = flag
	return
}
