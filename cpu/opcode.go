package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an LS-8 instruction opcode.
//
// The encoding is AABCDDDD: AA is the number of operands, B is set for
// ALU operations, C is set when the instruction sets the PC itself, and
// DDDD identifies the instruction.
type Opcode uint8

const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_RET  = Opcode(0b00010001) // RET
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_CALL = Opcode(0b01010000) // CALL
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_CMP  = Opcode(0b10100111) // CMP
)

const (
	opOperandShift = 6
	opAluBit       = Opcode(1 << 5)
	opSetsPcBit    = Opcode(1 << 4)
)

// opcodeName is the closed table of implemented instructions.
var opcodeName = map[Opcode]string{
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_CALL: "CALL",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_LDI:  "LDI",
	OP_ADD:  "ADD",
	OP_MUL:  "MUL",
	OP_CMP:  "CMP",
}

// opcodeByName is the reverse of opcodeName, keyed by mnemonic.
var opcodeByName = func() map[string]Opcode {
	names := make(map[string]Opcode, len(opcodeName))
	for op, name := range opcodeName {
		names[name] = op
	}
	return names
}()

// ParseOpcode returns the opcode for a mnemonic, ignoring case.
func ParseOpcode(name string) (op Opcode, ok bool) {
	op, ok = opcodeByName[strings.ToUpper(name)]
	return
}

// Valid returns true if the opcode is in the instruction table.
func (op Opcode) Valid() bool {
	_, ok := opcodeName[op]
	return ok
}

// Operands returns the number of operand bytes that follow the opcode.
func (op Opcode) Operands() int {
	return int(op >> opOperandShift)
}

// Size returns the total instruction length in bytes.
func (op Opcode) Size() uint8 {
	return uint8(1 + op.Operands())
}

// IsAlu returns true if the instruction is executed by the ALU.
func (op Opcode) IsAlu() bool {
	return (op & opAluBit) != 0
}

// SetsPc returns true if the instruction manages the PC itself.
func (op Opcode) SetsPc() bool {
	return (op & opSetsPcBit) != 0
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	name, ok := opcodeName[op]
	if !ok {
		return fmt.Sprintf("Opcode(0b%08b)", uint8(op))
	}
	return name
}

// Instruction is a decoded instruction with both candidate operand bytes.
// The operand bytes are always fetched, whether or not the opcode uses them.
type Instruction struct {
	Opcode Opcode
	A      uint8 // Operand A.
	B      uint8 // Operand B.
}

// Decode validates an opcode byte against the instruction table.
func Decode(op, a, b uint8) (inst Instruction, err error) {
	inst = Instruction{Opcode: Opcode(op), A: a, B: b}
	if !inst.Opcode.Valid() {
		err = ErrOpcode(op)
		return
	}

	return
}

// Bytes returns the encoded form of the instruction, trimmed to its size.
func (inst Instruction) Bytes() []byte {
	data := []byte{uint8(inst.Opcode), inst.A, inst.B}
	return data[:inst.Opcode.Size()]
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	if inst.Opcode == OP_LDI {
		return fmt.Sprintf("%v %v,%d", inst.Opcode, RegisterName(inst.A), inst.B)
	}

	switch inst.Opcode.Operands() {
	case 1:
		return fmt.Sprintf("%v %v", inst.Opcode, RegisterName(inst.A))
	case 2:
		return fmt.Sprintf("%v %v,%v", inst.Opcode, RegisterName(inst.A), RegisterName(inst.B))
	}

	return inst.Opcode.String()
}
