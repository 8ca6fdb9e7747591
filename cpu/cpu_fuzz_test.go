package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzCpu(f *testing.F) {
	for op := range opcodeName {
		f.Add(uint8(op), uint8(0), uint8(1), uint8(0x20), uint8(0))
		f.Add(uint8(op), uint8(7), uint8(7), uint8(0x40), uint8(2))
	}
	f.Add(uint8(0), uint8(0), uint8(0), uint8(0), uint8(0))
	f.Add(uint8(0xff), uint8(0), uint8(0), uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8, pc uint8, cmp uint8) {
		assert := assert.New(t)

		// Keep the instruction clear of the stack.
		pc %= 0xe0

		temp := &io.Temporary{Capacity: 4}

		cpu := NewCpu()
		cpu.SetOutput(temp)
		assert.NoError(cpu.Reset(nil))

		for n := range uint8(REG_SP) {
			cpu.Register[n] = 0x11*n + 3
		}
		cpu.Register[REG_SP] = 0xf0
		cpu.Memory.Write(0xf0, 0x77)
		cpu.Flag = Compare(cmp%3, 1)

		cpu.Pc = pc
		cpu.Memory.Write(pc, opcode)
		cpu.Memory.Write(pc+1, a)
		cpu.Memory.Write(pc+2, b)

		before := *cpu
		op := Opcode(opcode)
		reg_a := a & REG_MASK
		reg_b := b & REG_MASK

		err := cpu.Tick()
		if !op.Valid() {
			assert.ErrorIs(err, ErrOpcode(0))
			assert.Equal(before.Pc, cpu.Pc)
			assert.Equal(before.Register, cpu.Register)
			assert.Equal(0, cpu.Ticks)
			return
		}

		assert.NoError(err)
		assert.Equal(1, cpu.Ticks)

		next := pc + op.Size()
		output := slices.Collect(temp.Receive())

		switch op {
		case OP_HLT:
			assert.False(cpu.Running)
			assert.Equal(pc, cpu.Pc)
		case OP_LDI:
			assert.Equal(b, cpu.Register[reg_a])
			assert.Equal(next, cpu.Pc)
		case OP_PRN:
			assert.Equal([]uint8{before.Register[reg_a]}, output)
			assert.Equal(next, cpu.Pc)
		case OP_ADD:
			assert.Equal(before.Register[reg_a]+before.Register[reg_b], cpu.Register[reg_a])
			assert.Equal(next, cpu.Pc)
		case OP_MUL:
			assert.Equal(before.Register[reg_a]*before.Register[reg_b], cpu.Register[reg_a])
			assert.Equal(next, cpu.Pc)
		case OP_CMP:
			assert.Equal(Compare(before.Register[reg_a], before.Register[reg_b]), cpu.Flag)
			assert.Equal(next, cpu.Pc)
		case OP_PUSH:
			assert.Equal(uint8(0xef), cpu.Register[REG_SP])
			if reg_a == REG_SP {
				assert.Equal(uint8(0xef), cpu.Memory.Read(0xef))
			} else {
				assert.Equal(before.Register[reg_a], cpu.Memory.Read(0xef))
			}
			assert.Equal(next, cpu.Pc)
		case OP_POP:
			if reg_a == REG_SP {
				assert.Equal(uint8(0x78), cpu.Register[REG_SP])
			} else {
				assert.Equal(uint8(0x77), cpu.Register[reg_a])
				assert.Equal(uint8(0xf1), cpu.Register[REG_SP])
			}
			assert.Equal(next, cpu.Pc)
		case OP_CALL:
			assert.Equal(uint8(0xef), cpu.Register[REG_SP])
			assert.Equal(next, cpu.Memory.Read(0xef))
			assert.Equal(cpu.Register[reg_a], cpu.Pc)
		case OP_RET:
			assert.Equal(uint8(0x77), cpu.Pc)
			assert.Equal(uint8(0xf1), cpu.Register[REG_SP])
		case OP_JMP:
			assert.Equal(before.Register[reg_a], cpu.Pc)
		case OP_JEQ, OP_JNE:
			taken := before.Flag.Equal() == (op == OP_JEQ)
			if taken {
				assert.Equal(before.Register[reg_a], cpu.Pc)
			} else {
				assert.Equal(next, cpu.Pc)
			}
		}

		if op != OP_CMP {
			assert.Equal(before.Flag, cpu.Flag)
		}
		if op != OP_PRN {
			assert.Empty(output)
		}
	})
}
