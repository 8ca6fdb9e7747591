package cpu

// Push decrements SP and stores value at the new top of stack.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Memory.Write(cpu.Register[REG_SP], value)
}

// Pop returns the value at the top of stack and increments SP.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Peek()
	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at the top of stack.
func (cpu *Cpu) Peek() uint8 {
	return cpu.Memory.Read(cpu.Register[REG_SP])
}

// Depth returns the number of values pushed below the reset SP.
func (cpu *Cpu) Depth() int {
	return int(uint8(SP_INIT - cpu.Register[REG_SP]))
}
