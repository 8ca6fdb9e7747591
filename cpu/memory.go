package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat LS-8 address space.
// Addresses are 8 bits wide, so every access is in range.
type Memory struct {
	Data [MEMORY_SIZE]uint8
}

// Read returns the byte stored at address.
func (mem *Memory) Read(address uint8) uint8 {
	return mem.Data[address]
}

// Write stores value at address.
func (mem *Memory) Write(address uint8, value uint8) {
	mem.Data[address] = value
}

// Load copies an image into memory starting at address 0.
func (mem *Memory) Load(image []byte) (err error) {
	if len(image) > MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	copy(mem.Data[:], image)
	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
}
