package cpu

import (
	"fmt"
	"strings"
)

const (
	REG_COUNT = 8    // Number of general-purpose registers.
	REG_MASK  = 0x7  // Mask applied to register operands.
	REG_SP    = 7    // Stack pointer register.
	SP_INIT   = 0xff // Stack pointer value after reset.
)

// RegisterName returns the assembly name of a register operand.
func RegisterName(index uint8) string {
	return fmt.Sprintf("R%d", index&REG_MASK)
}

// ParseRegister parses R0..R7, or SP as an alias of R7.
func ParseRegister(word string) (index uint8, ok bool) {
	word = strings.ToUpper(word)
	if word == "SP" {
		return REG_SP, true
	}

	if len(word) != 2 || word[0] != 'R' || word[1] < '0' || word[1] > '7' {
		return
	}

	return word[1] - '0', true
}
