package cpu

// Flag is the LS-8 flag register, laid out as 00000LGE.
type Flag uint8

const (
	FLAG_EQUAL   = Flag(0b001) // E
	FLAG_GREATER = Flag(0b010) // G
	FLAG_LESS    = Flag(0b100) // L
)

// Equal returns true if the last comparison found its operands equal.
func (fl Flag) Equal() bool {
	return (fl & FLAG_EQUAL) != 0
}

// Greater returns true if the last comparison found a > b.
func (fl Flag) Greater() bool {
	return (fl & FLAG_GREATER) != 0
}

// Less returns true if the last comparison found a < b.
func (fl Flag) Less() bool {
	return (fl & FLAG_LESS) != 0
}

// String returns the flags as LGE, with '-' for clear flags.
func (fl Flag) String() string {
	text := []byte("---")
	if fl.Less() {
		text[0] = 'L'
	}
	if fl.Greater() {
		text[1] = 'G'
	}
	if fl.Equal() {
		text[2] = 'E'
	}
	return string(text)
}

// Compare returns the flag register for comparing a to b.
// Exactly one flag is set in the result.
func Compare(a, b uint8) Flag {
	switch {
	case a == b:
		return FLAG_EQUAL
	case a < b:
		return FLAG_LESS
	default:
		return FLAG_GREATER
	}
}
