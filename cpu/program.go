package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Line is a line of program source with the bytes it generated.
type Line struct {
	LineNo    int      // Source line number.
	Address   int      // Address of the first byte.
	Words     []string // Source words, or the comment of a binary line.
	Codes     []byte   // Generated bytes.
	LinkLabel string   // Label resolved into the last byte at link time.
}

// Program is a memory image with its source line information.
type Program struct {
	Lines []Line
}

// Debug locates the source line of an address.
type Debug struct {
	*Line
	Index int // Offset of the address within the line's codes.
}

// Debug returns the source line that generated address.
func (prog *Program) Debug(address uint8) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(address) >= line.Address && int(address) < line.Address+len(line.Codes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(address) - line.Address,
			}
			break
		}
	}

	return
}

// Codes returns an iterator over the address and value of each byte.
func (prog *Program) Codes() iter.Seq2[uint8, byte] {
	return func(yield func(address uint8, code byte) bool) {
		for _, line := range prog.Lines {
			for n, code := range line.Codes {
				if !yield(uint8(line.Address+n), code) {
					return
				}
			}
		}
	}
}

// Size returns the length of the memory image.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size = max(size, line.Address+len(line.Codes))
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Size())
	for address, code := range prog.Codes() {
		bins[address] = code
	}

	return
}

// WriteText writes the program in the loader's text form, one base-2 byte
// per line. The first byte of each source line carries its words as a
// comment.
func (prog *Program) WriteText(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		for n, code := range line.Codes {
			if n == 0 && len(line.Words) != 0 {
				_, err = fmt.Fprintf(w, "%08b # %v\n", code, strings.Join(line.Words, " "))
			} else {
				_, err = fmt.Fprintf(w, "%08b\n", code)
			}
			if err != nil {
				return
			}
		}
	}

	return
}

// parseBinary parses an eight digit base-2 literal.
func parseBinary(word string) (value uint8, err error) {
	if len(word) != 8 {
		err = ErrParseNumber(word)
		return
	}

	v64, err := strconv.ParseUint(word, 2, 8)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)
	return
}

// Load parses the text form of a program: one eight digit base-2 byte per
// line, with '#' starting a comment. Blank and comment-only lines are
// skipped. Bytes are placed at increasing addresses from 0.
func Load(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.SplitN(text, "#", 2)
		line = strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		var value uint8
		value, err = parseBinary(line)
		if err != nil {
			return
		}

		if address >= MEMORY_SIZE {
			err = ErrProgramTooLarge
			return
		}

		var words []string
		if len(text_comment) > 1 {
			words = strings.Fields(text_comment[1])
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Words:   words,
			Codes:   []byte{value},
		})
		address++
	}

	line = ""
	err = scanner.Err()

	return
}
