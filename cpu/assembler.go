// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = func() map[string]string {
	equ := maps.Clone(_cpu_defines)
	equ["LINENO"] = "0"
	return equ
}()

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reLabel      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Assembler is a single pass assembler for the LS-8 system.
//
// Source is one instruction per line, such as `LDI R0,8`. A ';' starts a
// comment, `NAME:` defines a label, `.equ NAME VALUE` defines an equate,
// and `.byte VALUE...` emits raw data. `$(expr)` is evaluated at assembly
// time over the equates and the labels defined so far. LDI immediates may
// name any label, resolved when the whole source has been read.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a numeric word, accepting -128..255.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil || v64 < -0x80 || v64 > 0xff {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, address := range asm.Label {
		pred[key] = starlark.MakeInt(address)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine expands a single line into words, handling equates and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.FieldsFunc(line, func(r rune) bool { return unicode.IsSpace(r) || r == ',' })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if strings.EqualFold(words[0], ".equ") {
		if len(words) != 3 || !reLabel.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		asm.Label[label] = asm.currentAddress()
		words = words[1:]
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// currentAddress gets the address of the next generated byte.
func (asm *Assembler) currentAddress() int {
	if len(asm.Lines) == 0 {
		return 0
	}

	last := asm.Lines[len(asm.Lines)-1]

	return last.Address + len(last.Codes)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = make(map[string]int, 16)
	asm.Lines = asm.Lines[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.SplitN(text, ";", 2)
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		address, ok := asm.Label[op.LinkLabel]
		if !ok {
			lineno = op.LineNo
			line = strings.Join(op.Words, " ")
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		op.Codes[len(op.Codes)-1] = uint8(address)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}

// parseRegister parses a register operand.
func (asm *Assembler) parseRegister(word string) (reg uint8, err error) {
	reg, ok := ParseRegister(word)
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []byte
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if err != nil || len(codes) == 0 {
			return
		}
		address := asm.currentAddress()
		if address+len(codes) > MEMORY_SIZE {
			err = ErrProgramTooLarge
			return
		}
		line := Line{LineNo: lineno, Address: address, Words: initial_words, Codes: codes, LinkLabel: label}
		asm.Lines = append(asm.Lines, line)
	}()

	if strings.EqualFold(words[0], ".byte") {
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, word := range words[1:] {
			var value uint8
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			codes = append(codes, value)
		}
		return
	}

	op, ok := ParseOpcode(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	args := words[1:]
	if len(args) < op.Operands() {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > op.Operands() {
		err = ErrOpcodeExtraArgs
		return
	}

	inst := Instruction{Opcode: op}

	switch {
	case op == OP_LDI:
		inst.A, err = asm.parseRegister(args[0])
		if err != nil {
			return
		}
		var value uint8
		value, err = asm.valueOf(args[1])
		if err != nil {
			if !reLabel.MatchString(args[1]) {
				return
			}
			err = nil
			label = args[1]
		}
		inst.B = value
	default:
		operands := [2](*uint8){&inst.A, &inst.B}
		for n, arg := range args {
			*operands[n], err = asm.parseRegister(arg)
			if err != nil {
				return
			}
		}
	}

	codes = inst.Bytes()

	return
}
