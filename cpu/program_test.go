package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const printEightTimesNine = `# mult.ls8
10000010 # LDI R0,8
00000000
00001000
10000010 # LDI R1,9
00000001
00001001

10100010 # MUL R0,R1
00000000
00000001
01000111 # PRN R0
00000000
00000001 # HLT
`

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load(strings.NewReader(printEightTimesNine))
	require.NoError(t, err)

	assert.Equal([]byte{
		0b10000010, 0, 8,
		0b10000010, 1, 9,
		0b10100010, 0, 1,
		0b01000111, 0,
		0b00000001,
	}, prog.Binary())
	assert.Equal(12, prog.Size())
	assert.Equal(12, len(prog.Lines))

	assert.Equal(Line{LineNo: 2, Address: 0, Words: []string{"LDI", "R0,8"}, Codes: []byte{0b10000010}}, prog.Lines[0])
	assert.Equal(Line{LineNo: 3, Address: 1, Codes: []byte{0}}, prog.Lines[1])
	assert.Equal(9, prog.Lines[6].LineNo)
}

func TestLoad_Run(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load(strings.NewReader(printEightTimesNine))
	require.NoError(t, err)

	cpu := NewCpu()
	output, err := runProgram(t, cpu, prog)
	assert.NoError(err)
	assert.Equal([]uint8{72}, output)
}

func TestLoad_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load(strings.NewReader("\n# nothing here\n   \n"))
	assert.NoError(err)
	assert.Empty(prog.Lines)
	assert.Empty(prog.Binary())
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		lineno int
		err    error
	}){
		{"digit", "10000010\n1000002 0\n", 2, ErrParseNumber("1000002 0")},
		{"short", "1000001\n", 1, ErrParseNumber("1000001")},
		{"long", "100000100\n", 1, ErrParseNumber("100000100")},
		{"hex", "0x000001\n", 1, ErrParseNumber("0x000001")},
		{"too_large", strings.Repeat("00000001\n", MEMORY_SIZE+1), MEMORY_SIZE + 1, ErrProgramTooLarge},
	}

	for _, entry := range table {
		prog, err := Load(strings.NewReader(entry.text))
		assert.Nil(prog, entry.name)
		var syntax *ErrSyntax
		if assert.ErrorAs(err, &syntax, entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestProgram_WriteText(t *testing.T) {
	assert := assert.New(t)

	prog := newProgram(
		Instruction{OP_LDI, 0, 8},
		Instruction{OP_PRN, 0, 0},
		Instruction{OP_HLT, 0, 0},
	)

	text := &bytes.Buffer{}
	assert.NoError(prog.WriteText(text))
	assert.Equal(strings.Join([]string{
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
		"",
	}, "\n"), text.String())

	loaded, err := Load(text)
	assert.NoError(err)
	assert.Equal(prog.Binary(), loaded.Binary())
	assert.Equal([]string{"PRN", "R0"}, loaded.Debug(3).Words)
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := newProgram(
		Instruction{OP_LDI, 0, 8},
		Instruction{OP_PRN, 0, 0},
		Instruction{OP_HLT, 0, 0},
	)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Line)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.Equal(3, dbg.LineNo)

	dbg = prog.Debug(6)
	assert.Nil(dbg.Line)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Lines: []Line{
		{Address: 0, Codes: []byte{1, 2}},
		{Address: 4, Codes: []byte{3}},
	}}

	var addresses []uint8
	for address := range prog.Codes() {
		addresses = append(addresses, address)
	}
	assert.Equal([]uint8{0, 1, 4}, addresses)
	assert.Equal([]byte{1, 2, 0, 0, 3}, prog.Binary())

	for address := range prog.Codes() {
		assert.Equal(uint8(0), address)
		break
	}
}
