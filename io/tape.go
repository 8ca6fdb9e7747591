package io

import (
	"fmt"
	"io"
)

// Tape writes each value sent to it as a decimal line on an io.Writer.
type Tape struct {
	Output io.Writer

	Sent int // Number of values written since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind resets the sent counter. Output already written is not recalled.
func (tc *Tape) Rewind() {
	tc.Sent = 0
}

// Send writes value to the output stream, one line per value.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Sent++
	return
}
