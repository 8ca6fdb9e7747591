// Package io provides the output channels of the LS-8 emulator.
// A Tape prints values to a stream as decimal lines, and a Temporary
// buffers them in a bounded FIFO.
package io

// Channel defines the interface for the PRN output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single value to the channel.
	Send(value uint8) error
}
