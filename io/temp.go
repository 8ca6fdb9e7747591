package io

import (
	"iter"
)

// Temporary captures PRN values in memory, up to Capacity of them.
// Values are handed back in the order they were printed.
type Temporary struct {
	Capacity int // Most values held before Send fails.

	ReadIndex  int     // Slot of the oldest held value.
	WriteIndex int     // Slot the next printed value lands in.
	Size       int     // Values held.
	Data       []uint8 // Backing slots, allocated on first use.
}

var _ Channel = (*Temporary)(nil)

// Rewind drops every held value.
func (temp *Temporary) Rewind() {
	temp.ReadIndex, temp.WriteIndex, temp.Size = 0, 0, 0
	temp.Data = make([]uint8, temp.Capacity)
}

// Receive drains held values, oldest first.
func (temp *Temporary) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for ; temp.Size > 0; temp.Size-- {
			value := temp.Data[temp.ReadIndex]
			temp.ReadIndex = (temp.ReadIndex + 1) % temp.Capacity
			if !yield(value) {
				temp.Size--
				return
			}
		}
	}
}

// Send holds one printed value.
func (temp *Temporary) Send(value uint8) (err error) {
	switch {
	case temp.Size >= temp.Capacity:
		err = ErrChannelFull
		return
	case len(temp.Data) != temp.Capacity:
		temp.Data = make([]uint8, temp.Capacity)
	}

	temp.Data[temp.WriteIndex] = value
	temp.WriteIndex = (temp.WriteIndex + 1) % temp.Capacity
	temp.Size++

	return
}
