// buffer.go defines the buffer related field groups.

package types

import (
	"fmt"
)

type BufferHandles struct {
	Input  BufferHandleType
	Output BufferHandleType
}

func (h BufferHandles) String() string {
	return fmt.Sprintf("in:%s out:%s", h.Input, h.Output)
}

// BufferSizes are per-port buffer sizes in bytes.
type BufferSizes struct {
	Input  int
	Output int
}

func (s BufferSizes) String() string {
	return fmt.Sprintf("in:%d out:%d", s.Input, s.Output)
}

type BufferCounts struct {
	Input  int
	Output int
}

func (c BufferCounts) String() string {
	return fmt.Sprintf("in:%d out:%d", c.Input, c.Output)
}

// BufferBytesAlignments are per-port address alignments in bytes; 0 means none.
type BufferBytesAlignments struct {
	Input  int
	Output int
}

func (a BufferBytesAlignments) String() string {
	return fmt.Sprintf("in:%d out:%d", a.Input, a.Output)
}

// BufferContiguities tells whether a port needs physically contiguous buffers.
type BufferContiguities struct {
	Input  bool
	Output bool
}

func (c BufferContiguities) String() string {
	return fmt.Sprintf("in:%t out:%t", c.Input, c.Output)
}

type Mime struct {
	Mime        string
	Compression Compression
}

type Mimes struct {
	Input  Mime
	Output Mime
}

func (m Mimes) String() string {
	return fmt.Sprintf("in:%s(%s) out:%s(%s)", m.Input.Mime, m.Input.Compression, m.Output.Mime, m.Output.Compression)
}
