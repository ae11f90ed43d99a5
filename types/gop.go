package types

import (
	"fmt"
)

// Gop is the encoder group-of-pictures structure: Length pictures per GOP
// and B consecutive B-pictures between reference pictures.
type Gop struct {
	B      int
	Length int
	Mode   GopControl
}

func (g Gop) String() string {
	return fmt.Sprintf("%s(length:%d b:%d)", g.Mode, g.Length, g.B)
}

// Bitrate is the encoder rate control; bitrates are in kbit/s.
type Bitrate struct {
	Target int
	Max    int
	Mode   RateControl
}

func (b Bitrate) String() string {
	return fmt.Sprintf("%s(target:%dkbps max:%dkbps)", b.Mode, b.Target, b.Max)
}
