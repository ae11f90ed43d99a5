package types

import (
	"fmt"
)

// Clock is the frame rate of a channel: Framerate*1000/ClockRatio frames per second.
// A zero Framerate leaves the rate to the stream.
type Clock struct {
	Framerate  int `yaml:"framerate"`
	ClockRatio int `yaml:"clockratio"`
}

func (c Clock) String() string {
	return fmt.Sprintf("%d/%d", c.Framerate, c.ClockRatio)
}

// FrameRate returns the real frame rate.
func (c Clock) FrameRate() Rational {
	return Rational{
		Num: c.Framerate * 1000,
		Den: c.ClockRatio,
	}
}

// InternalEntropyBuffer is the depth of the decoder entropy stack, in pictures.
type InternalEntropyBuffer int

func (b InternalEntropyBuffer) String() string {
	return fmt.Sprintf("%d", int(b))
}

// Latency is the estimated pipeline buffering delay in milliseconds.
type Latency int

func (l Latency) String() string {
	return fmt.Sprintf("%dms", int(l))
}

// SubFrame enables feeding the decoder slice by slice.
type SubFrame bool

func (s SubFrame) String() string {
	return fmt.Sprintf("%t", bool(s))
}

type ConstrainedIntraPrediction bool

func (c ConstrainedIntraPrediction) String() string {
	return fmt.Sprintf("%t", bool(c))
}

type VideoModesSupported []VideoMode

func (s VideoModesSupported) String() string {
	return joinStrings(s)
}

type SequencePictureModesSupported []SequencePictureMode

func (s SequencePictureModesSupported) String() string {
	return joinStrings(s)
}
