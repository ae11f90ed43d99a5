package types

import (
	"fmt"
)

// Stride is a horizontal pitch in bytes and a vertical row count.
// Stores also use it for their alignment requirements.
type Stride struct {
	Horizontal int `yaml:"horizontal,omitempty"`
	Vertical   int `yaml:"vertical,omitempty"`
}

func (s Stride) String() string {
	return fmt.Sprintf("%d/%d", s.Horizontal, s.Vertical)
}

// Resolution is the picture dimension with the buffer stride and slice height.
//
// On Set the stride is a request: a store keeps the larger of the request
// and the hardware minimum.
type Resolution struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Stride Stride `yaml:"stride,omitempty"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d (stride %s)", r.Width, r.Height, r.Stride)
}

// Parse reads a "WIDTHxHEIGHT" string; the stride is reset.
func (r *Resolution) Parse(s string) error {
	var width, height int
	_, err := fmt.Sscanf(s, "%dx%d", &width, &height)
	if err != nil {
		return fmt.Errorf("unable to parse resolution '%s': %w", s, err)
	}
	*r = Resolution{Width: width, Height: height}
	return nil
}

// Format is a color subsampling and a bit depth.
type Format struct {
	Color    Color
	BitDepth int
}

func (f Format) String() string {
	return fmt.Sprintf("%s/%dbit", f.Color, f.BitDepth)
}

type FormatsSupported []Format

func (s FormatsSupported) String() string {
	return joinStrings(s)
}
