package types

import (
	"fmt"
	"strings"
)

type enum interface {
	~int
	fmt.Stringer
}

// parseEnum finds the value in (Undefined, end) whose String matches s.
func parseEnum[T enum](s string, end T) (T, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for v := T(1); v < end; v++ {
		if v.String() == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %T value '%s'", zero, s)
}

func enumString[T ~int](v T, names []string) string {
	if v <= 0 || int(v) >= len(names) {
		return "undefined"
	}
	return names[v]
}

// Color is the chroma subsampling of the pictures.
type Color int

const (
	ColorUndefined = Color(iota)
	Color400
	Color420
	Color422
	Color444
	endOfColor
)

var colorNames = []string{"", "400", "420", "422", "444"}

func (c Color) String() string { return enumString(c, colorNames) }
func ParseColor(s string) (Color, error) {
	return parseEnum(s, endOfColor)
}

// EntropyCoding is the bitstream entropy method.
type EntropyCoding int

const (
	EntropyCodingUndefined = EntropyCoding(iota)
	EntropyCodingCABAC
	EntropyCodingCAVLC
	endOfEntropyCoding
)

var entropyCodingNames = []string{"", "cabac", "cavlc"}

func (e EntropyCoding) String() string { return enumString(e, entropyCodingNames) }
func ParseEntropyCoding(s string) (EntropyCoding, error) {
	return parseEnum(s, endOfEntropyCoding)
}

// LoopFilter selects the deblocking filter and which boundaries it may cross.
//
// LoopFilterEnable filters inside slices and tiles only.
type LoopFilter int

const (
	LoopFilterUndefined = LoopFilter(iota)
	LoopFilterDisable
	LoopFilterEnable
	LoopFilterEnableCrossSlice
	LoopFilterEnableCrossTile
	LoopFilterEnableCrossSliceAndTile
	endOfLoopFilter
)

var loopFilterNames = []string{"", "disable", "enable", "enable_cross_slice", "enable_cross_tile", "enable_cross_slice_and_tile"}

func (f LoopFilter) String() string { return enumString(f, loopFilterNames) }
func ParseLoopFilter(s string) (LoopFilter, error) {
	return parseEnum(s, endOfLoopFilter)
}

// SequencePictureMode tells whether the stream carries frames or fields.
// SequencePictureModeUnknown lets the decoder find out from the stream.
type SequencePictureMode int

const (
	SequencePictureModeUndefined = SequencePictureMode(iota)
	SequencePictureModeUnknown
	SequencePictureModeFrame
	SequencePictureModeField
	endOfSequencePictureMode
)

var sequencePictureModeNames = []string{"", "unknown", "frame", "field"}

func (m SequencePictureMode) String() string { return enumString(m, sequencePictureModeNames) }
func ParseSequencePictureMode(s string) (SequencePictureMode, error) {
	return parseEnum(s, endOfSequencePictureMode)
}

// DecodedPictureBuffer is the DPB management mode of a decoder.
type DecodedPictureBuffer int

const (
	DecodedPictureBufferUndefined = DecodedPictureBuffer(iota)
	DecodedPictureBufferNormal
	DecodedPictureBufferLowReference
	endOfDecodedPictureBuffer
)

var decodedPictureBufferNames = []string{"", "normal", "low_reference"}

func (d DecodedPictureBuffer) String() string { return enumString(d, decodedPictureBufferNames) }
func ParseDecodedPictureBuffer(s string) (DecodedPictureBuffer, error) {
	return parseEnum(s, endOfDecodedPictureBuffer)
}

// DecodeUnit is the granularity at which a decoder is fed.
type DecodeUnit int

const (
	DecodeUnitUndefined = DecodeUnit(iota)
	DecodeUnitFrame
	DecodeUnitSlice
	endOfDecodeUnit
)

var decodeUnitNames = []string{"", "frame", "slice"}

func (u DecodeUnit) String() string { return enumString(u, decodeUnitNames) }
func ParseDecodeUnit(s string) (DecodeUnit, error) {
	return parseEnum(s, endOfDecodeUnit)
}

// VideoMode is the scan type of the raw pictures.
type VideoMode int

const (
	VideoModeUndefined = VideoMode(iota)
	VideoModeProgressive
	VideoModeAlternateTopBottomField
	VideoModeAlternateBottomTopField
	endOfVideoMode
)

var videoModeNames = []string{"", "progressive", "alternate_top_bottom_field", "alternate_bottom_top_field"}

func (m VideoMode) String() string { return enumString(m, videoModeNames) }
func ParseVideoMode(s string) (VideoMode, error) {
	return parseEnum(s, endOfVideoMode)
}

// BufferHandleType is how a port exchanges buffers.
type BufferHandleType int

const (
	BufferHandleTypeUndefined = BufferHandleType(iota)
	BufferHandleTypeCharPtr
	BufferHandleTypeFD
	endOfBufferHandleType
)

var bufferHandleTypeNames = []string{"", "char_ptr", "fd"}

func (t BufferHandleType) String() string { return enumString(t, bufferHandleTypeNames) }
func ParseBufferHandleType(s string) (BufferHandleType, error) {
	return parseEnum(s, endOfBufferHandleType)
}

// Compression is the coding of the data flowing through a port.
type Compression int

const (
	CompressionUndefined = Compression(iota)
	CompressionUnused
	CompressionAVC
	CompressionHEVC
	endOfCompression
)

var compressionNames = []string{"", "unused", "avc", "hevc"}

func (c Compression) String() string { return enumString(c, compressionNames) }
func ParseCompression(s string) (Compression, error) {
	return parseEnum(s, endOfCompression)
}

// RateControl is the encoder rate control mode.
type RateControl int

const (
	RateControlUndefined = RateControl(iota)
	RateControlConstantQuantization
	RateControlCBR
	RateControlVBR
	RateControlLowLatency
	endOfRateControl
)

var rateControlNames = []string{"", "const_qp", "cbr", "vbr", "low_latency"}

func (r RateControl) String() string { return enumString(r, rateControlNames) }
func ParseRateControl(s string) (RateControl, error) {
	return parseEnum(s, endOfRateControl)
}

// GopControl is the encoder GOP structure.
type GopControl int

const (
	GopControlUndefined = GopControl(iota)
	GopControlDefault
	GopControlPyramidal
	GopControlLowDelayP
	GopControlLowDelayB
	endOfGopControl
)

var gopControlNames = []string{"", "default", "pyramidal", "low_delay_p", "low_delay_b"}

func (g GopControl) String() string { return enumString(g, gopControlNames) }
func ParseGopControl(s string) (GopControl, error) {
	return parseEnum(s, endOfGopControl)
}

// BufferMode tells how a decoder hands out pictures: whole frames after
// reordering, or as soon as possible in low latency mode.
type BufferMode int

const (
	BufferModeUndefined = BufferMode(iota)
	BufferModeNormal
	BufferModeLowLatency
	endOfBufferMode
)

var bufferModeNames = []string{"", "normal", "low_latency"}

func (m BufferMode) String() string { return enumString(m, bufferModeNames) }
func ParseBufferMode(s string) (BufferMode, error) {
	return parseEnum(s, endOfBufferMode)
}
