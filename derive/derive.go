// Package derive computes the quantities that follow from a settings record:
// stride, slice height, buffer counts and sizes, latency.
//
// Nothing here is cached by the stores; every Get recomputes from the
// current record so that no value goes stale after a Set.
package derive

import (
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/internal/xmath"
	"github.com/xaionaro-go/vcusettings/types"
)

const (
	// InputBufferCount is the fixed number of buffers on the input port (double buffering).
	InputBufferCount = 2

	encOutputBufferCount = 2
)

// Stride returns the byte pitch of a row: the larger of the hardware minimum
// and the request, both rounded up to the alignment.
func Stride(
	width, bitDepth int,
	mode driver.FBStorageMode,
	alignment int,
	requested int,
) int {
	minStride := xmath.RoundUp(driver.MinPitch(width, bitDepth, mode), alignment)
	return max(minStride, xmath.RoundUp(requested, alignment))
}

// SliceHeight returns the row count of a buffer: the larger of the hardware
// minimum and the request, both rounded up to the alignment.
func SliceHeight(height int, alignment int, requested int) int {
	minSliceHeight := xmath.RoundUp(driver.MinStrideHeight(height), alignment)
	return max(minSliceHeight, xmath.RoundUp(requested, alignment))
}

// DecOutputBufferCount is the number of pictures a decoder keeps in flight.
func DecOutputBufferCount(s driver.DecSettings) int {
	count := driver.MinOutputBuffersNeeded(s.Codec, s.Stream, s.StackSize, s.DPBMode)
	if s.DPBMode == driver.DPBModeLowRef {
		count -= s.StackSize
	}
	if s.DecUnit == driver.DecUnitVCLNAL {
		count = 1
	}
	return max(count, 1)
}

func DecBufferCounts(s driver.DecSettings) types.BufferCounts {
	return types.BufferCounts{
		Input:  InputBufferCount,
		Output: DecOutputBufferCount(s),
	}
}

// EncBufferCounts: every B-picture needs a reordering buffer on the bitstream side.
func EncBufferCounts(s driver.EncSettings) types.BufferCounts {
	return types.BufferCounts{
		Input:  InputBufferCount,
		Output: encOutputBufferCount + s.Channel.Gop.NumB,
	}
}

// PictureSize is the size in bytes of a raw picture buffer.
func PictureSize(stride types.Stride, chroma driver.ChromaMode) int {
	num, den := chroma.SampleRatio()
	return stride.Horizontal * stride.Vertical * num / den
}

func DecBufferSizes(s driver.DecSettings, stride types.Stride) types.BufferSizes {
	return types.BufferSizes{
		Input:  driver.MaxNALSize(s.Stream.Dim, s.Stream.Chroma, s.Stream.BitDepth),
		Output: PictureSize(stride, s.Stream.Chroma),
	}
}

func EncBufferSizes(s driver.EncSettings, stride types.Stride) types.BufferSizes {
	dim := driver.Dimension{Width: s.Channel.Width, Height: s.Channel.Height}
	return types.BufferSizes{
		Input:  PictureSize(stride, s.Channel.Chroma),
		Output: driver.MaxNALSize(dim, s.Channel.Chroma, s.Channel.BitDepth),
	}
}

// Latency returns ceil(bufferCount * 1000 / (frameRate / clkRatio)) in
// milliseconds, where frameRate is in thousandths of frames per clkRatio
// ticks. It is 0 when the frame rate is unknown.
func Latency(bufferCount, frameRate, clkRatio int) types.Latency {
	if frameRate <= 0 || clkRatio <= 0 {
		return 0
	}
	return types.Latency(xmath.DivCeil(bufferCount*1000*clkRatio, frameRate))
}

func DecLatency(s driver.DecSettings) types.Latency {
	return Latency(DecOutputBufferCount(s), s.FrameRate, s.ClkRatio)
}

// EncLatency accounts for the B-pictures held back plus the one being encoded.
func EncLatency(s driver.EncSettings) types.Latency {
	return Latency(s.Channel.Gop.NumB+1, s.Channel.RC.FrameRate, s.Channel.RC.ClkRatio)
}

func EntropyBuffer(s driver.DecSettings) types.InternalEntropyBuffer {
	return types.InternalEntropyBuffer(s.StackSize)
}

// BufferMode tells whether the decoder is configured to output pictures as early as possible.
func BufferMode(s driver.DecSettings) types.BufferMode {
	if s.LowLatency || s.DecUnit == driver.DecUnitVCLNAL {
		return types.BufferModeLowLatency
	}
	return types.BufferModeNormal
}
