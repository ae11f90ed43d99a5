// compute.go implements the minimum sizes the hardware requires.

package driver

import (
	"github.com/xaionaro-go/vcusettings/internal/xmath"
)

const (
	mbSize          = 16
	maxDPBFrames    = 16
	hevcMaxDPBPics  = 6
	nalHeaderMargin = 4096
	nalSizeAlign    = 32
	tileHeight      = 4
	minHeightAlign  = 8
)

// MinPitch returns the minimum number of bytes per row (per tile row for tiled modes)
// of a frame buffer.
func MinPitch(width, bitDepth int, mode FBStorageMode) int {
	switch mode {
	case FBStorageModeRaster:
		if bitDepth > 8 {
			// three 10-bit samples are packed in 4 bytes
			return xmath.DivCeil(width, 3) * 4
		}
		return width
	case FBStorageModeTile32x4:
		return xmath.RoundUp(width, 32) * tileHeight * storedBits(bitDepth) / 8
	case FBStorageModeTile64x4:
		return xmath.RoundUp(width, 64) * tileHeight * storedBits(bitDepth) / 8
	}
	return 0
}

func storedBits(bitDepth int) int {
	if bitDepth > 8 {
		return 10
	}
	return 8
}

// MinStrideHeight returns the minimum number of rows of a frame buffer.
func MinStrideHeight(height int) int {
	return xmath.RoundUp(height, minHeightAlign)
}

// level_idc -> MaxDpbMbs (H.264 Table A-1).
var avcMaxDPBMbs = map[int]int{
	9:  396,
	10: 396,
	11: 900,
	12: 2376,
	13: 2376,
	20: 2376,
	21: 4752,
	22: 8100,
	30: 8100,
	31: 18000,
	32: 20480,
	40: 32768,
	41: 32768,
	42: 34816,
	50: 110400,
	51: 184320,
	52: 184320,
	60: 696320,
	61: 696320,
	62: 696320,
}

// level_idc -> MaxLumaPs (H.265 Table A.8).
var hevcMaxLumaPs = map[int]int{
	10: 36864,
	20: 122880,
	21: 245760,
	30: 552960,
	31: 983040,
	40: 2228224,
	41: 2228224,
	50: 8912896,
	51: 8912896,
	52: 8912896,
	60: 35651584,
	61: 35651584,
	62: 35651584,
}

// MaxDPBSize returns the number of pictures the DPB may hold for the stream.
// Unknown levels get the largest DPB.
func MaxDPBSize(codec Codec, stream StreamSettings, mode DPBMode) int {
	if mode == DPBModeLowRef {
		return 1
	}
	width, height := stream.Dim.Width, stream.Dim.Height
	if width <= 0 || height <= 0 {
		return maxDPBFrames
	}

	switch codec {
	case CodecAVC:
		maxDPBMbs, ok := avcMaxDPBMbs[stream.Level]
		if !ok {
			return maxDPBFrames
		}
		frameMbs := xmath.DivCeil(width, mbSize) * xmath.DivCeil(height, mbSize)
		return xmath.Clamp(maxDPBMbs/frameMbs, 1, maxDPBFrames)
	case CodecHEVC:
		maxLumaPs, ok := hevcMaxLumaPs[stream.Level]
		if !ok {
			return maxDPBFrames
		}
		picSize := width * height
		switch {
		case picSize <= maxLumaPs>>2:
			return min(4*hevcMaxDPBPics, maxDPBFrames)
		case picSize <= maxLumaPs>>1:
			return min(2*hevcMaxDPBPics, maxDPBFrames)
		case picSize <= (3*maxLumaPs)>>2:
			return min(4*hevcMaxDPBPics/3, maxDPBFrames)
		}
		return hevcMaxDPBPics
	}
	return maxDPBFrames
}

// MinOutputBuffersNeeded returns how many frame buffers a decoder channel needs:
// the DPB, the pictures in the entropy stack and the one being output.
func MinOutputBuffersNeeded(codec Codec, stream StreamSettings, stackSize int, mode DPBMode) int {
	return MaxDPBSize(codec, stream, mode) + stackSize + 1
}

// MaxNALSize returns the worst case size of a coded picture: a PCM picture
// plus room for parameter sets and slice headers.
func MaxNALSize(dim Dimension, chroma ChromaMode, bitDepth int) int {
	num, den := chroma.SampleRatio()
	pcmBits := dim.Width * dim.Height * num / den * bitDepth
	return xmath.RoundUp(xmath.DivCeil(pcmBits, 8)+nalHeaderMargin, nalSizeAlign)
}
