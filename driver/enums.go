// Package driver describes the native settings representation of the
// codec driver/firmware: the settings records a device binding programs
// the hardware with, and the hardware minimum computations the driver
// library exposes.
package driver

import (
	"fmt"
)

type ChromaMode uint8

const (
	Chroma400 = ChromaMode(iota)
	Chroma420
	Chroma422
	Chroma444
	ChromaMaxEnum
)

func (c ChromaMode) String() string {
	switch c {
	case Chroma400:
		return "CHROMA_4_0_0"
	case Chroma420:
		return "CHROMA_4_2_0"
	case Chroma422:
		return "CHROMA_4_2_2"
	case Chroma444:
		return "CHROMA_4_4_4"
	}
	return "CHROMA_MAX_ENUM"
}

// SampleRatio returns the size of a picture relative to its luma plane as num/den.
func (c ChromaMode) SampleRatio() (num, den int) {
	switch c {
	case Chroma400:
		return 1, 1
	case Chroma420:
		return 3, 2
	case Chroma422:
		return 2, 1
	case Chroma444:
		return 3, 1
	}
	return 0, 1
}

type EntropyMode uint8

const (
	EntropyModeCABAC = EntropyMode(iota)
	EntropyModeCAVLC
	EntropyModeMaxEnum
)

type DPBMode uint8

const (
	DPBModeNormal = DPBMode(iota)
	DPBModeLowRef
	DPBModeMaxEnum
)

// DecUnit is what the decoder consumes per decode call.
type DecUnit uint8

const (
	DecUnitAccessUnit = DecUnit(iota)
	DecUnitVCLNAL
	DecUnitMaxEnum
)

type FBStorageMode uint8

const (
	FBStorageModeRaster = FBStorageMode(iota)
	FBStorageModeTile32x4
	FBStorageModeTile64x4
	FBStorageModeMaxEnum
)

type Codec uint8

const (
	CodecAVC = Codec(iota)
	CodecHEVC
	CodecInvalid
)

func (c Codec) String() string {
	switch c {
	case CodecAVC:
		return "AVC"
	case CodecHEVC:
		return "HEVC"
	}
	return fmt.Sprintf("CODEC_INVALID_%d", uint8(c))
}

type SequenceMode uint8

const (
	SequenceModeUnknown = SequenceMode(iota)
	SequenceModeProgressive
	SequenceModeInterlaced
	SequenceModeMaxEnum
)

// FilterOptions is the loop filter bitmask of the encoder channel.
type FilterOptions uint32

const (
	FilterOptionLF FilterOptions = 1 << iota
	FilterOptionLFCrossSlice
	FilterOptionLFCrossTile

	// FilterOptionsInvalid marks a value without a loop filter setting.
	FilterOptionsInvalid FilterOptions = 1 << 31
)

type RCMode uint8

const (
	RCModeConstQP = RCMode(iota)
	RCModeCBR
	RCModeVBR
	RCModeLowLatency
	RCModeMaxEnum
)

type GopMode uint8

const (
	GopModeDefault = GopMode(iota)
	GopModePyramidal
	GopModeLowDelayP
	GopModeLowDelayB
	GopModeMaxEnum
)
