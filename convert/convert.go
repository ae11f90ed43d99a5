// convert.go defines the module to driver conversion tables.

// Package convert maps the module vocabulary (package types) to the driver
// vocabulary (package driver) and back.
//
// Every function is total: a value without a counterpart maps to the
// sentinel of the target vocabulary (the "Undefined" value of a module enum,
// the "MaxEnum" value of a driver enum). Nothing here validates; that is
// the job of the settings stores.
package convert

import (
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/internal/bimap"
	"github.com/xaionaro-go/vcusettings/types"
)

var colors = bimap.New(types.ColorUndefined, driver.ChromaMaxEnum,
	bimap.Pair[types.Color, driver.ChromaMode]{types.Color400, driver.Chroma400},
	bimap.Pair[types.Color, driver.ChromaMode]{types.Color420, driver.Chroma420},
	bimap.Pair[types.Color, driver.ChromaMode]{types.Color422, driver.Chroma422},
	bimap.Pair[types.Color, driver.ChromaMode]{types.Color444, driver.Chroma444},
)

func ColorToChroma(c types.Color) driver.ChromaMode { return colors.Forward(c) }
func ChromaToColor(c driver.ChromaMode) types.Color { return colors.Backward(c) }

// The plain baseline profile is the AVC family marker on the driver side.
var avcProfiles = bimap.New(types.AVCProfileUndefined, driver.ProfileUnknown,
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileBaseline, driver.ProfileAVC},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileConstrainedBaseline, driver.ProfileAVCCBaseline},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileMain, driver.ProfileAVCMain},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileHigh, driver.ProfileAVCHigh},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileHigh10, driver.ProfileAVCHigh10},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileHigh422, driver.ProfileAVCHigh422},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileProgressiveHigh, driver.ProfileAVCProgHigh},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileConstrainedHigh, driver.ProfileAVCCHigh},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileHigh10Intra, driver.ProfileAVCHigh10Intra},
	bimap.Pair[types.AVCProfile, driver.Profile]{types.AVCProfileHigh422Intra, driver.ProfileAVCHigh422Intra},
)

func AVCProfileToDriver(p types.AVCProfile) driver.Profile { return avcProfiles.Forward(p) }
func DriverToAVCProfile(p driver.Profile) types.AVCProfile { return avcProfiles.Backward(p) }

// hevcProfiles is keyed by main-tier profiles; the tier is carried separately.
var hevcProfiles = bimap.New(types.HEVCProfileUndefined, driver.ProfileUnknown,
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMain, driver.ProfileHEVCMain},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMain10, driver.ProfileHEVCMain10},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMainStill, driver.ProfileHEVCMainStill},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMain422, driver.ProfileHEVCMain422},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMain422_10, driver.ProfileHEVCMain422_10},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMainIntra, driver.ProfileHEVCMainIntra},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMain10Intra, driver.ProfileHEVCMain10Intra},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMain422Intra, driver.ProfileHEVCMain422Intra},
	bimap.Pair[types.HEVCProfile, driver.Profile]{types.HEVCProfileMain422_10Intra, driver.ProfileHEVCMain422_10Intra},
)

// HEVCProfileToDriver splits a module HEVC profile into the driver profile and the tier.
func HEVCProfileToDriver(p types.HEVCProfile) (driver.Profile, bool) {
	return hevcProfiles.Forward(p.MainTier()), p.IsHighTier()
}

// DriverToHEVCProfile joins a driver profile and a tier into a module HEVC profile.
func DriverToHEVCProfile(p driver.Profile, highTier bool) types.HEVCProfile {
	return hevcProfiles.Backward(p).WithTier(highTier)
}

var entropyModes = bimap.New(types.EntropyCodingUndefined, driver.EntropyModeMaxEnum,
	bimap.Pair[types.EntropyCoding, driver.EntropyMode]{types.EntropyCodingCABAC, driver.EntropyModeCABAC},
	bimap.Pair[types.EntropyCoding, driver.EntropyMode]{types.EntropyCodingCAVLC, driver.EntropyModeCAVLC},
)

func EntropyCodingToDriver(e types.EntropyCoding) driver.EntropyMode { return entropyModes.Forward(e) }
func DriverToEntropyCoding(e driver.EntropyMode) types.EntropyCoding { return entropyModes.Backward(e) }

// The zero bitmask is a valid value (loop filter disabled), so the driver side
// sentinel is a bit outside of the loop filter bits. Inconsistent bitmasks
// such as "cross slice" without "loop filter" have no module value.
var loopFilters = bimap.New(types.LoopFilterUndefined, driver.FilterOptionsInvalid,
	bimap.Pair[types.LoopFilter, driver.FilterOptions]{types.LoopFilterDisable, 0},
	bimap.Pair[types.LoopFilter, driver.FilterOptions]{types.LoopFilterEnable, driver.FilterOptionLF},
	bimap.Pair[types.LoopFilter, driver.FilterOptions]{types.LoopFilterEnableCrossSlice, driver.FilterOptionLF | driver.FilterOptionLFCrossSlice},
	bimap.Pair[types.LoopFilter, driver.FilterOptions]{types.LoopFilterEnableCrossTile, driver.FilterOptionLF | driver.FilterOptionLFCrossTile},
	bimap.Pair[types.LoopFilter, driver.FilterOptions]{types.LoopFilterEnableCrossSliceAndTile, driver.FilterOptionLF | driver.FilterOptionLFCrossSlice | driver.FilterOptionLFCrossTile},
)

const loopFilterMask = driver.FilterOptionLF | driver.FilterOptionLFCrossSlice | driver.FilterOptionLFCrossTile

// LoopFilterToDriver returns the loop filter bits and whether f has a driver counterpart.
func LoopFilterToDriver(f types.LoopFilter) (driver.FilterOptions, bool) {
	return loopFilters.LookupForward(f)
}

// DriverToLoopFilter reads the loop filter bits of opts, ignoring other filter options.
func DriverToLoopFilter(opts driver.FilterOptions) types.LoopFilter {
	if opts&driver.FilterOptionsInvalid != 0 {
		return types.LoopFilterUndefined
	}
	return loopFilters.Backward(opts & loopFilterMask)
}

var sequenceModes = bimap.New(types.SequencePictureModeUndefined, driver.SequenceModeMaxEnum,
	bimap.Pair[types.SequencePictureMode, driver.SequenceMode]{types.SequencePictureModeUnknown, driver.SequenceModeUnknown},
	bimap.Pair[types.SequencePictureMode, driver.SequenceMode]{types.SequencePictureModeFrame, driver.SequenceModeProgressive},
	bimap.Pair[types.SequencePictureMode, driver.SequenceMode]{types.SequencePictureModeField, driver.SequenceModeInterlaced},
)

func SequencePictureModeToDriver(m types.SequencePictureMode) driver.SequenceMode {
	return sequenceModes.Forward(m)
}

func DriverToSequencePictureMode(m driver.SequenceMode) types.SequencePictureMode {
	return sequenceModes.Backward(m)
}

var dpbModes = bimap.New(types.DecodedPictureBufferUndefined, driver.DPBModeMaxEnum,
	bimap.Pair[types.DecodedPictureBuffer, driver.DPBMode]{types.DecodedPictureBufferNormal, driver.DPBModeNormal},
	bimap.Pair[types.DecodedPictureBuffer, driver.DPBMode]{types.DecodedPictureBufferLowReference, driver.DPBModeLowRef},
)

func DecodedPictureBufferToDriver(d types.DecodedPictureBuffer) driver.DPBMode {
	return dpbModes.Forward(d)
}

func DriverToDecodedPictureBuffer(d driver.DPBMode) types.DecodedPictureBuffer {
	return dpbModes.Backward(d)
}

var decodeUnits = bimap.New(types.DecodeUnitUndefined, driver.DecUnitMaxEnum,
	bimap.Pair[types.DecodeUnit, driver.DecUnit]{types.DecodeUnitFrame, driver.DecUnitAccessUnit},
	bimap.Pair[types.DecodeUnit, driver.DecUnit]{types.DecodeUnitSlice, driver.DecUnitVCLNAL},
)

func DecodeUnitToDriver(u types.DecodeUnit) driver.DecUnit { return decodeUnits.Forward(u) }
func DriverToDecodeUnit(u driver.DecUnit) types.DecodeUnit { return decodeUnits.Backward(u) }

var rateControls = bimap.New(types.RateControlUndefined, driver.RCModeMaxEnum,
	bimap.Pair[types.RateControl, driver.RCMode]{types.RateControlConstantQuantization, driver.RCModeConstQP},
	bimap.Pair[types.RateControl, driver.RCMode]{types.RateControlCBR, driver.RCModeCBR},
	bimap.Pair[types.RateControl, driver.RCMode]{types.RateControlVBR, driver.RCModeVBR},
	bimap.Pair[types.RateControl, driver.RCMode]{types.RateControlLowLatency, driver.RCModeLowLatency},
)

func RateControlToDriver(r types.RateControl) driver.RCMode { return rateControls.Forward(r) }
func DriverToRateControl(r driver.RCMode) types.RateControl { return rateControls.Backward(r) }

var gopModes = bimap.New(types.GopControlUndefined, driver.GopModeMaxEnum,
	bimap.Pair[types.GopControl, driver.GopMode]{types.GopControlDefault, driver.GopModeDefault},
	bimap.Pair[types.GopControl, driver.GopMode]{types.GopControlPyramidal, driver.GopModePyramidal},
	bimap.Pair[types.GopControl, driver.GopMode]{types.GopControlLowDelayP, driver.GopModeLowDelayP},
	bimap.Pair[types.GopControl, driver.GopMode]{types.GopControlLowDelayB, driver.GopModeLowDelayB},
)

func GopControlToDriver(g types.GopControl) driver.GopMode { return gopModes.Forward(g) }
func DriverToGopControl(g driver.GopMode) types.GopControl { return gopModes.Backward(g) }

var codecs = bimap.New(types.CompressionUndefined, driver.CodecInvalid,
	bimap.Pair[types.Compression, driver.Codec]{types.CompressionAVC, driver.CodecAVC},
	bimap.Pair[types.Compression, driver.Codec]{types.CompressionHEVC, driver.CodecHEVC},
)

// CompressionToCodec returns the driver codec id of a compressed stream.
func CompressionToCodec(c types.Compression) driver.Codec { return codecs.Forward(c) }
