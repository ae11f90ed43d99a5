// tables.go declares the capability tables of each codec and direction.

package capability

import (
	"github.com/xaionaro-go/vcusettings/types"
)

// Capabilities is what one codec/direction supports.
type Capabilities struct {
	ProfileLevels        Set[types.ProfileLevel]
	Formats              Set[types.Format]
	VideoModes           Set[types.VideoMode]
	SequencePictureModes Set[types.SequencePictureMode]
	EntropyCodings       Set[types.EntropyCoding]
	LoopFilters          Set[types.LoopFilter]
	RateControls         Set[types.RateControl]
	GopControls          Set[types.GopControl]
}

func lessProfileLevel(a, b types.ProfileLevel) bool {
	if a.Profile.AVC != b.Profile.AVC {
		return a.Profile.AVC < b.Profile.AVC
	}
	if a.Profile.HEVC != b.Profile.HEVC {
		return a.Profile.HEVC < b.Profile.HEVC
	}
	return a.Level < b.Level
}

func lessFormat(a, b types.Format) bool {
	if a.Color != b.Color {
		return a.Color < b.Color
	}
	return a.BitDepth < b.BitDepth
}

// NewProfileLevels builds the profile/level pairs: every profile with every level.
func NewProfileLevels(profiles []types.Profile, levels []int) Set[types.ProfileLevel] {
	return NewSet(lessProfileLevel, crossProfileLevels(profiles, levels)...)
}

func crossProfileLevels(profiles []types.Profile, levels []int) []types.ProfileLevel {
	result := make([]types.ProfileLevel, 0, len(profiles)*len(levels))
	for _, profile := range profiles {
		for _, level := range levels {
			result = append(result, types.ProfileLevel{Profile: profile, Level: level})
		}
	}
	return result
}

// NewHEVCProfileLevels pairs main-tier profiles with every level and
// high-tier profiles with the levels that define a high tier.
func NewHEVCProfileLevels(profiles []types.HEVCProfile, levels []int, highTierLevels []int) Set[types.ProfileLevel] {
	var mainTier, highTier []types.Profile
	for _, p := range profiles {
		mainTier = append(mainTier, types.Profile{HEVC: p.WithTier(false)})
		highTier = append(highTier, types.Profile{HEVC: p.WithTier(true)})
	}
	pairs := crossProfileLevels(mainTier, levels)
	pairs = append(pairs, crossProfileLevels(highTier, highTierLevels)...)
	return NewSet(lessProfileLevel, pairs...)
}

// NewFormats builds the joint color/bit depth pairs.
func NewFormats(colors []types.Color, bitDepths []int) Set[types.Format] {
	formats := make([]types.Format, 0, len(colors)*len(bitDepths))
	for _, color := range colors {
		for _, bitDepth := range bitDepths {
			formats = append(formats, types.Format{Color: color, BitDepth: bitDepth})
		}
	}
	return NewSet(lessFormat, formats...)
}

func avcProfiles(profiles ...types.AVCProfile) []types.Profile {
	result := make([]types.Profile, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, types.Profile{AVC: p})
	}
	return result
}

var (
	colors    = []types.Color{types.Color400, types.Color420, types.Color422}
	bitDepths = []int{8, 10}

	avcDecLevels = []int{9, 10, 11, 12, 13, 20, 21, 22, 30, 31, 32, 40, 41, 42, 50, 51}
	avcEncLevels = []int{10, 11, 12, 13, 20, 21, 22, 30, 31, 32, 40, 41, 42, 50, 51, 52}

	hevcLevels         = []int{10, 20, 21, 30, 31, 40, 41, 50, 51, 52}
	hevcHighTierLevels = []int{40, 41, 50, 51, 52}

	hevcProfiles = []types.HEVCProfile{
		types.HEVCProfileMain,
		types.HEVCProfileMain10,
		types.HEVCProfileMainStill,
		types.HEVCProfileMain422,
		types.HEVCProfileMain422_10,
		types.HEVCProfileMainIntra,
		types.HEVCProfileMain10Intra,
		types.HEVCProfileMain422Intra,
		types.HEVCProfileMain422_10Intra,
	}

	interlacedVideoModes = []types.VideoMode{
		types.VideoModeProgressive,
		types.VideoModeAlternateTopBottomField,
		types.VideoModeAlternateBottomTopField,
	}

	rateControls = []types.RateControl{
		types.RateControlConstantQuantization,
		types.RateControlCBR,
		types.RateControlVBR,
		types.RateControlLowLatency,
	}

	gopControls = []types.GopControl{
		types.GopControlDefault,
		types.GopControlPyramidal,
		types.GopControlLowDelayP,
		types.GopControlLowDelayB,
	}
)

// DecAVC: the baseline profile is listed but is only a family marker for the
// hardware, which decodes constrained baseline streams.
var DecAVC = Capabilities{
	ProfileLevels: NewProfileLevels(avcProfiles(
		types.AVCProfileBaseline,
		types.AVCProfileConstrainedBaseline,
		types.AVCProfileMain,
		types.AVCProfileHigh,
		types.AVCProfileHigh10,
		types.AVCProfileHigh422,
		types.AVCProfileProgressiveHigh,
		types.AVCProfileConstrainedHigh,
		types.AVCProfileHigh10Intra,
		types.AVCProfileHigh422Intra,
	), avcDecLevels),
	Formats:    NewFormats(colors, bitDepths),
	VideoModes: NewOrderedSet(types.VideoModeProgressive),
}

var DecHEVC = Capabilities{
	ProfileLevels:        NewHEVCProfileLevels(hevcProfiles, hevcLevels, hevcHighTierLevels),
	Formats:              NewFormats(colors, bitDepths),
	VideoModes:           NewOrderedSet(interlacedVideoModes...),
	SequencePictureModes: NewOrderedSet(types.SequencePictureModeUnknown, types.SequencePictureModeFrame, types.SequencePictureModeField),
}

var EncAVC = Capabilities{
	ProfileLevels: NewProfileLevels(avcProfiles(
		types.AVCProfileConstrainedBaseline,
		types.AVCProfileMain,
		types.AVCProfileHigh,
		types.AVCProfileHigh10,
		types.AVCProfileHigh422,
		types.AVCProfileProgressiveHigh,
		types.AVCProfileConstrainedHigh,
		types.AVCProfileHigh10Intra,
		types.AVCProfileHigh422Intra,
	), avcEncLevels),
	Formats:        NewFormats(colors, bitDepths),
	VideoModes:     NewOrderedSet(types.VideoModeProgressive),
	EntropyCodings: NewOrderedSet(types.EntropyCodingCABAC, types.EntropyCodingCAVLC),
	LoopFilters:    NewOrderedSet(types.LoopFilterDisable, types.LoopFilterEnable, types.LoopFilterEnableCrossSlice),
	RateControls:   NewOrderedSet(rateControls...),
	GopControls:    NewOrderedSet(gopControls...),
}

var EncHEVC = Capabilities{
	ProfileLevels:  NewHEVCProfileLevels(hevcProfiles, hevcLevels, hevcHighTierLevels),
	Formats:        NewFormats(colors, bitDepths),
	VideoModes:     NewOrderedSet(interlacedVideoModes...),
	EntropyCodings: NewOrderedSet(types.EntropyCodingCABAC),
	LoopFilters: NewOrderedSet(
		types.LoopFilterDisable,
		types.LoopFilterEnable,
		types.LoopFilterEnableCrossSlice,
		types.LoopFilterEnableCrossTile,
		types.LoopFilterEnableCrossSliceAndTile,
	),
	RateControls: NewOrderedSet(rateControls...),
	GopControls:  NewOrderedSet(gopControls...),
}
