// convert.go maps OMX values to the module vocabulary and back.

package omx

import (
	"github.com/xaionaro-go/vcusettings/internal/bimap"
	"github.com/xaionaro-go/vcusettings/types"
)

func BoolToModule(b Bool) bool { return b != False }
func BoolFromModule(b bool) Bool {
	if b {
		return True
	}
	return False
}

func EntropyCodingToModule(cabac Bool) types.EntropyCoding {
	if BoolToModule(cabac) {
		return types.EntropyCodingCABAC
	}
	return types.EntropyCodingCAVLC
}

func EntropyCodingFromModule(e types.EntropyCoding) Bool {
	return BoolFromModule(e == types.EntropyCodingCABAC)
}

var avcProfiles = bimap.New(types.AVCProfileUndefined, AVCProfileUnused,
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileBaseline, AVCProfileBaseline},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileConstrainedBaseline, AVCProfileConstrainedBaseline},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileMain, AVCProfileMain},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileHigh, AVCProfileHigh},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileHigh10, AVCProfileHigh10},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileHigh422, AVCProfileHigh422},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileProgressiveHigh, AVCProfileProgressiveHigh},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileConstrainedHigh, AVCProfileConstrainedHigh},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileHigh10Intra, AVCProfileHigh10Intra},
	bimap.Pair[types.AVCProfile, AVCProfile]{types.AVCProfileHigh422Intra, AVCProfileHigh422Intra},
)

// avcLevels maps level_idc values; 9 is level 1b.
var avcLevels = bimap.New(0, AVCLevelUnused,
	bimap.Pair[int, AVCLevel]{10, AVCLevel1},
	bimap.Pair[int, AVCLevel]{9, AVCLevel1b},
	bimap.Pair[int, AVCLevel]{11, AVCLevel11},
	bimap.Pair[int, AVCLevel]{12, AVCLevel12},
	bimap.Pair[int, AVCLevel]{13, AVCLevel13},
	bimap.Pair[int, AVCLevel]{20, AVCLevel2},
	bimap.Pair[int, AVCLevel]{21, AVCLevel21},
	bimap.Pair[int, AVCLevel]{22, AVCLevel22},
	bimap.Pair[int, AVCLevel]{30, AVCLevel3},
	bimap.Pair[int, AVCLevel]{31, AVCLevel31},
	bimap.Pair[int, AVCLevel]{32, AVCLevel32},
	bimap.Pair[int, AVCLevel]{40, AVCLevel4},
	bimap.Pair[int, AVCLevel]{41, AVCLevel41},
	bimap.Pair[int, AVCLevel]{42, AVCLevel42},
	bimap.Pair[int, AVCLevel]{50, AVCLevel5},
	bimap.Pair[int, AVCLevel]{51, AVCLevel51},
	bimap.Pair[int, AVCLevel]{52, AVCLevel52},
)

func AVCProfileLevelToModule(p AVCProfile, l AVCLevel) types.ProfileLevel {
	return types.ProfileLevel{
		Profile: types.Profile{AVC: avcProfiles.Backward(p)},
		Level:   avcLevels.Backward(l),
	}
}

func AVCProfileLevelFromModule(pl types.ProfileLevel) (AVCProfile, AVCLevel) {
	return avcProfiles.Forward(pl.Profile.AVC), avcLevels.Forward(pl.Level)
}

// hevcProfiles holds the main tier profiles only.
var hevcProfiles = bimap.New(types.HEVCProfileUndefined, HEVCProfileUnused,
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMain, HEVCProfileMain},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMain10, HEVCProfileMain10},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMainStill, HEVCProfileMainStill},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMain422, HEVCProfileMain422},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMain422_10, HEVCProfileMain422_10},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMainIntra, HEVCProfileMainIntra},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMain10Intra, HEVCProfileMain10Intra},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMain422Intra, HEVCProfileMain422Intra},
	bimap.Pair[types.HEVCProfile, HEVCProfile]{types.HEVCProfileMain422_10Intra, HEVCProfileMain422_10Intra},
)

type tieredLevel struct {
	Level    int
	HighTier bool
}

var hevcLevels = newHEVCLevels(10, 20, 21, 30, 31, 40, 41, 50, 51, 52, 60, 61, 62)

// newHEVCLevels pairs the level_idc values in the order of the HEVCLevel
// bits: the main tier bit of a level is followed by its high tier bit.
func newHEVCLevels(levels ...int) bimap.Map[tieredLevel, HEVCLevel] {
	pairs := make([]bimap.Pair[tieredLevel, HEVCLevel], 0, 2*len(levels))
	for i, level := range levels {
		pairs = append(pairs,
			bimap.Pair[tieredLevel, HEVCLevel]{tieredLevel{level, false}, HEVCMainTierLevel1 << (2 * i)},
			bimap.Pair[tieredLevel, HEVCLevel]{tieredLevel{level, true}, HEVCHighTierLevel1 << (2 * i)},
		)
	}
	return bimap.New(tieredLevel{}, HEVCLevelUnused, pairs...)
}

func HEVCProfileLevelToModule(p HEVCProfile, l HEVCLevel) types.ProfileLevel {
	level := hevcLevels.Backward(l)
	return types.ProfileLevel{
		Profile: types.Profile{HEVC: hevcProfiles.Backward(p).WithTier(level.HighTier)},
		Level:   level.Level,
	}
}

func HEVCProfileLevelFromModule(pl types.ProfileLevel) (HEVCProfile, HEVCLevel) {
	return hevcProfiles.Forward(pl.Profile.HEVC.MainTier()),
		hevcLevels.Forward(tieredLevel{pl.Level, pl.Profile.HEVC.IsHighTier()})
}

var avcLoopFilters = bimap.New(types.LoopFilterUndefined, AVCLoopFilterUnused,
	bimap.Pair[types.LoopFilter, AVCLoopFilter]{types.LoopFilterEnableCrossSlice, AVCLoopFilterEnable},
	bimap.Pair[types.LoopFilter, AVCLoopFilter]{types.LoopFilterDisable, AVCLoopFilterDisable},
	bimap.Pair[types.LoopFilter, AVCLoopFilter]{types.LoopFilterEnable, AVCLoopFilterDisableSliceBoundary},
)

func AVCLoopFilterToModule(f AVCLoopFilter) types.LoopFilter { return avcLoopFilters.Backward(f) }
func AVCLoopFilterFromModule(f types.LoopFilter) AVCLoopFilter { return avcLoopFilters.Forward(f) }

var hevcLoopFilters = bimap.New(types.LoopFilterUndefined, HEVCLoopFilterUnused,
	bimap.Pair[types.LoopFilter, HEVCLoopFilter]{types.LoopFilterEnableCrossSliceAndTile, HEVCLoopFilterEnable},
	bimap.Pair[types.LoopFilter, HEVCLoopFilter]{types.LoopFilterDisable, HEVCLoopFilterDisable},
	bimap.Pair[types.LoopFilter, HEVCLoopFilter]{types.LoopFilterEnableCrossTile, HEVCLoopFilterDisableCrossSlice},
	bimap.Pair[types.LoopFilter, HEVCLoopFilter]{types.LoopFilterEnableCrossSlice, HEVCLoopFilterDisableCrossTile},
	bimap.Pair[types.LoopFilter, HEVCLoopFilter]{types.LoopFilterEnable, HEVCLoopFilterDisableSliceAndTile},
)

func HEVCLoopFilterToModule(f HEVCLoopFilter) types.LoopFilter { return hevcLoopFilters.Backward(f) }
func HEVCLoopFilterFromModule(f types.LoopFilter) HEVCLoopFilter { return hevcLoopFilters.Forward(f) }

// GopToModule turns the counts of B and P pictures between two I pictures
// into a GOP length and the number of consecutive B pictures.
func GopToModule(bFrames, pFrames uint32) (b, length int) {
	nb, np := uint64(bFrames), uint64(pFrames)
	return int(nb / (np + 1)), int(nb + np + 1)
}

// GopFromModule is the inverse of GopToModule for GOP lengths divisible by b+1.
func GopFromModule(g types.Gop) (bFrames, pFrames uint32) {
	if g.Length <= 0 {
		return 0, 0
	}
	b := max(g.B, 0)
	p := max(g.Length/(b+1)-1, 0)
	return uint32(g.Length - 1 - p), uint32(p)
}
