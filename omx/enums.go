// Package omx holds the OpenMAX IL vocabulary the component layer speaks:
// the enum values and parameter blocks of the video extensions, and their
// mapping to package types.
package omx

import (
	"fmt"
)

// Bool is OMX_BOOL.
type Bool uint32

const (
	False = Bool(0)
	True  = Bool(1)
)

func (b Bool) String() string {
	if b == False {
		return "OMX_FALSE"
	}
	return "OMX_TRUE"
}

// vendorStart is the first value of the vendor extension range of any OMX enum.
const vendorStart = 0x7F000000

// unused is the enum "Max" value, also used for values without a counterpart.
const unused = 0x7FFFFFFF

// AVCProfile is OMX_VIDEO_AVCPROFILETYPE; the standard values are bit flags.
type AVCProfile uint32

const (
	AVCProfileBaseline = AVCProfile(0x01)
	AVCProfileMain     = AVCProfile(0x02)
	AVCProfileExtended = AVCProfile(0x04)
	AVCProfileHigh     = AVCProfile(0x08)
	AVCProfileHigh10   = AVCProfile(0x10)
	AVCProfileHigh422  = AVCProfile(0x20)
	AVCProfileHigh444  = AVCProfile(0x40)

	AVCProfileConstrainedBaseline = AVCProfile(vendorStart + iota - 6)
	AVCProfileProgressiveHigh
	AVCProfileConstrainedHigh
	AVCProfileHigh10Intra
	AVCProfileHigh422Intra

	AVCProfileUnused = AVCProfile(unused)
)

func (p AVCProfile) String() string { return fmt.Sprintf("AVCProfile(0x%X)", uint32(p)) }

// AVCLevel is OMX_VIDEO_AVCLEVELTYPE, one bit per level.
type AVCLevel uint32

const (
	AVCLevel1 = AVCLevel(1 << iota)
	AVCLevel1b
	AVCLevel11
	AVCLevel12
	AVCLevel13
	AVCLevel2
	AVCLevel21
	AVCLevel22
	AVCLevel3
	AVCLevel31
	AVCLevel32
	AVCLevel4
	AVCLevel41
	AVCLevel42
	AVCLevel5
	AVCLevel51
	AVCLevel52

	AVCLevelUnused = AVCLevel(unused)
)

func (l AVCLevel) String() string { return fmt.Sprintf("AVCLevel(0x%X)", uint32(l)) }

// HEVCProfile is the HEVC profile of the video extensions; the tier is
// carried by the level.
type HEVCProfile uint32

const (
	HEVCProfileMain      = HEVCProfile(0x01)
	HEVCProfileMain10    = HEVCProfile(0x02)
	HEVCProfileMainStill = HEVCProfile(0x04)

	HEVCProfileMain422 = HEVCProfile(vendorStart + iota - 2)
	HEVCProfileMain422_10
	HEVCProfileMainIntra
	HEVCProfileMain10Intra
	HEVCProfileMain422Intra
	HEVCProfileMain422_10Intra

	HEVCProfileUnused = HEVCProfile(unused)
)

func (p HEVCProfile) String() string { return fmt.Sprintf("HEVCProfile(0x%X)", uint32(p)) }

// HEVCLevel is the HEVC level, one bit per level and tier.
type HEVCLevel uint32

const (
	HEVCMainTierLevel1 = HEVCLevel(1 << iota)
	HEVCHighTierLevel1
	HEVCMainTierLevel2
	HEVCHighTierLevel2
	HEVCMainTierLevel21
	HEVCHighTierLevel21
	HEVCMainTierLevel3
	HEVCHighTierLevel3
	HEVCMainTierLevel31
	HEVCHighTierLevel31
	HEVCMainTierLevel4
	HEVCHighTierLevel4
	HEVCMainTierLevel41
	HEVCHighTierLevel41
	HEVCMainTierLevel5
	HEVCHighTierLevel5
	HEVCMainTierLevel51
	HEVCHighTierLevel51
	HEVCMainTierLevel52
	HEVCHighTierLevel52
	HEVCMainTierLevel6
	HEVCHighTierLevel6
	HEVCMainTierLevel61
	HEVCHighTierLevel61
	HEVCMainTierLevel62
	HEVCHighTierLevel62

	HEVCLevelUnused = HEVCLevel(unused)
)

func (l HEVCLevel) String() string { return fmt.Sprintf("HEVCLevel(0x%X)", uint32(l)) }

// IsHighTier reports whether l is a high tier level.
func (l HEVCLevel) IsHighTier() bool {
	return l != HEVCLevelUnused && l&(HEVCHighTierLevel1|HEVCHighTierLevel2|HEVCHighTierLevel21|
		HEVCHighTierLevel3|HEVCHighTierLevel31|HEVCHighTierLevel4|HEVCHighTierLevel41|
		HEVCHighTierLevel5|HEVCHighTierLevel51|HEVCHighTierLevel52|
		HEVCHighTierLevel6|HEVCHighTierLevel61|HEVCHighTierLevel62) != 0
}

// AVCLoopFilter is OMX_VIDEO_AVCLOOPFILTERTYPE.
type AVCLoopFilter uint32

const (
	AVCLoopFilterEnable = AVCLoopFilter(iota)
	AVCLoopFilterDisable
	AVCLoopFilterDisableSliceBoundary

	AVCLoopFilterUnused = AVCLoopFilter(unused)
)

func (f AVCLoopFilter) String() string {
	switch f {
	case AVCLoopFilterEnable:
		return "enable"
	case AVCLoopFilterDisable:
		return "disable"
	case AVCLoopFilterDisableSliceBoundary:
		return "disable_slice_boundary"
	}
	return fmt.Sprintf("AVCLoopFilter(0x%X)", uint32(f))
}

// HEVCLoopFilter is the HEVC loop filter mode of the video extensions.
type HEVCLoopFilter uint32

const (
	HEVCLoopFilterEnable = HEVCLoopFilter(iota)
	HEVCLoopFilterDisable
	HEVCLoopFilterDisableCrossSlice
	HEVCLoopFilterDisableCrossTile
	HEVCLoopFilterDisableSliceAndTile

	HEVCLoopFilterUnused = HEVCLoopFilter(unused)
)

func (f HEVCLoopFilter) String() string {
	switch f {
	case HEVCLoopFilterEnable:
		return "enable"
	case HEVCLoopFilterDisable:
		return "disable"
	case HEVCLoopFilterDisableCrossSlice:
		return "disable_cross_slice"
	case HEVCLoopFilterDisableCrossTile:
		return "disable_cross_tile"
	case HEVCLoopFilterDisableSliceAndTile:
		return "disable_slice_and_tile"
	}
	return fmt.Sprintf("HEVCLoopFilter(0x%X)", uint32(f))
}

// PictureType is a bit of OMX_VIDEO_PICTURETYPE.
type PictureType uint32

const (
	PictureTypeI = PictureType(0x01)
	PictureTypeP = PictureType(0x02)
	PictureTypeB = PictureType(0x04)
)
