// profile.go defines the driver profile ids.

package driver

import (
	"fmt"
)

// Profile is the driver profile identifier:
//
//	bits 24..31: codec family (1 AVC, 2 HEVC)
//	bits  8..23: constraint flags
//	bits  0..7:  profile_idc
//
// A value with only the family bits set is a family marker, not a profile
// the hardware can be configured with.
type Profile uint32

const (
	profileFamilyShift = 24
	profileFlagsShift  = 8

	ProfileUnknown = Profile(0)
	ProfileAVC     = Profile(1 << profileFamilyShift)
	ProfileHEVC    = Profile(2 << profileFamilyShift)
)

// AVC constraint_set flags.
const (
	avcConstraintSet1 = 1 << 1
	avcConstraintSet3 = 1 << 3
	avcConstraintSet4 = 1 << 4
	avcConstraintSet5 = 1 << 5
)

// AVC profile_idc values.
const (
	avcIdcBaseline = 66
	avcIdcMain     = 77
	avcIdcHigh     = 100
	avcIdcHigh10   = 110
	avcIdcHigh422  = 122
)

const (
	ProfileAVCCBaseline    = ProfileAVC | avcConstraintSet1<<profileFlagsShift | avcIdcBaseline
	ProfileAVCMain         = ProfileAVC | avcIdcMain
	ProfileAVCHigh         = ProfileAVC | avcIdcHigh
	ProfileAVCHigh10       = ProfileAVC | avcIdcHigh10
	ProfileAVCHigh422      = ProfileAVC | avcIdcHigh422
	ProfileAVCProgHigh     = ProfileAVC | avcConstraintSet4<<profileFlagsShift | avcIdcHigh
	ProfileAVCCHigh        = ProfileAVC | (avcConstraintSet4|avcConstraintSet5)<<profileFlagsShift | avcIdcHigh
	ProfileAVCHigh10Intra  = ProfileAVC | avcConstraintSet3<<profileFlagsShift | avcIdcHigh10
	ProfileAVCHigh422Intra = ProfileAVC | avcConstraintSet3<<profileFlagsShift | avcIdcHigh422
)

// HEVC range extension constraint flags.
const (
	hevcMax10Bit   = 1 << 0
	hevcMax8Bit    = 1 << 1
	hevcMax422     = 1 << 2
	hevcMax420     = 1 << 3
	hevcIntra      = 1 << 4
	hevcOnePicture = 1 << 5
)

// HEVC general_profile_idc values.
const (
	hevcIdcMain      = 1
	hevcIdcMain10    = 2
	hevcIdcMainStill = 3
	hevcIdcRExt      = 4
)

const (
	ProfileHEVCMain            = ProfileHEVC | hevcIdcMain
	ProfileHEVCMain10          = ProfileHEVC | hevcIdcMain10
	ProfileHEVCMainStill       = ProfileHEVC | hevcOnePicture<<profileFlagsShift | hevcIdcMainStill
	ProfileHEVCMain422         = ProfileHEVC | (hevcMax8Bit|hevcMax422)<<profileFlagsShift | hevcIdcRExt
	ProfileHEVCMain422_10      = ProfileHEVC | (hevcMax10Bit|hevcMax422)<<profileFlagsShift | hevcIdcRExt
	ProfileHEVCMainIntra       = ProfileHEVC | (hevcMax8Bit|hevcMax420|hevcIntra)<<profileFlagsShift | hevcIdcRExt
	ProfileHEVCMain10Intra     = ProfileHEVC | (hevcMax10Bit|hevcMax420|hevcIntra)<<profileFlagsShift | hevcIdcRExt
	ProfileHEVCMain422Intra    = ProfileHEVC | (hevcMax8Bit|hevcMax422|hevcIntra)<<profileFlagsShift | hevcIdcRExt
	ProfileHEVCMain422_10Intra = ProfileHEVC | (hevcMax10Bit|hevcMax422|hevcIntra)<<profileFlagsShift | hevcIdcRExt
)

// Family returns the family marker of p.
func (p Profile) Family() Profile {
	return p &^ (1<<profileFamilyShift - 1)
}

// Idc returns the profile_idc part of p.
func (p Profile) Idc() uint8 {
	return uint8(p)
}

// IsFamily reports whether p is a bare family marker.
func (p Profile) IsFamily() bool {
	return p != ProfileUnknown && p == p.Family()
}

func (p Profile) IsAVC() bool {
	return p.Family() == ProfileAVC
}

func (p Profile) IsHEVC() bool {
	return p.Family() == ProfileHEVC
}

func (p Profile) String() string {
	switch p.Family() {
	case ProfileAVC:
		return fmt.Sprintf("AL_PROFILE_AVC(0x%06X)", uint32(p)&(1<<profileFamilyShift-1))
	case ProfileHEVC:
		return fmt.Sprintf("AL_PROFILE_HEVC(0x%06X)", uint32(p)&(1<<profileFamilyShift-1))
	}
	return fmt.Sprintf("AL_PROFILE_UNKNOWN(0x%08X)", uint32(p))
}
