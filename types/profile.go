// profile.go defines the codec profiles and the profile level pair.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// AVCProfile is an H.264 profile as seen by the component layer.
type AVCProfile int

const (
	AVCProfileUndefined = AVCProfile(iota)
	AVCProfileBaseline
	AVCProfileConstrainedBaseline
	AVCProfileMain
	AVCProfileHigh
	AVCProfileHigh10
	AVCProfileHigh422
	AVCProfileProgressiveHigh
	AVCProfileConstrainedHigh
	AVCProfileHigh10Intra
	AVCProfileHigh422Intra
	endOfAVCProfile
)

var avcProfileNames = []string{
	"",
	"baseline",
	"constrained_baseline",
	"main",
	"high",
	"high10",
	"high422",
	"progressive_high",
	"constrained_high",
	"high10_intra",
	"high422_intra",
}

func (p AVCProfile) String() string { return enumString(p, avcProfileNames) }
func ParseAVCProfile(s string) (AVCProfile, error) {
	return parseEnum(s, endOfAVCProfile)
}

// HEVCProfile is an H.265 profile together with its tier.
//
// Every profile has a main-tier value immediately followed by its high-tier value.
type HEVCProfile int

const (
	HEVCProfileUndefined = HEVCProfile(iota)
	HEVCProfileMain
	HEVCProfileMainHighTier
	HEVCProfileMain10
	HEVCProfileMain10HighTier
	HEVCProfileMainStill
	HEVCProfileMainStillHighTier
	HEVCProfileMain422
	HEVCProfileMain422HighTier
	HEVCProfileMain422_10
	HEVCProfileMain422_10HighTier
	HEVCProfileMainIntra
	HEVCProfileMainIntraHighTier
	HEVCProfileMain10Intra
	HEVCProfileMain10IntraHighTier
	HEVCProfileMain422Intra
	HEVCProfileMain422IntraHighTier
	HEVCProfileMain422_10Intra
	HEVCProfileMain422_10IntraHighTier
	endOfHEVCProfile
)

var hevcProfileNames = []string{
	"",
	"main", "main_high_tier",
	"main10", "main10_high_tier",
	"main_still", "main_still_high_tier",
	"main422", "main422_high_tier",
	"main422_10", "main422_10_high_tier",
	"main_intra", "main_intra_high_tier",
	"main10_intra", "main10_intra_high_tier",
	"main422_intra", "main422_intra_high_tier",
	"main422_10_intra", "main422_10_intra_high_tier",
}

func (p HEVCProfile) String() string { return enumString(p, hevcProfileNames) }
func ParseHEVCProfile(s string) (HEVCProfile, error) {
	return parseEnum(s, endOfHEVCProfile)
}

func (p HEVCProfile) isDefined() bool {
	return p > HEVCProfileUndefined && p < endOfHEVCProfile
}

// IsHighTier reports whether p is a high-tier variant.
func (p HEVCProfile) IsHighTier() bool {
	return p.isDefined() && (p-1)%2 == 1
}

// MainTier returns the main-tier variant of p.
func (p HEVCProfile) MainTier() HEVCProfile {
	if p.IsHighTier() {
		return p - 1
	}
	return p
}

// WithTier returns the variant of p on the requested tier.
func (p HEVCProfile) WithTier(highTier bool) HEVCProfile {
	if !p.isDefined() {
		return HEVCProfileUndefined
	}
	p = p.MainTier()
	if highTier {
		return p + 1
	}
	return p
}

// Profile holds the profile of whichever codec the store serves; the other field stays undefined.
type Profile struct {
	AVC  AVCProfile
	HEVC HEVCProfile
}

func (p Profile) String() string {
	switch {
	case p.AVC != AVCProfileUndefined:
		return p.AVC.String()
	case p.HEVC != HEVCProfileUndefined:
		return p.HEVC.String()
	}
	return "undefined"
}

// ProfileLevel is a profile and a level. Levels are level_idc values
// (10 is level 1.0, 51 is level 5.1); 9 stands for AVC level 1b.
type ProfileLevel struct {
	Profile Profile
	Level   int
}

func (pl ProfileLevel) String() string {
	return fmt.Sprintf("%s@%s", pl.Profile, LevelString(pl.Level))
}

const levelIdc1b = 9

// LevelString formats a level_idc value as a dotted level.
func LevelString(level int) string {
	if level == levelIdc1b {
		return "1b"
	}
	return fmt.Sprintf("%d.%d", level/10, level%10)
}

// ParseLevel accepts "5.1", "51" and "1b".
func ParseLevel(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "1b" {
		return levelIdc1b, nil
	}
	major, minor, hasDot := strings.Cut(s, ".")
	if !hasDot {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("unable to parse level '%s': %w", s, err)
		}
		return v, nil
	}
	ma, err := strconv.Atoi(major)
	if err != nil {
		return 0, fmt.Errorf("unable to parse level '%s': %w", s, err)
	}
	mi, err := strconv.Atoi(minor)
	if err != nil || mi > 9 {
		return 0, fmt.Errorf("unable to parse level '%s': invalid minor part", s)
	}
	return ma*10 + mi, nil
}

type ProfileLevelsSupported []ProfileLevel

func (s ProfileLevelsSupported) String() string {
	return joinStrings(s)
}

func joinStrings[T fmt.Stringer](s []T) string {
	items := make([]string, 0, len(s))
	for _, item := range s {
		items = append(items, item.String())
	}
	return "[" + strings.Join(items, " ") + "]"
}
