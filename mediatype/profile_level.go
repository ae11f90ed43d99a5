// profile_level.go converts and validates profile levels for the stores.

package mediatype

import (
	"fmt"

	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/convert"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/types"
)

func checkProfileLevel(pl types.ProfileLevel, supported capability.Set[types.ProfileLevel], p driver.Profile) error {
	if !supported.Has(pl) {
		return fmt.Errorf("profile-level %s is not supported", pl)
	}
	if p == driver.ProfileUnknown || p.IsFamily() {
		return fmt.Errorf("profile %s does not map to a concrete hardware profile (%s)", pl.Profile, p)
	}
	return nil
}

// avcProfileLevelToDriver validates an AVC profile-level and returns its driver profile.
func avcProfileLevelToDriver(pl types.ProfileLevel, supported capability.Set[types.ProfileLevel]) (driver.Profile, error) {
	if pl.Profile.HEVC != types.HEVCProfileUndefined {
		return driver.ProfileUnknown, fmt.Errorf("%s is not an AVC profile", pl.Profile)
	}
	p := convert.AVCProfileToDriver(pl.Profile.AVC)
	if err := checkProfileLevel(pl, supported, p); err != nil {
		return driver.ProfileUnknown, err
	}
	return p, nil
}

func avcProfileLevel(p driver.Profile, level int) types.ProfileLevel {
	return types.ProfileLevel{
		Profile: types.Profile{AVC: convert.DriverToAVCProfile(p)},
		Level:   level,
	}
}

// hevcProfileLevelToDriver validates an HEVC profile-level and returns its driver profile and tier.
func hevcProfileLevelToDriver(pl types.ProfileLevel, supported capability.Set[types.ProfileLevel]) (driver.Profile, bool, error) {
	if pl.Profile.AVC != types.AVCProfileUndefined {
		return driver.ProfileUnknown, false, fmt.Errorf("%s is not an HEVC profile", pl.Profile)
	}
	p, highTier := convert.HEVCProfileToDriver(pl.Profile.HEVC)
	if err := checkProfileLevel(pl, supported, p); err != nil {
		return driver.ProfileUnknown, false, err
	}
	return p, highTier, nil
}

func hevcProfileLevel(p driver.Profile, highTier bool, level int) types.ProfileLevel {
	return types.ProfileLevel{
		Profile: types.Profile{HEVC: convert.DriverToHEVCProfile(p, highTier)},
		Level:   level,
	}
}
