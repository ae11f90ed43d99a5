package convert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/types"
)

func TestProfileRoundTrip(t *testing.T) {
	for name, caps := range map[string]capability.Capabilities{
		"DecAVC":  capability.DecAVC,
		"DecHEVC": capability.DecHEVC,
		"EncAVC":  capability.EncAVC,
		"EncHEVC": capability.EncHEVC,
	} {
		caps := caps
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, pl := range caps.ProfileLevels.Items() {
				switch {
				case pl.Profile.AVC != types.AVCProfileUndefined:
					p := AVCProfileToDriver(pl.Profile.AVC)
					require.NotEqual(t, driver.ProfileUnknown, p, pl.String())
					require.Equal(t, pl.Profile.AVC, DriverToAVCProfile(p))
				default:
					p, highTier := HEVCProfileToDriver(pl.Profile.HEVC)
					require.True(t, p.IsHEVC(), pl.String())
					require.Equal(t, pl.Profile.HEVC, DriverToHEVCProfile(p, highTier))
				}
			}
		})
	}
}

func TestBaselineIsFamily(t *testing.T) {
	require.True(t, AVCProfileToDriver(types.AVCProfileBaseline).IsFamily())
	require.False(t, AVCProfileToDriver(types.AVCProfileConstrainedBaseline).IsFamily())
	require.Equal(t, types.AVCProfileBaseline, DriverToAVCProfile(driver.ProfileAVC))
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range capability.DecAVC.Formats.Items() {
		require.Equal(t, f.Color, ChromaToColor(ColorToChroma(f.Color)))
	}
	require.Equal(t, driver.ChromaMaxEnum, ColorToChroma(types.ColorUndefined))
	require.Equal(t, types.ColorUndefined, ChromaToColor(driver.ChromaMaxEnum))
}

func TestLoopFilter(t *testing.T) {
	for _, f := range capability.EncHEVC.LoopFilters.Items() {
		opts, ok := LoopFilterToDriver(f)
		require.True(t, ok, f.String())
		require.Equal(t, f, DriverToLoopFilter(opts))
	}

	opts, ok := LoopFilterToDriver(types.LoopFilterUndefined)
	require.False(t, ok)
	require.Zero(t, opts)
	require.Equal(t, driver.FilterOptionsInvalid, loopFilters.Forward(types.LoopFilterUndefined))
	require.Equal(t, types.LoopFilterUndefined, DriverToLoopFilter(driver.FilterOptionsInvalid))
	require.Equal(t, types.LoopFilterUndefined, DriverToLoopFilter(driver.FilterOptionsInvalid|driver.FilterOptionLF))
	require.Equal(t, types.LoopFilterUndefined, DriverToLoopFilter(driver.FilterOptionLFCrossSlice))
	require.Equal(t, types.LoopFilterDisable, DriverToLoopFilter(0))
}

func TestSentinels(t *testing.T) {
	type testCase struct {
		got  any
		want any
	}
	for idx, tc := range []testCase{
		{EntropyCodingToDriver(types.EntropyCodingUndefined), driver.EntropyModeMaxEnum},
		{DriverToEntropyCoding(driver.EntropyModeMaxEnum), types.EntropyCodingUndefined},
		{SequencePictureModeToDriver(types.SequencePictureModeUndefined), driver.SequenceModeMaxEnum},
		{DriverToSequencePictureMode(driver.SequenceModeMaxEnum), types.SequencePictureModeUndefined},
		{DecodedPictureBufferToDriver(types.DecodedPictureBufferUndefined), driver.DPBModeMaxEnum},
		{DriverToDecodedPictureBuffer(driver.DPBModeMaxEnum), types.DecodedPictureBufferUndefined},
		{DecodeUnitToDriver(types.DecodeUnitUndefined), driver.DecUnitMaxEnum},
		{DriverToDecodeUnit(driver.DecUnitMaxEnum), types.DecodeUnitUndefined},
		{RateControlToDriver(types.RateControlUndefined), driver.RCModeMaxEnum},
		{GopControlToDriver(types.GopControlUndefined), driver.GopModeMaxEnum},
		{CompressionToCodec(types.CompressionUnused), driver.CodecInvalid},
		{AVCProfileToDriver(types.AVCProfileUndefined), driver.ProfileUnknown},
		{DriverToHEVCProfile(driver.ProfileAVCMain, false), types.HEVCProfileUndefined},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, v := range []types.SequencePictureMode{types.SequencePictureModeUnknown, types.SequencePictureModeFrame, types.SequencePictureModeField} {
		require.Equal(t, v, DriverToSequencePictureMode(SequencePictureModeToDriver(v)))
	}
	for _, v := range []types.DecodedPictureBuffer{types.DecodedPictureBufferNormal, types.DecodedPictureBufferLowReference} {
		require.Equal(t, v, DriverToDecodedPictureBuffer(DecodedPictureBufferToDriver(v)))
	}
	for _, v := range []types.DecodeUnit{types.DecodeUnitFrame, types.DecodeUnitSlice} {
		require.Equal(t, v, DriverToDecodeUnit(DecodeUnitToDriver(v)))
	}
	for _, v := range capability.EncAVC.EntropyCodings.Items() {
		require.Equal(t, v, DriverToEntropyCoding(EntropyCodingToDriver(v)))
	}
	for _, v := range capability.EncAVC.RateControls.Items() {
		require.Equal(t, v, DriverToRateControl(RateControlToDriver(v)))
	}
	for _, v := range capability.EncAVC.GopControls.Items() {
		require.Equal(t, v, DriverToGopControl(GopControlToDriver(v)))
	}
}
