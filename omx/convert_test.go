package omx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/types"
)

func TestProfileLevelRoundTrip(t *testing.T) {
	for name, caps := range map[string]capability.Capabilities{
		"DecAVC":  capability.DecAVC,
		"DecHEVC": capability.DecHEVC,
		"EncAVC":  capability.EncAVC,
		"EncHEVC": capability.EncHEVC,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, pl := range caps.ProfileLevels.Items() {
				if pl.Profile.AVC != types.AVCProfileUndefined {
					p, l := AVCProfileLevelFromModule(pl)
					require.NotEqual(t, AVCProfileUnused, p, pl.String())
					require.NotEqual(t, AVCLevelUnused, l, pl.String())
					require.Equal(t, pl, AVCProfileLevelToModule(p, l))
					continue
				}
				p, l := HEVCProfileLevelFromModule(pl)
				require.NotEqual(t, HEVCProfileUnused, p, pl.String())
				require.NotEqual(t, HEVCLevelUnused, l, pl.String())
				require.Equal(t, pl.Profile.HEVC.IsHighTier(), l.IsHighTier(), pl.String())
				require.Equal(t, pl, HEVCProfileLevelToModule(p, l))
			}
		})
	}
}

func TestHEVCTierInLevel(t *testing.T) {
	t.Parallel()
	pl := HEVCProfileLevelToModule(HEVCProfileMain10, HEVCHighTierLevel51)
	require.Equal(t, types.ProfileLevel{
		Profile: types.Profile{HEVC: types.HEVCProfileMain10HighTier},
		Level:   51,
	}, pl)

	p, l := HEVCProfileLevelFromModule(types.ProfileLevel{
		Profile: types.Profile{HEVC: types.HEVCProfileMainHighTier},
		Level:   41,
	})
	require.Equal(t, HEVCProfileMain, p)
	require.Equal(t, HEVCHighTierLevel41, l)
	require.Equal(t, HEVCLevel(0x2000), l)
	require.Equal(t, HEVCLevel(0x40000), HEVCMainTierLevel52)
}

func TestUnmapped(t *testing.T) {
	t.Parallel()
	pl := AVCProfileLevelToModule(AVCProfileHigh444, AVCLevel(0x3))
	require.Equal(t, types.AVCProfileUndefined, pl.Profile.AVC)
	require.Zero(t, pl.Level)

	p, l := AVCProfileLevelFromModule(types.ProfileLevel{Level: 53})
	require.Equal(t, AVCProfileUnused, p)
	require.Equal(t, AVCLevelUnused, l)

	require.Equal(t, types.LoopFilterUndefined, AVCLoopFilterToModule(AVCLoopFilterUnused))
	require.Equal(t, AVCLoopFilterUnused, AVCLoopFilterFromModule(types.LoopFilterEnableCrossTile))
	require.Equal(t, HEVCLoopFilterUnused, HEVCLoopFilterFromModule(types.LoopFilterUndefined))
}

func TestVendorValues(t *testing.T) {
	t.Parallel()
	require.Equal(t, AVCProfile(0x7F000001), AVCProfileConstrainedBaseline)
	require.Equal(t, AVCProfile(0x7F000005), AVCProfileHigh422Intra)
	require.Equal(t, HEVCProfile(0x7F000001), HEVCProfileMain422)
	require.Equal(t, HEVCProfile(0x7F000006), HEVCProfileMain422_10Intra)
	require.Equal(t, AVCLevel(0x10000), AVCLevel52)
	require.Equal(t, AVCLevel(0x02), AVCLevel1b)
}

func TestLoopFilter(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		omx    AVCLoopFilter
		module types.LoopFilter
	}{
		{AVCLoopFilterEnable, types.LoopFilterEnableCrossSlice},
		{AVCLoopFilterDisable, types.LoopFilterDisable},
		{AVCLoopFilterDisableSliceBoundary, types.LoopFilterEnable},
	} {
		require.Equal(t, tc.module, AVCLoopFilterToModule(tc.omx), tc.omx.String())
		require.Equal(t, tc.omx, AVCLoopFilterFromModule(tc.module), tc.module.String())
	}

	for _, tc := range []struct {
		omx    HEVCLoopFilter
		module types.LoopFilter
	}{
		{HEVCLoopFilterEnable, types.LoopFilterEnableCrossSliceAndTile},
		{HEVCLoopFilterDisable, types.LoopFilterDisable},
		{HEVCLoopFilterDisableCrossSlice, types.LoopFilterEnableCrossTile},
		{HEVCLoopFilterDisableCrossTile, types.LoopFilterEnableCrossSlice},
		{HEVCLoopFilterDisableSliceAndTile, types.LoopFilterEnable},
	} {
		require.Equal(t, tc.module, HEVCLoopFilterToModule(tc.omx), tc.omx.String())
		require.Equal(t, tc.omx, HEVCLoopFilterFromModule(tc.module), tc.module.String())
	}
}

func TestGop(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		bFrames, pFrames uint32
		b, length        int
	}{
		{0, 0, 0, 1},
		{0, 29, 0, 30},
		{20, 9, 2, 30},
		{30, 29, 1, 60},
		{48, 11, 4, 60},
	} {
		t.Run(fmt.Sprintf("B%d_P%d", tc.bFrames, tc.pFrames), func(t *testing.T) {
			t.Parallel()
			b, length := GopToModule(tc.bFrames, tc.pFrames)
			require.Equal(t, tc.b, b)
			require.Equal(t, tc.length, length)

			nB, nP := GopFromModule(types.Gop{B: b, Length: length})
			require.Equal(t, tc.bFrames, nB)
			require.Equal(t, tc.pFrames, nP)
		})
	}

	nB, nP := GopFromModule(types.Gop{})
	require.Zero(t, nB)
	require.Zero(t, nP)

	b, _ := GopToModule(0, ^uint32(0))
	require.Zero(t, b)
}

func TestBool(t *testing.T) {
	t.Parallel()
	require.True(t, BoolToModule(True))
	require.True(t, BoolToModule(Bool(2)))
	require.False(t, BoolToModule(False))
	require.Equal(t, True, BoolFromModule(true))
	require.Equal(t, False, BoolFromModule(false))
	require.Equal(t, types.EntropyCodingCABAC, EntropyCodingToModule(True))
	require.Equal(t, types.EntropyCodingCAVLC, EntropyCodingToModule(False))
	require.Equal(t, False, EntropyCodingFromModule(types.EntropyCodingCAVLC))
	require.Equal(t, "OMX_TRUE", True.String())
}
