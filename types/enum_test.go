package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	c, err := ParseColor(" 422 ")
	require.NoError(t, err)
	require.Equal(t, Color422, c)

	l, err := ParseLoopFilter("ENABLE_CROSS_SLICE")
	require.NoError(t, err)
	require.Equal(t, LoopFilterEnableCrossSlice, l)

	p, err := ParseHEVCProfile("main10_high_tier")
	require.NoError(t, err)
	require.Equal(t, HEVCProfileMain10HighTier, p)

	comp, err := ParseCompression("hevc")
	require.NoError(t, err)
	require.Equal(t, CompressionHEVC, comp)

	for _, s := range []string{"", "undefined", "411"} {
		_, err := ParseColor(s)
		require.Error(t, err, s)
	}
	_, err = ParseGopControl("open")
	require.Error(t, err)

	require.Equal(t, "undefined", Color(100).String())
	require.Equal(t, "undefined", EntropyCodingUndefined.String())
}

func TestHEVCTier(t *testing.T) {
	for _, tc := range []struct {
		profile  HEVCProfile
		highTier bool
		main     HEVCProfile
	}{
		{HEVCProfileMain, false, HEVCProfileMain},
		{HEVCProfileMainHighTier, true, HEVCProfileMain},
		{HEVCProfileMain422_10IntraHighTier, true, HEVCProfileMain422_10Intra},
		{HEVCProfileUndefined, false, HEVCProfileUndefined},
	} {
		t.Run(tc.profile.String(), func(t *testing.T) {
			require.Equal(t, tc.highTier, tc.profile.IsHighTier())
			require.Equal(t, tc.main, tc.profile.MainTier())
			require.Equal(t, tc.main, tc.profile.WithTier(false))
		})
	}
	require.Equal(t, HEVCProfileMain10HighTier, HEVCProfileMain10.WithTier(true))
	require.Equal(t, HEVCProfileUndefined, HEVCProfileUndefined.WithTier(true))
	require.Equal(t, HEVCProfileUndefined, endOfHEVCProfile.WithTier(true))
}

func TestLevel(t *testing.T) {
	for s, expected := range map[string]int{
		"5.1": 51,
		"51":  51,
		"1b":  9,
		"1B":  9,
		"6.2": 62,
		"1":   1,
	} {
		level, err := ParseLevel(s)
		require.NoError(t, err, s)
		require.Equal(t, expected, level, s)
	}
	for _, s := range []string{"x", "5.x", "5.10", ""} {
		_, err := ParseLevel(s)
		require.Error(t, err, s)
	}
	require.Equal(t, "1b", LevelString(9))
	require.Equal(t, "4.1", LevelString(41))
	require.Equal(t, "high@4.1", ProfileLevel{Profile: Profile{AVC: AVCProfileHigh}, Level: 41}.String())
}

func TestIndexes(t *testing.T) {
	seen := map[string]struct{}{}
	for _, idx := range Indexes() {
		name := idx.String()
		require.NotContains(t, seen, name)
		seen[name] = struct{}{}

		p, err := NewParam(idx)
		require.NoError(t, err, name)
		require.Equal(t, idx, p.Index())
		require.False(t, IsNil(p))
	}
	require.Len(t, seen, int(endOfIndex)-1)
	require.Equal(t, "SETTINGS_INDEX_RESOLUTION", IndexResolution.String())
	require.Equal(t, "SETTINGS_INDEX_UNKNOWN_-1", Index(-1).String())

	_, err := NewParam(IndexUndefined)
	require.Error(t, err)

	require.True(t, IsNil(nil))
	require.True(t, IsNil((*Resolution)(nil)))
}

func TestErrorCodeOf(t *testing.T) {
	for _, tc := range []struct {
		err      error
		expected ErrorCode
	}{
		{nil, ErrorCodeNone},
		{ErrBadParameter{Index: IndexGop}, ErrorCodeBadParameter},
		{ErrBadIndex{Index: IndexGop}, ErrorCodeBadIndex},
		{ErrNotImplemented{Index: IndexGop}, ErrorCodeNotImplemented},
		{fmt.Errorf("wrapped: %w", ErrBadIndex{Index: IndexGop}), ErrorCodeBadIndex},
		{errors.Join(errors.New("x"), ErrNotImplemented{}), ErrorCodeNotImplemented},
		{errors.New("unknown"), ErrorCodeBadParameter},
	} {
		require.Equal(t, tc.expected, ErrorCodeOf(tc.err), fmt.Sprint(tc.err))
	}

	inner := errors.New("odd width")
	err := ErrBadParameter{Index: IndexResolution, Err: inner}
	require.ErrorIs(t, err, inner)
	require.Equal(t, "bad parameter for SETTINGS_INDEX_RESOLUTION: odd width", err.Error())
	require.Equal(t, "ERROR_SETTINGS_BAD_INDEX", ErrorCodeBadIndex.String())
}
