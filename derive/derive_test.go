package derive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/types"
)

func decSettings() driver.DecSettings {
	return driver.DecSettings{
		Stream: driver.StreamSettings{
			Dim:      driver.Dimension{Width: 176, Height: 144},
			Chroma:   driver.Chroma420,
			BitDepth: 8,
			Level:    10,
		},
		StackSize: 5,
		FrameRate: 30000,
		ClkRatio:  1000,
		DecUnit:   driver.DecUnitAccessUnit,
		DPBMode:   driver.DPBModeNormal,
		Codec:     driver.CodecAVC,
	}
}

func TestStride(t *testing.T) {
	for _, tc := range []struct {
		width     int
		bitDepth  int
		mode      driver.FBStorageMode
		alignment int
		requested int
		expected  int
	}{
		{1920, 8, driver.FBStorageModeRaster, 64, 0, 1920},
		{1918, 8, driver.FBStorageModeRaster, 64, 0, 1920},
		{1920, 8, driver.FBStorageModeRaster, 64, 2000, 2048},
		{1920, 10, driver.FBStorageModeRaster, 64, 0, 2560},
		{176, 8, driver.FBStorageModeRaster, 64, 0, 192},
		{1920, 8, driver.FBStorageModeTile64x4, 64, 0, 7680},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%d_%d_%d_%d", tc.width, tc.bitDepth, tc.mode, tc.requested), func(t *testing.T) {
			t.Parallel()
			stride := Stride(tc.width, tc.bitDepth, tc.mode, tc.alignment, tc.requested)
			require.Equal(t, tc.expected, stride)
			require.Zero(t, stride%tc.alignment)
			require.GreaterOrEqual(t, stride, driver.MinPitch(tc.width, tc.bitDepth, tc.mode))
		})
	}
}

func TestSliceHeight(t *testing.T) {
	require.Equal(t, 1088, SliceHeight(1080, 16, 0))
	require.Equal(t, 1088, SliceHeight(1080, 64, 0))
	require.Equal(t, 144, SliceHeight(144, 16, 100))
	require.Equal(t, 1216, SliceHeight(1080, 64, 1200))
}

func TestLatencyScenario(t *testing.T) {
	s := decSettings()

	// 99 macroblocks per picture, 396 MaxDpbMbs at level 1.0: 4 pictures of DPB.
	require.Equal(t, 4, driver.MaxDPBSize(s.Codec, s.Stream, s.DPBMode))
	count := DecOutputBufferCount(s)
	require.Equal(t, 4+5+1, count)
	require.Equal(t, types.Latency((count*1000+29)/30), DecLatency(s))
	require.Equal(t, types.Latency(334), DecLatency(s))
}

func TestDecOutputBufferCount(t *testing.T) {
	s := decSettings()
	s.DPBMode = driver.DPBModeLowRef
	require.Equal(t, 1+5+1-5, DecOutputBufferCount(s))

	s = decSettings()
	s.DecUnit = driver.DecUnitVCLNAL
	require.Equal(t, 1, DecOutputBufferCount(s))
	require.Equal(t, types.BufferModeLowLatency, BufferMode(s))

	require.Equal(t, types.BufferCounts{Input: 2, Output: 10}, DecBufferCounts(decSettings()))
	require.Equal(t, types.BufferModeNormal, BufferMode(decSettings()))
}

func TestLatencyUnknownRate(t *testing.T) {
	require.Zero(t, Latency(10, 0, 1000))
	require.Zero(t, Latency(10, 30000, 0))
	require.Equal(t, types.Latency(17), Latency(1, 60000, 1000))
}

func TestEncoder(t *testing.T) {
	s := driver.EncSettings{
		Channel: driver.ChannelParam{
			Width:    1920,
			Height:   1080,
			Chroma:   driver.Chroma420,
			BitDepth: 8,
			Gop:      driver.GopParam{Length: 30, NumB: 2},
			RC:       driver.RCParam{FrameRate: 60000, ClkRatio: 1000},
		},
	}
	require.Equal(t, types.BufferCounts{Input: 2, Output: 4}, EncBufferCounts(s))
	require.Equal(t, types.Latency(50), EncLatency(s))

	sizes := EncBufferSizes(s, types.Stride{Horizontal: 1920, Vertical: 1088})
	require.Equal(t, 1920*1088*3/2, sizes.Input)
	require.Equal(t, (1920*1080*3/2+4096+31)/32*32, sizes.Output)
}

func TestDecBufferSizes(t *testing.T) {
	s := decSettings()
	sizes := DecBufferSizes(s, types.Stride{Horizontal: 192, Vertical: 144})
	require.Equal(t, 192*144*3/2, sizes.Output)
	require.Equal(t, driver.MaxNALSize(s.Stream.Dim, s.Stream.Chroma, s.Stream.BitDepth), sizes.Input)
	require.Equal(t, types.InternalEntropyBuffer(5), EntropyBuffer(s))
}
