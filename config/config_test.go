package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/vcusettings/mediatype"
	"github.com/xaionaro-go/vcusettings/types"
)

const encoderChannel = `
codec: avc
direction: encode
target: hardware
settings:
  resolution:
    width: 1920
    height: 1080
  format:
    color: 422
    bit_depth: 10
  clock:
    framerate: 30
    clockratio: 1000
  profile_level:
    profile: high422
    level: 4.1
  gop:
    length: 60
    b: 2
    mode: pyramidal
  entropy_coding: cavlc
  constrained_intra_prediction: true
  loop_filter: enable
  bitrate:
    target: 4000
    mode: vbr
`

const decoderChannel = `
codec: hevc
direction: dec
target: software
stride_alignment:
  horizontal: 256
  vertical: 64
settings:
  resolution: {width: 1280, height: 720}
  video_mode: alternate_top_bottom_field
  sequence_picture_mode: field
  internal_entropy_buffer: 3
  decoded_picture_buffer: low_reference
  decode_unit: slice
  sub_frame: true
`

func TestParseEncoder(t *testing.T) {
	c, err := Parse(strings.NewReader(encoderChannel))
	require.NoError(t, err)

	params, err := c.Params()
	require.NoError(t, err)
	indexes := make([]types.Index, 0, len(params))
	for _, p := range params {
		indexes = append(indexes, p.Index())
	}
	require.Equal(t, []types.Index{
		types.IndexClock,
		types.IndexFormat,
		types.IndexResolution,
		types.IndexProfileLevel,
		types.IndexGop,
		types.IndexEntropyCoding,
		types.IndexConstrainedIntraPrediction,
		types.IndexLoopFilter,
		types.IndexBitrate,
	}, indexes)

	ctx := context.Background()
	m, err := c.Build(ctx)
	require.NoError(t, err)
	require.Equal(t, "EncAVC", m.String())

	var pl types.ProfileLevel
	require.NoError(t, m.Get(ctx, &pl))
	require.Equal(t, types.ProfileLevel{Profile: types.Profile{AVC: types.AVCProfileHigh422}, Level: 41}, pl)

	var bitrate types.Bitrate
	require.NoError(t, m.Get(ctx, &bitrate))
	require.Equal(t, types.Bitrate{Target: 4000, Max: 4000, Mode: types.RateControlVBR}, bitrate)

	var res types.Resolution
	require.NoError(t, m.Get(ctx, &res))
	require.Equal(t, 2560, res.Stride.Horizontal)

	var contiguities types.BufferContiguities
	require.NoError(t, m.Get(ctx, &contiguities))
	require.True(t, contiguities.Input)
}

func TestParseDecoder(t *testing.T) {
	c, err := Parse(strings.NewReader(decoderChannel))
	require.NoError(t, err)

	ctx := context.Background()
	m, err := c.Build(ctx)
	require.NoError(t, err)
	require.Equal(t, "DecHEVC", m.String())

	var res types.Resolution
	require.NoError(t, m.Get(ctx, &res))
	require.Equal(t, types.Stride{Horizontal: 1280, Vertical: 768}, res.Stride)

	var mode types.BufferMode
	require.NoError(t, m.Get(ctx, &mode))
	require.Equal(t, types.BufferModeLowLatency, mode)

	var seq types.SequencePictureMode
	require.NoError(t, m.Get(ctx, &seq))
	require.Equal(t, types.SequencePictureModeField, seq)

	var contiguities types.BufferContiguities
	require.NoError(t, m.Get(ctx, &contiguities))
	require.False(t, contiguities.Input)
}

func TestParseErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":          ``,
		"unknown_key":    "codec: avc\ndirection: encode\nbitrate: 10\n",
		"unknown_codec":  "codec: vp9\ndirection: encode\n",
		"unused_codec":   "codec: unused\ndirection: encode\n",
		"no_direction":   "codec: avc\n",
		"bad_target":     "codec: avc\ndirection: encode\ntarget: gpu\n",
		"bad_color":      "codec: avc\ndirection: encode\nsettings:\n  format: {color: 411, bit_depth: 8}\n",
		"bad_profile":    "codec: hevc\ndirection: encode\nsettings:\n  profile_level: {profile: high, level: 5.1}\n",
		"bad_level":      "codec: avc\ndirection: encode\nsettings:\n  profile_level: {profile: high, level: x}\n",
		"bad_gop_mode":   "codec: avc\ndirection: encode\nsettings:\n  gop: {length: 30, mode: open}\n",
		"bad_rc_mode":    "codec: avc\ndirection: encode\nsettings:\n  bitrate: {target: 30, mode: abr}\n",
		"bad_entropy":    "codec: avc\ndirection: encode\nsettings:\n  entropy_coding: huffman\n",
		"bad_loopfilter": "codec: avc\ndirection: encode\nsettings:\n  loop_filter: on\n",
		"bad_dpb":        "codec: avc\ndirection: decode\nsettings:\n  decoded_picture_buffer: big\n",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestBuildRejectsSettings(t *testing.T) {
	ctx := context.Background()
	c, err := Parse(strings.NewReader("codec: avc\ndirection: decode\nsettings:\n  gop: {length: 30}\n"))
	require.NoError(t, err)
	_, err = c.Build(ctx)
	require.Equal(t, types.ErrorCodeBadIndex, types.ErrorCodeOf(err))

	c, err = Parse(strings.NewReader("codec: avc\ndirection: encode\nsettings:\n  resolution: {width: 641, height: 480}\n"))
	require.NoError(t, err)
	_, err = c.Build(ctx)
	require.Equal(t, types.ErrorCodeBadParameter, types.ErrorCodeOf(err))
}

func TestLoadAndMarshal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(encoderChannel), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, mediatype.TargetHardware.String(), c.Target)

	b, err := c.Marshal()
	require.NoError(t, err)
	again, err := Parse(strings.NewReader(string(b)))
	require.NoError(t, err)
	require.Equal(t, c, again)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
