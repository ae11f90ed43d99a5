// params.go turns the channel settings into store parameters.

package config

import (
	"fmt"

	"github.com/xaionaro-go/vcusettings/types"
)

// Params converts the settings to the params to Set, in the order they
// must be applied: the format comes before the resolution because it may
// widen the stride.
func (c *Channel) Params() ([]types.Param, error) {
	codec, err := c.Compression()
	if err != nil {
		return nil, err
	}
	s := c.Settings

	var result []types.Param
	add := func(p types.Param) {
		result = append(result, p)
	}

	if s.Clock != nil {
		add(ptr(*s.Clock))
	}
	if s.Format != nil {
		color, err := types.ParseColor(s.Format.Color)
		if err != nil {
			return nil, fmt.Errorf("format.color: %w", err)
		}
		add(&types.Format{Color: color, BitDepth: s.Format.BitDepth})
	}
	if s.Resolution != nil {
		add(ptr(*s.Resolution))
	}
	if s.ProfileLevel != nil {
		pl, err := s.ProfileLevel.parse(codec)
		if err != nil {
			return nil, fmt.Errorf("profile_level: %w", err)
		}
		add(&pl)
	}
	if err := addEnum(add, "video_mode", s.VideoMode, types.ParseVideoMode); err != nil {
		return nil, err
	}
	if err := addEnum(add, "sequence_picture_mode", s.SequencePictureMode, types.ParseSequencePictureMode); err != nil {
		return nil, err
	}
	if s.InternalEntropyBuffer != nil {
		add(ptr(types.InternalEntropyBuffer(*s.InternalEntropyBuffer)))
	}
	if err := addEnum(add, "decoded_picture_buffer", s.DecodedPictureBuffer, types.ParseDecodedPictureBuffer); err != nil {
		return nil, err
	}
	if err := addEnum(add, "decode_unit", s.DecodeUnit, types.ParseDecodeUnit); err != nil {
		return nil, err
	}
	if s.SubFrame != nil {
		add(ptr(types.SubFrame(*s.SubFrame)))
	}
	if s.Gop != nil {
		g := types.Gop{Length: s.Gop.Length, B: s.Gop.B, Mode: types.GopControlDefault}
		if s.Gop.Mode != "" {
			g.Mode, err = types.ParseGopControl(s.Gop.Mode)
			if err != nil {
				return nil, fmt.Errorf("gop.mode: %w", err)
			}
		}
		add(&g)
	}
	if err := addEnum(add, "entropy_coding", s.EntropyCoding, types.ParseEntropyCoding); err != nil {
		return nil, err
	}
	if s.ConstrainedIntraPrediction != nil {
		add(ptr(types.ConstrainedIntraPrediction(*s.ConstrainedIntraPrediction)))
	}
	if err := addEnum(add, "loop_filter", s.LoopFilter, types.ParseLoopFilter); err != nil {
		return nil, err
	}
	if s.Bitrate != nil {
		b := types.Bitrate{Target: s.Bitrate.Target, Max: s.Bitrate.Max, Mode: types.RateControlCBR}
		if b.Max == 0 {
			b.Max = b.Target
		}
		if s.Bitrate.Mode != "" {
			b.Mode, err = types.ParseRateControl(s.Bitrate.Mode)
			if err != nil {
				return nil, fmt.Errorf("bitrate.mode: %w", err)
			}
		}
		add(&b)
	}
	return result, nil
}

func (pl ProfileLevel) parse(codec types.Compression) (types.ProfileLevel, error) {
	level, err := types.ParseLevel(pl.Level)
	if err != nil {
		return types.ProfileLevel{}, err
	}
	result := types.ProfileLevel{Level: level}
	switch codec {
	case types.CompressionAVC:
		result.Profile.AVC, err = types.ParseAVCProfile(pl.Profile)
	case types.CompressionHEVC:
		result.Profile.HEVC, err = types.ParseHEVCProfile(pl.Profile)
	default:
		err = fmt.Errorf("no profiles for codec %s", codec)
	}
	return result, err
}

// addEnum parses s with parse unless it is empty.
func addEnum[T any, P interface {
	*T
	types.Param
}](add func(types.Param), field string, s string, parse func(string) (T, error)) error {
	if s == "" {
		return nil
	}
	v, err := parse(s)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	add(P(&v))
	return nil
}

func ptr[T any](in T) *T {
	return &in
}
