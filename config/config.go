// Package config reads the description of a channel (codec, direction,
// buffer target and initial settings) from YAML.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/mediatype"
	"github.com/xaionaro-go/vcusettings/types"
	"gopkg.in/yaml.v3"
)

type Channel struct {
	Codec     string `yaml:"codec"`
	Direction string `yaml:"direction"`
	Target    string `yaml:"target,omitempty"`

	// StrideAlignment overrides the alignments of the codec.
	StrideAlignment *types.Stride `yaml:"stride_alignment,omitempty"`

	Settings Settings `yaml:"settings,omitempty"`
}

// Settings are the initial values of the field groups; an omitted field
// keeps the default of the store.
type Settings struct {
	Resolution                 *types.Resolution `yaml:"resolution,omitempty"`
	Format                     *Format           `yaml:"format,omitempty"`
	Clock                      *types.Clock      `yaml:"clock,omitempty"`
	ProfileLevel               *ProfileLevel     `yaml:"profile_level,omitempty"`
	VideoMode                  string            `yaml:"video_mode,omitempty"`
	SequencePictureMode        string            `yaml:"sequence_picture_mode,omitempty"`
	InternalEntropyBuffer      *int              `yaml:"internal_entropy_buffer,omitempty"`
	DecodedPictureBuffer       string            `yaml:"decoded_picture_buffer,omitempty"`
	DecodeUnit                 string            `yaml:"decode_unit,omitempty"`
	SubFrame                   *bool             `yaml:"sub_frame,omitempty"`
	Gop                        *Gop              `yaml:"gop,omitempty"`
	EntropyCoding              string            `yaml:"entropy_coding,omitempty"`
	ConstrainedIntraPrediction *bool             `yaml:"constrained_intra_prediction,omitempty"`
	LoopFilter                 string            `yaml:"loop_filter,omitempty"`
	Bitrate                    *Bitrate          `yaml:"bitrate,omitempty"`
}

type Format struct {
	Color    string `yaml:"color"`
	BitDepth int    `yaml:"bit_depth"`
}

type ProfileLevel struct {
	Profile string `yaml:"profile"`
	Level   string `yaml:"level"`
}

type Gop struct {
	Length int    `yaml:"length"`
	B      int    `yaml:"b,omitempty"`
	Mode   string `yaml:"mode,omitempty"`
}

type Bitrate struct {
	Target int    `yaml:"target"`
	Max    int    `yaml:"max,omitempty"`
	Mode   string `yaml:"mode,omitempty"`
}

// Parse decodes a channel and checks that every enum value is known.
// Unknown keys are rejected.
func Parse(r io.Reader) (*Channel, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Channel
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("the channel description is empty")
		}
		return nil, fmt.Errorf("unable to decode the channel description: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every enum of the channel is known and that the
// settings can be converted. It does not check the settings values; the
// store does that on Build.
func (c *Channel) Validate() error {
	if _, err := c.ParsedDirection(); err != nil {
		return err
	}
	if _, err := c.ParsedTarget(); err != nil {
		return err
	}
	_, err := c.Params()
	return err
}

func Load(path string) (*Channel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	c, err := Parse(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s': %w", path, err)
	}
	return c, nil
}

func (c *Channel) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Channel) Compression() (types.Compression, error) {
	codec, err := types.ParseCompression(c.Codec)
	if err != nil {
		return types.CompressionUndefined, fmt.Errorf("codec: %w", err)
	}
	if codec == types.CompressionUnused {
		return types.CompressionUndefined, fmt.Errorf("codec: '%s' is not a video codec", c.Codec)
	}
	return codec, nil
}

func (c *Channel) ParsedDirection() (mediatype.Direction, error) {
	d, err := mediatype.ParseDirection(c.Direction)
	if err != nil {
		return mediatype.DirectionUndefined, fmt.Errorf("direction: %w", err)
	}
	return d, nil
}

// ParsedTarget defaults to the hardware target.
func (c *Channel) ParsedTarget() (mediatype.Target, error) {
	if c.Target == "" {
		return mediatype.TargetHardware, nil
	}
	t, err := mediatype.ParseTarget(c.Target)
	if err != nil {
		return mediatype.TargetUndefined, fmt.Errorf("target: %w", err)
	}
	return t, nil
}

// Options returns the construction options of the store.
func (c *Channel) Options() mediatype.Options {
	var opts mediatype.Options
	if c.StrideAlignment != nil {
		opts = append(opts, mediatype.OptionStrideAlignment{Alignment: *c.StrideAlignment})
	}
	return opts
}

// Build creates the store of the channel and applies the settings as one
// transaction.
func (c *Channel) Build(ctx context.Context) (_ret mediatype.Mediatype, _err error) {
	logger.Debugf(ctx, "Build(ctx): %#+v", c)
	defer func() { logger.Debugf(ctx, "/Build(ctx): %v %v", _ret, _err) }()

	codec, err := c.Compression()
	if err != nil {
		return nil, err
	}
	direction, err := c.ParsedDirection()
	if err != nil {
		return nil, err
	}
	target, err := c.ParsedTarget()
	if err != nil {
		return nil, err
	}
	params, err := c.Params()
	if err != nil {
		return nil, err
	}

	m, err := mediatype.New(ctx, codec, direction, target, c.Options()...)
	if err != nil {
		return nil, fmt.Errorf("unable to create the %s %s store: %w", codec, direction, err)
	}
	if err := mediatype.SetAll(ctx, m, params...); err != nil {
		return nil, fmt.Errorf("unable to apply the settings to %s: %w", m, err)
	}
	return m, nil
}
