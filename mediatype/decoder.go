// decoder.go implements the state shared by the decoder stores.

package mediatype

import (
	"context"

	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/convert"
	"github.com/xaionaro-go/vcusettings/derive"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/types"
)

const (
	defaultWidth     = 176
	defaultHeight    = 144
	defaultBitDepth  = 8
	defaultLevel     = 10
	defaultStackSize = 5
	defaultClkRatio  = 1000
	defaultDDRWidth  = 32
	mimeRaw          = "video/x-raw"
)

type decoderDefaults struct {
	Profile   driver.Profile
	FrameRate int
}

// decoder holds what the AVC and HEVC decoder stores have in common.
type decoder struct {
	caps         *capability.Capabilities
	mimes        types.Mimes
	construction construction
	defaults     decoderDefaults

	settings  driver.DecSettings
	stride    types.Stride
	videoMode types.VideoMode
}

func newDecoder(
	caps *capability.Capabilities,
	mime string,
	compression types.Compression,
	defaults decoderDefaults,
	defaultAlignment types.Stride,
	opts Options,
) decoder {
	d := decoder{
		caps: caps,
		mimes: types.Mimes{
			Input:  types.Mime{Mime: mime, Compression: compression},
			Output: types.Mime{Mime: mimeRaw, Compression: types.CompressionUnused},
		},
		construction: opts.construction(defaultAlignment),
		defaults:     defaults,
	}
	d.reset()
	return d
}

func (d *decoder) reset() {
	d.settings = driver.DecSettings{
		Stream: driver.StreamSettings{
			Dim:          driver.Dimension{Width: defaultWidth, Height: defaultHeight},
			Chroma:       driver.Chroma420,
			BitDepth:     defaultBitDepth,
			Level:        defaultLevel,
			ProfileIdc:   d.defaults.Profile,
			SequenceMode: driver.SequenceModeUnknown,
		},
		StackSize:     defaultStackSize,
		FrameRate:     d.defaults.FrameRate,
		ClkRatio:      defaultClkRatio,
		DDRWidth:      defaultDDRWidth,
		DecUnit:       driver.DecUnitAccessUnit,
		DPBMode:       driver.DPBModeNormal,
		FBStorageMode: d.construction.FBStorageMode,
		Codec:         convert.CompressionToCodec(d.mimes.Input.Compression),
	}
	d.stride = d.minStride(types.Stride{})
	d.videoMode = types.VideoModeProgressive
}

// DriverSettings returns a copy of the settings record for the device binding.
func (d *decoder) DriverSettings() driver.DecSettings {
	return d.settings
}

type decoderState struct {
	settings  driver.DecSettings
	stride    types.Stride
	videoMode types.VideoMode
}

func (d *decoder) state() decoderState {
	return decoderState{settings: d.settings, stride: d.stride, videoMode: d.videoMode}
}

func (d *decoder) setState(s decoderState) {
	d.settings, d.stride, d.videoMode = s.settings, s.stride, s.videoMode
}

func (d *decoder) saveState() any { return d.state() }
func (d *decoder) loadState(s any) { d.setState(s.(decoderState)) }

// minStride returns the stride state for the current dimensions and format
// given the requested (possibly larger) stride.
func (d *decoder) minStride(requested types.Stride) types.Stride {
	stream := d.settings.Stream
	return types.Stride{
		Horizontal: derive.Stride(
			stream.Dim.Width, stream.BitDepth, d.settings.FBStorageMode,
			d.construction.Alignment.Horizontal, requested.Horizontal,
		),
		Vertical: derive.SliceHeight(
			stream.Dim.Height,
			d.construction.Alignment.Vertical, requested.Vertical,
		),
	}
}

func (d *decoder) resolution() types.Resolution {
	return types.Resolution{
		Width:  d.settings.Stream.Dim.Width,
		Height: d.settings.Stream.Dim.Height,
		Stride: d.stride,
	}
}

func (d *decoder) format() types.Format {
	return types.Format{
		Color:    convert.ChromaToColor(d.settings.Stream.Chroma),
		BitDepth: d.settings.Stream.BitDepth,
	}
}

func (d *decoder) clock() types.Clock {
	return types.Clock{
		Framerate:  d.settings.FrameRate / 1000,
		ClockRatio: d.settings.ClkRatio,
	}
}

// get serves the indices both decoders share.
func (d *decoder) get(_ context.Context, p types.Param) error {
	if d.construction.get(p) {
		return nil
	}
	switch p := p.(type) {
	case *types.Mimes:
		*p = d.mimes
	case *types.Clock:
		*p = d.clock()
	case *types.InternalEntropyBuffer:
		*p = derive.EntropyBuffer(d.settings)
	case *types.Latency:
		*p = derive.DecLatency(d.settings)
	case *types.VideoMode:
		*p = d.videoMode
	case *types.VideoModesSupported:
		*p = d.caps.VideoModes.Items()
	case *types.BufferCounts:
		*p = derive.DecBufferCounts(d.settings)
	case *types.BufferMode:
		*p = derive.BufferMode(d.settings)
	case *types.ProfileLevelsSupported:
		*p = d.caps.ProfileLevels.Items()
	case *types.Format:
		*p = d.format()
	case *types.FormatsSupported:
		*p = d.caps.Formats.Items()
	case *types.Resolution:
		*p = d.resolution()
	case *types.BufferSizes:
		*p = derive.DecBufferSizes(d.settings, d.stride)
	case *types.DecodedPictureBuffer:
		*p = convert.DriverToDecodedPictureBuffer(d.settings.DPBMode)
	case *types.SubFrame:
		*p = types.SubFrame(d.settings.DecUnit == driver.DecUnitVCLNAL)
	default:
		return badIndex(p)
	}
	return nil
}

// set serves the writable indices both decoders share.
func (d *decoder) set(ctx context.Context, p types.Param) error {
	switch p := p.(type) {
	case *types.Clock:
		if err := checkClock(*p); err != nil {
			return badParameter(p, err)
		}
		d.settings.FrameRate = p.Framerate * 1000
		d.settings.ClkRatio = p.ClockRatio
		d.settings.ForceFrameRate = d.settings.FrameRate != 0 && d.settings.ClkRatio != 0
	case *types.InternalEntropyBuffer:
		if err := checkInternalEntropyBuffer(*p); err != nil {
			return badParameter(p, err)
		}
		d.settings.StackSize = int(*p)
	case *types.VideoMode:
		if err := checkMember("video mode", *p, d.caps.VideoModes); err != nil {
			return badParameter(p, err)
		}
		d.videoMode = *p
	case *types.Format:
		if err := checkFormat(*p, d.caps.Formats); err != nil {
			return badParameter(p, err)
		}
		d.settings.Stream.Chroma = convert.ColorToChroma(p.Color)
		d.settings.Stream.BitDepth = p.BitDepth
		d.stride.Horizontal = d.minStride(d.stride).Horizontal
	case *types.Resolution:
		if err := checkResolution(*p); err != nil {
			return badParameter(p, err)
		}
		d.settings.Stream.Dim = driver.Dimension{Width: p.Width, Height: p.Height}
		d.stride = d.minStride(p.Stride)
	case *types.DecodedPictureBuffer:
		mode := convert.DecodedPictureBufferToDriver(*p)
		if mode == driver.DPBModeMaxEnum {
			return badParameter(p, errUnsupported(*p))
		}
		d.settings.DPBMode = mode
		d.settings.LowLatency = mode == driver.DPBModeLowRef
	case *types.SubFrame:
		unit := types.DecodeUnitFrame
		if *p {
			unit = types.DecodeUnitSlice
		}
		d.settings.DecUnit = convert.DecodeUnitToDriver(unit)
	default:
		return badIndex(p)
	}
	logger.Debugf(ctx, "set %s to %s", p.Index(), p)
	return nil
}
