// encoder.go implements the state shared by the encoder stores.

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
	encDefaultLevel     = 51
	encDefaultFrameRate = 60000
	encDefaultGopLength = 30
	encDefaultBitrate   = 64 // kbit/s
	kbps                = 1000
)

type encoderDefaults struct {
	Profile    driver.Profile
	LoopFilter types.LoopFilter
}

// encoder holds what the AVC and HEVC encoder stores have in common.
type encoder struct {
	caps         *capability.Capabilities
	mimes        types.Mimes
	construction construction
	defaults     encoderDefaults

	settings  driver.EncSettings
	stride    types.Stride
	videoMode types.VideoMode
}

func newEncoder(
	caps *capability.Capabilities,
	mime string,
	compression types.Compression,
	defaults encoderDefaults,
	defaultAlignment types.Stride,
	opts Options,
) encoder {
	e := encoder{
		caps: caps,
		mimes: types.Mimes{
			Input:  types.Mime{Mime: mimeRaw, Compression: types.CompressionUnused},
			Output: types.Mime{Mime: mime, Compression: compression},
		},
		construction: opts.construction(defaultAlignment),
		defaults:     defaults,
	}
	e.reset()
	return e
}

func (e *encoder) reset() {
	filterOptions, _ := convert.LoopFilterToDriver(e.defaults.LoopFilter)
	e.settings = driver.EncSettings{
		Channel: driver.ChannelParam{
			Width:         defaultWidth,
			Height:        defaultHeight,
			Chroma:        driver.Chroma420,
			BitDepth:      defaultBitDepth,
			Profile:       e.defaults.Profile,
			Level:         encDefaultLevel,
			EntropyMode:   driver.EntropyModeCABAC,
			FilterOptions: filterOptions,
			Gop: driver.GopParam{
				Mode:   driver.GopModeDefault,
				Length: encDefaultGopLength,
			},
			RC: driver.RCParam{
				Mode:          driver.RCModeCBR,
				TargetBitRate: encDefaultBitrate * kbps,
				MaxBitRate:    encDefaultBitrate * kbps,
				FrameRate:     encDefaultFrameRate,
				ClkRatio:      defaultClkRatio,
			},
		},
		FBStorageMode: e.construction.FBStorageMode,
		Codec:         convert.CompressionToCodec(e.mimes.Output.Compression),
	}
	e.stride = e.minStride(types.Stride{})
	e.videoMode = types.VideoModeProgressive
}

// DriverSettings returns a copy of the settings record for the device binding.
func (e *encoder) DriverSettings() driver.EncSettings {
	return e.settings
}

type encoderState struct {
	settings  driver.EncSettings
	stride    types.Stride
	videoMode types.VideoMode
}

func (e *encoder) saveState() any {
	return encoderState{settings: e.settings, stride: e.stride, videoMode: e.videoMode}
}

func (e *encoder) loadState(s any) {
	st := s.(encoderState)
	e.settings, e.stride, e.videoMode = st.settings, st.stride, st.videoMode
}

func (e *encoder) minStride(requested types.Stride) types.Stride {
	ch := e.settings.Channel
	return types.Stride{
		Horizontal: derive.Stride(
			ch.Width, ch.BitDepth, e.settings.FBStorageMode,
			e.construction.Alignment.Horizontal, requested.Horizontal,
		),
		Vertical: derive.SliceHeight(
			ch.Height,
			e.construction.Alignment.Vertical, requested.Vertical,
		),
	}
}

func (e *encoder) gop() types.Gop {
	return types.Gop{
		B:      e.settings.Channel.Gop.NumB,
		Length: e.settings.Channel.Gop.Length,
		Mode:   convert.DriverToGopControl(e.settings.Channel.Gop.Mode),
	}
}

func (e *encoder) bitrate() types.Bitrate {
	rc := e.settings.Channel.RC
	return types.Bitrate{
		Target: rc.TargetBitRate / kbps,
		Max:    rc.MaxBitRate / kbps,
		Mode:   convert.DriverToRateControl(rc.Mode),
	}
}

// get serves the indices both encoders share.
func (e *encoder) get(_ context.Context, p types.Param) error {
	if e.construction.get(p) {
		return nil
	}
	ch := &e.settings.Channel
	switch p := p.(type) {
	case *types.Mimes:
		*p = e.mimes
	case *types.Clock:
		*p = types.Clock{
			Framerate:  ch.RC.FrameRate / 1000,
			ClockRatio: ch.RC.ClkRatio,
		}
	case *types.Gop:
		*p = e.gop()
	case *types.ProfileLevelsSupported:
		*p = e.caps.ProfileLevels.Items()
	case *types.EntropyCoding:
		*p = convert.DriverToEntropyCoding(ch.EntropyMode)
	case *types.ConstrainedIntraPrediction:
		*p = types.ConstrainedIntraPrediction(ch.ConstrainedIntraPred)
	case *types.LoopFilter:
		*p = convert.DriverToLoopFilter(ch.FilterOptions)
	case *types.Bitrate:
		*p = e.bitrate()
	case *types.Resolution:
		*p = types.Resolution{Width: ch.Width, Height: ch.Height, Stride: e.stride}
	case *types.Format:
		*p = types.Format{Color: convert.ChromaToColor(ch.Chroma), BitDepth: ch.BitDepth}
	case *types.FormatsSupported:
		*p = e.caps.Formats.Items()
	case *types.VideoMode:
		*p = e.videoMode
	case *types.VideoModesSupported:
		*p = e.caps.VideoModes.Items()
	case *types.BufferSizes:
		*p = derive.EncBufferSizes(e.settings, e.stride)
	case *types.BufferCounts:
		*p = derive.EncBufferCounts(e.settings)
	case *types.Latency:
		*p = derive.EncLatency(e.settings)
	default:
		return badIndex(p)
	}
	return nil
}

// set serves the writable indices both encoders share.
func (e *encoder) set(ctx context.Context, p types.Param) error {
	ch := &e.settings.Channel
	switch p := p.(type) {
	case *types.Clock:
		if err := checkClock(*p); err != nil {
			return badParameter(p, err)
		}
		ch.RC.FrameRate = p.Framerate * 1000
		ch.RC.ClkRatio = p.ClockRatio
	case *types.Gop:
		if err := checkGop(*p, e.caps.GopControls); err != nil {
			return badParameter(p, err)
		}
		ch.Gop = driver.GopParam{
			Mode:   convert.GopControlToDriver(p.Mode),
			Length: p.Length,
			NumB:   p.B,
		}
	case *types.EntropyCoding:
		if err := checkMember("entropy coding", *p, e.caps.EntropyCodings); err != nil {
			return badParameter(p, err)
		}
		ch.EntropyMode = convert.EntropyCodingToDriver(*p)
	case *types.ConstrainedIntraPrediction:
		ch.ConstrainedIntraPred = bool(*p)
	case *types.LoopFilter:
		if err := checkMember("loop filter", *p, e.caps.LoopFilters); err != nil {
			return badParameter(p, err)
		}
		opts, _ := convert.LoopFilterToDriver(*p)
		ch.FilterOptions = ch.FilterOptions&^loopFilterBits | opts
	case *types.Bitrate:
		if err := checkBitrate(*p, e.caps.RateControls); err != nil {
			return badParameter(p, err)
		}
		ch.RC.Mode = convert.RateControlToDriver(p.Mode)
		ch.RC.TargetBitRate = p.Target * kbps
		ch.RC.MaxBitRate = p.Max * kbps
	case *types.Resolution:
		if err := checkResolution(*p); err != nil {
			return badParameter(p, err)
		}
		ch.Width, ch.Height = p.Width, p.Height
		e.stride = e.minStride(p.Stride)
	case *types.Format:
		if err := checkFormat(*p, e.caps.Formats); err != nil {
			return badParameter(p, err)
		}
		ch.Chroma = convert.ColorToChroma(p.Color)
		ch.BitDepth = p.BitDepth
		e.stride.Horizontal = e.minStride(e.stride).Horizontal
	case *types.VideoMode:
		if err := checkMember("video mode", *p, e.caps.VideoModes); err != nil {
			return badParameter(p, err)
		}
		e.videoMode = *p
	default:
		return badIndex(p)
	}
	logger.Debugf(ctx, "set %s to %s", p.Index(), p)
	return nil
}

const loopFilterBits = driver.FilterOptionLF | driver.FilterOptionLFCrossSlice | driver.FilterOptionLFCrossTile
