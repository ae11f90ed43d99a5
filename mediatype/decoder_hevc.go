package mediatype

import (
	"context"

	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/convert"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/types"
)

const (
	mimeHEVC = "video/x-h265"

	decHEVCDefaultFrameRate = 15000
)

var decHEVCAlignment = types.Stride{Horizontal: 64, Vertical: 64}

// DecHEVC is the settings store of an HEVC decoder channel.
//
// The profile-level of the stream is read from the bitstream, so it can
// be queried but not set.
type DecHEVC struct {
	decoder
	highTier bool
}

var _ Decoder = (*DecHEVC)(nil)

func NewDecHEVC(ctx context.Context, opts ...Option) *DecHEVC {
	d := &DecHEVC{
		decoder: newDecoder(
			&capability.DecHEVC,
			mimeHEVC, types.CompressionHEVC,
			decoderDefaults{
				Profile:   driver.ProfileHEVCMain,
				FrameRate: decHEVCDefaultFrameRate,
			},
			decHEVCAlignment,
			opts,
		),
	}
	logger.Debugf(ctx, "NewDecHEVC: alignment %s, buffers %s", d.construction.Alignment, d.construction.Handles)
	return d
}

func (d *DecHEVC) String() string {
	return "DecHEVC"
}

func (d *DecHEVC) Reset(ctx context.Context) {
	logger.Tracef(ctx, "%s.Reset", d)
	d.reset()
	d.highTier = false
}

type decHEVCState struct {
	decoderState
	highTier bool
}

func (d *DecHEVC) saveState() any {
	return decHEVCState{decoderState: d.state(), highTier: d.highTier}
}

func (d *DecHEVC) loadState(s any) {
	st := s.(decHEVCState)
	d.setState(st.decoderState)
	d.highTier = st.highTier
}

func (d *DecHEVC) Get(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Get(ctx, %s)", d, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Get(ctx, %s): %v", d, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		*p = hevcProfileLevel(d.settings.Stream.ProfileIdc, d.highTier, d.settings.Stream.Level)
		return nil
	case *types.SequencePictureMode:
		*p = convert.DriverToSequencePictureMode(d.settings.Stream.SequenceMode)
		return nil
	case *types.SequencePictureModesSupported:
		*p = d.caps.SequencePictureModes.Items()
		return nil
	}
	return d.get(ctx, p)
}

func (d *DecHEVC) Set(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Set(ctx, %s)", d, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Set(ctx, %s): %v", d, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		return notImplemented(p)
	case *types.SequencePictureMode:
		if err := checkMember("sequence picture mode", *p, d.caps.SequencePictureModes); err != nil {
			return badParameter(p, err)
		}
		d.settings.Stream.SequenceMode = convert.SequencePictureModeToDriver(*p)
		logger.Debugf(ctx, "set %s to %s", p.Index(), p)
		return nil
	}
	return d.set(ctx, p)
}
