package mediatype

import (
	"context"

	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/types"
)

const (
	mimeAVC = "video/x-h264"

	decAVCDefaultFrameRate = 60000
)

var decAVCAlignment = types.Stride{Horizontal: 64, Vertical: 16}

// DecAVC is the settings store of an AVC decoder channel.
type DecAVC struct {
	decoder
}

var _ Decoder = (*DecAVC)(nil)

func NewDecAVC(ctx context.Context, opts ...Option) *DecAVC {
	d := &DecAVC{
		decoder: newDecoder(
			&capability.DecAVC,
			mimeAVC, types.CompressionAVC,
			decoderDefaults{
				Profile:   driver.ProfileAVCCBaseline,
				FrameRate: decAVCDefaultFrameRate,
			},
			decAVCAlignment,
			opts,
		),
	}
	logger.Debugf(ctx, "NewDecAVC: alignment %s, buffers %s", d.construction.Alignment, d.construction.Handles)
	return d
}

func (d *DecAVC) String() string {
	return "DecAVC"
}

func (d *DecAVC) Reset(ctx context.Context) {
	logger.Tracef(ctx, "%s.Reset", d)
	d.reset()
}

func (d *DecAVC) Get(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Get(ctx, %s)", d, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Get(ctx, %s): %v", d, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		*p = avcProfileLevel(d.settings.Stream.ProfileIdc, d.settings.Stream.Level)
		return nil
	}
	return d.get(ctx, p)
}

func (d *DecAVC) Set(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Set(ctx, %s)", d, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Set(ctx, %s): %v", d, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		profile, err := avcProfileLevelToDriver(*p, d.caps.ProfileLevels)
		if err != nil {
			return badParameter(p, err)
		}
		d.settings.Stream.ProfileIdc = profile
		d.settings.Stream.Level = p.Level
		logger.Debugf(ctx, "set %s to %s", p.Index(), p)
		return nil
	}
	return d.set(ctx, p)
}
