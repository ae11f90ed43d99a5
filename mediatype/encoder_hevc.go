package mediatype

import (
	"context"

	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/types"
)

var encHEVCAlignment = types.Stride{Horizontal: 64, Vertical: 32}

// EncHEVC is the settings store of an HEVC encoder channel.
//
// HEVC is always CABAC coded: the entropy coding can be read but not set.
type EncHEVC struct {
	encoder
}

var _ Encoder = (*EncHEVC)(nil)

func NewEncHEVC(ctx context.Context, opts ...Option) *EncHEVC {
	e := &EncHEVC{
		encoder: newEncoder(
			&capability.EncHEVC,
			mimeHEVC, types.CompressionHEVC,
			encoderDefaults{
				Profile:    driver.ProfileHEVCMain,
				LoopFilter: types.LoopFilterEnableCrossSliceAndTile,
			},
			encHEVCAlignment,
			opts,
		),
	}
	logger.Debugf(ctx, "NewEncHEVC: alignment %s, buffers %s", e.construction.Alignment, e.construction.Handles)
	return e
}

func (e *EncHEVC) String() string {
	return "EncHEVC"
}

func (e *EncHEVC) Reset(ctx context.Context) {
	logger.Tracef(ctx, "%s.Reset", e)
	e.reset()
}

func (e *EncHEVC) Get(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Get(ctx, %s)", e, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Get(ctx, %s): %v", e, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		ch := e.settings.Channel
		*p = hevcProfileLevel(ch.Profile, ch.HighTier, ch.Level)
		return nil
	}
	return e.get(ctx, p)
}

func (e *EncHEVC) Set(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Set(ctx, %s)", e, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Set(ctx, %s): %v", e, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		profile, highTier, err := hevcProfileLevelToDriver(*p, e.caps.ProfileLevels)
		if err != nil {
			return badParameter(p, err)
		}
		e.settings.Channel.Profile = profile
		e.settings.Channel.HighTier = highTier
		e.settings.Channel.Level = p.Level
		logger.Debugf(ctx, "set %s to %s", p.Index(), p)
		return nil
	case *types.EntropyCoding:
		return notImplemented(p)
	}
	return e.set(ctx, p)
}
