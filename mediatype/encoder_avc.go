package mediatype

import (
	"context"

	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/types"
)

var encAVCAlignment = types.Stride{Horizontal: 64, Vertical: 16}

// EncAVC is the settings store of an AVC encoder channel.
type EncAVC struct {
	encoder
}

var _ Encoder = (*EncAVC)(nil)

func NewEncAVC(ctx context.Context, opts ...Option) *EncAVC {
	e := &EncAVC{
		encoder: newEncoder(
			&capability.EncAVC,
			mimeAVC, types.CompressionAVC,
			encoderDefaults{
				Profile:    driver.ProfileAVCMain,
				LoopFilter: types.LoopFilterEnableCrossSlice,
			},
			encAVCAlignment,
			opts,
		),
	}
	logger.Debugf(ctx, "NewEncAVC: alignment %s, buffers %s", e.construction.Alignment, e.construction.Handles)
	return e
}

func (e *EncAVC) String() string {
	return "EncAVC"
}

func (e *EncAVC) Reset(ctx context.Context) {
	logger.Tracef(ctx, "%s.Reset", e)
	e.reset()
}

func (e *EncAVC) Get(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Get(ctx, %s)", e, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Get(ctx, %s): %v", e, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		*p = avcProfileLevel(e.settings.Channel.Profile, e.settings.Channel.Level)
		return nil
	}
	return e.get(ctx, p)
}

func (e *EncAVC) Set(ctx context.Context, p types.Param) (_err error) {
	logger.Tracef(ctx, "%s.Set(ctx, %s)", e, indexOf(p))
	defer func() { logger.Tracef(ctx, "/%s.Set(ctx, %s): %v", e, indexOf(p), _err) }()
	if types.IsNil(p) {
		return badParameter(p, errNilPayload)
	}

	switch p := p.(type) {
	case *types.ProfileLevel:
		profile, err := avcProfileLevelToDriver(*p, e.caps.ProfileLevels)
		if err != nil {
			return badParameter(p, err)
		}
		e.settings.Channel.Profile = profile
		e.settings.Channel.Level = p.Level
		logger.Debugf(ctx, "set %s to %s", p.Index(), p)
		return nil
	}
	return e.set(ctx, p)
}
