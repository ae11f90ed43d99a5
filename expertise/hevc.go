// hevc.go implements the HEVC parameter block adapter.

package expertise

import (
	"context"

	"github.com/xaionaro-go/typing"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/mediatype"
	"github.com/xaionaro-go/vcusettings/omx"
	"github.com/xaionaro-go/vcusettings/types"
)

var hevcProfileLevelCodec = profileLevelCodec{
	fromModule: func(pl types.ProfileLevel) (uint32, uint32) {
		profile, level := omx.HEVCProfileLevelFromModule(pl)
		return uint32(profile), uint32(level)
	},
	toModule: func(profile, level uint32) types.ProfileLevel {
		return omx.HEVCProfileLevelToModule(omx.HEVCProfile(profile), omx.HEVCLevel(level))
	},
}

// HEVC is the adapter of omx.HEVCParams. The block has no entropy coding
// field: HEVC is always CABAC.
type HEVC struct{}

func (HEVC) String() string { return "HEVC" }

func (HEVC) GetProfileLevelSupported(ctx context.Context, m mediatype.Mediatype, index uint32) (typing.Optional[omx.ProfileLevelParams], error) {
	return getProfileLevelSupported(ctx, m, index, hevcProfileLevelCodec)
}

func (HEVC) GetProfileLevel(ctx context.Context, m mediatype.Mediatype) (omx.ProfileLevelParams, error) {
	return getProfileLevel(ctx, m, hevcProfileLevelCodec)
}

func (HEVC) SetProfileLevel(ctx context.Context, m mediatype.Mediatype, params omx.ProfileLevelParams) error {
	return setProfileLevel(ctx, m, params, hevcProfileLevelCodec)
}

func (HEVC) GetExpertise(ctx context.Context, m mediatype.Mediatype) (_ret omx.HEVCParams, _err error) {
	logger.Tracef(ctx, "GetExpertise(ctx, %s)", m)
	defer func() { logger.Tracef(ctx, "/GetExpertise(ctx, %s): %v", m, _err) }()

	var (
		gop        types.Gop
		pl         types.ProfileLevel
		constIpred types.ConstrainedIntraPrediction
		loopFilter types.LoopFilter
	)
	if err := getAll(ctx, m, &gop, &pl, &constIpred, &loopFilter); err != nil {
		return omx.HEVCParams{}, err
	}

	bFrames, pFrames := omx.GopFromModule(gop)
	profile, level := omx.HEVCProfileLevelFromModule(pl)
	return omx.HEVCParams{
		PFrames:        pFrames,
		BFrames:        bFrames,
		Profile:        profile,
		Level:          level,
		ConstIpred:     omx.BoolFromModule(bool(constIpred)),
		LoopFilterMode: omx.HEVCLoopFilterFromModule(loopFilter),
	}, nil
}

// SetExpertise applies the GOP, the profile level (with its tier), the
// constrained intra prediction and the loop filter of params, in this
// order. If any of them is rejected, all of them are restored.
func (HEVC) SetExpertise(ctx context.Context, m mediatype.Mediatype, params omx.HEVCParams) (_err error) {
	logger.Tracef(ctx, "SetExpertise(ctx, %s, %#+v)", m, params)
	defer func() { logger.Tracef(ctx, "/SetExpertise(ctx, %s, %#+v): %v", m, params, _err) }()

	pl := omx.HEVCProfileLevelToModule(params.Profile, params.Level)
	constIpred := types.ConstrainedIntraPrediction(omx.BoolToModule(params.ConstIpred))
	loopFilter := omx.HEVCLoopFilterToModule(params.LoopFilterMode)

	return apply(ctx, m,
		[]types.Index{
			types.IndexGop,
			types.IndexProfileLevel,
			types.IndexConstrainedIntraPrediction,
			types.IndexLoopFilter,
		},
		gopStep(m, params.BFrames, params.PFrames),
		setStep(m, &pl),
		setStep(m, &constIpred),
		setStep(m, &loopFilter),
	)
}
