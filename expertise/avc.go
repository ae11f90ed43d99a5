// avc.go implements the AVC parameter block adapter.

package expertise

import (
	"context"

	"github.com/xaionaro-go/typing"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/mediatype"
	"github.com/xaionaro-go/vcusettings/omx"
	"github.com/xaionaro-go/vcusettings/types"
)

// The fields of omx.AVCParams the encoder has no setting for.
const (
	avcRefFrames            = 1
	avcAllowedPictureTypes  = omx.PictureTypeI | omx.PictureTypeP | omx.PictureTypeB
	avcWeightedBiprediction = 0
	avcCabacInitIdc         = 0
)

var avcProfileLevelCodec = profileLevelCodec{
	fromModule: func(pl types.ProfileLevel) (uint32, uint32) {
		profile, level := omx.AVCProfileLevelFromModule(pl)
		return uint32(profile), uint32(level)
	},
	toModule: func(profile, level uint32) types.ProfileLevel {
		return omx.AVCProfileLevelToModule(omx.AVCProfile(profile), omx.AVCLevel(level))
	},
}

// AVC is the adapter of omx.AVCParams.
type AVC struct{}

func (AVC) String() string { return "AVC" }

func (AVC) GetProfileLevelSupported(ctx context.Context, m mediatype.Mediatype, index uint32) (typing.Optional[omx.ProfileLevelParams], error) {
	return getProfileLevelSupported(ctx, m, index, avcProfileLevelCodec)
}

func (AVC) GetProfileLevel(ctx context.Context, m mediatype.Mediatype) (omx.ProfileLevelParams, error) {
	return getProfileLevel(ctx, m, avcProfileLevelCodec)
}

func (AVC) SetProfileLevel(ctx context.Context, m mediatype.Mediatype, params omx.ProfileLevelParams) error {
	return setProfileLevel(ctx, m, params, avcProfileLevelCodec)
}

func (AVC) GetExpertise(ctx context.Context, m mediatype.Mediatype) (_ret omx.AVCParams, _err error) {
	logger.Tracef(ctx, "GetExpertise(ctx, %s)", m)
	defer func() { logger.Tracef(ctx, "/GetExpertise(ctx, %s): %v", m, _err) }()

	var (
		gop        types.Gop
		pl         types.ProfileLevel
		entropy    types.EntropyCoding
		constIpred types.ConstrainedIntraPrediction
		loopFilter types.LoopFilter
	)
	if err := getAll(ctx, m, &gop, &pl, &entropy, &constIpred, &loopFilter); err != nil {
		return omx.AVCParams{}, err
	}

	bFrames, pFrames := omx.GopFromModule(gop)
	profile, level := omx.AVCProfileLevelFromModule(pl)
	return omx.AVCParams{
		PFrames:                  pFrames,
		BFrames:                  bFrames,
		UseHadamard:              omx.True,
		RefFrames:                avcRefFrames,
		EnableUEP:                omx.False,
		EnableFMO:                omx.False,
		EnableASO:                omx.False,
		EnableRS:                 omx.False,
		Profile:                  profile,
		Level:                    level,
		AllowedPictureTypes:      avcAllowedPictureTypes,
		FrameMBsOnly:             omx.True,
		MBAFF:                    omx.False,
		EntropyCodingCABAC:       omx.EntropyCodingFromModule(entropy),
		WeightedPPrediction:      omx.False,
		WeightedBipredictionMode: avcWeightedBiprediction,
		ConstIpred:               omx.BoolFromModule(bool(constIpred)),
		Direct8x8Inference:       omx.True,
		DirectSpatialTemporal:    omx.True,
		CabacInitIdc:             avcCabacInitIdc,
		LoopFilterMode:           omx.AVCLoopFilterFromModule(loopFilter),
	}, nil
}

// SetExpertise applies the GOP, the profile level, the entropy coding, the
// constrained intra prediction and the loop filter of params, in this
// order. If any of them is rejected, all of them are restored. The other
// fields of params are ignored.
func (AVC) SetExpertise(ctx context.Context, m mediatype.Mediatype, params omx.AVCParams) (_err error) {
	logger.Tracef(ctx, "SetExpertise(ctx, %s, %#+v)", m, params)
	defer func() { logger.Tracef(ctx, "/SetExpertise(ctx, %s, %#+v): %v", m, params, _err) }()

	pl := omx.AVCProfileLevelToModule(params.Profile, params.Level)
	entropy := omx.EntropyCodingToModule(params.EntropyCodingCABAC)
	constIpred := types.ConstrainedIntraPrediction(omx.BoolToModule(params.ConstIpred))
	loopFilter := omx.AVCLoopFilterToModule(params.LoopFilterMode)

	return apply(ctx, m,
		[]types.Index{
			types.IndexGop,
			types.IndexProfileLevel,
			types.IndexEntropyCoding,
			types.IndexConstrainedIntraPrediction,
			types.IndexLoopFilter,
		},
		gopStep(m, params.BFrames, params.PFrames),
		setStep(m, &pl),
		setStep(m, &entropy),
		setStep(m, &constIpred),
		setStep(m, &loopFilter),
	)
}
