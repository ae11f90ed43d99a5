// Package expertise maps the codec parameter blocks of the component layer
// onto the encoder settings stores. One block covers several field groups
// of a store; it is applied as one transaction.
package expertise

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/typing"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/mediatype"
	"github.com/xaionaro-go/vcusettings/omx"
	"github.com/xaionaro-go/vcusettings/transaction"
	"github.com/xaionaro-go/vcusettings/types"
)

// Expertise is the part of the adapters that does not depend on the codec
// parameter block.
type Expertise interface {
	fmt.Stringer

	// GetProfileLevelSupported returns the supported profile level number
	// index, or an unset value past the end of the list.
	GetProfileLevelSupported(ctx context.Context, m mediatype.Mediatype, index uint32) (typing.Optional[omx.ProfileLevelParams], error)
	GetProfileLevel(ctx context.Context, m mediatype.Mediatype) (omx.ProfileLevelParams, error)
	SetProfileLevel(ctx context.Context, m mediatype.Mediatype, params omx.ProfileLevelParams) error
}

var (
	_ Expertise = AVC{}
	_ Expertise = HEVC{}
)

func New(codec types.Compression) (Expertise, error) {
	switch codec {
	case types.CompressionAVC:
		return AVC{}, nil
	case types.CompressionHEVC:
		return HEVC{}, nil
	}
	return nil, fmt.Errorf("no expertise for compression '%s'", codec)
}

// profileLevelCodec converts a module profile level to the untyped values
// of omx.ProfileLevelParams and back.
type profileLevelCodec struct {
	fromModule func(types.ProfileLevel) (profile, level uint32)
	toModule   func(profile, level uint32) types.ProfileLevel
}

func getProfileLevelSupported(
	ctx context.Context,
	m mediatype.Mediatype,
	index uint32,
	codec profileLevelCodec,
) (_ret typing.Optional[omx.ProfileLevelParams], _err error) {
	logger.Tracef(ctx, "getProfileLevelSupported(ctx, %s, %d)", m, index)
	defer func() { logger.Tracef(ctx, "/getProfileLevelSupported(ctx, %s, %d): %v %v", m, index, _ret, _err) }()

	var supported types.ProfileLevelsSupported
	if err := m.Get(ctx, &supported); err != nil {
		return _ret, fmt.Errorf("unable to get the supported profile levels: %w", err)
	}
	if uint64(index) >= uint64(len(supported)) {
		return _ret, nil
	}
	profile, level := codec.fromModule(supported[index])
	return typing.Opt(omx.ProfileLevelParams{
		Profile:      profile,
		Level:        level,
		ProfileIndex: index,
	}), nil
}

func getProfileLevel(
	ctx context.Context,
	m mediatype.Mediatype,
	codec profileLevelCodec,
) (omx.ProfileLevelParams, error) {
	var pl types.ProfileLevel
	if err := m.Get(ctx, &pl); err != nil {
		return omx.ProfileLevelParams{}, fmt.Errorf("unable to get the profile level: %w", err)
	}
	profile, level := codec.fromModule(pl)
	return omx.ProfileLevelParams{
		Profile: profile,
		Level:   level,
	}, nil
}

func setProfileLevel(
	ctx context.Context,
	m mediatype.Mediatype,
	params omx.ProfileLevelParams,
	codec profileLevelCodec,
) (_err error) {
	logger.Tracef(ctx, "setProfileLevel(ctx, %s, %#+v)", m, params)
	defer func() { logger.Tracef(ctx, "/setProfileLevel(ctx, %s, %#+v): %v", m, params, _err) }()
	pl := codec.toModule(params.Profile, params.Level)
	return mediatype.SetAll(ctx, m, &pl)
}

// getAll fills in every param or fails on the first Get that fails.
func getAll(ctx context.Context, m mediatype.Mediatype, params ...types.Param) error {
	for _, p := range params {
		if err := m.Get(ctx, p); err != nil {
			return fmt.Errorf("unable to get %s: %w", p.Index(), err)
		}
	}
	return nil
}

// setGop changes the GOP structure keeping the GOP control mode.
func setGop(ctx context.Context, m mediatype.Mediatype, bFrames, pFrames uint32) error {
	var gop types.Gop
	if err := m.Get(ctx, &gop); err != nil {
		return err
	}
	gop.B, gop.Length = omx.GopToModule(bFrames, pFrames)
	return m.Set(ctx, &gop)
}

func setStep(m mediatype.Mediatype, p types.Param) transaction.Step {
	return transaction.Step{
		Name: p.Index().String(),
		Apply: func(ctx context.Context) error {
			return m.Set(ctx, p)
		},
	}
}

func gopStep(m mediatype.Mediatype, bFrames, pFrames uint32) transaction.Step {
	return transaction.Step{
		Name: types.IndexGop.String(),
		Apply: func(ctx context.Context) error {
			return setGop(ctx, m, bFrames, pFrames)
		},
	}
}

// apply runs the steps as one transaction over the field groups the
// parameter block covers.
func apply(ctx context.Context, m mediatype.Mediatype, indexes []types.Index, steps ...transaction.Step) error {
	return transaction.Do(ctx,
		func(ctx context.Context) (mediatype.State, error) {
			return mediatype.Snapshot(ctx, m, indexes...)
		},
		func(ctx context.Context, snapshot mediatype.State) error {
			return mediatype.Restore(ctx, m, snapshot)
		},
		steps...,
	)
}
