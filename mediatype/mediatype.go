// mediatype.go defines the store interfaces and the New constructor.

// Package mediatype implements the per-channel settings stores: one per
// codec (AVC, HEVC) and direction (decode, encode).
//
// A store owns the driver settings record of its channel. Get never changes
// anything; Set validates the payload against the capability tables, converts
// it to the driver vocabulary and recomputes the stride state that depends on
// it. A failed Set leaves the store as it was.
//
// Stores do no locking; see Locked.
package mediatype

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/vcusettings/driver"
	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/types"
)

type Mediatype interface {
	fmt.Stringer

	// Reset restores the defaults of the store; it never fails.
	Reset(ctx context.Context)

	// Get fills in p with the current value of its field group.
	Get(ctx context.Context, p types.Param) error

	// Set applies the value of p to its field group.
	Set(ctx context.Context, p types.Param) error
}

// Decoder is a store that produces a decoder settings record.
type Decoder interface {
	Mediatype
	DriverSettings() driver.DecSettings
}

// Encoder is a store that produces an encoder settings record.
type Encoder interface {
	Mediatype
	DriverSettings() driver.EncSettings
}

type Direction int

const (
	DirectionUndefined = Direction(iota)
	DirectionDecode
	DirectionEncode
)

func (d Direction) String() string {
	switch d {
	case DirectionDecode:
		return "decode"
	case DirectionEncode:
		return "encode"
	}
	return fmt.Sprintf("unknown_direction_%d", int(d))
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "decode", "dec":
		return DirectionDecode, nil
	case "encode", "enc":
		return DirectionEncode, nil
	}
	return DirectionUndefined, fmt.Errorf("unknown direction '%s'", s)
}

// Target is what the buffers of the channel are exchanged with.
type Target int

const (
	TargetUndefined = Target(iota)
	TargetSoftware
	TargetHardware
)

func (t Target) String() string {
	switch t {
	case TargetSoftware:
		return "software"
	case TargetHardware:
		return "hardware"
	}
	return fmt.Sprintf("unknown_target_%d", int(t))
}

func ParseTarget(s string) (Target, error) {
	switch s {
	case "software", "soft":
		return TargetSoftware, nil
	case "hardware", "hard":
		return TargetHardware, nil
	}
	return TargetUndefined, fmt.Errorf("unknown target '%s'", s)
}

// Options returns the buffer configuration of the target.
func (t Target) Options() Options {
	switch t {
	case TargetHardware:
		return Options{
			OptionBufferContiguities{BufferContiguities: types.BufferContiguities{Input: true, Output: true}},
			OptionBufferBytesAlignments{BufferBytesAlignments: types.BufferBytesAlignments{Input: 32, Output: 32}},
		}
	}
	return nil
}

// New builds the store for the codec and direction; opts override the
// buffer configuration implied by target.
func New(
	ctx context.Context,
	codec types.Compression,
	direction Direction,
	target Target,
	opts ...Option,
) (_ret Mediatype, _err error) {
	logger.Debugf(ctx, "New(ctx, %s, %s, %s, %#+v)", codec, direction, target, opts)
	defer func() { logger.Debugf(ctx, "/New(ctx, %s, %s, %s): %v %v", codec, direction, target, _ret, _err) }()

	switch target {
	case TargetSoftware, TargetHardware:
	default:
		return nil, fmt.Errorf("unknown target %s", target)
	}
	opts = append(target.Options(), opts...)

	switch direction {
	case DirectionDecode:
		switch codec {
		case types.CompressionAVC:
			return NewDecAVC(ctx, opts...), nil
		case types.CompressionHEVC:
			return NewDecHEVC(ctx, opts...), nil
		}
	case DirectionEncode:
		switch codec {
		case types.CompressionAVC:
			return NewEncAVC(ctx, opts...), nil
		case types.CompressionHEVC:
			return NewEncHEVC(ctx, opts...), nil
		}
	default:
		return nil, fmt.Errorf("unknown direction %s", direction)
	}
	return nil, fmt.Errorf("there is no %s store for codec %s", direction, codec)
}
