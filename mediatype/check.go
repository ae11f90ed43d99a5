// check.go provides the payload validation shared by the stores.

package mediatype

import (
	"errors"
	"fmt"

	"github.com/xaionaro-go/vcusettings/capability"
	"github.com/xaionaro-go/vcusettings/types"
)

const (
	minEntropyBuffer = 2
	maxEntropyBuffer = 16

	minGopLength = 1
	maxGopLength = 1000
	maxGopB      = 4
)

func badParameter(p types.Param, err error) error {
	return types.ErrBadParameter{Index: indexOf(p), Err: err}
}

func badIndex(p types.Param) error {
	return types.ErrBadIndex{Index: indexOf(p)}
}

func notImplemented(p types.Param) error {
	return types.ErrNotImplemented{Index: indexOf(p)}
}

// indexOf is safe for a nil interface; typed nil pointers report their index.
func indexOf(p types.Param) types.Index {
	if p == nil {
		return types.IndexUndefined
	}
	return p.Index()
}

var errNilPayload = errors.New("no payload")

func checkResolution(r types.Resolution) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("the resolution %dx%d is empty", r.Width, r.Height)
	}
	if r.Width%2 != 0 || r.Height%2 != 0 {
		return fmt.Errorf("the resolution %dx%d is not even", r.Width, r.Height)
	}
	if r.Stride.Horizontal < 0 || r.Stride.Vertical < 0 {
		return fmt.Errorf("negative stride %s", r.Stride)
	}
	return nil
}

func checkFormat(f types.Format, formats capability.Set[types.Format]) error {
	if !formats.Has(f) {
		return fmt.Errorf("format %s is not supported", f)
	}
	return nil
}

func checkClock(c types.Clock) error {
	if c.Framerate < 0 || c.ClockRatio < 0 {
		return fmt.Errorf("negative clock %s", c)
	}
	if c.Framerate != 0 && c.ClockRatio == 0 {
		return fmt.Errorf("clock %s: the clock ratio cannot be zero with a fixed frame rate", c)
	}
	return nil
}

func checkInternalEntropyBuffer(b types.InternalEntropyBuffer) error {
	if b < minEntropyBuffer || b > maxEntropyBuffer {
		return fmt.Errorf("internal entropy buffer %d is out of range [%d, %d]", b, minEntropyBuffer, maxEntropyBuffer)
	}
	return nil
}

func checkMember[T any](kind string, v T, set capability.Set[T]) error {
	if !set.Has(v) {
		return fmt.Errorf("%s %v is not supported", kind, v)
	}
	return nil
}

func checkGop(g types.Gop, modes capability.Set[types.GopControl]) error {
	if err := checkMember("gop mode", g.Mode, modes); err != nil {
		return err
	}
	if g.Length < minGopLength || g.Length > maxGopLength {
		return fmt.Errorf("gop length %d is out of range [%d, %d]", g.Length, minGopLength, maxGopLength)
	}
	if g.B < 0 || g.B > maxGopB {
		return fmt.Errorf("number of B-pictures %d is out of range [0, %d]", g.B, maxGopB)
	}
	if g.Length%(g.B+1) != 0 {
		return fmt.Errorf("gop length %d is not a multiple of %d (B-pictures + 1)", g.Length, g.B+1)
	}
	return nil
}

func checkBitrate(b types.Bitrate, modes capability.Set[types.RateControl]) error {
	if err := checkMember("rate control", b.Mode, modes); err != nil {
		return err
	}
	if b.Mode == types.RateControlConstantQuantization {
		return nil
	}
	if b.Target <= 0 {
		return fmt.Errorf("target bitrate %d must be positive", b.Target)
	}
	if b.Max < b.Target {
		return fmt.Errorf("max bitrate %d is below the target bitrate %d", b.Max, b.Target)
	}
	return nil
}

func errUnsupported(v any) error {
	return fmt.Errorf("%v is not supported", v)
}
