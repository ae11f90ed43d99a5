package mediatype

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/vcusettings/transaction"
	"github.com/xaionaro-go/vcusettings/types"
)

func TestSetAll(t *testing.T) {
	ctx := context.Background()
	m := NewEncAVC(ctx)

	require.NoError(t, SetAll(ctx, m,
		&types.Resolution{Width: 1920, Height: 1080},
		&types.Format{Color: types.Color422, BitDepth: 10},
		&types.Gop{Length: 60, B: 2, Mode: types.GopControlDefault},
	))

	var res types.Resolution
	require.NoError(t, m.Get(ctx, &res))
	require.Equal(t, 1920, res.Width)
	require.Equal(t, 2560, res.Stride.Horizontal)
	var gop types.Gop
	require.NoError(t, m.Get(ctx, &gop))
	require.Equal(t, 2, gop.B)
}

func TestSetAllRollback(t *testing.T) {
	ctx := context.Background()
	for name, m := range allStores(ctx) {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			before := getAll(t, ctx, m)

			err := SetAll(ctx, m,
				&types.Resolution{Width: 3840, Height: 2160},
				&types.Format{Color: types.Color422, BitDepth: 10},
				&types.Clock{Framerate: 25, ClockRatio: 1000},
				&types.Resolution{Width: 1921, Height: 1080},
			)
			require.Error(t, err)
			require.Equal(t, types.ErrorCodeBadParameter, types.ErrorCodeOf(err))
			var stepErr transaction.ErrStep
			require.ErrorAs(t, err, &stepErr)
			require.Equal(t, types.IndexResolution.String(), stepErr.Step)

			require.Equal(t, before, getAll(t, ctx, m))
		})
	}
}

func driverRecord(t *testing.T, m Mediatype) any {
	switch m := m.(type) {
	case Decoder:
		return m.DriverSettings()
	case Encoder:
		return m.DriverSettings()
	}
	require.FailNow(t, "no driver record", "%T", m)
	return nil
}

func TestSetAllRollbackKeepsDriverRecord(t *testing.T) {
	ctx := context.Background()
	for name, m := range allStores(ctx) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			before := driverRecord(t, m)

			err := SetAll(ctx, m,
				&types.Clock{Framerate: 25, ClockRatio: 1000},
				&types.Format{Color: types.Color422, BitDepth: 10},
				&types.Resolution{Width: 1921, Height: 1080},
			)
			require.Equal(t, types.ErrorCodeBadParameter, types.ErrorCodeOf(err))
			require.Equal(t, before, driverRecord(t, m))
		})
	}

	m := NewDecAVC(ctx)
	require.False(t, m.DriverSettings().ForceFrameRate)
	err := SetAll(ctx, m,
		&types.Clock{Framerate: 25, ClockRatio: 1000},
		&types.Resolution{Width: 1921, Height: 1080},
	)
	require.Error(t, err)
	require.False(t, m.DriverSettings().ForceFrameRate)
	require.Equal(t, 60000, m.DriverSettings().FrameRate)
}

type plainStore struct {
	Mediatype
}

func TestRestoreThroughSet(t *testing.T) {
	ctx := context.Background()
	m := plainStore{NewEncHEVC(ctx)}
	before := getAll(t, ctx, m)

	state, err := Snapshot(ctx, m, types.IndexGop, types.IndexFormat)
	require.NoError(t, err)
	require.Len(t, state.Params, 3)
	require.Equal(t, types.IndexResolution, state.Params[2].Index())

	require.NoError(t, m.Set(ctx, &types.Format{Color: types.Color420, BitDepth: 10}))
	require.NoError(t, m.Set(ctx, &types.Gop{Length: 60, B: 2, Mode: types.GopControlDefault}))
	require.NoError(t, Restore(ctx, m, state))
	require.Equal(t, before, getAll(t, ctx, m))
}

func TestSetAllFormatBeforeResolution(t *testing.T) {
	ctx := context.Background()
	m := NewDecAVC(ctx)
	require.NoError(t, m.Set(ctx, &types.Resolution{Width: 1920, Height: 1080}))
	before := getAll(t, ctx, m)

	// the format widens the stride; the rollback must narrow it back
	err := SetAll(ctx, m,
		&types.Format{Color: types.Color420, BitDepth: 10},
		ptr(types.InternalEntropyBuffer(100)),
	)
	require.Equal(t, types.ErrorCodeBadParameter, types.ErrorCodeOf(err))
	require.Equal(t, before, getAll(t, ctx, m))
}

func TestSetAllReadOnlyIndex(t *testing.T) {
	ctx := context.Background()
	m := NewDecHEVC(ctx)
	before := getAll(t, ctx, m)

	err := SetAll(ctx, m,
		&types.Resolution{Width: 640, Height: 480},
		&types.ProfileLevel{Profile: types.Profile{HEVC: types.HEVCProfileMain}, Level: 41},
	)
	require.Equal(t, types.ErrorCodeNotImplemented, types.ErrorCodeOf(err))
	require.Equal(t, before, getAll(t, ctx, m))

	err = SetAll(ctx, m, &types.Gop{})
	require.Equal(t, types.ErrorCodeBadIndex, types.ErrorCodeOf(err))

	err = SetAll(ctx, m, nil)
	require.Equal(t, types.ErrorCodeBadParameter, types.ErrorCodeOf(err))
}

func TestLocked(t *testing.T) {
	ctx := context.Background()
	l := NewLocked(NewDecAVC(ctx))
	require.Zero(t, l.Revision())

	require.Error(t, l.Set(ctx, &types.Resolution{Width: 3, Height: 3}))
	require.Zero(t, l.Revision())

	require.NoError(t, l.Set(ctx, &types.Resolution{Width: 640, Height: 480}))
	require.Equal(t, uint64(1), l.Revision())

	require.Error(t, l.SetAll(ctx, &types.Resolution{Width: 320, Height: 240}, ptr(types.InternalEntropyBuffer(0))))
	require.Equal(t, uint64(1), l.Revision())

	var res types.Resolution
	require.NoError(t, l.Get(ctx, &res))
	require.Equal(t, 640, res.Width)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			width := 2 * (i + 1)
			require.NoError(t, l.SetAll(ctx, &types.Resolution{Width: width, Height: width}))
			var res types.Resolution
			require.NoError(t, l.Get(ctx, &res))
		}(i)
	}
	wg.Wait()
	require.Equal(t, uint64(17), l.Revision())

	l.Reset(ctx)
	require.Equal(t, uint64(18), l.Revision())
	require.NoError(t, l.Get(ctx, &res))
	require.Equal(t, 176, res.Width)
	require.Equal(t, "Locked(DecAVC)", l.String())
}
