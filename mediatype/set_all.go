// set_all.go implements snapshots and the transactional SetAll.

package mediatype

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/xaionaro-go/vcusettings/logger"
	"github.com/xaionaro-go/vcusettings/transaction"
	"github.com/xaionaro-go/vcusettings/types"
)

// State is a saved copy of a store as taken by Snapshot.
type State struct {
	// Params holds the saved field group values.
	Params []types.Param

	// record is the whole state of a built-in store, including what Get
	// does not show (e.g. whether the frame rate is forced).
	record any
}

// stateKeeper is implemented by the stores of this package.
type stateKeeper interface {
	saveState() any
	loadState(any)
}

var (
	_ stateKeeper = (*DecAVC)(nil)
	_ stateKeeper = (*DecHEVC)(nil)
	_ stateKeeper = (*EncAVC)(nil)
	_ stateKeeper = (*EncHEVC)(nil)
)

// snapshotDependencies lists the indices whose value a Set of the key index
// may change as a side effect (a format change may widen the stride).
var snapshotDependencies = map[types.Index][]types.Index{
	types.IndexFormat: {types.IndexResolution},
}

// Snapshot reads the current value of every given index and of the indices
// they affect. Restoring it with Restore puts those field groups back; for
// the stores of this package it puts back the whole driver record.
func Snapshot(ctx context.Context, m Mediatype, indexes ...types.Index) (State, error) {
	var all []types.Index
	add := func(idx types.Index) {
		if !slices.Contains(all, idx) {
			all = append(all, idx)
		}
	}
	for _, idx := range indexes {
		add(idx)
		for _, dep := range snapshotDependencies[idx] {
			add(dep)
		}
	}

	// the resolution carries the stride request, it goes last so that
	// nothing restored after it widens the stride again
	slices.SortStableFunc(all, func(a, b types.Index) int {
		return boolToInt(a == types.IndexResolution) - boolToInt(b == types.IndexResolution)
	})

	result := make([]types.Param, 0, len(all))
	for _, idx := range all {
		p, err := types.NewParam(idx)
		if err != nil {
			return State{}, err
		}
		if err := m.Get(ctx, p); err != nil {
			return State{}, fmt.Errorf("unable to get %s: %w", idx, err)
		}
		result = append(result, p)
	}

	state := State{Params: result}
	if keeper, ok := m.(stateKeeper); ok {
		state.record = keeper.saveState()
	}
	return state, nil
}

// Restore puts the snapshot back. For stores outside of this package it sets every
// snapshotted value back; field groups the store does not accept a Set for
// cannot have changed and are skipped.
func Restore(ctx context.Context, m Mediatype, snapshot State) error {
	if keeper, ok := m.(stateKeeper); ok && snapshot.record != nil {
		keeper.loadState(snapshot.record)
		logger.Debugf(ctx, "restored the %s record", m)
		return nil
	}

	var result []error
	for _, p := range snapshot.Params {
		err := m.Set(ctx, p)
		switch types.ErrorCodeOf(err) {
		case types.ErrorCodeNone, types.ErrorCodeBadIndex, types.ErrorCodeNotImplemented:
			continue
		}
		result = append(result, fmt.Errorf("unable to restore %s: %w", p.Index(), err))
	}
	return errors.Join(result...)
}

// SetAll applies params in order as one transaction: if any Set fails,
// every field group touched is restored and the error of the failing Set
// (wrapped in a transaction.ErrStep) is returned.
func SetAll(ctx context.Context, m Mediatype, params ...types.Param) (_err error) {
	logger.Debugf(ctx, "SetAll(ctx, %s, %d params)", m, len(params))
	defer func() { logger.Debugf(ctx, "/SetAll(ctx, %s, %d params): %v", m, len(params), _err) }()

	indexes := make([]types.Index, 0, len(params))
	steps := make([]transaction.Step, 0, len(params))
	for _, p := range params {
		if types.IsNil(p) {
			return badParameter(p, errNilPayload)
		}
		indexes = append(indexes, p.Index())
		steps = append(steps, transaction.Step{
			Name: p.Index().String(),
			Apply: func(ctx context.Context) error {
				return m.Set(ctx, p)
			},
		})
	}

	return transaction.Do(ctx,
		func(ctx context.Context) (State, error) {
			return Snapshot(ctx, m, indexes...)
		},
		func(ctx context.Context, snapshot State) error {
			return Restore(ctx, m, snapshot)
		},
		steps...,
	)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
