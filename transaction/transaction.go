// Package transaction applies a sequence of dependent changes as one unit:
// either every step succeeds, or the state saved before the first step is
// put back.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/xaionaro-go/vcusettings/logger"
)

// Step is one named sub-operation of a transaction.
type Step struct {
	Name  string
	Apply func(ctx context.Context) error
}

// ErrStep is returned when a step fails (after the restore was attempted).
type ErrStep struct {
	Step string
	Err  error
}

func (e ErrStep) Error() string {
	return fmt.Sprintf("step '%s' failed: %v", e.Step, e.Err)
}

func (e ErrStep) Unwrap() error {
	return e.Err
}

// ErrRestore is joined to ErrStep when putting the snapshot back fails too;
// the state is then undefined.
type ErrRestore struct {
	Err error
}

func (e ErrRestore) Error() string {
	return fmt.Sprintf("unable to restore the previous state: %v", e.Err)
}

func (e ErrRestore) Unwrap() error {
	return e.Err
}

// Do takes a snapshot, applies the steps in order and, on the first failing
// step, restores the snapshot and returns an ErrStep.
func Do[S any](
	ctx context.Context,
	snapshot func(ctx context.Context) (S, error),
	restore func(ctx context.Context, snapshot S) error,
	steps ...Step,
) (_err error) {
	logger.Tracef(ctx, "transaction.Do(ctx, %d steps)", len(steps))
	defer func() { logger.Tracef(ctx, "/transaction.Do(ctx, %d steps): %v", len(steps), _err) }()

	saved, err := snapshot(ctx)
	if err != nil {
		return fmt.Errorf("unable to take a snapshot: %w", err)
	}

	for _, step := range steps {
		err := step.Apply(ctx)
		if err == nil {
			continue
		}
		stepErr := ErrStep{Step: step.Name, Err: err}
		logger.Debugf(ctx, "%v; rolling back", stepErr)
		if restoreErr := restore(ctx, saved); restoreErr != nil {
			logger.Errorf(ctx, "unable to roll back after step '%s': %v", step.Name, restoreErr)
			return errors.Join(stepErr, ErrRestore{Err: restoreErr})
		}
		return stepErr
	}
	return nil
}
