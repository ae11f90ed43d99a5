package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type state struct {
	A, B, C int
}

func steps(s *state, failAt string) []Step {
	set := func(name string, field *int, value int) Step {
		return Step{
			Name: name,
			Apply: func(ctx context.Context) error {
				if name == failAt {
					return errors.New("injected")
				}
				*field = value
				return nil
			},
		}
	}
	return []Step{
		set("a", &s.A, 10),
		set("b", &s.B, 20),
		set("c", &s.C, 30),
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()
	for _, failAt := range []string{"", "a", "b", "c"} {
		failAt := failAt
		t.Run("fail_at_"+failAt, func(t *testing.T) {
			t.Parallel()
			s := &state{A: 1, B: 2, C: 3}
			err := Do(ctx,
				func(ctx context.Context) (state, error) { return *s, nil },
				func(ctx context.Context, saved state) error { *s = saved; return nil },
				steps(s, failAt)...,
			)
			if failAt == "" {
				require.NoError(t, err)
				require.Equal(t, state{A: 10, B: 20, C: 30}, *s)
				return
			}

			var stepErr ErrStep
			require.ErrorAs(t, err, &stepErr)
			require.Equal(t, failAt, stepErr.Step)
			require.Equal(t, state{A: 1, B: 2, C: 3}, *s)
		})
	}
}

func TestDoRestoreFailure(t *testing.T) {
	s := &state{}
	restoreErr := errors.New("restore failed")
	err := Do(context.Background(),
		func(ctx context.Context) (state, error) { return *s, nil },
		func(ctx context.Context, saved state) error { return restoreErr },
		steps(s, "b")...,
	)
	require.Error(t, err)
	require.ErrorIs(t, err, restoreErr)

	var stepErr ErrStep
	require.ErrorAs(t, err, &stepErr)
	var restoreErrT ErrRestore
	require.ErrorAs(t, err, &restoreErrT)
}

func TestDoSnapshotFailure(t *testing.T) {
	applied := false
	err := Do(context.Background(),
		func(ctx context.Context) (int, error) { return 0, errors.New("no snapshot") },
		func(ctx context.Context, saved int) error { return nil },
		Step{Name: "x", Apply: func(ctx context.Context) error { applied = true; return nil }},
	)
	require.Error(t, err)
	require.False(t, applied)
}
