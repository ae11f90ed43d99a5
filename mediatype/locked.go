// locked.go provides a mutex-protected wrapper of a store.

package mediatype

import (
	"context"

	"github.com/xaionaro-go/vcusettings/types"
	"github.com/xaionaro-go/xsync"
	"go.uber.org/atomic"
)

// Locked serializes the access to a store, for callers that cannot
// guarantee a single channel-management goroutine.
//
// Revision counts the successful mutations, so a reader can tell whether
// the settings changed between two observations.
type Locked struct {
	locker   xsync.Mutex
	backend  Mediatype
	revision atomic.Uint64
}

var _ Mediatype = (*Locked)(nil)

func NewLocked(backend Mediatype) *Locked {
	return &Locked{
		backend: backend,
	}
}

func (l *Locked) String() string {
	return "Locked(" + l.backend.String() + ")"
}

func (l *Locked) Reset(ctx context.Context) {
	l.locker.Do(xsync.WithNoLogging(ctx, true), func() {
		l.backend.Reset(ctx)
		l.revision.Inc()
	})
}

func (l *Locked) Get(ctx context.Context, p types.Param) error {
	return xsync.DoA2R1(xsync.WithNoLogging(ctx, true), &l.locker, l.backend.Get, ctx, p)
}

func (l *Locked) Set(ctx context.Context, p types.Param) error {
	return xsync.DoA2R1(xsync.WithNoLogging(ctx, true), &l.locker, l.setLocked, ctx, p)
}

func (l *Locked) setLocked(ctx context.Context, p types.Param) error {
	if err := l.backend.Set(ctx, p); err != nil {
		return err
	}
	l.revision.Inc()
	return nil
}

// SetAll is the locked version of the package-level SetAll: no reader
// observes the store in the middle of the transaction.
func (l *Locked) SetAll(ctx context.Context, params ...types.Param) error {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &l.locker, func() error {
		if err := SetAll(ctx, l.backend, params...); err != nil {
			return err
		}
		l.revision.Inc()
		return nil
	})
}

func (l *Locked) Revision() uint64 {
	return l.revision.Load()
}

// Backend returns the wrapped store; using it bypasses the lock.
func (l *Locked) Backend() Mediatype {
	return l.backend
}
