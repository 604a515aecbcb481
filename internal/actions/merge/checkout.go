package merge

import (
	"context"
	"time"

	prerrors "prtrain.dev/prtrain/internal/errors"
	"prtrain.dev/prtrain/internal/git"
)

// restoreTimeout bounds the restoring checkout, which runs even after cancellation
const restoreTimeout = 30 * time.Second

// checkoutLease holds the working tree for the duration of a run and puts the
// original branch back when released. Release is idempotent.
type checkoutLease struct {
	backend  git.Backend
	branch   string
	released bool
}

func acquireCheckout(backend git.Backend, branch string) *checkoutLease {
	return &checkoutLease{backend: backend, branch: branch}
}

// Release checks the original branch out again. Only the first call does any work.
func (l *checkoutLease) Release(ctx context.Context) error {
	if l.released {
		return nil
	}
	l.released = true

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	defer cancel()
	if err := l.backend.Checkout(ctx, l.branch); err != nil {
		return prerrors.NewRestoreFailedError(l.branch, err)
	}
	return nil
}
