package utils

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// Recovery is a decorator that turns a panic of the wrapped handler into an
// ErrPanic error. Recovered panics are logged.
type Recovery struct{}

var _ photosale.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx, next photosale.Checker) (_ *photosale.CheckResult, err error) {
	// Deferred calls run in reverse order, the panic is converted first.
	defer logPanic(ctx, &err)
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx, next photosale.Deliverer) (_ *photosale.DeliverResult, err error) {
	defer logPanic(ctx, &err)
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}

func logPanic(ctx photosale.Context, err *error) {
	if errors.ErrPanic.Is(*err) {
		photosale.GetLogger(ctx).Error("Panic recovered", "err", *err)
	}
}
