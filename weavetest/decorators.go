package weavetest

import "github.com/iov-one/photosale"

// Decorator is a mock implementation of the photosale.Decorator interface.
//
// CheckErr and DeliverErr, when set, are returned instead of calling the
// next handler. Every call is counted, failed ones included.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ photosale.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx, next photosale.Checker) (*photosale.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return &photosale.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx, next photosale.Deliverer) (*photosale.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return &photosale.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler that passes every call through the decorator
// before it reaches h.
func Decorate(h photosale.Handler, d photosale.Decorator) photosale.Handler {
	return decorated{handler: h, decorator: d}
}

type decorated struct {
	handler   photosale.Handler
	decorator photosale.Decorator
}

func (d decorated) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.handler)
}

func (d decorated) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.handler)
}
