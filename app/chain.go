package app

import (
	"reflect"

	"github.com/iov-one/photosale"
)

// Decorators is an ordered stack of decorators waiting for the handler
// they wrap.
type Decorators struct {
	chain []photosale.Decorator
}

// ChainDecorators returns a stack of given decorators. The first decorator
// is the outermost one and runs first. Nil values are skipped.
func ChainDecorators(chain ...photosale.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with the decorators appended after the ones
// already present.
func (d Decorators) Chain(chain ...photosale.Decorator) Decorators {
	next := make([]photosale.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if !isNil(dec) {
			next = append(next, dec)
		}
	}
	return Decorators{chain: next}
}

func isNil(dec photosale.Decorator) bool {
	if dec == nil {
		return true
	}
	v := reflect.ValueOf(dec)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler returns a handler that runs every decorator of the stack
// before reaching h.
func (d Decorators) WithHandler(h photosale.Handler) photosale.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step binds a single decorator to the handler it wraps.
type step struct {
	d    photosale.Decorator
	next photosale.Handler
}

var _ photosale.Handler = step{}

func (s step) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
