package utils

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// Savepoint runs the wrapped handler on a cache of the store. Changes are
// written only if the handler succeeds. Check and Deliver calls are enabled
// separately, a new Savepoint passes everything through.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ photosale.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator. Call OnCheck or OnDeliver to
// enable it.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a copy that isolates Check calls.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a copy that isolates Deliver calls.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx, next photosale.Checker) (*photosale.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	var res *photosale.CheckResult
	err := withCache(store, func(db photosale.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx photosale.Context, store photosale.KVStore, tx photosale.Tx, next photosale.Deliverer) (*photosale.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	var res *photosale.DeliverResult
	err := withCache(store, func(db photosale.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// withCache calls fn with a cache of the store and writes it back if fn
// succeeds. A store that cannot be cached is given to fn directly.
func withCache(store photosale.KVStore, fn func(photosale.KVStore) error) error {
	cstore, ok := store.(photosale.CacheableKVStore)
	if !ok {
		return fn(store)
	}
	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return errors.Wrap(cache.Write(), "write savepoint")
}
