package orm

import (
	"reflect"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// ModelBucket stores models of a single type by their primary key.
type ModelBucket interface {
	// One loads the model stored under the key into dest. It fails with
	// ErrNotFound if there is none and with ErrType if dest is of another
	// type.
	One(db photosale.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns ErrNotFound unless a model is stored under the key.
	Has(db photosale.ReadOnlyKVStore, key []byte) error

	// ByIndex returns the primary keys the named index holds for value,
	// in ascending order.
	ByIndex(db photosale.ReadOnlyKVStore, indexName string, value []byte) ([][]byte, error)

	// Put validates and saves the model.
	Put(db photosale.KVStore, key []byte, m Model) error

	// Delete removes the model. It fails with ErrNotFound if there is
	// none.
	Delete(db photosale.KVStore, key []byte) error

	// Register exposes the bucket and its indexes to queries.
	Register(name string, r photosale.QueryRouter)
}

// NewModelBucket returns a ModelBucket backed by b.
func NewModelBucket(b Bucket) ModelBucket {
	return &modelBucket{b: b}
}

type modelBucket struct {
	b Bucket
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db photosale.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T", dest)
	}
	src := reflect.ValueOf(obj.Value())
	dst := reflect.ValueOf(dest)
	if !src.Type().AssignableTo(dst.Type()) {
		return errors.Wrapf(errors.ErrType, "cannot load %s into %s", src.Type(), dst.Type())
	}
	dst.Elem().Set(src.Elem())
	return nil
}

func (mb *modelBucket) Has(db photosale.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrNotFound, "nil key")
	}
	switch ok, err := mb.b.Has(db, key); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "key %X", key)
	}
	return nil
}

func (mb *modelBucket) ByIndex(db photosale.ReadOnlyKVStore, indexName string, value []byte) ([][]byte, error) {
	idx, ok := mb.b.indexes[indexName]
	if !ok {
		return nil, errors.Wrap(ErrInvalidIndex, indexName)
	}
	return idx.GetAt(db, value)
}

func (mb *modelBucket) Put(db photosale.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	return errors.Wrap(mb.b.Save(db, NewSimpleObj(key, m)), "save")
}

func (mb *modelBucket) Delete(db photosale.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Register(name string, r photosale.QueryRouter) {
	mb.b.Register(name, r)
}
