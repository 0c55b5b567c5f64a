package store

import (
	"github.com/iov-one/photosale/errors"
)

// SliceIterator iterates over preloaded models in the order given.
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{data: data}
}

func (s *SliceIterator) Valid() bool {
	return s.idx < len(s.data)
}

func (s *SliceIterator) Next() error {
	if !s.Valid() {
		return errors.Wrap(errors.ErrDatabase, "iterator exhausted")
	}
	s.idx++
	return nil
}

// Key returns nil once the iterator is exhausted.
func (s *SliceIterator) Key() []byte {
	if !s.Valid() {
		return nil
	}
	return s.data[s.idx].Key
}

// Value returns nil once the iterator is exhausted.
func (s *SliceIterator) Value() []byte {
	if !s.Valid() {
		return nil
	}
	return s.data[s.idx].Value
}

func (s *SliceIterator) Close() {
	s.data = nil
}

// EmptyKVStore holds nothing and ignores writes. MemStore caches on top
// of it.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error)  { return nil, nil }
func (EmptyKVStore) Has([]byte) (bool, error)    { return false, nil }
func (EmptyKVStore) Set(key, value []byte) error { return nil }
func (EmptyKVStore) Delete([]byte) error         { return nil }

func (EmptyKVStore) Iterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (EmptyKVStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

// Op is a single recorded write or removal.
type Op struct {
	key    []byte
	value  []byte
	remove bool
}

// SetOp records a write of the value under the key.
func SetOp(key, value []byte) Op {
	return Op{key: key, value: value}
}

// DelOp records a removal of the key.
func DelOp(key []byte) Op {
	return Op{key: key, remove: true}
}

// Apply runs the operation against out.
func (o Op) Apply(out SetDeleter) error {
	if o.remove {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// NonAtomicBatch records operations and replays them in order on Write.
// A failing operation leaves the ones before it applied, so use it only
// over in-memory stores.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write replays all recorded operations and empties the batch.
func (b *NonAtomicBatch) Write() error {
	ops := b.ops
	b.ops = nil
	for _, op := range ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	return nil
}

// ShowOps returns the operations not written yet.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}
