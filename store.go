package photosale

// ReadOnlyKVStore gives read access to the ledger state. A nil key is a
// programming error.
type ReadOnlyKVStore interface {
	// Get returns nil if nothing is stored under the key.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)

	// Iterator walks the keys in [start, end) in ascending order. A nil
	// bound is open. The range must not be written to while the iterator
	// is open.
	Iterator(start, end []byte) (Iterator, error)
	// ReverseIterator walks the keys in [start, end) starting from the
	// highest one.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write part shared by KVStore and Batch.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the state passed to every handler.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch collects writes and applies them all on Write.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator is a cursor over a range of keys.
//
//   it, err := db.Iterator(start, end)
//   ...
//   defer it.Close()
//   for ; it.Valid(); err = it.Next() {
//     key, value := it.Key(), it.Value()
//   }
//
// Key and Value must not be called on an invalid iterator. The returned
// slices must not be modified.
type Iterator interface {
	// Valid returns false once the range is exhausted.
	Valid() bool
	Next() error
	Key() []byte
	Value() []byte
	Close()
}

// CacheableKVStore can stack a cache of uncommitted writes on top of
// itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap holds writes that every read through it can see. Write
// applies them to the store underneath and Discard drops them. A cache
// can be cached again, which is how savepoints nest.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the versioned root store of the ledger. Every change
// goes through a CacheWrap and becomes durable with Commit.
type CommitKVStore interface {
	// Get reads the last committed state.
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap

	// Commit persists the next version.
	Commit() (CommitID, error)
	// LoadLatestVersion restores the last version that was fully
	// committed.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by its number and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
