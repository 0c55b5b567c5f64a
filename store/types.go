package store

import "github.com/iov-one/photosale"

// Aliases of the storage interfaces so that store implementations do not
// need to import the root package.
type (
	ReadOnlyKVStore  = photosale.ReadOnlyKVStore
	SetDeleter       = photosale.SetDeleter
	KVStore          = photosale.KVStore
	Batch            = photosale.Batch
	Iterator         = photosale.Iterator
	CacheableKVStore = photosale.CacheableKVStore
	KVCacheWrap      = photosale.KVCacheWrap
	CommitKVStore    = photosale.CommitKVStore
	CommitID         = photosale.CommitID
	Model            = photosale.Model
)

// Pair returns a Model for given key and value.
func Pair(key, value []byte) Model {
	return photosale.Pair(key, value)
}
