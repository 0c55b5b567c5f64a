package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// SeqID is the name of the default primary key sequence of a bucket.
const SeqID = "id"

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket stores objects of a single type under a common prefix together
// with their secondary indexes. Use a ModelBucket for a type safe API.
type Bucket struct {
	name    string
	prefix  []byte
	proto   Cloneable
	indexes map[string]Index
}

var _ photosale.QueryHandler = Bucket{}

// NewBucket returns a bucket storing objects like proto. An invalid name
// panics.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name %q", name))
	}
	return Bucket{
		name:   name,
		prefix: []byte(name + ":"),
		proto:  proto,
	}
}

// WithIndex returns a copy of the bucket maintaining one more index. Index
// names must be unique within a bucket.
func (b Bucket) WithIndex(name string, indexer Indexer, unique bool) Bucket {
	if _, ok := b.indexes[name]; ok {
		panic(fmt.Sprintf("index %q registered twice", name))
	}
	indexes := make(map[string]Index, len(b.indexes)+1)
	for n, idx := range b.indexes {
		indexes[n] = idx
	}
	indexes[name] = NewIndex(b.name+"_"+name, indexer, unique, b.DBKey)
	b.indexes = indexes
	return b
}

// Register exposes the bucket under "/<name>" and each index under
// "/<name>/<index>". An empty name uses the bucket name.
func (b Bucket) Register(name string, r photosale.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
	for idxName, idx := range b.indexes {
		r.Register("/"+name+"/"+idxName, idx)
	}
}

// DBKey returns the absolute key of the object stored under key. The
// result never shares memory with the prefix.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	out = append(out, b.prefix...)
	return append(out, key...)
}

// Query returns the raw entry stored under the key or, with the prefix
// modifier, all entries whose key starts with data.
func (b Bucket) Query(db photosale.ReadOnlyKVStore, mod string, data []byte) ([]photosale.Model, error) {
	switch mod {
	case photosale.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		switch {
		case err != nil:
			return nil, errors.Wrap(errors.ErrDatabase, err.Error())
		case value == nil:
			return nil, nil
		}
		return []photosale.Model{photosale.Pair(key, value)}, nil
	case photosale.PrefixQueryMod:
		return queryPrefix(db, b.DBKey(data))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

// Get returns the object stored under the key or nil.
func (b Bucket) Get(db photosale.ReadOnlyKVStore, key []byte) (Object, error) {
	raw, err := db.Get(b.DBKey(key))
	switch {
	case err != nil:
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	case raw == nil:
		return nil, nil
	}
	return b.Parse(key, raw)
}

func (b Bucket) Has(db photosale.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

// Parse decodes a raw value into a new object with given key.
func (b Bucket) Parse(key, raw []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	obj.SetKey(key)
	return obj, nil
}

// Save validates the object, updates the indexes and writes it.
func (b Bucket) Save(db photosale.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return err
	}
	raw, err := obj.Value().Marshal()
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if err := b.updateIndexes(db, obj.Key(), obj); err != nil {
		return err
	}
	return db.Set(b.DBKey(obj.Key()), raw)
}

// Delete removes the object and its index references.
func (b Bucket) Delete(db photosale.KVStore, key []byte) error {
	if err := b.updateIndexes(db, key, nil); err != nil {
		return err
	}
	return db.Delete(b.DBKey(key))
}

// updateIndexes moves the index references from the stored version of the
// object to next. A nil next removes them.
func (b Bucket) updateIndexes(db photosale.KVStore, key []byte, next Object) error {
	if len(b.indexes) == 0 {
		return nil
	}
	prev, err := b.Get(db, key)
	if err != nil {
		return err
	}
	if prev == nil && next == nil {
		return nil
	}
	for _, idx := range b.indexes {
		if err := idx.Update(db, prev, next); err != nil {
			return err
		}
	}
	return nil
}

// GetIndexed returns all objects referenced by the named index under the
// key.
func (b Bucket) GetIndexed(db photosale.ReadOnlyKVStore, name string, key []byte) ([]Object, error) {
	idx, ok := b.indexes[name]
	if !ok {
		return nil, errors.Wrap(ErrInvalidIndex, name)
	}
	refs, err := idx.GetAt(db, key)
	if err != nil {
		return nil, err
	}
	var objs []Object
	for _, ref := range refs {
		obj, err := b.Get(db, ref)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	return objs, nil
}

// Iterate calls fn for every object stored in the bucket, in ascending
// key order. Iteration stops early when fn returns false.
func (b Bucket) Iterate(db photosale.ReadOnlyKVStore, fn func(Object) (bool, error)) error {
	itr, err := db.Iterator(b.prefix, prefixRangeEnd(b.prefix))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer itr.Close()

	for itr.Valid() {
		key := append([]byte(nil), itr.Key()[len(b.prefix):]...)
		obj, err := b.Parse(key, itr.Value())
		if err != nil {
			return err
		}
		next, err := fn(obj)
		if err != nil || !next {
			return err
		}
		if err := itr.Next(); err != nil {
			return err
		}
	}
	return nil
}
