package orm

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/x"
)

// Object binds a value to the key it is stored under. The key is relative
// to the bucket prefix.
type Object interface {
	Keyed
	Cloneable
	x.Validater
	Value() photosale.Persistent
}

// Keyed is an object that knows its key.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable returns an empty object of the same type that a value can be
// loaded into.
type Cloneable interface {
	Clone() Object
}

// CloneableData is a serializable value that can be wrapped with a
// SimpleObj.
type CloneableData interface {
	x.Validater
	photosale.Persistent
	Copy() CloneableData
}

// Model is a value that can be stored in a ModelBucket. It is the same
// interface as CloneableData under a name that reads better in the
// ModelBucket API.
type Model interface {
	photosale.Persistent
	Validate() error
	Copy() CloneableData
}
