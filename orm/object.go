package orm

import (
	"reflect"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

var _ Object = (*SimpleObj)(nil)

// SimpleObj is the Object used by every bucket of this module. It stores a
// model under a key.
type SimpleObj struct {
	key   []byte
	value Model
}

// NewSimpleObj returns an object holding the value under given key.
func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Value() photosale.Persistent {
	return o.value
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

// Validate requires both the key and the value and validates the value.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Wrap(errors.ErrEmpty, "key")
	case o.value == nil:
		return errors.Wrap(errors.ErrEmpty, "value")
	}
	return errors.Wrap(o.value.Validate(), "value")
}

// Clone returns an object with a zero value of the same type. The key is
// copied.
func (o *SimpleObj) Clone() Object {
	zero := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(Model)
	var key []byte
	if len(o.key) > 0 {
		key = append(key, o.key...)
	}
	return &SimpleObj{key: key, value: zero}
}
