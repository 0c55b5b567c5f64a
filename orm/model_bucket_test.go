package orm

import (
	"testing"

	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/store"
	"github.com/iov-one/photosale/weavetest/assert"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket(newAlbumBucket())

	assert.Nil(t, b.Put(db, []byte("a"), &album{Title: "first", Owner: []byte("ann")}))

	var a album
	assert.Nil(t, b.One(db, []byte("a"), &a))
	assert.Equal(t, "first", a.Title)

	assert.Nil(t, b.Has(db, []byte("a")))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("b")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("b"), &a))

	keys, err := b.ByIndex(db, "owner", []byte("ann"))
	assert.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("a")}, keys)

	assert.IsErr(t, errors.ErrEmpty, b.Put(db, []byte("c"), &album{}))

	var ref MultiRef
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("a"), &ref))

	assert.Nil(t, b.Delete(db, []byte("a")))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("a")))
}
