package sale

import (
	"testing"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/weavetest"
	"github.com/iov-one/photosale/weavetest/assert"
)

func TestListInventory(t *testing.T) {
	f := newFixture(t, PayoutPull)
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 1000)

	ids, meta, prices, err := f.ctrl.ListInventory(f.db)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(ids))
	assert.Equal(t, 0, len(meta))
	assert.Equal(t, 0, len(prices))

	for i, name := range []string{"a", "b", "c", "d", "e"} {
		f.mint(name, uint64(10*(i+1)))
	}
	for _, id := range []uint64{0, 2, 3} {
		_, err := f.deliver(f.purchaseMsg(id, 100), buyer)
		assert.Nil(t, err)
	}

	ids, meta, prices, err = f.ctrl.ListInventory(f.db)
	assert.Nil(t, err)
	assert.Equal(t, []uint64{1, 4}, ids)
	assert.Equal(t, []uint64{20, 50}, prices)
	assert.Equal(t, []Descriptor{
		{ID: 1, Name: "b", Description: "b description", Image: "ipfs://b"},
		{ID: 4, Name: "e", Description: "e description", Image: "ipfs://e"},
	}, meta)

	count, err := f.ctrl.InventoryCount(f.db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(len(ids)), count)
}

func TestListInventoryIsOrderedByID(t *testing.T) {
	f := newFixture(t, PayoutPull)
	// Enough photos for the id to use more than a single byte.
	for i := 0; i < 300; i++ {
		f.mint("photo", uint64(i))
	}
	ids, _, prices, err := f.ctrl.ListInventory(f.db)
	assert.Nil(t, err)
	assert.Equal(t, 300, len(ids))
	for i, id := range ids {
		assert.Equal(t, uint64(i), id)
		assert.Equal(t, uint64(i), prices[i])
	}
}

func TestMetadataOf(t *testing.T) {
	f := newFixture(t, PayoutPull)

	_, err := f.ctrl.MetadataOf(f.db, 0)
	assert.IsErr(t, errors.ErrNotFound, err)

	id := f.mint("sunset", 10)
	uri, err := f.ctrl.MetadataOf(f.db, id)
	assert.Nil(t, err)
	d, err := ParseDescriptor(uri)
	assert.Nil(t, err)
	assert.Equal(t, Descriptor{
		ID:          id,
		Name:        "sunset",
		Description: "sunset description",
		Image:       "ipfs://sunset",
	}, d)

	_, err = f.ctrl.OwnerOf(f.db, 5)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestReadAccessors(t *testing.T) {
	f := newFixture(t, "")

	treasury, err := f.ctrl.Treasury(f.db)
	assert.Nil(t, err)
	assert.Equal(t, f.treasury.Address(), treasury)

	mode, err := f.ctrl.PayoutMode(f.db)
	assert.Nil(t, err)
	assert.Equal(t, PayoutPull, mode)

	paused, err := f.ctrl.IsPaused(f.db)
	assert.Nil(t, err)
	assert.Equal(t, false, paused)

	pending, err := f.ctrl.PendingProceeds(f.db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), pending)
}

func TestQueries(t *testing.T) {
	f := newFixture(t, PayoutPull)
	id := f.mint("sunset", 42)

	qr := photosale.NewQueryRouter()
	RegisterQuery(qr)

	models, err := qr.Handler("/photos").Query(f.db, "", photoKey(id))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	var p Photo
	assert.Nil(t, p.Unmarshal(models[0].Value))
	assert.Equal(t, "sunset", p.Name)
	assert.Equal(t, CustodyAddress, p.Holder)

	models, err = qr.Handler("/photos/holder").Query(f.db, "", CustodyAddress)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))

	models, err = qr.Handler("/prices").Query(f.db, "", photoKey(id))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	var price Price
	assert.Nil(t, price.Unmarshal(models[0].Value))
	assert.Equal(t, uint64(42), price.Amount)
}
