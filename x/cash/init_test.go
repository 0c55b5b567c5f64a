package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/store"
	"github.com/iov-one/photosale/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesisKey(t *testing.T) {
	addr := weavetest.NewCondition().Address()
	shy := weavetest.NewCondition().Address()

	genesis := `{"cash": [
		{"address": "` + addr.String() + `", "balance": 250},
		{"address": "` + shy.String() + `", "balance": 3, "reject_deposits": true}
	]}`
	var opts photosale.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	ctrl := NewController(NewBucket())
	assertBalance(t, ctrl, db, addr, 250)
	assertBalance(t, ctrl, db, shy, 3)

	err := ctrl.MoveCoins(db, addr, shy, 1)
	assert.True(t, ErrRejected.Is(err))
}

func TestGenesisWithoutCash(t *testing.T) {
	var opts photosale.Options
	require.NoError(t, json.Unmarshal([]byte(`{"other": {}}`), &opts))
	assert.NoError(t, Initializer{}.FromGenesis(opts, store.MemStore()))
}

func TestGenesisInvalidAddress(t *testing.T) {
	var opts photosale.Options
	require.NoError(t, json.Unmarshal([]byte(`{"cash": [{"balance": 5}]}`), &opts))
	err := Initializer{}.FromGenesis(opts, store.MemStore())
	assert.True(t, errors.ErrEmpty.Is(err))
}
