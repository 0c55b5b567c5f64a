package cash

import (
	"context"
	"testing"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/store"
	"github.com/iov-one/photosale/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHandler(t *testing.T) {
	owner := weavetest.NewCondition()
	stranger := weavetest.NewCondition()
	dest := weavetest.NewCondition().Address()

	cases := map[string]struct {
		signer     photosale.Condition
		msg        photosale.Msg
		wantCheck  *errors.Error
		wantDeliv  *errors.Error
		wantSource uint64
		wantDest   uint64
	}{
		"owner sends funds": {
			signer: owner,
			msg: &SendMsg{
				Metadata:    &photosale.Metadata{Schema: 1},
				Source:      owner.Address(),
				Destination: dest,
				Amount:      40,
				Memo:        "for the sunset",
			},
			wantSource: 60,
			wantDest:   40,
		},
		"only the owner can send": {
			signer: stranger,
			msg: &SendMsg{
				Metadata:    &photosale.Metadata{Schema: 1},
				Source:      owner.Address(),
				Destination: dest,
				Amount:      40,
			},
			wantCheck:  errors.ErrUnauthorized,
			wantDeliv:  errors.ErrUnauthorized,
			wantSource: 100,
		},
		"cannot send more than owned": {
			signer: owner,
			msg: &SendMsg{
				Metadata:    &photosale.Metadata{Schema: 1},
				Source:      owner.Address(),
				Destination: dest,
				Amount:      101,
			},
			wantDeliv:  errors.ErrInsufficientAmount,
			wantSource: 100,
		},
		"zero amount is not a valid message": {
			signer: owner,
			msg: &SendMsg{
				Metadata:    &photosale.Metadata{Schema: 1},
				Source:      owner.Address(),
				Destination: dest,
			},
			wantCheck:  errors.ErrAmount,
			wantDeliv:  errors.ErrAmount,
			wantSource: 100,
		},
		"wrong message type": {
			signer:     owner,
			msg:        &weavetest.Msg{RoutePath: "cash/send"},
			wantCheck:  errors.ErrType,
			wantDeliv:  errors.ErrType,
			wantSource: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewBucket())
			require.NoError(t, ctrl.IssueCoins(db, owner.Address(), 100))

			auth := &weavetest.Auth{Signer: tc.signer}
			h := NewSendHandler(auth, ctrl)
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := h.Check(context.Background(), cache, tx)
			if tc.wantCheck != nil {
				assert.True(t, tc.wantCheck.Is(err), "unexpected check error: %s", err)
			} else {
				assert.NoError(t, err)
			}
			cache.Discard()

			res, err := h.Deliver(context.Background(), db, tx)
			if tc.wantDeliv != nil {
				assert.True(t, tc.wantDeliv.Is(err), "unexpected deliver error: %s", err)
			} else {
				require.NoError(t, err)
				msg := tc.msg.(*SendMsg)
				assert.Equal(t, []photosale.Event{
					Sent{Source: msg.Source, Destination: msg.Destination, Amount: msg.Amount},
				}, res.Events)
			}

			assertBalance(t, ctrl, db, owner.Address(), tc.wantSource)
			assertBalance(t, ctrl, db, dest, tc.wantDest)
		})
	}
}

func TestWalletQuery(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewBucket())
	addr := weavetest.NewCondition().Address()
	require.NoError(t, ctrl.IssueCoins(db, addr, 7))

	qr := photosale.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/wallets")
	require.NotNil(t, h)

	models, err := h.Query(db, "", addr)
	require.NoError(t, err)
	require.Len(t, models, 1)

	var w Wallet
	require.NoError(t, w.Unmarshal(models[0].Value))
	assert.Equal(t, uint64(7), w.Balance)
}
