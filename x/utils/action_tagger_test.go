package utils

import (
	"context"
	"testing"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/store"
	"github.com/iov-one/photosale/weavetest"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

func TestActionTagger(t *testing.T) {
	cases := map[string]struct {
		handler  *weavetest.Handler
		path     string
		wantErr  *errors.Error
		wantTags []common.KVPair
	}{
		"message path is tagged": {
			handler:  &weavetest.Handler{},
			path:     "cash/send",
			wantTags: []common.KVPair{tag(ActionKey, "cash/send")},
		},
		"failure is not tagged": {
			handler: &weavetest.Handler{DeliverErr: errors.ErrUnauthorized},
			path:    "sale/mint",
			wantErr: errors.ErrUnauthorized,
		},
		"handler tags are kept": {
			handler: &weavetest.Handler{
				DeliverResult: photosale.DeliverResult{
					Tags: []common.KVPair{tag("photo", "7")},
				},
			},
			path: "sale/change_price",
			wantTags: []common.KVPair{
				tag("photo", "7"),
				tag(ActionKey, "sale/change_price"),
			},
		},
		"every event is tagged": {
			handler: &weavetest.Handler{
				DeliverResult: photosale.DeliverResult{
					Events: []photosale.Event{namedEvent("purchased"), namedEvent("withdrawn")},
				},
			},
			path: "sale/purchase",
			wantTags: []common.KVPair{
				tag(ActionKey, "sale/purchase"),
				tag(EventKey, "purchased"),
				tag(EventKey, "withdrawn"),
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: tc.path}}

			_, err := ActionTagger{}.Check(context.Background(), store.MemStore(), tx, tc.handler)
			require.NoError(t, err)

			res, err := ActionTagger{}.Deliver(context.Background(), store.MemStore(), tx, tc.handler)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantTags, res.Tags)
		})
	}
}

func TestActionTaggerInvalidTx(t *testing.T) {
	h := &weavetest.Handler{}
	tx := &weavetest.Tx{Err: errors.ErrType}
	_, err := NewActionTagger().Deliver(context.Background(), store.MemStore(), tx, h)
	require.True(t, errors.ErrType.Is(err))
	require.Equal(t, 0, h.DeliverCallCount())
}

type namedEvent string

func (e namedEvent) EventName() string { return string(e) }
