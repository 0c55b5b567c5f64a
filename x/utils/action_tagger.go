package utils

import (
	"github.com/iov-one/photosale"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// ActionKey tags a successful result with the path of the executed
	// message.
	ActionKey = "action"
	// EventKey tags a successful result once per emitted event, with the
	// event name as the value.
	EventKey = "event"
)

// ActionTagger makes results searchable by the message path and by the
// names of the events emitted while delivering it, ie. action=sale/purchase
// or event=purchased.
type ActionTagger struct{}

var _ photosale.Decorator = ActionTagger{}

// NewActionTagger returns an ActionTagger decorator.
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check does not tag anything.
func (ActionTagger) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx, next photosale.Checker) (*photosale.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends tags to a successful result. Existing tags are kept.
func (ActionTagger) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx, next photosale.Deliverer) (*photosale.DeliverResult, error) {
	// Fail before running the handler if the message cannot be tagged.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, tag(ActionKey, msg.Path()))
	for _, e := range res.Events {
		res.Tags = append(res.Tags, tag(EventKey, e.EventName()))
	}
	return res, nil
}

func tag(key, value string) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(value)}
}
