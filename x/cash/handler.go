package cash

import (
	"fmt"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/x"
)

const sendCost int64 = 100

// RegisterRoutes registers the send handler.
func RegisterRoutes(r photosale.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&SendMsg{}, NewSendHandler(auth, ctrl))
}

// RegisterQuery exposes wallets under the "/wallets" path.
func RegisterQuery(qr photosale.QueryRouter) {
	NewBucket().Register("wallets", qr)
}

// Sent is emitted when funds were moved between two wallets.
type Sent struct {
	Source      photosale.Address
	Destination photosale.Address
	Amount      uint64
}

func (Sent) EventName() string { return "sent" }

// SendHandler moves funds from the wallet of the signer.
type SendHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ photosale.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, ctrl Controller) SendHandler {
	return SendHandler{auth: auth, ctrl: ctrl}
}

// Check does not look at the balance. An insufficient balance fails only
// on Deliver.
func (h SendHandler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &photosale.CheckResult{GasAllocated: sendCost}, nil
}

func (h SendHandler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &photosale.DeliverResult{
		Log: fmt.Sprintf("%d sent to %s", msg.Amount, msg.Destination),
		Events: []photosale.Event{
			Sent{Source: msg.Source, Destination: msg.Destination, Amount: msg.Amount},
		},
	}, nil
}

// validate requires the owner of the source wallet to sign.
func (h SendHandler) validate(ctx photosale.Context, tx photosale.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := photosale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Source, "wallet owner"); err != nil {
		return nil, err
	}
	return &msg, nil
}
