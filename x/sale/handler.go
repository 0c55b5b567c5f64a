package sale

import (
	"fmt"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/app"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/orm"
	"github.com/iov-one/photosale/x"
	"github.com/iov-one/photosale/x/utils"
)

const (
	mintCost     int64 = 100
	purchaseCost int64 = 50
	adminCost    int64 = 10
)

// RegisterRoutes will instantiate and register all handlers in this
// package. Every handler runs inside of a savepoint so that a failure
// leaves no partial changes.
func RegisterRoutes(r photosale.Registry, auth x.Authenticator, ctrl *Controller) {
	savepoint := app.ChainDecorators(utils.NewSavepoint().OnCheck().OnDeliver())
	r.Handle(&MintMsg{}, savepoint.WithHandler(MintHandler{auth: auth, ctrl: ctrl}))
	r.Handle(&SetPausedMsg{}, savepoint.WithHandler(SetPausedHandler{auth: auth, ctrl: ctrl}))
	r.Handle(&ChangePriceMsg{}, savepoint.WithHandler(ChangePriceHandler{auth: auth, ctrl: ctrl}))
	r.Handle(&PurchaseMsg{}, savepoint.WithHandler(PurchaseHandler{auth: auth, ctrl: ctrl}))
	r.Handle(&WithdrawMsg{}, savepoint.WithHandler(WithdrawHandler{auth: auth, ctrl: ctrl}))
	r.Handle(&TransferAdminMsg{}, savepoint.WithHandler(TransferAdminHandler{auth: auth, ctrl: ctrl}))
}

// requireAdmin fails with ErrNotAdministrator unless the administrator
// signed the call.
func requireAdmin(ctx photosale.Context, db photosale.ReadOnlyKVStore, auth x.Authenticator, ctrl *Controller) error {
	admin, err := ctrl.Admin(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, admin) {
		return errors.Wrapf(ErrNotAdministrator, "admin %s signature missing", admin)
	}
	return nil
}

// emit appends the event to the result and logs it.
func emit(ctx photosale.Context, res *photosale.DeliverResult, e photosale.Event) {
	res.Events = append(res.Events, e)
	photosale.GetLogger(ctx).Info("event", "name", e.EventName(), "data", fmt.Sprintf("%+v", e))
}

// MintHandler creates new photos.
type MintHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ photosale.Handler = MintHandler{}

func (h MintHandler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &photosale.CheckResult{GasAllocated: mintCost}, nil
}

func (h MintHandler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Mint(db, msg.Name, msg.Description, msg.Image, msg.Price)
	if err != nil {
		return nil, err
	}
	res := &photosale.DeliverResult{
		Data: orm.EncodeSequence(int64(id)),
		Log:  fmt.Sprintf("photo %d minted", id),
	}
	emit(ctx, res, Minted{
		ID:          id,
		Name:        msg.Name,
		Description: msg.Description,
		Image:       msg.Image,
		Price:       msg.Price,
	})
	return res, nil
}

func (h MintHandler) validate(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := photosale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAdmin(ctx, db, h.auth, h.ctrl); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetPausedHandler toggles the pause flag.
type SetPausedHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ photosale.Handler = SetPausedHandler{}

func (h SetPausedHandler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &photosale.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetPausedHandler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetPaused(db, msg.Paused); err != nil {
		return nil, err
	}
	res := &photosale.DeliverResult{}
	emit(ctx, res, PauseChanged{Paused: msg.Paused})
	return res, nil
}

func (h SetPausedHandler) validate(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*SetPausedMsg, error) {
	var msg SetPausedMsg
	if err := photosale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAdmin(ctx, db, h.auth, h.ctrl); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ChangePriceHandler overwrites prices.
type ChangePriceHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ photosale.Handler = ChangePriceHandler{}

func (h ChangePriceHandler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &photosale.CheckResult{GasAllocated: adminCost}, nil
}

func (h ChangePriceHandler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetPrice(db, msg.PhotoID, msg.Price); err != nil {
		return nil, err
	}
	res := &photosale.DeliverResult{}
	emit(ctx, res, PriceChanged{ID: msg.PhotoID, Price: msg.Price})
	return res, nil
}

func (h ChangePriceHandler) validate(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*ChangePriceMsg, error) {
	var msg ChangePriceMsg
	if err := photosale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAdmin(ctx, db, h.auth, h.ctrl); err != nil {
		return nil, err
	}
	return &msg, nil
}

// PurchaseHandler sells photos held by custody.
type PurchaseHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ photosale.Handler = PurchaseHandler{}

func (h PurchaseHandler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	msg, _, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.CanPurchase(db, msg.PhotoID, msg.Amount); err != nil {
		return nil, err
	}
	return &photosale.CheckResult{GasAllocated: purchaseCost}, nil
}

func (h PurchaseHandler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	msg, buyer, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Purchase(db, msg.PhotoID, buyer, msg.Amount); err != nil {
		return nil, err
	}
	res := &photosale.DeliverResult{
		Log: fmt.Sprintf("photo %d purchased", msg.PhotoID),
	}
	emit(ctx, res, Purchased{ID: msg.PhotoID, Buyer: buyer, Amount: msg.Amount})
	return res, nil
}

// validate returns the message and the buyer. The buyer must have signed
// the transaction.
func (h PurchaseHandler) validate(ctx photosale.Context, tx photosale.Tx) (*PurchaseMsg, photosale.Address, error) {
	var msg PurchaseMsg
	if err := photosale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if msg.Buyer != nil {
		if err := x.RequireAddress(ctx, h.auth, msg.Buyer, "buyer"); err != nil {
			return nil, nil, err
		}
		return &msg, msg.Buyer, nil
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, signer.Address(), nil
}

// WithdrawHandler drains the custody wallet to the treasury.
type WithdrawHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ photosale.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &photosale.CheckResult{GasAllocated: adminCost}, nil
}

func (h WithdrawHandler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	treasury, amount, err := h.ctrl.Withdraw(db)
	if err != nil {
		return nil, err
	}
	res := &photosale.DeliverResult{}
	if amount > 0 {
		emit(ctx, res, Withdrawn{Treasury: treasury, Amount: amount})
	}
	return res, nil
}

func (h WithdrawHandler) validate(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) error {
	var msg WithdrawMsg
	if err := photosale.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}
	return requireAdmin(ctx, db, h.auth, h.ctrl)
}

// TransferAdminHandler hands the administrator role over.
type TransferAdminHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ photosale.Handler = TransferAdminHandler{}

func (h TransferAdminHandler) Check(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &photosale.CheckResult{GasAllocated: adminCost}, nil
}

func (h TransferAdminHandler) Deliver(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*photosale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	prev, err := h.ctrl.TransferAdmin(db, msg.NewAdmin)
	if err != nil {
		return nil, err
	}
	res := &photosale.DeliverResult{}
	emit(ctx, res, AdminTransferred{Previous: prev, Next: msg.NewAdmin})
	return res, nil
}

func (h TransferAdminHandler) validate(ctx photosale.Context, db photosale.KVStore, tx photosale.Tx) (*TransferAdminMsg, error) {
	var msg TransferAdminMsg
	if err := photosale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := requireAdmin(ctx, db, h.auth, h.ctrl); err != nil {
		return nil, err
	}
	return &msg, nil
}
