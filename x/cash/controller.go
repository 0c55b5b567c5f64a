package cash

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/orm"
	"github.com/iov-one/photosale/x"
)

// CoinMover is an interface for moving coins between accounts.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to the
	// destination account. This operation is atomic.
	MoveCoins(db photosale.KVStore, src, dest photosale.Address, amount uint64) error
}

// Balancer reads the current balance of an account.
type Balancer interface {
	// Balance returns the amount held by given address. Unknown
	// addresses hold nothing.
	Balance(db photosale.ReadOnlyKVStore, addr photosale.Address) (uint64, error)
}

// Controller is the functionality needed by cash.Handler and other
// packages that move funds.
type Controller interface {
	CoinMover
	Balancer
	// IssueCoins credits the destination with new funds. Rejecting
	// wallets are credited as well.
	IssueCoins(db photosale.KVStore, dest photosale.Address, amount uint64) error
}

// BaseController is a simple implementation of controller
// wallet must return something that supports AddCoins and Coins
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns base controller implementation.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount held by given address.
func (c BaseController) Balance(db photosale.ReadOnlyKVStore, addr photosale.Address) (uint64, error) {
	w, err := c.load(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient coins or dest rejects the deposit, it
// fails. Moving zero is a no-op.
func (c BaseController) MoveCoins(db photosale.KVStore, src, dest photosale.Address, amount uint64) error {
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if amount == 0 {
		return nil
	}

	sender, err := c.load(db, src)
	if err != nil {
		return err
	}
	if sender.Balance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "funds: %d, needed: %d", sender.Balance, amount)
	}
	recipient, err := c.load(db, dest)
	if err != nil {
		return err
	}
	if recipient.RejectDeposits {
		return errors.Wrapf(ErrRejected, "recipient %s", dest)
	}
	if src.Equals(dest) {
		return nil
	}

	if sender.Balance, err = x.SubAmount(sender.Balance, amount); err != nil {
		return err
	}
	if recipient.Balance, err = x.AddAmount(recipient.Balance, amount); err != nil {
		return err
	}
	if err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}
	if err := c.bucket.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db photosale.KVStore, dest photosale.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := c.load(db, dest)
	if err != nil {
		return err
	}
	if w.Balance, err = x.AddAmount(w.Balance, amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, w)
}

// SetRejectDeposits changes whether the wallet of given address accepts
// incoming transfers.
func (c BaseController) SetRejectDeposits(db photosale.KVStore, addr photosale.Address, reject bool) error {
	w, err := c.load(db, addr)
	if err != nil {
		return err
	}
	w.RejectDeposits = reject
	return c.bucket.Put(db, addr, w)
}

// load returns the stored wallet or an empty one.
func (c BaseController) load(db photosale.ReadOnlyKVStore, addr photosale.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return NewWallet(0), nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}
