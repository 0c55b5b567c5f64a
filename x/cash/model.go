package cash

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// NewWallet returns a wallet with given balance.
func NewWallet(balance uint64) *Wallet {
	return &Wallet{
		Metadata: &photosale.Metadata{Schema: 1},
		Balance:  balance,
	}
}

// Validate ensures the wallet carries a metadata header.
func (w *Wallet) Validate() error {
	if err := w.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return nil
}

// Copy makes a new wallet with the same content.
func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{
		Metadata:       w.Metadata.Copy(),
		Balance:        w.Balance,
		RejectDeposits: w.RejectDeposits,
	}
}

// NewBucket returns a bucket for wallets, keyed by the owner address.
func NewBucket() orm.ModelBucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Wallet{}))
	return orm.NewModelBucket(b)
}
