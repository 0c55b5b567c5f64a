package cash

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

const optKey = "cash"

// GenesisAccount is a wallet declared in the genesis file. The address is
// hex encoded.
type GenesisAccount struct {
	Address        photosale.Address `json:"address"`
	Balance        uint64            `json:"balance"`
	RejectDeposits bool              `json:"reject_deposits"`
}

// Initializer creates the genesis wallets.
type Initializer struct{}

var _ photosale.Initializer = Initializer{}

// FromGenesis stores every account listed under the "cash" key.
func (Initializer) FromGenesis(opts photosale.Options, db photosale.KVStore) error {
	var accounts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accounts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	wallets := NewBucket()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		w := NewWallet(a.Balance)
		w.RejectDeposits = a.RejectDeposits
		if err := wallets.Put(db, a.Address, w); err != nil {
			return errors.Wrapf(err, "account %s", a.Address)
		}
	}
	return nil
}
