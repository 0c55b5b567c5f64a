package app

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// chainIDKey holds the chain id written at genesis. The "_wv:" prefix is
// reserved for data of the ledger itself.
var chainIDKey = []byte("_wv:chainID")

// loadChainID returns the stored chain id or an empty string before
// genesis.
func loadChainID(db interface {
	Get(key []byte) ([]byte, error)
}) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return string(raw), nil
}

// saveChainID writes the chain id once. A second write fails with
// ErrState.
func saveChainID(db photosale.KVStore, chainID string) error {
	if !photosale.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}
	switch ok, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case ok:
		return errors.Wrap(errors.ErrState, "chain id already set")
	}
	if err := db.Set(chainIDKey, []byte(chainID)); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
