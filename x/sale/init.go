package sale

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/gconf"
)

// optKey is both the genesis key and the configuration package name.
const optKey = "sale"

// GenesisState is read from the "sale" genesis key.
type GenesisState struct {
	Admin  photosale.Address `json:"admin"`
	Paused bool              `json:"paused"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ photosale.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.sale and the
// initial administrator. Both the administrator and the treasury must be
// set.
func (Initializer) FromGenesis(opts photosale.Options, db photosale.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, optKey, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var gen GenesisState
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	state := &State{
		Metadata: &photosale.Metadata{Schema: 1},
		Admin:    gen.Admin,
		Paused:   gen.Paused,
	}
	if err := NewStateBucket().Put(db, stateKey, state); err != nil {
		return errors.Wrap(err, "save state")
	}
	return nil
}
