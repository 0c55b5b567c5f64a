package gconf

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// ReadStore is the part of photosale.ReadOnlyKVStore required to load a
// configuration.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of photosale.KVStore required to save a configuration.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by the protobuf message holding the settings
// of a single extension.
type Configuration interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
	Validate() error
}

// dbKey returns the key the configuration of given package is stored
// under.
func dbKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// InitConfig reads the configuration of given package from the "conf"
// section of the genesis, ie. {"conf": {"sale": {...}}}, and saves it.
// A package without a configuration in the genesis fails with ErrNotFound.
func InitConfig(db Store, opts photosale.Options, pkg string, conf Configuration) error {
	var all photosale.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no %q configuration in genesis", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read %q configuration", pkg)
	}
	return errors.Wrapf(Save(db, pkg, conf), "save %q configuration", pkg)
}

// Save validates the configuration and writes it under the package key.
func Save(db Store, pkg string, conf Configuration) error {
	if err := conf.Validate(); err != nil {
		return errors.Wrap(err, "validate")
	}
	raw, err := conf.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	if err := db.Set(dbKey(pkg), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Load reads the configuration of given package into dst. ErrNotFound is
// returned if nothing was saved yet.
func Load(db ReadStore, pkg string, dst Configuration) error {
	raw, err := db.Get(dbKey(pkg))
	switch {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%q configuration", pkg)
	}
	return errors.Wrapf(dst.Unmarshal(raw), "unmarshal %q configuration", pkg)
}
