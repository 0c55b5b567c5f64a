package photosale

import (
	"encoding/json"

	"github.com/tendermint/tendermint/libs/common"
)

// Handler processes messages of a single kind, for example a photo
// purchase. Check must never change the state, Deliver applies the
// message.
type Handler interface {
	Checker
	Deliverer
}

// Checker validates a transaction without applying it.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer applies a transaction to the store.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around a handler. Authentication, savepoints and panic
// recovery are implemented as decorators.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds handlers to message types.
type Registry interface {
	// Handle registers the handler for every message with the same path
	// as the given one.
	Handle(Msg, Handler)
}

// CheckResult is returned by a successful check.
type CheckResult struct {
	// Data is a machine readable return value.
	Data []byte
	// Log is a human readable message.
	Log string
	// GasAllocated is the upper limit of work the delivery may perform.
	GasAllocated int64
}

// NewCheck returns a result with the allocated gas and the log set.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{GasAllocated: gasAllocated, Log: log}
}

// DeliverResult is returned by a successful delivery. Failures are
// reported only through the returned error.
type DeliverResult struct {
	// Data is a machine readable return value, for example the id of a
	// minted photo.
	Data []byte
	// Log is a human readable message.
	Log string
	// Tags index the transaction.
	Tags []common.KVPair
	// Events describe the state changes in the order they happened.
	Events []Event
}

// Event is emitted by a handler for every successful state change.
type Event interface {
	// EventName is the published name, for example "minted".
	EventName() string
}

// Options is the raw genesis content. Every extension reads its own key.
type Options map[string]json.RawMessage

// ReadOptions decodes the JSON stored under key into obj. A missing key
// leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers returns an initializer that calls all given ones in
// order and stops on the first failure.
func ChainInitializers(inits ...Initializer) Initializer {
	return MultiInitializer{inits: inits}
}

// MultiInitializer is returned by ChainInitializers.
type MultiInitializer struct {
	inits []Initializer
}

var _ Initializer = MultiInitializer{}

func (m MultiInitializer) FromGenesis(opts Options, db KVStore) error {
	for _, in := range m.inits {
		if err := in.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
