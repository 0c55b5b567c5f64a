package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/x/sigs"
	"github.com/tendermint/tendermint/libs/log"
)

// Ledger executes every call as a single transaction over the commit
// store. Calls are serialized. A successful Deliver writes all changes
// and commits a new version, any failure discards everything.
type Ledger struct {
	mu sync.Mutex

	store   photosale.CommitKVStore
	handler photosale.Handler
	queries photosale.QueryRouter
	logger  log.Logger

	// chainID is loaded from db in initialization
	// saved once in InitChain
	chainID string

	// now returns the time assigned to the next call.
	now func() time.Time
}

// NewLedger loads the latest version of the store and returns a ledger
// ready to process calls.
func NewLedger(
	store photosale.CommitKVStore,
	handler photosale.Handler,
	queries photosale.QueryRouter,
	logger log.Logger,
) (*Ledger, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	chainID, err := loadChainID(store)
	if err != nil {
		return nil, err
	}
	return &Ledger{
		store:   store,
		handler: handler,
		queries: queries,
		logger:  logger,
		chainID: chainID,
		now:     time.Now,
	}, nil
}

// WithClock replaces the time source of the ledger.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// ChainID returns the chain id stored at genesis or an empty string if
// the ledger was not initialized yet.
func (l *Ledger) ChainID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.chainID
}

// LastCommit returns the version and hash of the latest saved state.
func (l *Ledger) LastCommit() (photosale.CommitID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.LatestVersion()
}

// InitChain stores the chain id and passes the application state to the
// initializer. It can be called only once for a given store.
func (l *Ledger) InitChain(gen Genesis, initializer photosale.Initializer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.chainID != "" {
		return errors.Wrapf(errors.ErrState, "already initialized for chain %s", l.chainID)
	}
	if !photosale.IsValidChainID(gen.ChainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", gen.ChainID)
	}

	cache := l.store.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if err := initializer.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write genesis")
	}
	id, err := l.store.Commit()
	if err != nil {
		return errors.Wrap(err, "commit genesis")
	}
	l.chainID = gen.ChainID
	l.logger.Info("Genesis loaded",
		"chain_id", gen.ChainID,
		"height", id.Version,
		"hash", fmt.Sprintf("%X", id.Hash))
	return nil
}

// Deliver executes the transaction on behalf of the signers and commits
// the result. Nothing is persisted if an error is returned.
func (l *Ledger) Deliver(tx photosale.Tx, signers ...photosale.Condition) (*photosale.DeliverResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx, err := l.callContext("deliver", tx, signers)
	if err != nil {
		return nil, err
	}

	cache := l.store.CacheWrap()
	res, err := l.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write changes")
	}
	id, err := l.store.Commit()
	if err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	l.logger.Debug("Commit synced",
		"height", id.Version,
		"hash", fmt.Sprintf("%X", id.Hash))
	return res, nil
}

// Check runs the validation part of the transaction processing. The state
// is never modified.
func (l *Ledger) Check(tx photosale.Tx, signers ...photosale.Condition) (*photosale.CheckResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ctx, err := l.callContext("check", tx, signers)
	if err != nil {
		return nil, err
	}
	cache := l.store.CacheWrap()
	defer cache.Discard()
	return l.handler.Check(ctx, cache, tx)
}

// View calls fn with a read only view of the latest state.
func (l *Ledger) View(fn func(db photosale.ReadOnlyKVStore) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cache := l.store.CacheWrap()
	defer cache.Discard()
	return fn(cache)
}

/*
Query gets data from the ledger state.

Path may be "/<bucket>" or "/<bucket>/<index>", followed by "?prefix" to
make a prefix query. Data is interpreted by the registered handler.
*/
func (l *Ledger) Query(path string, data []byte) ([]photosale.Model, error) {
	path, mod := splitPath(path)
	qh := l.queries.Handler(path)
	if qh == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "unexpected query path: %s", path)
	}

	var models []photosale.Model
	err := l.View(func(db photosale.ReadOnlyKVStore) error {
		var err error
		models, err = qh.Query(db, mod, data)
		return err
	})
	return models, err
}

// callContext builds the context of a single call. The call is assigned
// the height following the last commit.
func (l *Ledger) callContext(call string, tx photosale.Tx, signers []photosale.Condition) (photosale.Context, error) {
	if l.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "ledger not initialized")
	}
	last, err := l.store.LatestVersion()
	if err != nil {
		return nil, errors.Wrap(err, "latest version")
	}
	ctx := photosale.WithChainID(context.Background(), l.chainID)
	ctx = photosale.WithHeight(ctx, last.Version+1)
	ctx = photosale.WithBlockTime(ctx, l.now())
	ctx = photosale.WithLogger(ctx, l.logger)
	ctx = photosale.WithLogInfo(ctx,
		"call", call,
		"path", photosale.GetPath(tx))
	return sigs.WithSigners(ctx, signers...), nil
}

// splitPath splits out the real path along with the query
// modifier (everything after the ?)
func splitPath(path string) (string, string) {
	var mod string
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		path = chunks[0]
		mod = chunks[1]
	}
	return path, mod
}
