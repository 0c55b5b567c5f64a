package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/app"
	"github.com/iov-one/photosale/crypto"
	"github.com/iov-one/photosale/store/iavl"
	"github.com/iov-one/photosale/x/cash"
	"github.com/iov-one/photosale/x/sale"
	"github.com/iov-one/photosale/x/sigs"
	"github.com/iov-one/photosale/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// dbName is the name of the goleveldb database inside of the home
// directory.
const dbName = "photosale"

// tx is a transaction carrying a single message. Calls are authorized by
// the locally loaded key so no signature is attached.
type tx struct {
	msg photosale.Msg
}

var _ photosale.Tx = (*tx)(nil)

func (t *tx) GetMsg() (photosale.Msg, error) {
	return t.msg, nil
}

// node is the ledger opened from the home directory together with the
// controllers used for reading the state.
type node struct {
	ledger *app.Ledger
	sale   *sale.Controller
	cash   cash.Controller
	store  *iavl.CommitStore
}

// Close releases the database.
func (n *node) Close() {
	n.store.Close()
}

// openNode opens the ledger stored in given directory. Directory is
// created if it does not exist.
func openNode(home string, debug bool) (*node, error) {
	if err := os.MkdirAll(home, 0700); err != nil {
		return nil, fmt.Errorf("cannot create home directory: %s", err)
	}
	db, err := iavl.NewCommitStore(home, dbName)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %s", err)
	}

	auth := sigs.Authenticate{}
	cashCtrl := cash.NewController(cash.NewBucket())
	saleCtrl := sale.NewController(cashCtrl)

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, cashCtrl)
	sale.RegisterRoutes(r, auth, saleCtrl)
	handler := app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
	).WithHandler(r)

	qr := photosale.NewQueryRouter()
	cash.RegisterQuery(qr)
	sale.RegisterQuery(qr)

	ledger, err := app.NewLedger(db, handler, qr, newLogger(debug))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot load ledger: %s", err)
	}
	return &node{
		ledger: ledger,
		sale:   saleCtrl,
		cash:   cashCtrl,
		store:  db,
	}, nil
}

func newLogger(debug bool) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	if debug {
		return log.NewFilter(logger, log.AllowDebug())
	}
	return log.NewFilter(logger, log.AllowInfo())
}

// deliver executes the message signed with the key stored in given file.
func deliver(home, keyPath string, debug bool, msg photosale.Msg) (*photosale.DeliverResult, error) {
	key, err := loadKey(keyPath)
	if err != nil {
		return nil, err
	}
	n, err := openNode(home, debug)
	if err != nil {
		return nil, err
	}
	defer n.Close()
	return n.ledger.Deliver(&tx{msg: msg}, key.PublicKey().Condition())
}

// view calls fn with the read only state of the ledger.
func view(home string, fn func(n *node, db photosale.ReadOnlyKVStore) error) error {
	n, err := openNode(home, false)
	if err != nil {
		return err
	}
	defer n.Close()
	if n.ledger.ChainID() == "" {
		return fmt.Errorf("ledger in %q is not initialized", home)
	}
	return n.ledger.View(func(db photosale.ReadOnlyKVStore) error {
		return fn(n, db)
	})
}

func loadKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	key, err := crypto.PrivKeyFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %s", err)
	}
	return key, nil
}
