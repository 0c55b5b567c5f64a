package sale

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/app"
	"github.com/iov-one/photosale/orm"
	"github.com/iov-one/photosale/store"
	"github.com/iov-one/photosale/weavetest"
	"github.com/iov-one/photosale/x/cash"
)

// fixture is an initialized sale together with the funds controller.
type fixture struct {
	t testing.TB

	db       photosale.CacheableKVStore
	cash     cash.BaseController
	ctrl     *Controller
	auth     *weavetest.CtxAuth
	router   *app.Router
	admin    photosale.Condition
	treasury photosale.Condition
}

func newFixture(t testing.TB, payout string) *fixture {
	t.Helper()

	f := &fixture{
		t:        t,
		db:       store.MemStore(),
		cash:     cash.NewController(cash.NewBucket()),
		auth:     &weavetest.CtxAuth{Key: "auth"},
		router:   app.NewRouter(),
		admin:    weavetest.NewCondition(),
		treasury: weavetest.NewCondition(),
	}
	f.ctrl = NewController(f.cash)
	RegisterRoutes(f.router, f.auth, f.ctrl)

	opts := genesisOptions(t, f.admin.Address(), f.treasury.Address(), payout)
	if err := (Initializer{}).FromGenesis(opts, f.db); err != nil {
		t.Fatalf("cannot load genesis: %+v", err)
	}
	return f
}

func genesisOptions(t testing.TB, admin, treasury photosale.Address, payout string) photosale.Options {
	t.Helper()
	raw := fmt.Sprintf(`{
		"conf": {"sale": {"metadata": {"schema": 1}, "treasury": %q, "payout": %q}},
		"sale": {"admin": %q}
	}`, hexOrEmpty(treasury), payout, hexOrEmpty(admin))
	var opts photosale.Options
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		t.Fatalf("cannot parse genesis: %s", err)
	}
	return opts
}

func hexOrEmpty(a photosale.Address) string {
	if len(a) == 0 {
		return ""
	}
	return a.String()
}

// deliver runs the message signed by given conditions.
func (f *fixture) deliver(msg photosale.Msg, signers ...photosale.Condition) (*photosale.DeliverResult, error) {
	ctx := f.auth.SetConditions(context.Background(), signers...)
	return f.router.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
}

// check runs the check phase of the message signed by given conditions.
func (f *fixture) check(msg photosale.Msg, signers ...photosale.Condition) (*photosale.CheckResult, error) {
	ctx := f.auth.SetConditions(context.Background(), signers...)
	return f.router.Check(ctx, f.db, &weavetest.Tx{Msg: msg})
}

// mint creates a photo as the administrator and returns its id.
func (f *fixture) mint(name string, price uint64) uint64 {
	f.t.Helper()
	res, err := f.deliver(&MintMsg{
		Metadata:    &photosale.Metadata{Schema: 1},
		Name:        name,
		Description: name + " description",
		Image:       "ipfs://" + name,
		Price:       price,
	}, f.admin)
	if err != nil {
		f.t.Fatalf("cannot mint %q: %+v", name, err)
	}
	return decodeID(f.t, res.Data)
}

func decodeID(t testing.TB, raw []byte) uint64 {
	t.Helper()
	if len(raw) != 8 {
		t.Fatalf("invalid id: %X", raw)
	}
	return uint64(orm.DecodeSequence(raw))
}

// fund gives the address funds.
func (f *fixture) fund(addr photosale.Address, amount uint64) {
	f.t.Helper()
	if err := f.cash.IssueCoins(f.db, addr, amount); err != nil {
		f.t.Fatalf("cannot fund %s: %+v", addr, err)
	}
}

func (f *fixture) balance(addr photosale.Address) uint64 {
	f.t.Helper()
	b, err := f.cash.Balance(f.db, addr)
	if err != nil {
		f.t.Fatalf("cannot read balance: %+v", err)
	}
	return b
}

func (f *fixture) purchaseMsg(id, amount uint64) *PurchaseMsg {
	return &PurchaseMsg{
		Metadata: &photosale.Metadata{Schema: 1},
		PhotoID:  id,
		Amount:   amount,
	}
}

func (f *fixture) inventory() uint64 {
	f.t.Helper()
	n, err := f.ctrl.InventoryCount(f.db)
	if err != nil {
		f.t.Fatalf("cannot read inventory: %+v", err)
	}
	return n
}

func (f *fixture) price(id uint64) uint64 {
	f.t.Helper()
	p, err := f.ctrl.PriceOf(f.db, id)
	if err != nil {
		f.t.Fatalf("cannot read price: %+v", err)
	}
	return p
}

func (f *fixture) owner(id uint64) photosale.Address {
	f.t.Helper()
	o, err := f.ctrl.OwnerOf(f.db, id)
	if err != nil {
		f.t.Fatalf("cannot read owner: %+v", err)
	}
	return o
}
