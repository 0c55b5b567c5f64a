package sale

import (
	"testing"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/weavetest"
	"github.com/iov-one/photosale/weavetest/assert"
	"github.com/iov-one/photosale/x/cash"
)

func TestPurchaseScenario(t *testing.T) {
	f := newFixture(t, PayoutPush)
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 500)

	id := f.mint("sunset", 100)
	assert.Equal(t, uint64(0), id)
	assert.Equal(t, uint64(1), f.inventory())
	assert.Equal(t, uint64(100), f.price(id))

	_, err := f.deliver(f.purchaseMsg(id, 99), buyer)
	assert.IsErr(t, ErrInsufficientPayment, err)
	assert.Equal(t, uint64(1), f.inventory())

	res, err := f.deliver(f.purchaseMsg(id, 100), buyer)
	assert.Nil(t, err)
	assert.Equal(t, []photosale.Event{Purchased{ID: id, Buyer: buyer.Address(), Amount: 100}}, res.Events)

	assert.Equal(t, buyer.Address(), f.owner(id))
	assert.Equal(t, uint64(0), f.price(id))
	assert.Equal(t, uint64(0), f.inventory())
	assert.Equal(t, uint64(100), f.balance(f.treasury.Address()))
	assert.Equal(t, uint64(400), f.balance(buyer.Address()))

	// Purchase is not repeatable.
	f.mint("sunrise", 10)
	_, err = f.deliver(f.purchaseMsg(id, 100), buyer)
	assert.IsErr(t, ErrNotForSale, err)
}

func TestPurchasePreconditionOrder(t *testing.T) {
	cases := map[string]struct {
		mint    int
		paused  bool
		photoID uint64
		amount  uint64
		wantErr *errors.Error
	}{
		"no inventory is reported before pause": {
			mint:    0,
			paused:  true,
			photoID: 0,
			amount:  1000,
			wantErr: ErrNoInventory,
		},
		"pause is reported before not for sale": {
			mint:    1,
			paused:  true,
			photoID: 42,
			amount:  1000,
			wantErr: ErrSalePaused,
		},
		"pause is reported even when all else is fine": {
			mint:    1,
			paused:  true,
			photoID: 0,
			amount:  1000,
			wantErr: ErrSalePaused,
		},
		"unminted photo is not for sale": {
			mint:    1,
			photoID: 42,
			amount:  1000,
			wantErr: ErrNotForSale,
		},
		"not for sale is reported before payment": {
			mint:    1,
			photoID: 7,
			amount:  0,
			wantErr: ErrNotForSale,
		},
		"insufficient payment": {
			mint:    2,
			photoID: 1,
			amount:  99,
			wantErr: ErrInsufficientPayment,
		},
		"overpaying is fine": {
			mint:    2,
			photoID: 1,
			amount:  150,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, PayoutPull)
			buyer := weavetest.NewCondition()
			f.fund(buyer.Address(), 1000)
			for i := 0; i < tc.mint; i++ {
				f.mint("photo", 100)
			}
			if tc.paused {
				_, err := f.deliver(&SetPausedMsg{Metadata: &photosale.Metadata{Schema: 1}, Paused: true}, f.admin)
				assert.Nil(t, err)
			}

			msg := f.purchaseMsg(tc.photoID, tc.amount)
			_, err := f.check(msg, buyer)
			assert.IsErr(t, tc.wantErr, err)
			_, err = f.deliver(msg, buyer)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestPauseGatesPurchasesOnly(t *testing.T) {
	f := newFixture(t, PayoutPull)
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 100)
	meta := &photosale.Metadata{Schema: 1}

	res, err := f.deliver(&SetPausedMsg{Metadata: meta, Paused: true}, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, []photosale.Event{PauseChanged{Paused: true}}, res.Events)

	// Minting and price changes work while paused.
	id := f.mint("paused", 30)
	_, err = f.deliver(&ChangePriceMsg{Metadata: meta, PhotoID: id, Price: 20}, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, uint64(20), f.price(id))

	_, err = f.deliver(f.purchaseMsg(id, 20), buyer)
	assert.IsErr(t, ErrSalePaused, err)

	_, err = f.deliver(&SetPausedMsg{Metadata: meta, Paused: false}, f.admin)
	assert.Nil(t, err)
	_, err = f.deliver(f.purchaseMsg(id, 20), buyer)
	assert.Nil(t, err)
}

func TestPushTreasuryRejectionRollsBack(t *testing.T) {
	f := newFixture(t, PayoutPush)
	assert.Nil(t, f.cash.SetRejectDeposits(f.db, f.treasury.Address(), true))
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 100)
	id := f.mint("sunset", 100)

	_, err := f.deliver(f.purchaseMsg(id, 100), buyer)
	assert.IsErr(t, ErrTreasuryTransferFailed, err)

	assert.Equal(t, CustodyAddress, f.owner(id))
	assert.Equal(t, uint64(100), f.price(id))
	assert.Equal(t, uint64(1), f.inventory())
	assert.Equal(t, uint64(100), f.balance(buyer.Address()))
	assert.Equal(t, uint64(0), f.balance(f.treasury.Address()))
}

func TestPullPaymentAndWithdraw(t *testing.T) {
	f := newFixture(t, PayoutPull)
	// Treasury behaviour is never consulted during a pull purchase.
	assert.Nil(t, f.cash.SetRejectDeposits(f.db, f.treasury.Address(), true))
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 100)
	id := f.mint("sunset", 60)

	_, err := f.deliver(f.purchaseMsg(id, 70), buyer)
	assert.Nil(t, err)
	assert.Equal(t, uint64(30), f.balance(buyer.Address()))
	pending, err := f.ctrl.PendingProceeds(f.db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(70), pending)

	withdraw := &WithdrawMsg{Metadata: &photosale.Metadata{Schema: 1}}

	// Rejected withdraw leaves the proceeds in custody.
	_, err = f.deliver(withdraw, f.admin)
	assert.IsErr(t, ErrTreasuryTransferFailed, err)
	assert.Equal(t, uint64(70), f.balance(CustodyAddress))

	assert.Nil(t, f.cash.SetRejectDeposits(f.db, f.treasury.Address(), false))

	_, err = f.deliver(withdraw, buyer)
	assert.IsErr(t, ErrNotAdministrator, err)

	res, err := f.deliver(withdraw, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, []photosale.Event{Withdrawn{Treasury: f.treasury.Address(), Amount: 70}}, res.Events)
	assert.Equal(t, uint64(70), f.balance(f.treasury.Address()))
	assert.Equal(t, uint64(0), f.balance(CustodyAddress))

	// Nothing left to withdraw.
	res, err = f.deliver(withdraw, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res.Events))
}

func TestFreePhotoMovesNoFunds(t *testing.T) {
	f := newFixture(t, PayoutPush)
	buyer := weavetest.NewCondition()
	id := f.mint("gift", 0)

	_, err := f.deliver(f.purchaseMsg(id, 0), buyer)
	assert.Nil(t, err)
	assert.Equal(t, buyer.Address(), f.owner(id))
	assert.Equal(t, uint64(0), f.balance(f.treasury.Address()))
}

func TestPurchaseRequiresFunds(t *testing.T) {
	f := newFixture(t, PayoutPull)
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 10)
	id := f.mint("sunset", 50)

	_, err := f.deliver(f.purchaseMsg(id, 50), buyer)
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
	assert.Equal(t, CustodyAddress, f.owner(id))
	assert.Equal(t, uint64(1), f.inventory())
}

func TestPurchaseBuyer(t *testing.T) {
	f := newFixture(t, PayoutPull)
	payer := weavetest.NewCondition()
	other := weavetest.NewCondition()
	f.fund(payer.Address(), 100)
	f.fund(other.Address(), 100)
	id := f.mint("sunset", 10)

	msg := f.purchaseMsg(id, 10)
	_, err := f.deliver(msg)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	msg.Buyer = other.Address()
	_, err = f.deliver(msg, payer)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = f.deliver(msg, payer, other)
	assert.Nil(t, err)
	assert.Equal(t, other.Address(), f.owner(id))
	assert.Equal(t, uint64(90), f.balance(other.Address()))
	assert.Equal(t, uint64(100), f.balance(payer.Address()))
}

func TestAdministratorOnly(t *testing.T) {
	meta := &photosale.Metadata{Schema: 1}
	msgs := map[string]photosale.Msg{
		"mint":           &MintMsg{Metadata: meta, Name: "stolen"},
		"pause":          &SetPausedMsg{Metadata: meta, Paused: true},
		"change price":   &ChangePriceMsg{Metadata: meta, PhotoID: 0, Price: 1},
		"withdraw":       &WithdrawMsg{Metadata: meta},
		"transfer admin": &TransferAdminMsg{Metadata: meta, NewAdmin: weavetest.NewCondition().Address()},
	}
	for testName, msg := range msgs {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, PayoutPull)
			stranger := weavetest.NewCondition()

			_, err := f.check(msg, stranger)
			assert.IsErr(t, ErrNotAdministrator, err)
			_, err = f.deliver(msg, stranger)
			assert.IsErr(t, ErrNotAdministrator, err)

			// Treasury has no special rights.
			_, err = f.deliver(msg, f.treasury)
			assert.IsErr(t, ErrNotAdministrator, err)

			_, err = f.deliver(msg, f.admin)
			assert.Nil(t, err)
		})
	}
}

func TestTransferAdmin(t *testing.T) {
	f := newFixture(t, PayoutPull)
	next := weavetest.NewCondition()

	res, err := f.deliver(&TransferAdminMsg{
		Metadata: &photosale.Metadata{Schema: 1},
		NewAdmin: next.Address(),
	}, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, []photosale.Event{AdminTransferred{Previous: f.admin.Address(), Next: next.Address()}}, res.Events)

	admin, err := f.ctrl.Admin(f.db)
	assert.Nil(t, err)
	assert.Equal(t, next.Address(), admin)

	mint := &MintMsg{Metadata: &photosale.Metadata{Schema: 1}, Name: "after"}
	_, err = f.deliver(mint, f.admin)
	assert.IsErr(t, ErrNotAdministrator, err)
	_, err = f.deliver(mint, next)
	assert.Nil(t, err)
}

func TestMintResult(t *testing.T) {
	f := newFixture(t, PayoutPull)
	msg := &MintMsg{
		Metadata:    &photosale.Metadata{Schema: 1},
		Name:        "first",
		Description: "the very first",
		Image:       "ipfs://first",
		Price:       5,
	}
	res, err := f.deliver(msg, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, weavetest.SequenceID(0), res.Data)
	assert.Equal(t, []photosale.Event{Minted{
		ID:          0,
		Name:        "first",
		Description: "the very first",
		Image:       "ipfs://first",
		Price:       5,
	}}, res.Events)

	res, err = f.deliver(msg, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, weavetest.SequenceID(1), res.Data)
	assert.Equal(t, uint64(2), f.inventory())
}

func TestChangePrice(t *testing.T) {
	f := newFixture(t, PayoutPull)
	meta := &photosale.Metadata{Schema: 1}
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 100)

	// Unminted ids read as free and can be priced ahead.
	assert.Equal(t, uint64(0), f.price(9))
	res, err := f.deliver(&ChangePriceMsg{Metadata: meta, PhotoID: 9, Price: 70}, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, []photosale.Event{PriceChanged{ID: 9, Price: 70}}, res.Events)
	assert.Equal(t, uint64(70), f.price(9))

	id := f.mint("sold", 10)
	f.mint("kept", 10)
	_, err = f.deliver(f.purchaseMsg(id, 10), buyer)
	assert.Nil(t, err)

	// Price of a sold photo is overwritten but it remains unsellable.
	_, err = f.deliver(&ChangePriceMsg{Metadata: meta, PhotoID: id, Price: 1}, f.admin)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), f.price(id))
	_, err = f.deliver(f.purchaseMsg(id, 1), weavetest.NewCondition())
	assert.IsErr(t, ErrNotForSale, err)
	assert.Equal(t, buyer.Address(), f.owner(id))
}

func TestWalletRejectionDoesNotLeak(t *testing.T) {
	f := newFixture(t, PayoutPush)
	buyer := weavetest.NewCondition()
	f.fund(buyer.Address(), 100)
	id := f.mint("sunset", 100)
	assert.Nil(t, f.cash.SetRejectDeposits(f.db, f.treasury.Address(), true))

	// Check does not move funds and cannot detect the rejection.
	_, err := f.check(f.purchaseMsg(id, 100), buyer)
	assert.Nil(t, err)

	_, err = f.deliver(f.purchaseMsg(id, 100), buyer)
	assert.IsErr(t, ErrTreasuryTransferFailed, err)
	if cash.ErrRejected.Is(err) {
		t.Fatal("cash error must be translated")
	}
}
