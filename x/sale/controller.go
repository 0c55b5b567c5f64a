package sale

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/gconf"
	"github.com/iov-one/photosale/orm"
	"github.com/iov-one/photosale/x"
	"github.com/iov-one/photosale/x/cash"
)

// Controller implements the sale operations on top of the storage.
// Authorization is left to the handlers.
type Controller struct {
	photos orm.ModelBucket
	prices orm.ModelBucket
	states orm.ModelBucket
	seq    orm.Sequence
	cash   cash.Controller
}

// NewController returns a controller that moves funds with given cash
// controller.
func NewController(cashCtrl cash.Controller) *Controller {
	return &Controller{
		photos: NewPhotoBucket(),
		prices: NewPriceBucket(),
		states: NewStateBucket(),
		seq:    orm.NewSequence("photo", orm.SeqID),
		cash:   cashCtrl,
	}
}

// Configuration returns the settings stored at genesis.
func (c *Controller) Configuration(db photosale.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, optKey, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// State returns the current mutable settings.
func (c *Controller) State(db photosale.ReadOnlyKVStore) (*State, error) {
	var s State
	if err := c.states.One(db, stateKey, &s); err != nil {
		return nil, errors.Wrap(err, "load state")
	}
	return &s, nil
}

func (c *Controller) saveState(db photosale.KVStore, s *State) error {
	return c.states.Put(db, stateKey, s)
}

// Admin returns the current administrator.
func (c *Controller) Admin(db photosale.ReadOnlyKVStore) (photosale.Address, error) {
	s, err := c.State(db)
	if err != nil {
		return nil, err
	}
	return s.Admin, nil
}

// Treasury returns the destination of the proceeds.
func (c *Controller) Treasury(db photosale.ReadOnlyKVStore) (photosale.Address, error) {
	conf, err := c.Configuration(db)
	if err != nil {
		return nil, err
	}
	return conf.Treasury, nil
}

// PayoutMode returns either PayoutPull or PayoutPush.
func (c *Controller) PayoutMode(db photosale.ReadOnlyKVStore) (string, error) {
	conf, err := c.Configuration(db)
	if err != nil {
		return "", err
	}
	return conf.PayoutMode(), nil
}

// IsPaused returns true if purchases are rejected.
func (c *Controller) IsPaused(db photosale.ReadOnlyKVStore) (bool, error) {
	s, err := c.State(db)
	if err != nil {
		return false, err
	}
	return s.Paused, nil
}

// InventoryCount returns the number of photos held by custody.
func (c *Controller) InventoryCount(db photosale.ReadOnlyKVStore) (uint64, error) {
	s, err := c.State(db)
	if err != nil {
		return 0, err
	}
	return s.Inventory, nil
}

// PendingProceeds returns the funds waiting in custody for a withdraw.
func (c *Controller) PendingProceeds(db photosale.ReadOnlyKVStore) (uint64, error) {
	return c.cash.Balance(db, CustodyAddress)
}

// PriceOf returns the stored price. Unknown ids are priced 0.
func (c *Controller) PriceOf(db photosale.ReadOnlyKVStore, id uint64) (uint64, error) {
	var p Price
	switch err := c.prices.One(db, photoKey(id), &p); {
	case err == nil:
		return p.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "load price")
	}
}

// Photo returns the photo with given id or ErrNotFound.
func (c *Controller) Photo(db photosale.ReadOnlyKVStore, id uint64) (*Photo, error) {
	var p Photo
	if err := c.photos.One(db, photoKey(id), &p); err != nil {
		return nil, errors.Wrapf(err, "photo %d", id)
	}
	return &p, nil
}

// OwnerOf returns the holder of given photo.
func (c *Controller) OwnerOf(db photosale.ReadOnlyKVStore, id uint64) (photosale.Address, error) {
	p, err := c.Photo(db, id)
	if err != nil {
		return nil, err
	}
	return p.Holder, nil
}

// MetadataOf returns the encoded descriptor of given photo.
func (c *Controller) MetadataOf(db photosale.ReadOnlyKVStore, id uint64) (string, error) {
	p, err := c.Photo(db, id)
	if err != nil {
		return "", err
	}
	return NewDescriptor(id, p).Encode()
}

// ListInventory returns every photo held by custody in ascending id
// order. All three sequences have the same length.
func (c *Controller) ListInventory(db photosale.ReadOnlyKVStore) (ids []uint64, metadata []Descriptor, prices []uint64, err error) {
	// Index references are kept sorted and ids are big endian encoded.
	keys, err := c.photos.ByIndex(db, "holder", CustodyAddress)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "holder index")
	}
	for _, key := range keys {
		if err := orm.ValidateSequence(key); err != nil {
			return nil, nil, nil, errors.Wrap(err, "photo key")
		}
		id := uint64(orm.DecodeSequence(key))
		p, err := c.Photo(db, id)
		if err != nil {
			return nil, nil, nil, err
		}
		price, err := c.PriceOf(db, id)
		if err != nil {
			return nil, nil, nil, err
		}
		ids = append(ids, id)
		metadata = append(metadata, NewDescriptor(id, p))
		prices = append(prices, price)
	}
	return ids, metadata, prices, nil
}

// Mint creates a new photo held by custody and returns its id.
func (c *Controller) Mint(db photosale.KVStore, name, description, image string, price uint64) (uint64, error) {
	state, err := c.State(db)
	if err != nil {
		return 0, err
	}
	next, err := c.seq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "next photo id")
	}
	id := uint64(next - 1)

	photo := &Photo{
		Metadata:    &photosale.Metadata{Schema: 1},
		Name:        name,
		Description: description,
		Image:       image,
		Holder:      CustodyAddress,
	}
	if err := c.photos.Put(db, photoKey(id), photo); err != nil {
		return 0, errors.Wrap(err, "save photo")
	}
	if err := c.SetPrice(db, id, price); err != nil {
		return 0, err
	}
	if state.Inventory, err = x.AddAmount(state.Inventory, 1); err != nil {
		return 0, errors.Wrap(err, "inventory")
	}
	if err := c.saveState(db, state); err != nil {
		return 0, err
	}
	return id, nil
}

// SetPrice overwrites the price of given id. The photo does not need to
// exist.
func (c *Controller) SetPrice(db photosale.KVStore, id uint64, amount uint64) error {
	p := &Price{Metadata: &photosale.Metadata{Schema: 1}, Amount: amount}
	if err := c.prices.Put(db, photoKey(id), p); err != nil {
		return errors.Wrap(err, "save price")
	}
	return nil
}

// SetPaused changes the pause flag.
func (c *Controller) SetPaused(db photosale.KVStore, paused bool) error {
	state, err := c.State(db)
	if err != nil {
		return err
	}
	state.Paused = paused
	return c.saveState(db, state)
}

// TransferAdmin replaces the administrator and returns the previous one.
func (c *Controller) TransferAdmin(db photosale.KVStore, next photosale.Address) (photosale.Address, error) {
	state, err := c.State(db)
	if err != nil {
		return nil, err
	}
	prev := state.Admin
	state.Admin = next
	if err := c.saveState(db, state); err != nil {
		return nil, err
	}
	return prev, nil
}

// CanPurchase checks the purchase preconditions in order without
// changing the state.
func (c *Controller) CanPurchase(db photosale.ReadOnlyKVStore, id uint64, amount uint64) error {
	state, err := c.State(db)
	if err != nil {
		return err
	}
	if state.Inventory == 0 {
		return errors.Wrap(ErrNoInventory, "custody holds no photo")
	}
	if state.Paused {
		return errors.Wrap(ErrSalePaused, "purchases are rejected")
	}
	switch p, err := c.Photo(db, id); {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(ErrNotForSale, "photo %d not minted", id)
	case err != nil:
		return err
	case !p.ForSale():
		return errors.Wrapf(ErrNotForSale, "photo %d held by %s", id, p.Holder)
	}
	price, err := c.PriceOf(db, id)
	if err != nil {
		return err
	}
	if amount < price {
		return errors.Wrapf(ErrInsufficientPayment, "paid %d, price %d", amount, price)
	}
	return nil
}

// Purchase moves the photo from custody to the buyer and takes the
// payment from the buyer wallet. Depending on the payout mode the payment
// goes to the treasury or stays in custody.
//
// Changes are not reverted on error. Run it inside of a savepoint.
func (c *Controller) Purchase(db photosale.KVStore, id uint64, buyer photosale.Address, amount uint64) error {
	if err := c.CanPurchase(db, id, amount); err != nil {
		return err
	}
	if err := buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}

	if err := c.SetPrice(db, id, 0); err != nil {
		return err
	}
	photo, err := c.Photo(db, id)
	if err != nil {
		return err
	}
	photo.Holder = buyer
	if err := c.photos.Put(db, photoKey(id), photo); err != nil {
		return errors.Wrap(err, "save photo")
	}
	state, err := c.State(db)
	if err != nil {
		return err
	}
	if state.Inventory, err = x.SubAmount(state.Inventory, 1); err != nil {
		return errors.Wrap(err, "inventory")
	}
	if err := c.saveState(db, state); err != nil {
		return err
	}

	conf, err := c.Configuration(db)
	if err != nil {
		return err
	}
	if conf.PayoutMode() == PayoutPull {
		return c.cash.MoveCoins(db, buyer, CustodyAddress, amount)
	}
	return c.payTreasury(db, buyer, conf.Treasury, amount)
}

// Withdraw moves all proceeds held by custody to the treasury and returns
// the amount moved. Nothing is moved if there are no proceeds.
func (c *Controller) Withdraw(db photosale.KVStore) (photosale.Address, uint64, error) {
	treasury, err := c.Treasury(db)
	if err != nil {
		return nil, 0, err
	}
	amount, err := c.PendingProceeds(db)
	if err != nil {
		return nil, 0, err
	}
	if amount == 0 {
		return treasury, 0, nil
	}
	if err := c.payTreasury(db, CustodyAddress, treasury, amount); err != nil {
		return nil, 0, err
	}
	return treasury, amount, nil
}

func (c *Controller) payTreasury(db photosale.KVStore, src, treasury photosale.Address, amount uint64) error {
	err := c.cash.MoveCoins(db, src, treasury, amount)
	if cash.ErrRejected.Is(err) {
		return errors.Wrap(ErrTreasuryTransferFailed, err.Error())
	}
	return err
}
