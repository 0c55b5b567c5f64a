package sale

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"github.com/iov-one/photosale/orm"
)

const (
	// PayoutPull keeps the proceeds in custody until withdrawn.
	PayoutPull = "pull"
	// PayoutPush forwards the payment to the treasury during purchase.
	PayoutPush = "push"

	maxNameLength        = 128
	maxDescriptionLength = 1024
	maxImageLength       = 1024
)

// CustodyCondition is the condition of the ledger itself. Photos held by
// its address are for sale and pull mode proceeds accumulate in its
// wallet.
var CustodyCondition = photosale.NewCondition("sale", "custody", []byte("photo"))

// CustodyAddress holds all photos that are for sale.
var CustodyAddress = CustodyCondition.Address()

var _ orm.Model = (*Photo)(nil)

// Validate ensures the photo is sensible.
func (p *Photo) Validate() error {
	if err := p.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateAttributes(p.Name, p.Description, p.Image); err != nil {
		return err
	}
	if err := p.Holder.Validate(); err != nil {
		return errors.Wrap(err, "holder")
	}
	return nil
}

func validateAttributes(name, description, image string) error {
	switch {
	case name == "":
		return errors.Wrap(errors.ErrEmpty, "name")
	case len(name) > maxNameLength:
		return errors.Wrap(errors.ErrInput, "name too long")
	case len(description) > maxDescriptionLength:
		return errors.Wrap(errors.ErrInput, "description too long")
	case len(image) > maxImageLength:
		return errors.Wrap(errors.ErrInput, "image too long")
	}
	return nil
}

// Copy returns a deep copy of the photo.
func (p *Photo) Copy() orm.CloneableData {
	return &Photo{
		Metadata:    p.Metadata.Copy(),
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Holder:      p.Holder.Clone(),
	}
}

// ForSale returns true if the photo is held by custody.
func (p *Photo) ForSale() bool {
	return p.Holder.Equals(CustodyAddress)
}

func holderIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	p, ok := obj.Value().(*Photo)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return p.Holder, nil
}

// NewPhotoBucket returns a bucket keeping photos under their 8 byte big
// endian id. Photos are indexed by their holder.
func NewPhotoBucket() orm.ModelBucket {
	b := orm.NewBucket("photo", orm.NewSimpleObj(nil, &Photo{})).
		WithIndex("holder", holderIndexer, false)
	return orm.NewModelBucket(b)
}

var _ orm.Model = (*Price)(nil)

// Validate ensures the price carries metadata.
func (p *Price) Validate() error {
	return errors.Wrap(p.Metadata.Validate(), "metadata")
}

// Copy returns a copy of the price.
func (p *Price) Copy() orm.CloneableData {
	return &Price{Metadata: p.Metadata.Copy(), Amount: p.Amount}
}

// NewPriceBucket returns a bucket keeping prices under the photo id. Ids
// without a photo can be priced as well.
func NewPriceBucket() orm.ModelBucket {
	b := orm.NewBucket("price", orm.NewSimpleObj(nil, &Price{}))
	return orm.NewModelBucket(b)
}

var _ orm.Model = (*State)(nil)

// Validate ensures there is an administrator.
func (s *State) Validate() error {
	if err := s.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(s.Admin) == 0 {
		return errors.Wrap(ErrZeroAddress, "admin")
	}
	return errors.Wrap(s.Admin.Validate(), "admin")
}

// Copy returns a copy of the state.
func (s *State) Copy() orm.CloneableData {
	return &State{
		Metadata:  s.Metadata.Copy(),
		Admin:     s.Admin.Clone(),
		Paused:    s.Paused,
		Inventory: s.Inventory,
	}
}

// stateKey is the only key used in the state bucket.
var stateKey = []byte("current")

// NewStateBucket returns the bucket holding the State singleton.
func NewStateBucket() orm.ModelBucket {
	b := orm.NewBucket("salestate", orm.NewSimpleObj(nil, &State{}))
	return orm.NewModelBucket(b)
}

// Validate ensures there is a treasury and a known payout mode.
func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(c.Treasury) == 0 {
		return errors.Wrap(ErrZeroAddress, "treasury")
	}
	if err := c.Treasury.Validate(); err != nil {
		return errors.Wrap(err, "treasury")
	}
	switch c.Payout {
	case "", PayoutPull, PayoutPush:
	default:
		return errors.Wrapf(errors.ErrInput, "unknown payout %q", c.Payout)
	}
	return nil
}

// PayoutMode returns the configured mode, defaulting to pull.
func (c *Configuration) PayoutMode() string {
	if c.Payout == "" {
		return PayoutPull
	}
	return c.Payout
}

// photoKey returns the database key of given photo id.
func photoKey(id uint64) []byte {
	return orm.EncodeSequence(int64(id))
}
