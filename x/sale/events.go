package sale

import "github.com/iov-one/photosale"

// Minted is emitted when a new photo enters custody.
type Minted struct {
	ID          uint64
	Name        string
	Description string
	Image       string
	Price       uint64
}

// Purchased is emitted when a photo leaves custody.
type Purchased struct {
	ID     uint64
	Buyer  photosale.Address
	Amount uint64
}

// PriceChanged is emitted on every price write.
type PriceChanged struct {
	ID    uint64
	Price uint64
}

type PauseChanged struct {
	Paused bool
}

type Withdrawn struct {
	Treasury photosale.Address
	Amount   uint64
}

type AdminTransferred struct {
	Previous photosale.Address
	Next     photosale.Address
}

func (Minted) EventName() string           { return "minted" }
func (Purchased) EventName() string        { return "purchased" }
func (PriceChanged) EventName() string     { return "price_changed" }
func (PauseChanged) EventName() string     { return "pause_changed" }
func (Withdrawn) EventName() string        { return "withdrawn" }
func (AdminTransferred) EventName() string { return "admin_transferred" }

var (
	_ photosale.Event = Minted{}
	_ photosale.Event = Purchased{}
	_ photosale.Event = PriceChanged{}
	_ photosale.Event = PauseChanged{}
	_ photosale.Event = Withdrawn{}
	_ photosale.Event = AdminTransferred{}
)
