package sale

import "github.com/iov-one/photosale/errors"

// Reserved codes 3000~3009
var (
	ErrZeroAddress            = errors.Register(3000, "zero address")
	ErrNotAdministrator       = errors.Register(3001, "not administrator")
	ErrNoInventory            = errors.Register(3002, "no inventory")
	ErrSalePaused             = errors.Register(3003, "sale paused")
	ErrNotForSale             = errors.Register(3004, "not for sale")
	ErrInsufficientPayment    = errors.Register(3005, "insufficient payment")
	ErrTreasuryTransferFailed = errors.Register(3006, "treasury transfer failed")
)
