package cash

import (
	"github.com/iov-one/photosale/errors"
)

// Reserved codes 2000~2009
var (
	// ErrRejected is returned when the recipient wallet refuses a deposit.
	ErrRejected = errors.Register(2000, "deposit rejected")
)
