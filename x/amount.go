package x

import (
	"math"

	"github.com/iov-one/photosale/errors"
)

// Validater is implemented by every model and message that can check its
// own consistency.
type Validater interface {
	Validate() error
}

// AddAmount returns a sum of both values or ErrOverflow if the result
// cannot be represented.
func AddAmount(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}

// SubAmount returns a - b or ErrInsufficientAmount if b is greater.
func SubAmount(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrInsufficientAmount, "%d < %d", a, b)
	}
	return a - b, nil
}
