package cash

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

var _ photosale.Msg = (*SendMsg)(nil)

const maxMemoSize = 128

func (SendMsg) Path() string {
	return "cash/send"
}

// Validate requires a positive amount between two valid addresses.
func (m *SendMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	switch {
	case m.Amount == 0:
		return errors.Wrap(errors.ErrAmount, "zero amount")
	case len(m.Memo) > maxMemoSize:
		return errors.Wrapf(errors.ErrInput, "memo longer than %d", maxMemoSize)
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	return errors.Wrap(m.Destination.Validate(), "destination")
}
