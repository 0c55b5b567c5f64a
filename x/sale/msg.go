package sale

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

const (
	pathMint          = "sale/mint"
	pathSetPaused     = "sale/set_paused"
	pathChangePrice   = "sale/change_price"
	pathPurchase      = "sale/purchase"
	pathWithdraw      = "sale/withdraw"
	pathTransferAdmin = "sale/transfer_admin"
)

var _ photosale.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMint
}

func (m *MintMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateAttributes(m.Name, m.Description, m.Image)
}

var _ photosale.Msg = (*SetPausedMsg)(nil)

func (SetPausedMsg) Path() string {
	return pathSetPaused
}

func (m *SetPausedMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

var _ photosale.Msg = (*ChangePriceMsg)(nil)

func (ChangePriceMsg) Path() string {
	return pathChangePrice
}

func (m *ChangePriceMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

var _ photosale.Msg = (*PurchaseMsg)(nil)

func (PurchaseMsg) Path() string {
	return pathPurchase
}

// Validate accepts a missing buyer, in which case the main signer buys.
func (m *PurchaseMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Buyer != nil {
		if err := m.Buyer.Validate(); err != nil {
			return errors.Wrap(err, "buyer")
		}
	}
	return nil
}

var _ photosale.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return pathWithdraw
}

func (m *WithdrawMsg) Validate() error {
	return errors.Wrap(m.Metadata.Validate(), "metadata")
}

var _ photosale.Msg = (*TransferAdminMsg)(nil)

func (TransferAdminMsg) Path() string {
	return pathTransferAdmin
}

func (m *TransferAdminMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.NewAdmin) == 0 {
		return errors.Wrap(ErrZeroAddress, "new admin")
	}
	return errors.Wrap(m.NewAdmin.Validate(), "new admin")
}
