package x

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. Handlers receive it in their constructor so the
// authentication source can be replaced in tests.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled. The first one is
	// the main signer.
	GetConditions(photosale.Context) []photosale.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(photosale.Context, photosale.Address) bool
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx photosale.Context, auth Authenticator) photosale.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// RequireAddress returns ErrUnauthorized unless one of the conditions
// authenticated in the context resolves to given address. Role is used to
// describe the missing signer.
func RequireAddress(ctx photosale.Context, auth Authenticator, addr photosale.Address, role string) error {
	if len(addr) == 0 {
		return errors.Wrapf(errors.ErrUnauthorized, "no %s", role)
	}
	if !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s %s signature missing", role, addr)
	}
	return nil
}
