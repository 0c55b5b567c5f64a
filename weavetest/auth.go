package weavetest

import (
	"github.com/iov-one/photosale"
)

// Auth is a mock implementing x.Authenticator interface. It authenticates
// a fixed set of conditions, regardless of the context.
//
// Signers come first, Signer (if set) is appended as the last one.
type Auth struct {
	Signer  photosale.Condition
	Signers []photosale.Condition
}

func (a *Auth) GetConditions(photosale.Context) []photosale.Condition {
	conds := append([]photosale.Condition(nil), a.Signers...)
	if a.Signer != nil {
		conds = append(conds, a.Signer)
	}
	return conds
}

func (a *Auth) HasAddress(ctx photosale.Context, addr photosale.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth is a mock implementing x.Authenticator interface. Conditions are
// kept in the context under Key, so each call can be signed differently.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context authenticating given conditions. Any
// conditions set before are replaced.
func (a *CtxAuth) SetConditions(ctx photosale.Context, conds ...photosale.Condition) photosale.Context {
	return withValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx photosale.Context) []photosale.Condition {
	conds, _ := ctx.Value(a.Key).([]photosale.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx photosale.Context, addr photosale.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []photosale.Condition, addr photosale.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
