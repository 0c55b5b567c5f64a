/*
Package sigs keeps track of the conditions that authorized the current
call. The ledger places the caller into the context before any handler
runs and handlers read it back through Authenticate.
*/
package sigs

import (
	"context"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// WithSigners returns a context carrying given conditions as signers of
// the current call. Any previously set signers are replaced.
func WithSigners(ctx photosale.Context, signers ...photosale.Condition) photosale.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate reads the signers from the context.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx photosale.Context) []photosale.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]photosale.Condition)
	return val
}

// HasAddress returns true if any of the signers matches given address.
func (a Authenticate) HasAddress(ctx photosale.Context, addr photosale.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
