package weavetest

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/crypto"
)

// NewKey returns a random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns a condition of a random key.
func NewCondition() photosale.Condition {
	return NewKey().PublicKey().Condition()
}
