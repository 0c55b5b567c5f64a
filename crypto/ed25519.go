package crypto

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used as the extension section of every condition
// produced from a public key.
const ExtensionName = "sigs"

// PrivateKey is an ed25519 signing key.
type PrivateKey struct {
	key ed25519.PrivateKey
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{key: priv}
}

// PrivKeyFromBytes loads a private key from its raw representation as
// returned by the Bytes method.
func PrivKeyFromBytes(raw []byte) (*PrivateKey, error) {
	if len(raw) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "want %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}
	key := make(ed25519.PrivateKey, len(raw))
	copy(key, raw)
	return &PrivateKey{key: key}, nil
}

// Bytes returns the raw representation of the key.
func (p *PrivateKey) Bytes() []byte {
	return append([]byte(nil), p.key...)
}

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(p.key, message)
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() PublicKey {
	return PublicKey(p.key.Public().(ed25519.PublicKey))
}

// PublicKey is an ed25519 verification key.
type PublicKey []byte

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message, sig []byte) bool {
	if len(p) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, sig)
}

// Condition encodes the public key into a permission
func (p PublicKey) Condition() photosale.Condition {
	return photosale.NewCondition(ExtensionName, "ed25519", p)
}

// Address is the address of the condition represented by this key.
func (p PublicKey) Address() photosale.Address {
	return p.Condition().Address()
}
