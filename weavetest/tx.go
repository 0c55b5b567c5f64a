package weavetest

import (
	"encoding/binary"

	"github.com/iov-one/photosale"
)

// Tx is a transaction carrying a single message.
type Tx struct {
	Msg photosale.Msg
	// Err if set is returned instead of the message.
	Err error
}

var _ photosale.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (photosale.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a message with a configurable route and validation result.
type Msg struct {
	// RoutePath is returned by Path and used by the router.
	RoutePath string
	// ValidErr if set is returned by the Validate method.
	ValidErr error

	raw []byte
}

var _ photosale.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Unmarshal(b []byte) error {
	m.raw = b
	return nil
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.raw, nil
}

func (m *Msg) Validate() error {
	return m.ValidErr
}

// SequenceID returns an ID encoded as if it was generated by the bucket
// sequence call.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
