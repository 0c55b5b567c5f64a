package orm

import (
	"encoding/binary"

	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// Sequence is a persistent counter used to generate primary keys. The
// first value is 1. Encoded values sort in the same order as the numbers.
type Sequence struct {
	id []byte
}

// NewSequence returns the counter stored under "_s.<bucket>:<name>".
func NewSequence(bucket, name string) Sequence {
	return Sequence{id: []byte("_s." + bucket + ":" + name)}
}

// NextVal increments the counter and returns the new value encoded.
func (s *Sequence) NextVal(db photosale.KVStore) ([]byte, error) {
	n, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(n), nil
}

// NextInt increments the counter and returns the new value.
func (s *Sequence) NextInt(db photosale.KVStore) (int64, error) {
	n, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	n++
	if err := db.Set(s.id, EncodeSequence(n)); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return n, nil
}

// Latest returns the last value given out, 0 if none was. It does not
// change the counter.
func (s *Sequence) Latest(db photosale.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return DecodeSequence(raw), nil
}

// EncodeSequence returns the 8 byte big endian form of the value.
func EncodeSequence(n int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(n))
	return raw
}

// DecodeSequence reverses EncodeSequence. Anything that is not 8 bytes
// long decodes to 0.
func DecodeSequence(raw []byte) int64 {
	if len(raw) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(raw))
}

// ValidateSequence fails unless id looks like an encoded sequence value.
func ValidateSequence(id []byte) error {
	switch len(id) {
	case 0:
		return errors.Wrap(errors.ErrEmpty, "sequence")
	case 8:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "sequence of %d bytes", len(id))
	}
}
