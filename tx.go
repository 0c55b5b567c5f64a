package photosale

import (
	"reflect"

	"github.com/iov-one/photosale/errors"
)

// Msg is a request to change the ledger state, ie. mint a photo. It
// carries no authentication, signatures travel with the Tx.
type Msg interface {
	Persistent

	// Path routes the message to its handler. It must match
	// [0-9A-Za-z_\-/]+, ie. "sale/mint".
	Path() string

	// Validate checks the message alone, without looking at the state.
	Validate() error
}

// Marshaller can be serialized.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent can be serialized and loaded back. Unmarshal usually needs a
// pointer receiver.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is a signed call to the ledger carrying a single message.
type Tx interface {
	GetMsg() (Msg, error)
}

// GetPath returns the path of the carried message or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg copies the message carried by tx into dest and validates it.
// dest must be a non nil pointer of the same type as the message, ie.
//
//   var msg MintMsg
//   if err := photosale.LoadMsg(tx, &msg); err != nil {
//     return err
//   }
func LoadMsg(tx Tx, dest interface{}) error {
	msg, err := ExtractMsgFromSum(tx)
	if err != nil {
		return errors.Wrap(err, "cannot extract message")
	}
	dst := reflect.ValueOf(dest)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Type() != dst.Type() {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", dest, msg)
	}
	dst.Elem().Set(src.Elem())
	return errors.Wrap(msg.Validate(), "invalid message")
}

// ExtractMsgFromSum returns the message of tx. A missing transaction or
// message fails with ErrInput.
func ExtractMsgFromSum(tx Tx) (Msg, error) {
	if tx == nil {
		return nil, errors.Wrap(errors.ErrInput, "nil transaction")
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "message is nil")
	}
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, errors.Wrap(errors.ErrInput, "message is nil")
	}
	return msg, nil
}
