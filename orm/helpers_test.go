package orm

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/iov-one/photosale/errors"
)

// album is a minimal model used to exercise the buckets.
type album struct {
	Title string `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Owner []byte `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

type albumWire album

func (m *albumWire) Reset()         { *m = albumWire{} }
func (m *albumWire) String() string { return proto.CompactTextString(m) }
func (*albumWire) ProtoMessage()    {}

func (a *album) Marshal() ([]byte, error) { return proto.Marshal((*albumWire)(a)) }

func (a *album) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*albumWire)(a)) }

func (a *album) Validate() error {
	if a.Title == "" {
		return errors.Wrap(errors.ErrEmpty, "title")
	}
	return nil
}

func (a *album) Copy() CloneableData {
	cpy := *a
	return &cpy
}

func albumOwner(obj Object) ([]byte, error) {
	a, ok := obj.Value().(*album)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return a.Owner, nil
}

func newAlbumBucket() Bucket {
	return NewBucket("albums", NewSimpleObj(nil, &album{})).
		WithIndex("owner", albumOwner, false)
}
