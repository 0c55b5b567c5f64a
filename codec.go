package photosale

import (
	proto "github.com/gogo/protobuf/proto"
)

// Metadata is a header carried by every persisted model and every message.
// Schema is the version of the data layout.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

// metadataWire is the protobuf view of Metadata. Encoding goes through the
// reflection based table marshaler, so Metadata itself can expose Marshal and
// Unmarshal without recursing into them.
type metadataWire Metadata

func (m *metadataWire) Reset()         { *m = metadataWire{} }
func (m *metadataWire) String() string { return proto.CompactTextString(m) }
func (*metadataWire) ProtoMessage()    {}

// Marshal serializes the header using protobuf encoding.
func (m *Metadata) Marshal() ([]byte, error) {
	return proto.Marshal((*metadataWire)(m))
}

// Unmarshal loads the header from its protobuf encoding.
func (m *Metadata) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*metadataWire)(m))
}

func (m *Metadata) GetSchema() uint32 {
	if m != nil {
		return m.Schema
	}
	return 0
}
