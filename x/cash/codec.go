package cash

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/iov-one/photosale"
)

// Wallet holds the balance of a single address.
type Wallet struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Balance in the smallest currency unit.
	Balance uint64 `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	// RejectDeposits set makes every incoming transfer fail.
	RejectDeposits bool `protobuf:"varint,3,opt,name=reject_deposits,json=rejectDeposits,proto3" json:"reject_deposits,omitempty"`
}

type walletWire Wallet

func (m *walletWire) Reset()         { *m = walletWire{} }
func (m *walletWire) String() string { return proto.CompactTextString(m) }
func (*walletWire) ProtoMessage()    {}

func (m *Wallet) Marshal() ([]byte, error) {
	return proto.Marshal((*walletWire)(m))
}

func (m *Wallet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*walletWire)(m))
}

func (m *Wallet) GetBalance() uint64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// SendMsg moves funds from the source wallet to the destination wallet.
type SendMsg struct {
	Metadata    *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      photosale.Address   `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Destination photosale.Address   `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      uint64              `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	// Memo is an optional human readable message.
	Memo string `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

type sendMsgWire SendMsg

func (m *sendMsgWire) Reset()         { *m = sendMsgWire{} }
func (m *sendMsgWire) String() string { return proto.CompactTextString(m) }
func (*sendMsgWire) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgWire)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsgWire)(m))
}
