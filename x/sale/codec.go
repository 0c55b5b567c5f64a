package sale

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/iov-one/photosale"
)

// Photo is a minted item. Once created, only the holder can change.
type Photo struct {
	Metadata    *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Name        string              `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string              `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	// Image is an opaque content reference, ie. an URI.
	Image string `protobuf:"bytes,4,opt,name=image,proto3" json:"image,omitempty"`
	// Holder is the current owner. Custody address while for sale.
	Holder photosale.Address `protobuf:"bytes,5,opt,name=holder,proto3" json:"holder,omitempty"`
}

type photoWire Photo

func (m *photoWire) Reset()         { *m = photoWire{} }
func (m *photoWire) String() string { return proto.CompactTextString(m) }
func (*photoWire) ProtoMessage()    {}

func (m *Photo) Marshal() ([]byte, error)   { return proto.Marshal((*photoWire)(m)) }
func (m *Photo) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*photoWire)(m)) }

// Price is the current ask of a photo.
type Price struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Amount   uint64              `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

type priceWire Price

func (m *priceWire) Reset()         { *m = priceWire{} }
func (m *priceWire) String() string { return proto.CompactTextString(m) }
func (*priceWire) ProtoMessage()    {}

func (m *Price) Marshal() ([]byte, error)   { return proto.Marshal((*priceWire)(m)) }
func (m *Price) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*priceWire)(m)) }

// State is the mutable part of the sale settings.
type State struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Admin is allowed to mint, change prices, pause and withdraw.
	Admin  photosale.Address `protobuf:"bytes,2,opt,name=admin,proto3" json:"admin,omitempty"`
	Paused bool              `protobuf:"varint,3,opt,name=paused,proto3" json:"paused,omitempty"`
	// Inventory is the number of photos held by custody.
	Inventory uint64 `protobuf:"varint,4,opt,name=inventory,proto3" json:"inventory,omitempty"`
}

type stateWire State

func (m *stateWire) Reset()         { *m = stateWire{} }
func (m *stateWire) String() string { return proto.CompactTextString(m) }
func (*stateWire) ProtoMessage()    {}

func (m *State) Marshal() ([]byte, error)   { return proto.Marshal((*stateWire)(m)) }
func (m *State) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*stateWire)(m)) }

// Configuration is set at genesis and never changes afterwards.
type Configuration struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Treasury receives the proceeds.
	Treasury photosale.Address `protobuf:"bytes,2,opt,name=treasury,proto3" json:"treasury,omitempty"`
	// Payout is either "pull" or "push". Empty means pull.
	Payout string `protobuf:"bytes,3,opt,name=payout,proto3" json:"payout,omitempty"`
}

type configurationWire Configuration

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

func (m *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationWire)(m))
}

func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationWire)(m))
}

// MintMsg creates a new photo held by custody.
type MintMsg struct {
	Metadata    *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Name        string              `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string              `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Image       string              `protobuf:"bytes,4,opt,name=image,proto3" json:"image,omitempty"`
	Price       uint64              `protobuf:"varint,5,opt,name=price,proto3" json:"price,omitempty"`
}

type mintMsgWire MintMsg

func (m *mintMsgWire) Reset()         { *m = mintMsgWire{} }
func (m *mintMsgWire) String() string { return proto.CompactTextString(m) }
func (*mintMsgWire) ProtoMessage()    {}

func (m *MintMsg) Marshal() ([]byte, error)   { return proto.Marshal((*mintMsgWire)(m)) }
func (m *MintMsg) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*mintMsgWire)(m)) }

// SetPausedMsg turns the sale off or back on.
type SetPausedMsg struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Paused   bool                `protobuf:"varint,2,opt,name=paused,proto3" json:"paused,omitempty"`
}

type setPausedMsgWire SetPausedMsg

func (m *setPausedMsgWire) Reset()         { *m = setPausedMsgWire{} }
func (m *setPausedMsgWire) String() string { return proto.CompactTextString(m) }
func (*setPausedMsgWire) ProtoMessage()    {}

func (m *SetPausedMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*setPausedMsgWire)(m))
}

func (m *SetPausedMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setPausedMsgWire)(m))
}

// ChangePriceMsg overwrites the price of any photo id.
type ChangePriceMsg struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	PhotoID  uint64              `protobuf:"varint,2,opt,name=photo_id,json=photoId,proto3" json:"photo_id,omitempty"`
	Price    uint64              `protobuf:"varint,3,opt,name=price,proto3" json:"price,omitempty"`
}

type changePriceMsgWire ChangePriceMsg

func (m *changePriceMsgWire) Reset()         { *m = changePriceMsgWire{} }
func (m *changePriceMsgWire) String() string { return proto.CompactTextString(m) }
func (*changePriceMsgWire) ProtoMessage()    {}

func (m *ChangePriceMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*changePriceMsgWire)(m))
}

func (m *ChangePriceMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*changePriceMsgWire)(m))
}

// PurchaseMsg buys a photo held by custody.
type PurchaseMsg struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	PhotoID  uint64              `protobuf:"varint,2,opt,name=photo_id,json=photoId,proto3" json:"photo_id,omitempty"`
	// Amount is paid in full, even if above the price.
	Amount uint64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	// Buyer is optional. Main signer is used if not set.
	Buyer photosale.Address `protobuf:"bytes,4,opt,name=buyer,proto3" json:"buyer,omitempty"`
}

type purchaseMsgWire PurchaseMsg

func (m *purchaseMsgWire) Reset()         { *m = purchaseMsgWire{} }
func (m *purchaseMsgWire) String() string { return proto.CompactTextString(m) }
func (*purchaseMsgWire) ProtoMessage()    {}

func (m *PurchaseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*purchaseMsgWire)(m))
}

func (m *PurchaseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*purchaseMsgWire)(m))
}

// WithdrawMsg moves the accumulated proceeds to the treasury.
type WithdrawMsg struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

type withdrawMsgWire WithdrawMsg

func (m *withdrawMsgWire) Reset()         { *m = withdrawMsgWire{} }
func (m *withdrawMsgWire) String() string { return proto.CompactTextString(m) }
func (*withdrawMsgWire) ProtoMessage()    {}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*withdrawMsgWire)(m))
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*withdrawMsgWire)(m))
}

// TransferAdminMsg hands the administrator role over.
type TransferAdminMsg struct {
	Metadata *photosale.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	NewAdmin photosale.Address   `protobuf:"bytes,2,opt,name=new_admin,json=newAdmin,proto3" json:"new_admin,omitempty"`
}

type transferAdminMsgWire TransferAdminMsg

func (m *transferAdminMsgWire) Reset()         { *m = transferAdminMsgWire{} }
func (m *transferAdminMsgWire) String() string { return proto.CompactTextString(m) }
func (*transferAdminMsgWire) ProtoMessage()    {}

func (m *TransferAdminMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferAdminMsgWire)(m))
}

func (m *TransferAdminMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferAdminMsgWire)(m))
}
