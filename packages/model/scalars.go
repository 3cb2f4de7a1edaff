package model

import (
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
)

// region Amount ///////////////////////////////////////////////////////////////////////////////////////////////////////

// AmountLength contains the amount of bytes that a marshaled version of the Amount contains.
const AmountLength = marshalutil.Uint64Size

// Amount is a quantity of a mosaic in its smallest (atomic) unit.
type Amount uint64

// AmountFromMarshalUtil unmarshals an Amount using a MarshalUtil (for easier unmarshaling).
func AmountFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Amount, error) {
	value, err := ReadUint64(marshalUtil, "Amount")
	return Amount(value), err
}

// Bytes returns a marshaled version of the Amount.
func (a Amount) Bytes() []byte {
	return uint64Bytes(uint64(a))
}

// String returns a human-readable version of the Amount.
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region BlockDuration ////////////////////////////////////////////////////////////////////////////////////////////////

// BlockDurationLength contains the amount of bytes that a marshaled version of the BlockDuration contains.
const BlockDurationLength = marshalutil.Uint64Size

// BlockDuration is a number of blocks. A duration of 0 means eternal where the ledger allows it.
type BlockDuration uint64

// BlockDurationFromMarshalUtil unmarshals a BlockDuration using a MarshalUtil (for easier unmarshaling).
func BlockDurationFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (BlockDuration, error) {
	value, err := ReadUint64(marshalUtil, "BlockDuration")
	return BlockDuration(value), err
}

// Bytes returns a marshaled version of the BlockDuration.
func (b BlockDuration) Bytes() []byte {
	return uint64Bytes(uint64(b))
}

// String returns a human-readable version of the BlockDuration.
func (b BlockDuration) String() string {
	return strconv.FormatUint(uint64(b), 10) + " blocks"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Height ///////////////////////////////////////////////////////////////////////////////////////////////////////

// HeightLength contains the amount of bytes that a marshaled version of the Height contains.
const HeightLength = marshalutil.Uint64Size

// Height is the height of a block in the chain.
type Height uint64

// HeightFromMarshalUtil unmarshals a Height using a MarshalUtil (for easier unmarshaling).
func HeightFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Height, error) {
	value, err := ReadUint64(marshalUtil, "Height")
	return Height(value), err
}

// Bytes returns a marshaled version of the Height.
func (h Height) Bytes() []byte {
	return uint64Bytes(uint64(h))
}

// String returns a human-readable version of the Height.
func (h Height) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicNonce //////////////////////////////////////////////////////////////////////////////////////////////////

// MosaicNonceLength contains the amount of bytes that a marshaled version of the MosaicNonce contains.
const MosaicNonceLength = marshalutil.Uint32Size

// MosaicNonce is the nonce that, together with the owner address, derives a MosaicID.
type MosaicNonce uint32

// MosaicNonceFromMarshalUtil unmarshals a MosaicNonce using a MarshalUtil (for easier unmarshaling).
func MosaicNonceFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (MosaicNonce, error) {
	value, err := ReadUint32(marshalUtil, "MosaicNonce")
	return MosaicNonce(value), err
}

// Bytes returns a marshaled version of the MosaicNonce.
func (m MosaicNonce) Bytes() []byte {
	return marshalutil.New(MosaicNonceLength).WriteUint32(uint32(m)).Bytes()
}

// String returns a human-readable version of the MosaicNonce.
func (m MosaicNonce) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ScopedMetadataKey ////////////////////////////////////////////////////////////////////////////////////////////

// ScopedMetadataKeyLength contains the amount of bytes that a marshaled version of the ScopedMetadataKey contains.
const ScopedMetadataKeyLength = marshalutil.Uint64Size

// ScopedMetadataKey is the key under which a metadata value is stored for its target.
type ScopedMetadataKey uint64

// ScopedMetadataKeyFromMarshalUtil unmarshals a ScopedMetadataKey using a MarshalUtil (for easier unmarshaling).
func ScopedMetadataKeyFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (ScopedMetadataKey, error) {
	value, err := ReadUint64(marshalUtil, "ScopedMetadataKey")
	return ScopedMetadataKey(value), err
}

// Bytes returns a marshaled version of the ScopedMetadataKey.
func (s ScopedMetadataKey) Bytes() []byte {
	return uint64Bytes(uint64(s))
}

// String returns a human-readable version of the ScopedMetadataKey.
func (s ScopedMetadataKey) String() string {
	return hexID(uint64(s))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region RestrictionKey ///////////////////////////////////////////////////////////////////////////////////////////////

// RestrictionKeyLength contains the amount of bytes that a marshaled version of the RestrictionKey contains.
const RestrictionKeyLength = marshalutil.Uint64Size

// RestrictionKey identifies a mosaic restriction rule.
type RestrictionKey uint64

// RestrictionKeyFromMarshalUtil unmarshals a RestrictionKey using a MarshalUtil (for easier unmarshaling).
func RestrictionKeyFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (RestrictionKey, error) {
	value, err := ReadUint64(marshalUtil, "RestrictionKey")
	return RestrictionKey(value), err
}

// Bytes returns a marshaled version of the RestrictionKey.
func (r RestrictionKey) Bytes() []byte {
	return uint64Bytes(uint64(r))
}

// String returns a human-readable version of the RestrictionKey.
func (r RestrictionKey) String() string {
	return hexID(uint64(r))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region RestrictionValue /////////////////////////////////////////////////////////////////////////////////////////////

// RestrictionValueLength contains the amount of bytes that a marshaled version of the RestrictionValue contains.
const RestrictionValueLength = marshalutil.Uint64Size

// RestrictionValue is the value a mosaic restriction rule compares against.
type RestrictionValue uint64

// RestrictionValueFromMarshalUtil unmarshals a RestrictionValue using a MarshalUtil (for easier unmarshaling).
func RestrictionValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (RestrictionValue, error) {
	value, err := ReadUint64(marshalUtil, "RestrictionValue")
	return RestrictionValue(value), err
}

// Bytes returns a marshaled version of the RestrictionValue.
func (r RestrictionValue) Bytes() []byte {
	return uint64Bytes(uint64(r))
}

// String returns a human-readable version of the RestrictionValue.
func (r RestrictionValue) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region EntityVersion ////////////////////////////////////////////////////////////////////////////////////////////////

// EntityVersionLength contains the amount of bytes that a marshaled version of the EntityVersion contains.
const EntityVersionLength = marshalutil.Uint16Size

// EntityVersion packs the NetworkType (high byte) and the version of the transaction layout (low byte).
type EntityVersion uint16

// NewEntityVersion creates an EntityVersion for the given network and layout version.
func NewEntityVersion(networkType NetworkType, version uint8) EntityVersion {
	return EntityVersion(uint16(networkType)<<8 | uint16(version))
}

// EntityVersionFromMarshalUtil unmarshals an EntityVersion using a MarshalUtil (for easier unmarshaling). The network
// byte is not validated here: it is a plain primitive at this layer.
func EntityVersionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (EntityVersion, error) {
	value, err := ReadUint16(marshalUtil, "EntityVersion")
	return EntityVersion(value), err
}

// NetworkType returns the network part of the EntityVersion.
func (e EntityVersion) NetworkType() NetworkType {
	return NetworkType(e >> 8)
}

// Version returns the layout version part of the EntityVersion.
func (e EntityVersion) Version() uint8 {
	return uint8(e)
}

// Bytes returns a marshaled version of the EntityVersion.
func (e EntityVersion) Bytes() []byte {
	return marshalutil.New(EntityVersionLength).WriteUint16(uint16(e)).Bytes()
}

// String returns a human-readable version of the EntityVersion.
func (e EntityVersion) String() string {
	return e.NetworkType().String() + "/v" + strconv.Itoa(int(e.Version()))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
