package transaction

import (
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region metadataEntry ////////////////////////////////////////////////////////////////////////////////////////////////

// metadataEntry holds the fields that the account, mosaic and namespace metadata bodies share. The value is the XOR
// difference to the value that is currently stored and is kept verbatim.
type metadataEntry struct {
	targetPublicKey   model.PublicKey
	scopedMetadataKey model.ScopedMetadataKey
	valueSizeDelta    int16
	value             []byte
}

func newMetadataEntry(targetPublicKey model.PublicKey, scopedMetadataKey model.ScopedMetadataKey, valueSizeDelta int16, value []byte) (entry metadataEntry, err error) {
	if err = checkLength(len(value), MaxPayloadLength, "metadata value"); err != nil {
		return
	}

	return metadataEntry{
		targetPublicKey:   targetPublicKey,
		scopedMetadataKey: scopedMetadataKey,
		valueSizeDelta:    valueSizeDelta,
		value:             cloneBytes(value),
	}, nil
}

func (m *metadataEntry) keysFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	if m.targetPublicKey, err = model.PublicKeyFromMarshalUtil(marshalUtil); err != nil {
		return xerrors.Errorf("failed to parse target public key: %w", err)
	}
	if m.scopedMetadataKey, err = model.ScopedMetadataKeyFromMarshalUtil(marshalUtil); err != nil {
		return xerrors.Errorf("failed to parse scoped metadata key: %w", err)
	}

	return nil
}

func (m *metadataEntry) valueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (err error) {
	valueSizeDelta, err := model.ReadUint16(marshalUtil, "value size delta")
	if err != nil {
		return err
	}
	m.valueSizeDelta = int16(valueSizeDelta)
	m.value, err = readPayload(marshalUtil, "metadata value")

	return err
}

func (m *metadataEntry) writeKeys(marshalUtil *marshalutil.MarshalUtil) {
	marshalUtil.WriteBytes(m.targetPublicKey.Bytes()).WriteBytes(m.scopedMetadataKey.Bytes())
}

func (m *metadataEntry) writeValue(marshalUtil *marshalutil.MarshalUtil) {
	marshalUtil.WriteUint16(uint16(m.valueSizeDelta))
	writePayload(marshalUtil, m.value)
}

func (m *metadataEntry) size() int {
	return model.PublicKeyLength + model.ScopedMetadataKeyLength + marshalutil.Uint16Size + marshalutil.Uint16Size + len(m.value)
}

// TargetPublicKey returns the owner of the metadata.
func (m *metadataEntry) TargetPublicKey() model.PublicKey {
	return m.targetPublicKey
}

// ScopedMetadataKey returns the key the value is stored under.
func (m *metadataEntry) ScopedMetadataKey() model.ScopedMetadataKey {
	return m.scopedMetadataKey
}

// ValueSizeDelta returns the change of the stored value size.
func (m *metadataEntry) ValueSizeDelta() int16 {
	return m.valueSizeDelta
}

// Value returns a copy of the XOR difference to the stored value.
func (m *metadataEntry) Value() []byte {
	return cloneBytes(m.value)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AccountMetadata //////////////////////////////////////////////////////////////////////////////////////////////

// AccountMetadata attaches metadata to an account.
type AccountMetadata struct {
	metadataEntry
}

// NewAccountMetadata is the constructor for AccountMetadata bodies.
func NewAccountMetadata(targetPublicKey model.PublicKey, scopedMetadataKey model.ScopedMetadataKey, valueSizeDelta int16, value []byte) (*AccountMetadata, error) {
	entry, err := newMetadataEntry(targetPublicKey, scopedMetadataKey, valueSizeDelta, value)
	if err != nil {
		return nil, err
	}

	return &AccountMetadata{metadataEntry: entry}, nil
}

// AccountMetadataFromMarshalUtil unmarshals an AccountMetadata using a MarshalUtil (for easier unmarshaling).
func AccountMetadataFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (metadata *AccountMetadata, err error) {
	metadata = &AccountMetadata{}
	if err = metadata.keysFromMarshalUtil(marshalUtil); err != nil {
		return nil, err
	}
	if err = metadata.valueFromMarshalUtil(marshalUtil); err != nil {
		return nil, err
	}

	return metadata, nil
}

// Type returns the TransactionType of the AccountMetadata.
func (a *AccountMetadata) Type() model.TransactionType {
	return model.AccountMetadataTransactionType
}

// Size returns the amount of bytes of the marshaled AccountMetadata.
func (a *AccountMetadata) Size() int {
	return a.size()
}

// Bytes returns a marshaled version of the AccountMetadata.
func (a *AccountMetadata) Bytes() []byte {
	marshalUtil := marshalutil.New(a.Size())
	a.writeKeys(marshalUtil)
	a.writeValue(marshalUtil)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the AccountMetadata.
func (a *AccountMetadata) String() string {
	return stringify.Struct("AccountMetadata",
		stringify.StructField("targetPublicKey", a.targetPublicKey),
		stringify.StructField("scopedMetadataKey", a.scopedMetadataKey),
		stringify.StructField("valueSizeDelta", strconv.Itoa(int(a.valueSizeDelta))),
		stringify.StructField("value", a.value),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &AccountMetadata{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicMetadata ///////////////////////////////////////////////////////////////////////////////////////////////

// MosaicMetadata attaches metadata to a mosaic.
type MosaicMetadata struct {
	metadataEntry
	targetMosaicID model.UnresolvedMosaicID
}

// NewMosaicMetadata is the constructor for MosaicMetadata bodies.
func NewMosaicMetadata(targetPublicKey model.PublicKey, scopedMetadataKey model.ScopedMetadataKey, targetMosaicID model.UnresolvedMosaicID, valueSizeDelta int16, value []byte) (*MosaicMetadata, error) {
	entry, err := newMetadataEntry(targetPublicKey, scopedMetadataKey, valueSizeDelta, value)
	if err != nil {
		return nil, err
	}

	return &MosaicMetadata{metadataEntry: entry, targetMosaicID: targetMosaicID}, nil
}

// MosaicMetadataFromMarshalUtil unmarshals a MosaicMetadata using a MarshalUtil (for easier unmarshaling).
func MosaicMetadataFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (metadata *MosaicMetadata, err error) {
	metadata = &MosaicMetadata{}
	if err = metadata.keysFromMarshalUtil(marshalUtil); err != nil {
		return nil, err
	}
	if metadata.targetMosaicID, err = model.UnresolvedMosaicIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse target mosaic id: %w", err)
	}
	if err = metadata.valueFromMarshalUtil(marshalUtil); err != nil {
		return nil, err
	}

	return metadata, nil
}

// TargetMosaicID returns the mosaic the metadata is attached to.
func (m *MosaicMetadata) TargetMosaicID() model.UnresolvedMosaicID {
	return m.targetMosaicID
}

// Type returns the TransactionType of the MosaicMetadata.
func (m *MosaicMetadata) Type() model.TransactionType {
	return model.MosaicMetadataTransactionType
}

// Size returns the amount of bytes of the marshaled MosaicMetadata.
func (m *MosaicMetadata) Size() int {
	return m.size() + model.UnresolvedMosaicIDLength
}

// Bytes returns a marshaled version of the MosaicMetadata.
func (m *MosaicMetadata) Bytes() []byte {
	marshalUtil := marshalutil.New(m.Size())
	m.writeKeys(marshalUtil)
	marshalUtil.WriteBytes(m.targetMosaicID.Bytes())
	m.writeValue(marshalUtil)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the MosaicMetadata.
func (m *MosaicMetadata) String() string {
	return stringify.Struct("MosaicMetadata",
		stringify.StructField("targetPublicKey", m.targetPublicKey),
		stringify.StructField("scopedMetadataKey", m.scopedMetadataKey),
		stringify.StructField("targetMosaicID", m.targetMosaicID),
		stringify.StructField("valueSizeDelta", strconv.Itoa(int(m.valueSizeDelta))),
		stringify.StructField("value", m.value),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &MosaicMetadata{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NamespaceMetadata ////////////////////////////////////////////////////////////////////////////////////////////

// NamespaceMetadata attaches metadata to a namespace.
type NamespaceMetadata struct {
	metadataEntry
	targetNamespaceID model.NamespaceID
}

// NewNamespaceMetadata is the constructor for NamespaceMetadata bodies.
func NewNamespaceMetadata(targetPublicKey model.PublicKey, scopedMetadataKey model.ScopedMetadataKey, targetNamespaceID model.NamespaceID, valueSizeDelta int16, value []byte) (*NamespaceMetadata, error) {
	entry, err := newMetadataEntry(targetPublicKey, scopedMetadataKey, valueSizeDelta, value)
	if err != nil {
		return nil, err
	}

	return &NamespaceMetadata{metadataEntry: entry, targetNamespaceID: targetNamespaceID}, nil
}

// NamespaceMetadataFromMarshalUtil unmarshals a NamespaceMetadata using a MarshalUtil (for easier unmarshaling).
func NamespaceMetadataFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (metadata *NamespaceMetadata, err error) {
	metadata = &NamespaceMetadata{}
	if err = metadata.keysFromMarshalUtil(marshalUtil); err != nil {
		return nil, err
	}
	if metadata.targetNamespaceID, err = model.NamespaceIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse target namespace id: %w", err)
	}
	if err = metadata.valueFromMarshalUtil(marshalUtil); err != nil {
		return nil, err
	}

	return metadata, nil
}

// TargetNamespaceID returns the namespace the metadata is attached to.
func (n *NamespaceMetadata) TargetNamespaceID() model.NamespaceID {
	return n.targetNamespaceID
}

// Type returns the TransactionType of the NamespaceMetadata.
func (n *NamespaceMetadata) Type() model.TransactionType {
	return model.NamespaceMetadataTransactionType
}

// Size returns the amount of bytes of the marshaled NamespaceMetadata.
func (n *NamespaceMetadata) Size() int {
	return n.size() + model.NamespaceIDLength
}

// Bytes returns a marshaled version of the NamespaceMetadata.
func (n *NamespaceMetadata) Bytes() []byte {
	marshalUtil := marshalutil.New(n.Size())
	n.writeKeys(marshalUtil)
	marshalUtil.WriteBytes(n.targetNamespaceID.Bytes())
	n.writeValue(marshalUtil)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the NamespaceMetadata.
func (n *NamespaceMetadata) String() string {
	return stringify.Struct("NamespaceMetadata",
		stringify.StructField("targetPublicKey", n.targetPublicKey),
		stringify.StructField("scopedMetadataKey", n.scopedMetadataKey),
		stringify.StructField("targetNamespaceID", n.targetNamespaceID),
		stringify.StructField("valueSizeDelta", strconv.Itoa(int(n.valueSizeDelta))),
		stringify.StructField("value", n.value),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &NamespaceMetadata{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
