package transaction

import (
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region MosaicDefinition /////////////////////////////////////////////////////////////////////////////////////////////

// MosaicDefinitionLength contains the amount of bytes that a marshaled version of the MosaicDefinition contains.
const MosaicDefinitionLength = model.MosaicNonceLength + model.MosaicIDLength + model.MosaicFlagsLength +
	marshalutil.Uint8Size + model.BlockDurationLength

// MosaicDefinition creates a mosaic or changes the properties of a mosaic without supply.
type MosaicDefinition struct {
	nonce        model.MosaicNonce
	mosaicID     model.MosaicID
	flags        model.MosaicFlags
	divisibility uint8
	duration     model.BlockDuration
}

// NewMosaicDefinition is the constructor for MosaicDefinition bodies.
func NewMosaicDefinition(nonce model.MosaicNonce, mosaicID model.MosaicID, flags model.MosaicFlags, divisibility uint8, duration model.BlockDuration) *MosaicDefinition {
	return &MosaicDefinition{
		nonce:        nonce,
		mosaicID:     mosaicID,
		flags:        flags,
		divisibility: divisibility,
		duration:     duration,
	}
}

// NewOwnedMosaicDefinition creates a MosaicDefinition whose MosaicID is derived from the owner and the nonce.
func NewOwnedMosaicDefinition(owner model.Address, nonce model.MosaicNonce, flags model.MosaicFlags, divisibility uint8, duration model.BlockDuration) *MosaicDefinition {
	return NewMosaicDefinition(nonce, model.GenerateMosaicID(owner, nonce), flags, divisibility, duration)
}

// MosaicDefinitionFromMarshalUtil unmarshals a MosaicDefinition using a MarshalUtil (for easier unmarshaling).
func MosaicDefinitionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (definition *MosaicDefinition, err error) {
	definition = &MosaicDefinition{}
	if definition.nonce, err = model.MosaicNonceFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse nonce: %w", err)
	}
	if definition.mosaicID, err = model.MosaicIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse mosaic id: %w", err)
	}
	if definition.flags, err = model.MosaicFlagsFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse flags: %w", err)
	}
	if definition.divisibility, err = model.ReadUint8(marshalUtil, "divisibility"); err != nil {
		return nil, err
	}
	if definition.duration, err = model.BlockDurationFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse duration: %w", err)
	}

	return definition, nil
}

// Nonce returns the nonce the MosaicID was derived with.
func (m *MosaicDefinition) Nonce() model.MosaicNonce {
	return m.nonce
}

// MosaicID returns the identifier of the defined mosaic.
func (m *MosaicDefinition) MosaicID() model.MosaicID {
	return m.mosaicID
}

// Flags returns the properties of the mosaic.
func (m *MosaicDefinition) Flags() model.MosaicFlags {
	return m.flags
}

// Divisibility returns the number of decimal places of the mosaic.
func (m *MosaicDefinition) Divisibility() uint8 {
	return m.divisibility
}

// Duration returns the number of blocks the mosaic is active for.
func (m *MosaicDefinition) Duration() model.BlockDuration {
	return m.duration
}

// Type returns the TransactionType of the MosaicDefinition.
func (m *MosaicDefinition) Type() model.TransactionType {
	return model.MosaicDefinitionTransactionType
}

// Size returns the amount of bytes of the marshaled MosaicDefinition.
func (m *MosaicDefinition) Size() int {
	return MosaicDefinitionLength
}

// Bytes returns a marshaled version of the MosaicDefinition.
func (m *MosaicDefinition) Bytes() []byte {
	return marshalutil.New(MosaicDefinitionLength).
		WriteBytes(m.nonce.Bytes()).
		WriteBytes(m.mosaicID.Bytes()).
		WriteBytes(m.flags.Bytes()).
		WriteByte(m.divisibility).
		WriteBytes(m.duration.Bytes()).
		Bytes()
}

// String returns a human-readable version of the MosaicDefinition.
func (m *MosaicDefinition) String() string {
	return stringify.Struct("MosaicDefinition",
		stringify.StructField("nonce", m.nonce),
		stringify.StructField("mosaicID", m.mosaicID),
		stringify.StructField("flags", m.flags),
		stringify.StructField("divisibility", strconv.Itoa(int(m.divisibility))),
		stringify.StructField("duration", m.duration),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &MosaicDefinition{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicSupplyChange ///////////////////////////////////////////////////////////////////////////////////////////

// MosaicSupplyChangeLength contains the amount of bytes that a marshaled version of the MosaicSupplyChange contains.
const MosaicSupplyChangeLength = model.UnresolvedMosaicIDLength + model.MosaicSupplyChangeActionLength + model.AmountLength

// MosaicSupplyChange increases or decreases the supply of a mosaic.
type MosaicSupplyChange struct {
	mosaicID model.UnresolvedMosaicID
	action   model.MosaicSupplyChangeAction
	delta    model.Amount
}

// NewMosaicSupplyChange is the constructor for MosaicSupplyChange bodies.
func NewMosaicSupplyChange(mosaicID model.UnresolvedMosaicID, action model.MosaicSupplyChangeAction, delta model.Amount) *MosaicSupplyChange {
	return &MosaicSupplyChange{
		mosaicID: mosaicID,
		action:   action,
		delta:    delta,
	}
}

// MosaicSupplyChangeFromMarshalUtil unmarshals a MosaicSupplyChange using a MarshalUtil (for easier unmarshaling).
func MosaicSupplyChangeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (supplyChange *MosaicSupplyChange, err error) {
	supplyChange = &MosaicSupplyChange{}
	if supplyChange.mosaicID, err = model.UnresolvedMosaicIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse mosaic id: %w", err)
	}
	if supplyChange.action, err = model.MosaicSupplyChangeActionFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse action: %w", err)
	}
	if supplyChange.delta, err = model.AmountFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse delta: %w", err)
	}

	return supplyChange, nil
}

// MosaicID returns the mosaic whose supply changes.
func (m *MosaicSupplyChange) MosaicID() model.UnresolvedMosaicID {
	return m.mosaicID
}

// Action returns the direction of the change.
func (m *MosaicSupplyChange) Action() model.MosaicSupplyChangeAction {
	return m.action
}

// Delta returns the amount of the change.
func (m *MosaicSupplyChange) Delta() model.Amount {
	return m.delta
}

// Type returns the TransactionType of the MosaicSupplyChange.
func (m *MosaicSupplyChange) Type() model.TransactionType {
	return model.MosaicSupplyChangeTransactionType
}

// Size returns the amount of bytes of the marshaled MosaicSupplyChange.
func (m *MosaicSupplyChange) Size() int {
	return MosaicSupplyChangeLength
}

// Bytes returns a marshaled version of the MosaicSupplyChange.
func (m *MosaicSupplyChange) Bytes() []byte {
	return marshalutil.New(MosaicSupplyChangeLength).
		WriteBytes(m.mosaicID.Bytes()).
		WriteBytes(m.action.Bytes()).
		WriteBytes(m.delta.Bytes()).
		Bytes()
}

// String returns a human-readable version of the MosaicSupplyChange.
func (m *MosaicSupplyChange) String() string {
	return stringify.Struct("MosaicSupplyChange",
		stringify.StructField("mosaicID", m.mosaicID),
		stringify.StructField("action", m.action),
		stringify.StructField("delta", m.delta),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &MosaicSupplyChange{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicGlobalRestriction //////////////////////////////////////////////////////////////////////////////////////

// MosaicGlobalRestrictionLength contains the amount of bytes that a marshaled version of the MosaicGlobalRestriction
// contains.
const MosaicGlobalRestrictionLength = 2*model.UnresolvedMosaicIDLength + model.RestrictionKeyLength +
	2*model.RestrictionValueLength + 2*model.MosaicRestrictionTypeLength

// MosaicGlobalRestriction sets the network wide restriction rule of a mosaic for a key.
type MosaicGlobalRestriction struct {
	mosaicID          model.UnresolvedMosaicID
	referenceMosaicID model.UnresolvedMosaicID
	restrictionKey    model.RestrictionKey
	previousValue     model.RestrictionValue
	newValue          model.RestrictionValue
	previousType      model.MosaicRestrictionType
	newType           model.MosaicRestrictionType
}

// MosaicGlobalRestrictionRule is the value and comparison of a global restriction.
type MosaicGlobalRestrictionRule struct {
	Value model.RestrictionValue
	Type  model.MosaicRestrictionType
}

// NewMosaicGlobalRestriction is the constructor for MosaicGlobalRestriction bodies. A referenceMosaicID of 0 refers
// to the restricted mosaic itself.
func NewMosaicGlobalRestriction(mosaicID, referenceMosaicID model.UnresolvedMosaicID, restrictionKey model.RestrictionKey, previous, next MosaicGlobalRestrictionRule) *MosaicGlobalRestriction {
	return &MosaicGlobalRestriction{
		mosaicID:          mosaicID,
		referenceMosaicID: referenceMosaicID,
		restrictionKey:    restrictionKey,
		previousValue:     previous.Value,
		newValue:          next.Value,
		previousType:      previous.Type,
		newType:           next.Type,
	}
}

// MosaicGlobalRestrictionFromMarshalUtil unmarshals a MosaicGlobalRestriction using a MarshalUtil (for easier
// unmarshaling).
func MosaicGlobalRestrictionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (restriction *MosaicGlobalRestriction, err error) {
	restriction = &MosaicGlobalRestriction{}
	if restriction.mosaicID, err = model.UnresolvedMosaicIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse mosaic id: %w", err)
	}
	if restriction.referenceMosaicID, err = model.UnresolvedMosaicIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse reference mosaic id: %w", err)
	}
	if restriction.restrictionKey, err = model.RestrictionKeyFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse restriction key: %w", err)
	}
	if restriction.previousValue, err = model.RestrictionValueFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse previous restriction value: %w", err)
	}
	if restriction.newValue, err = model.RestrictionValueFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse new restriction value: %w", err)
	}
	if restriction.previousType, err = model.MosaicRestrictionTypeFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse previous restriction type: %w", err)
	}
	if restriction.newType, err = model.MosaicRestrictionTypeFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse new restriction type: %w", err)
	}

	return restriction, nil
}

// MosaicID returns the restricted mosaic.
func (m *MosaicGlobalRestriction) MosaicID() model.UnresolvedMosaicID {
	return m.mosaicID
}

// ReferenceMosaicID returns the mosaic whose address restrictions are evaluated.
func (m *MosaicGlobalRestriction) ReferenceMosaicID() model.UnresolvedMosaicID {
	return m.referenceMosaicID
}

// RestrictionKey returns the key of the rule.
func (m *MosaicGlobalRestriction) RestrictionKey() model.RestrictionKey {
	return m.restrictionKey
}

// Previous returns the rule that is replaced.
func (m *MosaicGlobalRestriction) Previous() MosaicGlobalRestrictionRule {
	return MosaicGlobalRestrictionRule{Value: m.previousValue, Type: m.previousType}
}

// New returns the rule that is set.
func (m *MosaicGlobalRestriction) New() MosaicGlobalRestrictionRule {
	return MosaicGlobalRestrictionRule{Value: m.newValue, Type: m.newType}
}

// Type returns the TransactionType of the MosaicGlobalRestriction.
func (m *MosaicGlobalRestriction) Type() model.TransactionType {
	return model.MosaicGlobalRestrictionTransactionType
}

// Size returns the amount of bytes of the marshaled MosaicGlobalRestriction.
func (m *MosaicGlobalRestriction) Size() int {
	return MosaicGlobalRestrictionLength
}

// Bytes returns a marshaled version of the MosaicGlobalRestriction.
func (m *MosaicGlobalRestriction) Bytes() []byte {
	return marshalutil.New(MosaicGlobalRestrictionLength).
		WriteBytes(m.mosaicID.Bytes()).
		WriteBytes(m.referenceMosaicID.Bytes()).
		WriteBytes(m.restrictionKey.Bytes()).
		WriteBytes(m.previousValue.Bytes()).
		WriteBytes(m.newValue.Bytes()).
		WriteBytes(m.previousType.Bytes()).
		WriteBytes(m.newType.Bytes()).
		Bytes()
}

// String returns a human-readable version of the MosaicGlobalRestriction.
func (m *MosaicGlobalRestriction) String() string {
	return stringify.Struct("MosaicGlobalRestriction",
		stringify.StructField("mosaicID", m.mosaicID),
		stringify.StructField("referenceMosaicID", m.referenceMosaicID),
		stringify.StructField("restrictionKey", m.restrictionKey),
		stringify.StructField("previousValue", m.previousValue),
		stringify.StructField("newValue", m.newValue),
		stringify.StructField("previousType", m.previousType),
		stringify.StructField("newType", m.newType),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &MosaicGlobalRestriction{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicAddressRestriction /////////////////////////////////////////////////////////////////////////////////////

// MosaicAddressRestrictionLength contains the amount of bytes that a marshaled version of the
// MosaicAddressRestriction contains.
const MosaicAddressRestrictionLength = model.UnresolvedMosaicIDLength + model.RestrictionKeyLength +
	model.UnresolvedAddressLength + 2*model.RestrictionValueLength

// MosaicAddressRestriction sets the restriction value of an address for a mosaic and key.
type MosaicAddressRestriction struct {
	mosaicID       model.UnresolvedMosaicID
	restrictionKey model.RestrictionKey
	targetAddress  model.UnresolvedAddress
	previousValue  model.RestrictionValue
	newValue       model.RestrictionValue
}

// NewMosaicAddressRestriction is the constructor for MosaicAddressRestriction bodies.
func NewMosaicAddressRestriction(mosaicID model.UnresolvedMosaicID, restrictionKey model.RestrictionKey, targetAddress model.UnresolvedAddress, previousValue, newValue model.RestrictionValue) *MosaicAddressRestriction {
	return &MosaicAddressRestriction{
		mosaicID:       mosaicID,
		restrictionKey: restrictionKey,
		targetAddress:  targetAddress,
		previousValue:  previousValue,
		newValue:       newValue,
	}
}

// MosaicAddressRestrictionFromMarshalUtil unmarshals a MosaicAddressRestriction using a MarshalUtil (for easier
// unmarshaling).
func MosaicAddressRestrictionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (restriction *MosaicAddressRestriction, err error) {
	restriction = &MosaicAddressRestriction{}
	if restriction.mosaicID, err = model.UnresolvedMosaicIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse mosaic id: %w", err)
	}
	if restriction.restrictionKey, err = model.RestrictionKeyFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse restriction key: %w", err)
	}
	if restriction.targetAddress, err = model.UnresolvedAddressFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse target address: %w", err)
	}
	if restriction.previousValue, err = model.RestrictionValueFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse previous restriction value: %w", err)
	}
	if restriction.newValue, err = model.RestrictionValueFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse new restriction value: %w", err)
	}

	return restriction, nil
}

// MosaicID returns the restricted mosaic.
func (m *MosaicAddressRestriction) MosaicID() model.UnresolvedMosaicID {
	return m.mosaicID
}

// RestrictionKey returns the key of the restriction.
func (m *MosaicAddressRestriction) RestrictionKey() model.RestrictionKey {
	return m.restrictionKey
}

// TargetAddress returns the address whose value is set.
func (m *MosaicAddressRestriction) TargetAddress() model.UnresolvedAddress {
	return m.targetAddress
}

// PreviousValue returns the value that is replaced.
func (m *MosaicAddressRestriction) PreviousValue() model.RestrictionValue {
	return m.previousValue
}

// NewValue returns the value that is set.
func (m *MosaicAddressRestriction) NewValue() model.RestrictionValue {
	return m.newValue
}

// Type returns the TransactionType of the MosaicAddressRestriction.
func (m *MosaicAddressRestriction) Type() model.TransactionType {
	return model.MosaicAddressRestrictionTransactionType
}

// Size returns the amount of bytes of the marshaled MosaicAddressRestriction.
func (m *MosaicAddressRestriction) Size() int {
	return MosaicAddressRestrictionLength
}

// Bytes returns a marshaled version of the MosaicAddressRestriction.
func (m *MosaicAddressRestriction) Bytes() []byte {
	return marshalutil.New(MosaicAddressRestrictionLength).
		WriteBytes(m.mosaicID.Bytes()).
		WriteBytes(m.restrictionKey.Bytes()).
		WriteBytes(m.targetAddress.Bytes()).
		WriteBytes(m.previousValue.Bytes()).
		WriteBytes(m.newValue.Bytes()).
		Bytes()
}

// String returns a human-readable version of the MosaicAddressRestriction.
func (m *MosaicAddressRestriction) String() string {
	return stringify.Struct("MosaicAddressRestriction",
		stringify.StructField("mosaicID", m.mosaicID),
		stringify.StructField("restrictionKey", m.restrictionKey),
		stringify.StructField("targetAddress", m.targetAddress),
		stringify.StructField("previousValue", m.previousValue),
		stringify.StructField("newValue", m.newValue),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &MosaicAddressRestriction{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
