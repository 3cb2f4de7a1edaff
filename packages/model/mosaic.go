package model

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/crypto/sha3"
	"golang.org/x/xerrors"
)

// region MosaicID /////////////////////////////////////////////////////////////////////////////////////////////////////

// MosaicIDLength contains the amount of bytes that a marshaled version of the MosaicID contains.
const MosaicIDLength = marshalutil.Uint64Size

// namespaceFlag is set on every NamespaceID and never on a MosaicID, which is what lets an UnresolvedMosaicID carry
// either of them.
const namespaceFlag = uint64(1) << 63

// MosaicID is the resolved identifier of a mosaic.
type MosaicID uint64

// GenerateMosaicID derives the MosaicID that the owner creates with the given nonce.
func GenerateMosaicID(owner Address, nonce MosaicNonce) MosaicID {
	hash := sha3.Sum256(append(nonce.Bytes(), owner[:]...))

	return MosaicID(binary.LittleEndian.Uint64(hash[:MosaicIDLength]) &^ namespaceFlag)
}

// MosaicIDFromMarshalUtil unmarshals a MosaicID using a MarshalUtil (for easier unmarshaling).
func MosaicIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (MosaicID, error) {
	value, err := ReadUint64(marshalUtil, "MosaicID")
	return MosaicID(value), err
}

// MosaicIDFromString parses the 16 character hex representation of a MosaicID.
func MosaicIDFromString(hexString string) (MosaicID, error) {
	value, err := parseHexID(hexString, "MosaicID")
	return MosaicID(value), err
}

// Bytes returns a marshaled version of the MosaicID.
func (m MosaicID) Bytes() []byte {
	return uint64Bytes(uint64(m))
}

// String returns the upper case hex representation of the MosaicID.
func (m MosaicID) String() string {
	return hexID(uint64(m))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedMosaicID ///////////////////////////////////////////////////////////////////////////////////////////

// UnresolvedMosaicIDLength contains the amount of bytes that a marshaled version of the UnresolvedMosaicID contains.
const UnresolvedMosaicIDLength = marshalutil.Uint64Size

// UnresolvedMosaicID is either a MosaicID or a NamespaceID that the ledger resolves to the linked MosaicID.
type UnresolvedMosaicID uint64

// NewUnresolvedMosaicID wraps a MosaicID.
func NewUnresolvedMosaicID(mosaicID MosaicID) UnresolvedMosaicID {
	return UnresolvedMosaicID(mosaicID)
}

// NewAliasUnresolvedMosaicID creates an UnresolvedMosaicID that points to the mosaic linked to the given namespace.
func NewAliasUnresolvedMosaicID(namespaceID NamespaceID) UnresolvedMosaicID {
	return UnresolvedMosaicID(namespaceID)
}

// UnresolvedMosaicIDFromMarshalUtil unmarshals an UnresolvedMosaicID using a MarshalUtil (for easier unmarshaling).
func UnresolvedMosaicIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (UnresolvedMosaicID, error) {
	value, err := ReadUint64(marshalUtil, "UnresolvedMosaicID")
	return UnresolvedMosaicID(value), err
}

// IsAlias returns true if the UnresolvedMosaicID references a namespace.
func (u UnresolvedMosaicID) IsAlias() bool {
	return uint64(u)&namespaceFlag != 0
}

// Bytes returns a marshaled version of the UnresolvedMosaicID.
func (u UnresolvedMosaicID) Bytes() []byte {
	return uint64Bytes(uint64(u))
}

// String returns the upper case hex representation of the UnresolvedMosaicID.
func (u UnresolvedMosaicID) String() string {
	return hexID(uint64(u))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Mosaic ///////////////////////////////////////////////////////////////////////////////////////////////////////

// MosaicLength contains the amount of bytes that a marshaled version of the Mosaic contains.
const MosaicLength = UnresolvedMosaicIDLength + AmountLength

// Mosaic is an amount of a (possibly aliased) mosaic attached to a transaction.
type Mosaic struct {
	ID     UnresolvedMosaicID
	Amount Amount
}

// NewMosaic is the constructor of the Mosaic.
func NewMosaic(id UnresolvedMosaicID, amount Amount) Mosaic {
	return Mosaic{ID: id, Amount: amount}
}

// MosaicFromMarshalUtil unmarshals a Mosaic using a MarshalUtil (for easier unmarshaling).
func MosaicFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (mosaic Mosaic, err error) {
	if mosaic.ID, err = UnresolvedMosaicIDFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Mosaic id: %w", err)
		return
	}
	if mosaic.Amount, err = AmountFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Mosaic amount: %w", err)
		return
	}

	return
}

// Size returns the amount of bytes of the marshaled Mosaic.
func (m Mosaic) Size() int {
	return MosaicLength
}

// Bytes returns a marshaled version of the Mosaic.
func (m Mosaic) Bytes() []byte {
	return marshalutil.New(MosaicLength).
		WriteUint64(uint64(m.ID)).
		WriteUint64(uint64(m.Amount)).
		Bytes()
}

// String returns a human-readable version of the Mosaic.
func (m Mosaic) String() string {
	return stringify.Struct("Mosaic",
		stringify.StructField("id", m.ID.String()),
		stringify.StructField("amount", m.Amount.String()),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicFlags //////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// MosaicFlagSupplyMutable allows the creator to change the supply.
	MosaicFlagSupplyMutable MosaicFlags = 1 << iota

	// MosaicFlagTransferable allows holders other than the creator to transfer the mosaic.
	MosaicFlagTransferable

	// MosaicFlagRestrictable allows mosaic restrictions to be applied.
	MosaicFlagRestrictable

	// MosaicFlagsNone has no flag set.
	MosaicFlagsNone MosaicFlags = 0
)

// MosaicFlagsLength contains the amount of bytes that a marshaled version of the MosaicFlags contains.
const MosaicFlagsLength = marshalutil.Uint8Size

var knownMosaicFlags = []struct {
	flag MosaicFlags
	name string
}{
	{MosaicFlagSupplyMutable, "SupplyMutable"},
	{MosaicFlagTransferable, "Transferable"},
	{MosaicFlagRestrictable, "Restrictable"},
}

// MosaicFlags is the bit-flag set of a mosaic definition. Bits that this build does not know are kept as they are.
type MosaicFlags uint8

// NewMosaicFlags combines the given flags.
func NewMosaicFlags(flags ...MosaicFlags) (combined MosaicFlags) {
	for _, flag := range flags {
		combined |= flag
	}

	return
}

// MosaicFlagsFromMarshalUtil unmarshals MosaicFlags using a MarshalUtil (for easier unmarshaling).
func MosaicFlagsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (MosaicFlags, error) {
	value, err := ReadUint8(marshalUtil, "MosaicFlags")
	return MosaicFlags(value), err
}

// Has returns true if every bit of flag is set.
func (m MosaicFlags) Has(flag MosaicFlags) bool {
	return m&flag == flag
}

// SupplyMutable returns true if the MosaicFlagSupplyMutable bit is set.
func (m MosaicFlags) SupplyMutable() bool {
	return m.Has(MosaicFlagSupplyMutable)
}

// Transferable returns true if the MosaicFlagTransferable bit is set.
func (m MosaicFlags) Transferable() bool {
	return m.Has(MosaicFlagTransferable)
}

// Restrictable returns true if the MosaicFlagRestrictable bit is set.
func (m MosaicFlags) Restrictable() bool {
	return m.Has(MosaicFlagRestrictable)
}

// Flags returns the known flags that are set, in ascending bit order.
func (m MosaicFlags) Flags() (flags []MosaicFlags) {
	for _, known := range knownMosaicFlags {
		if m.Has(known.flag) {
			flags = append(flags, known.flag)
		}
	}

	return
}

// Unknown returns the set bits that this build has no name for.
func (m MosaicFlags) Unknown() MosaicFlags {
	return m &^ (MosaicFlagSupplyMutable | MosaicFlagTransferable | MosaicFlagRestrictable)
}

// Bytes returns a marshaled version of the MosaicFlags.
func (m MosaicFlags) Bytes() []byte {
	return []byte{byte(m)}
}

// String returns a human-readable version of the MosaicFlags.
func (m MosaicFlags) String() string {
	names := make([]string, 0, len(knownMosaicFlags)+1)
	for _, known := range knownMosaicFlags {
		if m.Has(known.flag) {
			names = append(names, known.name)
		}
	}
	if unknown := m.Unknown(); unknown != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(unknown), 16))
	}
	if len(names) == 0 {
		return "None"
	}

	return strings.Join(names, "|")
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicSupplyChangeAction /////////////////////////////////////////////////////////////////////////////////////

const (
	// MosaicSupplyDecrease removes units from the supply.
	MosaicSupplyDecrease MosaicSupplyChangeAction = iota

	// MosaicSupplyIncrease adds units to the supply.
	MosaicSupplyIncrease
)

// MosaicSupplyChangeActionLength contains the amount of bytes that a marshaled version of the
// MosaicSupplyChangeAction contains.
const MosaicSupplyChangeActionLength = marshalutil.Uint8Size

// MosaicSupplyChangeAction is the direction of a supply change.
type MosaicSupplyChangeAction uint8

var mosaicSupplyChangeActionNames = symbolTable[MosaicSupplyChangeAction]{
	MosaicSupplyDecrease: "Decrease",
	MosaicSupplyIncrease: "Increase",
}

// MosaicSupplyChangeActionFromMarshalUtil unmarshals a MosaicSupplyChangeAction using a MarshalUtil.
func MosaicSupplyChangeActionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (MosaicSupplyChangeAction, error) {
	return enum8FromMarshalUtil(marshalUtil, mosaicSupplyChangeActionNames, "MosaicSupplyChangeAction")
}

// Bytes returns a marshaled version of the MosaicSupplyChangeAction.
func (m MosaicSupplyChangeAction) Bytes() []byte {
	return []byte{byte(m)}
}

// String returns a human-readable version of the MosaicSupplyChangeAction.
func (m MosaicSupplyChangeAction) String() string {
	return mosaicSupplyChangeActionNames.name(m)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicRestrictionType ////////////////////////////////////////////////////////////////////////////////////////

const (
	// MosaicRestrictionNone means the rule is not set.
	MosaicRestrictionNone MosaicRestrictionType = iota

	// MosaicRestrictionEqual allows only if the value is equal.
	MosaicRestrictionEqual

	// MosaicRestrictionNotEqual allows only if the value is not equal.
	MosaicRestrictionNotEqual

	// MosaicRestrictionLessThan allows only if the value is less than.
	MosaicRestrictionLessThan

	// MosaicRestrictionLessOrEqual allows only if the value is less than or equal.
	MosaicRestrictionLessOrEqual

	// MosaicRestrictionGreaterThan allows only if the value is greater than.
	MosaicRestrictionGreaterThan

	// MosaicRestrictionGreaterOrEqual allows only if the value is greater than or equal.
	MosaicRestrictionGreaterOrEqual
)

// MosaicRestrictionTypeLength contains the amount of bytes that a marshaled version of the MosaicRestrictionType
// contains.
const MosaicRestrictionTypeLength = marshalutil.Uint8Size

// MosaicRestrictionType is the comparison a global mosaic restriction applies.
type MosaicRestrictionType uint8

var mosaicRestrictionTypeNames = symbolTable[MosaicRestrictionType]{
	MosaicRestrictionNone:           "NONE",
	MosaicRestrictionEqual:          "EQ",
	MosaicRestrictionNotEqual:       "NE",
	MosaicRestrictionLessThan:       "LT",
	MosaicRestrictionLessOrEqual:    "LE",
	MosaicRestrictionGreaterThan:    "GT",
	MosaicRestrictionGreaterOrEqual: "GE",
}

// MosaicRestrictionTypeFromMarshalUtil unmarshals a MosaicRestrictionType using a MarshalUtil.
func MosaicRestrictionTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (MosaicRestrictionType, error) {
	return enum8FromMarshalUtil(marshalUtil, mosaicRestrictionTypeNames, "MosaicRestrictionType")
}

// Bytes returns a marshaled version of the MosaicRestrictionType.
func (m MosaicRestrictionType) Bytes() []byte {
	return []byte{byte(m)}
}

// String returns a human-readable version of the MosaicRestrictionType.
func (m MosaicRestrictionType) String() string {
	return mosaicRestrictionTypeNames.name(m)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

func parseHexID(hexString string, name string) (uint64, error) {
	value, err := strconv.ParseUint(strings.TrimPrefix(hexString, "0x"), 16, 64)
	if err != nil {
		return 0, xerrors.Errorf("failed to parse %s from %q (%v): %w", name, hexString, err, cerrors.ErrParseBytesFailed)
	}

	return value, nil
}
