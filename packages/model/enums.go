package model

import (
	"github.com/iotaledger/hive.go/marshalutil"
)

// region TransactionType //////////////////////////////////////////////////////////////////////////////////////////////

const (
	// AccountMetadataTransactionType attaches metadata to an account.
	AccountMetadataTransactionType TransactionType = 0x4144
	// MosaicMetadataTransactionType attaches metadata to a mosaic.
	MosaicMetadataTransactionType TransactionType = 0x4244
	// NamespaceMetadataTransactionType attaches metadata to a namespace.
	NamespaceMetadataTransactionType TransactionType = 0x4344

	// AggregateCompleteTransactionType bundles embedded transactions whose cosignatures are all attached.
	AggregateCompleteTransactionType TransactionType = 0x4141
	// AggregateBondedTransactionType bundles embedded transactions that collect cosignatures on the network.
	AggregateBondedTransactionType TransactionType = 0x4241

	// AccountLinkTransactionType delegates the harvesting of an account to a remote key.
	AccountLinkTransactionType TransactionType = 0x414C

	// HashLockTransactionType locks funds until an aggregate bonded transaction is completed.
	HashLockTransactionType TransactionType = 0x4148
	// SecretLockTransactionType locks funds until the proof of a secret is revealed.
	SecretLockTransactionType TransactionType = 0x4152
	// SecretProofTransactionType reveals the proof of a secret.
	SecretProofTransactionType TransactionType = 0x4252

	// MosaicDefinitionTransactionType creates a mosaic.
	MosaicDefinitionTransactionType TransactionType = 0x414D
	// MosaicSupplyChangeTransactionType changes the supply of a mosaic.
	MosaicSupplyChangeTransactionType TransactionType = 0x424D

	// NamespaceRegistrationTransactionType registers a root or child namespace.
	NamespaceRegistrationTransactionType TransactionType = 0x414E
	// AddressAliasTransactionType links a namespace to an address.
	AddressAliasTransactionType TransactionType = 0x424E
	// MosaicAliasTransactionType links a namespace to a mosaic.
	MosaicAliasTransactionType TransactionType = 0x434E

	// AccountAddressRestrictionTransactionType restricts the addresses an account interacts with.
	AccountAddressRestrictionTransactionType TransactionType = 0x4150
	// AccountMosaicRestrictionTransactionType restricts the mosaics an account receives.
	AccountMosaicRestrictionTransactionType TransactionType = 0x4250
	// AccountOperationRestrictionTransactionType restricts the transaction types an account sends.
	AccountOperationRestrictionTransactionType TransactionType = 0x4350

	// MosaicGlobalRestrictionTransactionType sets a network wide restriction rule on a mosaic.
	MosaicGlobalRestrictionTransactionType TransactionType = 0x4151
	// MosaicAddressRestrictionTransactionType sets the restriction value of an address for a mosaic.
	MosaicAddressRestrictionTransactionType TransactionType = 0x4251

	// MultisigAccountModificationTransactionType changes the cosignatories and thresholds of a multisig account.
	MultisigAccountModificationTransactionType TransactionType = 0x4155

	// TransferTransactionType sends mosaics and a message to a recipient.
	TransferTransactionType TransactionType = 0x4154
)

// TransactionTypeLength contains the amount of bytes that a marshaled version of the TransactionType contains.
const TransactionTypeLength = marshalutil.Uint16Size

// TransactionType is the 2 byte kind code of a transaction.
type TransactionType uint16

var transactionTypeNames = symbolTable[TransactionType]{
	AccountMetadataTransactionType:             "AccountMetadata",
	MosaicMetadataTransactionType:              "MosaicMetadata",
	NamespaceMetadataTransactionType:           "NamespaceMetadata",
	AggregateCompleteTransactionType:           "AggregateComplete",
	AggregateBondedTransactionType:             "AggregateBonded",
	AccountLinkTransactionType:                 "AccountLink",
	HashLockTransactionType:                    "HashLock",
	SecretLockTransactionType:                  "SecretLock",
	SecretProofTransactionType:                 "SecretProof",
	MosaicDefinitionTransactionType:            "MosaicDefinition",
	MosaicSupplyChangeTransactionType:          "MosaicSupplyChange",
	NamespaceRegistrationTransactionType:       "NamespaceRegistration",
	AddressAliasTransactionType:                "AddressAlias",
	MosaicAliasTransactionType:                 "MosaicAlias",
	AccountAddressRestrictionTransactionType:   "AccountAddressRestriction",
	AccountMosaicRestrictionTransactionType:    "AccountMosaicRestriction",
	AccountOperationRestrictionTransactionType: "AccountOperationRestriction",
	MosaicGlobalRestrictionTransactionType:     "MosaicGlobalRestriction",
	MosaicAddressRestrictionTransactionType:    "MosaicAddressRestriction",
	MultisigAccountModificationTransactionType: "MultisigAccountModification",
	TransferTransactionType:                    "Transfer",
}

// TransactionTypes returns every TransactionType known to this build.
func TransactionTypes() []TransactionType {
	types := make([]TransactionType, 0, len(transactionTypeNames))
	for transactionType := range transactionTypeNames {
		types = append(types, transactionType)
	}

	return types
}

// TransactionTypeFromMarshalUtil unmarshals a TransactionType using a MarshalUtil (for easier unmarshaling).
func TransactionTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (TransactionType, error) {
	return enum16FromMarshalUtil(marshalUtil, transactionTypeNames, "TransactionType")
}

// IsAggregate returns true for the aggregate kinds, which can not be embedded.
func (t TransactionType) IsAggregate() bool {
	return t == AggregateCompleteTransactionType || t == AggregateBondedTransactionType
}

// Bytes returns a marshaled version of the TransactionType.
func (t TransactionType) Bytes() []byte {
	return marshalutil.New(TransactionTypeLength).WriteUint16(uint16(t)).Bytes()
}

// String returns a human-readable version of the TransactionType.
func (t TransactionType) String() string {
	return transactionTypeNames.name(t)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region LinkAction ///////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// Unlink removes a link.
	Unlink LinkAction = iota

	// Link creates a link.
	Link
)

// LinkActionLength contains the amount of bytes that a marshaled version of the LinkAction contains.
const LinkActionLength = marshalutil.Uint8Size

// LinkAction tells if a key link is created or removed.
type LinkAction uint8

var linkActionNames = symbolTable[LinkAction]{
	Unlink: "Unlink",
	Link:   "Link",
}

// LinkActionFromMarshalUtil unmarshals a LinkAction using a MarshalUtil (for easier unmarshaling).
func LinkActionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (LinkAction, error) {
	return enum8FromMarshalUtil(marshalUtil, linkActionNames, "LinkAction")
}

// Bytes returns a marshaled version of the LinkAction.
func (l LinkAction) Bytes() []byte {
	return []byte{byte(l)}
}

// String returns a human-readable version of the LinkAction.
func (l LinkAction) String() string {
	return linkActionNames.name(l)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region LockHashAlgorithm ////////////////////////////////////////////////////////////////////////////////////////////

const (
	// Sha3_256 is SHA3-256.
	Sha3_256 LockHashAlgorithm = iota

	// Keccak_256 is Keccak-256 (the pre-standard SHA3 padding).
	Keccak_256

	// Hash_160 is RIPEMD-160 of SHA-256.
	Hash_160

	// Hash_256 is SHA-256 applied twice.
	Hash_256
)

// LockHashAlgorithmLength contains the amount of bytes that a marshaled version of the LockHashAlgorithm contains.
const LockHashAlgorithmLength = marshalutil.Uint8Size

// LockHashAlgorithm is the hash function that turns the proof of a secret lock into its secret.
type LockHashAlgorithm uint8

var lockHashAlgorithmNames = symbolTable[LockHashAlgorithm]{
	Sha3_256:   "Sha3_256",
	Keccak_256: "Keccak_256",
	Hash_160:   "Hash_160",
	Hash_256:   "Hash_256",
}

// LockHashAlgorithmFromMarshalUtil unmarshals a LockHashAlgorithm using a MarshalUtil (for easier unmarshaling).
func LockHashAlgorithmFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (LockHashAlgorithm, error) {
	return enum8FromMarshalUtil(marshalUtil, lockHashAlgorithmNames, "LockHashAlgorithm")
}

// Bytes returns a marshaled version of the LockHashAlgorithm.
func (l LockHashAlgorithm) Bytes() []byte {
	return []byte{byte(l)}
}

// String returns a human-readable version of the LockHashAlgorithm.
func (l LockHashAlgorithm) String() string {
	return lockHashAlgorithmNames.name(l)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ModificationAction ///////////////////////////////////////////////////////////////////////////////////////////

const (
	// RemoveModification removes the value from the set.
	RemoveModification ModificationAction = iota

	// AddModification adds the value to the set.
	AddModification
)

// ModificationActionLength contains the amount of bytes that a marshaled version of the ModificationAction contains.
const ModificationActionLength = marshalutil.Uint8Size

// ModificationAction tells if a restriction value or a cosignatory is added or removed.
type ModificationAction uint8

var modificationActionNames = symbolTable[ModificationAction]{
	RemoveModification: "Remove",
	AddModification:    "Add",
}

// ModificationActionFromMarshalUtil unmarshals a ModificationAction using a MarshalUtil (for easier unmarshaling).
func ModificationActionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (ModificationAction, error) {
	return enum8FromMarshalUtil(marshalUtil, modificationActionNames, "ModificationAction")
}

// Bytes returns a marshaled version of the ModificationAction.
func (m ModificationAction) Bytes() []byte {
	return []byte{byte(m)}
}

// String returns a human-readable version of the ModificationAction.
func (m ModificationAction) String() string {
	return modificationActionNames.name(m)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AccountRestrictionType ///////////////////////////////////////////////////////////////////////////////////////

// base variants
const (
	// AccountRestrictionAddress restricts by address.
	AccountRestrictionAddress AccountRestrictionType = 0x01

	// AccountRestrictionMosaic restricts by mosaic.
	AccountRestrictionMosaic AccountRestrictionType = 0x02

	// AccountRestrictionTransactionType restricts by transaction type.
	AccountRestrictionTransactionType AccountRestrictionType = 0x04

	// AccountRestrictionOutgoing applies the restriction to outgoing instead of incoming transactions.
	AccountRestrictionOutgoing AccountRestrictionType = 0x40

	// AccountRestrictionBlock turns the allow list into a block list.
	AccountRestrictionBlock AccountRestrictionType = 0x80
)

// derived aliases, each one the OR of base variants
const (
	// AllowIncomingAddress only accepts incoming transactions from the listed addresses.
	AllowIncomingAddress = AccountRestrictionAddress

	// AllowOutgoingAddress only allows outgoing transactions to the listed addresses.
	AllowOutgoingAddress = AccountRestrictionAddress | AccountRestrictionOutgoing

	// BlockIncomingAddress rejects incoming transactions from the listed addresses.
	BlockIncomingAddress = AccountRestrictionAddress | AccountRestrictionBlock

	// BlockOutgoingAddress rejects outgoing transactions to the listed addresses.
	BlockOutgoingAddress = AccountRestrictionAddress | AccountRestrictionBlock | AccountRestrictionOutgoing

	// AllowMosaic only accepts the listed mosaics.
	AllowMosaic = AccountRestrictionMosaic

	// BlockMosaic rejects the listed mosaics.
	BlockMosaic = AccountRestrictionMosaic | AccountRestrictionBlock

	// AllowIncomingTransactionType only accepts incoming transactions of the listed types.
	AllowIncomingTransactionType = AccountRestrictionTransactionType

	// AllowOutgoingTransactionType only allows outgoing transactions of the listed types.
	AllowOutgoingTransactionType = AccountRestrictionTransactionType | AccountRestrictionOutgoing

	// BlockIncomingTransactionType rejects incoming transactions of the listed types.
	BlockIncomingTransactionType = AccountRestrictionTransactionType | AccountRestrictionBlock

	// BlockOutgoingTransactionType rejects outgoing transactions of the listed types.
	BlockOutgoingTransactionType = AccountRestrictionTransactionType | AccountRestrictionBlock | AccountRestrictionOutgoing
)

// AccountRestrictionTypeLength contains the amount of bytes that a marshaled version of the AccountRestrictionType
// contains.
const AccountRestrictionTypeLength = marshalutil.Uint8Size

// AccountRestrictionType is the symbolic restriction code of an account restriction transaction. The aliases share the
// raw byte of the base combination they stand for.
type AccountRestrictionType uint8

var accountRestrictionTypeNames = symbolTable[AccountRestrictionType]{
	AccountRestrictionOutgoing:   "Outgoing",
	AccountRestrictionBlock:      "Block",
	AllowIncomingAddress:         "AllowIncomingAddress",
	AllowOutgoingAddress:         "AllowOutgoingAddress",
	BlockIncomingAddress:         "BlockIncomingAddress",
	BlockOutgoingAddress:         "BlockOutgoingAddress",
	AllowMosaic:                  "AllowMosaic",
	BlockMosaic:                  "BlockMosaic",
	AllowIncomingTransactionType: "AllowIncomingTransactionType",
	AllowOutgoingTransactionType: "AllowOutgoingTransactionType",
	BlockIncomingTransactionType: "BlockIncomingTransactionType",
	BlockOutgoingTransactionType: "BlockOutgoingTransactionType",
}

// AccountRestrictionTypeFromMarshalUtil unmarshals an AccountRestrictionType using a MarshalUtil.
func AccountRestrictionTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (AccountRestrictionType, error) {
	return enum8FromMarshalUtil(marshalUtil, accountRestrictionTypeNames, "AccountRestrictionType")
}

// Target returns the restricted value kind without the direction and block bits.
func (a AccountRestrictionType) Target() AccountRestrictionType {
	return a &^ (AccountRestrictionOutgoing | AccountRestrictionBlock)
}

// IsOutgoing returns true if the restriction applies to outgoing transactions.
func (a AccountRestrictionType) IsOutgoing() bool {
	return a&AccountRestrictionOutgoing != 0
}

// IsBlock returns true if the restriction is a block list.
func (a AccountRestrictionType) IsBlock() bool {
	return a&AccountRestrictionBlock != 0
}

// Bytes returns a marshaled version of the AccountRestrictionType.
func (a AccountRestrictionType) Bytes() []byte {
	return []byte{byte(a)}
}

// String returns a human-readable version of the AccountRestrictionType.
func (a AccountRestrictionType) String() string {
	return accountRestrictionTypeNames.name(a)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
