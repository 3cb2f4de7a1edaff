package transaction

import (
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// Body is the kind specific part of a transaction.
type Body interface {
	// Type returns the kind code of the Body.
	Type() model.TransactionType

	// Size returns the amount of bytes of the marshaled Body.
	Size() int

	// Bytes returns a marshaled version of the Body.
	Bytes() []byte

	// String returns a human-readable version of the Body.
	String() string
}

// BodyParser unmarshals the Body of a single transaction kind.
type BodyParser func(marshalUtil *marshalutil.MarshalUtil) (Body, error)

var bodyParsers = make(map[model.TransactionType]BodyParser)

func init() {
	RegisterBodyParser(model.TransferTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return TransferFromMarshalUtil(m) })
	RegisterBodyParser(model.NamespaceRegistrationTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return NamespaceRegistrationFromMarshalUtil(m)
	})
	RegisterBodyParser(model.AddressAliasTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return AddressAliasFromMarshalUtil(m) })
	RegisterBodyParser(model.MosaicAliasTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return MosaicAliasFromMarshalUtil(m) })
	RegisterBodyParser(model.MosaicDefinitionTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return MosaicDefinitionFromMarshalUtil(m)
	})
	RegisterBodyParser(model.MosaicSupplyChangeTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return MosaicSupplyChangeFromMarshalUtil(m)
	})
	RegisterBodyParser(model.MultisigAccountModificationTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return MultisigAccountModificationFromMarshalUtil(m)
	})
	RegisterBodyParser(model.HashLockTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return HashLockFromMarshalUtil(m) })
	RegisterBodyParser(model.SecretLockTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return SecretLockFromMarshalUtil(m) })
	RegisterBodyParser(model.SecretProofTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return SecretProofFromMarshalUtil(m) })
	RegisterBodyParser(model.AccountAddressRestrictionTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return AccountAddressRestrictionFromMarshalUtil(m)
	})
	RegisterBodyParser(model.AccountMosaicRestrictionTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return AccountMosaicRestrictionFromMarshalUtil(m)
	})
	RegisterBodyParser(model.AccountOperationRestrictionTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return AccountOperationRestrictionFromMarshalUtil(m)
	})
	RegisterBodyParser(model.MosaicGlobalRestrictionTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return MosaicGlobalRestrictionFromMarshalUtil(m)
	})
	RegisterBodyParser(model.MosaicAddressRestrictionTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return MosaicAddressRestrictionFromMarshalUtil(m)
	})
	RegisterBodyParser(model.AccountMetadataTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return AccountMetadataFromMarshalUtil(m) })
	RegisterBodyParser(model.MosaicMetadataTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return MosaicMetadataFromMarshalUtil(m) })
	RegisterBodyParser(model.NamespaceMetadataTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return NamespaceMetadataFromMarshalUtil(m)
	})
	RegisterBodyParser(model.AccountLinkTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) { return AccountLinkFromMarshalUtil(m) })
	RegisterBodyParser(model.AggregateCompleteTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return AggregateFromMarshalUtil(m, model.AggregateCompleteTransactionType)
	})
	RegisterBodyParser(model.AggregateBondedTransactionType, func(m *marshalutil.MarshalUtil) (Body, error) {
		return AggregateFromMarshalUtil(m, model.AggregateBondedTransactionType)
	})
}

// RegisterBodyParser sets the parser that is used for the Body of the given TransactionType.
func RegisterBodyParser(transactionType model.TransactionType, parser BodyParser) {
	bodyParsers[transactionType] = parser
}

// BodyFromMarshalUtil unmarshals the Body of the given TransactionType using a MarshalUtil (for easier unmarshaling).
// Aggregate bodies consume every remaining byte of the MarshalUtil.
func BodyFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, transactionType model.TransactionType) (body Body, err error) {
	parser, exists := bodyParsers[transactionType]
	if !exists {
		err = xerrors.Errorf("unsupported TransactionType (%s): %w", transactionType, ErrUnknownDiscriminant)
		return
	}

	if body, err = parser(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse %s body: %w", transactionType, err)
	}

	return
}

// BodyFromBytes unmarshals the Body of the given TransactionType from a sequence of bytes.
func BodyFromBytes(bytes []byte, transactionType model.TransactionType) (body Body, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if body, err = BodyFromMarshalUtil(marshalUtil, transactionType); err != nil {
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}
