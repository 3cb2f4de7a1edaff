package transaction

import (
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region RestrictionModification //////////////////////////////////////////////////////////////////////////////////////

// RestrictionValue is the kind of value an account restriction modification carries.
type RestrictionValue interface {
	model.UnresolvedAddress | model.UnresolvedMosaicID | model.TransactionType

	Bytes() []byte
	String() string
}

// RestrictionModification adds a value to or removes it from an account restriction.
type RestrictionModification[V RestrictionValue] struct {
	Action model.ModificationAction
	Value  V
}

// NewRestrictionModification is the constructor of the RestrictionModification.
func NewRestrictionModification[V RestrictionValue](action model.ModificationAction, value V) RestrictionModification[V] {
	return RestrictionModification[V]{Action: action, Value: value}
}

func restrictionModificationParser[V RestrictionValue](parseValue func(*marshalutil.MarshalUtil) (V, error)) func(*marshalutil.MarshalUtil) (RestrictionModification[V], error) {
	return func(marshalUtil *marshalutil.MarshalUtil) (modification RestrictionModification[V], err error) {
		if modification.Action, err = model.ModificationActionFromMarshalUtil(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse action: %w", err)
			return
		}
		if modification.Value, err = parseValue(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse value: %w", err)
			return
		}

		return
	}
}

// Size returns the amount of bytes of the marshaled RestrictionModification.
func (r RestrictionModification[V]) Size() int {
	return model.ModificationActionLength + len(r.Value.Bytes())
}

// Bytes returns a marshaled version of the RestrictionModification.
func (r RestrictionModification[V]) Bytes() []byte {
	return marshalutil.New(r.Size()).
		WriteBytes(r.Action.Bytes()).
		WriteBytes(r.Value.Bytes()).
		Bytes()
}

// String returns a human-readable version of the RestrictionModification.
func (r RestrictionModification[V]) String() string {
	return stringify.Struct("RestrictionModification",
		stringify.StructField("action", r.Action),
		stringify.StructField("value", r.Value.String()),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AccountRestriction ///////////////////////////////////////////////////////////////////////////////////////////

// AccountRestriction changes the set of values an account allows or blocks. The value kind selects the transaction
// kind.
type AccountRestriction[V RestrictionValue] struct {
	transactionType model.TransactionType
	restrictionType model.AccountRestrictionType
	modifications   []RestrictionModification[V]
}

type (
	// AccountAddressRestriction restricts the addresses an account interacts with.
	AccountAddressRestriction = AccountRestriction[model.UnresolvedAddress]

	// AccountMosaicRestriction restricts the mosaics an account receives.
	AccountMosaicRestriction = AccountRestriction[model.UnresolvedMosaicID]

	// AccountOperationRestriction restricts the transaction kinds an account sends.
	AccountOperationRestriction = AccountRestriction[model.TransactionType]
)

// NewAccountAddressRestriction is the constructor for AccountAddressRestriction bodies.
func NewAccountAddressRestriction(restrictionType model.AccountRestrictionType, modifications ...RestrictionModification[model.UnresolvedAddress]) (*AccountAddressRestriction, error) {
	return newAccountRestriction(model.AccountAddressRestrictionTransactionType, restrictionType, modifications)
}

// NewAccountMosaicRestriction is the constructor for AccountMosaicRestriction bodies.
func NewAccountMosaicRestriction(restrictionType model.AccountRestrictionType, modifications ...RestrictionModification[model.UnresolvedMosaicID]) (*AccountMosaicRestriction, error) {
	return newAccountRestriction(model.AccountMosaicRestrictionTransactionType, restrictionType, modifications)
}

// NewAccountOperationRestriction is the constructor for AccountOperationRestriction bodies.
func NewAccountOperationRestriction(restrictionType model.AccountRestrictionType, modifications ...RestrictionModification[model.TransactionType]) (*AccountOperationRestriction, error) {
	return newAccountRestriction(model.AccountOperationRestrictionTransactionType, restrictionType, modifications)
}

func newAccountRestriction[V RestrictionValue](transactionType model.TransactionType, restrictionType model.AccountRestrictionType, modifications []RestrictionModification[V]) (*AccountRestriction[V], error) {
	modifications, err := newCollection(modifications, "restriction modifications")
	if err != nil {
		return nil, err
	}

	return &AccountRestriction[V]{
		transactionType: transactionType,
		restrictionType: restrictionType,
		modifications:   modifications,
	}, nil
}

// AccountAddressRestrictionFromMarshalUtil unmarshals an AccountAddressRestriction using a MarshalUtil (for easier
// unmarshaling).
func AccountAddressRestrictionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (*AccountAddressRestriction, error) {
	return accountRestrictionFromMarshalUtil(marshalUtil, model.AccountAddressRestrictionTransactionType, model.UnresolvedAddressFromMarshalUtil)
}

// AccountMosaicRestrictionFromMarshalUtil unmarshals an AccountMosaicRestriction using a MarshalUtil (for easier
// unmarshaling).
func AccountMosaicRestrictionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (*AccountMosaicRestriction, error) {
	return accountRestrictionFromMarshalUtil(marshalUtil, model.AccountMosaicRestrictionTransactionType, model.UnresolvedMosaicIDFromMarshalUtil)
}

// AccountOperationRestrictionFromMarshalUtil unmarshals an AccountOperationRestriction using a MarshalUtil (for
// easier unmarshaling).
func AccountOperationRestrictionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (*AccountOperationRestriction, error) {
	return accountRestrictionFromMarshalUtil(marshalUtil, model.AccountOperationRestrictionTransactionType, model.TransactionTypeFromMarshalUtil)
}

func accountRestrictionFromMarshalUtil[V RestrictionValue](marshalUtil *marshalutil.MarshalUtil, transactionType model.TransactionType, parseValue func(*marshalutil.MarshalUtil) (V, error)) (restriction *AccountRestriction[V], err error) {
	restriction = &AccountRestriction[V]{transactionType: transactionType}
	if restriction.restrictionType, err = model.AccountRestrictionTypeFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse restriction type: %w", err)
	}
	if restriction.modifications, err = collectionFromMarshalUtil(marshalUtil, restrictionModificationParser(parseValue), "restriction modifications"); err != nil {
		return nil, err
	}

	return restriction, nil
}

// RestrictionType returns the direction and the allow/block mode of the restriction.
func (a *AccountRestriction[V]) RestrictionType() model.AccountRestrictionType {
	return a.restrictionType
}

// Modifications returns a copy of the modifications in wire order.
func (a *AccountRestriction[V]) Modifications() []RestrictionModification[V] {
	return cloneSlice(a.modifications)
}

// Type returns the TransactionType of the AccountRestriction.
func (a *AccountRestriction[V]) Type() model.TransactionType {
	return a.transactionType
}

// Size returns the amount of bytes of the marshaled AccountRestriction.
func (a *AccountRestriction[V]) Size() int {
	return model.AccountRestrictionTypeLength + collectionSize(a.modifications)
}

// Bytes returns a marshaled version of the AccountRestriction.
func (a *AccountRestriction[V]) Bytes() []byte {
	marshalUtil := marshalutil.New(a.Size()).WriteBytes(a.restrictionType.Bytes())
	writeCollection(marshalUtil, a.modifications)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the AccountRestriction.
func (a *AccountRestriction[V]) String() string {
	structBuilder := stringify.StructBuilder(a.transactionType.String(),
		stringify.StructField("restrictionType", a.restrictionType),
	)
	for i, modification := range a.modifications {
		structBuilder.AddField(stringify.StructField("modification"+strconv.Itoa(i), modification))
	}

	return structBuilder.String()
}

// code contract (make sure the type implements all required methods)
var (
	_ Body = &AccountAddressRestriction{}
	_ Body = &AccountMosaicRestriction{}
	_ Body = &AccountOperationRestriction{}
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
