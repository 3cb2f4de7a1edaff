package transaction

import (
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region CosignatoryModification //////////////////////////////////////////////////////////////////////////////////////

// CosignatoryModificationLength contains the amount of bytes that a marshaled version of the CosignatoryModification
// contains.
const CosignatoryModificationLength = model.ModificationActionLength + model.PublicKeyLength

// CosignatoryModification adds a cosignatory to or removes it from a multisig account.
type CosignatoryModification struct {
	Action      model.ModificationAction
	Cosignatory model.PublicKey
}

// NewCosignatoryModification is the constructor of the CosignatoryModification.
func NewCosignatoryModification(action model.ModificationAction, cosignatory model.PublicKey) CosignatoryModification {
	return CosignatoryModification{Action: action, Cosignatory: cosignatory}
}

// CosignatoryModificationFromMarshalUtil unmarshals a CosignatoryModification using a MarshalUtil (for easier
// unmarshaling).
func CosignatoryModificationFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (modification CosignatoryModification, err error) {
	if modification.Action, err = model.ModificationActionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse action: %w", err)
		return
	}
	if modification.Cosignatory, err = model.PublicKeyFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse cosignatory: %w", err)
		return
	}

	return
}

// Size returns the amount of bytes of the marshaled CosignatoryModification.
func (c CosignatoryModification) Size() int {
	return CosignatoryModificationLength
}

// Bytes returns a marshaled version of the CosignatoryModification.
func (c CosignatoryModification) Bytes() []byte {
	return marshalutil.New(CosignatoryModificationLength).
		WriteBytes(c.Action.Bytes()).
		WriteBytes(c.Cosignatory.Bytes()).
		Bytes()
}

// String returns a human-readable version of the CosignatoryModification.
func (c CosignatoryModification) String() string {
	return stringify.Struct("CosignatoryModification",
		stringify.StructField("action", c.Action),
		stringify.StructField("cosignatory", c.Cosignatory),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MultisigAccountModification //////////////////////////////////////////////////////////////////////////////////

// MultisigAccountModification changes the thresholds and cosignatories of a multisig account.
type MultisigAccountModification struct {
	minRemovalDelta  int8
	minApprovalDelta int8
	modifications    []CosignatoryModification
}

// NewMultisigAccountModification is the constructor for MultisigAccountModification bodies.
func NewMultisigAccountModification(minRemovalDelta, minApprovalDelta int8, modifications ...CosignatoryModification) (*MultisigAccountModification, error) {
	modifications, err := newCollection(modifications, "cosignatory modifications")
	if err != nil {
		return nil, err
	}

	return &MultisigAccountModification{
		minRemovalDelta:  minRemovalDelta,
		minApprovalDelta: minApprovalDelta,
		modifications:    modifications,
	}, nil
}

// MultisigAccountModificationFromMarshalUtil unmarshals a MultisigAccountModification using a MarshalUtil (for easier
// unmarshaling).
func MultisigAccountModificationFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (modification *MultisigAccountModification, err error) {
	minRemovalDelta, err := model.ReadUint8(marshalUtil, "min removal delta")
	if err != nil {
		return nil, err
	}
	minApprovalDelta, err := model.ReadUint8(marshalUtil, "min approval delta")
	if err != nil {
		return nil, err
	}
	modifications, err := collectionFromMarshalUtil(marshalUtil, CosignatoryModificationFromMarshalUtil, "cosignatory modifications")
	if err != nil {
		return nil, err
	}

	return &MultisigAccountModification{
		minRemovalDelta:  int8(minRemovalDelta),
		minApprovalDelta: int8(minApprovalDelta),
		modifications:    modifications,
	}, nil
}

// MinRemovalDelta returns the change of the number of cosignatures required to remove a cosignatory.
func (m *MultisigAccountModification) MinRemovalDelta() int8 {
	return m.minRemovalDelta
}

// MinApprovalDelta returns the change of the number of cosignatures required to approve a transaction.
func (m *MultisigAccountModification) MinApprovalDelta() int8 {
	return m.minApprovalDelta
}

// Modifications returns a copy of the cosignatory modifications in wire order.
func (m *MultisigAccountModification) Modifications() []CosignatoryModification {
	return cloneSlice(m.modifications)
}

// Type returns the TransactionType of the MultisigAccountModification.
func (m *MultisigAccountModification) Type() model.TransactionType {
	return model.MultisigAccountModificationTransactionType
}

// Size returns the amount of bytes of the marshaled MultisigAccountModification.
func (m *MultisigAccountModification) Size() int {
	return 2*marshalutil.Uint8Size + collectionSize(m.modifications)
}

// Bytes returns a marshaled version of the MultisigAccountModification.
func (m *MultisigAccountModification) Bytes() []byte {
	marshalUtil := marshalutil.New(m.Size()).
		WriteByte(byte(m.minRemovalDelta)).
		WriteByte(byte(m.minApprovalDelta))
	writeCollection(marshalUtil, m.modifications)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the MultisigAccountModification.
func (m *MultisigAccountModification) String() string {
	structBuilder := stringify.StructBuilder("MultisigAccountModification",
		stringify.StructField("minRemovalDelta", strconv.Itoa(int(m.minRemovalDelta))),
		stringify.StructField("minApprovalDelta", strconv.Itoa(int(m.minApprovalDelta))),
	)
	for i, modification := range m.modifications {
		structBuilder.AddField(stringify.StructField("modification"+strconv.Itoa(i), modification))
	}

	return structBuilder.String()
}

// code contract (make sure the type implements all required methods)
var _ Body = &MultisigAccountModification{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
