package transaction

import (
	"math"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region Transaction //////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// SizeLength contains the amount of bytes of the size field of a Transaction.
	SizeLength = marshalutil.Uint32Size

	// SigningDataOffset is the offset of the first byte of a marshaled Transaction that is covered by its signature.
	SigningDataOffset = SizeLength + model.SignatureLength + model.PublicKeyLength

	// HeaderLength contains the amount of bytes of a marshaled Transaction in front of its Body.
	HeaderLength = SigningDataOffset + model.EntityVersionLength + model.TransactionTypeLength + model.AmountLength +
		model.TimestampLength
)

// Transaction is a standalone transaction: a signed header followed by the Body of its kind.
type Transaction struct {
	signature model.Signature
	signer    model.PublicKey
	version   model.EntityVersion
	maxFee    model.Amount
	deadline  model.Timestamp
	body      Body
}

// NewTransaction creates an unsigned Transaction.
func NewTransaction(signer model.PublicKey, version model.EntityVersion, maxFee model.Amount, deadline model.Timestamp, body Body) (*Transaction, error) {
	if body == nil {
		return nil, xerrors.Errorf("transaction without body: %w", ErrContractViolation)
	}
	if err := checkLength(HeaderLength+body.Size(), math.MaxUint32, "transaction"); err != nil {
		return nil, err
	}

	return &Transaction{
		signer:   signer,
		version:  version,
		maxFee:   maxFee,
		deadline: deadline,
		body:     body,
	}, nil
}

// TransactionFromBytes unmarshals a Transaction from a sequence of bytes.
func TransactionFromBytes(bytes []byte) (transaction *Transaction, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if transaction, err = TransactionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Transaction from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// TransactionFromMarshalUtil unmarshals a Transaction using a MarshalUtil (for easier unmarshaling). The Body has to
// consume exactly the bytes that the size field leaves for it.
func TransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transaction *Transaction, err error) {
	size, err := model.ReadUint32(marshalUtil, "transaction size")
	if err != nil {
		return nil, err
	}
	if size < HeaderLength {
		return nil, xerrors.Errorf("declared transaction size %d is smaller than the header (%d bytes): %w", size, HeaderLength, ErrLengthMismatch)
	}
	envelopeBytes, err := readBytes(marshalUtil, int(size)-SizeLength, "transaction")
	if err != nil {
		return nil, err
	}

	envelopeUtil := marshalutil.New(envelopeBytes)
	transaction = &Transaction{}
	if transaction.signature, err = model.SignatureFromMarshalUtil(envelopeUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse signature: %w", err)
	}
	if transaction.signer, err = model.PublicKeyFromMarshalUtil(envelopeUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse signer: %w", err)
	}
	if transaction.version, err = model.EntityVersionFromMarshalUtil(envelopeUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse version: %w", err)
	}
	transactionType, err := model.TransactionTypeFromMarshalUtil(envelopeUtil)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse transaction type: %w", err)
	}
	if transaction.maxFee, err = model.AmountFromMarshalUtil(envelopeUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse max fee: %w", err)
	}
	if transaction.deadline, err = model.TimestampFromMarshalUtil(envelopeUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse deadline: %w", err)
	}

	bodyBytes := envelopeUtil.ReadRemainingBytes()
	bodyUtil := marshalutil.New(bodyBytes)
	if transaction.body, err = BodyFromMarshalUtil(bodyUtil, transactionType); err != nil {
		return nil, err
	}
	if bodyUtil.ReadOffset() != len(bodyBytes) {
		return nil, xerrors.Errorf("%s body consumed %d of %d bytes: %w", transactionType, bodyUtil.ReadOffset(), len(bodyBytes), ErrLengthMismatch)
	}

	return transaction, nil
}

// Signed returns a copy of the Transaction that carries the given signature.
func (t *Transaction) Signed(signature model.Signature) *Transaction {
	signed := *t
	signed.signature = signature

	return &signed
}

// WithCosignatures returns a copy of an aggregate Transaction with the given cosignatures appended. The signature is
// kept since cosignatures are not part of the signed data.
func (t *Transaction) WithCosignatures(cosignatures ...Cosignature) (*Transaction, error) {
	aggregate, isAggregate := t.Aggregate()
	if !isAggregate {
		return nil, xerrors.Errorf("cosignatures on a %s transaction: %w", t.Type(), ErrContractViolation)
	}

	cosigned := *t
	cosigned.body = aggregate.WithCosignatures(cosignatures...)
	if err := checkLength(cosigned.Size(), math.MaxUint32, "transaction"); err != nil {
		return nil, err
	}

	return &cosigned, nil
}

// Signature returns the signature of the signer over the signing data.
func (t *Transaction) Signature() model.Signature {
	return t.signature
}

// Signer returns the public key of the account that signs and pays for the Transaction.
func (t *Transaction) Signer() model.PublicKey {
	return t.signer
}

// Version returns the network and layout version of the Transaction.
func (t *Transaction) Version() model.EntityVersion {
	return t.version
}

// NetworkType returns the network the Transaction belongs to.
func (t *Transaction) NetworkType() model.NetworkType {
	return t.version.NetworkType()
}

// Type returns the kind of the Transaction.
func (t *Transaction) Type() model.TransactionType {
	return t.body.Type()
}

// MaxFee returns the highest fee the signer pays.
func (t *Transaction) MaxFee() model.Amount {
	return t.maxFee
}

// Deadline returns the time after which the Transaction is rejected.
func (t *Transaction) Deadline() model.Timestamp {
	return t.deadline
}

// Body returns the kind specific part of the Transaction.
func (t *Transaction) Body() Body {
	return t.body
}

// Aggregate returns the Body as an Aggregate. The second return value is false for other kinds.
func (t *Transaction) Aggregate() (aggregate *Aggregate, isAggregate bool) {
	aggregate, isAggregate = t.body.(*Aggregate)
	return
}

// Size returns the amount of bytes of the marshaled Transaction, including the size field itself.
func (t *Transaction) Size() int {
	return HeaderLength + t.body.Size()
}

// Bytes returns a marshaled version of the Transaction.
func (t *Transaction) Bytes() []byte {
	return marshalutil.New(t.Size()).
		WriteUint32(uint32(t.Size())).
		WriteBytes(t.signature.Bytes()).
		WriteBytes(t.signer.Bytes()).
		WriteBytes(t.version.Bytes()).
		WriteBytes(t.Type().Bytes()).
		WriteBytes(t.maxFee.Bytes()).
		WriteBytes(t.deadline.Bytes()).
		WriteBytes(t.body.Bytes()).
		Bytes()
}

// String returns a human-readable version of the Transaction.
func (t *Transaction) String() string {
	return stringify.Struct("Transaction",
		stringify.StructField("size", uint64(t.Size())),
		stringify.StructField("signature", t.signature),
		stringify.StructField("signer", t.signer),
		stringify.StructField("version", t.version),
		stringify.StructField("type", t.Type()),
		stringify.StructField("maxFee", t.maxFee),
		stringify.StructField("deadline", t.deadline),
		stringify.StructField("body", t.body),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region EmbeddedTransaction //////////////////////////////////////////////////////////////////////////////////////////

// EmbeddedHeaderLength contains the amount of bytes of a marshaled EmbeddedTransaction in front of its Body.
const EmbeddedHeaderLength = model.PublicKeyLength + model.EntityVersionLength + model.TransactionTypeLength

// EmbeddedTransaction is a transaction inside the payload of an Aggregate. The size, signature, fee and deadline are
// carried by the enclosing Transaction.
type EmbeddedTransaction struct {
	signer  model.PublicKey
	version model.EntityVersion
	body    Body
}

// NewEmbeddedTransaction creates an EmbeddedTransaction. Aggregate bodies can not be embedded.
func NewEmbeddedTransaction(signer model.PublicKey, version model.EntityVersion, body Body) (*EmbeddedTransaction, error) {
	if body == nil {
		return nil, xerrors.Errorf("embedded transaction without body: %w", ErrContractViolation)
	}
	if body.Type().IsAggregate() {
		return nil, xerrors.Errorf("%s can not be embedded: %w", body.Type(), ErrContractViolation)
	}

	return &EmbeddedTransaction{
		signer:  signer,
		version: version,
		body:    body,
	}, nil
}

// EmbeddedTransactionFromBytes unmarshals an EmbeddedTransaction from a sequence of bytes.
func EmbeddedTransactionFromBytes(bytes []byte) (transaction *EmbeddedTransaction, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if transaction, err = EmbeddedTransactionFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse EmbeddedTransaction from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// EmbeddedTransactionFromMarshalUtil unmarshals an EmbeddedTransaction using a MarshalUtil (for easier unmarshaling).
func EmbeddedTransactionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transaction *EmbeddedTransaction, err error) {
	transaction = &EmbeddedTransaction{}
	if transaction.signer, err = model.PublicKeyFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse signer: %w", err)
	}
	if transaction.version, err = model.EntityVersionFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse version: %w", err)
	}
	transactionType, err := model.TransactionTypeFromMarshalUtil(marshalUtil)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse transaction type: %w", err)
	}
	if transactionType.IsAggregate() {
		return nil, xerrors.Errorf("unsupported embedded TransactionType (%s): %w", transactionType, ErrUnknownDiscriminant)
	}
	if transaction.body, err = BodyFromMarshalUtil(marshalUtil, transactionType); err != nil {
		return nil, err
	}

	return transaction, nil
}

// Signer returns the public key of the account the EmbeddedTransaction acts for.
func (e *EmbeddedTransaction) Signer() model.PublicKey {
	return e.signer
}

// Version returns the network and layout version of the EmbeddedTransaction.
func (e *EmbeddedTransaction) Version() model.EntityVersion {
	return e.version
}

// Type returns the kind of the EmbeddedTransaction.
func (e *EmbeddedTransaction) Type() model.TransactionType {
	return e.body.Type()
}

// Body returns the kind specific part of the EmbeddedTransaction.
func (e *EmbeddedTransaction) Body() Body {
	return e.body
}

// Size returns the amount of bytes of the marshaled EmbeddedTransaction.
func (e *EmbeddedTransaction) Size() int {
	return EmbeddedHeaderLength + e.body.Size()
}

// Bytes returns a marshaled version of the EmbeddedTransaction.
func (e *EmbeddedTransaction) Bytes() []byte {
	return marshalutil.New(e.Size()).
		WriteBytes(e.signer.Bytes()).
		WriteBytes(e.version.Bytes()).
		WriteBytes(e.Type().Bytes()).
		WriteBytes(e.body.Bytes()).
		Bytes()
}

// String returns a human-readable version of the EmbeddedTransaction.
func (e *EmbeddedTransaction) String() string {
	return stringify.Struct("EmbeddedTransaction",
		stringify.StructField("signer", e.signer),
		stringify.StructField("version", e.version),
		stringify.StructField("type", e.Type()),
		stringify.StructField("body", e.body),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
