package transaction

import (
	"math"
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region Cosignature //////////////////////////////////////////////////////////////////////////////////////////////////

// CosignatureLength contains the amount of bytes that a marshaled version of the Cosignature contains.
const CosignatureLength = model.PublicKeyLength + model.SignatureLength

// Cosignature is the signature of a cosignatory over the hash of an aggregate transaction.
type Cosignature struct {
	Signer    model.PublicKey
	Signature model.Signature
}

// NewCosignature is the constructor of the Cosignature.
func NewCosignature(signer model.PublicKey, signature model.Signature) Cosignature {
	return Cosignature{Signer: signer, Signature: signature}
}

// CosignatureFromMarshalUtil unmarshals a Cosignature using a MarshalUtil (for easier unmarshaling).
func CosignatureFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (cosignature Cosignature, err error) {
	if cosignature.Signer, err = model.PublicKeyFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse cosignature signer: %w", err)
		return
	}
	if cosignature.Signature, err = model.SignatureFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse cosignature: %w", err)
		return
	}

	return
}

// Size returns the amount of bytes of the marshaled Cosignature.
func (c Cosignature) Size() int {
	return CosignatureLength
}

// Bytes returns a marshaled version of the Cosignature.
func (c Cosignature) Bytes() []byte {
	return marshalutil.New(CosignatureLength).
		WriteBytes(c.Signer.Bytes()).
		WriteBytes(c.Signature.Bytes()).
		Bytes()
}

// String returns a human-readable version of the Cosignature.
func (c Cosignature) String() string {
	return stringify.Struct("Cosignature",
		stringify.StructField("signer", c.Signer),
		stringify.StructField("signature", c.Signature),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Aggregate ////////////////////////////////////////////////////////////////////////////////////////////////////

// AggregateHeaderLength contains the amount of bytes in front of the payload of an Aggregate.
const AggregateHeaderLength = model.Hash256Length + marshalutil.Uint32Size

// Aggregate is the body of the aggregate complete and aggregate bonded transactions. Its payload is the byte packed
// concatenation of the embedded transactions; the cosignatures fill the rest of the body.
type Aggregate struct {
	transactionType  model.TransactionType
	transactionsHash model.Hash256
	transactions     []*EmbeddedTransaction
	cosignatures     []Cosignature
}

// NewAggregateComplete creates the body of an aggregate transaction that carries all of its cosignatures.
func NewAggregateComplete(transactionsHash model.Hash256, transactions []*EmbeddedTransaction, cosignatures ...Cosignature) (*Aggregate, error) {
	return newAggregate(model.AggregateCompleteTransactionType, transactionsHash, transactions, cosignatures)
}

// NewAggregateBonded creates the body of an aggregate transaction that collects its cosignatures on the network.
func NewAggregateBonded(transactionsHash model.Hash256, transactions []*EmbeddedTransaction, cosignatures ...Cosignature) (*Aggregate, error) {
	return newAggregate(model.AggregateBondedTransactionType, transactionsHash, transactions, cosignatures)
}

func newAggregate(transactionType model.TransactionType, transactionsHash model.Hash256, transactions []*EmbeddedTransaction, cosignatures []Cosignature) (*Aggregate, error) {
	aggregate := &Aggregate{
		transactionType:  transactionType,
		transactionsHash: transactionsHash,
		transactions:     cloneSlice(transactions),
		cosignatures:     cloneSlice(cosignatures),
	}
	for i, transaction := range aggregate.transactions {
		if transaction == nil {
			return nil, xerrors.Errorf("embedded transaction %d is nil: %w", i, ErrContractViolation)
		}
	}
	if err := checkLength(aggregate.PayloadSize(), math.MaxUint32, "aggregate payload"); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// AggregateFromMarshalUtil unmarshals an Aggregate of the given TransactionType using a MarshalUtil (for easier
// unmarshaling). Every byte that follows the payload is read as cosignatures.
func AggregateFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil, transactionType model.TransactionType) (aggregate *Aggregate, err error) {
	if !transactionType.IsAggregate() {
		return nil, xerrors.Errorf("%s is not an aggregate TransactionType: %w", transactionType, ErrContractViolation)
	}

	aggregate = &Aggregate{transactionType: transactionType}
	if aggregate.transactionsHash, err = model.Hash256FromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse transactions hash: %w", err)
	}
	if aggregate.transactions, err = embeddedTransactionsFromMarshalUtil(marshalUtil); err != nil {
		return nil, err
	}
	if aggregate.cosignatures, err = cosignaturesFromBytes(marshalUtil.ReadRemainingBytes()); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func embeddedTransactionsFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (transactions []*EmbeddedTransaction, err error) {
	payloadSize, err := model.ReadUint32(marshalUtil, "payload size")
	if err != nil {
		return nil, err
	}
	payload, err := marshalUtil.ReadBytes(int(payloadSize))
	if err != nil {
		return nil, &PayloadError{cause: xerrors.Errorf("declared payload size %d exceeds the body (%v): %w", payloadSize, err, ErrInsufficientBytes)}
	}

	transactions = make([]*EmbeddedTransaction, 0)
	payloadUtil := marshalutil.New(payload)
	for payloadUtil.ReadOffset() < len(payload) {
		transaction, embeddedErr := EmbeddedTransactionFromMarshalUtil(payloadUtil)
		if embeddedErr != nil {
			return nil, &PayloadError{cause: xerrors.Errorf("failed to parse embedded transaction %d at offset %d: %w", len(transactions), payloadUtil.ReadOffset(), embeddedErr)}
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

func cosignaturesFromBytes(bytes []byte) (cosignatures []Cosignature, err error) {
	if len(bytes)%CosignatureLength != 0 {
		return nil, xerrors.Errorf("%d trailing bytes are not a multiple of the cosignature length %d: %w", len(bytes), CosignatureLength, ErrLengthMismatch)
	}

	marshalUtil := marshalutil.New(bytes)
	cosignatures = make([]Cosignature, len(bytes)/CosignatureLength)
	for i := range cosignatures {
		if cosignatures[i], err = CosignatureFromMarshalUtil(marshalUtil); err != nil {
			return nil, err
		}
	}

	return cosignatures, nil
}

// TransactionsHash returns the merkle root of the hashes of the embedded transactions.
func (a *Aggregate) TransactionsHash() model.Hash256 {
	return a.transactionsHash
}

// Transactions returns the embedded transactions in payload order.
func (a *Aggregate) Transactions() []*EmbeddedTransaction {
	return cloneSlice(a.transactions)
}

// Cosignatures returns a copy of the attached cosignatures.
func (a *Aggregate) Cosignatures() []Cosignature {
	return cloneSlice(a.cosignatures)
}

// WithCosignatures returns a copy of the Aggregate with the given cosignatures appended.
func (a *Aggregate) WithCosignatures(cosignatures ...Cosignature) *Aggregate {
	return &Aggregate{
		transactionType:  a.transactionType,
		transactionsHash: a.transactionsHash,
		transactions:     cloneSlice(a.transactions),
		cosignatures:     append(cloneSlice(a.cosignatures), cosignatures...),
	}
}

// PayloadSize returns the sum of the sizes of the embedded transactions.
func (a *Aggregate) PayloadSize() (payloadSize int) {
	for _, transaction := range a.transactions {
		payloadSize += transaction.Size()
	}

	return
}

// Type returns the TransactionType of the Aggregate.
func (a *Aggregate) Type() model.TransactionType {
	return a.transactionType
}

// Size returns the amount of bytes of the marshaled Aggregate.
func (a *Aggregate) Size() int {
	return AggregateHeaderLength + a.PayloadSize() + len(a.cosignatures)*CosignatureLength
}

// Bytes returns a marshaled version of the Aggregate.
func (a *Aggregate) Bytes() []byte {
	marshalUtil := marshalutil.New(a.Size()).
		WriteBytes(a.transactionsHash.Bytes()).
		WriteUint32(uint32(a.PayloadSize()))
	for _, transaction := range a.transactions {
		marshalUtil.WriteBytes(transaction.Bytes())
	}
	for _, cosignature := range a.cosignatures {
		marshalUtil.WriteBytes(cosignature.Bytes())
	}

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the Aggregate.
func (a *Aggregate) String() string {
	structBuilder := stringify.StructBuilder(a.transactionType.String(),
		stringify.StructField("transactionsHash", a.transactionsHash),
	)
	for i, transaction := range a.transactions {
		structBuilder.AddField(stringify.StructField("transaction"+strconv.Itoa(i), transaction))
	}
	for i, cosignature := range a.cosignatures {
		structBuilder.AddField(stringify.StructField("cosignature"+strconv.Itoa(i), cosignature))
	}

	return structBuilder.String()
}

// code contract (make sure the type implements all required methods)
var _ Body = &Aggregate{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
