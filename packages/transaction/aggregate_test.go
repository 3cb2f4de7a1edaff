package transaction

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/catapult-client/packages/model"
)

func testEmbeddedTransfers(t *testing.T, count int) []*EmbeddedTransaction {
	transactions := make([]*EmbeddedTransaction, count)
	for i := range transactions {
		transfer, err := NewTransfer(testRecipient(byte(i)), []byte{byte(i)}, model.NewMosaic(0x1, model.Amount(i+1)))
		require.NoError(t, err)
		transactions[i], err = NewEmbeddedTransaction(testPublicKey(byte(i+30)), testVersion, transfer)
		require.NoError(t, err)
	}

	return transactions
}

func testAggregateTransaction(t *testing.T, count int, cosignatures ...Cosignature) *Transaction {
	aggregate, err := NewAggregateBonded(testHash(1), testEmbeddedTransfers(t, count), cosignatures...)
	require.NoError(t, err)
	transaction, err := NewTransaction(testPublicKey(2), testVersion, 10, 20, aggregate)
	require.NoError(t, err)

	return transaction
}

func TestAggregate_RoundTrip(t *testing.T) {
	cosignatures := []Cosignature{
		NewCosignature(testPublicKey(40), model.Signature{0x01}),
		NewCosignature(testPublicKey(41), model.Signature{0x02}),
	}

	for _, count := range []int{0, 1, 3} {
		transaction := testAggregateTransaction(t, count, cosignatures...)
		bytes := transaction.Bytes()
		require.Len(t, bytes, transaction.Size())

		decoded, consumedBytes, err := TransactionFromBytes(bytes)
		require.NoError(t, err)
		assert.Equal(t, len(bytes), consumedBytes)
		assert.Equal(t, transaction, decoded)
		assert.Equal(t, bytes, decoded.Bytes())

		aggregate, isAggregate := decoded.Aggregate()
		require.True(t, isAggregate)
		assert.Equal(t, model.AggregateBondedTransactionType, aggregate.Type())
		assert.Equal(t, cosignatures, aggregate.Cosignatures())
		require.Len(t, aggregate.Transactions(), count)
		for i, embedded := range aggregate.Transactions() {
			assert.Equal(t, testPublicKey(byte(i+30)), embedded.Signer())
			assert.Equal(t, []byte{byte(i)}, embedded.Body().(*Transfer).Message())
		}
	}
}

func TestAggregate_PayloadIsBytePacked(t *testing.T) {
	transactions := testEmbeddedTransfers(t, 2)
	aggregate, err := NewAggregateComplete(testHash(1), transactions)
	require.NoError(t, err)

	bytes := aggregate.Bytes()
	assert.Equal(t, testHash(1).Bytes(), bytes[:model.Hash256Length])
	assert.Equal(t, uint32(transactions[0].Size()+transactions[1].Size()), binary.LittleEndian.Uint32(bytes[model.Hash256Length:AggregateHeaderLength]))
	assert.Equal(t, transactions[0].Bytes(), bytes[AggregateHeaderLength:AggregateHeaderLength+transactions[0].Size()])
	assert.Equal(t, transactions[1].Bytes(), bytes[AggregateHeaderLength+transactions[0].Size():])
}

func TestAggregate_PayloadSizeMismatch(t *testing.T) {
	payloadSizeOffset := HeaderLength + model.Hash256Length

	for _, cosignatureCount := range []int{0, 1} {
		cosignatures := make([]Cosignature, cosignatureCount)
		bytes := testAggregateTransaction(t, 3, cosignatures...).Bytes()
		payloadSize := binary.LittleEndian.Uint32(bytes[payloadSizeOffset:])

		for _, corruptedSize := range []uint32{payloadSize - 1, payloadSize + 1} {
			corrupted := append([]byte(nil), bytes...)
			binary.LittleEndian.PutUint32(corrupted[payloadSizeOffset:], corruptedSize)

			_, _, err := TransactionFromBytes(corrupted)
			require.ErrorIs(t, err, ErrLengthMismatch, "payload size %d instead of %d", corruptedSize, payloadSize)

			var payloadErr *PayloadError
			assert.ErrorAs(t, err, &payloadErr)
		}
	}
}

// An embedded transaction of exactly CosignatureLength bytes is indistinguishable from a cosignature once the payload
// size is lowered by its size. The bytes stay well formed, so the decoder accepts them.
func TestAggregate_PayloadSizeShiftedToCosignature(t *testing.T) {
	transactions := make([]*EmbeddedTransaction, 2)
	for i := range transactions {
		transfer, err := NewTransfer(testRecipient(byte(i)), make([]byte, 16), model.NewMosaic(0x1, 1))
		require.NoError(t, err)
		transactions[i], err = NewEmbeddedTransaction(testPublicKey(byte(i+30)), testVersion, transfer)
		require.NoError(t, err)
		require.Equal(t, CosignatureLength, transactions[i].Size())
	}
	aggregate, err := NewAggregateComplete(testHash(1), transactions)
	require.NoError(t, err)
	transaction, err := NewTransaction(testPublicKey(2), testVersion, 10, 20, aggregate)
	require.NoError(t, err)

	bytes := transaction.Bytes()
	payloadSizeOffset := HeaderLength + model.Hash256Length
	require.Equal(t, uint32(2*CosignatureLength), binary.LittleEndian.Uint32(bytes[payloadSizeOffset:]))
	binary.LittleEndian.PutUint32(bytes[payloadSizeOffset:], CosignatureLength)

	decoded, consumedBytes, err := TransactionFromBytes(bytes)
	require.NoError(t, err)
	assert.Equal(t, len(bytes), consumedBytes)
	assert.Equal(t, bytes, decoded.Bytes())

	decodedAggregate, isAggregate := decoded.Aggregate()
	require.True(t, isAggregate)
	require.Len(t, decodedAggregate.Transactions(), 1)
	assert.Equal(t, transactions[0], decodedAggregate.Transactions()[0])
	require.Len(t, decodedAggregate.Cosignatures(), 1)
	assert.Equal(t, transactions[1].Bytes(), decodedAggregate.Cosignatures()[0].Bytes())
}

func TestAggregate_PartialCosignature(t *testing.T) {
	bytes := append(testAggregateTransaction(t, 1).Bytes(), make([]byte, CosignatureLength-1)...)
	binary.LittleEndian.PutUint32(bytes, uint32(len(bytes)))

	_, _, err := TransactionFromBytes(bytes)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAggregate_EmbeddedAggregateKind(t *testing.T) {
	aggregate, err := NewAggregateComplete(testHash(1), testEmbeddedTransfers(t, 1))
	require.NoError(t, err)

	bytes := aggregate.Bytes()
	typeOffset := AggregateHeaderLength + model.PublicKeyLength + model.EntityVersionLength
	copy(bytes[typeOffset:], model.AggregateCompleteTransactionType.Bytes())

	_, _, err = BodyFromBytes(bytes, model.AggregateCompleteTransactionType)
	require.ErrorIs(t, err, ErrUnknownDiscriminant)
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewEmbeddedTransaction(testPublicKey(1), testVersion, aggregate)
	require.ErrorIs(t, err, ErrContractViolation)
}

func TestAggregate_WithCosignatures(t *testing.T) {
	transaction := testAggregateTransaction(t, 2).Signed(model.Signature{0xAA})
	cosignature := NewCosignature(testPublicKey(50), model.Signature{0xBB})

	cosigned, err := transaction.WithCosignatures(cosignature)
	require.NoError(t, err)
	assert.Equal(t, transaction.Signature(), cosigned.Signature())
	assert.Equal(t, transaction.Size()+CosignatureLength, cosigned.Size())

	aggregate, _ := cosigned.Aggregate()
	assert.Equal(t, []Cosignature{cosignature}, aggregate.Cosignatures())

	original, _ := transaction.Aggregate()
	assert.Empty(t, original.Cosignatures())
}

func TestAggregate_NilEmbeddedTransaction(t *testing.T) {
	_, err := NewAggregateComplete(testHash(1), []*EmbeddedTransaction{nil})
	require.ErrorIs(t, err, ErrContractViolation)
}
