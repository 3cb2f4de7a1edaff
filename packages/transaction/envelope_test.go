package transaction

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/catapult-client/packages/model"
)

func testTransaction(t *testing.T) *Transaction {
	transfer, err := NewTransfer(testRecipient(1), []byte("hi"), model.NewMosaic(0x1, 5))
	require.NoError(t, err)
	transaction, err := NewTransaction(testPublicKey(2), testVersion, 100, 200, transfer)
	require.NoError(t, err)

	var signature model.Signature
	for i := range signature {
		signature[i] = byte(i)
	}

	return transaction.Signed(signature)
}

func TestTransaction_Layout(t *testing.T) {
	require.Equal(t, 120, HeaderLength)
	require.Equal(t, 100, SigningDataOffset)
	require.Equal(t, 36, EmbeddedHeaderLength)

	transaction := testTransaction(t)
	bytes := transaction.Bytes()

	assert.Equal(t, uint32(len(bytes)), binary.LittleEndian.Uint32(bytes[:4]))
	assert.Equal(t, transaction.Signature().Bytes(), bytes[4:68])
	assert.Equal(t, transaction.Signer().Bytes(), bytes[68:100])
	assert.Equal(t, []byte{0x01, 0x90}, bytes[100:102])
	assert.Equal(t, []byte{0x54, 0x41}, bytes[102:104])
	assert.Equal(t, uint64(100), binary.LittleEndian.Uint64(bytes[104:112]))
	assert.Equal(t, uint64(200), binary.LittleEndian.Uint64(bytes[112:120]))
	assert.Equal(t, transaction.Body().Bytes(), bytes[120:])
	assert.Equal(t, model.MijinTestNetworkType, transaction.NetworkType())
}

func TestTransaction_Signed(t *testing.T) {
	unsigned := testTransaction(t).Signed(model.EmptySignature)
	var signature model.Signature
	signature[0] = 0xAA

	signed := unsigned.Signed(signature)
	assert.Equal(t, model.EmptySignature, unsigned.Signature())
	assert.Equal(t, signature, signed.Signature())
	assert.Equal(t, unsigned.Bytes()[SigningDataOffset:], signed.Bytes()[SigningDataOffset:])
}

func TestTransaction_DecodeFailures(t *testing.T) {
	bytes := testTransaction(t).Bytes()

	t.Run("truncated", func(t *testing.T) {
		for _, length := range []int{0, 3, 4, 100, len(bytes) - 1} {
			_, _, err := TransactionFromBytes(bytes[:length])
			require.ErrorIs(t, err, ErrInsufficientBytes, "length %d", length)
		}
	})

	t.Run("size below header", func(t *testing.T) {
		corrupted := append([]byte(nil), bytes...)
		binary.LittleEndian.PutUint32(corrupted, HeaderLength-1)
		_, _, err := TransactionFromBytes(corrupted)
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("body shorter than declared", func(t *testing.T) {
		corrupted := append(append([]byte(nil), bytes...), 0x00)
		binary.LittleEndian.PutUint32(corrupted, uint32(len(corrupted)))
		_, _, err := TransactionFromBytes(corrupted)
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("body longer than declared", func(t *testing.T) {
		corrupted := append([]byte(nil), bytes...)
		binary.LittleEndian.PutUint32(corrupted, uint32(len(corrupted)-1))
		_, _, err := TransactionFromBytes(corrupted)
		require.ErrorIs(t, err, ErrInsufficientBytes)
	})

	t.Run("unknown transaction type", func(t *testing.T) {
		corrupted := append([]byte(nil), bytes...)
		corrupted[102], corrupted[103] = 0x34, 0x12
		_, _, err := TransactionFromBytes(corrupted)
		require.ErrorIs(t, err, ErrUnknownDiscriminant)
	})
}

func TestTransaction_ConsumesOnlyDeclaredSize(t *testing.T) {
	bytes := testTransaction(t).Bytes()

	transaction, consumedBytes, err := TransactionFromBytes(append(append([]byte(nil), bytes...), 0xDE, 0xAD))
	require.NoError(t, err)
	assert.Equal(t, len(bytes), consumedBytes)
	assert.Equal(t, bytes, transaction.Bytes())
}

func TestTransaction_ContractViolation(t *testing.T) {
	_, err := NewTransaction(testPublicKey(1), testVersion, 0, 0, nil)
	require.ErrorIs(t, err, ErrContractViolation)

	_, err = NewEmbeddedTransaction(testPublicKey(1), testVersion, nil)
	require.ErrorIs(t, err, ErrContractViolation)

	_, err = testTransaction(t).WithCosignatures(NewCosignature(testPublicKey(1), model.EmptySignature))
	require.ErrorIs(t, err, ErrContractViolation)
}
