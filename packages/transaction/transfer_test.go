package transaction

import (
	"testing"

	"github.com/iotaledger/hive.go/byteutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/catapult-client/packages/model"
)

func TestTransfer_Scenario(t *testing.T) {
	recipient := testRecipient(1)
	transfer, err := NewTransfer(recipient, []byte("hi"), model.NewMosaic(0x1, 5))
	require.NoError(t, err)

	expected := byteutils.ConcatBytes(
		recipient.Bytes(),
		[]byte{0x02, 0x00}, []byte("hi"),
		[]byte{0x01},
		[]byte{0x01, 0, 0, 0, 0, 0, 0, 0},
		[]byte{0x05, 0, 0, 0, 0, 0, 0, 0},
	)
	assert.Equal(t, expected, transfer.Bytes())
	assert.Equal(t, len(expected), transfer.Size())

	decoded, consumedBytes, err := TransferFromBytes(transfer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(expected), consumedBytes)
	assert.Equal(t, recipient, decoded.Recipient())
	assert.Equal(t, []byte("hi"), decoded.Message())
	assert.Equal(t, []model.Mosaic{{ID: 0x1, Amount: 5}}, decoded.Mosaics())
}

func TestTransfer_ContractViolation(t *testing.T) {
	_, err := NewTransfer(testRecipient(1), make([]byte, MaxPayloadLength+1))
	require.ErrorIs(t, err, ErrContractViolation)

	_, err = NewTransfer(testRecipient(1), nil, make([]model.Mosaic, MaxCollectionLength+1)...)
	require.ErrorIs(t, err, ErrContractViolation)

	transfer, err := NewTransfer(testRecipient(1), make([]byte, MaxPayloadLength), make([]model.Mosaic, MaxCollectionLength)...)
	require.NoError(t, err)
	assert.Len(t, transfer.Bytes(), transfer.Size())
}

func TestTransfer_Immutable(t *testing.T) {
	message := []byte("hi")
	mosaics := []model.Mosaic{model.NewMosaic(0x1, 5)}
	transfer, err := NewTransfer(testRecipient(1), message, mosaics...)
	require.NoError(t, err)

	message[0] = 'X'
	mosaics[0].Amount = 6
	transfer.Message()[1] = 'Y'

	assert.Equal(t, []byte("hi"), transfer.Message())
	assert.Equal(t, model.Amount(5), transfer.Mosaics()[0].Amount)
}

func TestTransfer_DeclaredMessageLengthExceedsInput(t *testing.T) {
	transfer, err := NewTransfer(testRecipient(1), []byte("hi"))
	require.NoError(t, err)

	bytes := transfer.Bytes()
	bytes[model.UnresolvedAddressLength] = 0x10
	_, _, err = TransferFromBytes(bytes)
	require.ErrorIs(t, err, ErrInsufficientBytes)
}
