package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/catapult-client/packages/model"
)

var testVersion = model.NewEntityVersion(model.MijinTestNetworkType, 1)

func testPublicKey(seed byte) (publicKey model.PublicKey) {
	for i := range publicKey {
		publicKey[i] = seed + byte(i)
	}

	return
}

func testHash(seed byte) (hash model.Hash256) {
	for i := range hash {
		hash[i] = seed ^ byte(i)
	}

	return
}

func testAddress(seed byte) model.Address {
	return model.AddressFromPublicKey(model.MijinTestNetworkType, testPublicKey(seed))
}

func testRecipient(seed byte) model.UnresolvedAddress {
	return model.NewUnresolvedAddress(testAddress(seed))
}

func testBodies(t *testing.T) []Body {
	transfer, err := NewTransfer(testRecipient(1), []byte("hello"), model.NewMosaic(0x1, 5), model.NewMosaic(0x2, 7))
	require.NoError(t, err)
	emptyTransfer, err := NewTransfer(model.NewAliasUnresolvedAddress(model.MijinTestNetworkType, model.GenerateNamespaceID("alice", 0)), nil)
	require.NoError(t, err)
	root, err := NewRootNamespaceRegistration("foo", 1000)
	require.NoError(t, err)
	child, err := NewChildNamespaceRegistration("bar", root.NamespaceID())
	require.NoError(t, err)
	multisig, err := NewMultisigAccountModification(-1, 2,
		NewCosignatoryModification(model.AddModification, testPublicKey(3)),
		NewCosignatoryModification(model.RemoveModification, testPublicKey(4)),
	)
	require.NoError(t, err)
	secretProof, err := NewSecretProof(model.Hash_160, testHash(5), testRecipient(6), []byte("proof"))
	require.NoError(t, err)
	addressRestriction, err := NewAccountAddressRestriction(model.BlockOutgoingAddress,
		NewRestrictionModification(model.AddModification, testRecipient(7)),
	)
	require.NoError(t, err)
	mosaicRestriction, err := NewAccountMosaicRestriction(model.AllowMosaic,
		NewRestrictionModification(model.AddModification, model.UnresolvedMosaicID(0x10)),
		NewRestrictionModification(model.RemoveModification, model.UnresolvedMosaicID(0x20)),
	)
	require.NoError(t, err)
	operationRestriction, err := NewAccountOperationRestriction(model.AllowOutgoingTransactionType,
		NewRestrictionModification(model.AddModification, model.TransferTransactionType),
	)
	require.NoError(t, err)
	accountMetadata, err := NewAccountMetadata(testPublicKey(8), 0xAB, 3, []byte("abc"))
	require.NoError(t, err)
	mosaicMetadata, err := NewMosaicMetadata(testPublicKey(9), 0xCD, 0x30, -2, []byte{0x01, 0x02})
	require.NoError(t, err)
	namespaceMetadata, err := NewNamespaceMetadata(testPublicKey(10), 0xEF, root.NamespaceID(), 0, []byte{})
	require.NoError(t, err)

	return []Body{
		transfer,
		emptyTransfer,
		root,
		child,
		NewAddressAlias(model.AliasLink, root.NamespaceID(), testAddress(11)),
		NewMosaicAlias(model.AliasUnlink, root.NamespaceID(), 0x40),
		NewOwnedMosaicDefinition(testAddress(12), 7, model.NewMosaicFlags(model.MosaicFlagTransferable), 6, 0),
		NewMosaicSupplyChange(0x50, model.MosaicSupplyIncrease, 1000),
		multisig,
		NewHashLock(model.NewMosaic(0x60, 10), 480, testHash(13)),
		NewSecretLock(model.NewMosaic(0x70, 20), 100, model.Sha3_256, testHash(14), testRecipient(15)),
		secretProof,
		addressRestriction,
		mosaicRestriction,
		operationRestriction,
		NewMosaicGlobalRestriction(0x80, 0, 0x90,
			MosaicGlobalRestrictionRule{Value: 0, Type: model.MosaicRestrictionNone},
			MosaicGlobalRestrictionRule{Value: 1, Type: model.MosaicRestrictionEqual},
		),
		NewMosaicAddressRestriction(0x80, 0x90, testRecipient(16), 0xFFFFFFFFFFFFFFFF, 1),
		accountMetadata,
		mosaicMetadata,
		namespaceMetadata,
		NewAccountLink(testPublicKey(17), model.Link),
	}
}

func TestBody_RoundTrip(t *testing.T) {
	for _, body := range testBodies(t) {
		t.Run(body.Type().String(), func(t *testing.T) {
			bytes := body.Bytes()
			require.Len(t, bytes, body.Size())

			decoded, consumedBytes, err := BodyFromBytes(append(bytes, 0xFF), body.Type())
			require.NoError(t, err)
			assert.Equal(t, body.Size(), consumedBytes)
			assert.Equal(t, body, decoded)
			assert.Equal(t, bytes, decoded.Bytes())

			embedded, err := NewEmbeddedTransaction(testPublicKey(20), testVersion, body)
			require.NoError(t, err)
			require.Len(t, embedded.Bytes(), embedded.Size())
			decodedEmbedded, consumedBytes, err := EmbeddedTransactionFromBytes(embedded.Bytes())
			require.NoError(t, err)
			assert.Equal(t, embedded.Size(), consumedBytes)
			assert.Equal(t, embedded, decodedEmbedded)

			transaction, err := NewTransaction(testPublicKey(21), testVersion, 100, 200, body)
			require.NoError(t, err)
			require.Len(t, transaction.Bytes(), transaction.Size())
			decodedTransaction, consumedBytes, err := TransactionFromBytes(transaction.Bytes())
			require.NoError(t, err)
			assert.Equal(t, transaction.Size(), consumedBytes)
			assert.Equal(t, transaction, decodedTransaction)
			assert.Equal(t, transaction.Bytes(), decodedTransaction.Bytes())
		})
	}
}

func TestBody_Truncated(t *testing.T) {
	for _, body := range testBodies(t) {
		bytes := body.Bytes()
		for length := 0; length < len(bytes); length++ {
			_, _, err := BodyFromBytes(bytes[:length], body.Type())
			require.ErrorIs(t, err, ErrInsufficientBytes, "%s truncated to %d bytes", body.Type(), length)
		}
	}
}

func TestBodyParsers_CoverEveryTransactionType(t *testing.T) {
	for _, transactionType := range model.TransactionTypes() {
		_, exists := bodyParsers[transactionType]
		assert.True(t, exists, "no parser for %s", transactionType)
	}

	_, _, err := BodyFromBytes([]byte{0x00}, model.TransactionType(0x1234))
	require.ErrorIs(t, err, ErrUnknownDiscriminant)
}

func TestBody_UnknownDiscriminant(t *testing.T) {
	link := NewAccountLink(testPublicKey(1), model.Link).Bytes()
	link[model.PublicKeyLength] = 0x07
	_, _, err := BodyFromBytes(link, model.AccountLinkTransactionType)
	require.ErrorIs(t, err, ErrUnknownDiscriminant)

	restriction, err := NewAccountOperationRestriction(model.BlockIncomingTransactionType,
		NewRestrictionModification(model.AddModification, model.HashLockTransactionType),
	)
	require.NoError(t, err)
	bytes := restriction.Bytes()
	bytes[0] = 0x03
	_, _, err = BodyFromBytes(bytes, model.AccountOperationRestrictionTransactionType)
	require.ErrorIs(t, err, ErrUnknownDiscriminant)

	bytes = restriction.Bytes()
	bytes[len(bytes)-2], bytes[len(bytes)-1] = 0x34, 0x12
	_, _, err = BodyFromBytes(bytes, model.AccountOperationRestrictionTransactionType)
	require.ErrorIs(t, err, ErrUnknownDiscriminant)
}

func TestCollections_ContractViolation(t *testing.T) {
	modifications := make([]CosignatoryModification, MaxCollectionLength+1)
	_, err := NewMultisigAccountModification(0, 0, modifications...)
	require.ErrorIs(t, err, ErrContractViolation)

	_, err = NewMultisigAccountModification(0, 0, modifications[:MaxCollectionLength]...)
	require.NoError(t, err)

	_, err = NewAccountMetadata(testPublicKey(1), 1, 0, make([]byte, MaxPayloadLength+1))
	require.ErrorIs(t, err, ErrContractViolation)

	_, err = NewSecretProof(model.Sha3_256, testHash(1), testRecipient(1), make([]byte, MaxPayloadLength+1))
	require.ErrorIs(t, err, ErrContractViolation)
}

func TestMultisigAccountModification_SignedDeltas(t *testing.T) {
	multisig, err := NewMultisigAccountModification(-1, -128)
	require.NoError(t, err)

	assert.Equal(t, []byte{0xFF, 0x80, 0x00}, multisig.Bytes())

	decoded, _, err := BodyFromBytes(multisig.Bytes(), model.MultisigAccountModificationTransactionType)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), decoded.(*MultisigAccountModification).MinRemovalDelta())
	assert.Equal(t, int8(-128), decoded.(*MultisigAccountModification).MinApprovalDelta())
}

func TestMetadata_NegativeValueSizeDelta(t *testing.T) {
	metadata, err := NewMosaicMetadata(testPublicKey(1), 1, 2, -300, []byte{0xAA})
	require.NoError(t, err)

	bytes := metadata.Bytes()
	offset := model.PublicKeyLength + model.ScopedMetadataKeyLength + model.UnresolvedMosaicIDLength
	assert.Equal(t, []byte{0xD4, 0xFE}, bytes[offset:offset+2])

	decoded, _, err := BodyFromBytes(bytes, model.MosaicMetadataTransactionType)
	require.NoError(t, err)
	assert.Equal(t, int16(-300), decoded.(*MosaicMetadata).ValueSizeDelta())
}
