package signer

import (
	"encoding/hex"
	"testing"

	"github.com/iotaledger/hive.go/byteutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

var (
	testGenerationHash = model.Hash256{0x57, 0xF7, 0xDA, 0x20}
	testVersion        = model.NewEntityVersion(model.MijinTestNetworkType, 1)
)

func testAccount(t *testing.T, seed byte) *Account {
	account, err := AccountFromSeed(model.MijinTestNetworkType, byteutils.ConcatBytes(make([]byte, 31), []byte{seed}))
	require.NoError(t, err)

	return account
}

func testTransfer(t *testing.T, signer *Account, amount model.Amount) *transaction.Transaction {
	transfer, err := transaction.NewTransfer(model.NewUnresolvedAddress(testAccount(t, 99).Address()), []byte("hi"), model.NewMosaic(0x1, amount))
	require.NoError(t, err)
	tx, err := transaction.NewTransaction(signer.PublicKey(), testVersion, 100, 200, transfer)
	require.NoError(t, err)

	return tx
}

func testEmbedded(t *testing.T, signer *Account, amount model.Amount) *transaction.EmbeddedTransaction {
	tx := testTransfer(t, signer, amount)
	embedded, err := transaction.NewEmbeddedTransaction(tx.Signer(), tx.Version(), tx.Body())
	require.NoError(t, err)

	return embedded
}

func TestAccount(t *testing.T) {
	account := testAccount(t, 1)
	restored, err := AccountFromHex(model.MijinTestNetworkType, "00000000000000000000000000000000000000000000000000000000000000"+"01")
	require.NoError(t, err)
	assert.Equal(t, account.PublicKey(), restored.PublicKey())
	assert.Equal(t, model.AddressFromPublicKey(model.MijinTestNetworkType, account.PublicKey()), account.Address())
	assert.NotEqual(t, account.PublicKey(), NewAccount(model.MijinTestNetworkType).PublicKey())

	_, err = AccountFromSeed(model.MijinTestNetworkType, make([]byte, 31))
	assert.Error(t, err)
	_, err = AccountFromHex(model.MijinTestNetworkType, "zz")
	assert.Error(t, err)
}

func TestSignVerify(t *testing.T) {
	account := testAccount(t, 1)
	signed, err := account.Sign(testTransfer(t, account, 5), testGenerationHash)
	require.NoError(t, err)
	require.NoError(t, Verify(signed, testGenerationHash))

	decoded, _, err := transaction.TransactionFromBytes(signed.Bytes())
	require.NoError(t, err)
	require.NoError(t, Verify(decoded, testGenerationHash))

	require.ErrorIs(t, Verify(signed, model.Hash256{0x01}), ErrInvalidSignature)

	tampered, _, err := transaction.TransactionFromBytes(testTransfer(t, account, 6).Signed(signed.Signature()).Bytes())
	require.NoError(t, err)
	require.ErrorIs(t, Verify(tampered, testGenerationHash), ErrInvalidSignature)

	_, err = testAccount(t, 2).Sign(testTransfer(t, account, 5), testGenerationHash)
	require.ErrorIs(t, err, ErrSignerMismatch)
}

func TestHash(t *testing.T) {
	account := testAccount(t, 1)
	signed, err := account.Sign(testTransfer(t, account, 5), testGenerationHash)
	require.NoError(t, err)

	signature := signed.Signature()
	expected := sha3.Sum256(byteutils.ConcatBytes(
		signature[:32],
		signed.Signer().Bytes(),
		testGenerationHash.Bytes(),
		signed.Bytes()[transaction.SigningDataOffset:],
	))
	assert.Equal(t, model.Hash256(expected), Hash(signed, testGenerationHash))
	assert.NotEqual(t, Hash(signed, testGenerationHash), Hash(signed, model.Hash256{}))
}

func TestTransactionsHash(t *testing.T) {
	embedded := []*transaction.EmbeddedTransaction{
		testEmbedded(t, testAccount(t, 1), 1),
		testEmbedded(t, testAccount(t, 2), 2),
		testEmbedded(t, testAccount(t, 3), 3),
	}
	leaves := make([]model.Hash256, len(embedded))
	for i := range embedded {
		leaves[i] = sha3.Sum256(embedded[i].Bytes())
		assert.Equal(t, leaves[i], EmbeddedHash(embedded[i]))
	}
	branch := func(left, right model.Hash256) model.Hash256 {
		return sha3.Sum256(byteutils.ConcatBytes(left.Bytes(), right.Bytes()))
	}

	assert.Equal(t, model.Hash256{}, TransactionsHash())
	assert.Equal(t, leaves[0], TransactionsHash(embedded[0]))
	assert.Equal(t, branch(leaves[0], leaves[1]), TransactionsHash(embedded[:2]...))
	assert.Equal(t, branch(branch(leaves[0], leaves[1]), branch(leaves[2], leaves[2])), TransactionsHash(embedded...))
}

func TestAggregate_SignAndCosign(t *testing.T) {
	initiator := testAccount(t, 1)
	cosigners := []*Account{testAccount(t, 2), testAccount(t, 3)}

	aggregate, err := NewAggregateComplete(
		testEmbedded(t, initiator, 1),
		testEmbedded(t, cosigners[0], 2),
		testEmbedded(t, cosigners[1], 3),
	)
	require.NoError(t, err)
	assert.Equal(t, TransactionsHash(aggregate.Transactions()...), aggregate.TransactionsHash())

	tx, err := transaction.NewTransaction(initiator.PublicKey(), testVersion, 100, 200, aggregate)
	require.NoError(t, err)
	complete, err := initiator.SignAggregateComplete(tx, testGenerationHash, cosigners...)
	require.NoError(t, err)

	decoded, _, err := transaction.TransactionFromBytes(complete.Bytes())
	require.NoError(t, err)
	require.NoError(t, VerifyCosignatures(decoded, testGenerationHash))

	signed, err := initiator.Sign(tx, testGenerationHash)
	require.NoError(t, err)
	assert.Equal(t, Hash(signed, testGenerationHash), Hash(decoded, testGenerationHash))
	assert.Len(t, VerifiableData(decoded), 52)

	forged, err := signed.WithCosignatures(transaction.NewCosignature(cosigners[0].PublicKey(), model.Signature{0x01}))
	require.NoError(t, err)
	require.ErrorIs(t, VerifyCosignatures(forged, testGenerationHash), ErrInvalidSignature)

	aggregateHash := Hash(signed, testGenerationHash)
	assert.True(t, VerifyCosignature(aggregateHash, cosigners[1].Cosign(aggregateHash)))
	assert.False(t, VerifyCosignature(model.Hash256{}, cosigners[1].Cosign(aggregateHash)))

	require.ErrorIs(t, VerifyCosignatures(testTransfer(t, initiator, 1), testGenerationHash), transaction.ErrContractViolation)
}

func TestSecretFromProof(t *testing.T) {
	for algorithm, expected := range map[model.LockHashAlgorithm]string{
		model.Sha3_256:   "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		model.Keccak_256: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		model.Hash_160:   "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb000000000000000000000000",
		model.Hash_256:   "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
	} {
		secret, err := SecretFromProof(algorithm, []byte{})
		require.NoError(t, err)
		assert.Equal(t, expected, hex.EncodeToString(secret.Bytes()), algorithm.String())
	}

	_, err := SecretFromProof(model.LockHashAlgorithm(4), nil)
	require.ErrorIs(t, err, transaction.ErrUnknownDiscriminant)
}

func TestNewSecretLockProof(t *testing.T) {
	recipient := model.NewUnresolvedAddress(testAccount(t, 1).Address())
	lock, proof, err := NewSecretLockProof(model.Sha3_256, []byte("proof"), model.NewMosaic(0x1, 10), 100, recipient)
	require.NoError(t, err)

	assert.Equal(t, lock.Secret(), proof.Secret())
	assert.Equal(t, model.Hash256(sha3.Sum256([]byte("proof"))), proof.Secret())
	assert.Equal(t, []byte("proof"), proof.Proof())
}

func TestMetadataDelta(t *testing.T) {
	for _, testCase := range []struct {
		oldValue []byte
		newValue []byte
	}{
		{nil, []byte("abc")},
		{[]byte("abc"), []byte("abd")},
		{[]byte("abcdef"), []byte("xy")},
		{[]byte("xy"), []byte("abcdef")},
		{[]byte("abc"), []byte{}},
	} {
		sizeDelta, value, err := MetadataDelta(testCase.oldValue, testCase.newValue)
		require.NoError(t, err)
		assert.Equal(t, int16(len(testCase.newValue)-len(testCase.oldValue)), sizeDelta)

		newValue, err := ApplyMetadataDelta(testCase.oldValue, sizeDelta, value)
		require.NoError(t, err)
		assert.Equal(t, string(testCase.newValue), string(newValue))
	}

	sizeDelta, value, err := MetadataDelta([]byte{0x0F, 0xF0}, []byte{0xFF})
	require.NoError(t, err)
	assert.Equal(t, int16(-1), sizeDelta)
	assert.Equal(t, []byte{0xF0, 0xF0}, value)

	_, err = ApplyMetadataDelta([]byte("abc"), 5, []byte("abc"))
	require.ErrorIs(t, err, transaction.ErrLengthMismatch)
}
