package signer

import (
	"github.com/iotaledger/hive.go/byteutils"
	"golang.org/x/crypto/sha3"

	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

// aggregateVerifiableLength is the amount of bytes behind transaction.SigningDataOffset that the signature of an
// aggregate covers: the rest of the header plus the transactions hash. The embedded transactions are bound through
// the transactions hash and cosignatures are not signed at all.
const aggregateVerifiableLength = transaction.HeaderLength - transaction.SigningDataOffset + model.Hash256Length

// VerifiableData returns the part of a marshaled Transaction that its signature covers.
func VerifiableData(tx *transaction.Transaction) []byte {
	bytes := tx.Bytes()
	if tx.Type().IsAggregate() {
		return bytes[transaction.SigningDataOffset : transaction.SigningDataOffset+aggregateVerifiableLength]
	}

	return bytes[transaction.SigningDataOffset:]
}

// SigningBytes returns the bytes the signer of a Transaction signs. The generation hash binds the signature to one
// network.
func SigningBytes(tx *transaction.Transaction, generationHash model.Hash256) []byte {
	return byteutils.ConcatBytes(generationHash.Bytes(), VerifiableData(tx))
}

// Hash returns the identifier of a Transaction. It covers the first half of the signature so that the hash changes
// with the signature, but not with attached cosignatures.
func Hash(tx *transaction.Transaction, generationHash model.Hash256) (hash model.Hash256) {
	signature := tx.Signature()

	hasher := sha3.New256()
	_, _ = hasher.Write(signature[:model.SignatureLength/2])
	_, _ = hasher.Write(tx.Signer().Bytes())
	_, _ = hasher.Write(generationHash.Bytes())
	_, _ = hasher.Write(VerifiableData(tx))
	copy(hash[:], hasher.Sum(nil))

	return
}

// EmbeddedHash returns the merkle leaf of an EmbeddedTransaction.
func EmbeddedHash(embedded *transaction.EmbeddedTransaction) model.Hash256 {
	return sha3.Sum256(embedded.Bytes())
}

// TransactionsHash returns the merkle root over the hashes of the given embedded transactions. Levels with an odd
// number of nodes duplicate their last node. The root of an empty list is the zero hash.
func TransactionsHash(embedded ...*transaction.EmbeddedTransaction) (root model.Hash256) {
	if len(embedded) == 0 {
		return
	}

	level := make([]model.Hash256, len(embedded))
	for i, embeddedTransaction := range embedded {
		level[i] = EmbeddedHash(embeddedTransaction)
	}

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}

		nextLevel := make([]model.Hash256, len(level)/2)
		for i := range nextLevel {
			nextLevel[i] = sha3.Sum256(byteutils.ConcatBytes(level[2*i].Bytes(), level[2*i+1].Bytes()))
		}
		level = nextLevel
	}

	return level[0]
}
