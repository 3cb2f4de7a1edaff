package signer

import (
	"errors"

	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

var (
	// ErrSignerMismatch is returned if an Account signs a Transaction that names a different signer.
	ErrSignerMismatch = errors.New("signer mismatch")

	// ErrInvalidSignature is returned if a signature or cosignature does not verify.
	ErrInvalidSignature = errors.New("invalid signature")
)

// Sign returns a copy of the Transaction that carries the signature of the Account over its signing bytes.
func (a *Account) Sign(tx *transaction.Transaction, generationHash model.Hash256) (*transaction.Transaction, error) {
	if tx.Signer() != a.PublicKey() {
		return nil, xerrors.Errorf("transaction names signer %s instead of %s: %w", tx.Signer(), a.PublicKey(), ErrSignerMismatch)
	}

	return tx.Signed(a.sign(SigningBytes(tx, generationHash))), nil
}

// Cosign returns the Cosignature of the Account over the hash of an aggregate Transaction.
func (a *Account) Cosign(aggregateHash model.Hash256) transaction.Cosignature {
	return transaction.NewCosignature(a.PublicKey(), a.sign(aggregateHash.Bytes()))
}

// SignAggregateComplete signs an aggregate Transaction and attaches the cosignatures of all cosigners, so that it can
// be announced as a complete aggregate.
func (a *Account) SignAggregateComplete(tx *transaction.Transaction, generationHash model.Hash256, cosigners ...*Account) (*transaction.Transaction, error) {
	signed, err := a.Sign(tx, generationHash)
	if err != nil {
		return nil, err
	}

	aggregateHash := Hash(signed, generationHash)
	cosignatures := make([]transaction.Cosignature, len(cosigners))
	for i, cosigner := range cosigners {
		cosignatures[i] = cosigner.Cosign(aggregateHash)
	}

	return signed.WithCosignatures(cosignatures...)
}

// Verify checks the signature of a Transaction.
func Verify(tx *transaction.Transaction, generationHash model.Hash256) error {
	if !verify(tx.Signer(), SigningBytes(tx, generationHash), tx.Signature()) {
		return xerrors.Errorf("signature of %s does not verify: %w", tx.Type(), ErrInvalidSignature)
	}

	return nil
}

// VerifyCosignature checks a single Cosignature against the hash of the aggregate it belongs to.
func VerifyCosignature(aggregateHash model.Hash256, cosignature transaction.Cosignature) bool {
	return verify(cosignature.Signer, aggregateHash.Bytes(), cosignature.Signature)
}

// VerifyCosignatures checks the signature of an aggregate Transaction and every attached Cosignature.
func VerifyCosignatures(tx *transaction.Transaction, generationHash model.Hash256) error {
	aggregate, isAggregate := tx.Aggregate()
	if !isAggregate {
		return xerrors.Errorf("%s carries no cosignatures: %w", tx.Type(), transaction.ErrContractViolation)
	}
	if err := Verify(tx, generationHash); err != nil {
		return err
	}

	aggregateHash := Hash(tx, generationHash)
	for i, cosignature := range aggregate.Cosignatures() {
		if !VerifyCosignature(aggregateHash, cosignature) {
			return xerrors.Errorf("cosignature %d of %s does not verify: %w", i, cosignature.Signer, ErrInvalidSignature)
		}
	}

	return nil
}

// NewAggregateComplete embeds the given transactions into a complete aggregate body and computes its transactions
// hash.
func NewAggregateComplete(embedded ...*transaction.EmbeddedTransaction) (*transaction.Aggregate, error) {
	return transaction.NewAggregateComplete(TransactionsHash(embedded...), embedded)
}

// NewAggregateBonded embeds the given transactions into a bonded aggregate body and computes its transactions hash.
func NewAggregateBonded(embedded ...*transaction.EmbeddedTransaction) (*transaction.Aggregate, error) {
	return transaction.NewAggregateBonded(TransactionsHash(embedded...), embedded)
}
