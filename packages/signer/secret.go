package signer

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Hash_160 locks are defined over RIPEMD-160
	"golang.org/x/crypto/sha3"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

// SecretFromProof derives the secret of a secret lock from its proof. Hash_160 secrets occupy the first 20 bytes and
// are zero padded.
func SecretFromProof(algorithm model.LockHashAlgorithm, proof []byte) (secret model.Hash256, err error) {
	switch algorithm {
	case model.Sha3_256:
		return sha3.Sum256(proof), nil
	case model.Keccak_256:
		hasher := sha3.NewLegacyKeccak256()
		_, _ = hasher.Write(proof)
		copy(secret[:], hasher.Sum(nil))
	case model.Hash_160:
		inner := sha256.Sum256(proof)
		hasher := ripemd160.New()
		_, _ = hasher.Write(inner[:])
		copy(secret[:], hasher.Sum(nil))
	case model.Hash_256:
		inner := sha256.Sum256(proof)
		secret = sha256.Sum256(inner[:])
	default:
		err = xerrors.Errorf("no secret derivation for %s: %w", algorithm, transaction.ErrUnknownDiscriminant)
	}

	return
}

// NewSecretLockProof builds the SecretLock and SecretProof bodies that belong to the same proof.
func NewSecretLockProof(algorithm model.LockHashAlgorithm, proof []byte, mosaic model.Mosaic, duration model.BlockDuration, recipient model.UnresolvedAddress) (*transaction.SecretLock, *transaction.SecretProof, error) {
	secret, err := SecretFromProof(algorithm, proof)
	if err != nil {
		return nil, nil, err
	}

	secretProof, err := transaction.NewSecretProof(algorithm, secret, recipient, proof)
	if err != nil {
		return nil, nil, err
	}

	return transaction.NewSecretLock(mosaic, duration, algorithm, secret, recipient), secretProof, nil
}
