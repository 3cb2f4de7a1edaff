package transaction

import (
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region HashLock /////////////////////////////////////////////////////////////////////////////////////////////////////

// HashLockLength contains the amount of bytes that a marshaled version of the HashLock contains.
const HashLockLength = model.MosaicLength + model.BlockDurationLength + model.Hash256Length

// HashLock locks a deposit until the aggregate bonded transaction with the given hash is completed.
type HashLock struct {
	mosaic   model.Mosaic
	duration model.BlockDuration
	hash     model.Hash256
}

// NewHashLock is the constructor for HashLock bodies.
func NewHashLock(mosaic model.Mosaic, duration model.BlockDuration, hash model.Hash256) *HashLock {
	return &HashLock{
		mosaic:   mosaic,
		duration: duration,
		hash:     hash,
	}
}

// HashLockFromMarshalUtil unmarshals a HashLock using a MarshalUtil (for easier unmarshaling).
func HashLockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (lock *HashLock, err error) {
	lock = &HashLock{}
	if lock.mosaic, err = model.MosaicFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse mosaic: %w", err)
	}
	if lock.duration, err = model.BlockDurationFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse duration: %w", err)
	}
	if lock.hash, err = model.Hash256FromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse hash: %w", err)
	}

	return lock, nil
}

// Mosaic returns the locked deposit.
func (h *HashLock) Mosaic() model.Mosaic {
	return h.mosaic
}

// Duration returns the number of blocks the lock is valid for.
func (h *HashLock) Duration() model.BlockDuration {
	return h.duration
}

// Hash returns the hash of the aggregate bonded transaction the lock is for.
func (h *HashLock) Hash() model.Hash256 {
	return h.hash
}

// Type returns the TransactionType of the HashLock.
func (h *HashLock) Type() model.TransactionType {
	return model.HashLockTransactionType
}

// Size returns the amount of bytes of the marshaled HashLock.
func (h *HashLock) Size() int {
	return HashLockLength
}

// Bytes returns a marshaled version of the HashLock.
func (h *HashLock) Bytes() []byte {
	return marshalutil.New(HashLockLength).
		WriteBytes(h.mosaic.Bytes()).
		WriteBytes(h.duration.Bytes()).
		WriteBytes(h.hash.Bytes()).
		Bytes()
}

// String returns a human-readable version of the HashLock.
func (h *HashLock) String() string {
	return stringify.Struct("HashLock",
		stringify.StructField("mosaic", h.mosaic),
		stringify.StructField("duration", h.duration),
		stringify.StructField("hash", h.hash),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &HashLock{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SecretLock ///////////////////////////////////////////////////////////////////////////////////////////////////

// SecretLockLength contains the amount of bytes that a marshaled version of the SecretLock contains.
const SecretLockLength = model.MosaicLength + model.BlockDurationLength + model.LockHashAlgorithmLength +
	model.Hash256Length + model.UnresolvedAddressLength

// SecretLock locks a deposit for the recipient until the proof of the secret is revealed.
type SecretLock struct {
	mosaic        model.Mosaic
	duration      model.BlockDuration
	hashAlgorithm model.LockHashAlgorithm
	secret        model.Hash256
	recipient     model.UnresolvedAddress
}

// NewSecretLock is the constructor for SecretLock bodies.
func NewSecretLock(mosaic model.Mosaic, duration model.BlockDuration, hashAlgorithm model.LockHashAlgorithm, secret model.Hash256, recipient model.UnresolvedAddress) *SecretLock {
	return &SecretLock{
		mosaic:        mosaic,
		duration:      duration,
		hashAlgorithm: hashAlgorithm,
		secret:        secret,
		recipient:     recipient,
	}
}

// SecretLockFromMarshalUtil unmarshals a SecretLock using a MarshalUtil (for easier unmarshaling).
func SecretLockFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (lock *SecretLock, err error) {
	lock = &SecretLock{}
	if lock.mosaic, err = model.MosaicFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse mosaic: %w", err)
	}
	if lock.duration, err = model.BlockDurationFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse duration: %w", err)
	}
	if lock.hashAlgorithm, err = model.LockHashAlgorithmFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse hash algorithm: %w", err)
	}
	if lock.secret, err = model.Hash256FromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse secret: %w", err)
	}
	if lock.recipient, err = model.UnresolvedAddressFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse recipient: %w", err)
	}

	return lock, nil
}

// Mosaic returns the locked deposit.
func (s *SecretLock) Mosaic() model.Mosaic {
	return s.mosaic
}

// Duration returns the number of blocks the lock is valid for.
func (s *SecretLock) Duration() model.BlockDuration {
	return s.duration
}

// HashAlgorithm returns the algorithm that derives the secret from the proof.
func (s *SecretLock) HashAlgorithm() model.LockHashAlgorithm {
	return s.hashAlgorithm
}

// Secret returns the hashed proof.
func (s *SecretLock) Secret() model.Hash256 {
	return s.secret
}

// Recipient returns the receiver of the deposit once the proof is revealed.
func (s *SecretLock) Recipient() model.UnresolvedAddress {
	return s.recipient
}

// Type returns the TransactionType of the SecretLock.
func (s *SecretLock) Type() model.TransactionType {
	return model.SecretLockTransactionType
}

// Size returns the amount of bytes of the marshaled SecretLock.
func (s *SecretLock) Size() int {
	return SecretLockLength
}

// Bytes returns a marshaled version of the SecretLock.
func (s *SecretLock) Bytes() []byte {
	return marshalutil.New(SecretLockLength).
		WriteBytes(s.mosaic.Bytes()).
		WriteBytes(s.duration.Bytes()).
		WriteBytes(s.hashAlgorithm.Bytes()).
		WriteBytes(s.secret.Bytes()).
		WriteBytes(s.recipient.Bytes()).
		Bytes()
}

// String returns a human-readable version of the SecretLock.
func (s *SecretLock) String() string {
	return stringify.Struct("SecretLock",
		stringify.StructField("mosaic", s.mosaic),
		stringify.StructField("duration", s.duration),
		stringify.StructField("hashAlgorithm", s.hashAlgorithm),
		stringify.StructField("secret", s.secret),
		stringify.StructField("recipient", s.recipient),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &SecretLock{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region SecretProof //////////////////////////////////////////////////////////////////////////////////////////////////

// SecretProof reveals the proof of a secret and releases the locked deposit to the recipient.
type SecretProof struct {
	hashAlgorithm model.LockHashAlgorithm
	secret        model.Hash256
	recipient     model.UnresolvedAddress
	proof         []byte
}

// NewSecretProof is the constructor for SecretProof bodies.
func NewSecretProof(hashAlgorithm model.LockHashAlgorithm, secret model.Hash256, recipient model.UnresolvedAddress, proof []byte) (*SecretProof, error) {
	if err := checkLength(len(proof), MaxPayloadLength, "proof"); err != nil {
		return nil, err
	}

	return &SecretProof{
		hashAlgorithm: hashAlgorithm,
		secret:        secret,
		recipient:     recipient,
		proof:         cloneBytes(proof),
	}, nil
}

// SecretProofFromMarshalUtil unmarshals a SecretProof using a MarshalUtil (for easier unmarshaling).
func SecretProofFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (proof *SecretProof, err error) {
	proof = &SecretProof{}
	if proof.hashAlgorithm, err = model.LockHashAlgorithmFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse hash algorithm: %w", err)
	}
	if proof.secret, err = model.Hash256FromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse secret: %w", err)
	}
	if proof.recipient, err = model.UnresolvedAddressFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse recipient: %w", err)
	}
	if proof.proof, err = readPayload(marshalUtil, "proof"); err != nil {
		return nil, err
	}

	return proof, nil
}

// HashAlgorithm returns the algorithm that derives the secret from the proof.
func (s *SecretProof) HashAlgorithm() model.LockHashAlgorithm {
	return s.hashAlgorithm
}

// Secret returns the secret of the lock that is unlocked.
func (s *SecretProof) Secret() model.Hash256 {
	return s.secret
}

// Recipient returns the receiver of the deposit.
func (s *SecretProof) Recipient() model.UnresolvedAddress {
	return s.recipient
}

// Proof returns a copy of the revealed proof.
func (s *SecretProof) Proof() []byte {
	return cloneBytes(s.proof)
}

// Type returns the TransactionType of the SecretProof.
func (s *SecretProof) Type() model.TransactionType {
	return model.SecretProofTransactionType
}

// Size returns the amount of bytes of the marshaled SecretProof.
func (s *SecretProof) Size() int {
	return model.LockHashAlgorithmLength + model.Hash256Length + model.UnresolvedAddressLength +
		marshalutil.Uint16Size + len(s.proof)
}

// Bytes returns a marshaled version of the SecretProof.
func (s *SecretProof) Bytes() []byte {
	marshalUtil := marshalutil.New(s.Size()).
		WriteBytes(s.hashAlgorithm.Bytes()).
		WriteBytes(s.secret.Bytes()).
		WriteBytes(s.recipient.Bytes())
	writePayload(marshalUtil, s.proof)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the SecretProof.
func (s *SecretProof) String() string {
	return stringify.Struct("SecretProof",
		stringify.StructField("hashAlgorithm", s.hashAlgorithm),
		stringify.StructField("secret", s.secret),
		stringify.StructField("recipient", s.recipient),
		stringify.StructField("proof", s.proof),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &SecretProof{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
