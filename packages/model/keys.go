package model

import (
	"encoding/hex"
	"strings"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"
)

// region PublicKey ////////////////////////////////////////////////////////////////////////////////////////////////////

// PublicKeyLength contains the amount of bytes that a marshaled version of the PublicKey contains.
const PublicKeyLength = 32

// PublicKey is the raw ed25519 public key of an account.
type PublicKey [PublicKeyLength]byte

// EmptyPublicKey is the zero value of the PublicKey.
var EmptyPublicKey PublicKey

// PublicKeyFromBytes unmarshals a PublicKey from a sequence of bytes.
func PublicKeyFromBytes(bytes []byte) (publicKey PublicKey, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if publicKey, err = PublicKeyFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse PublicKey from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// PublicKeyFromHex creates a PublicKey from a hex encoded string.
func PublicKeyFromHex(hexString string) (publicKey PublicKey, err error) {
	err = fixedFromHex(publicKey[:], hexString, "PublicKey")
	return
}

// PublicKeyFromMarshalUtil unmarshals a PublicKey using a MarshalUtil (for easier unmarshaling).
func PublicKeyFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (publicKey PublicKey, err error) {
	err = readFixedBytes(marshalUtil, publicKey[:], "PublicKey")
	return
}

// Bytes returns a marshaled version of the PublicKey.
func (p PublicKey) Bytes() []byte {
	return append([]byte(nil), p[:]...)
}

// Base58 returns a base58 encoded version of the PublicKey.
func (p PublicKey) Base58() string {
	return base58.Encode(p[:])
}

// String returns the upper case hex representation used by the node.
func (p PublicKey) String() string {
	return strings.ToUpper(hex.EncodeToString(p[:]))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Signature ////////////////////////////////////////////////////////////////////////////////////////////////////

// SignatureLength contains the amount of bytes that a marshaled version of the Signature contains.
const SignatureLength = 64

// Signature is a raw ed25519 signature.
type Signature [SignatureLength]byte

// EmptySignature is the zero value of the Signature. Unsigned transactions carry it.
var EmptySignature Signature

// SignatureFromBytes unmarshals a Signature from a sequence of bytes.
func SignatureFromBytes(bytes []byte) (signature Signature, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if signature, err = SignatureFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Signature from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// SignatureFromHex creates a Signature from a hex encoded string.
func SignatureFromHex(hexString string) (signature Signature, err error) {
	err = fixedFromHex(signature[:], hexString, "Signature")
	return
}

// SignatureFromMarshalUtil unmarshals a Signature using a MarshalUtil (for easier unmarshaling).
func SignatureFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (signature Signature, err error) {
	err = readFixedBytes(marshalUtil, signature[:], "Signature")
	return
}

// Bytes returns a marshaled version of the Signature.
func (s Signature) Bytes() []byte {
	return append([]byte(nil), s[:]...)
}

// String returns the upper case hex representation used by the node.
func (s Signature) String() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Hash256 //////////////////////////////////////////////////////////////////////////////////////////////////////

// Hash256Length contains the amount of bytes that a marshaled version of the Hash256 contains.
const Hash256Length = 32

// Hash256 is a 256 bit hash (transaction hashes, lock secrets, generation hashes).
type Hash256 [Hash256Length]byte

// EmptyHash256 is the zero value of the Hash256.
var EmptyHash256 Hash256

// Hash256FromBytes unmarshals a Hash256 from a sequence of bytes.
func Hash256FromBytes(bytes []byte) (hash Hash256, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if hash, err = Hash256FromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Hash256 from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// Hash256FromHex creates a Hash256 from a hex encoded string.
func Hash256FromHex(hexString string) (hash Hash256, err error) {
	err = fixedFromHex(hash[:], hexString, "Hash256")
	return
}

// Hash256FromBase58 creates a Hash256 from a base58 encoded string.
func Hash256FromBase58(base58String string) (hash Hash256, err error) {
	bytes, err := base58.Decode(base58String)
	if err != nil {
		err = xerrors.Errorf("error while decoding base58 encoded Hash256 (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}
	if hash, _, err = Hash256FromBytes(bytes); err != nil {
		err = xerrors.Errorf("failed to parse Hash256 from bytes: %w", err)
		return
	}

	return
}

// Hash256FromMarshalUtil unmarshals a Hash256 using a MarshalUtil (for easier unmarshaling).
func Hash256FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (hash Hash256, err error) {
	err = readFixedBytes(marshalUtil, hash[:], "Hash256")
	return
}

// Bytes returns a marshaled version of the Hash256.
func (h Hash256) Bytes() []byte {
	return append([]byte(nil), h[:]...)
}

// Base58 returns a base58 encoded version of the Hash256.
func (h Hash256) Base58() string {
	return base58.Encode(h[:])
}

// String returns the upper case hex representation used by the node.
func (h Hash256) String() string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Hash512 //////////////////////////////////////////////////////////////////////////////////////////////////////

// Hash512Length contains the amount of bytes that a marshaled version of the Hash512 contains.
const Hash512Length = 64

// Hash512 is a 512 bit hash.
type Hash512 [Hash512Length]byte

// Hash512FromMarshalUtil unmarshals a Hash512 using a MarshalUtil (for easier unmarshaling).
func Hash512FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (hash Hash512, err error) {
	err = readFixedBytes(marshalUtil, hash[:], "Hash512")
	return
}

// Hash512FromHex creates a Hash512 from a hex encoded string.
func Hash512FromHex(hexString string) (hash Hash512, err error) {
	err = fixedFromHex(hash[:], hexString, "Hash512")
	return
}

// Bytes returns a marshaled version of the Hash512.
func (h Hash512) Bytes() []byte {
	return append([]byte(nil), h[:]...)
}

// String returns the upper case hex representation used by the node.
func (h Hash512) String() string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

func fixedFromHex(dest []byte, hexString string, name string) error {
	bytes, err := hex.DecodeString(strings.TrimPrefix(hexString, "0x"))
	if err != nil {
		return xerrors.Errorf("error while decoding hex encoded %s (%v): %w", name, err, cerrors.ErrParseBytesFailed)
	}
	if len(bytes) != len(dest) {
		return xerrors.Errorf("%s must be %d bytes long but was %d: %w", name, len(dest), len(bytes), ErrLengthMismatch)
	}
	copy(dest, bytes)

	return nil
}
