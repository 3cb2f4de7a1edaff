package signer

import (
	"encoding/hex"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// Account is a key pair bound to a network. It signs and cosigns transactions for its public key.
type Account struct {
	networkType model.NetworkType
	keyPair     ed25519.KeyPair
}

// NewAccount generates an Account with a random key pair.
func NewAccount(networkType model.NetworkType) *Account {
	return &Account{
		networkType: networkType,
		keyPair:     ed25519.GenerateKeyPair(),
	}
}

// AccountFromSeed restores the Account that belongs to the given 32 byte private key seed.
func AccountFromSeed(networkType model.NetworkType, seed []byte) (*Account, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, xerrors.Errorf("seed has %d bytes instead of %d: %w", len(seed), ed25519.SeedSize, cerrors.ErrParseBytesFailed)
	}

	privateKey := ed25519.PrivateKeyFromSeed(seed)

	return &Account{
		networkType: networkType,
		keyPair: ed25519.KeyPair{
			PrivateKey: privateKey,
			PublicKey:  privateKey.Public(),
		},
	}, nil
}

// AccountFromHex restores an Account from the hex encoding of its private key seed.
func AccountFromHex(networkType model.NetworkType, hexSeed string) (*Account, error) {
	seed, err := hex.DecodeString(hexSeed)
	if err != nil {
		return nil, xerrors.Errorf("failed to decode private key (%v): %w", err, cerrors.ErrParseBytesFailed)
	}

	return AccountFromSeed(networkType, seed)
}

// NetworkType returns the network the Account belongs to.
func (a *Account) NetworkType() model.NetworkType {
	return a.networkType
}

// PublicKey returns the public key of the Account.
func (a *Account) PublicKey() model.PublicKey {
	return model.PublicKey(a.keyPair.PublicKey)
}

// Address returns the address that is derived from the public key of the Account.
func (a *Account) Address() model.Address {
	return model.AddressFromPublicKey(a.networkType, a.PublicKey())
}

// sign signs arbitrary data with the private key of the Account.
func (a *Account) sign(data []byte) model.Signature {
	return model.Signature(a.keyPair.PrivateKey.Sign(data))
}

// String returns a human-readable version of the Account. The private key is never printed.
func (a *Account) String() string {
	return stringify.Struct("Account",
		stringify.StructField("networkType", a.networkType),
		stringify.StructField("publicKey", a.PublicKey()),
		stringify.StructField("address", a.Address()),
	)
}

func verify(publicKey model.PublicKey, data []byte, signature model.Signature) bool {
	return ed25519.PublicKey(publicKey).VerifySignature(data, ed25519.Signature(signature))
}
