package model

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPublicKey() (publicKey PublicKey) {
	for i := range publicKey {
		publicKey[i] = byte(i)
	}

	return
}

func TestAddressFromPublicKey(t *testing.T) {
	address := AddressFromPublicKey(MijinTestNetworkType, testPublicKey())

	assert.Equal(t, MijinTestNetworkType, address.NetworkType())
	assert.True(t, address.Valid())
	assert.Len(t, address.String(), AddressEncodedLength)
	assert.Equal(t, byte('S'), address.String()[0])

	parsed, err := AddressFromString(address.String())
	require.NoError(t, err)
	assert.Equal(t, address, parsed)

	parsedPretty, err := AddressFromString(address.Pretty())
	require.NoError(t, err)
	assert.Equal(t, address, parsedPretty)
}

func TestAddressFromString_Invalid(t *testing.T) {
	address := AddressFromPublicKey(MijinTestNetworkType, testPublicKey())
	corrupted := address
	corrupted[5] ^= 0xFF

	_, err := AddressFromString(corrupted.String())
	require.Error(t, err)

	_, err = AddressFromString("SHORT")
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAddress_Bytes(t *testing.T) {
	address := AddressFromPublicKey(MainNetworkType, testPublicKey())

	parsed, consumedBytes, err := AddressFromBytes(append(address.Bytes(), 0xFF))
	require.NoError(t, err)
	assert.Equal(t, AddressLength, consumedBytes)
	assert.Equal(t, address, parsed)

	_, _, err = AddressFromBytes(address.Bytes()[:AddressLength-1])
	require.ErrorIs(t, err, ErrInsufficientBytes)
}

func TestUnresolvedAddress(t *testing.T) {
	address := AddressFromPublicKey(MijinTestNetworkType, testPublicKey())

	plain := NewUnresolvedAddress(address)
	assert.False(t, plain.IsAlias())
	resolved, ok := plain.Address()
	require.True(t, ok)
	assert.Equal(t, address, resolved)
	_, ok = plain.NamespaceID()
	assert.False(t, ok)

	namespaceID := GenerateNamespaceID("alice", 0)
	alias := NewAliasUnresolvedAddress(MijinTestNetworkType, namespaceID)
	assert.True(t, alias.IsAlias())
	assert.Equal(t, byte(MijinTestNetworkType)|0x01, alias[0])
	aliasedNamespaceID, ok := alias.NamespaceID()
	require.True(t, ok)
	assert.Equal(t, namespaceID, aliasedNamespaceID)
	_, ok = alias.Address()
	assert.False(t, ok)

	decoded, err := UnresolvedAddressFromMarshalUtil(marshalutil.New(alias.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, alias, decoded)
}

func TestKeys_Hex(t *testing.T) {
	publicKey := testPublicKey()

	parsed, err := PublicKeyFromHex(publicKey.String())
	require.NoError(t, err)
	assert.Equal(t, publicKey, parsed)

	_, err = PublicKeyFromHex("0011")
	require.ErrorIs(t, err, ErrLengthMismatch)

	var hash Hash256
	copy(hash[:], publicKey[:])
	fromBase58, err := Hash256FromBase58(hash.Base58())
	require.NoError(t, err)
	assert.Equal(t, hash, fromBase58)

	_, _, err = SignatureFromBytes(make([]byte, SignatureLength-1))
	require.ErrorIs(t, err, ErrInsufficientBytes)
}
