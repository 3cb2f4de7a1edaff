package model

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMosaicID(t *testing.T) {
	owner := AddressFromPublicKey(MijinTestNetworkType, testPublicKey())

	mosaicID := GenerateMosaicID(owner, 42)
	assert.Equal(t, mosaicID, GenerateMosaicID(owner, 42))
	assert.NotEqual(t, mosaicID, GenerateMosaicID(owner, 43))
	assert.False(t, NewUnresolvedMosaicID(mosaicID).IsAlias())

	parsed, err := MosaicIDFromString(mosaicID.String())
	require.NoError(t, err)
	assert.Equal(t, mosaicID, parsed)
}

func TestGenerateNamespacePath(t *testing.T) {
	namespaceIDs, err := GenerateNamespacePath("foo.bar")
	require.NoError(t, err)
	require.Len(t, namespaceIDs, 2)
	assert.Equal(t, GenerateNamespaceID("foo", 0), namespaceIDs[0])
	assert.Equal(t, GenerateNamespaceID("bar", namespaceIDs[0]), namespaceIDs[1])
	assert.True(t, NewAliasUnresolvedMosaicID(namespaceIDs[1]).IsAlias())

	_, err = GenerateNamespacePath("a.b.c.d")
	require.ErrorIs(t, err, ErrContractViolation)

	_, err = GenerateNamespacePath("Upper")
	require.ErrorIs(t, err, ErrContractViolation)
}

func TestMosaic_RoundTrip(t *testing.T) {
	mosaic := NewMosaic(0x1, 5)
	require.Len(t, mosaic.Bytes(), mosaic.Size())

	decoded, err := MosaicFromMarshalUtil(marshalutil.New(mosaic.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, mosaic, decoded)

	_, err = MosaicFromMarshalUtil(marshalutil.New(mosaic.Bytes()[:10]))
	require.ErrorIs(t, err, ErrInsufficientBytes)
}
