package model

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUint_LittleEndian(t *testing.T) {
	marshalUtil := marshalutil.New([]byte{
		0x01,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	})

	value8, err := ReadUint8(marshalUtil, "uint8")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), value8)

	value16, err := ReadUint16(marshalUtil, "uint16")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), value16)

	value32, err := ReadUint32(marshalUtil, "uint32")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), value32)

	value64, err := ReadUint64(marshalUtil, "uint64")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), value64)
}

func TestReadUint_InsufficientBytes(t *testing.T) {
	_, err := ReadUint8(marshalutil.New([]byte{}), "flags")
	require.ErrorIs(t, err, ErrInsufficientBytes)
	assert.Contains(t, err.Error(), "flags")

	_, err = ReadUint16(marshalutil.New([]byte{0x01}), "size")
	require.ErrorIs(t, err, ErrInsufficientBytes)

	_, err = ReadUint32(marshalutil.New([]byte{0x01, 0x02, 0x03}), "payload size")
	require.ErrorIs(t, err, ErrInsufficientBytes)
	assert.Contains(t, err.Error(), "payload size")

	_, err = ReadUint64(marshalutil.New(make([]byte, 7)), "amount")
	require.ErrorIs(t, err, ErrInsufficientBytes)
}
