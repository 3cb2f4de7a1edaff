package model

import (
	"testing"

	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionType_Exhaustive(t *testing.T) {
	known := make(map[TransactionType]bool)
	for _, transactionType := range TransactionTypes() {
		known[transactionType] = true
	}
	require.Len(t, known, 21)

	for raw := 0; raw <= 0xFFFF; raw++ {
		bytes := marshalutil.New(TransactionTypeLength).WriteUint16(uint16(raw)).Bytes()
		decoded, err := TransactionTypeFromMarshalUtil(marshalutil.New(bytes))
		if known[TransactionType(raw)] {
			require.NoError(t, err)
			assert.Equal(t, TransactionType(raw), decoded)
			assert.Equal(t, bytes, decoded.Bytes())
			continue
		}

		require.ErrorIs(t, err, ErrUnknownDiscriminant)
	}
}

func TestTransactionType_String(t *testing.T) {
	assert.Equal(t, "Transfer", TransferTransactionType.String())
	assert.Equal(t, []byte{0x54, 0x41}, TransferTransactionType.Bytes())
	assert.Equal(t, "Unknown(0x1234)", TransactionType(0x1234).String())
	assert.True(t, AggregateBondedTransactionType.IsAggregate())
	assert.False(t, TransferTransactionType.IsAggregate())
}

func TestAccountRestrictionType_Aliases(t *testing.T) {
	assert.Equal(t, AccountRestrictionType(0x01), AllowIncomingAddress)
	assert.Equal(t, AccountRestrictionType(0x41), AllowOutgoingAddress)
	assert.Equal(t, AccountRestrictionType(0x81), BlockIncomingAddress)
	assert.Equal(t, AccountRestrictionType(0xC1), BlockOutgoingAddress)
	assert.Equal(t, AccountRestrictionType(0x82), BlockMosaic)
	assert.Equal(t, AccountRestrictionType(0xC4), BlockOutgoingTransactionType)

	assert.Equal(t, (AccountRestrictionOutgoing | AccountRestrictionBlock | AccountRestrictionAddress).Bytes(), BlockOutgoingAddress.Bytes())

	decoded, err := AccountRestrictionTypeFromMarshalUtil(marshalutil.New([]byte{0xC1}))
	require.NoError(t, err)
	assert.Equal(t, BlockOutgoingAddress, decoded)
	assert.True(t, decoded.IsBlock())
	assert.True(t, decoded.IsOutgoing())
	assert.Equal(t, AccountRestrictionAddress, decoded.Target())
}

func TestAccountRestrictionType_Exhaustive(t *testing.T) {
	valid := 0
	for raw := 0; raw <= 0xFF; raw++ {
		_, err := AccountRestrictionTypeFromMarshalUtil(marshalutil.New([]byte{byte(raw)}))
		if err == nil {
			valid++
			continue
		}
		require.ErrorIs(t, err, ErrUnknownDiscriminant)
	}

	assert.Equal(t, len(accountRestrictionTypeNames), valid)
}

func TestSmallEnums(t *testing.T) {
	for _, testCase := range []struct {
		name  string
		valid []byte
		parse func(*marshalutil.MarshalUtil) error
	}{
		{"LinkAction", []byte{0, 1}, func(m *marshalutil.MarshalUtil) error { _, err := LinkActionFromMarshalUtil(m); return err }},
		{"AliasAction", []byte{0, 1}, func(m *marshalutil.MarshalUtil) error { _, err := AliasActionFromMarshalUtil(m); return err }},
		{"ModificationAction", []byte{0, 1}, func(m *marshalutil.MarshalUtil) error { _, err := ModificationActionFromMarshalUtil(m); return err }},
		{"LockHashAlgorithm", []byte{0, 1, 2, 3}, func(m *marshalutil.MarshalUtil) error { _, err := LockHashAlgorithmFromMarshalUtil(m); return err }},
		{"MosaicSupplyChangeAction", []byte{0, 1}, func(m *marshalutil.MarshalUtil) error {
			_, err := MosaicSupplyChangeActionFromMarshalUtil(m)
			return err
		}},
		{"MosaicRestrictionType", []byte{0, 1, 2, 3, 4, 5, 6}, func(m *marshalutil.MarshalUtil) error {
			_, err := MosaicRestrictionTypeFromMarshalUtil(m)
			return err
		}},
		{"NamespaceRegistrationType", []byte{0, 1}, func(m *marshalutil.MarshalUtil) error {
			_, err := NamespaceRegistrationTypeFromMarshalUtil(m)
			return err
		}},
		{"NetworkType", []byte{0x60, 0x68, 0x90, 0x98}, func(m *marshalutil.MarshalUtil) error { _, err := NetworkTypeFromMarshalUtil(m); return err }},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			valid := make(map[byte]bool)
			for _, raw := range testCase.valid {
				valid[raw] = true
			}

			for raw := 0; raw <= 0xFF; raw++ {
				err := testCase.parse(marshalutil.New([]byte{byte(raw)}))
				if valid[byte(raw)] {
					require.NoError(t, err, "raw value 0x%X", raw)
					continue
				}
				require.ErrorIs(t, err, ErrUnknownDiscriminant, "raw value 0x%X", raw)
			}

			require.ErrorIs(t, testCase.parse(marshalutil.New([]byte{})), ErrInsufficientBytes)
		})
	}
}

func TestMosaicFlags(t *testing.T) {
	flags := NewMosaicFlags(MosaicFlagSupplyMutable, MosaicFlagRestrictable)
	assert.Equal(t, []byte{0x05}, flags.Bytes())
	assert.True(t, flags.SupplyMutable())
	assert.False(t, flags.Transferable())
	assert.True(t, flags.Restrictable())
	assert.Equal(t, []MosaicFlags{MosaicFlagSupplyMutable, MosaicFlagRestrictable}, flags.Flags())
	assert.Equal(t, "SupplyMutable|Restrictable", flags.String())
	assert.Equal(t, "None", MosaicFlagsNone.String())

	decoded, err := MosaicFlagsFromMarshalUtil(marshalutil.New([]byte{0x82}))
	require.NoError(t, err)
	assert.True(t, decoded.Transferable())
	assert.Equal(t, MosaicFlags(0x80), decoded.Unknown())
	assert.Equal(t, []byte{0x82}, decoded.Bytes())
}
