package signer

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/transaction"
)

// MetadataDelta computes the value of a metadata transaction that replaces oldValue with newValue: the XOR of both
// values (the shorter one zero padded) and the signed change of the stored value size.
func MetadataDelta(oldValue, newValue []byte) (valueSizeDelta int16, value []byte, err error) {
	if len(oldValue) > transaction.MaxPayloadLength || len(newValue) > transaction.MaxPayloadLength {
		return 0, nil, xerrors.Errorf("metadata values are limited to %d bytes: %w", transaction.MaxPayloadLength, transaction.ErrContractViolation)
	}

	sizeDelta := len(newValue) - len(oldValue)
	if sizeDelta < math.MinInt16 || sizeDelta > math.MaxInt16 {
		return 0, nil, xerrors.Errorf("value size delta %d does not fit 2 bytes: %w", sizeDelta, transaction.ErrContractViolation)
	}

	value = make([]byte, len(oldValue))
	if len(newValue) > len(oldValue) {
		value = make([]byte, len(newValue))
	}
	copy(value, oldValue)
	for i, b := range newValue {
		value[i] ^= b
	}

	return int16(sizeDelta), value, nil
}

// ApplyMetadataDelta reconstructs the new value from the stored value and the delta value of a metadata transaction.
func ApplyMetadataDelta(oldValue []byte, valueSizeDelta int16, value []byte) ([]byte, error) {
	newLength := len(oldValue) + int(valueSizeDelta)
	if newLength < 0 || newLength > len(value) || len(oldValue) > len(value) {
		return nil, xerrors.Errorf("value size delta %d does not match a %d byte delta value: %w", valueSizeDelta, len(value), transaction.ErrLengthMismatch)
	}

	newValue := make([]byte, len(value))
	copy(newValue, oldValue)
	for i, b := range value {
		newValue[i] ^= b
	}

	return newValue[:newLength], nil
}
