package transaction

import (
	"math"

	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

const (
	// MaxNameLength is the largest payload that fits behind a 1 byte length prefix.
	MaxNameLength = math.MaxUint8

	// MaxPayloadLength is the largest payload that fits behind a 2 byte length prefix.
	MaxPayloadLength = math.MaxUint16

	// MaxCollectionLength is the largest number of elements a count prefixed collection can hold.
	MaxCollectionLength = math.MaxUint8
)

// region variable width readers ///////////////////////////////////////////////////////////////////////////////////////

func readBytes(marshalUtil *marshalutil.MarshalUtil, length int, name string) (bytes []byte, err error) {
	raw, err := marshalUtil.ReadBytes(length)
	if err != nil {
		err = xerrors.Errorf("failed to parse %s (%v): %w", name, err, ErrInsufficientBytes)
		return
	}

	return cloneBytes(raw), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region length prefixed payloads /////////////////////////////////////////////////////////////////////////////////////

// readName reads a payload behind a 1 byte length prefix.
func readName(marshalUtil *marshalutil.MarshalUtil, name string) ([]byte, error) {
	length, err := model.ReadUint8(marshalUtil, name+" length")
	if err != nil {
		return nil, err
	}

	return readBytes(marshalUtil, int(length), name)
}

// readPayload reads a payload behind a 2 byte little endian length prefix.
func readPayload(marshalUtil *marshalutil.MarshalUtil, name string) ([]byte, error) {
	length, err := model.ReadUint16(marshalUtil, name+" length")
	if err != nil {
		return nil, err
	}

	return readBytes(marshalUtil, int(length), name)
}

func writeName(marshalUtil *marshalutil.MarshalUtil, payload []byte) {
	marshalUtil.WriteByte(byte(len(payload))).WriteBytes(payload)
}

func writePayload(marshalUtil *marshalutil.MarshalUtil, payload []byte) {
	marshalUtil.WriteUint16(uint16(len(payload))).WriteBytes(payload)
}

func checkLength(length int, maxLength int, name string) error {
	if length > maxLength {
		return xerrors.Errorf("%s with %d bytes exceeds the maximum of %d: %w", name, length, maxLength, ErrContractViolation)
	}

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region count prefixed collections ///////////////////////////////////////////////////////////////////////////////////

// element is a self-delimiting part of a count prefixed collection.
type element interface {
	Size() int
	Bytes() []byte
}

func collectionFromMarshalUtil[T any](marshalUtil *marshalutil.MarshalUtil, parse func(*marshalutil.MarshalUtil) (T, error), name string) (elements []T, err error) {
	count, err := model.ReadUint8(marshalUtil, name+" count")
	if err != nil {
		return
	}

	elements = make([]T, count)
	for i := range elements {
		if elements[i], err = parse(marshalUtil); err != nil {
			err = xerrors.Errorf("failed to parse %s element %d: %w", name, i, err)
			return nil, err
		}
	}

	return
}

func writeCollection[T element](marshalUtil *marshalutil.MarshalUtil, elements []T) {
	marshalUtil.WriteByte(byte(len(elements)))
	for _, e := range elements {
		marshalUtil.WriteBytes(e.Bytes())
	}
}

func collectionSize[T element](elements []T) (size int) {
	size = marshalutil.Uint8Size
	for _, e := range elements {
		size += e.Size()
	}

	return
}

func newCollection[T any](elements []T, name string) ([]T, error) {
	if err := checkLength(len(elements), MaxCollectionLength, name); err != nil {
		return nil, err
	}

	return cloneSlice(elements), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

func cloneBytes(bytes []byte) []byte {
	return cloneSlice(bytes)
}

func cloneSlice[T any](source []T) []T {
	clone := make([]T, len(source))
	copy(clone, source)

	return clone
}
