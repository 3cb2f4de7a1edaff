package model

import (
	"fmt"
	"strconv"

	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/xerrors"
)

// region fixed width readers //////////////////////////////////////////////////////////////////////////////////////////

// ReadUint8 reads a single byte and reports a short buffer as ErrInsufficientBytes naming the field.
func ReadUint8(marshalUtil *marshalutil.MarshalUtil, name string) (value uint8, err error) {
	if value, err = marshalUtil.ReadUint8(); err != nil {
		err = xerrors.Errorf("failed to parse %s (%v): %w", name, err, ErrInsufficientBytes)
	}
	return
}

// ReadUint16 reads a little endian uint16.
func ReadUint16(marshalUtil *marshalutil.MarshalUtil, name string) (value uint16, err error) {
	if value, err = marshalUtil.ReadUint16(); err != nil {
		err = xerrors.Errorf("failed to parse %s (%v): %w", name, err, ErrInsufficientBytes)
	}
	return
}

// ReadUint32 reads a little endian uint32.
func ReadUint32(marshalUtil *marshalutil.MarshalUtil, name string) (value uint32, err error) {
	if value, err = marshalUtil.ReadUint32(); err != nil {
		err = xerrors.Errorf("failed to parse %s (%v): %w", name, err, ErrInsufficientBytes)
	}
	return
}

// ReadUint64 reads a little endian uint64.
func ReadUint64(marshalUtil *marshalutil.MarshalUtil, name string) (value uint64, err error) {
	if value, err = marshalUtil.ReadUint64(); err != nil {
		err = xerrors.Errorf("failed to parse %s (%v): %w", name, err, ErrInsufficientBytes)
	}
	return
}

// readFixedBytes reads exactly len(dest) bytes into dest. The bytes are copied so that the result does not alias the
// buffer of the MarshalUtil.
func readFixedBytes(marshalUtil *marshalutil.MarshalUtil, dest []byte, name string) error {
	bytes, err := marshalUtil.ReadBytes(len(dest))
	if err != nil {
		return xerrors.Errorf("failed to parse %s (%v): %w", name, err, ErrInsufficientBytes)
	}
	copy(dest, bytes)

	return nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region symbolTable //////////////////////////////////////////////////////////////////////////////////////////////////

// symbolTable maps the raw values of an enumeration to their names. A raw value that is missing from the table is not
// part of the enumeration.
type symbolTable[T ~uint8 | ~uint16] map[T]string

func (s symbolTable[T]) name(value T) string {
	if name, exists := s[value]; exists {
		return name
	}

	return "Unknown(0x" + strconv.FormatUint(uint64(value), 16) + ")"
}

func (s symbolTable[T]) validate(value T, typeName string) error {
	if _, exists := s[value]; !exists {
		return xerrors.Errorf("unsupported %s (0x%X): %w", typeName, uint64(value), ErrUnknownDiscriminant)
	}

	return nil
}

func enum8FromMarshalUtil[T ~uint8](marshalUtil *marshalutil.MarshalUtil, table symbolTable[T], typeName string) (value T, err error) {
	raw, err := ReadUint8(marshalUtil, typeName)
	if err != nil {
		return
	}
	if err = table.validate(T(raw), typeName); err != nil {
		return
	}

	return T(raw), nil
}

func enum16FromMarshalUtil[T ~uint16](marshalUtil *marshalutil.MarshalUtil, table symbolTable[T], typeName string) (value T, err error) {
	raw, err := ReadUint16(marshalUtil, typeName)
	if err != nil {
		return
	}
	if err = table.validate(T(raw), typeName); err != nil {
		return
	}

	return T(raw), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

func uint64Bytes(value uint64) []byte {
	return marshalutil.New(marshalutil.Uint64Size).WriteUint64(value).Bytes()
}

func hexID(value uint64) string {
	return fmt.Sprintf("%016X", value)
}
