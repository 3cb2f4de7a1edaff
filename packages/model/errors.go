package model

import (
	"errors"
)

var (
	// ErrInsufficientBytes is returned if the input ends before a field of fixed or prefixed length is complete.
	ErrInsufficientBytes = errors.New("insufficient bytes")

	// ErrUnknownDiscriminant is returned if a symbolic value has no entry in its table.
	ErrUnknownDiscriminant = errors.New("unrecognized discriminant")

	// ErrLengthMismatch is returned if a declared size or count disagrees with the bytes that were actually consumed.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrContractViolation is returned (or used as panic value) if a caller tries to build or read something that the
	// wire format can not represent.
	ErrContractViolation = errors.New("contract violation")
)
