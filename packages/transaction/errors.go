package transaction

import (
	"github.com/iotaledger/catapult-client/packages/model"
)

var (
	// ErrInsufficientBytes is returned if the input ends before a field is complete.
	ErrInsufficientBytes = model.ErrInsufficientBytes

	// ErrUnknownDiscriminant is returned if a kind code or symbolic field has no mapped variant.
	ErrUnknownDiscriminant = model.ErrUnknownDiscriminant

	// ErrLengthMismatch is returned if a declared size or count disagrees with the bytes that were consumed.
	ErrLengthMismatch = model.ErrLengthMismatch

	// ErrContractViolation is returned by constructors (or used as panic value by accessors) if the caller asks for
	// something that the wire format can not represent.
	ErrContractViolation = model.ErrContractViolation
)

// PayloadError is returned if the payload of an aggregate can not be split into whole embedded transactions. It
// matches ErrLengthMismatch as well as the error that stopped the split.
type PayloadError struct {
	cause error
}

// Error returns a human-readable version of the PayloadError.
func (p *PayloadError) Error() string {
	return "failed to split aggregate payload into embedded transactions: " + p.cause.Error()
}

// Is makes errors.Is(err, ErrLengthMismatch) true for every PayloadError.
func (p *PayloadError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// Unwrap returns the error that stopped the split.
func (p *PayloadError) Unwrap() error {
	return p.cause
}
