package model

import (
	"encoding/binary"
	"regexp"
	"strings"

	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/crypto/sha3"
	"golang.org/x/xerrors"
)

// region NamespaceID //////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// NamespaceIDLength contains the amount of bytes that a marshaled version of the NamespaceID contains.
	NamespaceIDLength = marshalutil.Uint64Size

	// MaxNamespaceDepth is the number of levels a namespace path can have.
	MaxNamespaceDepth = 3
)

var namespaceNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// NamespaceID identifies a namespace. The highest bit is always set.
type NamespaceID uint64

// GenerateNamespaceID derives the NamespaceID of name below parentID. Root namespaces use a parentID of 0.
func GenerateNamespaceID(name string, parentID NamespaceID) NamespaceID {
	hash := sha3.Sum256(append(parentID.Bytes(), name...))

	return NamespaceID(binary.LittleEndian.Uint64(hash[:NamespaceIDLength]) | namespaceFlag)
}

// GenerateNamespacePath derives the NamespaceIDs of every level of a dot separated namespace path (e.g. "foo.bar").
func GenerateNamespacePath(path string) (namespaceIDs []NamespaceID, err error) {
	names := strings.Split(path, ".")
	if len(names) > MaxNamespaceDepth {
		err = xerrors.Errorf("namespace path %q has more than %d levels: %w", path, MaxNamespaceDepth, ErrContractViolation)
		return
	}

	var parentID NamespaceID
	for _, name := range names {
		if !namespaceNamePattern.MatchString(name) {
			err = xerrors.Errorf("invalid namespace name %q in %q: %w", name, path, ErrContractViolation)
			return
		}
		parentID = GenerateNamespaceID(name, parentID)
		namespaceIDs = append(namespaceIDs, parentID)
	}

	return
}

// NamespaceIDFromMarshalUtil unmarshals a NamespaceID using a MarshalUtil (for easier unmarshaling).
func NamespaceIDFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (NamespaceID, error) {
	value, err := ReadUint64(marshalUtil, "NamespaceID")
	return NamespaceID(value), err
}

// NamespaceIDFromString parses the 16 character hex representation of a NamespaceID.
func NamespaceIDFromString(hexString string) (NamespaceID, error) {
	value, err := parseHexID(hexString, "NamespaceID")
	return NamespaceID(value), err
}

// Bytes returns a marshaled version of the NamespaceID.
func (n NamespaceID) Bytes() []byte {
	return uint64Bytes(uint64(n))
}

// String returns the upper case hex representation of the NamespaceID.
func (n NamespaceID) String() string {
	return hexID(uint64(n))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NamespaceRegistrationType ////////////////////////////////////////////////////////////////////////////////////

const (
	// RootNamespace registers a top level namespace for a duration.
	RootNamespace NamespaceRegistrationType = iota

	// ChildNamespace registers a namespace below an existing parent.
	ChildNamespace
)

// NamespaceRegistrationTypeLength contains the amount of bytes that a marshaled version of the
// NamespaceRegistrationType contains.
const NamespaceRegistrationTypeLength = marshalutil.Uint8Size

// NamespaceRegistrationType is the discriminant of a namespace registration.
type NamespaceRegistrationType uint8

var namespaceRegistrationTypeNames = symbolTable[NamespaceRegistrationType]{
	RootNamespace:  "Root",
	ChildNamespace: "Child",
}

// NamespaceRegistrationTypeFromMarshalUtil unmarshals a NamespaceRegistrationType using a MarshalUtil.
func NamespaceRegistrationTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (NamespaceRegistrationType, error) {
	return enum8FromMarshalUtil(marshalUtil, namespaceRegistrationTypeNames, "NamespaceRegistrationType")
}

// Bytes returns a marshaled version of the NamespaceRegistrationType.
func (n NamespaceRegistrationType) Bytes() []byte {
	return []byte{byte(n)}
}

// String returns a human-readable version of the NamespaceRegistrationType.
func (n NamespaceRegistrationType) String() string {
	return namespaceRegistrationTypeNames.name(n)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AliasAction //////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// AliasUnlink removes the alias of a namespace.
	AliasUnlink AliasAction = iota

	// AliasLink sets the alias of a namespace.
	AliasLink
)

// AliasActionLength contains the amount of bytes that a marshaled version of the AliasAction contains.
const AliasActionLength = marshalutil.Uint8Size

// AliasAction tells if an alias is linked or unlinked.
type AliasAction uint8

var aliasActionNames = symbolTable[AliasAction]{
	AliasUnlink: "Unlink",
	AliasLink:   "Link",
}

// AliasActionFromMarshalUtil unmarshals an AliasAction using a MarshalUtil (for easier unmarshaling).
func AliasActionFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (AliasAction, error) {
	return enum8FromMarshalUtil(marshalUtil, aliasActionNames, "AliasAction")
}

// Bytes returns a marshaled version of the AliasAction.
func (a AliasAction) Bytes() []byte {
	return []byte{byte(a)}
}

// String returns a human-readable version of the AliasAction.
func (a AliasAction) String() string {
	return aliasActionNames.name(a)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
