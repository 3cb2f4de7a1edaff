package model

import (
	"bytes"
	"encoding/base32"
	"strings"

	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // the address format is defined over RIPEMD-160
	"golang.org/x/crypto/sha3"
	"golang.org/x/xerrors"
)

// region NetworkType //////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// MijinNetworkType represents a private network.
	MijinNetworkType NetworkType = 0x60

	// MainNetworkType represents the public main network.
	MainNetworkType NetworkType = 0x68

	// MijinTestNetworkType represents a private test network.
	MijinTestNetworkType NetworkType = 0x90

	// TestNetworkType represents the public test network.
	TestNetworkType NetworkType = 0x98
)

// NetworkTypeLength contains the amount of bytes that a marshaled version of the NetworkType contains.
const NetworkTypeLength = marshalutil.Uint8Size

// NetworkType identifies the network that an Address or a transaction belongs to.
type NetworkType uint8

var networkTypeNames = symbolTable[NetworkType]{
	MijinNetworkType:     "Mijin",
	MainNetworkType:      "MainNet",
	MijinTestNetworkType: "MijinTest",
	TestNetworkType:      "TestNet",
}

// NetworkTypeFromMarshalUtil unmarshals a NetworkType using a MarshalUtil (for easier unmarshaling).
func NetworkTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (NetworkType, error) {
	return enum8FromMarshalUtil(marshalUtil, networkTypeNames, "NetworkType")
}

// NetworkTypeFromString returns the NetworkType with the given name.
func NetworkTypeFromString(name string) (NetworkType, error) {
	for networkType, networkName := range networkTypeNames {
		if strings.EqualFold(networkName, name) {
			return networkType, nil
		}
	}

	return 0, xerrors.Errorf("unsupported NetworkType (%s): %w", name, ErrUnknownDiscriminant)
}

// Bytes returns a marshaled version of the NetworkType.
func (n NetworkType) Bytes() []byte {
	return []byte{byte(n)}
}

// String returns a human-readable version of the NetworkType.
func (n NetworkType) String() string {
	return networkTypeNames.name(n)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// AddressLength contains the amount of bytes that a marshaled version of the Address contains.
	AddressLength = 25

	// AddressEncodedLength is the length of the base32 representation of an Address.
	AddressEncodedLength = 40

	addressChecksumLength = 4
	addressHashLength     = 20
)

// Address is the raw 25 byte address of an account: network byte, RIPEMD-160 of the SHA3-256 of the public key and a
// 4 byte checksum.
type Address [AddressLength]byte

// EmptyAddress is the zero value of the Address.
var EmptyAddress Address

// AddressFromPublicKey derives the Address of the given public key on the given network.
func AddressFromPublicKey(networkType NetworkType, publicKey PublicKey) (address Address) {
	keyHash := sha3.Sum256(publicKey[:])
	ripemd := ripemd160.New()
	ripemd.Write(keyHash[:])

	address[0] = byte(networkType)
	copy(address[1:1+addressHashLength], ripemd.Sum(nil))
	checksum := sha3.Sum256(address[:1+addressHashLength])
	copy(address[1+addressHashLength:], checksum[:addressChecksumLength])

	return
}

// AddressFromBytes unmarshals an Address from a sequence of bytes.
func AddressFromBytes(bytes []byte) (address Address, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if address, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse Address from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// AddressFromString parses the plain or pretty (dash separated) base32 representation of an Address.
func AddressFromString(encoded string) (address Address, err error) {
	plain := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(encoded), "-", ""))
	if len(plain) != AddressEncodedLength {
		err = xerrors.Errorf("encoded Address must be %d characters long but was %d: %w", AddressEncodedLength, len(plain), ErrLengthMismatch)
		return
	}
	decoded, err := base32.StdEncoding.DecodeString(plain)
	if err != nil {
		err = xerrors.Errorf("error while decoding base32 encoded Address (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	copy(address[:], decoded)
	if !address.Valid() {
		err = xerrors.Errorf("Address %s has an invalid checksum: %w", plain, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// AddressFromMarshalUtil unmarshals an Address using a MarshalUtil (for easier unmarshaling).
func AddressFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (address Address, err error) {
	err = readFixedBytes(marshalUtil, address[:], "Address")
	return
}

// NetworkType returns the network encoded in the first byte of the Address.
func (a Address) NetworkType() NetworkType {
	return NetworkType(a[0])
}

// Valid returns true if the checksum of the Address matches its content.
func (a Address) Valid() bool {
	checksum := sha3.Sum256(a[:1+addressHashLength])

	return bytes.Equal(checksum[:addressChecksumLength], a[1+addressHashLength:])
}

// Bytes returns a marshaled version of the Address.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// String returns the plain base32 representation of the Address.
func (a Address) String() string {
	return base32.StdEncoding.EncodeToString(a[:])
}

// Pretty returns the base32 representation of the Address in dash separated groups of six characters.
func (a Address) Pretty() string {
	plain := a.String()
	var builder strings.Builder
	for i := 0; i < len(plain); i += 6 {
		if i > 0 {
			builder.WriteByte('-')
		}
		end := i + 6
		if end > len(plain) {
			end = len(plain)
		}
		builder.WriteString(plain[i:end])
	}

	return builder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnresolvedAddress ////////////////////////////////////////////////////////////////////////////////////////////

// UnresolvedAddressLength contains the amount of bytes that a marshaled version of the UnresolvedAddress contains.
const UnresolvedAddressLength = AddressLength

// aliasFlag marks an UnresolvedAddress whose content is a NamespaceID instead of an Address.
const aliasFlag = 0x01

// UnresolvedAddress is either an Address or an alias that the ledger resolves through a namespace. Aliases carry the
// network byte with the lowest bit set, followed by the little endian NamespaceID and zero padding.
type UnresolvedAddress [UnresolvedAddressLength]byte

// NewUnresolvedAddress wraps an Address.
func NewUnresolvedAddress(address Address) UnresolvedAddress {
	return UnresolvedAddress(address)
}

// NewAliasUnresolvedAddress creates an UnresolvedAddress that points to the Address linked to the given namespace.
func NewAliasUnresolvedAddress(networkType NetworkType, namespaceID NamespaceID) (unresolvedAddress UnresolvedAddress) {
	unresolvedAddress[0] = byte(networkType) | aliasFlag
	copy(unresolvedAddress[1:], namespaceID.Bytes())

	return
}

// UnresolvedAddressFromMarshalUtil unmarshals an UnresolvedAddress using a MarshalUtil (for easier unmarshaling).
func UnresolvedAddressFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (unresolvedAddress UnresolvedAddress, err error) {
	err = readFixedBytes(marshalUtil, unresolvedAddress[:], "UnresolvedAddress")
	return
}

// IsAlias returns true if the UnresolvedAddress references a namespace.
func (u UnresolvedAddress) IsAlias() bool {
	return u[0]&aliasFlag == aliasFlag
}

// Address returns the wrapped Address. The second return value is false for aliases.
func (u UnresolvedAddress) Address() (Address, bool) {
	if u.IsAlias() {
		return EmptyAddress, false
	}

	return Address(u), true
}

// NamespaceID returns the referenced namespace. The second return value is false if the UnresolvedAddress is not an
// alias.
func (u UnresolvedAddress) NamespaceID() (NamespaceID, bool) {
	if !u.IsAlias() {
		return 0, false
	}
	namespaceID, err := NamespaceIDFromMarshalUtil(marshalutil.New(u[1 : 1+NamespaceIDLength]))
	if err != nil {
		panic(err)
	}

	return namespaceID, true
}

// Bytes returns a marshaled version of the UnresolvedAddress.
func (u UnresolvedAddress) Bytes() []byte {
	return append([]byte(nil), u[:]...)
}

// String returns a human-readable version of the UnresolvedAddress.
func (u UnresolvedAddress) String() string {
	if namespaceID, isAlias := u.NamespaceID(); isAlias {
		return "alias(" + namespaceID.String() + ")"
	}

	return Address(u).String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
