package transaction

import (
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region NamespaceVariant /////////////////////////////////////////////////////////////////////////////////////////////

// NamespaceVariant is the part of a NamespaceRegistration that depends on its registration type. It is either a
// RootNamespace or a ChildNamespace.
type NamespaceVariant interface {
	RegistrationType() model.NamespaceRegistrationType
}

// RootNamespace is the NamespaceVariant of a root namespace, which is rented for a number of blocks.
type RootNamespace struct {
	Duration model.BlockDuration
}

// RegistrationType returns model.RootNamespace.
func (RootNamespace) RegistrationType() model.NamespaceRegistrationType {
	return model.RootNamespace
}

// ChildNamespace is the NamespaceVariant of a child namespace, which lives below its parent.
type ChildNamespace struct {
	ParentID model.NamespaceID
}

// RegistrationType returns model.ChildNamespace.
func (ChildNamespace) RegistrationType() model.NamespaceRegistrationType {
	return model.ChildNamespace
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NamespaceRegistration ////////////////////////////////////////////////////////////////////////////////////////

// NamespaceRegistration registers a root namespace (with a duration) or a child namespace (with a parent).
type NamespaceRegistration struct {
	variant     NamespaceVariant
	namespaceID model.NamespaceID
	name        []byte
}

// NewRootNamespaceRegistration creates the registration of a root namespace. The NamespaceID is derived from the name.
func NewRootNamespaceRegistration(name string, duration model.BlockDuration) (*NamespaceRegistration, error) {
	return newNamespaceRegistration(RootNamespace{Duration: duration}, model.GenerateNamespaceID(name, 0), name)
}

// NewChildNamespaceRegistration creates the registration of a child namespace. The NamespaceID is derived from the
// name and the parent.
func NewChildNamespaceRegistration(name string, parentID model.NamespaceID) (*NamespaceRegistration, error) {
	return newNamespaceRegistration(ChildNamespace{ParentID: parentID}, model.GenerateNamespaceID(name, parentID), name)
}

func newNamespaceRegistration(variant NamespaceVariant, namespaceID model.NamespaceID, name string) (*NamespaceRegistration, error) {
	if err := checkLength(len(name), MaxNameLength, "namespace name"); err != nil {
		return nil, err
	}

	return &NamespaceRegistration{
		variant:     variant,
		namespaceID: namespaceID,
		name:        []byte(name),
	}, nil
}

// NamespaceRegistrationFromBytes unmarshals a NamespaceRegistration from a sequence of bytes.
func NamespaceRegistrationFromBytes(bytes []byte) (registration *NamespaceRegistration, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if registration, err = NamespaceRegistrationFromMarshalUtil(marshalUtil); err != nil {
		err = xerrors.Errorf("failed to parse NamespaceRegistration from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// NamespaceRegistrationFromMarshalUtil unmarshals a NamespaceRegistration using a MarshalUtil (for easier
// unmarshaling).
func NamespaceRegistrationFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (registration *NamespaceRegistration, err error) {
	registrationType, err := model.NamespaceRegistrationTypeFromMarshalUtil(marshalUtil)
	if err != nil {
		return nil, xerrors.Errorf("failed to parse registration type: %w", err)
	}

	registration = &NamespaceRegistration{}
	switch registrationType {
	case model.RootNamespace:
		duration, durationErr := model.BlockDurationFromMarshalUtil(marshalUtil)
		if durationErr != nil {
			return nil, xerrors.Errorf("failed to parse duration: %w", durationErr)
		}
		registration.variant = RootNamespace{Duration: duration}
	case model.ChildNamespace:
		parentID, parentErr := model.NamespaceIDFromMarshalUtil(marshalUtil)
		if parentErr != nil {
			return nil, xerrors.Errorf("failed to parse parent id: %w", parentErr)
		}
		registration.variant = ChildNamespace{ParentID: parentID}
	default:
		return nil, xerrors.Errorf("unsupported NamespaceRegistrationType (%s): %w", registrationType, ErrUnknownDiscriminant)
	}

	if registration.namespaceID, err = model.NamespaceIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse namespace id: %w", err)
	}
	if registration.name, err = readName(marshalUtil, "namespace name"); err != nil {
		return nil, err
	}

	return registration, nil
}

// RegistrationType returns the discriminant that selects the variant of the NamespaceRegistration.
func (n *NamespaceRegistration) RegistrationType() model.NamespaceRegistrationType {
	return n.variant.RegistrationType()
}

// Variant returns the RootNamespace or ChildNamespace part of the NamespaceRegistration.
func (n *NamespaceRegistration) Variant() NamespaceVariant {
	return n.variant
}

// Duration returns the rental duration of a root namespace. It panics if the NamespaceRegistration registers a child.
func (n *NamespaceRegistration) Duration() model.BlockDuration {
	root, isRoot := n.variant.(RootNamespace)
	if !isRoot {
		panic(xerrors.Errorf("duration of a %s registration: %w", n.RegistrationType(), ErrContractViolation))
	}

	return root.Duration
}

// ParentID returns the parent of a child namespace. It panics if the NamespaceRegistration registers a root.
func (n *NamespaceRegistration) ParentID() model.NamespaceID {
	child, isChild := n.variant.(ChildNamespace)
	if !isChild {
		panic(xerrors.Errorf("parent id of a %s registration: %w", n.RegistrationType(), ErrContractViolation))
	}

	return child.ParentID
}

// NamespaceID returns the identifier of the registered namespace.
func (n *NamespaceRegistration) NamespaceID() model.NamespaceID {
	return n.namespaceID
}

// Name returns the name of the registered namespace.
func (n *NamespaceRegistration) Name() string {
	return string(n.name)
}

// Type returns the TransactionType of the NamespaceRegistration.
func (n *NamespaceRegistration) Type() model.TransactionType {
	return model.NamespaceRegistrationTransactionType
}

// Size returns the amount of bytes of the marshaled NamespaceRegistration.
func (n *NamespaceRegistration) Size() int {
	// the duration and the parent id share the same 8 bytes
	return model.NamespaceRegistrationTypeLength + model.BlockDurationLength + model.NamespaceIDLength +
		marshalutil.Uint8Size + len(n.name)
}

// Bytes returns a marshaled version of the NamespaceRegistration.
func (n *NamespaceRegistration) Bytes() []byte {
	marshalUtil := marshalutil.New(n.Size()).WriteBytes(n.RegistrationType().Bytes())
	switch variant := n.variant.(type) {
	case RootNamespace:
		marshalUtil.WriteBytes(variant.Duration.Bytes())
	case ChildNamespace:
		marshalUtil.WriteBytes(variant.ParentID.Bytes())
	}
	marshalUtil.WriteBytes(n.namespaceID.Bytes())
	writeName(marshalUtil, n.name)

	return marshalUtil.Bytes()
}

// String returns a human-readable version of the NamespaceRegistration.
func (n *NamespaceRegistration) String() string {
	structBuilder := stringify.StructBuilder("NamespaceRegistration",
		stringify.StructField("registrationType", n.RegistrationType()),
	)
	switch variant := n.variant.(type) {
	case RootNamespace:
		structBuilder.AddField(stringify.StructField("duration", variant.Duration))
	case ChildNamespace:
		structBuilder.AddField(stringify.StructField("parentID", variant.ParentID))
	}
	structBuilder.AddField(stringify.StructField("namespaceID", n.namespaceID))
	structBuilder.AddField(stringify.StructField("name", string(n.name)))

	return structBuilder.String()
}

// code contract (make sure the type implements all required methods)
var _ Body = &NamespaceRegistration{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AddressAlias /////////////////////////////////////////////////////////////////////////////////////////////////

// AddressAliasLength contains the amount of bytes that a marshaled version of the AddressAlias contains.
const AddressAliasLength = model.AliasActionLength + model.NamespaceIDLength + model.AddressLength

// AddressAlias links a namespace to an address or removes that link.
type AddressAlias struct {
	aliasAction model.AliasAction
	namespaceID model.NamespaceID
	address     model.Address
}

// NewAddressAlias is the constructor for AddressAlias bodies.
func NewAddressAlias(aliasAction model.AliasAction, namespaceID model.NamespaceID, address model.Address) *AddressAlias {
	return &AddressAlias{
		aliasAction: aliasAction,
		namespaceID: namespaceID,
		address:     address,
	}
}

// AddressAliasFromMarshalUtil unmarshals an AddressAlias using a MarshalUtil (for easier unmarshaling).
func AddressAliasFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (alias *AddressAlias, err error) {
	alias = &AddressAlias{}
	if alias.aliasAction, err = model.AliasActionFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse alias action: %w", err)
	}
	if alias.namespaceID, err = model.NamespaceIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse namespace id: %w", err)
	}
	if alias.address, err = model.AddressFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse address: %w", err)
	}

	return alias, nil
}

// AliasAction returns whether the link is created or removed.
func (a *AddressAlias) AliasAction() model.AliasAction {
	return a.aliasAction
}

// NamespaceID returns the aliasing namespace.
func (a *AddressAlias) NamespaceID() model.NamespaceID {
	return a.namespaceID
}

// Address returns the aliased address.
func (a *AddressAlias) Address() model.Address {
	return a.address
}

// Type returns the TransactionType of the AddressAlias.
func (a *AddressAlias) Type() model.TransactionType {
	return model.AddressAliasTransactionType
}

// Size returns the amount of bytes of the marshaled AddressAlias.
func (a *AddressAlias) Size() int {
	return AddressAliasLength
}

// Bytes returns a marshaled version of the AddressAlias.
func (a *AddressAlias) Bytes() []byte {
	return marshalutil.New(AddressAliasLength).
		WriteBytes(a.aliasAction.Bytes()).
		WriteBytes(a.namespaceID.Bytes()).
		WriteBytes(a.address.Bytes()).
		Bytes()
}

// String returns a human-readable version of the AddressAlias.
func (a *AddressAlias) String() string {
	return stringify.Struct("AddressAlias",
		stringify.StructField("aliasAction", a.aliasAction),
		stringify.StructField("namespaceID", a.namespaceID),
		stringify.StructField("address", a.address),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &AddressAlias{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicAlias //////////////////////////////////////////////////////////////////////////////////////////////////

// MosaicAliasLength contains the amount of bytes that a marshaled version of the MosaicAlias contains.
const MosaicAliasLength = model.AliasActionLength + model.NamespaceIDLength + model.MosaicIDLength

// MosaicAlias links a namespace to a mosaic or removes that link.
type MosaicAlias struct {
	aliasAction model.AliasAction
	namespaceID model.NamespaceID
	mosaicID    model.MosaicID
}

// NewMosaicAlias is the constructor for MosaicAlias bodies.
func NewMosaicAlias(aliasAction model.AliasAction, namespaceID model.NamespaceID, mosaicID model.MosaicID) *MosaicAlias {
	return &MosaicAlias{
		aliasAction: aliasAction,
		namespaceID: namespaceID,
		mosaicID:    mosaicID,
	}
}

// MosaicAliasFromMarshalUtil unmarshals a MosaicAlias using a MarshalUtil (for easier unmarshaling).
func MosaicAliasFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (alias *MosaicAlias, err error) {
	alias = &MosaicAlias{}
	if alias.aliasAction, err = model.AliasActionFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse alias action: %w", err)
	}
	if alias.namespaceID, err = model.NamespaceIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse namespace id: %w", err)
	}
	if alias.mosaicID, err = model.MosaicIDFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse mosaic id: %w", err)
	}

	return alias, nil
}

// AliasAction returns whether the link is created or removed.
func (m *MosaicAlias) AliasAction() model.AliasAction {
	return m.aliasAction
}

// NamespaceID returns the aliasing namespace.
func (m *MosaicAlias) NamespaceID() model.NamespaceID {
	return m.namespaceID
}

// MosaicID returns the aliased mosaic.
func (m *MosaicAlias) MosaicID() model.MosaicID {
	return m.mosaicID
}

// Type returns the TransactionType of the MosaicAlias.
func (m *MosaicAlias) Type() model.TransactionType {
	return model.MosaicAliasTransactionType
}

// Size returns the amount of bytes of the marshaled MosaicAlias.
func (m *MosaicAlias) Size() int {
	return MosaicAliasLength
}

// Bytes returns a marshaled version of the MosaicAlias.
func (m *MosaicAlias) Bytes() []byte {
	return marshalutil.New(MosaicAliasLength).
		WriteBytes(m.aliasAction.Bytes()).
		WriteBytes(m.namespaceID.Bytes()).
		WriteBytes(m.mosaicID.Bytes()).
		Bytes()
}

// String returns a human-readable version of the MosaicAlias.
func (m *MosaicAlias) String() string {
	return stringify.Struct("MosaicAlias",
		stringify.StructField("aliasAction", m.aliasAction),
		stringify.StructField("namespaceID", m.namespaceID),
		stringify.StructField("mosaicID", m.mosaicID),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &MosaicAlias{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
