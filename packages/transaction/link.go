package transaction

import (
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"golang.org/x/xerrors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// AccountLinkLength contains the amount of bytes that a marshaled version of the AccountLink contains.
const AccountLinkLength = model.PublicKeyLength + model.LinkActionLength

// AccountLink delegates the harvesting of an account to a remote key.
type AccountLink struct {
	remotePublicKey model.PublicKey
	linkAction      model.LinkAction
}

// NewAccountLink is the constructor for AccountLink bodies.
func NewAccountLink(remotePublicKey model.PublicKey, linkAction model.LinkAction) *AccountLink {
	return &AccountLink{
		remotePublicKey: remotePublicKey,
		linkAction:      linkAction,
	}
}

// AccountLinkFromMarshalUtil unmarshals an AccountLink using a MarshalUtil (for easier unmarshaling).
func AccountLinkFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (link *AccountLink, err error) {
	link = &AccountLink{}
	if link.remotePublicKey, err = model.PublicKeyFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse remote public key: %w", err)
	}
	if link.linkAction, err = model.LinkActionFromMarshalUtil(marshalUtil); err != nil {
		return nil, xerrors.Errorf("failed to parse link action: %w", err)
	}

	return link, nil
}

// RemotePublicKey returns the key that harvests on behalf of the account.
func (a *AccountLink) RemotePublicKey() model.PublicKey {
	return a.remotePublicKey
}

// LinkAction returns whether the link is created or removed.
func (a *AccountLink) LinkAction() model.LinkAction {
	return a.linkAction
}

// Type returns the TransactionType of the AccountLink.
func (a *AccountLink) Type() model.TransactionType {
	return model.AccountLinkTransactionType
}

// Size returns the amount of bytes of the marshaled AccountLink.
func (a *AccountLink) Size() int {
	return AccountLinkLength
}

// Bytes returns a marshaled version of the AccountLink.
func (a *AccountLink) Bytes() []byte {
	return marshalutil.New(AccountLinkLength).
		WriteBytes(a.remotePublicKey.Bytes()).
		WriteBytes(a.linkAction.Bytes()).
		Bytes()
}

// String returns a human-readable version of the AccountLink.
func (a *AccountLink) String() string {
	return stringify.Struct("AccountLink",
		stringify.StructField("remotePublicKey", a.remotePublicKey),
		stringify.StructField("linkAction", a.linkAction),
	)
}

// code contract (make sure the type implements all required methods)
var _ Body = &AccountLink{}
