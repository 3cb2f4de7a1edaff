package jsonmodels

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region Mosaic ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Mosaic is the JSON model of a model.Mosaic.
type Mosaic struct {
	ID     string `json:"id"`
	Amount Uint64 `json:"amount"`
}

// NewMosaic returns a Mosaic from the given model.Mosaic.
func NewMosaic(mosaic model.Mosaic) Mosaic {
	return Mosaic{
		ID:     mosaic.ID.String(),
		Amount: NewUint64(uint64(mosaic.Amount)),
	}
}

// ToModel converts the Mosaic into its model representation.
func (m Mosaic) ToModel() (model.Mosaic, error) {
	id, err := model.MosaicIDFromString(m.ID)
	if err != nil {
		return model.Mosaic{}, errors.Wrap(err, "failed to parse mosaic id")
	}
	amount, err := m.Amount.Value()
	if err != nil {
		return model.Mosaic{}, errors.Wrap(err, "failed to parse mosaic amount")
	}

	return model.NewMosaic(model.UnresolvedMosaicID(id), model.Amount(amount)), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region AccountInfo //////////////////////////////////////////////////////////////////////////////////////////////////

// AccountInfo is the JSON model of the state of an account.
type AccountInfo struct {
	Account struct {
		Address         string   `json:"address"`
		AddressHeight   Uint64   `json:"addressHeight"`
		PublicKey       string   `json:"publicKey"`
		PublicKeyHeight Uint64   `json:"publicKeyHeight"`
		AccountType     int      `json:"accountType"`
		Importance      Uint64   `json:"importance"`
		Mosaics         []Mosaic `json:"mosaics"`
	} `json:"account"`
}

// Balance returns the amount of the given mosaic that the account holds.
func (a *AccountInfo) Balance(mosaicID model.MosaicID) (model.Amount, error) {
	for _, mosaic := range a.Account.Mosaics {
		parsed, err := mosaic.ToModel()
		if err != nil {
			return 0, err
		}
		if parsed.ID == model.NewUnresolvedMosaicID(mosaicID) {
			return parsed.Amount, nil
		}
	}

	return 0, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region MosaicInfo ///////////////////////////////////////////////////////////////////////////////////////////////////

// MosaicInfo is the JSON model of a mosaic definition and its supply.
type MosaicInfo struct {
	Mosaic struct {
		ID           string `json:"id"`
		Supply       Uint64 `json:"supply"`
		StartHeight  Uint64 `json:"startHeight"`
		OwnerAddress string `json:"ownerAddress"`
		Revision     int    `json:"revision"`
		Flags        int    `json:"flags"`
		Divisibility int    `json:"divisibility"`
		Duration     Uint64 `json:"duration"`
	} `json:"mosaic"`
}

// Flags returns the properties of the mosaic.
func (m *MosaicInfo) Flags() model.MosaicFlags {
	return model.MosaicFlags(m.Mosaic.Flags)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NamespaceInfo ////////////////////////////////////////////////////////////////////////////////////////////////

// NamespaceInfo is the JSON model of a namespace and its alias.
type NamespaceInfo struct {
	Meta struct {
		Active bool `json:"active"`
		Index  int  `json:"index"`
	} `json:"meta"`
	Namespace struct {
		RegistrationType int    `json:"registrationType"`
		Depth            int    `json:"depth"`
		Level0           string `json:"level0"`
		Level1           string `json:"level1,omitempty"`
		Level2           string `json:"level2,omitempty"`
		Alias            struct {
			Type     int    `json:"type"`
			MosaicID string `json:"mosaicId,omitempty"`
			Address  string `json:"address,omitempty"`
		} `json:"alias"`
		ParentID     string `json:"parentId"`
		OwnerAddress string `json:"ownerAddress"`
		StartHeight  Uint64 `json:"startHeight"`
		EndHeight    Uint64 `json:"endHeight"`
	} `json:"namespace"`
}

const (
	// NamespaceAliasNone marks a namespace without alias.
	NamespaceAliasNone = iota

	// NamespaceAliasMosaic marks a namespace that aliases a mosaic.
	NamespaceAliasMosaic

	// NamespaceAliasAddress marks a namespace that aliases an address.
	NamespaceAliasAddress
)

// NamespaceID returns the identifier of the deepest level of the namespace.
func (n *NamespaceInfo) NamespaceID() (model.NamespaceID, error) {
	levels := []string{n.Namespace.Level0, n.Namespace.Level1, n.Namespace.Level2}
	if n.Namespace.Depth < 1 || n.Namespace.Depth > len(levels) {
		return 0, errors.Errorf("namespace depth %d out of range", n.Namespace.Depth)
	}

	return model.NamespaceIDFromString(levels[n.Namespace.Depth-1])
}

// AliasedAddress returns the address the namespace links to.
func (n *NamespaceInfo) AliasedAddress() (model.Address, error) {
	if n.Namespace.Alias.Type != NamespaceAliasAddress {
		return model.Address{}, errors.Errorf("namespace alias of type %d is not an address", n.Namespace.Alias.Type)
	}

	return model.AddressFromString(n.Namespace.Alias.Address)
}

// AliasedMosaicID returns the mosaic the namespace links to.
func (n *NamespaceInfo) AliasedMosaicID() (model.MosaicID, error) {
	if n.Namespace.Alias.Type != NamespaceAliasMosaic {
		return 0, errors.Errorf("namespace alias of type %d is not a mosaic", n.Namespace.Alias.Type)
	}

	return model.MosaicIDFromString(n.Namespace.Alias.MosaicID)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
