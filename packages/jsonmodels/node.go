package jsonmodels

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// region NodeInfo /////////////////////////////////////////////////////////////////////////////////////////////////////

// NodeInfo is the JSON model of the identity of the node that serves the REST gateway.
type NodeInfo struct {
	Version                   int    `json:"version"`
	PublicKey                 string `json:"publicKey"`
	NetworkGenerationHashSeed string `json:"networkGenerationHashSeed"`
	Roles                     int    `json:"roles"`
	Port                      int    `json:"port"`
	NetworkIdentifier         int    `json:"networkIdentifier"`
	Host                      string `json:"host"`
	FriendlyName              string `json:"friendlyName"`
	NodePublicKey             string `json:"nodePublicKey,omitempty"`
}

// NetworkType returns the network the node belongs to.
func (n *NodeInfo) NetworkType() model.NetworkType {
	return model.NetworkType(n.NetworkIdentifier)
}

// GenerationHash parses the generation hash seed that binds signatures to the network of the node.
func (n *NodeInfo) GenerationHash() (model.Hash256, error) {
	generationHash, err := model.Hash256FromHex(n.NetworkGenerationHashSeed)
	if err != nil {
		return model.Hash256{}, errors.Wrap(err, "failed to parse network generation hash seed")
	}

	return generationHash, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NodeHealth ///////////////////////////////////////////////////////////////////////////////////////////////////

// NodeStatusUp is the status that a healthy component reports.
const NodeStatusUp = "up"

// NodeHealth is the JSON model of the health of the node.
type NodeHealth struct {
	Status struct {
		APINode string `json:"apiNode"`
		DB      string `json:"db"`
	} `json:"status"`
}

// Healthy returns true if the API node and its database are up.
func (n *NodeHealth) Healthy() bool {
	return n.Status.APINode == NodeStatusUp && n.Status.DB == NodeStatusUp
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ErrorResponse ////////////////////////////////////////////////////////////////////////////////////////////////

// ErrorResponse is the body that the REST gateway sends with every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region utils ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Uint64 is a uint64 that the REST gateway transmits as a decimal string to stay within the precision of JSON numbers.
type Uint64 string

// NewUint64 returns the decimal string form of the given value.
func NewUint64(value uint64) Uint64 {
	return Uint64(strconv.FormatUint(value, 10))
}

// Value parses the decimal string.
func (u Uint64) Value() (uint64, error) {
	value, err := strconv.ParseUint(string(u), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %q as uint64", string(u))
	}

	return value, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
