package jsonmodels

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/catapult-client/packages/model"
)

// ChainHeight is the JSON model of the current height of the chain.
type ChainHeight struct {
	Height Uint64 `json:"height"`
}

// BlockInfo is the JSON model of a block and its metadata.
type BlockInfo struct {
	Meta struct {
		Hash            string `json:"hash"`
		GenerationHash  string `json:"generationHash"`
		TotalFee        Uint64 `json:"totalFee"`
		NumTransactions int    `json:"numTransactions"`
	} `json:"meta"`
	Block Block `json:"block"`
}

// Block is the JSON model of a block header.
type Block struct {
	Signature         string `json:"signature"`
	SignerPublicKey   string `json:"signerPublicKey"`
	Version           int    `json:"version"`
	Network           int    `json:"network"`
	Type              int    `json:"type"`
	Height            Uint64 `json:"height"`
	Timestamp         Uint64 `json:"timestamp"`
	Difficulty        Uint64 `json:"difficulty"`
	PreviousBlockHash string `json:"previousBlockHash"`
	TransactionsHash  string `json:"transactionsHash"`
	ReceiptsHash      string `json:"receiptsHash,omitempty"`
	StateHash         string `json:"stateHash,omitempty"`
	BeneficiaryKey    string `json:"beneficiaryPublicKey,omitempty"`
	FeeMultiplier     int    `json:"feeMultiplier"`
}

// NetworkName is the JSON model of the name of the network.
type NetworkName struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NetworkType returns the NetworkType that belongs to the name of the network.
func (n *NetworkName) NetworkType() (model.NetworkType, error) {
	return model.NetworkTypeFromString(n.Name)
}

// NetworkProperties is the JSON model of the configuration of the network that transactions depend on.
type NetworkProperties struct {
	Network struct {
		Identifier         string `json:"identifier"`
		GenerationHashSeed string `json:"generationHashSeed"`
		EpochAdjustment    string `json:"epochAdjustment"`
	} `json:"network"`
	Chain struct {
		CurrencyMosaicID       string `json:"currencyMosaicId"`
		HarvestingMosaicID     string `json:"harvestingMosaicId"`
		BlockGenerationTarget  string `json:"blockGenerationTargetTime"`
		MaxTransactionLifetime string `json:"maxTransactionLifetime"`
	} `json:"chain"`
}

// GenerationHash parses the generation hash seed of the network.
func (n *NetworkProperties) GenerationHash() (model.Hash256, error) {
	generationHash, err := model.Hash256FromHex(n.Network.GenerationHashSeed)
	if err != nil {
		return model.Hash256{}, errors.Wrap(err, "failed to parse generation hash seed")
	}

	return generationHash, nil
}

// Epoch returns the time that network timestamps count from. The gateway sends the adjustment as "<seconds>s".
func (n *NetworkProperties) Epoch() (time.Time, error) {
	adjustment, err := parseDuration(n.Network.EpochAdjustment)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse epoch adjustment")
	}

	return time.Unix(0, 0).Add(adjustment).UTC(), nil
}

// MaxTransactionLifetime returns how far in the future a deadline may lie.
func (n *NetworkProperties) MaxTransactionLifetime() (time.Duration, error) {
	lifetime, err := parseDuration(n.Chain.MaxTransactionLifetime)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse max transaction lifetime")
	}

	return lifetime, nil
}

// CurrencyMosaicID parses the identifier of the mosaic that fees are paid with.
func (n *NetworkProperties) CurrencyMosaicID() (model.MosaicID, error) {
	return model.MosaicIDFromString(stripDigitSeparators(n.Chain.CurrencyMosaicID))
}

// parseDuration reads the duration notation of the node configuration, e.g. "1615853185s" or "24h".
func parseDuration(value string) (time.Duration, error) {
	return time.ParseDuration(stripDigitSeparators(value))
}

func stripDigitSeparators(value string) string {
	return strings.ReplaceAll(value, "'", "")
}
