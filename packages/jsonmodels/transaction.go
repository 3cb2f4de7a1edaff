package jsonmodels

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

// region TransactionPayload ///////////////////////////////////////////////////////////////////////////////////////////

// TransactionPayload is the request body that announces a signed transaction.
type TransactionPayload struct {
	Payload string `json:"payload"`
}

// NewTransactionPayload returns the upper case hex payload of the given Transaction.
func NewTransactionPayload(tx *transaction.Transaction) *TransactionPayload {
	return &TransactionPayload{
		Payload: strings.ToUpper(hex.EncodeToString(tx.Bytes())),
	}
}

// ToTransaction decodes the payload.
func (t *TransactionPayload) ToTransaction() (*transaction.Transaction, error) {
	bytes, err := hex.DecodeString(t.Payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode transaction payload")
	}

	tx, _, err := transaction.TransactionFromBytes(bytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse transaction payload")
	}

	return tx, nil
}

// AnnounceResponse is the answer of the gateway to an announced payload.
type AnnounceResponse struct {
	Message string `json:"message"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region CosignatureRequest ///////////////////////////////////////////////////////////////////////////////////////////

// CosignatureRequest is the request body that announces a cosignature of a bonded aggregate.
type CosignatureRequest struct {
	ParentHash      string `json:"parentHash"`
	Signature       string `json:"signature"`
	SignerPublicKey string `json:"signerPublicKey"`
	Version         Uint64 `json:"version"`
}

// NewCosignatureRequest returns a CosignatureRequest for the given aggregate hash and Cosignature.
func NewCosignatureRequest(parentHash model.Hash256, cosignature transaction.Cosignature) *CosignatureRequest {
	return &CosignatureRequest{
		ParentHash:      strings.ToUpper(hex.EncodeToString(parentHash.Bytes())),
		Signature:       strings.ToUpper(hex.EncodeToString(cosignature.Signature.Bytes())),
		SignerPublicKey: strings.ToUpper(hex.EncodeToString(cosignature.Signer.Bytes())),
		Version:         NewUint64(0),
	}
}

// ToCosignature parses the aggregate hash and the Cosignature.
func (c *CosignatureRequest) ToCosignature() (parentHash model.Hash256, cosignature transaction.Cosignature, err error) {
	if parentHash, err = model.Hash256FromHex(c.ParentHash); err != nil {
		return parentHash, cosignature, errors.Wrap(err, "failed to parse parent hash")
	}
	if cosignature.Signature, err = model.SignatureFromHex(c.Signature); err != nil {
		return parentHash, cosignature, errors.Wrap(err, "failed to parse signature")
	}
	if cosignature.Signer, err = model.PublicKeyFromHex(c.SignerPublicKey); err != nil {
		return parentHash, cosignature, errors.Wrap(err, "failed to parse signer public key")
	}

	return parentHash, cosignature, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionInfo //////////////////////////////////////////////////////////////////////////////////////////////

// TransactionInfo is the JSON model of a transaction that the node knows about.
type TransactionInfo struct {
	ID          string          `json:"id,omitempty"`
	Meta        TransactionMeta `json:"meta"`
	Transaction json.RawMessage `json:"transaction"`
}

// TransactionMeta is the JSON model of the metadata of a transaction.
type TransactionMeta struct {
	Height              Uint64 `json:"height"`
	Hash                string `json:"hash"`
	MerkleComponentHash string `json:"merkleComponentHash"`
	Index               int    `json:"index"`
	AggregateHash       string `json:"aggregateHash,omitempty"`
	AggregateID         string `json:"aggregateId,omitempty"`
	ChannelName         string `json:"channelName,omitempty"`
}

// ParsedHash parses the hash of the transaction.
func (t *TransactionMeta) ParsedHash() (model.Hash256, error) {
	hash, err := model.Hash256FromHex(t.Hash)
	if err != nil {
		return model.Hash256{}, errors.Wrap(err, "failed to parse transaction hash")
	}

	return hash, nil
}

// Header unmarshals the fields that every transaction carries.
func (t *TransactionInfo) Header() (*TransactionHeader, error) {
	header := &TransactionHeader{}
	if err := json.Unmarshal(t.Transaction, header); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal transaction header")
	}

	return header, nil
}

// TransactionHeader is the JSON model of the fields that every transaction carries.
type TransactionHeader struct {
	Size            int    `json:"size,omitempty"`
	Signature       string `json:"signature,omitempty"`
	SignerPublicKey string `json:"signerPublicKey"`
	Version         int    `json:"version"`
	Network         int    `json:"network"`
	Type            int    `json:"type"`
	MaxFee          Uint64 `json:"maxFee,omitempty"`
	Deadline        Uint64 `json:"deadline,omitempty"`
}

// NewTransactionHeader returns the TransactionHeader of the given Transaction.
func NewTransactionHeader(tx *transaction.Transaction) *TransactionHeader {
	return &TransactionHeader{
		Size:            tx.Size(),
		Signature:       strings.ToUpper(hex.EncodeToString(tx.Signature().Bytes())),
		SignerPublicKey: strings.ToUpper(hex.EncodeToString(tx.Signer().Bytes())),
		Version:         int(tx.Version().Version()),
		Network:         int(tx.NetworkType()),
		Type:            int(tx.Type()),
		MaxFee:          NewUint64(uint64(tx.MaxFee())),
		Deadline:        NewUint64(uint64(tx.Deadline())),
	}
}

// TransactionType returns the kind of the transaction.
func (t *TransactionHeader) TransactionType() model.TransactionType {
	return model.TransactionType(t.Type)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionStatus ////////////////////////////////////////////////////////////////////////////////////////////

const (
	// TransactionGroupUnconfirmed is the group of transactions that wait to be included in a block.
	TransactionGroupUnconfirmed = "unconfirmed"

	// TransactionGroupConfirmed is the group of transactions that are included in a block.
	TransactionGroupConfirmed = "confirmed"

	// TransactionGroupFailed is the group of transactions that the node rejected.
	TransactionGroupFailed = "failed"

	// TransactionGroupPartial is the group of bonded aggregates that wait for cosignatures.
	TransactionGroupPartial = "partial"

	// TransactionStatusSuccess is the code of a transaction that passed validation.
	TransactionStatusSuccess = "Success"
)

// TransactionStatus is the JSON model of the processing state of a transaction.
type TransactionStatus struct {
	Group    string `json:"group"`
	Code     string `json:"code"`
	Hash     string `json:"hash"`
	Deadline Uint64 `json:"deadline"`
	Height   Uint64 `json:"height,omitempty"`
}

// Failed returns true if the node rejected the transaction.
func (t *TransactionStatus) Failed() bool {
	return t.Group == TransactionGroupFailed || (t.Code != "" && t.Code != TransactionStatusSuccess)
}

// Confirmed returns true if the transaction is included in a block.
func (t *TransactionStatus) Confirmed() bool {
	return t.Group == TransactionGroupConfirmed
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
