package jsonmodels

import (
	"encoding/json"
	"strings"
)

// WebSocket channel names. Address bound channels are suffixed with "/<address>".
const (
	ChannelBlock              = "block"
	ChannelConfirmedAdded     = "confirmedAdded"
	ChannelUnconfirmedAdded   = "unconfirmedAdded"
	ChannelUnconfirmedRemoved = "unconfirmedRemoved"
	ChannelPartialAdded       = "partialAdded"
	ChannelPartialRemoved     = "partialRemoved"
	ChannelStatus             = "status"
	ChannelCosignature        = "cosignature"
)

// ChannelPath returns the subscription path of a channel. The address is omitted if empty.
func ChannelPath(channel, address string) string {
	if address == "" {
		return channel
	}

	return channel + "/" + address
}

// SplitChannelPath splits a subscription path into its channel and address.
func SplitChannelPath(path string) (channel, address string) {
	channel, address, _ = strings.Cut(path, "/")
	return
}

// ListenerUID is the first message that the server sends after a connection is established.
type ListenerUID struct {
	UID string `json:"uid"`
}

// ListenerSubscription is sent by the client to subscribe to a channel.
type ListenerSubscription struct {
	UID       string `json:"uid"`
	Subscribe string `json:"subscribe"`
}

// ListenerUnsubscription is sent by the client to stop a subscription.
type ListenerUnsubscription struct {
	UID         string `json:"uid"`
	Unsubscribe string `json:"unsubscribe"`
}

// ListenerMessage is the union of every message that the server pushes on a subscribed channel. The fields that are
// present decide the kind of the message.
type ListenerMessage struct {
	// transaction messages
	Transaction json.RawMessage  `json:"transaction,omitempty"`
	Meta        *TransactionMeta `json:"meta,omitempty"`

	// block messages
	Block *Block `json:"block,omitempty"`

	// status messages
	Address  string `json:"address,omitempty"`
	Hash     string `json:"hash,omitempty"`
	Code     string `json:"code,omitempty"`
	Deadline Uint64 `json:"deadline,omitempty"`

	// cosignature messages
	ParentHash      string `json:"parentHash,omitempty"`
	Signature       string `json:"signature,omitempty"`
	SignerPublicKey string `json:"signerPublicKey,omitempty"`
}

// Channel returns the channel path the message was published on. A channel name sent by the node is returned as is,
// so it may lack the address. The empty string is returned if the message does not carry one.
func (l *ListenerMessage) Channel() string {
	switch {
	case l.Block != nil:
		return ChannelBlock
	case l.Meta != nil && l.Meta.ChannelName != "":
		return l.Meta.ChannelName
	case l.ParentHash != "":
		return ChannelPath(ChannelCosignature, l.Address)
	case l.Code != "":
		return ChannelPath(ChannelStatus, l.Address)
	default:
		return ""
	}
}

// TransactionInfo returns the transaction carried by a transaction message.
func (l *ListenerMessage) TransactionInfo() *TransactionInfo {
	if l.Meta == nil {
		return nil
	}

	return &TransactionInfo{
		Meta:        *l.Meta,
		Transaction: l.Transaction,
	}
}

// TransactionStatus returns the status carried by a status message.
func (l *ListenerMessage) TransactionStatus() *TransactionStatus {
	group := TransactionGroupFailed
	if l.Code == TransactionStatusSuccess {
		group = ""
	}

	return &TransactionStatus{
		Group:    group,
		Code:     l.Code,
		Hash:     l.Hash,
		Deadline: l.Deadline,
	}
}

// CosignatureRequest returns the cosignature carried by a cosignature message.
func (l *ListenerMessage) CosignatureRequest() *CosignatureRequest {
	return &CosignatureRequest{
		ParentHash:      l.ParentHash,
		Signature:       l.Signature,
		SignerPublicKey: l.SignerPublicKey,
	}
}
