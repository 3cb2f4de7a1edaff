package listener

import (
	"github.com/iotaledger/hive.go/events"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
)

// Events defines the events that a Listener triggers for messages on subscribed channels.
type Events struct {
	// Block is triggered for every new block.
	Block *events.Event

	// TransactionAdded is triggered for confirmedAdded, unconfirmedAdded and partialAdded messages.
	TransactionAdded *events.Event

	// TransactionRemoved is triggered for unconfirmedRemoved and partialRemoved messages.
	TransactionRemoved *events.Event

	// Status is triggered if the node rejects a transaction.
	Status *events.Event

	// Cosignature is triggered for cosignatures of bonded aggregates.
	Cosignature *events.Event

	// Error is triggered if the connection fails or a message can not be read.
	Error *events.Event
}

func newEvents() *Events {
	return &Events{
		Block:              events.NewEvent(blockEventCaller),
		TransactionAdded:   events.NewEvent(transactionEventCaller),
		TransactionRemoved: events.NewEvent(transactionEventCaller),
		Status:             events.NewEvent(statusEventCaller),
		Cosignature:        events.NewEvent(cosignatureEventCaller),
		Error:              events.NewEvent(errorCaller),
	}
}

// BlockEvent holds the information of a block message.
type BlockEvent struct {
	Block *jsonmodels.Block
}

// TransactionEvent holds the information of a transaction message.
type TransactionEvent struct {
	Channel     string
	Address     string
	Transaction *jsonmodels.TransactionInfo
}

// StatusEvent holds the information of a status message.
type StatusEvent struct {
	Address string
	Status  *jsonmodels.TransactionStatus
}

// CosignatureEvent holds the information of a cosignature message.
type CosignatureEvent struct {
	Address     string
	Cosignature *jsonmodels.CosignatureRequest
}

func blockEventCaller(handler interface{}, params ...interface{}) {
	handler.(func(*BlockEvent))(params[0].(*BlockEvent))
}

func transactionEventCaller(handler interface{}, params ...interface{}) {
	handler.(func(*TransactionEvent))(params[0].(*TransactionEvent))
}

func statusEventCaller(handler interface{}, params ...interface{}) {
	handler.(func(*StatusEvent))(params[0].(*StatusEvent))
}

func cosignatureEventCaller(handler interface{}, params ...interface{}) {
	handler.(func(*CosignatureEvent))(params[0].(*CosignatureEvent))
}

func errorCaller(handler interface{}, params ...interface{}) {
	handler.(func(error))(params[0].(error))
}
