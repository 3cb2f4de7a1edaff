package listener

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/events"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
	"github.com/iotaledger/catapult-client/packages/model"
)

// ErrTransactionFailed is returned by WaitForConfirmation if the node rejects the transaction.
var ErrTransactionFailed = errors.New("transaction failed")

// WaitForConfirmation subscribes to the confirmedAdded and status channels of the given address and blocks until the
// transaction with the given hash is confirmed, rejected, ctx is done or the connection ends.
func (l *Listener) WaitForConfirmation(ctx context.Context, address model.Address, hash model.Hash256) (*jsonmodels.TransactionInfo, error) {
	addressString := address.String()
	confirmed := make(chan *jsonmodels.TransactionInfo, 1)
	failed := make(chan *jsonmodels.TransactionStatus, 1)

	onTransactionAdded := events.NewClosure(func(event *TransactionEvent) {
		if event.Channel != jsonmodels.ChannelConfirmedAdded || event.Transaction == nil {
			return
		}
		if transactionHash, err := event.Transaction.Meta.ParsedHash(); err != nil || transactionHash != hash {
			return
		}

		select {
		case confirmed <- event.Transaction:
		default:
		}
	})
	onStatus := events.NewClosure(func(event *StatusEvent) {
		if !event.Status.Failed() || !strings.EqualFold(event.Status.Hash, hash.String()) {
			return
		}

		select {
		case failed <- event.Status:
		default:
		}
	})

	l.Events.TransactionAdded.Attach(onTransactionAdded)
	defer l.Events.TransactionAdded.Detach(onTransactionAdded)
	l.Events.Status.Attach(onStatus)
	defer l.Events.Status.Detach(onStatus)

	if err := l.Subscribe(jsonmodels.ChannelConfirmedAdded, addressString); err != nil {
		return nil, err
	}
	if err := l.Subscribe(jsonmodels.ChannelStatus, addressString); err != nil {
		return nil, err
	}

	select {
	case info := <-confirmed:
		return info, nil
	case status := <-failed:
		return nil, errors.Wrapf(ErrTransactionFailed, "transaction %s failed with %s", status.Hash, status.Code)
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case <-l.done:
		return nil, ErrNotConnected
	}
}
