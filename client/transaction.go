package client

import (
	"context"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

const (
	routeTransaction            = "transaction"
	routeTransactionPartial     = "transaction/partial"
	routeTransactionCosignature = "transaction/cosignature"
	routeTransactionStatus      = "/status"
)

// Transaction gets a transaction by its hash.
func (api *NodeAPI) Transaction(ctx context.Context, hash model.Hash256) (*jsonmodels.TransactionInfo, error) {
	res := &jsonmodels.TransactionInfo{}
	if err := api.do(ctx, http.MethodGet, routeTransaction+"/"+hashHex(hash), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// TransactionStatus gets the processing state of a transaction.
func (api *NodeAPI) TransactionStatus(ctx context.Context, hash model.Hash256) (*jsonmodels.TransactionStatus, error) {
	res := &jsonmodels.TransactionStatus{}
	if err := api.do(ctx, http.MethodGet, routeTransaction+"/"+hashHex(hash)+routeTransactionStatus, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Announce sends a signed transaction to the node.
func (api *NodeAPI) Announce(ctx context.Context, tx *transaction.Transaction) (*jsonmodels.AnnounceResponse, error) {
	res := &jsonmodels.AnnounceResponse{}
	if err := api.do(ctx, http.MethodPut, routeTransaction, jsonmodels.NewTransactionPayload(tx), res); err != nil {
		return nil, err
	}
	return res, nil
}

// AnnouncePartial sends a signed bonded aggregate that still waits for cosignatures.
func (api *NodeAPI) AnnouncePartial(ctx context.Context, tx *transaction.Transaction) (*jsonmodels.AnnounceResponse, error) {
	if tx.Type() != model.AggregateBondedTransactionType {
		return nil, errors.Wrapf(transaction.ErrContractViolation, "%s can not be announced as partial", tx.Type())
	}

	res := &jsonmodels.AnnounceResponse{}
	if err := api.do(ctx, http.MethodPut, routeTransactionPartial, jsonmodels.NewTransactionPayload(tx), res); err != nil {
		return nil, err
	}
	return res, nil
}

// AnnounceCosignature sends the cosignature of a bonded aggregate with the given hash.
func (api *NodeAPI) AnnounceCosignature(ctx context.Context, parentHash model.Hash256, cosignature transaction.Cosignature) (*jsonmodels.AnnounceResponse, error) {
	res := &jsonmodels.AnnounceResponse{}
	if err := api.do(ctx, http.MethodPut, routeTransactionCosignature, jsonmodels.NewCosignatureRequest(parentHash, cosignature), res); err != nil {
		return nil, err
	}
	return res, nil
}

// AnnounceAll sends the given transactions concurrently. The returned slice holds the error of every transaction at
// its index.
func (api *NodeAPI) AnnounceAll(ctx context.Context, txs ...*transaction.Transaction) ([]error, error) {
	pool, err := ants.NewPool(api.announceWorkers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create announce pool")
	}
	defer pool.Release()

	results := make([]error, len(txs))
	var wg sync.WaitGroup
	for i, tx := range txs {
		i, tx := i, tx

		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()

			_, results[i] = api.Announce(ctx, tx)
		}); submitErr != nil {
			wg.Done()
			results[i] = errors.Wrap(submitErr, "failed to schedule announcement")
		}
	}
	wg.Wait()

	return results, nil
}

func hashHex(hash model.Hash256) string {
	return strings.ToUpper(hex.EncodeToString(hash.Bytes()))
}
