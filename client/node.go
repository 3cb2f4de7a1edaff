package client

import (
	"context"
	"net/http"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
	"github.com/iotaledger/catapult-client/packages/model"
)

const (
	routeNodeInfo          = "node/info"
	routeNodeHealth        = "node/health"
	routeNetwork           = "network"
	routeNetworkProperties = "network/properties"
)

// NodeInfo gets the identity of the node.
func (api *NodeAPI) NodeInfo(ctx context.Context) (*jsonmodels.NodeInfo, error) {
	return cached[jsonmodels.NodeInfo](ctx, api, routeNodeInfo)
}

// NodeHealth gets the health of the node.
func (api *NodeAPI) NodeHealth(ctx context.Context) (*jsonmodels.NodeHealth, error) {
	res := &jsonmodels.NodeHealth{}
	if err := api.do(ctx, http.MethodGet, routeNodeHealth, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Network gets the name of the network.
func (api *NodeAPI) Network(ctx context.Context) (*jsonmodels.NetworkName, error) {
	res := &jsonmodels.NetworkName{}
	if err := api.do(ctx, http.MethodGet, routeNetwork, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// NetworkProperties gets the configuration of the network. The answer is cached.
func (api *NodeAPI) NetworkProperties(ctx context.Context) (*jsonmodels.NetworkProperties, error) {
	return cached[jsonmodels.NetworkProperties](ctx, api, routeNetworkProperties)
}

// GenerationHash gets the generation hash that signatures on the network of the node are bound to.
func (api *NodeAPI) GenerationHash(ctx context.Context) (model.Hash256, error) {
	info, err := api.NodeInfo(ctx)
	if err != nil {
		return model.Hash256{}, err
	}

	return info.GenerationHash()
}

// Deadline returns the deadline of a transaction that is created now and expires after lifetime, measured in
// network time.
func (api *NodeAPI) Deadline(ctx context.Context, now time.Time, lifetime time.Duration) (model.Timestamp, error) {
	properties, err := api.NetworkProperties(ctx)
	if err != nil {
		return 0, err
	}
	epoch, err := properties.Epoch()
	if err != nil {
		return 0, err
	}

	return model.NewDeadline(now, epoch, lifetime), nil
}

// cached fetches a GET route through the cache of the NodeAPI. Every caller receives its own copy.
func cached[T any](ctx context.Context, api *NodeAPI, route string) (*T, error) {
	value, err := api.cache.Get(route)
	if err == nil {
		if cachedValue, ok := value.(*T); ok {
			result := *cachedValue
			return &result, nil
		}
	} else if !errors.Is(err, ttlcache.ErrNotFound) {
		api.log.Warnw("cache lookup failed", "route", route, "err", err)
	}

	res := new(T)
	if err := api.do(ctx, http.MethodGet, route, nil, res); err != nil {
		return nil, err
	}
	stored := *res
	if err := api.cache.Set(route, &stored); err != nil {
		api.log.Warnw("failed to cache response", "route", route, "err", err)
	}

	return res, nil
}
