package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
	"github.com/iotaledger/catapult-client/packages/model"
)

const (
	routeChainHeight = "chain/height"
	routeBlock       = "block/"
	routeAccount     = "account/"
	routeMosaic      = "mosaic/"
	routeNamespace   = "namespace/"
)

// ChainHeight gets the height of the latest block.
func (api *NodeAPI) ChainHeight(ctx context.Context) (model.Height, error) {
	res := &jsonmodels.ChainHeight{}
	if err := api.do(ctx, http.MethodGet, routeChainHeight, nil, res); err != nil {
		return 0, err
	}

	height, err := res.Height.Value()
	if err != nil {
		return 0, err
	}

	return model.Height(height), nil
}

// Block gets the block at the given height.
func (api *NodeAPI) Block(ctx context.Context, height model.Height) (*jsonmodels.BlockInfo, error) {
	res := &jsonmodels.BlockInfo{}
	if err := api.do(ctx, http.MethodGet, routeBlock+strconv.FormatUint(uint64(height), 10), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Account gets the state of the account with the given address.
func (api *NodeAPI) Account(ctx context.Context, address model.Address) (*jsonmodels.AccountInfo, error) {
	res := &jsonmodels.AccountInfo{}
	if err := api.do(ctx, http.MethodGet, routeAccount+address.String(), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Mosaic gets the definition and supply of a mosaic.
func (api *NodeAPI) Mosaic(ctx context.Context, mosaicID model.MosaicID) (*jsonmodels.MosaicInfo, error) {
	res := &jsonmodels.MosaicInfo{}
	if err := api.do(ctx, http.MethodGet, routeMosaic+mosaicID.String(), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Namespace gets a namespace and its alias.
func (api *NodeAPI) Namespace(ctx context.Context, namespaceID model.NamespaceID) (*jsonmodels.NamespaceInfo, error) {
	res := &jsonmodels.NamespaceInfo{}
	if err := api.do(ctx, http.MethodGet, routeNamespace+namespaceID.String(), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}
