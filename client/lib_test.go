package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/iotaledger/catapult-client/packages/jsonmodels"
	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

const testGenerationHashSeed = "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"

// mockNode is an in-process REST gateway that records announced payloads.
type mockNode struct {
	*httptest.Server

	nodeInfoRequests *atomic.Int32
	announcedMutex   sync.Mutex
	announced        []*transaction.Transaction
	cosignatures     []*jsonmodels.CosignatureRequest
}

func newMockNode(t *testing.T) *mockNode {
	node := &mockNode{nodeInfoRequests: atomic.NewInt32(0)}

	e := echo.New()
	e.GET("/node/info", func(c echo.Context) error {
		node.nodeInfoRequests.Inc()
		return c.JSON(http.StatusOK, &jsonmodels.NodeInfo{
			Version:                   16777472,
			PublicKey:                 "A4A0E7F0C3D38D8A1E6E8E1C0C8B2B7A9E6E1B6B7F6E0B1A2C3D4E5F6A7B8C9D",
			NetworkGenerationHashSeed: testGenerationHashSeed,
			NetworkIdentifier:         int(model.MijinTestNetworkType),
			FriendlyName:              "mock",
		})
	})
	e.GET("/node/health", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`{"status": {"apiNode": "up", "db": "up"}}`))
	})
	e.GET("/network/properties", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`{"network": {"epochAdjustment": "1615853185s"}, "chain": {"currencyMosaicId": "0x6BED'913F'A202'23F8"}}`))
	})
	e.GET("/chain/height", func(c echo.Context) error {
		return c.JSON(http.StatusOK, &jsonmodels.ChainHeight{Height: "42"})
	})
	e.GET("/block/:height", func(c echo.Context) error {
		if c.Param("height") != "42" {
			return c.JSON(http.StatusNotFound, &jsonmodels.ErrorResponse{Code: "ResourceNotFound", Message: "no resource exists with id '" + c.Param("height") + "'"})
		}

		info := &jsonmodels.BlockInfo{}
		info.Block.Height = "42"
		return c.JSON(http.StatusOK, info)
	})
	e.GET("/account/:address", func(c echo.Context) error {
		info := &jsonmodels.AccountInfo{}
		info.Account.Address = c.Param("address")
		info.Account.Mosaics = []jsonmodels.Mosaic{{ID: "6BED913FA20223F8", Amount: "100"}}
		return c.JSON(http.StatusOK, info)
	})
	e.GET("/transaction/:hash/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, &jsonmodels.TransactionStatus{Group: jsonmodels.TransactionGroupConfirmed, Code: jsonmodels.TransactionStatusSuccess, Hash: c.Param("hash"), Height: "42"})
	})
	e.GET("/mosaic/:id", func(c echo.Context) error {
		return c.JSON(http.StatusInternalServerError, &jsonmodels.ErrorResponse{Code: "Internal", Message: "boom"})
	})
	announce := func(c echo.Context) error {
		payload := &jsonmodels.TransactionPayload{}
		if err := c.Bind(payload); err != nil {
			return c.JSON(http.StatusBadRequest, &jsonmodels.ErrorResponse{Code: "InvalidContent", Message: err.Error()})
		}
		tx, err := payload.ToTransaction()
		if err != nil {
			return c.JSON(http.StatusConflict, &jsonmodels.ErrorResponse{Code: "InvalidArgument", Message: err.Error()})
		}

		node.announcedMutex.Lock()
		node.announced = append(node.announced, tx)
		node.announcedMutex.Unlock()

		return c.JSON(http.StatusAccepted, &jsonmodels.AnnounceResponse{Message: "packet 9 was pushed to the network via " + c.Path()})
	}
	e.PUT("/transaction", announce)
	e.PUT("/transaction/partial", announce)
	e.PUT("/transaction/cosignature", func(c echo.Context) error {
		request := &jsonmodels.CosignatureRequest{}
		if err := c.Bind(request); err != nil {
			return c.JSON(http.StatusBadRequest, &jsonmodels.ErrorResponse{Code: "InvalidContent", Message: err.Error()})
		}

		node.announcedMutex.Lock()
		node.cosignatures = append(node.cosignatures, request)
		node.announcedMutex.Unlock()

		return c.JSON(http.StatusAccepted, &jsonmodels.AnnounceResponse{Message: "packet 500 was pushed to the network via /transaction/cosignature"})
	})

	node.Server = httptest.NewServer(e)
	t.Cleanup(node.Close)

	return node
}

func newTestAPI(t *testing.T, node *mockNode, opts ...Option) *NodeAPI {
	api := NewNodeAPI(node.URL, opts...)
	t.Cleanup(func() { _ = api.Close() })

	return api
}

func testTransaction(t *testing.T, seed byte) *transaction.Transaction {
	tx, err := transaction.NewTransaction(model.PublicKey{seed}, model.NewEntityVersion(model.MijinTestNetworkType, 1), 10, 20,
		transaction.NewAccountLink(model.PublicKey{0x01}, model.Link))
	require.NoError(t, err)

	return tx
}

func TestNodeAPI_Node(t *testing.T) {
	node := newMockNode(t)
	api := newTestAPI(t, node)
	ctx := context.Background()

	info, err := api.NodeInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mock", info.FriendlyName)
	assert.Equal(t, model.MijinTestNetworkType, info.NetworkType())

	generationHash, err := api.GenerationHash(ctx)
	require.NoError(t, err)
	expected, err := model.Hash256FromHex(testGenerationHashSeed)
	require.NoError(t, err)
	assert.Equal(t, expected, generationHash)
	assert.Equal(t, int32(1), node.nodeInfoRequests.Load())

	info.FriendlyName = "changed"
	cachedInfo, err := api.NodeInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mock", cachedInfo.FriendlyName)

	health, err := api.NodeHealth(ctx)
	require.NoError(t, err)
	assert.True(t, health.Healthy())

	now := time.Unix(1615853185, 0).Add(time.Hour)
	deadline, err := api.Deadline(ctx, now, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, model.Timestamp(3*time.Hour/time.Millisecond), deadline)
}

func TestNodeAPI_CacheExpires(t *testing.T) {
	node := newMockNode(t)
	api := newTestAPI(t, node, WithCacheTTL(10*time.Millisecond))

	_, err := api.NodeInfo(context.Background())
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := api.NodeInfo(context.Background())
		return err == nil && node.nodeInfoRequests.Load() == 2
	}, time.Second, 20*time.Millisecond)
}

func TestNodeAPI_Chain(t *testing.T) {
	node := newMockNode(t)
	api := newTestAPI(t, node)
	ctx := context.Background()

	height, err := api.ChainHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Height(42), height)

	block, err := api.Block(ctx, height)
	require.NoError(t, err)
	assert.Equal(t, jsonmodels.Uint64("42"), block.Block.Height)

	_, err = api.Block(ctx, 43)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "ResourceNotFound")

	_, err = api.Mosaic(ctx, 0x1)
	require.ErrorIs(t, err, ErrInternalServerError)

	address := model.AddressFromPublicKey(model.MijinTestNetworkType, model.PublicKey{0x01})
	account, err := api.Account(ctx, address)
	require.NoError(t, err)
	assert.Equal(t, address.String(), account.Account.Address)
	balance, err := account.Balance(0x6BED913FA20223F8)
	require.NoError(t, err)
	assert.Equal(t, model.Amount(100), balance)
}

func TestNodeAPI_Announce(t *testing.T) {
	node := newMockNode(t)
	api := newTestAPI(t, node)
	ctx := context.Background()

	tx := testTransaction(t, 1)
	res, err := api.Announce(ctx, tx)
	require.NoError(t, err)
	assert.Contains(t, res.Message, "/transaction")
	require.Len(t, node.announced, 1)
	assert.Equal(t, tx.Bytes(), node.announced[0].Bytes())

	_, err = api.AnnouncePartial(ctx, tx)
	require.ErrorIs(t, err, transaction.ErrContractViolation)

	cosignature := transaction.NewCosignature(model.PublicKey{0x02}, model.Signature{0x03})
	_, err = api.AnnounceCosignature(ctx, model.Hash256{0x04}, cosignature)
	require.NoError(t, err)
	require.Len(t, node.cosignatures, 1)
	parentHash, decoded, err := node.cosignatures[0].ToCosignature()
	require.NoError(t, err)
	assert.Equal(t, model.Hash256{0x04}, parentHash)
	assert.Equal(t, cosignature, decoded)

	status, err := api.TransactionStatus(ctx, model.Hash256{0xAB})
	require.NoError(t, err)
	assert.True(t, status.Confirmed())
	assert.Equal(t, hashHex(model.Hash256{0xAB}), status.Hash)
}

func TestNodeAPI_AnnounceAll(t *testing.T) {
	node := newMockNode(t)
	api := newTestAPI(t, node, WithAnnounceWorkers(3))

	txs := make([]*transaction.Transaction, 10)
	for i := range txs {
		txs[i] = testTransaction(t, byte(i))
	}

	results, err := api.AnnounceAll(context.Background(), txs...)
	require.NoError(t, err)
	require.Len(t, results, len(txs))
	for _, result := range results {
		assert.NoError(t, result)
	}
	assert.Len(t, node.announced, len(txs))
}

func TestNodeAPI_Unreachable(t *testing.T) {
	node := newMockNode(t)
	node.Close()

	api := newTestAPI(t, node, WithTimeout(time.Second))
	_, err := api.ChainHeight(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNodeAPI_Metrics(t *testing.T) {
	node := newMockNode(t)
	registry := prometheus.NewRegistry()
	api := newTestAPI(t, node, WithMetrics(registry))
	ctx := context.Background()

	_, err := api.ChainHeight(ctx)
	require.NoError(t, err)
	_, err = api.ChainHeight(ctx)
	require.NoError(t, err)
	_, err = api.Block(ctx, 43)
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, float64(2), testutil.ToFloat64(api.metrics.requests.WithLabelValues(http.MethodGet, "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(api.metrics.requests.WithLabelValues(http.MethodGet, "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(api.metrics.duration))

	// a second NodeAPI can not register the same metrics
	second := newTestAPI(t, node, WithMetrics(registry))
	assert.Nil(t, second.metrics)
	_, err = second.ChainHeight(ctx)
	require.NoError(t, err)
}
