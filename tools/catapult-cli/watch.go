package main

import (
	"context"
	"fmt"
	"time"

	"github.com/iotaledger/hive.go/events"
	"github.com/iotaledger/hive.go/logger"
	"github.com/paulbellamy/ratecounter"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/iotaledger/catapult-client/client"
	"github.com/iotaledger/catapult-client/client/listener"
	"github.com/iotaledger/catapult-client/packages/jsonmodels"
	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/signer"
)

var watchedChannels = []string{
	jsonmodels.ChannelConfirmedAdded,
	jsonmodels.ChannelUnconfirmedAdded,
	jsonmodels.ChannelUnconfirmedRemoved,
	jsonmodels.ChannelPartialAdded,
	jsonmodels.ChannelPartialRemoved,
	jsonmodels.ChannelStatus,
	jsonmodels.ChannelCosignature,
}

func execWatchCommand(ctx context.Context, config *viper.Viper, api *client.NodeAPI, nodeListener *listener.Listener, log *logger.Logger) error {
	address, err := watchedAddress(ctx, config, api)
	if err != nil {
		return err
	}

	reportInterval := config.GetDuration(CfgWatchReportInterval)
	confirmations := ratecounter.NewRateCounter(reportInterval)

	nodeListener.Events.TransactionAdded.Attach(events.NewClosure(func(event *listener.TransactionEvent) {
		if event.Channel == jsonmodels.ChannelConfirmedAdded {
			confirmations.Incr(1)
		}
		fmt.Printf("[%s] %s height=%s\n", event.Channel, event.Transaction.Meta.Hash, event.Transaction.Meta.Height)
	}))
	nodeListener.Events.TransactionRemoved.Attach(events.NewClosure(func(event *listener.TransactionEvent) {
		fmt.Printf("[%s] %s\n", event.Channel, event.Transaction.Meta.Hash)
	}))
	nodeListener.Events.Status.Attach(events.NewClosure(func(event *listener.StatusEvent) {
		fmt.Printf("[%s] %s %s\n", jsonmodels.ChannelStatus, event.Status.Hash, event.Status.Code)
	}))
	nodeListener.Events.Cosignature.Attach(events.NewClosure(func(event *listener.CosignatureEvent) {
		fmt.Printf("[%s] %s signed by %s\n", jsonmodels.ChannelCosignature, event.Cosignature.ParentHash, event.Cosignature.SignerPublicKey)
	}))
	nodeListener.Events.Block.Attach(events.NewClosure(func(event *listener.BlockEvent) {
		fmt.Printf("[%s] height=%s transactionsHash=%s\n", jsonmodels.ChannelBlock, event.Block.Height, event.Block.TransactionsHash)
	}))
	nodeListener.Events.Error.Attach(events.NewClosure(func(err error) {
		log.Warnw("listener error", "err", err)
	}))

	if err := nodeListener.Connect(ctx); err != nil {
		return errors.Wrap(err, "failed to connect listener")
	}
	defer nodeListener.Close()

	for _, channel := range watchedChannels {
		if err := nodeListener.Subscribe(channel, address.String()); err != nil {
			return err
		}
	}
	if config.GetBool(CfgWatchBlocks) {
		if err := nodeListener.Subscribe(jsonmodels.ChannelBlock, ""); err != nil {
			return err
		}
	}
	log.Infow("watching", "address", address.Pretty(), "blocks", config.GetBool(CfgWatchBlocks))

	ticker := time.NewTicker(reportInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			log.Infow("confirmation rate", "confirmed", confirmations.Rate(), "interval", reportInterval)
		case <-nodeListener.Done():
			return errors.New("listener connection closed")
		case <-ctx.Done():
			return nil
		}
	}
}

func watchedAddress(ctx context.Context, config *viper.Viper, api *client.NodeAPI) (model.Address, error) {
	if address := config.GetString(CfgWatchAddress); address != "" {
		parsed, err := model.AddressFromString(address)
		if err != nil {
			return model.Address{}, errors.Wrapf(err, "invalid %s", CfgWatchAddress)
		}
		return parsed, nil
	}

	privateKey := config.GetString(CfgAccountPrivateKey)
	if privateKey == "" {
		return model.Address{}, errors.Errorf("either %s or %s must be set", CfgWatchAddress, CfgAccountPrivateKey)
	}
	info, err := api.NodeInfo(ctx)
	if err != nil {
		return model.Address{}, errors.Wrap(err, "failed to fetch node info")
	}
	account, err := signer.AccountFromHex(info.NetworkType(), privateKey)
	if err != nil {
		return model.Address{}, errors.Wrapf(err, "invalid %s", CfgAccountPrivateKey)
	}

	return account.Address(), nil
}
