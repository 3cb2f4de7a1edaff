package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/iotaledger/hive.go/logger"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/iotaledger/catapult-client/client"
	"github.com/iotaledger/catapult-client/client/listener"
	"github.com/iotaledger/catapult-client/packages/jsonmodels"
	"github.com/iotaledger/catapult-client/packages/model"
	"github.com/iotaledger/catapult-client/packages/signer"
	"github.com/iotaledger/catapult-client/packages/transaction"
)

const transferVersion = 1

// transferRequest holds everything that is needed to build the transfers of a transfer command.
type transferRequest struct {
	account        *signer.Account
	generationHash model.Hash256
	recipient      model.Address
	mosaic         model.Mosaic
	message        string
	maxFee         model.Amount
	deadline       model.Timestamp
	count          int
}

func execTransferCommand(ctx context.Context, config *viper.Viper, api *client.NodeAPI, localClock *clock, log *logger.Logger) error {
	request, err := newTransferRequest(ctx, config, api, localClock)
	if err != nil {
		return err
	}

	txs, err := request.build()
	if err != nil {
		return err
	}

	if !config.GetBool(CfgTransferYes) {
		confirmed := false
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Announce %d transfer(s) of %s to %s?", len(txs), request.mosaic, request.recipient.Pretty()),
		}, &confirmed); err != nil {
			return errors.Wrap(err, "failed to read confirmation")
		}
		if !confirmed {
			return nil
		}
	}

	var confirmationListener *listener.Listener
	if config.GetBool(CfgTransferWait) {
		if len(txs) != 1 {
			return errors.Errorf("%s can only be used with a single transfer", CfgTransferWait)
		}

		confirmationListener = listener.New(listener.URLFromNodeURL(api.BaseURL()), listener.WithLogger(log.Named("Listener")))
		if err := confirmationListener.Connect(ctx); err != nil {
			return errors.Wrap(err, "failed to connect listener")
		}
		defer confirmationListener.Close()

		// subscribe before announcing so that the confirmation can not be missed
		signerAddress := request.account.Address().String()
		if err := confirmationListener.Subscribe(jsonmodels.ChannelConfirmedAdded, signerAddress); err != nil {
			return err
		}
		if err := confirmationListener.Subscribe(jsonmodels.ChannelStatus, signerAddress); err != nil {
			return err
		}
	}

	results, err := api.AnnounceAll(ctx, txs...)
	if err != nil {
		return errors.Wrap(err, "failed to announce transfers")
	}
	failed := 0
	for i, result := range results {
		hash := signer.Hash(txs[i], request.generationHash)
		if result != nil {
			failed++
			log.Errorw("failed to announce transfer", "hash", hash, "err", result)
			continue
		}
		fmt.Printf("announced %s\n", hash)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d transfers failed", failed, len(txs))
	}

	if confirmationListener == nil {
		return nil
	}

	hash := signer.Hash(txs[0], request.generationHash)
	fmt.Println("waiting for confirmation...")
	info, err := confirmationListener.WaitForConfirmation(ctx, request.account.Address(), hash)
	if err != nil {
		return errors.Wrapf(err, "transfer %s was not confirmed", hash)
	}
	fmt.Printf("confirmed %s at height %s\n", hash, info.Meta.Height)

	return nil
}

func newTransferRequest(ctx context.Context, config *viper.Viper, api *client.NodeAPI, localClock *clock) (*transferRequest, error) {
	info, err := api.NodeInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch node info")
	}
	generationHash, err := info.GenerationHash()
	if err != nil {
		return nil, err
	}

	privateKey := config.GetString(CfgAccountPrivateKey)
	if privateKey == "" {
		return nil, errors.Errorf("%s is not set", CfgAccountPrivateKey)
	}
	account, err := signer.AccountFromHex(info.NetworkType(), privateKey)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", CfgAccountPrivateKey)
	}

	recipient, err := model.AddressFromString(config.GetString(CfgTransferRecipient))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", CfgTransferRecipient)
	}
	if recipient.NetworkType() != info.NetworkType() {
		return nil, errors.Errorf("recipient %s does not belong to %s", recipient.Pretty(), info.NetworkType())
	}

	mosaicID, err := transferMosaicID(ctx, config, api)
	if err != nil {
		return nil, err
	}

	deadline, err := api.Deadline(ctx, localClock.Now(), config.GetDuration(CfgTransactionLifetime))
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute deadline")
	}

	return &transferRequest{
		account:        account,
		generationHash: generationHash,
		recipient:      recipient,
		mosaic:         model.NewMosaic(model.NewUnresolvedMosaicID(mosaicID), model.Amount(config.GetUint64(CfgTransferAmount))),
		message:        config.GetString(CfgTransferMessage),
		maxFee:         model.Amount(config.GetUint64(CfgTransactionMaxFee)),
		deadline:       deadline,
		count:          config.GetInt(CfgTransferCount),
	}, nil
}

func transferMosaicID(ctx context.Context, config *viper.Viper, api *client.NodeAPI) (model.MosaicID, error) {
	if mosaic := config.GetString(CfgTransferMosaic); mosaic != "" {
		mosaicID, err := model.MosaicIDFromString(mosaic)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid %s", CfgTransferMosaic)
		}
		return mosaicID, nil
	}

	properties, err := api.NetworkProperties(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch network properties")
	}

	return properties.CurrencyMosaicID()
}

// build creates and signs the transfers of the request. Transfers of a batch differ in their message so that every
// transfer has its own hash.
func (t *transferRequest) build() ([]*transaction.Transaction, error) {
	if t.count < 1 {
		return nil, errors.Errorf("%s must be positive", CfgTransferCount)
	}

	txs := make([]*transaction.Transaction, t.count)
	for i := range txs {
		message := t.message
		if t.count > 1 {
			message += "#" + strconv.Itoa(i)
		}

		body, err := transaction.NewTransfer(model.NewUnresolvedAddress(t.recipient), plainMessage(message), t.mosaic)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create transfer")
		}
		tx, err := transaction.NewTransaction(t.account.PublicKey(), model.NewEntityVersion(t.account.NetworkType(), transferVersion), t.maxFee, t.deadline, body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create transaction")
		}
		if txs[i], err = t.account.Sign(tx, t.generationHash); err != nil {
			return nil, err
		}
	}

	return txs, nil
}

// plainMessage prefixes a text with the plain message marker. An empty text results in an empty message.
func plainMessage(text string) []byte {
	if text == "" {
		return nil
	}

	return append([]byte{0}, text...)
}
