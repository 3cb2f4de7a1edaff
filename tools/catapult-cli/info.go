package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/iotaledger/catapult-client/client"
)

func execInfoCommand(ctx context.Context, api *client.NodeAPI) error {
	info, err := api.NodeInfo(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch node info")
	}
	health, err := api.NodeHealth(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch node health")
	}
	height, err := api.ChainHeight(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch chain height")
	}
	properties, err := api.NetworkProperties(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch network properties")
	}

	epoch, err := properties.Epoch()
	if err != nil {
		return err
	}
	currency, err := properties.CurrencyMosaicID()
	if err != nil {
		return err
	}
	lifetime, err := properties.MaxTransactionLifetime()
	if err != nil {
		return err
	}

	w := new(tabwriter.Writer)
	w.Init(os.Stdout, 0, 8, 2, '\t', 0)
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "NODE", api.BaseURL())
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "FRIENDLY NAME", info.FriendlyName)
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "PUBLIC KEY", info.PublicKey)
	_, _ = fmt.Fprintf(w, "%s\t%t\n", "HEALTHY", health.Healthy())
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "NETWORK", info.NetworkType())
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "GENERATION HASH", info.NetworkGenerationHashSeed)
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "EPOCH", epoch.UTC())
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "CURRENCY", currency)
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "MAX LIFETIME", lifetime)
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "HEIGHT", height)

	return w.Flush()
}
