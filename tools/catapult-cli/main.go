package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iotaledger/hive.go/logger"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iotaledger/catapult-client/client"
	"github.com/iotaledger/catapult-client/client/listener"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("catapult-cli", flag.ContinueOnError)
	flagSet.Usage = func() { printUsage(flagSet) }

	config, err := loadConfig(flagSet, args)
	if err != nil {
		return err
	}
	if flagSet.NArg() < 1 {
		printUsage(flagSet)
		return errors.New("missing [COMMAND]")
	}

	container, err := buildContainer(config)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// switch logic according to provided sub command
	switch command := flagSet.Arg(0); command {
	case "info":
		return container.Invoke(func(api *client.NodeAPI) error {
			defer api.Close()
			return execInfoCommand(ctx, api)
		})
	case "decode":
		return container.Invoke(func(config *viper.Viper) error {
			return execDecodeCommand(config, flagSet.Args()[1:])
		})
	case "transfer":
		return container.Invoke(func(config *viper.Viper, api *client.NodeAPI, localClock *clock, log *logger.Logger) error {
			defer api.Close()
			return execTransferCommand(ctx, config, api, localClock, log)
		})
	case "watch":
		return container.Invoke(func(config *viper.Viper, api *client.NodeAPI, nodeListener *listener.Listener, log *logger.Logger) error {
			defer api.Close()
			return execWatchCommand(ctx, config, api, nodeListener, log)
		})
	case "help":
		printUsage(flagSet)
		return nil
	default:
		printUsage(flagSet)
		return errors.Errorf("unknown [COMMAND]: %s", command)
	}
}

func printUsage(flagSet *flag.FlagSet) {
	_, _ = fmt.Fprintf(os.Stderr, "\nUsage: catapult-cli [OPTIONS] [COMMAND]\n\n")
	_, _ = fmt.Fprintln(os.Stderr, "COMMANDS")
	_, _ = fmt.Fprintln(os.Stderr, "  info              print the node, chain and network properties")
	_, _ = fmt.Fprintln(os.Stderr, "  decode <payload>  decode a hex encoded transaction")
	_, _ = fmt.Fprintln(os.Stderr, "  transfer          sign and announce a transfer")
	_, _ = fmt.Fprintln(os.Stderr, "  watch             print the transactions and blocks pushed by the node")
	_, _ = fmt.Fprintln(os.Stderr, "  help              print this message")
	_, _ = fmt.Fprintf(os.Stderr, "\nOPTIONS\n%s", flagSet.FlagUsages())
}
