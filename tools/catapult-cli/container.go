package main

import (
	"time"

	"github.com/beevik/ntp"
	"github.com/iotaledger/hive.go/logger"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/iotaledger/catapult-client/client"
	"github.com/iotaledger/catapult-client/client/listener"
)

// buildContainer provides the components of the commands. Every component is constructed at most once and only if a
// command asks for it.
func buildContainer(config *viper.Viper) (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(func() *viper.Viper { return config }); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := container.Provide(newLogger); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := container.Provide(newNodeAPI); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := container.Provide(newListener); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := container.Provide(newClock); err != nil {
		return nil, errors.WithStack(err)
	}

	return container, nil
}

func newLogger(config *viper.Viper) (*logger.Logger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(config.GetString(CfgLoggerLevel))); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", CfgLoggerLevel)
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = level
	zapConfig.DisableStacktrace = true

	log, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	return log.Sugar().Named("catapult-cli"), nil
}

func newNodeAPI(config *viper.Viper, log *logger.Logger) *client.NodeAPI {
	return client.NewNodeAPI(config.GetString(CfgNodeURL),
		client.WithTimeout(config.GetDuration(CfgNodeTimeout)),
		client.WithCacheTTL(config.GetDuration(CfgNodeCacheTTL)),
		client.WithAnnounceWorkers(config.GetInt(CfgAnnounceWorkers)),
		client.WithLogger(log.Named("NodeAPI")),
	)
}

func newListener(config *viper.Viper, log *logger.Logger) *listener.Listener {
	return listener.New(listener.URLFromNodeURL(config.GetString(CfgNodeURL)), listener.WithLogger(log.Named("Listener")))
}

// clock is the local clock corrected by the offset to a time server.
type clock struct {
	offset time.Duration
}

func newClock(config *viper.Viper, log *logger.Logger) *clock {
	server := config.GetString(CfgNTPServer)
	if server == "" {
		return &clock{}
	}

	response, err := ntp.Query(server)
	if err == nil {
		err = response.Validate()
	}
	if err != nil {
		log.Warnw("failed to query time server, using local clock", "server", server, "err", err)
		return &clock{}
	}
	log.Debugw("queried time server", "server", server, "offset", response.ClockOffset)

	return &clock{offset: response.ClockOffset}
}

// Now returns the corrected current time.
func (c *clock) Now() time.Time {
	return time.Now().Add(c.offset)
}
