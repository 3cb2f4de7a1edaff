package main

import (
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CATAPULT"

// loadConfig parses the command line and reads the config file that the --config and --config-dir flags point to.
// Values are resolved in the order flag, environment variable, config file, flag default. A missing config file is
// not an error.
func loadConfig(flagSet *flag.FlagSet, args []string) (*viper.Viper, error) {
	configName := flagSet.StringP("config", "c", "config", "Filename of the config file without the file extension")
	configDirPath := flagSet.StringP("config-dir", "d", ".", "Path to the directory containing the config file")
	defineParameters(flagSet)

	if err := flagSet.Parse(args); err != nil {
		return nil, errors.Wrap(err, "failed to parse flags")
	}

	config := viper.New()
	// replace dots with underscores in env
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.SetEnvPrefix(envPrefix)
	config.AutomaticEnv()

	if err := config.BindPFlags(flagSet); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	config.SetConfigName(*configName)
	config.AddConfigPath(*configDirPath)
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "failed to read config file %s", *configName)
		}
	}

	return config, nil
}
