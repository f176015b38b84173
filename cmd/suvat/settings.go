package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	settingsName = "suvat"
	settingsType = "yaml"
	envPrefix    = "SUVAT"

	keyDataDir    = "data_dir"
	keyConversion = "conversion"
	keyLogLevel   = "log_level"
	keyPrecision  = "precision"

	defaultDataDir = ".suvat"
)

// loadSettings reads suvat.yaml from the data directory. SUVAT_* environment
// variables override the file and explicit flags override both. The file
// is looked up in the data directory given by --data or SUVAT_DATA_DIR; a
// missing file is not an error.
func loadSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyDataDir, defaultDataDir)
	v.SetDefault(keyConversion, "zero")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyPrecision, 6)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlag(keyDataDir, cmd.Flags().Lookup("data")); err != nil {
		return nil, fmt.Errorf("bind data flag: %w", err)
	}

	v.SetConfigName(settingsName)
	v.SetConfigType(settingsType)
	v.AddConfigPath(v.GetString(keyDataDir))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	return v, nil
}
