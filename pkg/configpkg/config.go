// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
// An empty DBSource keeps the ledger in memory.
type Config struct {
	DBDriver        string        `mapstructure:"DB_DRIVER"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	LedgerSeedFile  string        `mapstructure:"LEDGER_SEED_FILE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	Environment     string        `mapstructure:"GO_ENV"`
}

var defaults = map[string]any{
	"DB_DRIVER":        "postgres",
	"DB_SOURCE":        "",
	"SERVER_ADDRESS":   "0.0.0.0:8080",
	"LEDGER_SEED_FILE": "",
	"SHUTDOWN_TIMEOUT": 10 * time.Second,
	"GO_ENV":           "production",
}

// Load reads configuration from path/app.env and environment variables.
// Environment variables take precedence. A missing app.env is not an error.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
