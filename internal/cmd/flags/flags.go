package flags

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"
)

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validCacheBackends = []string{"redis", "nats"}
)

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var CacheBackend = &cli.StringFlag{
	Name:    "cache-backend",
	Aliases: []string{"c"},
	Usage:   "The key-value store the leaderboard is published to",
	Value:   "redis",
	Validator: func(value string) error {
		if !slices.Contains(validCacheBackends, value) {
			return fmt.Errorf("invalid cache backend: %s, allowed values are: %s", value, validCacheBackends)
		}
		return nil
	},
	Sources: cli.EnvVars("CACHE_BACKEND"),
}
