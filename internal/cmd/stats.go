package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"carebird/internal/analytics"
	"carebird/internal/cache"
	"carebird/internal/cmd/flags"
	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/persistence"
	"carebird/internal/persistence/replies"
)

var statsCmd = &cli.Command{
	Name:  "stats",
	Usage: "Rebuild the top contributor leaderboard and publish it to the cache",
	Flags: []cli.Flag{
		flags.CacheBackend,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		kv, err := cacheService(c.String("cache-backend"))
		if err != nil {
			return err
		}

		return run(ctx,
			pal.Provide(&config.Config{}),
			pal.Provide[core.DB](&persistence.DB{}),
			pal.Provide[core.ReplyRepository](&replies.Repository{}),
			kv,
			pal.Provide(&analytics.Aggregator{}),
			pal.Provide(&statsRunner{}),
		)
	},
}

func cacheService(backend string) (pal.ServiceDef, error) {
	switch backend {
	case "redis":
		return pal.Provide[core.KeyValueStore](&cache.Redis{}), nil
	case "nats":
		return pal.Provide[core.KeyValueStore](&cache.NATS{}), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", backend)
	}
}

type statsRunner struct {
	Aggregator *analytics.Aggregator
}

func (r *statsRunner) Run(ctx context.Context) error {
	_, err := r.Aggregator.Aggregate(ctx)
	return err
}
