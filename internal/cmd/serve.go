package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"carebird/internal/analytics"
	"carebird/internal/cmd/flags"
	"carebird/internal/collecting"
	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/metrics"
	"carebird/internal/persistence"
	"carebird/internal/persistence/replies"
	"carebird/internal/persistence/tweets"
	"carebird/internal/pruning"
	"carebird/internal/scheduling"
	"carebird/internal/twitter"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Run all jobs on their intervals and serve metrics",
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
			pal.Provide[core.SearchClient](&twitter.Service{}),
			pal.Provide[core.TweetRepository](&tweets.Repository{}),
			pal.Provide[core.ReplyRepository](&replies.Repository{}),
			kv,
			pal.Provide(&collecting.Collector{}),
			pal.Provide(&pruning.Pruner{}),
			pal.Provide(&analytics.Aggregator{}),
			pal.Provide(&scheduling.Scheduler{}),
			pal.Provide(&metrics.Server{}),
			pal.Provide(&metrics.Collector{}),
		)
	},
}
