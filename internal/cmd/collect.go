package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"carebird/internal/collecting"
	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/persistence"
	"carebird/internal/persistence/tweets"
	"carebird/internal/twitter"
)

var collectCmd = &cli.Command{
	Name:  "collect",
	Usage: "Fetch one page of new support tweets, filter and store them",
	Action: func(ctx context.Context, _ *cli.Command) error {
		return run(ctx,
			pal.Provide(&config.Config{}),
			pal.Provide[core.DB](&persistence.DB{}),
			pal.Provide[core.SearchClient](&twitter.Service{}),
			pal.Provide[core.TweetRepository](&tweets.Repository{}),
			pal.Provide(&collecting.Collector{}),
			pal.Provide(&collectRunner{}),
		)
	},
}

type collectRunner struct {
	Collector *collecting.Collector
}

func (r *collectRunner) Run(ctx context.Context) error {
	return r.Collector.Collect(ctx)
}
