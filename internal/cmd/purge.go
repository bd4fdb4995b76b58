package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/persistence"
	"carebird/internal/persistence/tweets"
	"carebird/internal/pruning"
)

var purgeCmd = &cli.Command{
	Name:  "purge",
	Usage: "Delete old tweets beyond the per-locale retention limit",
	Action: func(ctx context.Context, _ *cli.Command) error {
		return run(ctx,
			pal.Provide(&config.Config{}),
			pal.Provide[core.DB](&persistence.DB{}),
			pal.Provide[core.TweetRepository](&tweets.Repository{}),
			pal.Provide(&pruning.Pruner{}),
			pal.Provide(&purgeRunner{}),
		)
	},
}

type purgeRunner struct {
	Pruner *pruning.Pruner
}

func (r *purgeRunner) Run(ctx context.Context) error {
	return r.Pruner.Purge(ctx)
}
