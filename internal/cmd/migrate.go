package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/persistence"
)

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Manage the database schema",
	Commands: []*cli.Command{
		{
			Name:  "up",
			Usage: "Apply all pending migrations",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return run(ctx, append(migrationServices(), pal.Provide(&persistence.MigrationUpRunner{}))...)
			},
		},
		{
			Name:  "down",
			Usage: "Roll back the last migration",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return run(ctx, append(migrationServices(), pal.Provide(&persistence.MigrationDownRunner{}))...)
			},
		},
	},
}

func migrationServices() []pal.ServiceDef {
	return []pal.ServiceDef{
		pal.Provide(&config.Config{}),
		pal.Provide[core.DB](&persistence.DB{}),
		pal.Provide[core.Migrator](&persistence.Migrator{}),
	}
}
