// Package scheduling drives the batch jobs on fixed intervals in serve
// mode. Deployments with an external cron can invoke the subcommands
// directly instead.
package scheduling

import (
	"context"
	"log/slog"
	"time"

	"carebird/internal/analytics"
	"carebird/internal/collecting"
	"carebird/internal/config"
	"carebird/internal/pruning"
)

// Scheduler triggers each job from a single loop, so a job never runs
// concurrently with itself. Job failures are logged and retried on the
// next tick.
type Scheduler struct {
	Logger *slog.Logger
	Config *config.Config

	Collector  *collecting.Collector
	Pruner     *pruning.Pruner
	Aggregator *analytics.Aggregator
}

func (s *Scheduler) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "scheduling.Scheduler")
	return nil
}

func (s *Scheduler) Run(ctx context.Context) error {
	collect := time.NewTicker(s.Config.CollectInterval)
	defer collect.Stop()
	purge := time.NewTicker(s.Config.PurgeInterval)
	defer purge.Stop()
	stats := time.NewTicker(s.Config.StatsInterval)
	defer stats.Stop()

	s.Logger.Info("Starting scheduler",
		"collect_interval", s.Config.CollectInterval,
		"purge_interval", s.Config.PurgeInterval,
		"stats_interval", s.Config.StatsInterval)

	s.runJob(ctx, "collect", s.Collector.Collect)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-collect.C:
			s.runJob(ctx, "collect", s.Collector.Collect)
		case <-purge.C:
			s.runJob(ctx, "purge", s.Pruner.Purge)
		case <-stats.C:
			s.runJob(ctx, "stats", func(ctx context.Context) error {
				_, err := s.Aggregator.Aggregate(ctx)
				return err
			})
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, name string, job func(context.Context) error) {
	start := time.Now()

	if err := job(ctx); err != nil {
		s.Logger.Error("job failed", "job", name, "error", err)
		return
	}

	s.Logger.Debug("job completed", "job", name, "elapsed", time.Since(start))
}
