// Package analytics builds the top contributor leaderboard from stored
// replies and publishes it to the cache.
package analytics

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"

	"carebird/internal/config"
	"carebird/internal/core"
)

var (
	cacheErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carebird_cache_errors_total",
		Help: "The total number of failed leaderboard cache writes.",
	})
)

// Aggregator scans all replies, accumulates per-contributor rolling
// window counts and caches the ranked result as a JSON blob.
type Aggregator struct {
	Logger *slog.Logger
	Config *config.Config

	Replies core.ReplyRepository
	Cache   core.KeyValueStore

	// Now is overridable in tests.
	Now func() time.Time
}

func (a *Aggregator) Init(_ context.Context) error {
	a.Logger = a.Logger.With("component", "analytics.Aggregator")

	if a.Now == nil {
		a.Now = time.Now
	}

	return nil
}

// Aggregate runs one aggregation pass and publishes the result. A cache
// failure is recorded but does not fail the run; the computed ranking is
// returned either way.
func (a *Aggregator) Aggregate(ctx context.Context) ([]*core.ContributorStat, error) {
	replies, err := a.Replies.All(ctx)
	if err != nil {
		return nil, err
	}

	now := a.Now()
	oneMonthAgo := now.AddDate(0, 0, -30)
	oneWeekAgo := now.AddDate(0, 0, -7)
	yesterday := now.AddDate(0, 0, -1)

	stats := map[string]*core.ContributorStat{}

	for _, reply := range replies {
		stat, ok := stats[reply.TwitterUsername]
		if !ok {
			resolved, err := resolveProfile(reply.RawJSON)
			if err != nil {
				return nil, err
			}

			stat = &core.ContributorStat{
				Username:    reply.TwitterUsername,
				Avatar:      resolved.Avatar,
				AvatarHTTPS: resolved.AvatarHTTPS,
			}
			stats[reply.TwitterUsername] = stat
		}

		// The windows are strictly nested, so an inner boundary only
		// needs checking when the outer one already matched.
		stat.All++
		if reply.CreatedAt.After(oneMonthAgo) {
			stat.Month++
			if reply.CreatedAt.After(oneWeekAgo) {
				stat.Week++
				if reply.CreatedAt.After(yesterday) {
					stat.Day++
				}
			}
		}
	}

	ranked := a.rank(lo.Values(stats))

	if err := a.publish(ctx, ranked); err != nil {
		cacheErrors.Inc()
		a.Logger.Error("failed to publish top contributors", "error", err)
	}

	return ranked, nil
}

// rank sorts by the configured window descending, breaks ties with the
// all-time count descending and truncates to the configured limit.
func (a *Aggregator) rank(stats []*core.ContributorStat) []*core.ContributorStat {
	sortKey := a.Config.TopContribSort

	slices.SortStableFunc(stats, func(x, y *core.ContributorStat) int {
		if c := cmp.Compare(y.Count(sortKey), x.Count(sortKey)); c != 0 {
			return c
		}
		return cmp.Compare(y.All, x.All)
	})

	if limit := a.Config.TopContribLimit; limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}

	return stats
}

func (a *Aggregator) publish(ctx context.Context, ranked []*core.ContributorStat) error {
	blob, err := json.Marshal(ranked)
	if err != nil {
		return err
	}

	return a.Cache.Set(ctx, a.Config.TopContribCacheKey, blob)
}
