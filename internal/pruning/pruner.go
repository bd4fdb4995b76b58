// Package pruning bounds the stored tweet history per locale.
package pruning

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/l10n"
)

var (
	tweetsPurged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carebird_tweets_purged_total",
		Help: "The total number of tweets deleted by retention, by locale.",
	}, []string{"locale"})
)

// Pruner deletes, per locale, every tweet older than the N-th newest one.
// It issues many DELETEs against the primary, so it should not run more
// often than about once an hour.
type Pruner struct {
	Logger *slog.Logger
	Config *config.Config

	Tweets core.TweetRepository
}

func (p *Pruner) Init(_ context.Context) error {
	p.Logger = p.Logger.With("component", "pruning.Pruner")
	return nil
}

// Purge runs one retention pass over all configured locales.
func (p *Pruner) Purge(ctx context.Context) error {
	for _, locale := range p.Config.Locales {
		// Some locales have no ISO-639-1 code, too bad for them.
		lang := l10n.ISO6391(locale)
		if lang == "" {
			continue
		}

		oldest, err := p.Tweets.NthNewest(ctx, lang, p.Config.MaxTweets)
		if errors.Is(err, core.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		deleted, err := p.Tweets.DeleteOlderThan(ctx, lang, oldest.CreatedAt)
		if err != nil {
			return err
		}

		tweetsPurged.WithLabelValues(lang).Add(float64(deleted))
		p.Logger.Debug("truncated tweet list",
			"locale", lang, "cutoff", oldest.CreatedAt, "deleted", deleted)
	}

	return nil
}
