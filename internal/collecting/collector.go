// Package collecting implements the tweet ingestion job.
package collecting

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/filtering"
	"carebird/pkg/chirp"
)

var (
	tweetsCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carebird_tweets_collected_total",
		Help: "The total number of candidate tweets fetched from search.",
	})
	tweetsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carebird_tweets_saved_total",
		Help: "The total number of accepted tweets stored.",
	})
	tweetsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carebird_tweets_skipped_total",
		Help: "The total number of accepted tweets dropped due to malformed metadata.",
	})
)

// Collector fetches recent candidate tweets, filters them and stores the
// survivors. Safe to re-run: duplicate ids are discarded by the store.
type Collector struct {
	Logger *slog.Logger
	Config *config.Config

	Search core.SearchClient
	Tweets core.TweetRepository

	filter       *filtering.Filter
	linksHashtag string
}

func (c *Collector) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "collecting.Collector")

	allowed, err := c.Config.Allowed()
	if err != nil {
		return err
	}

	c.filter = filtering.New(allowed, c.Config.IgnoredUsers)
	c.linksHashtag = strings.ToLower(c.Config.LinksHashtag)

	return nil
}

// Collect runs one ingestion pass.
func (c *Collector) Collect(ctx context.Context) error {
	opts := chirp.SearchOptions{
		Count:      c.Config.TweetsPerPage,
		ResultType: chirp.ResultTypeRecent,
	}

	// Collect nothing older than what we already have.
	latest, err := c.Tweets.Latest(ctx)
	switch {
	case errors.Is(err, core.ErrNotFound):
		c.Logger.Debug("no existing tweets, retrieving from search", "count", opts.Count)
	case err != nil:
		return err
	default:
		opts.SinceID = latest.TweetID
		c.Logger.Info("retrieving tweets", "since_id", opts.SinceID)
	}

	statuses, err := c.Search.Search(ctx, c.Config.SearchQuery, opts)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		return nil
	}

	for _, status := range statuses {
		tweetsCollected.Inc()

		// Links are allowed only for tweets carrying the opt-in hashtag.
		allowLinks := c.linksHashtag != "" &&
			strings.Contains(strings.ToLower(status.Text), c.linksHashtag)

		if _, ok := c.filter.Evaluate(status, allowLinks); !ok {
			continue
		}

		if err := c.save(ctx, status); err != nil {
			return err
		}
	}

	return nil
}

func (c *Collector) save(ctx context.Context, status *chirp.Status) error {
	created, err := status.CreatedAtTime()
	if err != nil {
		// A single malformed candidate must not kill the whole batch.
		c.Logger.Error("skipping tweet with malformed created_at",
			"id", status.ID, "created_at", status.CreatedAt, "error", err)
		tweetsSkipped.Inc()
		return nil
	}

	locale := status.Metadata.ISOLanguageCode
	if locale == "" {
		locale = c.Config.DefaultLocale
	}

	inserted, err := c.Tweets.Insert(ctx, core.TweetModel{
		TweetID:   status.ID,
		RawJSON:   status.Raw,
		Locale:    locale,
		CreatedAt: created,
	})
	if err != nil {
		return err
	}

	if inserted {
		tweetsSaved.Inc()
	}

	return nil
}
