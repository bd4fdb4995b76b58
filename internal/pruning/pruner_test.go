package pruning_test

import (
	"context"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"carebird/internal/config"
	"carebird/internal/core"
	"carebird/internal/pruning"
)

type fakeTweets struct {
	tweets []core.TweetModel
}

func (f *fakeTweets) Latest(context.Context) (core.TweetModel, error) {
	return core.TweetModel{}, core.ErrNotFound
}

func (f *fakeTweets) Insert(context.Context, core.TweetModel) (bool, error) {
	return false, nil
}

func (f *fakeTweets) NthNewest(_ context.Context, locale string, n int) (core.TweetModel, error) {
	forLocale := f.byLocale(locale)
	if n >= len(forLocale) {
		return core.TweetModel{}, core.ErrNotFound
	}
	return forLocale[n], nil
}

func (f *fakeTweets) DeleteOlderThan(_ context.Context, locale string, cutoff time.Time) (int64, error) {
	kept := f.tweets[:0]
	var deleted int64
	for _, t := range f.tweets {
		if t.Locale == locale && !t.CreatedAt.After(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	f.tweets = kept
	return deleted, nil
}

func (f *fakeTweets) byLocale(locale string) []core.TweetModel {
	forLocale := lo.Filter(f.tweets, func(t core.TweetModel, _ int) bool {
		return t.Locale == locale
	})
	sort.Slice(forLocale, func(i, j int) bool {
		return forLocale[i].CreatedAt.After(forLocale[j].CreatedAt)
	})
	return forLocale
}

func seed(locale string, count int) []core.TweetModel {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tweets := make([]core.TweetModel, 0, count)
	for i := range count {
		tweets = append(tweets, core.TweetModel{
			TweetID:   int64(len(locale))*1000 + int64(i),
			Locale:    locale,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return tweets
}

func newPruner(t *testing.T, tweets *fakeTweets, maxTweets int, locales ...string) *pruning.Pruner {
	t.Helper()

	pruner := &pruning.Pruner{
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.Config{
			Locales:   locales,
			MaxTweets: maxTweets,
		},
		Tweets: tweets,
	}
	require.NoError(t, pruner.Init(t.Context()))

	return pruner
}

func TestPurgeKeepsNewestN(t *testing.T) {
	t.Parallel()

	tweets := &fakeTweets{tweets: seed("en", 5)}
	pruner := newPruner(t, tweets, 2, "en-US")

	require.NoError(t, pruner.Purge(t.Context()))

	remaining := tweets.byLocale("en")
	require.Len(t, remaining, 2)
	// The two newest survive.
	require.True(t, remaining[0].CreatedAt.After(remaining[1].CreatedAt))
	require.Equal(t, time.Date(2026, 8, 1, 16, 0, 0, 0, time.UTC), remaining[0].CreatedAt)
}

func TestPurgeUnderLimitDeletesNothing(t *testing.T) {
	t.Parallel()

	tweets := &fakeTweets{tweets: seed("de", 2)}
	pruner := newPruner(t, tweets, 2, "de")

	require.NoError(t, pruner.Purge(t.Context()))
	require.Len(t, tweets.byLocale("de"), 2)
}

func TestPurgeScopesToLocale(t *testing.T) {
	t.Parallel()

	tweets := &fakeTweets{tweets: append(seed("en", 5), seed("de", 5)...)}
	pruner := newPruner(t, tweets, 2, "en-US")

	require.NoError(t, pruner.Purge(t.Context()))
	require.Len(t, tweets.byLocale("en"), 2)
	require.Len(t, tweets.byLocale("de"), 5)
}

func TestPurgeSkipsUnmappedLocales(t *testing.T) {
	t.Parallel()

	tweets := &fakeTweets{tweets: seed("en", 5)}
	// Neither locale has an ISO-639-1 code; "nope" is entirely unknown.
	pruner := newPruner(t, tweets, 2, "ach", "nope")

	require.NoError(t, pruner.Purge(t.Context()))
	require.Len(t, tweets.byLocale("en"), 5)
}

func TestPurgeMultipleLocales(t *testing.T) {
	t.Parallel()

	tweets := &fakeTweets{tweets: append(seed("en", 4), seed("de", 3)...)}
	pruner := newPruner(t, tweets, 1, "en-US", "de")

	require.NoError(t, pruner.Purge(t.Context()))
	require.Len(t, tweets.byLocale("en"), 1)
	require.Len(t, tweets.byLocale("de"), 1)
}
