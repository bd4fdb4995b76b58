package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"carebird/internal/config"
	"carebird/internal/filtering"
)

func TestInitDefaults(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Init(t.Context()))

	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, 100, cfg.TweetsPerPage)
	require.Equal(t, 10000, cfg.MaxTweets)
	require.Equal(t, "1w", cfg.TopContribSort)
	require.Equal(t, "carebird:top-contributors", cfg.TopContribCacheKey)
	require.Contains(t, cfg.Locales, "en-US")
}

func TestInitFromEnvironment(t *testing.T) {
	t.Setenv("CAREBIRD_SEARCH_QUERY", "birdwatch OR #birdwatch")
	t.Setenv("CAREBIRD_MAX_TWEETS", "500")
	t.Setenv("CAREBIRD_IGNORED_USERS", "spambot,loudvendor")
	t.Setenv("CAREBIRD_ALLOWED_ACCOUNTS", "2142731:supportbird,150793437:supportbirdbrasil")

	cfg := &config.Config{}
	require.NoError(t, cfg.Init(t.Context()))

	require.Equal(t, "birdwatch OR #birdwatch", cfg.SearchQuery)
	require.Equal(t, 500, cfg.MaxTweets)
	require.Equal(t, []string{"spambot", "loudvendor"}, cfg.IgnoredUsers)

	allowed, err := cfg.Allowed()
	require.NoError(t, err)
	require.Equal(t, []filtering.Account{
		{ID: 2142731, Handle: "supportbird"},
		{ID: 150793437, Handle: "supportbirdbrasil"},
	}, allowed)
}

func TestInitRejectsMalformedAccounts(t *testing.T) {
	t.Setenv("CAREBIRD_ALLOWED_ACCOUNTS", "not-a-pair")

	cfg := &config.Config{}
	require.ErrorIs(t, cfg.Init(t.Context()), config.ErrInvalidAccount)
}

func TestAllowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []string
		wantErr bool
	}{
		{name: "empty", entries: nil},
		{name: "valid pair", entries: []string{"1:handle"}},
		{name: "missing handle", entries: []string{"1:"}, wantErr: true},
		{name: "missing separator", entries: []string{"1handle"}, wantErr: true},
		{name: "non-numeric id", entries: []string{"one:handle"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := (&config.Config{AllowedAccounts: tt.entries}).Allowed()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidAccount)
				return
			}
			require.NoError(t, err)
		})
	}
}
