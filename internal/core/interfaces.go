package core

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"carebird/pkg/chirp"
)

type DB interface {
	Model(a any) *gorm.DB
	DB() (*sql.DB, error)
	EstimatedCount(tableName string) (int64, error)
}

type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Migrate(ctx context.Context, version uint) error
}

// SearchClient fetches candidate tweets from the remote search API.
type SearchClient interface {
	Search(ctx context.Context, query string, opts chirp.SearchOptions) ([]*chirp.Status, error)
}

type TweetRepository interface {
	// Latest returns the most recently posted stored tweet.
	// Returns ErrNotFound when the store is empty.
	Latest(ctx context.Context) (TweetModel, error)

	// Insert stores the tweet unless one with the same id already exists.
	// Reports whether a row was actually inserted.
	Insert(ctx context.Context, tweet TweetModel) (bool, error)

	// NthNewest returns the tweet at the given zero-based offset among the
	// locale's tweets ordered by creation time descending.
	// Returns ErrNotFound when the locale has fewer tweets than that.
	NthNewest(ctx context.Context, locale string, n int) (TweetModel, error)

	// DeleteOlderThan removes every tweet of the locale created at or
	// before the cutoff. Returns the number of deleted rows.
	DeleteOlderThan(ctx context.Context, locale string, cutoff time.Time) (int64, error)
}

type ReplyRepository interface {
	All(ctx context.Context) ([]ReplyModel, error)
}

// KeyValueStore is the cache the contributor leaderboard is published to.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
