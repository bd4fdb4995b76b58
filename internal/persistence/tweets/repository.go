package tweets

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carebird/internal/core"
)

type Repository struct {
	Logger *slog.Logger
	DB     core.DB
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "tweets.Repository")
	return nil
}

func (r *Repository) Latest(ctx context.Context) (core.TweetModel, error) {
	var tweet core.TweetModel
	err := r.DB.Model(&core.TweetModel{}).
		WithContext(ctx).
		Order("created_at DESC").
		First(&tweet).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.TweetModel{}, core.ErrNotFound
	}

	return tweet, err
}

// Insert stores the tweet unless its id is already present. Concurrent
// collectors may race on the same page of results; the conflict clause
// makes the duplicate a no-op instead of an error.
func (r *Repository) Insert(ctx context.Context, tweet core.TweetModel) (bool, error) {
	res := r.DB.Model(&core.TweetModel{}).
		WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&tweet)

	return res.RowsAffected > 0, res.Error
}

func (r *Repository) NthNewest(ctx context.Context, locale string, n int) (core.TweetModel, error) {
	var tweet core.TweetModel
	err := r.DB.Model(&core.TweetModel{}).
		WithContext(ctx).
		Where("locale = ?", locale).
		Order("created_at DESC").
		Offset(n).
		First(&tweet).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.TweetModel{}, core.ErrNotFound
	}

	return tweet, err
}

func (r *Repository) DeleteOlderThan(ctx context.Context, locale string, cutoff time.Time) (int64, error) {
	res := r.DB.Model(&core.TweetModel{}).
		WithContext(ctx).
		Where("locale = ? AND created_at <= ?", locale, cutoff).
		Delete(&core.TweetModel{})

	return res.RowsAffected, res.Error
}
