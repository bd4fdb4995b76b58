package replies

import (
	"context"
	"log/slog"

	"carebird/internal/core"
)

type Repository struct {
	Logger *slog.Logger
	DB     core.DB
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "replies.Repository")
	return nil
}

// All returns every stored reply. The aggregation is a full scan by
// design; the reply table is bounded by how many support answers the
// tracked contributors actually write.
func (r *Repository) All(ctx context.Context) ([]core.ReplyModel, error) {
	var replies []core.ReplyModel
	err := r.DB.Model(&core.ReplyModel{}).
		WithContext(ctx).
		Find(&replies).Error

	return replies, err
}
