package ports

import (
	"context"

	"github.com/Gunvolt24/media_consumer/internal/domain"
)

// MediaRepository — хранилище записей; InsertBatch транзакционный и возвращает число вставленных строк.
type MediaRepository interface {
	InsertBatch(ctx context.Context, batch []domain.Media) (int64, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Media, error)
	Count(ctx context.Context) (int64, error)
}
