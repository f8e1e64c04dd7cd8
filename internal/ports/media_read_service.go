package ports

import (
	"context"

	"github.com/Gunvolt24/media_consumer/internal/domain"
)

// MediaReadService — чтение уже записанных пачек (HTTP).
type MediaReadService interface {
	MediaByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Media, error)
	MediaCount(ctx context.Context) (int64, error)
}
