package ports

import (
	"context"

	"github.com/Gunvolt24/media_consumer/internal/domain"
)

// MediaWriter — запись пачки в хранилище за один вызов.
// Контракт «всё или ничего»: либо сохранена вся пачка, либо возвращается ошибка.
type MediaWriter interface {
	WriteBatch(ctx context.Context, batch []domain.Media) error
}
