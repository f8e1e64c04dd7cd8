package ports

import (
	"context"

	"github.com/Gunvolt24/media_consumer/internal/domain"
)

// MessageConsumer — фоновый потребитель сообщений.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
	Status() domain.ConsumerStatus
}
