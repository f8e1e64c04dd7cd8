package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/media_consumer/internal/domain"
	"github.com/Gunvolt24/media_consumer/internal/ports"
	"github.com/Gunvolt24/media_consumer/pkg/ctxmeta"
	"github.com/Gunvolt24/media_consumer/pkg/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Проверка, что MediaService реализует порт записи пачки.
var _ ports.MediaWriter = (*MediaService)(nil)

// ErrEmptyBatch — пустую пачку не пишем.
var ErrEmptyBatch = errors.New("empty media batch")

const tracerName = "github.com/Gunvolt24/media_consumer/internal/usecase"

// MediaService — запись пачек в хранилище (без знаний о транспорте).
type MediaService struct {
	repo   ports.MediaRepository // прямой доступ к хранилищу
	log    ports.Logger          // прямой доступ к логгеру
	tracer trace.Tracer
	now    func() time.Time
}

// NewMediaService — DI-конструктор.
func NewMediaService(repo ports.MediaRepository, log ports.Logger) *MediaService {
	return &MediaService{
		repo:   repo,
		log:    log,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
}

// WriteBatch — записать пачку одним вызовом репозитория.
// Повторов нет: ошибка возвращается вызывающему как есть (обёрнутой).
func (s *MediaService) WriteBatch(ctx context.Context, batch []domain.Media) error {
	if len(batch) == 0 {
		return ErrEmptyBatch
	}

	ctx = ctxmeta.WithFlushID(ctx, uuid.NewString())
	ctx, span := s.tracer.Start(ctx, "MediaService.WriteBatch",
		trace.WithAttributes(attribute.Int("media.batch_size", len(batch))))
	defer span.End()

	start := s.now()
	inserted, err := s.repo.InsertBatch(ctx, batch)
	metrics.BatchFlushDuration.Observe(s.now().Sub(start).Seconds())

	if err != nil {
		metrics.BatchFlushes.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert batch failed")
		s.log.Errorf(ctx, "repo.InsertBatch failed size=%d err=%v", len(batch), err)
		return fmt.Errorf("insert batch: %w", err)
	}

	metrics.BatchFlushes.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.Int64("media.inserted", inserted))
	s.log.Infof(ctx, "media batch written size=%d inserted=%d took=%s", len(batch), inserted, s.now().Sub(start))
	return nil
}

// Проверка, что MediaService реализует порт чтения.
var _ ports.MediaReadService = (*MediaService)(nil)

// MediaByUser — записи пользователя с пагинацией.
func (s *MediaService) MediaByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Media, error) {
	ctx, span := s.tracer.Start(ctx, "MediaService.MediaByUser",
		trace.WithAttributes(attribute.String("media.userid", userID)))
	defer span.End()

	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list media failed")
		return nil, fmt.Errorf("list media by user: %w", err)
	}
	return items, nil
}

// MediaCount — сколько записей уже в хранилище.
func (s *MediaService) MediaCount(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return n, nil
}
