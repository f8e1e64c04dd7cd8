package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/media_consumer/internal/batch"
	"github.com/Gunvolt24/media_consumer/internal/domain"
	"github.com/Gunvolt24/media_consumer/internal/ports"
	"github.com/Gunvolt24/media_consumer/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// subscriber — установление подписки (фаза Initializing).
type subscriber interface {
	Subscribe(ctx context.Context, topics []string) error
}

// Consumer — цикл опроса: читает сообщения, декодирует, копит пачку и один раз пишет её в хранилище.
// Накопитель и reader принадлежат горутине Run; наружу видны только атомарные счётчики для Status.
type Consumer struct {
	reader     reader
	subscriber subscriber
	writer     ports.MediaWriter
	log        ports.Logger

	topics         []string
	pollTimeout    time.Duration
	maxPollRecords int
	commitTimeout  time.Duration

	acc     *batch.Accumulator
	pending []kafka.Message // сообщения текущей пачки, для коммита после записи

	started     atomic.Bool
	state       atomic.Int32
	outcome     atomic.Value // Outcome
	accumulated atomic.Int64
	flushed     atomic.Int64
	closeOnce   sync.Once
	closeErr    error
}

// NewConsumer — конструктор. readerConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, writer ports.MediaWriter, log ports.Logger) (*Consumer, error) {
	c := cfg.withDefaults()

	rc, err := c.ReaderConfig()
	if err != nil {
		return nil, err
	}

	return newConsumer(
		kafka.NewReader(rc),
		newTopicSubscriber(rc.Dialer, c.Brokers),
		writer, log, &c,
	), nil
}

func newConsumer(r reader, s subscriber, w ports.MediaWriter, log ports.Logger, cfg *ConsumerConfig) *Consumer {
	c := cfg.withDefaults()
	consumer := &Consumer{
		reader:         r,
		subscriber:     s,
		writer:         w,
		log:            log,
		topics:         c.Topics,
		pollTimeout:    c.PollTimeout,
		maxPollRecords: c.MaxPollRecords,
		commitTimeout:  c.CommitTimeout,
		acc:            batch.New(c.BatchSize),
	}
	consumer.outcome.Store(OutcomeNone)
	return consumer
}

// Run — основной цикл, блокирует до завершения:
// 1) Initializing: проверяем подписку;
// 2) Running: опрос с ограниченным ожиданием, декодирование и накопление по одному сообщению;
// 3) как только накоплен порог — одна синхронная запись пачки и коммит оффсетов;
// 4) Draining → Terminated: закрываем reader при любом исходе.
//
// Отмена ctx прерывает текущий опрос. Запись пачки, которая уже идёт, отменой не прерывается.
// Для завершения по порогу и по запросу остановки возвращается nil; причина доступна в Outcome.
func (c *Consumer) Run(ctx context.Context) (err error) {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	defer func() {
		c.state.Store(int32(StateDraining))
		if closeErr := c.Close(); closeErr != nil {
			c.log.Warnf(ctx, "kafka reader close error: %v", closeErr)
		}
		err = c.finish(ctx, err)
		c.state.Store(int32(StateTerminated))
	}()

	c.state.Store(int32(StateInitializing))
	if subErr := c.subscriber.Subscribe(ctx, c.topics); subErr != nil {
		if ctx.Err() != nil {
			return ErrShutdown
		}
		return fmt.Errorf("%w: %w", ErrSubscription, subErr)
	}

	c.state.Store(int32(StateRunning))
	c.log.Infof(ctx, "kafka consumer started topics=%v threshold=%d poll_timeout=%s",
		c.topics, c.acc.Threshold(), c.pollTimeout)

	for {
		msgs, pollErr := c.poll(ctx)
		if pollErr != nil {
			return pollErr
		}

		done, procErr := c.processBatch(ctx, msgs)
		if procErr != nil || done {
			return procErr
		}
	}
}

// finish — фиксирует причину завершения, пишет итог в лог и метрики.
func (c *Consumer) finish(ctx context.Context, err error) error {
	outcome := OutcomeOf(err)
	c.outcome.Store(outcome)
	metrics.ConsumerOutcomes.WithLabelValues(string(outcome)).Inc()
	metrics.BatchAccumulated.Set(0)

	switch outcome {
	case OutcomeCompleted:
		c.log.Infof(ctx, "kafka consumer finished: batch of %d records written", c.flushed.Load())
		return nil
	case OutcomeShutdown:
		c.log.Infof(ctx, "kafka consumer stopped on shutdown request, %d records dropped from memory", c.accumulated.Load())
		return nil
	default:
		c.log.Errorf(ctx, "kafka consumer aborted outcome=%s: %v", outcome, err)
		return err
	}
}

// Close - закрывает reader. Вызывается из Run при завершении; повторные вызовы безопасны.
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.reader.Close()
	})
	return c.closeErr
}

// State — текущая фаза цикла.
func (c *Consumer) State() State { return State(c.state.Load()) }

// Outcome — причина завершения; OutcomeNone, пока цикл не завершился.
func (c *Consumer) Outcome() Outcome {
	o, _ := c.outcome.Load().(Outcome)
	return o
}

// Status — снимок для HTTP-статуса.
func (c *Consumer) Status() domain.ConsumerStatus {
	return domain.ConsumerStatus{
		State:       c.State().String(),
		Outcome:     string(c.Outcome()),
		Accumulated: int(c.accumulated.Load()),
		Threshold:   c.acc.Threshold(),
		Flushed:     int(c.flushed.Load()),
	}
}

// isCancellation — ошибка вызвана отменой внешнего контекста, а не сбоем источника.
func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ctx.Err()))
}
