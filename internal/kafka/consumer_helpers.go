package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/media_consumer/pkg/decode"
	"github.com/Gunvolt24/media_consumer/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// poll — один цикл опроса: ждёт не дольше pollTimeout и возвращает 0..maxPollRecords сообщений.
// Отмена ctx прерывает ожидание сразу; недочитанные сообщения не коммитятся и придут повторно.
func (c *Consumer) poll(ctx context.Context) ([]kafka.Message, error) {
	pollCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	var msgs []kafka.Message
	for len(msgs) < c.maxPollRecords {
		msg, err := c.reader.FetchMessage(pollCtx)
		if err == nil {
			msgs = append(msgs, msg)
			continue
		}

		switch {
		case isCancellation(ctx, err):
			return nil, ErrShutdown
		case errors.Is(err, context.DeadlineExceeded) && pollCtx.Err() != nil:
			// Окно опроса истекло — отдаём то, что успели получить.
			return msgs, nil
		default:
			return nil, fmt.Errorf("%w: fetch: %w", ErrSubscription, err)
		}
	}
	return msgs, nil
}

// processBatch — обрабатывает сообщения одного опроса по порядку.
// Порог проверяется после каждого добавления; done=true после записи пачки.
func (c *Consumer) processBatch(ctx context.Context, msgs []kafka.Message) (done bool, err error) {
	for i := range msgs {
		msg := &msgs[i]
		metrics.KafkaMessagesConsumed.WithLabelValues(msg.Topic).Inc()

		media, decErr := decode.DecodeMedia(msg.Value)
		if decErr != nil {
			metrics.KafkaMessagesFailed.WithLabelValues(msg.Topic).Inc()
			return false, fmt.Errorf("topic=%s partition=%d offset=%d: %w", msg.Topic, msg.Partition, msg.Offset, decErr)
		}
		metrics.KafkaMessagesDecoded.WithLabelValues(msg.Topic).Inc()

		c.acc.Append(media)
		c.pending = append(c.pending, *msg)
		c.accumulated.Store(int64(c.acc.Size()))
		metrics.BatchAccumulated.Set(float64(c.acc.Size()))

		if c.acc.Reached() {
			return true, c.flush(ctx)
		}
	}
	return false, nil
}

// flush — забирает пачку из накопителя и синхронно пишет её. Отмена ctx запись не прерывает.
func (c *Consumer) flush(ctx context.Context) error {
	records := c.acc.Drain()
	pending := c.pending
	c.pending = nil
	c.accumulated.Store(0)

	writeCtx := context.WithoutCancel(ctx)
	if err := c.writer.WriteBatch(writeCtx, records); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	c.flushed.Add(int64(len(records)))

	c.commitSafely(writeCtx, pending)
	return nil
}

// commitSafely пытается закоммитить оффсеты записанной пачки и залогировать ошибку.
// Незакоммиченные сообщения будут прочитаны повторно после перезапуска.
func (c *Consumer) commitSafely(ctx context.Context, msgs []kafka.Message) {
	if len(msgs) == 0 {
		return
	}
	commitCtx, cancel := context.WithTimeout(ctx, c.commitTimeout)
	defer cancel()

	if err := c.reader.CommitMessages(commitCtx, msgs...); err != nil {
		last := msgs[len(msgs)-1]
		c.log.Warnf(ctx, "commit failed last_offset=%d: %v", last.Offset, err)
	}
}
