package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// topicSubscriber — проверка подписки: брокер доступен, все топики есть в метаданных.
// kafka.Reader подключается лениво, поэтому без этой проверки недоступный источник
// проявился бы только бесконечными попытками внутри FetchMessage.
type topicSubscriber struct {
	dialer  *kafka.Dialer
	brokers []string
}

func newTopicSubscriber(dialer *kafka.Dialer, brokers []string) *topicSubscriber {
	return &topicSubscriber{dialer: dialer, brokers: brokers}
}

// Subscribe пробует брокеров по очереди; ошибка — только если ни один не подтвердил топики.
func (s *topicSubscriber) Subscribe(ctx context.Context, topics []string) error {
	var errs []error
	for _, broker := range s.brokers {
		err := s.checkBroker(ctx, broker, topics)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		errs = append(errs, fmt.Errorf("broker %s: %w", broker, err))
	}
	return errors.Join(errs...)
}

func (s *topicSubscriber) checkBroker(ctx context.Context, broker string, topics []string) error {
	conn, err := s.dialer.DialContext(ctx, "tcp", broker)
	if err != nil {
		return err
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(topics...)
	if err != nil {
		return fmt.Errorf("read partitions: %w", err)
	}
	return missingTopics(topics, partitions)
}

// missingTopics — ошибка, если у какого-то топика нет ни одной партиции.
func missingTopics(topics []string, partitions []kafka.Partition) error {
	seen := make(map[string]struct{}, len(partitions))
	for _, p := range partitions {
		seen[p.Topic] = struct{}{}
	}
	for _, t := range topics {
		if _, ok := seen[t]; !ok {
			return fmt.Errorf("topic %q not found", t)
		}
	}
	return nil
}
