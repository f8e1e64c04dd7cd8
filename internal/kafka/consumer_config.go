package kafka

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/media_consumer/internal/batch"
	"github.com/segmentio/kafka-go"
)

const (
	defaultPollTimeout    = 100 * time.Millisecond
	defaultMaxPollRecords = 500
	defaultCommitTimeout  = 5 * time.Second
	defaultDialTimeout    = 10 * time.Second
)

// ErrInvalidConfig — конфигурация потребителя неполная.
var ErrInvalidConfig = errors.New("invalid kafka consumer config")

type ConsumerConfig struct {
	Brokers     []string
	Topics      []string
	GroupID     string
	StartOffset string
	ClientID    string

	PollTimeout    time.Duration // ожидание одного цикла опроса
	MaxPollRecords int           // максимум сообщений за цикл
	BatchSize      int           // порог сброса пачки
	CommitTimeout  time.Duration
	DialTimeout    time.Duration

	TLS  TLSConfig
	SASL SASLConfig
}

// withDefaults — копия с подставленными значениями по умолчанию.
func (c ConsumerConfig) withDefaults() ConsumerConfig {
	if c.PollTimeout <= 0 {
		c.PollTimeout = defaultPollTimeout
	}
	if c.MaxPollRecords <= 0 {
		c.MaxPollRecords = defaultMaxPollRecords
	}
	if c.BatchSize <= 0 {
		c.BatchSize = batch.DefaultThreshold
	}
	if c.CommitTimeout <= 0 {
		c.CommitTimeout = defaultCommitTimeout
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = defaultDialTimeout
	}
	return c
}

func (c *ConsumerConfig) validate() error {
	switch {
	case len(c.Brokers) == 0:
		return fmt.Errorf("%w: brokers are required", ErrInvalidConfig)
	case len(c.Topics) == 0:
		return fmt.Errorf("%w: at least one topic is required", ErrInvalidConfig)
	case strings.TrimSpace(c.GroupID) == "":
		return fmt.Errorf("%w: group id is required", ErrInvalidConfig)
	}
	return nil
}

// Dialer — соединение с брокером с учётом TLS/SASL; общий для reader'а и проверки подписки.
func (c *ConsumerConfig) Dialer() (*kafka.Dialer, error) {
	tlsCfg, err := c.TLS.build()
	if err != nil {
		return nil, err
	}
	mechanism, err := c.SASL.mechanism()
	if err != nil {
		return nil, err
	}

	timeout := c.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	return &kafka.Dialer{
		ClientID:      c.ClientID,
		Timeout:       timeout,
		DualStack:     true,
		TLS:           tlsCfg,
		SASLMechanism: mechanism,
	}, nil
}

// ReaderConfig — настройки kafka.Reader: группа, ручной коммит оффсетов, один или несколько топиков.
func (c *ConsumerConfig) ReaderConfig() (kafka.ReaderConfig, error) {
	if err := c.validate(); err != nil {
		return kafka.ReaderConfig{}, err
	}
	dialer, err := c.Dialer()
	if err != nil {
		return kafka.ReaderConfig{}, err
	}

	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Dialer:         dialer,
		CommitInterval: 0,
	}
	if len(c.Topics) == 1 {
		rc.Topic = c.Topics[0]
	} else {
		rc.GroupTopics = c.Topics
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "last", "latest":
		rc.StartOffset = kafka.LastOffset
	default:
		rc.StartOffset = kafka.FirstOffset
	}

	if err := rc.Validate(); err != nil {
		return kafka.ReaderConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return rc, nil
}
