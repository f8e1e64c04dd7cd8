package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_decoded_total",
			Help: "Number of messages decoded into media records",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages that failed to decode",
		},
		[]string{"topic"},
	)
)

var (
	BatchFlushes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_batch_flushes_total",
			Help: "Batch writes to the store",
		},
		[]string{"result"}, // ok|error
	)
	BatchFlushDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "media_batch_flush_duration_seconds",
			Help:    "Duration of a single batch write",
			Buckets: prometheus.DefBuckets,
		},
	)
	BatchAccumulated = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_batch_accumulated",
			Help: "Number of records currently held in memory",
		},
	)
	ConsumerOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_consumer_outcomes_total",
			Help: "Terminal outcomes of the poll loop",
		},
		[]string{"outcome"},
	)
)

// MustRegister регистрирует метрики в глобальном реестре; повторный вызов не паникует.
func MustRegister() {
	for _, c := range []prometheus.Collector{
		KafkaMessagesConsumed, KafkaMessagesDecoded, KafkaMessagesFailed,
		BatchFlushes, BatchFlushDuration, BatchAccumulated, ConsumerOutcomes,
	} {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
