package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/media_consumer/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("media"))
	beforeDecoded := testutil.ToFloat64(metrics.KafkaMessagesDecoded.WithLabelValues("media"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("media"))

	metrics.KafkaMessagesConsumed.WithLabelValues("media").Inc()
	metrics.KafkaMessagesDecoded.WithLabelValues("media").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("media").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("media")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesDecoded.WithLabelValues("media")); got != beforeDecoded+1 {
		t.Fatalf("KafkaMessagesDecoded: got=%v want=%v", got, beforeDecoded+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("media")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestBatchFlushes_ByResult(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.BatchFlushes.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(metrics.BatchFlushes.WithLabelValues("error"))

	metrics.BatchFlushes.WithLabelValues("ok").Inc()

	if got := testutil.ToFloat64(metrics.BatchFlushes.WithLabelValues("ok")); got != okBefore+1 {
		t.Fatalf("BatchFlushes(ok): got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.BatchFlushes.WithLabelValues("error")); got != errBefore {
		t.Fatalf("BatchFlushes(error): got=%v want=%v", got, errBefore)
	}
}

func TestBatchAccumulated_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.BatchAccumulated)

	metrics.BatchAccumulated.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.BatchAccumulated); got != cur+5 {
		t.Fatalf("BatchAccumulated after +5: got=%v want=%v", got, cur+5)
	}

	metrics.BatchAccumulated.Set(cur)
	if got := testutil.ToFloat64(metrics.BatchAccumulated); got != cur {
		t.Fatalf("BatchAccumulated restore: got=%v want=%v", got, cur)
	}
}
