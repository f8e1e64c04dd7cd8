//go:build integration

package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	mykafka "github.com/Gunvolt24/media_consumer/internal/kafka"
	"github.com/Gunvolt24/media_consumer/internal/lifecycle"
	pgrepo "github.com/Gunvolt24/media_consumer/internal/repo/postgres"
	"github.com/Gunvolt24/media_consumer/internal/testutil"
	"github.com/Gunvolt24/media_consumer/internal/usecase"
	"github.com/Gunvolt24/media_consumer/pkg/decode"
	"github.com/Gunvolt24/media_consumer/pkg/logger"
)

type env struct {
	brokers []string
	repo    *pgrepo.MediaRepository
	svc     *usecase.MediaService
	log     *logger.ZapLogger
}

func startEnv(t *testing.T) *env {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stopPG, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(ctx, pg.DSN))

	kenv, stopKafka, err := testutil.StartKafkaTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKafka(context.Background()) })

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewMediaRepository(pg.Pool)
	return &env{brokers: kenv.Brokers, repo: repo, svc: usecase.NewMediaService(repo, logg), log: logg}
}

func (e *env) consumer(t *testing.T, topic, group string, batchSize int) *mykafka.Consumer {
	t.Helper()
	c, err := mykafka.NewConsumer(&mykafka.ConsumerConfig{
		Brokers:     e.brokers,
		Topics:      []string{topic},
		GroupID:     group,
		StartOffset: "first",
		BatchSize:   batchSize,
	}, e.svc, e.log)
	require.NoError(t, err)
	return c
}

// Kafka → декодер → накопитель → одна запись пачки в Postgres.
func TestConsumer_E2E_WritesBatchOnce(t *testing.T) {
	e := startEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup("media-itest")
	require.NoError(t, testutil.EnsureTopic(ctx, e.brokers[0], topic))

	batch := testutil.MakeBatch(5, "e2e-user")
	values := make([][]byte, 0, len(batch))
	for _, m := range batch {
		values = append(values, testutil.MediaJSON(m))
	}
	require.NoError(t, testutil.ProduceValues(ctx, e.brokers, topic, values...))

	c := e.consumer(t, topic, group, 3)
	require.NoError(t, c.Run(ctx))
	require.Equal(t, mykafka.OutcomeCompleted, c.Outcome())

	got, err := e.repo.ListByUser(ctx, "e2e-user", 10, 0)
	require.NoError(t, err)
	require.Equal(t, batch[:3], got)
}

// Битое сообщение до порога: ничего не записано.
func TestConsumer_E2E_DecodeFailure(t *testing.T) {
	e := startEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup("media-itest-bad")
	require.NoError(t, testutil.EnsureTopic(ctx, e.brokers[0], topic))

	good := testutil.MakeMedia(testutil.WithUser("bad-user"))
	require.NoError(t, testutil.ProduceValues(ctx, e.brokers, topic,
		testutil.MediaJSON(good),
		[]byte(`{"title":"no description","added_year":"2020","added_date":"d","userid":"bad-user","videoid":"v"}`),
	))

	c := e.consumer(t, topic, group, 3)
	err := c.Run(ctx)
	require.ErrorIs(t, err, decode.ErrDecode)
	require.Equal(t, mykafka.OutcomeDecodeFailed, c.Outcome())

	n, err := e.repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

// Пустой топик и запрос остановки через координатор: выход без записи.
func TestConsumer_E2E_ShutdownWhileIdle(t *testing.T) {
	e := startEnv(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	topic, group := testutil.UniqueTopicAndGroup("media-itest-idle")
	require.NoError(t, testutil.EnsureTopic(ctx, e.brokers[0], topic))

	c := e.consumer(t, topic, group, 3)
	coord := lifecycle.New(ctx)

	var runErr error
	go func() {
		defer coord.Release()
		runErr = c.Run(coord.Context())
	}()

	time.Sleep(2 * time.Second)
	coord.RequestShutdown()
	coord.RequestShutdown()

	require.NoError(t, coord.AwaitCompletion(ctx))
	require.NoError(t, runErr)
	require.Equal(t, mykafka.OutcomeShutdown, c.Outcome())
}

// Несуществующий брокер: подписка не устанавливается.
func TestConsumer_E2E_SubscribeFailure(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	c, err := mykafka.NewConsumer(&mykafka.ConsumerConfig{
		Brokers:     []string{"127.0.0.1:1"},
		Topics:      []string{"media"},
		GroupID:     "g",
		DialTimeout: time.Second,
	}, nil, logg)
	require.NoError(t, err)

	err = c.Run(context.Background())
	require.ErrorIs(t, err, mykafka.ErrSubscription)
	require.Equal(t, mykafka.OutcomeSubscribeFailed, c.Outcome())
}
