package app

import (
	"context"
	"net/http"
	"strings"

	"github.com/Gunvolt24/media_consumer/config"
	"github.com/Gunvolt24/media_consumer/internal/kafka"
	"github.com/Gunvolt24/media_consumer/internal/ports"
	"github.com/Gunvolt24/media_consumer/internal/repo/postgres"
	rest "github.com/Gunvolt24/media_consumer/internal/transport/http"
	"github.com/Gunvolt24/media_consumer/internal/usecase"
	"github.com/Gunvolt24/media_consumer/pkg/logger"
	"github.com/Gunvolt24/media_consumer/pkg/metrics"
	"github.com/Gunvolt24/media_consumer/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// consumerConfig — перенос настроек Kafka из env-конфига в конфиг потребителя.
func consumerConfig(k config.Kafka) kafka.ConsumerConfig {
	return kafka.ConsumerConfig{
		Brokers:        k.Brokers,
		Topics:         k.Topics,
		GroupID:        k.GroupID,
		ClientID:       k.ClientID,
		StartOffset:    k.StartOffset,
		PollTimeout:    k.PollTimeout,
		MaxPollRecords: k.MaxPollRecords,
		BatchSize:      k.BatchSize,
		CommitTimeout:  k.CommitTimeout,
		DialTimeout:    k.DialTimeout,
		TLS: kafka.TLSConfig{
			Enabled:            k.TLS.Enabled,
			CAFile:             k.TLS.CAFile,
			CertFile:           k.TLS.CertFile,
			KeyFile:            k.TLS.KeyFile,
			InsecureSkipVerify: k.TLS.InsecureSkipVerify,
		},
		SASL: kafka.SASLConfig{
			Enabled:   k.SASL.Enabled,
			Mechanism: k.SASL.Mechanism,
			Username:  k.SASL.Username,
			Password:  k.SASL.Password,
		},
	}
}

// newHTTPServer — служебный HTTP: статус, метрики, чтение записанного.
func newHTTPServer(cfg *config.Config, consumer ports.MessageConsumer, service ports.MediaReadService, log ports.Logger) *http.Server {
	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewHandler(consumer, service, log, cfg.HTTP.WriteTimeout)
	router := rest.NewRouter(handler, otelServiceName, cfg.Metrics.Path)

	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		closeLogger()
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Доменный слой: репозиторий → сервис записи пачек.
	mediaRepo := postgres.NewMediaRepository(pool)
	mediaService := usecase.NewMediaService(mediaRepo, logg)

	// Цикл опроса Kafka.
	kafkaCfg := consumerConfig(cfg.Kafka)
	consumer, err := kafka.NewConsumer(&kafkaCfg, mediaService, logg)
	if err != nil {
		_ = shutdownTrace(context.Background())
		pool.Close()
		closeLogger()
		return nil, func() {}, err
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	httpSrv := newHTTPServer(cfg, consumer, mediaService, logg)

	app := New(ctx, logg, httpSrv, consumer, cfg.ShutdownTimeout)

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}
		pool.Close()
		closeLogger()
	}

	return app, cleanup, nil
}
