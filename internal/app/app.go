package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Gunvolt24/media_consumer/internal/lifecycle"
	"github.com/Gunvolt24/media_consumer/internal/ports"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 30 * time.Second

// ErrShutdownTimeout — цикл опроса не завершился за отведённое время.
var ErrShutdownTimeout = errors.New("consumer loop did not finish before shutdown timeout")

// App — собранное приложение: фоновый цикл опроса, координатор остановки и служебный HTTP.
type App struct {
	Logger        ports.Logger          // логгер
	HTTPServer    *http.Server          // HTTP-сервер
	KafkaConsumer ports.MessageConsumer // цикл опроса
	Coordinator   *lifecycle.Coordinator

	shutdownTimeout time.Duration

	startOnce sync.Once
	runErr    error // результат цикла; читать только после Coordinator.Done()
}

// New — приложение поверх готовых зависимостей. Отмена parent равносильна запросу остановки.
func New(parent context.Context, log ports.Logger, srv *http.Server, consumer ports.MessageConsumer, shutdownTimeout time.Duration) *App {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &App{
		Logger:          log,
		HTTPServer:      srv,
		KafkaConsumer:   consumer,
		Coordinator:     lifecycle.New(parent),
		shutdownTimeout: shutdownTimeout,
	}
}

// Start — запускает цикл опроса в фоне. Ворота завершения открываются при любом исходе цикла.
func (a *App) Start() {
	a.startOnce.Do(func() {
		ctx := a.Coordinator.Context()
		go func() {
			defer a.Coordinator.Release()
			a.Logger.Infof(ctx, "kafka consumer starting")
			a.runErr = a.KafkaConsumer.Run(ctx)
		}()
	})
}

// Shutdown — обработчик завершения: запросить остановку и дождаться конца цикла.
// Безопасен для повторных и конкурентных вызовов; ctx ограничивает только ожидание.
func (a *App) Shutdown(ctx context.Context) error {
	a.startOnce.Do(func() {
		// цикл не запускался — ждать нечего
		a.Coordinator.Release()
	})
	a.Coordinator.RequestShutdown()
	return a.Coordinator.AwaitCompletion(ctx)
}

// Err — результат цикла опроса; nil, пока цикл не завершился.
func (a *App) Err() error {
	if !a.Coordinator.Released() {
		return nil
	}
	return a.runErr
}

// Run — запускает цикл и HTTP-сервер; ждёт завершения цикла или отмены ctx (сигнал),
// в обоих случаях дожидается конца цикла и останавливает HTTP.
// Возвращает ошибку цикла (nil для записанной пачки и для запрошенной остановки).
func (a *App) Run(ctx context.Context) error {
	a.Start()

	g, gctx := errgroup.WithContext(ctx)

	// Служебный HTTP-сервер.
	g.Go(func() error {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	// Ожидание конца цикла или сигнала, затем остановка.
	g.Go(func() error {
		select {
		case <-a.Coordinator.Done():
			a.Logger.Infof(ctx, "kafka consumer finished, stopping service")
		case <-gctx.Done():
			a.Logger.Infof(ctx, "shutdown requested, waiting for kafka consumer")
		}

		stopCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		if err := a.Shutdown(stopCtx); err != nil {
			a.Logger.Errorf(ctx, "kafka consumer did not stop in %s: %v", a.shutdownTimeout, err)
		}

		if err := a.HTTPServer.Shutdown(stopCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if !a.Coordinator.Released() {
		return ErrShutdownTimeout
	}

	a.Logger.Infof(ctx, "service stopped")
	return a.runErr
}
