package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/media_consumer/config"
	"github.com/Gunvolt24/media_consumer/internal/app"
	"github.com/Gunvolt24/media_consumer/internal/kafka"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

// run — код выхода: 0 для записанной пачки и для остановки по сигналу, 1 для остальных исходов.
func run() int {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// SIGINT/SIGTERM отменяют ctx; App.Run переводит это в RequestShutdown и ждёт цикл.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	runErr := application.Run(ctx)
	status := application.KafkaConsumer.Status()

	if runErr != nil {
		application.Logger.Errorf(ctx, "media consumer exited, outcome=%s state=%s: %v", status.Outcome, status.State, runErr)
		return 1
	}
	if kafka.Outcome(status.Outcome) == kafka.OutcomeShutdown {
		application.Logger.Infof(ctx, "media consumer exited on signal, %d records not written", status.Accumulated)
		return 0
	}
	application.Logger.Infof(ctx, "media consumer exited, batch of %d records written", status.Flushed)
	return 0
}
