package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/media_consumer/pkg/ctxmeta"
	"github.com/Gunvolt24/media_consumer/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.FromZap(zap.New(core))

	ctx := ctxmeta.WithFlushID(context.Background(), "f-1")
	ctx = ctxmeta.WithRequestID(ctx, "r-1")
	l.Infof(ctx, "flushed %d records", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "flushed 3 records", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "f-1", fields["flush_id"])
	require.Equal(t, "r-1", fields["request_id"])
}

func TestZapLogger_Levels_NoContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core))

	l.Warnf(context.Background(), "warn %s", "x")
	l.Errorf(context.Background(), "error %s", "y")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Empty(t, entries[0].ContextMap())
}

func TestNewZapLogger_DevAndProd(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := logger.NewZapLogger(prod)
		require.NoError(t, err)
		require.NotNil(t, l.Base())
		require.NotNil(t, l.Sugared())
		_ = cleanup()
	}
}
