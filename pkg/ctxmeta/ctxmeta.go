// Пакет ctxmeta — нейтральный слой для метаданных, которые прокидываются через context.Context
// (request_id HTTP-запроса, flush_id записи пачки, trace_id).
// HTTP-слой, потребитель и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyFlushID   ctxKey = "flush_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithFlushID помечает контекст идентификатором записи пачки.
func WithFlushID(ctx context.Context, flushID string) context.Context {
	return withString(ctx, KeyFlushID, flushID)
}

// FlushIDFromContext достаёт flush_id из контекста.
func FlushIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyFlushID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
