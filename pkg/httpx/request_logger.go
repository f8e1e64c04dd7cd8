package httpx

import (
	"time"

	"github.com/Gunvolt24/media_consumer/internal/ports"
	"github.com/Gunvolt24/media_consumer/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// Пути из skip (служебные: метрики, ping, опрос статуса) не логируются.
func RequestLogger(log ports.Logger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, ok := skipped[path]; ok {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		sp, _ := ctxmeta.SpanIDFromContext(ctx)

		log.Infof(ctx,
			"request id=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			rid, sp,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
