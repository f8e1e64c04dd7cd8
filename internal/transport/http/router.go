package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/media_consumer/internal/ports"
	"github.com/Gunvolt24/media_consumer/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Handler — служебная HTTP-поверхность потребителя: статус цикла и чтение записанных данных.
type Handler struct {
	consumer       ports.MessageConsumer
	service        ports.MediaReadService
	log            ports.Logger
	handlerTimeout time.Duration
}

func NewHandler(consumer ports.MessageConsumer, service ports.MediaReadService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{consumer: consumer, service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — gin-роутер. otelServiceName пустой — без трейсинга запросов.
func NewRouter(h *Handler, otelServiceName, metricsPath string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log, metricsPath, "/ping", "/status"))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET(metricsPath, gin.WrapH(promhttp.Handler()))

	r.GET("/status", h.status)
	r.GET("/media/count", h.mediaCount)
	r.GET("/user/:id/media", h.listMediaByUser)

	return r
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.handlerTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.handlerTimeout)
}

// status — снимок состояния цикла опроса.
func (h *Handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, h.consumer.Status())
}

func (h *Handler) mediaCount(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	n, err := h.service.MediaCount(ctx)
	if err != nil {
		h.log.Errorf(ctx, "MediaCount failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *Handler) listMediaByUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty user id"})
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, defaultLimit, maxLimit)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	items, err := h.service.MediaByUser(ctx, id, limit, offset)
	if err != nil {
		h.log.Errorf(ctx, "MediaByUser failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
