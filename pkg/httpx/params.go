package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int { return max(lo, min(v, hi)) }

// ParseLimitOffset — limit/offset страницы из query.
// Нечисловой limit → defaultLimit, затем обрезка в [1, maxLimit]; отрицательный или битый offset → 0.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	limit = ClampInt(limit, 1, maxLimit)

	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
