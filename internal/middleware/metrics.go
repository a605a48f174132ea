package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"showtracker/internal/metrics"
)

// Metrics 記錄請求數量與延遲，route 使用註冊時的路徑以避免 label 爆量
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route).
			Observe(time.Since(start).Seconds())
	}
}
