package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 是傳遞請求 ID 的標頭
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey 是請求 ID 存放在 gin.Context 的鍵
	RequestIDKey = "requestID"
)

// RequestID 沿用客戶端帶來的請求 ID，沒有則產生新的 UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
