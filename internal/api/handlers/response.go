package handlers

import (
	"github.com/gin-gonic/gin"
)

// Response 是所有 API 回應共用的外層結構
// Success 一律由 Code 推導：200 <= Code < 300
type Response struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  gin.H  `json:"result"`
}

// NewResponse 建立回應結構，data 為 nil 時 result 輸出為 null
func NewResponse(status int, message string, data gin.H) Response {
	return Response{
		Code:    status,
		Success: status >= 200 && status < 300,
		Message: message,
		Result:  data,
	}
}

// Respond 以統一格式寫出 JSON 回應
func Respond(c *gin.Context, status int, message string, data gin.H) {
	c.JSON(status, NewResponse(status, message, data))
}

// Abort 寫出回應並中止後續的 handler
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewResponse(status, message, nil))
}
