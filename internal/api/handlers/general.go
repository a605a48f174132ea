package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HelloWorld 回傳固定的問候內容
func HelloWorld(c *gin.Context) {
	Respond(c, http.StatusOK, "", gin.H{"content": "hello world!"})
}

// Mirror 將路徑中的名稱原樣回傳
func Mirror(c *gin.Context) {
	Respond(c, http.StatusOK, "", gin.H{"name": c.Param("name")})
}

// Health 基本的健康檢查
func Health(c *gin.Context) {
	Respond(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// NotFound 處理不存在的路徑
func NotFound(c *gin.Context) {
	Respond(c, http.StatusNotFound, "Not found", nil)
}
