package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"showtracker/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedHandler 處理影集變動的 WebSocket 訂閱
type FeedHandler struct {
	feed *service.FeedService
}

// NewFeedHandler 創建一個新的 FeedHandler 實例
func NewFeedHandler(feed *service.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// HandleWebSocket 升級連線並持續推送影集事件，直到客戶端斷線
func (h *FeedHandler) HandleWebSocket(c *gin.Context) {
	// 升級失敗時 upgrader 已經寫出錯誤回應
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.feed.HandleConnection(conn)
}
