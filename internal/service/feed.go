package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"showtracker/internal/metrics"
	"showtracker/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256
)

// Client 代表一個訂閱影集變動的 WebSocket 連線
type Client struct {
	Conn     *websocket.Conn
	SendChan chan models.ShowEvent // 非同步傳送事件的通道
}

// FeedService 管理所有 feed 連線並廣播影集事件
type FeedService struct {
	clients    map[*Client]bool
	clientsMux sync.RWMutex
	log        zerolog.Logger
}

func NewFeedService(log zerolog.Logger) *FeedService {
	return &FeedService{
		clients: make(map[*Client]bool),
		log:     log.With().Str("component", "feed").Logger(),
	}
}

// HandleConnection 註冊連線並阻塞到連線結束
func (s *FeedService) HandleConnection(conn *websocket.Conn) {
	client := &Client{
		Conn:     conn,
		SendChan: make(chan models.ShowEvent, sendBufferSize),
	}

	s.addClient(client)
	defer func() {
		s.removeClient(client)
		conn.Close()
	}()

	go s.writePump(client)
	s.readPump(client)
}

// readPump 只處理控制訊息，客戶端送來的內容一律忽略
func (s *FeedService) readPump(client *Client) {
	client.Conn.SetReadLimit(maxMessageSize)
	client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Warn().Err(err).Msg("websocket unexpected close")
			}
			return
		}
	}
}

func (s *FeedService) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				s.log.Error().Err(err).Msg("event encoding error")
				continue
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Publish 將事件廣播給所有連線，佇列已滿的客戶端會被斷線
func (s *FeedService) Publish(event models.ShowEvent) {
	var slow []*Client

	s.clientsMux.RLock()
	for client := range s.clients {
		select {
		case client.SendChan <- event:
		default:
			slow = append(slow, client)
		}
	}
	s.clientsMux.RUnlock()

	for _, client := range slow {
		s.log.Warn().Msg("dropping slow feed client")
		s.removeClient(client)
	}
}

// ClientCount 回傳目前在線的連線數
func (s *FeedService) ClientCount() int {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()
	return len(s.clients)
}

// Close 關閉所有連線，用於服務關閉時
func (s *FeedService) Close() {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	for client := range s.clients {
		delete(s.clients, client)
		close(client.SendChan)
		metrics.FeedClients.Dec()
	}
}

func (s *FeedService) addClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	s.clients[client] = true
	metrics.FeedClients.Inc()
	s.log.Debug().Int("clients", len(s.clients)).Msg("feed client connected")
}

// removeClient 可重複呼叫，SendChan 只會被關閉一次
func (s *FeedService) removeClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if _, ok := s.clients[client]; !ok {
		return
	}
	delete(s.clients, client)
	close(client.SendChan)
	metrics.FeedClients.Dec()
	s.log.Debug().Int("clients", len(s.clients)).Msg("feed client disconnected")
}
