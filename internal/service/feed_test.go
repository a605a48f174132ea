package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showtracker/internal/models"
)

func newFeedServer(t *testing.T, feed *FeedService) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		feed.HandleConnection(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestFeedService_BroadcastsToAllClients(t *testing.T) {
	feed := NewFeedService(zerolog.Nop())
	srv := newFeedServer(t, feed)

	a := dialFeed(t, srv)
	b := dialFeed(t, srv)
	require.Eventually(t, func() bool { return feed.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	feed.Publish(models.NewShowEvent(models.ShowCreated, models.Show{ID: 7, Name: "X", EpisodesSeen: 3}))

	for _, conn := range []*websocket.Conn{a, b} {
		var event models.ShowEvent
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		require.NoError(t, conn.ReadJSON(&event))
		assert.Equal(t, models.ShowCreated, event.Type)
		assert.Equal(t, "X", event.Show.Name)
		assert.Equal(t, 3, event.Show.EpisodesSeen)
		conn.Close()
	}

	require.Eventually(t, func() bool { return feed.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestFeedService_PublishWithoutClients(t *testing.T) {
	feed := NewFeedService(zerolog.Nop())
	feed.Publish(models.NewShowEvent(models.ShowDeleted, models.Show{ID: 1}))
	assert.Equal(t, 0, feed.ClientCount())
}

func TestFeedService_CloseDisconnectsClients(t *testing.T) {
	feed := NewFeedService(zerolog.Nop())
	srv := newFeedServer(t, feed)

	conn := dialFeed(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool { return feed.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	feed.Close()
	assert.Equal(t, 0, feed.ClientCount())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
