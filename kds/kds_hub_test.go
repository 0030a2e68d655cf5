package kds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-site/models"
)

func startHubServer(t *testing.T, hub *Hub) *httptest.Server {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.RegisterClient(conn, "kitchen")
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.UnregisterClient(conn)
	}))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestBroadcastOrderPlaced(t *testing.T) {
	hub := NewHub()
	server := startHubServer(t, hub)
	conn := dial(t, server)

	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastOrderPlaced("session-1", models.OrderSummary{
		Items: []models.OrderLine{{MenuItem: models.MenuItem{ID: 1, Name: "Dal Makhani", Price: 300}, Qty: 2}},
		Total: 600,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Event string `json:"event"`
		Data  struct {
			SessionID string              `json:"session_id"`
			Order     models.OrderSummary `json:"order"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, EventOrderPlaced, msg.Event)
	assert.Equal(t, "session-1", msg.Data.SessionID)
	assert.Equal(t, 600, msg.Data.Order.Total)
}

func TestBroadcastBookingConfirmed(t *testing.T) {
	hub := NewHub()
	server := startHubServer(t, hub)
	conn := dial(t, server)

	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.BroadcastBookingConfirmed("session-2", models.BookingConfirmation{Date: "2026-10-24", Time: "20:00", PartySize: 4, TableNumber: 9})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, EventBookingConfirmed, msg.Event)
}

func TestUnregisterOnDisconnect(t *testing.T) {
	hub := NewHub()
	server := startHubServer(t, hub)
	conn := dial(t, server)

	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcastWithoutClients(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Broadcast(Message{Event: EventOrderPlaced, Data: nil})
	})
}
