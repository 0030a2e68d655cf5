package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
)

// Event types
const (
	EventOrderPlaced      = "order_placed"
	EventBookingConfirmed = "booking_confirmed"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client kitchen display dan mengirim event ke semuanya
type Hub struct {
	clients map[*websocket.Conn]string // conn -> station
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

// RegisterClient -> menambahkan connection ke set dengan nama station
func (h *Hub) RegisterClient(conn *websocket.Conn, station string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = station
	utils.InfoLogger.Printf("KDS client registered (station=%s, total=%d)", station, len(h.clients))
}

// UnregisterClient -> melepaskan connection
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// BroadcastOrderPlaced -> order baru dari halaman Order Online
func (h *Hub) BroadcastOrderPlaced(sessionID string, summary models.OrderSummary) {
	h.Broadcast(Message{
		Event: EventOrderPlaced,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"order":      summary,
		},
	})
}

// BroadcastBookingConfirmed -> reservasi meja baru
func (h *Hub) BroadcastBookingConfirmed(sessionID string, confirmation models.BookingConfirmation) {
	h.Broadcast(Message{
		Event: EventBookingConfirmed,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"booking":    confirmation,
		},
	})
}

// Broadcast sends msg to every client. Clients that fail the write are dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, station := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending %s to station %s: %v", msg.Event, station, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
