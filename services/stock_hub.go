package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	Conn *websocket.Conn

	// serializes writes; gorilla allows only one concurrent writer
	writeMu sync.Mutex
}

func (c *WSClient) Write(messageType int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// StockHub fans supplier inventory changes out to every connected client,
// so product and cart pages can refresh availability without polling.
type StockHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewStockHub() *StockHub {
	return &StockHub{clients: make(map[*WSClient]struct{})}
}

func (h *StockHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *StockHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

type StockEvent struct {
	Kind          string `json:"kind"`
	ProductID     uint   `json:"product_id"`
	StockQuantity int    `json:"stock_quantity"`
	InStock       bool   `json:"in_stock"`
}

func (h *StockHub) BroadcastStock(ev StockEvent) {
	msg, _ := json.Marshal(ev)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Write(websocket.TextMessage, msg)
	}
}
