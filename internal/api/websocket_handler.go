package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/utils"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamSubscriber delivers text stream events published for a tenant
type StreamSubscriber interface {
	Subscribe(ctx context.Context, tenantID string, callback func(*dto.TextStreamEvent)) error
	Unsubscribe(tenantID string)
	Close()
}

type Client struct {
	conn     *websocket.Conn
	tenantID string
	streamID string // empty follows every stream of the tenant
	send     chan []byte
}

func (c *Client) wants(event *dto.TextStreamEvent) bool {
	return c.tenantID == event.TenantID && (c.streamID == "" || c.streamID == event.StreamID)
}

type WebSocketHandler struct {
	clients       map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	mutex         sync.Mutex
	logger        *logger.Logger
	pubsub        StreamSubscriber
	ctx           context.Context
	cancel        context.CancelFunc
	tenantClients map[string]int // Count of clients per tenant
}

func NewWebSocketHandler(logger *logger.Logger, pubsub StreamSubscriber) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:       make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		logger:        logger,
		pubsub:        pubsub,
		ctx:           ctx,
		cancel:        cancel,
		tenantClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Follow text streams
// @Description Upgrades to a websocket that relays text stream events of the caller's tenant. Pass stream_id to follow a single stream
// @Tags streams
// @Param stream_id query string false "Only relay this stream"
// @Success 101
// @Failure 401 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/streams/ws [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	tenantID := c.GetString(string(utils.TenantIDKey))
	if tenantID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: msgNoTenant})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response
		h.logger.Warnf("Failed to upgrade connection for tenant %s: %v", tenantID, err)
		return
	}

	client := &Client{
		conn:     conn,
		tenantID: tenantID,
		streamID: c.Query("stream_id"),
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.tenantClients[client.tenantID]++

			// Subscribe to tenant's channel if this is the first client
			if h.tenantClients[client.tenantID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.tenantID, h.handleStreamEvent); err != nil {
					h.logger.Errorf("Failed to subscribe to tenant %s: %v", client.tenantID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeClient(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// removeClient must be called with the mutex held
func (h *WebSocketHandler) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.tenantClients[client.tenantID]--
	if h.tenantClients[client.tenantID] == 0 {
		h.pubsub.Unsubscribe(client.tenantID)
		delete(h.tenantClients, client.tenantID)
	}
}

// handleStreamEvent fans an event out to the clients following it
func (h *WebSocketHandler) handleStreamEvent(event *dto.TextStreamEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("Error marshaling stream event: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if !client.wants(event) {
			continue
		}
		select {
		case client.send <- message:
		default: // slow client
			h.removeClient(client)
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.tenantID, err)
			}
			break
		}

		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Ignoring message from client %s: %s", client.tenantID, string(message))
		}
	}
}
