package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mirofs/mirofs/internal/infrastructure/monitoring"
	"github.com/mirofs/mirofs/internal/logging"
	"github.com/mirofs/mirofs/internal/vfs"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler streams tree store change events to WebSocket clients
type Handler struct {
	store   *vfs.Store
	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(store *vfs.Store, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// HandleConnection upgrades the connection and streams change events until
// the client disconnects.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	events, cancel := h.store.Subscribe(64)
	defer cancel()

	// Send welcome message
	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to mirofs event stream",
	})

	// Drain client frames so pings and close frames are processed; the
	// stream is one-way otherwise.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			h.metrics.RecordWSEvent(string(event.Type))
			if err := h.send(conn, map[string]interface{}{
				"type":      "event",
				"event":     event,
				"timestamp": time.Now().Unix(),
			}); err != nil {
				h.logger.Debug("websocket write failed", zap.Error(err))
				return
			}
		case <-done:
			return
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) error {
	return conn.WriteJSON(data)
}
