package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000

	wsTypeSession = "session"
	wsTypeError   = "error"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// upgrader checks the Origin header against the configured CORS origins.
func (h *Handler) upgrader() websocket.Upgrader {
	allowed := map[string]bool{}
	for _, o := range h.opts.AllowedOrigins {
		allowed[o] = true
	}
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || len(allowed) == 0 || allowed["*"] || allowed[origin]
		},
	}
}

// @Summary      Stream session snapshots
// @Description  Upgrades to a WebSocket and pushes the session every interval (?interval=2s or ?interval_ms=2000, max 10s).
// @Tags         sessions
// @Param        id           path   string  true   "Session ID"
// @Param        interval     query  string  false  "Go duration"
// @Param        interval_ms  query  int     false  "Milliseconds"
// @Success      101
// @Failure      404  {object}  map[string]string
// @Router       /ws/sessions/{id} [get]
func (h *Handler) wsSession(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.services.Wizard.Get(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "ws_get_session_failed", nil)
		return
	}
	interval := h.parseInterval(c)

	up := h.upgrader()
	conn, err := up.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendSession(ctx, conn, id); err != nil {
		h.log.Infow("ws_write_failed_initial", "session_id", id, "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendSession(ctx, conn, id); err != nil {
				h.log.Infow("ws_write_failed", "session_id", id, "err", err)
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// sendSession writes the current session snapshot. When the session is gone
// (expired or reset elsewhere) an error envelope is sent and the error returned.
func (h *Handler) sendSession(ctx context.Context, conn *websocket.Conn, id string) error {
	sess, err := h.services.Wizard.Get(ctx, id)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		_ = conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: err.Error()})
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: wsTypeSession, Data: viewOf(sess)})
}
