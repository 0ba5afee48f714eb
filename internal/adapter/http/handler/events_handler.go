package handler

import (
	"io"
	"time"

	"irispay/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams ledger change notifications over server-sent events
// so dashboards can refresh without polling.
type EventsHandler struct {
	ledger ports.LedgerStore
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(ledger ports.LedgerStore) *EventsHandler {
	return &EventsHandler{ledger: ledger}
}

// heartbeatInterval keeps idle SSE connections from being reaped by proxies.
const heartbeatInterval = 25 * time.Second

// Stream handles GET /api/v1/events. Notifications carry no payload; the
// client re-fetches whatever views it is showing.
func (h *EventsHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	// Push the headers out immediately so clients see the subscription as
	// established instead of blocking until the first event.
	c.Writer.Flush()

	// Buffered so a slow reader never blocks the notifier; a dropped tick
	// is fine because one pending signal already forces a refresh.
	changes := make(chan struct{}, 1)
	unsubscribe := h.ledger.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-changes:
			c.SSEvent("change", "ledger")
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}
