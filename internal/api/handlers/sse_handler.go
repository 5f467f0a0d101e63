package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/providers"
)

// SSEHandler streams interaction events to live consumers over Server-Sent
// Events. Streaming is a read-only view of the event bus; a slow consumer
// never blocks recording.
type SSEHandler struct {
	eventBus providers.EventBus
	clients  map[string]map[chan *entities.InteractionEvent]bool
	mu       sync.RWMutex
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(eventBus providers.EventBus) *SSEHandler {
	return &SSEHandler{
		eventBus: eventBus,
		clients:  make(map[string]map[chan *entities.InteractionEvent]bool),
	}
}

// StreamInteractions handles SSE connections for live interaction events.
// GET /api/stream/interactions?action=click
//
// Without an action parameter the stream carries every interaction event.
func (h *SSEHandler) StreamInteractions(w http.ResponseWriter, r *http.Request) {
	channel := providers.EventChannelInteractions
	if raw := r.URL.Query().Get("action"); raw != "" {
		action := entities.InteractionAction(raw)
		if !action.Valid() {
			respondWithError(w, http.StatusBadRequest, "invalid action: "+raw)
			return
		}
		channel = providers.GetActionChannel(action)
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	clientChan := make(chan *entities.InteractionEvent, 10)
	h.registerClient(channel, clientChan)
	defer h.unregisterClient(channel, clientChan)

	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		log.Printf("Failed to subscribe to channel %s: %v", channel, err)
		return
	}

	h.sendEvent(w, "connected", map[string]interface{}{
		"channel":   channel,
		"timestamp": time.Now(),
	})
	flusher.Flush()

	go h.forwardEvents(r.Context(), eventChan, clientChan)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Printf("Client disconnected from interaction stream: %s", channel)
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event := <-clientChan:
			if event == nil {
				continue
			}
			h.sendEvent(w, string(event.Action), event)
			flusher.Flush()
		}
	}
}

// forwardEvents forwards events from the event bus to a client channel
func (h *SSEHandler) forwardEvents(ctx context.Context, eventChan <-chan *entities.InteractionEvent, clientChan chan<- *entities.InteractionEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			select {
			case clientChan <- event:
			default:
				// Client channel full, skip event
			}
		}
	}
}

func (h *SSEHandler) registerClient(channel string, clientChan chan *entities.InteractionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[channel] == nil {
		h.clients[channel] = make(map[chan *entities.InteractionEvent]bool)
	}
	h.clients[channel][clientChan] = true
	log.Printf("Client registered for channel: %s (total: %d)", channel, len(h.clients[channel]))
}

func (h *SSEHandler) unregisterClient(channel string, clientChan chan *entities.InteractionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, exists := h.clients[channel]; exists {
		delete(clients, clientChan)
		if len(clients) == 0 {
			delete(h.clients, channel)
		}
	}
}

// sendEvent sends an SSE event to the client
func (h *SSEHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal event data: %v", err)
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}

// GetClientCount returns the number of connected clients for debugging
func (h *SSEHandler) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, clients := range h.clients {
		count += len(clients)
	}
	return count
}
