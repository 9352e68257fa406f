package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vocabquest/vocabquest-go/internal/api/response"
	"github.com/vocabquest/vocabquest-go/internal/model"
)

const (
	// Time between keepalive pings
	pingPeriod = 30 * time.Second
)

// Event is the wire payload for a room event. Room is the snapshot
// taken after the mutation applied.
type Event struct {
	Type      string         `json:"type"`
	RoomID    string         `json:"room_id"`
	UserID    string         `json:"user_id,omitempty"`
	Room      *response.Room `json:"room,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Encode renders a room event as an SSE frame. The event name mirrors
// the payload's type field so clients can use either addEventListener
// or a generic message handler.
func Encode(ev model.RoomEvent) ([]byte, error) {
	payload := Event{
		Type:      string(ev.Type),
		RoomID:    string(ev.RoomID),
		UserID:    string(ev.UserID),
		Timestamp: ev.Timestamp,
	}
	if ev.Room != nil {
		room := response.RoomFromModel(ev.Room)
		payload.Room = &room
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "event: %s\n", ev.Type)
	fmt.Fprintf(&buf, "data: %s\n\n", data)
	return buf.Bytes(), nil
}

// Serve streams room events to the client until the subscription
// channel closes or the client disconnects.
func Serve(w http.ResponseWriter, r *http.Request, events <-chan model.RoomEvent, logger *slog.Logger) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	// Send initial connection event
	_, _ = w.Write([]byte("event: connected\ndata: {\"status\":\"connected\"}\n\n"))
	flusher.Flush()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Subscription cancelled
				return
			}
			frame, err := Encode(ev)
			if err != nil {
				logger.Warn("failed to encode SSE event",
					slog.String("type", string(ev.Type)),
					slog.String("error", err.Error()))
				continue
			}
			if _, err := w.Write(frame); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			// Send keepalive comment
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			// Client disconnected
			return
		}
	}
}
