package session

import (
	"log/slog"
	"sync"

	"github.com/vocabquest/vocabquest-go/internal/model"
)

// subscriberBuffer is the per-subscriber event backlog. A subscriber
// that falls further behind than this starts losing events.
const subscriberBuffer = 16

// Notifier fans room events out to per-room subscribers. It implements
// model.EventSink, so controllers publish into it directly, which
// means timer-driven transitions reach subscribers the same way
// user-driven ones do.
//
// Publish never blocks: a subscriber whose buffer is full has the
// event dropped with a warning, per the SSE hub behavior. Subscribers
// carry full room snapshots in every event, so a dropped event costs
// freshness, not correctness.
type Notifier struct {
	logger *slog.Logger

	mu     sync.RWMutex
	nextID int
	subs   map[model.RoomID]map[int]chan model.RoomEvent
}

// NewNotifier creates a new Notifier
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		logger: logger,
		subs:   make(map[model.RoomID]map[int]chan model.RoomEvent),
	}
}

// Publish implements model.EventSink
func (n *Notifier) Publish(event model.RoomEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for id, ch := range n.subs[event.RoomID] {
		select {
		case ch <- event:
		default:
			n.logger.Warn("room event dropped - subscriber buffer full",
				slog.String("room_id", string(event.RoomID)),
				slog.Int("subscriber", id),
				slog.String("event_type", string(event.Type)),
			)
		}
	}
}

// Subscribe registers interest in a room's events. The returned cancel
// function unregisters and closes the channel; it is safe to call more
// than once.
func (n *Notifier) Subscribe(roomID model.RoomID) (<-chan model.RoomEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan model.RoomEvent, subscriberBuffer)
	if n.subs[roomID] == nil {
		n.subs[roomID] = make(map[int]chan model.RoomEvent)
	}
	n.subs[roomID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs[roomID], id)
			if len(n.subs[roomID]) == 0 {
				delete(n.subs, roomID)
			}
			close(ch)
		})
	}

	return ch, cancel
}

// SubscriberCount returns the number of active subscribers for a room
func (n *Notifier) SubscriberCount(roomID model.RoomID) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs[roomID])
}

var _ model.EventSink = (*Notifier)(nil)
