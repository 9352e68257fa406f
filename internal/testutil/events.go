package testutil

import (
	"sync"

	"github.com/vocabquest/vocabquest-go/internal/model"
)

// CaptureSink records published room events for assertions in tests
type CaptureSink struct {
	mu     sync.Mutex
	events []model.RoomEvent
}

// NewCaptureSink creates a new CaptureSink
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

// Publish implements model.EventSink
func (s *CaptureSink) Publish(event model.RoomEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a copy of all recorded events
func (s *CaptureSink) Events() []model.RoomEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.RoomEvent, len(s.events))
	copy(out, s.events)
	return out
}

// EventTypes returns the types of all recorded events in order
func (s *CaptureSink) EventTypes() []model.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]model.EventType, len(s.events))
	for i, e := range s.events {
		types[i] = e.Type
	}
	return types
}

// Last returns the most recent event, or nil if none recorded
func (s *CaptureSink) Last() *model.RoomEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return nil
	}
	e := s.events[len(s.events)-1]
	return &e
}

// Reset clears all recorded events
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
