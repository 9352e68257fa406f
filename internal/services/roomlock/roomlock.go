package roomlock

import (
	"sync"

	"github.com/vocabquest/vocabquest-go/internal/model"
)

// Keyed serializes mutations per room. All state transitions for a
// given room must run under its lock so that submissions, ticks and
// round advances from different goroutines never interleave.
//
// Locks are never removed; a room's mutex is a few dozen bytes and
// room churn is low. Revisit if rooms ever number in the millions.
type Keyed struct {
	mu    sync.Mutex
	locks map[model.RoomID]*sync.Mutex
}

// New creates a new Keyed lock set
func New() *Keyed {
	return &Keyed{
		locks: make(map[model.RoomID]*sync.Mutex),
	}
}

// Lock acquires the lock for the given room and returns the unlock
// function. Typical use:
//
//	defer locks.Lock(roomID)()
func (k *Keyed) Lock(id model.RoomID) func() {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
