package vfs

import (
	"sync"
	"time"
)

// EventType classifies a tree mutation.
type EventType string

const (
	EventCreate EventType = "create"
	EventWrite  EventType = "write"
	EventDelete EventType = "delete"
	EventRename EventType = "rename"
	EventCopy   EventType = "copy"
	EventChmod  EventType = "chmod"
)

// Event describes one committed mutation. Path is the path the operation was
// invoked with.
type Event struct {
	Type EventType `json:"type"`
	Path string    `json:"path"`
	Time time.Time `json:"time"`
}

// eventBus fans mutation events out to subscribers. Delivery is best-effort:
// a subscriber whose buffer is full misses events rather than blocking the
// store.
type eventBus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[int]chan Event)}
}

func (b *eventBus) subscribe(buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, buffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *eventBus) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a mutation listener. The returned cancel func must be
// called to release the subscription; it closes the channel.
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	return s.events.subscribe(buffer)
}

func (s *Store) publish(t EventType, path string) {
	s.events.publish(Event{Type: t, Path: path, Time: s.now()})
}
