package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// EventQueue collects input from the Bubble Tea loop until the engine polls
// it. Terminals report presses and auto-repeats but no releases, so a held
// key is released once no repeat arrived within the release window.
type EventQueue struct {
	mu      sync.Mutex
	pending []engine.Event
	held    map[msg.Key]time.Time // last press or repeat
	release time.Duration
	now     func() time.Time
}

var _ engine.EventSource = (*EventQueue)(nil)

// NewEventQueue creates a queue releasing keys after the given window.
func NewEventQueue(release time.Duration) *EventQueue {
	return &EventQueue{
		held:    make(map[msg.Key]time.Time),
		release: release,
		now:     time.Now,
	}
}

// KeyDown records a press or auto-repeat. Repeats of a held key are queued
// too; the engine collapses them within a frame.
func (q *EventQueue) KeyDown(k msg.Key) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.held[k] = q.now()
	q.pending = append(q.pending, engine.Event{Kind: engine.EventKeyDown, Key: k})
}

// Quit queues a quit request.
func (q *EventQueue) Quit() {
	q.push(engine.Event{Kind: engine.EventQuit})
}

// Resize queues a terminal resize, in cells.
func (q *EventQueue) Resize(cols, rows int) {
	q.push(engine.Event{Kind: engine.EventResize, W: cols, H: rows})
}

func (q *EventQueue) push(ev engine.Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Poll implements engine.EventSource. Releases of expired keys follow the
// queued events.
func (q *EventQueue) Poll() []engine.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.pending
	q.pending = nil

	now := q.now()
	for k, at := range q.held {
		if now.Sub(at) >= q.release {
			delete(q.held, k)
			events = append(events, engine.Event{Kind: engine.EventKeyUp, Key: k})
		}
	}
	return events
}
