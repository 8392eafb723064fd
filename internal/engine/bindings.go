package engine

import (
	"maps"
	"sync"

	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Bindings maps raw keys to movement directions. The table is one-to-one in
// both directions and can be changed at runtime from the options screen.
// Every method holds the lock for a single lookup or update only.
type Bindings struct {
	mu    sync.Mutex
	byKey map[msg.Key]msg.Movement
}

// NewBindings creates a table from an initial mapping. The mapping is applied
// through Remap, so if several keys share a direction only one survives.
func NewBindings(initial map[msg.Key]msg.Movement) *Bindings {
	b := &Bindings{byKey: make(map[msg.Key]msg.Movement, len(initial))}
	for _, m := range msg.Movements {
		for k, mv := range initial {
			if mv == m {
				b.Remap(m, k)
				break
			}
		}
	}
	return b
}

// DefaultBindings binds the arrow keys.
func DefaultBindings() *Bindings {
	return NewBindings(map[msg.Key]msg.Movement{
		msg.KeyUp:    msg.MoveUp,
		msg.KeyDown:  msg.MoveDown,
		msg.KeyLeft:  msg.MoveLeft,
		msg.KeyRight: msg.MoveRight,
	})
}

// Lookup returns the movement bound to k.
func (b *Bindings) Lookup(k msg.Key) (msg.Movement, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok := b.byKey[k]
	return m, ok
}

// KeyFor returns the key currently bound to m.
func (b *Bindings) KeyFor(m msg.Movement) (msg.Key, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for k, mv := range b.byKey {
		if mv == m {
			return k, true
		}
	}
	return msg.KeyNone, false
}

// Remap binds k to m, dropping any previous key of m and any previous
// direction of k.
func (b *Bindings) Remap(m msg.Movement, k msg.Key) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var stale []msg.Key
	for key, mv := range b.byKey {
		if mv == m || key == k {
			stale = append(stale, key)
		}
	}
	for _, key := range stale {
		delete(b.byKey, key)
	}
	b.byKey[k] = m
}

// Snapshot returns a copy of the current table.
func (b *Bindings) Snapshot() map[msg.Key]msg.Movement {
	b.mu.Lock()
	defer b.mu.Unlock()

	return maps.Clone(b.byKey)
}
