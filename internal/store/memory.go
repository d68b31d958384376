// apps/go-server/internal/store/memory.go
//
// In-memory registry of game engines for the HTTP adapter.
//
// Characteristics:
//   - Stores *game.Engine objects keyed by Engine.ID in a map.
//   - Every call into an engine goes through Do, which holds that entry's
//     mutex, so a single engine never sees concurrent calls.
//   - Entries idle longer than a cutoff are dropped by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/hangman/apps/go-server/internal/game"
)

// ErrNotFound is returned for unknown (or evicted) game IDs.
var ErrNotFound = errors.New("game not found")

// Store defines the registry interface for live games.
type Store interface {
	// Save registers or replaces an engine under its ID.
	Save(ctx context.Context, e *game.Engine) error

	// Do runs fn with exclusive access to the engine with the given ID.
	// Returns ErrNotFound if the ID is unknown, otherwise fn's error.
	Do(ctx context.Context, id string, fn func(e *game.Engine) error) error

	// Delete removes a game; deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep evicts games idle since before cutoff and returns how many went.
	Sweep(ctx context.Context, cutoff time.Time) int

	// Len reports the number of live games.
	Len() int
}

type entry struct {
	mu       sync.Mutex // serializes engine calls
	engine   *game.Engine
	lastSeen time.Time // guarded by memory.mu
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map and lastSeen
	games map[string]*entry // keyed by Engine.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*entry), now: time.Now}
}

// Save adds or replaces the engine in the map.
func (m *memory) Save(ctx context.Context, e *game.Engine) error {
	if e == nil || e.ID == "" {
		return errors.New("store: engine without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[e.ID] = &entry{engine: e, lastSeen: m.now()}
	return nil
}

// Do looks up the engine, touches it and runs fn under its lock.
func (m *memory) Do(ctx context.Context, id string, fn func(e *game.Engine) error) error {
	m.mu.Lock()
	en, ok := m.games[id]
	if ok {
		en.lastSeen = m.now()
	}
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	en.mu.Lock()
	defer en.mu.Unlock()
	return fn(en.engine)
}

// Delete drops the game from the map.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

// Sweep removes every entry last touched before cutoff.
func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, en := range m.games {
		if en.lastSeen.Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored games.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
