package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"sniptaste/internal/order"
)

// Session is one conversation's ordering state. The engine itself is
// lock-free; the per-session mutex here guarantees at-most-one
// in-flight turn per conversation.
type Session struct {
	ID        string
	mu        sync.Mutex
	state     order.State
	UpdatedAt time.Time
}

// Turn runs one serialized turn against the session's state and
// stores whatever state fn returns.
func (s *Session) Turn(fn func(order.State) order.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	s.UpdatedAt = time.Now()
}

// State returns a snapshot of the current state.
func (s *Session) State() order.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Store keeps sessions in memory, keyed by conversation id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore builds an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, minting a fresh session
// with a new uuid when id is empty or unknown.
func (st *Store) GetOrCreate(id string) *Session {
	if id != "" {
		st.mu.RLock()
		s, ok := st.sessions[id]
		st.mu.RUnlock()
		if ok {
			return s
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if id == "" {
		id = uuid.New().String()
	} else if s, ok := st.sessions[id]; ok {
		return s
	}

	s := &Session{
		ID:        id,
		state:     order.NewState(),
		UpdatedAt: time.Now(),
	}
	st.sessions[id] = s
	return s
}

// Sweep drops sessions idle for longer than maxIdle and returns how
// many were removed.
func (st *Store) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
