package cart

import (
	"sync"
	"time"
)

// Store maps guest session IDs to their carts. Sessions expire after the
// configured TTL; expired carts are dropped by SweepExpired.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
}

type session struct {
	cart      *Cart
	expiresAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*session),
	}
}

// Fetch returns the cart for a session, creating one on first use.
// Touching a session extends its expiry.
func (s *Store) Fetch(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{cart: New()}
		s.sessions[sessionID] = sess
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	return sess.cart
}

// Drop removes a session and its cart.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// SweepExpired evicts sessions past their expiry and reports how many
// were removed.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, sess := range s.sessions {
		if sess.expiresAt.Before(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
