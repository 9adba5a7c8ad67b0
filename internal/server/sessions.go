package server

import (
	"sync"

	"github.com/roach88/foodorders/internal/cart"
)

// session is one customer interaction. The mutex guards the cart, which
// is not safe for concurrent use on its own.
type session struct {
	mu   sync.Mutex
	cart *cart.Cart
}

type sessions struct {
	mu    sync.RWMutex
	carts map[string]*session
}

func newSessions() *sessions {
	return &sessions{carts: make(map[string]*session)}
}

func (s *sessions) put(id string, c *cart.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[id] = &session{cart: c}
}

func (s *sessions) get(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.carts[id]
	return sess, ok
}

func (s *sessions) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.carts[id]
	delete(s.carts, id)
	return ok
}

func (s *sessions) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
