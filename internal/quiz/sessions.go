package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionTTL bounds how long a completed quiz keeps its discount claim.
const SessionTTL = 15 * time.Minute

// Session marks one completed quiz. The quote endpoint uses it to decide
// whether the quiz discount applies.
type Session struct {
	ID            string       `json:"id"`
	Solution      SolutionType `json:"solution"`
	PriorityScore int          `json:"priorityScore"`
	PriorityLabel string       `json:"priorityLabel"`
	CompletedAt   time.Time    `json:"completedAt"`
}

// SessionStore is an in-memory, TTL-bounded record of completed quizzes.
type SessionStore struct {
	mu    sync.Mutex
	items map[string]Session
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionStore builds a store with the default TTL. The now function is
// overridable for tests; nil means time.Now.
func NewSessionStore(now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		items: make(map[string]Session),
		ttl:   SessionTTL,
		now:   now,
	}
}

// Record stores a completed quiz and returns its session id.
func (s *SessionStore) Record(rec Recommendation) Session {
	session := Session{
		ID:            uuid.NewString(),
		Solution:      rec.Solution,
		PriorityScore: rec.PriorityScore,
		PriorityLabel: rec.PriorityLabel,
		CompletedAt:   s.now().UTC(),
	}
	s.mu.Lock()
	s.items[session.ID] = session
	s.prune()
	s.mu.Unlock()
	return session
}

// Completed reports whether the id maps to a live completed quiz.
func (s *SessionStore) Completed(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Get returns the session for id if it has not expired.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.items[id]
	if !ok {
		return Session{}, false
	}
	if s.now().Sub(session.CompletedAt) > s.ttl {
		delete(s.items, id)
		return Session{}, false
	}
	return session, true
}

// prune drops expired sessions. Caller must hold the lock.
func (s *SessionStore) prune() {
	now := s.now()
	for id, session := range s.items {
		if now.Sub(session.CompletedAt) > s.ttl {
			delete(s.items, id)
		}
	}
}
