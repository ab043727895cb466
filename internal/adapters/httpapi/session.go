package httpapi

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"carbonx/internal/domain"
	"carbonx/internal/wizard"
)

// session holds one in-progress registration wizard. The mutex serializes
// HTTP requests for the same token; the wizard itself is not safe for
// concurrent use.
type session struct {
	mu       sync.Mutex
	wizard   *wizard.Wizard
	lastSeen time.Time
}

// sessionStore keeps wizard sessions in memory, keyed by an opaque token.
// Scale is one event's registrants, so no external cache is involved; a
// lost session only means the participant restarts the form.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
}

// Create registers a new wizard session and returns its token.
func (s *sessionStore) Create(w *wizard.Wizard) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &session{wizard: w, lastSeen: time.Now()}
	return token
}

// Get returns the session for token and refreshes its TTL.
func (s *sessionStore) Get(token string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if time.Since(sess.lastSeen) > s.ttl {
		delete(s.sessions, token)
		return nil, domain.ErrSessionExpired
	}
	sess.lastSeen = time.Now()
	return sess, nil
}

// RunJanitor drops expired sessions every 10 minutes. Run it on its own
// goroutine; it never returns.
func (s *sessionStore) RunJanitor() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for token, sess := range s.sessions {
			if now.Sub(sess.lastSeen) > s.ttl {
				delete(s.sessions, token)
			}
		}
		s.mu.Unlock()
	}
}
