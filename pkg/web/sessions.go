package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/contribchart/pkg/view"
)

const (
	sessionCookie     = "contribchart_session"
	defaultSessionTTL = 2 * time.Hour
)

type session struct {
	ctrl *view.Controller
	seen time.Time
}

// sessions maps cookie ids to controllers. Expired entries are swept
// whenever a new session is created.
type sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]*session
	newFn func() *view.Controller
	now   func() time.Time
}

func newSessions(ttl time.Duration, newFn func() *view.Controller) *sessions {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &sessions{
		ttl:   ttl,
		items: make(map[string]*session),
		newFn: newFn,
		now:   time.Now,
	}
}

// lookup returns the controller for r, creating a session (and setting its
// cookie on w) when r carries none or an expired one.
func (s *sessions) lookup(w http.ResponseWriter, r *http.Request) *view.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.items[c.Value]; ok && now.Sub(sess.seen) <= s.ttl {
			sess.seen = now
			return sess.ctrl
		}
	}

	s.sweep(now)
	id := uuid.NewString()
	sess := &session{ctrl: s.newFn(), seen: now}
	s.items[id] = sess

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess.ctrl
}

func (s *sessions) sweep(now time.Time) {
	for id, sess := range s.items {
		if now.Sub(sess.seen) > s.ttl {
			delete(s.items, id)
		}
	}
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
