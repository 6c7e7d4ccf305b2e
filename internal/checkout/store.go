package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("checkout session not found")

const defaultSessionTTL = 30 * time.Minute

// Store keeps live purchase sessions in memory. Nothing here is durable on
// purpose: a session that outlives its buyer is garbage, and every entity
// that matters lives behind the venue API.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	ttl         time.Duration
	lastCleanup time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Store{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		lastCleanup: time.Now(),
	}
}

func (st *Store) Create(eventID, eventTitle string, unitPrice float64, userID *string) *Session {
	sess := newSession(uuid.NewString(), eventID, eventTitle, unitPrice, userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.maybeCleanup(time.Now())
	st.sessions[sess.id] = sess
	return sess
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Remove closes the session and drops it. Safe to call for unknown ids.
func (st *Store) Remove(id string) {
	st.mu.Lock()
	sess, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		sess.mu.Lock()
		sess.close()
		sess.mu.Unlock()
	}
}

// maybeCleanup sweeps abandoned sessions. Called under st.mu.
func (st *Store) maybeCleanup(now time.Time) {
	if now.Sub(st.lastCleanup) < st.ttl {
		return
	}
	for id, sess := range st.sessions {
		sess.mu.Lock()
		stale := now.Sub(sess.touchedAt) >= st.ttl
		if stale {
			sess.close()
		}
		sess.mu.Unlock()
		if stale {
			delete(st.sessions, id)
		}
	}
	st.lastCleanup = now
}
