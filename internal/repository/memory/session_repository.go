package memory

import (
	"sync"
	"time"

	"policy-rag-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds per-session conversation state in process memory.
// Sessions expire after an hour of inactivity; the cache purges expired
// entries every ten minutes.
//
// Reads and writes for one session are a read-modify-write sequence, so the
// repository also hands out a per-session mutex. Concurrent requests on the
// same session id would otherwise lose history updates.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for one session id and returns the unlock func.
// Callers hold it across the full read-retrieve-persist span of a turn.
func (r *SessionRepository) Lock(sessionID string) func() {
	r.mu.Lock()
	l, ok := r.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[sessionID] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// GetOrCreate returns the stored session, creating an empty one lazily on
// first use of a session id.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if sess, found := r.Get(sessionID); found {
		return sess
	}
	sess := store.NewSession(sessionID)
	r.Save(sess)
	return sess
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)

	r.mu.Lock()
	delete(r.locks, sessionID)
	r.mu.Unlock()
}

// Count returns the number of live sessions
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}
