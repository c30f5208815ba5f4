package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renalplate/backend/internal/domain"
)

// item is one registered session with its expiry.
type item struct {
	log        *domain.MealLog
	expiration time.Time
}

// Store is a thread-safe in-memory session registry. Each session owns a
// meal log; sessions expire after the configured TTL and the whole registry
// dies with the process.
type Store struct {
	data  map[string]item
	mutex sync.RWMutex
	ttl   time.Duration
}

// NewStore creates a session store with the given lifetime per session.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	store := &Store{
		data: make(map[string]item),
		ttl:  ttl,
	}

	// Remove expired sessions every 10 minutes.
	go store.cleanupExpired()

	return store
}

// Create registers a new session with an empty meal log.
func (s *Store) Create(ctx context.Context) (string, *domain.MealLog) {
	id := uuid.NewString()
	log := domain.NewMealLog()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[id] = item{log: log, expiration: time.Now().Add(s.ttl)}
	return id, log
}

// Get returns the meal log for a session id. Touching a session extends its
// lifetime.
func (s *Store) Get(ctx context.Context, id string) (*domain.MealLog, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	it, exists := s.data[id]
	if !exists || time.Now().After(it.expiration) {
		delete(s.data, id)
		return nil, domain.ErrSessionNotFound
	}

	it.expiration = time.Now().Add(s.ttl)
	s.data[id] = it
	return it.log, nil
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, id)
	return nil
}

// Len returns the number of live sessions (for debugging/monitoring).
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// cleanupExpired removes expired sessions periodically.
func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for id, it := range s.data {
			if now.After(it.expiration) {
				delete(s.data, id)
			}
		}
		s.mutex.Unlock()
	}
}
