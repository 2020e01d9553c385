package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"clinica-turnos/internal/scheduling"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs
	ErrSessionNotFound = errors.New("booking session not found")
	// ErrSessionForbidden is returned when a session belongs to another user
	ErrSessionForbidden = errors.New("booking session belongs to another user")
)

const (
	// How long a session may sit untouched before eviction
	sessionIdleTTL = 30 * time.Minute

	// Interval for the eviction sweep
	sessionCleanupInterval = 5 * time.Minute
)

// sessionEntry pairs a wizard with its owner and a per-session mutex.
// The wizard itself is not concurrency safe; all access goes through
// the entry's lock.
type sessionEntry struct {
	mu       sync.Mutex
	wizard   *scheduling.Wizard
	ownerID  uuid.UUID
	lastUsed atomic.Int64 // Unix timestamp
}

// BookingSessionStore holds every in-progress booking wizard, one per
// session ID. Sessions live in process memory: a draft is cheap to lose
// and the flow restarts from step 1 on a fresh session.
//
// Lock ordering: acquire the session mutex first, then do any wizard or
// remote work while holding it.
type BookingSessionStore struct {
	log      *logrus.Logger
	sessions sync.Map // map[uuid.UUID]*sessionEntry

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewBookingSessionStore creates the store and starts the background
// eviction goroutine. Call Stop() during graceful shutdown.
func NewBookingSessionStore(log *logrus.Logger) *BookingSessionStore {
	s := &BookingSessionStore{
		log:      log,
		stopChan: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.evictionLoop()

	return s
}

// Stop shuts the eviction goroutine down. Safe to call multiple times.
func (s *BookingSessionStore) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("BookingSessionStore stopped")
	}
}

// Put registers a new session for the owner and returns its ID.
func (s *BookingSessionStore) Put(ownerID uuid.UUID, wizard *scheduling.Wizard) uuid.UUID {
	id := uuid.New()
	entry := &sessionEntry{
		wizard:  wizard,
		ownerID: ownerID,
	}
	entry.lastUsed.Store(time.Now().Unix())
	s.sessions.Store(id, entry)
	return id
}

// With runs fn against the session's wizard while holding the session
// lock. The owner check rejects guessing other users' session IDs.
func (s *BookingSessionStore) With(sessionID, ownerID uuid.UUID, fn func(*scheduling.Wizard) error) error {
	value, ok := s.sessions.Load(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	entry := value.(*sessionEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.ownerID != ownerID {
		return ErrSessionForbidden
	}
	entry.lastUsed.Store(time.Now().Unix())

	return fn(entry.wizard)
}

// Delete removes a session, typically after a successful submit or an
// explicit close.
func (s *BookingSessionStore) Delete(sessionID uuid.UUID) {
	s.sessions.Delete(sessionID)
}

func (s *BookingSessionStore) evictionLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Session eviction goroutine stopping")
			return
		case <-ticker.C:
			s.evictIdleSessions()
		}
	}
}

// evictIdleSessions removes sessions idle past the TTL. TryLock skips
// sessions currently in use; the lastUsed check happens inside the lock
// so a touch between sweep and lock cannot be lost.
func (s *BookingSessionStore) evictIdleSessions() {
	cutoff := time.Now().Add(-sessionIdleTTL).Unix()
	var evicted int

	s.sessions.Range(func(key, value any) bool {
		entry, ok := value.(*sessionEntry)
		if !ok {
			return true
		}

		if entry.mu.TryLock() {
			if entry.lastUsed.Load() < cutoff {
				s.sessions.Delete(key)
				evicted++
			}
			entry.mu.Unlock()
		}
		return true
	})

	if evicted > 0 {
		s.log.Debugf("Evicted %d idle booking sessions", evicted)
	}
}
