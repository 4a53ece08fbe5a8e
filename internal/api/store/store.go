package store

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"fleet-roi/internal/simulation"
)

// ResultStore keeps finished projection results retrievable by id, so the
// ledger endpoint can serve them without re-running the simulation.
// Stored results are transient serving-layer state with a TTL, not
// domain persistence.
type ResultStore interface {
	Get(id string) (*simulation.Result, bool)
	Set(id string, result *simulation.Result) error
}

// NewID returns a random hex identifier for a stored result.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// timestamp id rather than panic mid-request.
		return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
	}
	return hex.EncodeToString(buf)
}

type memoryEntry struct {
	result    *simulation.Result
	expiresAt time.Time
}

// MemoryStore is an in-process ResultStore with per-entry TTL.
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]*memoryEntry
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &MemoryStore{
		store: make(map[string]*memoryEntry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

func (s *MemoryStore) Get(id string) (*simulation.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.store[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.result, true
}

func (s *MemoryStore) Set(id string, result *simulation.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[id] = &memoryEntry{
		result:    result,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// cleanup periodically removes expired entries
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
