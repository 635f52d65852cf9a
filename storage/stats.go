package storage

import (
	"errors"
	"fmt"
	"sync"
)

// LookupStats keeps per-name hit and miss counters in a KvStore.
type LookupStats struct {
	mu sync.Mutex
	db KvStore
}

func NewLookupStats(db KvStore) *LookupStats {
	return &LookupStats{db: db}
}

// Record bumps the hit counter of name when found is true, its miss counter
// otherwise.
func (s *LookupStats) Record(name string, found bool) error {
	key := missKey(name)
	if found {
		key = hitKey(name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.counter(key)
	if err != nil {
		return err
	}

	return s.db.Put(key, encodeCounter(n+1))
}

// Get returns the counters of name. Names never recorded have zero counts.
func (s *LookupStats) Get(name string) (Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hits, err := s.counter(hitKey(name))
	if err != nil {
		return Counts{}, err
	}

	misses, err := s.counter(missKey(name))
	if err != nil {
		return Counts{}, err
	}

	return Counts{Hits: hits, Misses: misses}, nil
}

// Reset drops both counters of name.
func (s *LookupStats) Reset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Delete(hitKey(name)); err != nil {
		return err
	}

	return s.db.Delete(missKey(name))
}

func (s *LookupStats) Close() error {
	return s.db.Close()
}

func (s *LookupStats) counter(key []byte) (uint64, error) {
	value, err := s.db.Get(key)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := decodeCounter(value)
	if err != nil {
		return 0, fmt.Errorf("counter %q: %w", key, err)
	}

	return n, nil
}
