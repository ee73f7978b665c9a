package trendstore

import (
	"context"
	"sync"

	"github.com/yanqian/travel-planner/internal/domain/itinerary"
)

// MemoryStore keeps destination counters in process memory for tests/dev.
type MemoryStore struct {
	mu       sync.RWMutex
	counts   map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:   make(map[string]int64),
		displays: make(map[string]string),
	}
}

// IncrementDestination bumps the counter for a canonical city and records
// the first display spelling seen.
func (s *MemoryStore) IncrementDestination(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

// TopDestinations returns the most planned cities, ties broken by name.
func (s *MemoryStore) TopDestinations(_ context.Context, limit int) ([]itinerary.TrendingDestination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	items := make([]itinerary.TrendingDestination, 0, len(s.counts))
	for canonical, count := range s.counts {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, itinerary.TrendingDestination{City: display, Count: count})
	}
	return rankDestinations(items, limit), nil
}

var _ itinerary.Store = (*MemoryStore)(nil)
