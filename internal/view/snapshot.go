package view

import (
	"sync"

	"homestock/internal/domain"
	"homestock/internal/metrics"
)

// Lister is the read side of the item service.
type Lister interface {
	List() ([]domain.Item, error)
}

// Snapshot is the presentation layer's full-refresh copy of the store.
// It is replaced wholesale by Reload after every mutation; there are no
// partial update methods.
type Snapshot struct {
	src Lister

	mu    sync.RWMutex
	items []domain.Item
}

func NewSnapshot(src Lister) *Snapshot {
	return &Snapshot{src: src}
}

// Reload discards the held copy and re-reads the authoritative store.
func (s *Snapshot) Reload() error {
	items, err := s.src.List()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	metrics.Items.Set(float64(len(items)))
	return nil
}

// Items returns a copy; callers may not mutate snapshot state.
func (s *Snapshot) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out
}
