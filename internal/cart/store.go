package cart

import "github.com/bennett-mcdowell/F25-Team03/internal/domain"

// Store persists cart snapshots between sessions. Implementations must treat
// an unreadable or corrupt snapshot as an empty cart rather than an error:
// stale client state is discarded, not surfaced.
type Store interface {
	Load() ([]domain.CartItem, error)
	Save(items []domain.CartItem) error
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	items []domain.CartItem
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

// Load returns the stored snapshot.
func (s *MemStore) Load() ([]domain.CartItem, error) {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Save replaces the stored snapshot.
func (s *MemStore) Save(items []domain.CartItem) error {
	s.items = make([]domain.CartItem, len(items))
	copy(s.items, items)
	return nil
}
