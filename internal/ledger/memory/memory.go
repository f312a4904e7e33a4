package memory

import (
	"context"
	"sync"

	"budget/internal/core"
)

// Store keeps the ledger in process memory. Ids are never reused, even
// after the newest record is deleted.
type Store struct {
	mu     sync.Mutex
	lastID int64
	items  []core.Expense
}

func New(seed ...core.Expense) *Store {
	s := &Store{}
	for _, e := range seed {
		_, _ = s.Insert(context.Background(), e)
	}
	return s
}

// Insert stores the expense under the next id.
func (s *Store) Insert(_ context.Context, e core.Expense) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	e.ID = s.lastID
	s.items = append(s.items, e)
	return e.ID, nil
}

// ListAll returns a copy of the stored expenses in id order.
func (s *Store) ListAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...), nil
}

func (s *Store) DeleteByID(_ context.Context, id int64) (int64, error) {
	return s.deleteWhere(func(e core.Expense) bool { return e.ID == id }), nil
}

func (s *Store) DeleteMatching(_ context.Context, match core.Expense) (int64, error) {
	return s.deleteWhere(match.SameValues), nil
}

func (s *Store) SumAmounts(_ context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Sum(s.items), nil
}

func (s *Store) Close() error { return nil }

// Len returns the number of stored expenses.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) deleteWhere(drop func(core.Expense) bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	var removed int64
	for _, e := range s.items {
		if drop(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.items = kept
	return removed
}
