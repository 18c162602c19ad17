package kpi

import "sync"

// Store keeps evaluations in memory, one per (salesId, year, month). It is
// the source of truth for the running session; the external sync backend is
// only an eventually-consistent mirror of it.
//
// Upsert is last-write-wins. Two raters patching the same evaluation at the
// same instant race at this point exactly like they do in the spreadsheet
// backend; a compare-and-swap on a version column would harden this without
// changing single-writer behavior (see DESIGN.md).
type Store struct {
	mu          sync.RWMutex
	evaluations map[Key]Evaluation
}

func NewStore() *Store {
	return &Store{evaluations: make(map[Key]Evaluation)}
}

// Find returns the evaluation for the key, if present.
func (s *Store) Find(salesID string, month, year int) (Evaluation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.evaluations[Key{SalesID: salesID, Year: year, Month: month}]
	return ev, ok
}

// List returns all evaluations in no particular order.
func (s *Store) List() []Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Evaluation, 0, len(s.evaluations))
	for _, ev := range s.evaluations {
		out = append(out, ev)
	}
	return out
}

// Upsert replaces the record with the same key or inserts a new one.
func (s *Store) Upsert(ev Evaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[ev.Key()] = ev
}

// ReplaceAll swaps the whole collection, used when a remote bulk load
// brings back a non-empty evaluation set.
func (s *Store) ReplaceAll(evaluations []Evaluation) {
	next := make(map[Key]Evaluation, len(evaluations))
	for _, ev := range evaluations {
		next[ev.Key()] = ev
	}
	s.mu.Lock()
	s.evaluations = next
	s.mu.Unlock()
}

// Len reports the number of stored evaluations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.evaluations)
}
