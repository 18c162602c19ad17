package kpi

import "context"

// Mirror receives evaluations after every local mutation. Implementations
// must not block: delivery is best effort and failures stay on their side of
// the boundary.
type Mirror interface {
	EnqueueEvaluation(ev Evaluation)
}

// Service orchestrates score submissions: merge, recompute, store, mirror.
type Service struct {
	store  *Store
	config *ConfigStore
	mirror Mirror
}

func NewService(store *Store, config *ConfigStore, mirror Mirror) *Service {
	return &Service{store: store, config: config, mirror: mirror}
}

func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) Configuration() Configuration {
	return s.config.Get()
}

// ReplaceConfiguration swaps the KPI catalog and returns advisory warnings.
func (s *Service) ReplaceConfiguration(cfg Configuration) []string {
	return s.config.Replace(cfg)
}

// Get returns the stored evaluation for the key, if any.
func (s *Service) Get(salesID string, month, year int) (Evaluation, bool) {
	return s.store.Find(salesID, month, year)
}

// List returns all stored evaluations.
func (s *Service) List() []Evaluation {
	return s.store.List()
}

// SubmitScores applies a partial score patch for one salesperson-month. The
// patch is merged over whatever is already stored (creating the record on
// first submission), derived fields are recomputed with the current
// configuration, and the result is written back and mirrored. Empty patches
// and keys that match no configured criterion are accepted: the former
// re-derives the record, the latter are stored verbatim so ratings survive a
// configuration that has not caught up yet.
//
// The whole sequence is synchronous except the mirror write, which is
// enqueued fire-and-forget.
func (s *Service) SubmitScores(ctx context.Context, salesID string, month, year int, patch ScoreData) Evaluation {
	key := Key{SalesID: salesID, Year: year, Month: month}

	var existing *Evaluation
	if current, ok := s.store.Find(salesID, month, year); ok {
		existing = &current
	}

	ev := Evaluate(existing, key, patch, s.config.Get())
	s.store.Upsert(ev)

	if s.mirror != nil {
		s.mirror.EnqueueEvaluation(ev)
	}
	return ev
}
