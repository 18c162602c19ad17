package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
	"salestrack/internal/domain/tasks"
	"salestrack/internal/platform/metrics"
)

// Snapshot is everything the sync backend holds.
type Snapshot struct {
	Users       []roster.User        `json:"users"`
	Sales       []roster.SalesPerson `json:"sales"`
	Evaluations []kpi.Evaluation     `json:"evaluations"`
	Tasks       []tasks.Task         `json:"tasks"`
	Principles  []string             `json:"principles"`
}

// Backend is the external record service the local state mirrors to. Save
// calls are best effort: the worker logs failures and moves on, it never
// retries and never surfaces them to the caller that mutated local state.
type Backend interface {
	LoadAll(ctx context.Context) (Snapshot, error)
	SaveEvaluation(ctx context.Context, ev kpi.Evaluation) error
	SaveUser(ctx context.Context, u roster.User) error
	SaveSalesPerson(ctx context.Context, sp roster.SalesPerson) error
	SaveTask(ctx context.Context, task tasks.Task) error
	AddPrinciple(ctx context.Context, name string) error
}

// Stores are the in-memory collections a refresh merges into.
type Stores struct {
	Evaluations *kpi.Store
	Roster      *roster.Store
	Tasks       *tasks.Store
}

const (
	StatusDisabled  = "DISABLED"
	StatusSyncing   = "SYNCING"
	StatusConnected = "CONNECTED"
	StatusError     = "ERROR"
)

type mirrorOp struct {
	kind string
	run  func(context.Context) error
}

// Service owns the mirror-write queue and the periodic bulk refresh. Writes
// are enqueued fire-and-forget; a full queue drops the write with a warning
// rather than blocking the caller.
type Service struct {
	backend   Backend
	stores    Stores
	queue     chan mirrorOp
	status    atomic.Value
	collector *metrics.Collector
}

func New(backend Backend, stores Stores) *Service {
	s := &Service{
		backend: backend,
		stores:  stores,
		queue:   make(chan mirrorOp, 128),
	}
	if backend == nil {
		s.status.Store(StatusDisabled)
	} else {
		s.status.Store(StatusSyncing)
	}
	return s
}

// SetMetrics attaches the collector the sync counters feed. Call before
// Start.
func (s *Service) SetMetrics(c *metrics.Collector) {
	s.collector = c
}

// Status reports the connection state shown in the UI header.
func (s *Service) Status() string {
	return s.status.Load().(string)
}

// Start launches the mirror worker and, when an interval is set, the
// periodic refresh loop. No-op without a backend.
func (s *Service) Start(ctx context.Context, refreshInterval time.Duration) {
	if s.backend == nil {
		return
	}
	go s.worker(ctx)
	if refreshInterval > 0 {
		go s.refreshLoop(ctx, refreshInterval)
	}
}

// Refresh bulk-loads the backend snapshot and merges it into the local
// stores. Each collection is replaced only when the remote copy is
// non-empty: a failed or half-empty load never wipes data the session
// already has.
func (s *Service) Refresh(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	s.status.Store(StatusSyncing)

	snapshot, err := s.backend.LoadAll(ctx)
	if s.collector != nil {
		s.collector.RecordRefresh(err)
	}
	if err != nil {
		s.status.Store(StatusError)
		return err
	}

	if len(snapshot.Users) > 0 {
		s.stores.Roster.ReplaceUsers(snapshot.Users)
	}
	if len(snapshot.Sales) > 0 {
		s.stores.Roster.ReplaceSales(snapshot.Sales)
	}
	if len(snapshot.Principles) > 0 {
		s.stores.Roster.ReplacePrinciples(snapshot.Principles)
	}
	if len(snapshot.Evaluations) > 0 {
		s.stores.Evaluations.ReplaceAll(snapshot.Evaluations)
	}
	if len(snapshot.Tasks) > 0 {
		s.stores.Tasks.ReplaceAll(snapshot.Tasks)
	}

	s.status.Store(StatusConnected)
	return nil
}

func (s *Service) EnqueueEvaluation(ev kpi.Evaluation) {
	s.enqueue("evaluation", func(ctx context.Context) error {
		return s.backend.SaveEvaluation(ctx, ev)
	})
}

func (s *Service) EnqueueUser(u roster.User) {
	s.enqueue("user", func(ctx context.Context) error {
		return s.backend.SaveUser(ctx, u)
	})
}

func (s *Service) EnqueueSalesPerson(sp roster.SalesPerson) {
	s.enqueue("salesperson", func(ctx context.Context) error {
		return s.backend.SaveSalesPerson(ctx, sp)
	})
}

func (s *Service) EnqueueTask(task tasks.Task) {
	s.enqueue("task", func(ctx context.Context) error {
		return s.backend.SaveTask(ctx, task)
	})
}

func (s *Service) EnqueuePrinciple(name string) {
	s.enqueue("principle", func(ctx context.Context) error {
		return s.backend.AddPrinciple(ctx, name)
	})
}

func (s *Service) enqueue(kind string, run func(context.Context) error) {
	if s.backend == nil {
		return
	}
	select {
	case s.queue <- mirrorOp{kind: kind, run: run}:
	default:
		if s.collector != nil {
			s.collector.RecordMirrorDrop()
		}
		slog.Warn("mirror queue full, dropping write", "kind", kind)
	}
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case op := <-s.queue:
			err := op.run(ctx)
			if s.collector != nil {
				s.collector.RecordMirrorWrite(err)
			}
			if err != nil {
				slog.Warn("mirror write failed", "kind", op.kind, "err", err)
			}
		}
	}
}

func (s *Service) refreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				slog.Warn("periodic refresh failed", "err", err)
			}
		}
	}
}
