package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/roster"
	"salestrack/internal/domain/tasks"
	"salestrack/internal/platform/jobs"
)

const (
	kindUser       = "user"
	kindSales      = "sales"
	kindEvaluation = "evaluation"
	kindTask       = "task"
	kindPrinciple  = "principle"
)

// RecordStore is the Postgres flavor of the sync backend: the same
// kind/key/payload shape the sheet script exposes, kept in one table.
type RecordStore struct {
	pool *pgxpool.Pool
}

func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

func (s *RecordStore) LoadAll(ctx context.Context) (jobs.Snapshot, error) {
	var snapshot jobs.Snapshot

	if err := loadKind(ctx, s.pool, kindUser, &snapshot.Users); err != nil {
		return jobs.Snapshot{}, err
	}
	if err := loadKind(ctx, s.pool, kindSales, &snapshot.Sales); err != nil {
		return jobs.Snapshot{}, err
	}
	if err := loadKind(ctx, s.pool, kindEvaluation, &snapshot.Evaluations); err != nil {
		return jobs.Snapshot{}, err
	}
	if err := loadKind(ctx, s.pool, kindTask, &snapshot.Tasks); err != nil {
		return jobs.Snapshot{}, err
	}

	rows, err := s.pool.Query(ctx, "SELECT key FROM records WHERE kind = $1 ORDER BY updated_at", kindPrinciple)
	if err != nil {
		return jobs.Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return jobs.Snapshot{}, err
		}
		snapshot.Principles = append(snapshot.Principles, name)
	}
	if err := rows.Err(); err != nil {
		return jobs.Snapshot{}, err
	}

	return snapshot, nil
}

func (s *RecordStore) SaveEvaluation(ctx context.Context, ev kpi.Evaluation) error {
	key := fmt.Sprintf("%s:%d:%d", ev.SalesID, ev.Year, ev.Month)
	return s.upsert(ctx, kindEvaluation, key, ev)
}

func (s *RecordStore) SaveUser(ctx context.Context, u roster.User) error {
	return s.upsert(ctx, kindUser, u.ID, u)
}

func (s *RecordStore) SaveSalesPerson(ctx context.Context, sp roster.SalesPerson) error {
	return s.upsert(ctx, kindSales, sp.ID, sp)
}

func (s *RecordStore) SaveTask(ctx context.Context, task tasks.Task) error {
	return s.upsert(ctx, kindTask, task.ID, task)
}

func (s *RecordStore) AddPrinciple(ctx context.Context, name string) error {
	return s.upsert(ctx, kindPrinciple, name, map[string]string{"name": name})
}

func (s *RecordStore) upsert(ctx context.Context, kind, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
    INSERT INTO records (kind, key, payload, updated_at)
    VALUES ($1, $2, $3, now())
    ON CONFLICT (kind, key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
  `, kind, key, body)
	return err
}

func loadKind[T any](ctx context.Context, pool *pgxpool.Pool, kind string, out *[]T) error {
	rows, err := pool.Query(ctx, "SELECT payload FROM records WHERE kind = $1", kind)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return err
		}
		var record T
		if err := json.Unmarshal(payload, &record); err != nil {
			return err
		}
		*out = append(*out, record)
	}
	return rows.Err()
}
