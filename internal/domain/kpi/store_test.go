package kpi

import "testing"

func TestStoreUpsertReplacesSameKey(t *testing.T) {
	store := NewStore()

	store.Upsert(Evaluation{SalesID: "S01", Year: 2026, Month: 6, FinalScore: 10})
	store.Upsert(Evaluation{SalesID: "S01", Year: 2026, Month: 6, FinalScore: 20})
	store.Upsert(Evaluation{SalesID: "S01", Year: 2026, Month: 7, FinalScore: 30})

	if store.Len() != 2 {
		t.Fatalf("expected 2 evaluations, got %d", store.Len())
	}
	ev, ok := store.Find("S01", 6, 2026)
	if !ok {
		t.Fatal("expected evaluation for S01 June")
	}
	if ev.FinalScore != 20 {
		t.Fatalf("expected last write to win, got %v", ev.FinalScore)
	}
}

func TestStoreReplaceAll(t *testing.T) {
	store := NewStore()
	store.Upsert(Evaluation{SalesID: "S01", Year: 2026, Month: 6})

	store.ReplaceAll([]Evaluation{
		{SalesID: "S02", Year: 2026, Month: 6},
		{SalesID: "S03", Year: 2026, Month: 6},
	})

	if store.Len() != 2 {
		t.Fatalf("expected 2 evaluations after replace, got %d", store.Len())
	}
	if _, ok := store.Find("S01", 6, 2026); ok {
		t.Fatal("expected old evaluation to be gone")
	}
}

func TestStoreFindAbsent(t *testing.T) {
	store := NewStore()
	if _, ok := store.Find("S99", 1, 2026); ok {
		t.Fatal("expected no evaluation for unknown key")
	}
}
