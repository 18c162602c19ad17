package roster

import "testing"

func TestStoreUserCRUD(t *testing.T) {
	store := NewStore()

	store.UpsertUser(User{ID: "U01", FullName: "ADMIN USER", Role: "ADMIN"})
	store.UpsertUser(User{ID: "U02", FullName: "NINA AFRIDA", Role: "SUPERVISOR", Principle: "KALBE"})

	if got := len(store.ListUsers()); got != 2 {
		t.Fatalf("expected 2 users, got %d", got)
	}

	u, ok := store.FindUser("U02")
	if !ok {
		t.Fatal("expected to find U02")
	}
	if u.Principle != "KALBE" {
		t.Fatalf("expected principle KALBE, got %s", u.Principle)
	}

	store.DeleteUser("U02")
	if _, ok := store.FindUser("U02"); ok {
		t.Fatal("expected U02 deleted")
	}
}

func TestStoreAddPrincipleDeduplicates(t *testing.T) {
	store := NewStore()
	store.AddPrinciple("KALBE")
	store.AddPrinciple("KALBE")
	store.AddPrinciple("UNILEVER")

	if got := len(store.Principles()); got != 2 {
		t.Fatalf("expected 2 principles, got %d", got)
	}
}

func TestStoreReplaceSales(t *testing.T) {
	store := NewStore()
	store.UpsertSales(SalesPerson{ID: "S01", FullName: "ANTO"})

	store.ReplaceSales([]SalesPerson{
		{ID: "S02", FullName: "BUDI"},
	})

	if _, ok := store.FindSales("S01"); ok {
		t.Fatal("expected S01 replaced away")
	}
	if _, ok := store.FindSales("S02"); !ok {
		t.Fatal("expected S02 present")
	}
}
