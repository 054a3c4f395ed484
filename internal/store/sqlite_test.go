package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"options-builder/internal/payoff"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "strategies.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleStrategy() *Strategy {
	strike := 18500.0
	premium := 200.0
	return &Strategy{
		Name:         "weekly covered call",
		StrategyType: "covered-call",
		EntryDate:    "2026-01-02",
		ExpiryDate:   "2026-01-29",
		Parameters: map[string]any{
			"futuresPrice": 18000.0,
			"callStrike":   18500.0,
			"premium":      "200",
		},
		CustomLegs: []payoff.Leg{
			{Type: payoff.LegCall, Action: payoff.ActionSell, LotSize: 50, Strike: &strike, Premium: &premium},
		},
		Notes: "roll on Thursday",
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st := sampleStrategy()
	if err := s.Create(ctx, st); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.ID == 0 {
		t.Fatal("Create did not assign an ID")
	}
	if st.CreatedAt.IsZero() || st.UpdatedAt.IsZero() {
		t.Fatal("Create did not assign timestamps")
	}

	got, err := s.Get(ctx, st.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != st.Name || got.StrategyType != st.StrategyType {
		t.Errorf("got %q/%q, want %q/%q", got.Name, got.StrategyType, st.Name, st.StrategyType)
	}
	if got.Notes != st.Notes {
		t.Errorf("notes = %q, want %q", got.Notes, st.Notes)
	}
	if len(got.CustomLegs) != 1 {
		t.Fatalf("got %d legs, want 1", len(got.CustomLegs))
	}
	if got.CustomLegs[0].Strike == nil || *got.CustomLegs[0].Strike != 18500 {
		t.Errorf("leg strike = %v, want 18500", got.CustomLegs[0].Strike)
	}
	// JSON round-trips numbers as float64 and strings stay strings.
	if got.Parameters["futuresPrice"] != 18000.0 {
		t.Errorf("futuresPrice = %v (%T)", got.Parameters["futuresPrice"], got.Parameters["futuresPrice"])
	}
	if got.Parameters["premium"] != "200" {
		t.Errorf("premium = %v (%T)", got.Parameters["premium"], got.Parameters["premium"])
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		st := sampleStrategy()
		if err := s.Create(ctx, st); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	all, err := s.List(ctx, 0, 100)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d strategies, want 5", len(all))
	}

	page, err := s.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("got %d strategies, want 2", len(page))
	}
	if page[0].ID != all[2].ID {
		t.Errorf("page starts at ID %d, want %d", page[0].ID, all[2].ID)
	}
}

func TestUpdatePartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st := sampleStrategy()
	if err := s.Create(ctx, st); err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "renamed"
	got, err := s.Update(ctx, st.ID, StrategyUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "renamed" {
		t.Errorf("name = %q, want renamed", got.Name)
	}
	// Unset fields must be untouched.
	if got.StrategyType != st.StrategyType {
		t.Errorf("strategy type changed to %q", got.StrategyType)
	}
	if got.Notes != st.Notes {
		t.Errorf("notes changed to %q", got.Notes)
	}

	_, err = s.Update(ctx, 9999, StrategyUpdate{Name: &newName})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	st := sampleStrategy()
	if err := s.Create(ctx, st); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete(ctx, st.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, st.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, st.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
}
