package store

import (
	"testing"
	"time"

	"fleet-roi/internal/simulation"
)

func sampleResult() *simulation.Result {
	return &simulation.Result{
		Ledger: []simulation.MonthlyRecord{
			{Month: 1, SubscriptionCost: 1000, CumulativeROI: "-100.0%"},
		},
		FinalProfit: -2100,
		FinalROI:    -1,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	id := NewID()
	if err := s.Set(id, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := s.Get(id)
	if !ok {
		t.Fatalf("expected stored result")
	}
	if len(got.Ledger) != 1 || got.Ledger[0].Month != 1 {
		t.Errorf("stored result mangled: %+v", got)
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	if _, ok := s.Get("missing"); ok {
		t.Errorf("expected miss for unknown id")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)

	id := NewID()
	if err := s.Set(id, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	if _, ok := s.Get(id); ok {
		t.Errorf("expected entry to expire")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 32 {
			t.Fatalf("id length = %d, want 32", len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
