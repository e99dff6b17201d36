package storage

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestCellInitialValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("missing key falls back to default", func(t *testing.T) {
		cell := NewCell(ctx, store, "missing", record{Name: "default"}, testLogger())
		if got := cell.Get(); got.Name != "default" {
			t.Fatalf("expected default value, got %+v", got)
		}
	})

	t.Run("stored value wins over default", func(t *testing.T) {
		if err := store.Set(ctx, "present", []byte(`{"name":"stored","count":3}`)); err != nil {
			t.Fatalf("seed store: %v", err)
		}
		cell := NewCell(ctx, store, "present", record{Name: "default"}, testLogger())
		got := cell.Get()
		if got.Name != "stored" || got.Count != 3 {
			t.Fatalf("expected stored value, got %+v", got)
		}
	})

	t.Run("decode failure falls back to default", func(t *testing.T) {
		if err := store.Set(ctx, "broken", []byte(`{not json`)); err != nil {
			t.Fatalf("seed store: %v", err)
		}
		cell := NewCell(ctx, store, "broken", record{Name: "default"}, testLogger())
		if got := cell.Get(); got.Name != "default" {
			t.Fatalf("expected default after decode failure, got %+v", got)
		}
	})
}

func TestCellRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cell := NewCell(ctx, store, "round-trip", record{}, testLogger())
	cell.Set(ctx, record{Name: "hello", Count: 7})

	// a fresh cell over the same key must observe the written value
	fresh := NewCell(ctx, store, "round-trip", record{}, testLogger())
	got := fresh.Get()
	if got.Name != "hello" || got.Count != 7 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCellUpdateSeesPreviousValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cell := NewCell(ctx, store, "counter", record{Count: 1}, testLogger())
	cell.Update(ctx, func(prev record) record {
		prev.Count++
		return prev
	})
	cell.Update(ctx, func(prev record) record {
		prev.Count++
		return prev
	})

	if got := cell.Get(); got.Count != 3 {
		t.Fatalf("expected 3, got %d", got.Count)
	}
}

func TestCellNilDeletesKey(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	cell := NewCell(ctx, store, "slot", (*record)(nil), testLogger())
	cell.Set(ctx, &record{Name: "filled"})

	if _, err := store.Get(ctx, "slot"); err != nil {
		t.Fatalf("expected key to exist: %v", err)
	}

	cell.Set(ctx, nil)

	if _, err := store.Get(ctx, "slot"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after nil write, got %v", err)
	}
	if got := cell.Get(); got != nil {
		t.Fatalf("expected nil in-memory value, got %+v", got)
	}
}

type failingStore struct {
	Store
	setErr error
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return s.setErr
}

func TestCellKeepsMemoryValueWhenWriteFails(t *testing.T) {
	backing := NewMemoryStore()
	store := &failingStore{Store: backing, setErr: errors.New("quota exceeded")}
	ctx := context.Background()

	cell := NewCell(ctx, store, "flaky", record{}, testLogger())
	cell.Set(ctx, record{Name: "in-memory-only"})

	if got := cell.Get(); got.Name != "in-memory-only" {
		t.Fatalf("in-memory value not updated: %+v", got)
	}
	if _, err := backing.Get(ctx, "flaky"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("durable store should be untouched, got %v", err)
	}
}
