package store

import (
	"context"
	"testing"
	"time"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/plan"
)

func testRecord(t *testing.T, name string) Record {
	t.Helper()
	doc := plan.NewDocument(plan.Empty(), catalog.SampleLayout())
	rec := NewRecord(name, doc)
	if rec.ID == "" {
		t.Fatal("NewRecord should assign an ID")
	}
	return rec
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := testRecord(t, "store-a")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "store-a" || got.ID != rec.ID {
		t.Errorf("Get = %+v", got)
	}

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, errors.ErrCodeSolutionNotFound) {
		t.Errorf("Get after Delete = %v, want SOLUTION_NOT_FOUND", err)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, errors.ErrCodeSolutionNotFound) {
		t.Errorf("Get(missing) = %v, want SOLUTION_NOT_FOUND", err)
	}
	if err := s.Delete(ctx, "nope"); !errors.Is(err, errors.ErrCodeSolutionNotFound) {
		t.Errorf("Delete(missing) = %v, want SOLUTION_NOT_FOUND", err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	older := testRecord(t, "older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := testRecord(t, "newer")

	if err := s.Put(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, newer); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List len = %d", len(list))
	}
	if list[0].Name != "newer" || list[1].Name != "older" {
		t.Errorf("List order = %s, %s", list[0].Name, list[1].Name)
	}
}

func TestMemoryStorePutOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := testRecord(t, "v1")
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}
	rec.Name = "v2"
	if err := s.Put(ctx, rec); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "v2" {
		t.Errorf("Name = %q, want v2", got.Name)
	}
}
