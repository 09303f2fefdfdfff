package catalog

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.RecordRun(ctx, Run{
		Mode:             "reseed",
		Source:           "/base/data/landscape_data.csv",
		RowsTotal:        1000,
		RowsKept:         640,
		TargetGeneration: 1,
		BestFitness:      0.93,
		EliteSize:        500,
		Artifact:         "/base/adam_genome.json",
	})
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if id == 0 {
		t.Error("RecordRun() returned zero id")
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns() returned %d runs, want 1", len(runs))
	}

	got := runs[0]
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Mode != "reseed" || got.BestFitness != 0.93 || got.RowsKept != 640 {
		t.Errorf("run round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set automatically")
	}
}

func TestListRuns_NewestFirstAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.RecordRun(ctx, Run{
			Mode:      "landscape",
			Source:    "landscape_data.csv",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns(2) returned %d runs", len(runs))
	}
	if !runs[0].CreatedAt.After(runs[1].CreatedAt) {
		t.Errorf("runs not newest first: %v, %v", runs[0].CreatedAt, runs[1].CreatedAt)
	}
}

func TestOpen_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordRun(ctx, Run{Mode: "evolution", Source: "final_evolution.csv"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s2.Close()

	runs, err := s2.ListRuns(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("runs lost across reopen: %d", len(runs))
	}
}
