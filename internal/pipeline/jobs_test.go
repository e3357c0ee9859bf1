package pipeline

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"outliner/internal/outline"
)

func TestContentHashHexConsistency(t *testing.T) {
	data := []byte("1. Introduction\nBody text.")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("same content produced different hashes: %s vs %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
	if h1 == ContentHashHex([]byte("different")) {
		t.Error("different content produced same hash")
	}
}

func TestJobStatusTransitions(t *testing.T) {
	job := &Job{
		ID:        NewJobID(),
		Status:    StatusQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	job.SetStatus(StatusExtracting, "extracting text")
	if job.Snapshot().Status != StatusExtracting {
		t.Errorf("expected extracting, got %s", job.Snapshot().Status)
	}

	job.SetStatus(StatusAnalyzing, "detecting headings")
	snap := job.Snapshot()
	if snap.Status != StatusAnalyzing || snap.Phase != "detecting headings" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestJobSetResultDropsFileData(t *testing.T) {
	job := &Job{ID: NewJobID(), Status: StatusQueued}
	job.SetFileData([]byte("raw document bytes"))
	if job.FileData() == nil {
		t.Fatal("expected file data before result")
	}

	job.SetResult(outline.Outline{Title: "Doc", Outline: []outline.Heading{}})

	if job.FileData() != nil {
		t.Error("file data should be dropped after result is set")
	}
	result := job.Result()
	if result == nil || result.Title != "Doc" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestJobSnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: NewJobID(), Status: StatusQueued}
	snap := job.Snapshot()
	if snap.Errors == nil {
		t.Fatal("snapshot errors should be empty slice, not nil")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	if !strings.Contains(string(data), `"errors":[]`) {
		t.Errorf("expected empty errors array in JSON, got %s", data)
	}

	job.AddError("extraction failed")
	snap = job.Snapshot()
	if len(snap.Errors) != 1 || snap.Errors[0] != "extraction failed" {
		t.Errorf("unexpected errors %v", snap.Errors)
	}
}

func TestJobStorePutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "job-1", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("job-1"); got != job {
		t.Error("expected stored job back")
	}
	if got := store.Get("missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}

func TestJobStoreCleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	old := &Job{ID: "old", Status: StatusCompleted, UpdatedAt: time.Now().Add(-time.Minute)}
	fresh := &Job{ID: "fresh", Status: StatusQueued, UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestNewJobIDUniqueAndSorted(t *testing.T) {
	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 1000; i++ {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %d: %s", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate job ID %s", id)
		}
		seen[id] = true
		if prev != "" && id < prev {
			t.Fatalf("IDs not monotonically sortable: %s < %s", id, prev)
		}
		prev = id
	}
}
