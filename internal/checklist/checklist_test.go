package checklist_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"onboard/internal/checklist"
	"onboard/internal/roster"
)

var sampleEmployee = roster.Employee{
	Name:       "Ada Lovelace",
	Email:      "ada@corp.example",
	Department: "Engineering",
	StartDate:  "2026-03-12",
	Manager:    "Grace Hopper",
}

func TestBuildFixedTaskOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	c := checklist.Build(sampleEmployee, true, now)

	if c.Employee != "Ada Lovelace" {
		t.Fatalf("unexpected employee: %q", c.Employee)
	}
	if c.Created != "2026-03-10T09:00:00Z" {
		t.Fatalf("unexpected created timestamp: %q", c.Created)
	}

	wantNames := []string{
		"Send welcome email",
		"Prepare workspace",
		"Setup IT accounts",
		"Schedule first day meeting",
		"Assign buddy/mentor",
		"Order business cards",
	}
	wantOwners := []string{"HR", "Facilities", "IT", "Grace Hopper", "HR", "Marketing"}

	if len(c.Tasks) != 6 {
		t.Fatalf("expected 6 tasks, got %d", len(c.Tasks))
	}
	for i, task := range c.Tasks {
		if task.Name != wantNames[i] {
			t.Fatalf("task %d: expected name %q, got %q", i, wantNames[i], task.Name)
		}
		if task.Owner != wantOwners[i] {
			t.Fatalf("task %d: expected owner %q, got %q", i, wantOwners[i], task.Owner)
		}
	}
}

func TestBuildEmailTaskTracksSendOutcome(t *testing.T) {
	t.Parallel()

	now := time.Now()
	sent := checklist.Build(sampleEmployee, true, now)
	if sent.Tasks[0].Status != checklist.StatusCompleted {
		t.Fatalf("expected completed email task, got %q", sent.Tasks[0].Status)
	}

	failed := checklist.Build(sampleEmployee, false, now)
	if failed.Tasks[0].Status != checklist.StatusPending {
		t.Fatalf("expected pending email task after failed send, got %q", failed.Tasks[0].Status)
	}
	for _, task := range failed.Tasks[1:] {
		if task.Status != checklist.StatusPending {
			t.Fatalf("expected pending task %q, got %q", task.Name, task.Status)
		}
	}
}

func TestFilenameNormalization(t *testing.T) {
	t.Parallel()

	if got := checklist.Filename("Ada Lovelace"); got != "checklist_ada_lovelace.json" {
		t.Fatalf("unexpected filename: %q", got)
	}
	if got := checklist.Filename("  Jean Luc Picard "); got != "checklist_jean_luc_picard.json" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := checklist.Build(sampleEmployee, false, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

	path, err := original.Write(dir)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if filepath.Base(path) != "checklist_ada_lovelace.json" {
		t.Fatalf("unexpected path: %q", path)
	}

	loaded, err := checklist.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Fatalf("round trip mismatch:\noriginal: %#v\nloaded:   %#v", original, loaded)
	}
}

func TestWriteOverwritesOnNameCollision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Now()

	first := checklist.Build(sampleEmployee, true, now)
	if _, err := first.Write(dir); err != nil {
		t.Fatalf("first Write: %v", err)
	}

	duplicate := sampleEmployee
	duplicate.Manager = "Someone Else"
	second := checklist.Build(duplicate, false, now)
	path, err := second.Write(dir)
	if err != nil {
		t.Fatalf("second Write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected overwrite to leave one file, got %d", len(entries))
	}

	loaded, err := checklist.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Tasks[3].Owner != "Someone Else" {
		t.Fatal("expected later write to win on collision")
	}
}

func TestWriteFailsOnMissingDirectory(t *testing.T) {
	t.Parallel()

	c := checklist.Build(sampleEmployee, true, time.Now())
	if _, err := c.Write(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error when directory does not exist")
	}
}
