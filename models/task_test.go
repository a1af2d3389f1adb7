package models

import "testing"

func pendingTask() CollectionTask {
	return CollectionTask{ID: 1, Location: "Anna Nagar", WasteType: "Plastic Bottles", Amount: "3kg", Status: TaskPending, Date: "2025-08-01"}
}

func TestClaimAssignsCollector(t *testing.T) {
	task := pendingTask()
	if err := task.Claim("collector@example.com"); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if task.Status != TaskInProgress {
		t.Fatalf("expected in_progress, got %s", task.Status)
	}
	if task.CollectorID == nil || *task.CollectorID != "collector@example.com" {
		t.Fatalf("collector not assigned: %v", task.CollectorID)
	}
}

func TestClaimRequiresPending(t *testing.T) {
	task := pendingTask()
	_ = task.Claim("first@example.com")
	if err := task.Claim("second@example.com"); err != ErrTaskNotClaimable {
		t.Fatalf("expected ErrTaskNotClaimable, got %v", err)
	}
	if *task.CollectorID != "first@example.com" {
		t.Fatal("collector must stay fixed after the first claim")
	}
}

func TestVerifyHappyPath(t *testing.T) {
	task := pendingTask()
	_ = task.Claim("collector@example.com")
	if err := task.Verify("collector@example.com", "evidence/1.jpg"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if task.Status != TaskVerified {
		t.Fatalf("expected verified, got %s", task.Status)
	}
	if task.EvidenceKey == nil || *task.EvidenceKey != "evidence/1.jpg" {
		t.Fatal("evidence key not stored")
	}
}

func TestVerifyRejectsWrongCollector(t *testing.T) {
	task := pendingTask()
	_ = task.Claim("collector@example.com")
	if err := task.Verify("intruder@example.com", "evidence/1.jpg"); err != ErrNotTaskCollector {
		t.Fatalf("expected ErrNotTaskCollector, got %v", err)
	}
	if task.Status != TaskInProgress {
		t.Fatal("rejected verify must not change status")
	}
}

func TestVerifyRequiresEvidence(t *testing.T) {
	task := pendingTask()
	_ = task.Claim("collector@example.com")
	if err := task.Verify("collector@example.com", ""); err != ErrNoEvidence {
		t.Fatalf("expected ErrNoEvidence, got %v", err)
	}
}

func TestVerifyRequiresInProgress(t *testing.T) {
	task := pendingTask()
	if err := task.Verify("collector@example.com", "evidence/1.jpg"); err != ErrTaskNotInProgress {
		t.Fatalf("verify from pending: expected ErrTaskNotInProgress, got %v", err)
	}
	_ = task.Claim("collector@example.com")
	_ = task.Verify("collector@example.com", "evidence/1.jpg")
	if err := task.Verify("collector@example.com", "evidence/2.jpg"); err != ErrTaskNotInProgress {
		t.Fatalf("verified is terminal: expected ErrTaskNotInProgress, got %v", err)
	}
}

func TestSeedTasksHaveFixedIDs(t *testing.T) {
	seen := map[uint]bool{}
	for _, task := range SeedTasks() {
		if task.ID == 0 {
			t.Fatalf("seed task %q has no fixed id", task.Location)
		}
		if seen[task.ID] {
			t.Fatalf("seed task id %d repeats", task.ID)
		}
		seen[task.ID] = true
	}
}
