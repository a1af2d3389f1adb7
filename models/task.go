package models

import (
	"errors"
	"time"
)

// Collection task statuses. A task only ever moves forward:
// pending -> in_progress -> verified.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskVerified   = "verified"
)

var (
	ErrTaskNotClaimable  = errors.New("task is not available for collection")
	ErrTaskNotInProgress = errors.New("task is not in progress")
	ErrNotTaskCollector  = errors.New("task is assigned to another collector")
	ErrNoEvidence        = errors.New("verification evidence is required")
)

type CollectionTask struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	WasteType   string    `gorm:"size:100;not null" json:"waste_type"`
	Amount      string    `gorm:"size:50;not null" json:"amount"`
	Status      string    `gorm:"type:enum('pending','in_progress','verified');default:'pending'" json:"status"`
	Date        string    `gorm:"size:20;not null" json:"date"`
	CollectorID *string   `gorm:"size:191;index" json:"collector_id"`
	EvidenceKey *string   `gorm:"size:255" json:"evidence_key,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (CollectionTask) TableName() string {
	return "collection_tasks"
}

// Claim moves a pending task to in_progress and assigns the collector.
// The collector is set exactly once and stays fixed for the task's lifetime.
func (t *CollectionTask) Claim(collectorEmail string) error {
	if collectorEmail == "" {
		return ErrNotTaskCollector
	}
	if t.Status != TaskPending {
		return ErrTaskNotClaimable
	}
	t.Status = TaskInProgress
	t.CollectorID = &collectorEmail
	return nil
}

// Verify finalizes an in_progress task. Only the collector who claimed the
// task may verify it, and an evidence object key must be supplied.
func (t *CollectionTask) Verify(collectorEmail, evidenceKey string) error {
	if t.Status != TaskInProgress {
		return ErrTaskNotInProgress
	}
	if t.CollectorID == nil || *t.CollectorID != collectorEmail {
		return ErrNotTaskCollector
	}
	if evidenceKey == "" {
		return ErrNoEvidence
	}
	t.Status = TaskVerified
	t.EvidenceKey = &evidenceKey
	return nil
}

// SeedTasks is the fixed sample set loaded once when the board is empty.
func SeedTasks() []CollectionTask {
	// fixed primary keys so a racing double-seed collides instead of
	// inserting the set twice
	return []CollectionTask{
		{ID: 1, Location: "Anna Nagar", WasteType: "Plastic Bottles", Amount: "3kg", Status: TaskPending, Date: "2025-08-01"},
		{ID: 2, Location: "T. Nagar", WasteType: "Food Waste", Amount: "5kg", Status: TaskPending, Date: "2025-08-02"},
		{ID: 3, Location: "Velachery", WasteType: "E-Waste", Amount: "2kg", Status: TaskPending, Date: "2025-08-03"},
		{ID: 4, Location: "Tambaram", WasteType: "Metal Scrap", Amount: "4kg", Status: TaskPending, Date: "2025-08-04"},
		{ID: 5, Location: "Kodambakkam", WasteType: "Glass", Amount: "1kg", Status: TaskPending, Date: "2025-08-05"},
	}
}
