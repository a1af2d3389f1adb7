package models

import "time"

// WasteReport is a citizen-submitted sighting of waste. Accepting one puts a
// matching pending task on the collection board.
type WasteReport struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:191;not null;index" json:"email"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	WasteType   string    `gorm:"size:100;not null" json:"waste_type"`
	EstimatedKg int       `gorm:"not null" json:"estimated_kg"`
	ImageKey    *string   `gorm:"size:255" json:"image_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (WasteReport) TableName() string {
	return "waste_reports"
}
