package models

import "time"

// Setting holds the single row of application switches consulted by auth.
type Setting struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;default:'EcoCollect'" json:"name"`
	Maintenance    bool      `gorm:"default:false" json:"maintenance"`
	ClosedRegister bool      `gorm:"default:false" json:"closed_register"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (Setting) TableName() string {
	return "settings"
}
