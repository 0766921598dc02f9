package models

import "time"

// Bed status values
const (
	BedStatusAvailable = "available"
	BedStatusOccupied  = "occupied"
)

// Bed represents a hospital bed ("camilla"). A bed references its current
// patient by id only; patient data is never embedded in the bed record.
type Bed struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Room          string    `gorm:"size:50;not null" json:"room"`
	Status        string    `gorm:"size:20;not null;default:'available';index" json:"status"`
	PatientID     *string   `gorm:"size:36;index" json:"patient_id"`
	OccupiedSince *string   `gorm:"size:40" json:"occupied_since"`
	ReleasedAt    *string   `gorm:"size:40" json:"released_at"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Bed model
func (Bed) TableName() string {
	return "beds"
}

// IsAvailable reports whether the bed can accept a patient
func (b *Bed) IsAvailable() bool {
	return b.Status == BedStatusAvailable
}
