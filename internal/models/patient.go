package models

import "time"

// Patient status values
const (
	PatientStatusHospitalized     = "hospitalized"
	PatientStatusDischarged       = "discharged"
	PatientStatusUnderObservation = "under_observation"
)

// Patient represents an admitted individual. Demographic and administrative
// fields are opaque to the bed-management flows; only Status and DischargedAt
// participate in the discharge lifecycle.
type Patient struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName           string    `gorm:"size:100;not null" json:"first_name"`
	LastName            string    `gorm:"size:100;not null" json:"last_name"`
	DocumentID          string    `gorm:"size:50;index" json:"document_id"`
	BirthDate           string    `gorm:"size:20" json:"birth_date"`
	BloodType           string    `gorm:"size:10" json:"blood_type"`
	Gender              string    `gorm:"size:20" json:"gender"`
	Allergies           string    `gorm:"type:text" json:"allergies,omitempty"`
	Status              string    `gorm:"size:30;not null;default:'hospitalized'" json:"status"`
	DischargedAt        *string   `gorm:"size:40" json:"discharged_at"`
	MedicalRecordNumber string    `gorm:"size:50" json:"medical_record_number,omitempty"`
	Insurer             string    `gorm:"size:100" json:"insurer,omitempty"`
	CreatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
