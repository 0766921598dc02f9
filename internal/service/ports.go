package service

import "hospital-bed-management/internal/models"

// BedStore is the persistence port for beds. Implementations must make
// AssignIfAvailable and ReleaseIfOccupied atomic per record so that racing
// writers resolve to exactly one winner.
type BedStore interface {
	FindByID(id string) (*models.Bed, error)
	FindAll() ([]models.Bed, error)
	FindByStatus(status string) ([]models.Bed, error)
	FindByPatientID(patientID string) (*models.Bed, error)
	Create(bed *models.Bed) error
	AssignIfAvailable(bedID, patientID, occupiedSince string) (bool, error)
	ReleaseIfOccupied(bedID, releasedAt string) (bool, error)
	Release(bedID, releasedAt string) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

// PatientStore is the persistence port for patients.
type PatientStore interface {
	FindByID(id string) (*models.Patient, error)
	FindAll() ([]models.Patient, error)
	Create(patient *models.Patient) error
	Save(patient *models.Patient) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

// EventPublisher is the outbound messaging port. Delivery is at-least-once;
// publishing failures surface to the caller, never retry internally.
type EventPublisher interface {
	Publish(topic string, event interface{}) error
}

// AuditSink records administrative actions. Audit failures are never allowed
// to fail the operation being audited.
type AuditSink interface {
	CreateAuditLog(action string, details string) error
}
