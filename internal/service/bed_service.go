package service

import (
	"fmt"
	"time"

	"hospital-bed-management/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BedService struct {
	bedStore     BedStore
	patientStore PatientStore
	auditSink    AuditSink
	logger       *zap.Logger
}

func NewBedService(bedStore BedStore, patientStore PatientStore, auditSink AuditSink, logger *zap.Logger) *BedService {
	return &BedService{
		bedStore:     bedStore,
		patientStore: patientStore,
		auditSink:    auditSink,
		logger:       logger,
	}
}

// CreateBed creates a new bed in the given room, always available
func (s *BedService) CreateBed(room string) (*models.Bed, error) {
	bed := &models.Bed{
		ID:     uuid.NewString(),
		Room:   room,
		Status: models.BedStatusAvailable,
	}
	if err := s.bedStore.Create(bed); err != nil {
		return nil, err
	}

	_ = s.auditSink.CreateAuditLog("bed_create",
		fmt.Sprintf("Created bed %s in room %s", bed.ID, room))

	s.logger.Info("bed created", zap.String("bed_id", bed.ID), zap.String("room", room))
	return bed, nil
}

// GetBed retrieves a bed by ID
func (s *BedService) GetBed(id string) (*models.Bed, error) {
	return s.bedStore.FindByID(id)
}

// ListBeds retrieves all beds regardless of status
func (s *BedService) ListBeds() ([]models.Bed, error) {
	return s.bedStore.FindAll()
}

// ListBedsByStatus retrieves beds filtered by status
func (s *BedService) ListBedsByStatus(status string) ([]models.Bed, error) {
	return s.bedStore.FindByStatus(status)
}

// ListAvailableBeds retrieves all beds ready for assignment
func (s *BedService) ListAvailableBeds() ([]models.Bed, error) {
	return s.bedStore.FindByStatus(models.BedStatusAvailable)
}

// ReleaseBed frees a bed directly, bypassing the discharge flow (maintenance,
// transfer, manual correction). A patient still referenced by the bed is
// discharged with the same end date. No release event is published here.
func (s *BedService) ReleaseBed(bedID, endDate string) (*models.Bed, error) {
	s.logger.Info("releasing bed administratively", zap.String("bed_id", bedID))

	bed, err := s.bedStore.FindByID(bedID)
	if err != nil {
		return nil, err
	}
	if endDate == "" {
		endDate = time.Now().UTC().Format(time.RFC3339)
	}

	if bed.PatientID != nil {
		if err := s.dischargeOccupant(*bed.PatientID, endDate); err != nil {
			s.logger.Warn("could not discharge occupant during bed release",
				zap.String("bed_id", bedID),
				zap.String("patient_id", *bed.PatientID),
				zap.Error(err))
		}
	}

	if err := s.bedStore.Release(bedID, endDate); err != nil {
		return nil, err
	}

	released, err := s.bedStore.FindByID(bedID)
	if err != nil {
		return nil, err
	}

	_ = s.auditSink.CreateAuditLog("bed_release",
		fmt.Sprintf("Released bed %s at %s", bedID, endDate))

	s.logger.Info("bed released", zap.String("bed_id", bedID))
	return released, nil
}

// dischargeOccupant marks the referenced patient discharged, best effort.
func (s *BedService) dischargeOccupant(patientID, endDate string) error {
	patient, err := s.patientStore.FindByID(patientID)
	if err != nil {
		return err
	}
	if patient.Status == models.PatientStatusDischarged {
		return nil
	}
	patient.Status = models.PatientStatusDischarged
	patient.DischargedAt = &endDate
	if err := s.patientStore.Save(patient); err != nil {
		return err
	}
	s.logger.Info("occupant discharged during bed release",
		zap.String("patient_id", patientID))
	return nil
}

// DeleteBed removes a bed by ID
func (s *BedService) DeleteBed(id string) error {
	if err := s.bedStore.Delete(id); err != nil {
		return err
	}

	_ = s.auditSink.CreateAuditLog("bed_delete",
		fmt.Sprintf("Deleted bed %s", id))

	s.logger.Info("bed deleted", zap.String("bed_id", id))
	return nil
}
