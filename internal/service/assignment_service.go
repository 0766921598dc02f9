package service

import (
	"fmt"
	"time"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/internal/models"

	"go.uber.org/zap"
)

type AssignmentService struct {
	bedStore     BedStore
	patientStore PatientStore
	auditSink    AuditSink
	logger       *zap.Logger
}

func NewAssignmentService(bedStore BedStore, patientStore PatientStore, auditSink AuditSink, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{
		bedStore:     bedStore,
		patientStore: patientStore,
		auditSink:    auditSink,
		logger:       logger,
	}
}

// AssignPatientToBed admits a patient onto an available bed. The patient
// record itself is not modified. Under concurrent attempts on the same bed
// exactly one caller wins; the loser observes InvalidState.
func (s *AssignmentService) AssignPatientToBed(bedID, patientID string) (*models.Bed, error) {
	s.logger.Info("assigning patient to bed",
		zap.String("bed_id", bedID),
		zap.String("patient_id", patientID))

	bed, err := s.bedStore.FindByID(bedID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patientStore.FindByID(patientID); err != nil {
		return nil, err
	}

	if !bed.IsAvailable() {
		s.logger.Warn("bed not available for assignment",
			zap.String("bed_id", bedID),
			zap.String("status", bed.Status))
		return nil, apperrors.NewInvalidState("bed", bedID, bed.Status)
	}

	occupiedSince := time.Now().UTC().Format(time.RFC3339)
	won, err := s.bedStore.AssignIfAvailable(bedID, patientID, occupiedSince)
	if err != nil {
		return nil, err
	}
	if !won {
		// Lost the race: re-read to report the actual current status.
		current, ferr := s.bedStore.FindByID(bedID)
		if ferr != nil {
			return nil, ferr
		}
		s.logger.Warn("concurrent assignment won by another caller",
			zap.String("bed_id", bedID),
			zap.String("status", current.Status))
		return nil, apperrors.NewInvalidState("bed", bedID, current.Status)
	}

	updated, err := s.bedStore.FindByID(bedID)
	if err != nil {
		return nil, err
	}

	_ = s.auditSink.CreateAuditLog("bed_assign",
		fmt.Sprintf("Assigned patient %s to bed %s (room %s)", patientID, bedID, updated.Room))

	s.logger.Info("patient assigned to bed",
		zap.String("bed_id", bedID),
		zap.String("patient_id", patientID))
	return updated, nil
}
