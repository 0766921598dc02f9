package service

import (
	"fmt"
	"time"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/internal/models"

	"go.uber.org/zap"
)

// DischargeResult carries the outcome of a completed discharge. Bed is nil
// when the patient had no bed assigned.
type DischargeResult struct {
	Patient *models.Patient `json:"patient"`
	Bed     *models.Bed     `json:"bed,omitempty"`
}

type DischargeService struct {
	patientStore PatientStore
	bedStore     BedStore
	publisher    EventPublisher
	auditSink    AuditSink
	topic        string
	logger       *zap.Logger
}

func NewDischargeService(patientStore PatientStore, bedStore BedStore, publisher EventPublisher, auditSink AuditSink, topic string, logger *zap.Logger) *DischargeService {
	return &DischargeService{
		patientStore: patientStore,
		bedStore:     bedStore,
		publisher:    publisher,
		auditSink:    auditSink,
		topic:        topic,
		logger:       logger,
	}
}

// Discharge ends a patient's hospitalization: commits the patient record,
// releases the occupied bed and publishes a release event, in that order.
// The patient write is authoritative; once it succeeds, failures in the bed
// write or the publish surface to the caller but are never rolled back.
func (s *DischargeService) Discharge(patientID string) (*DischargeResult, error) {
	s.logger.Info("starting discharge", zap.String("patient_id", patientID))

	patient, err := s.patientStore.FindByID(patientID)
	if err != nil {
		return nil, err
	}
	if err := s.validateDischargeable(patient); err != nil {
		return nil, err
	}

	dischargedAt := time.Now().UTC().Format(time.RFC3339)
	patient.Status = models.PatientStatusDischarged
	patient.DischargedAt = &dischargedAt
	if err := s.patientStore.Save(patient); err != nil {
		// Nothing else has run: the stored patient is untouched, retry is safe.
		s.logger.Error("failed to persist patient discharge",
			zap.String("patient_id", patientID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("patient discharged",
		zap.String("patient_id", patientID), zap.String("discharged_at", dischargedAt))

	bed, err := s.releaseBedAndPublish(patient, dischargedAt)
	if err != nil {
		return nil, err
	}

	_ = s.auditSink.CreateAuditLog("patient_discharge",
		fmt.Sprintf("Discharged patient %s at %s", patientID, dischargedAt))

	return &DischargeResult{Patient: patient, Bed: bed}, nil
}

// validateDischargeable checks the patient can transition to discharged.
func (s *DischargeService) validateDischargeable(patient *models.Patient) error {
	switch patient.Status {
	case models.PatientStatusHospitalized:
		return nil
	case models.PatientStatusDischarged:
		prior := ""
		if patient.DischargedAt != nil {
			prior = *patient.DischargedAt
		}
		return apperrors.NewConflict("patient", patient.ID, prior)
	default:
		return apperrors.NewInvalidState("patient", patient.ID, patient.Status)
	}
}

// releaseBedAndPublish frees the bed referencing the patient, if any, and
// announces the release. Runs after the patient discharge is committed.
func (s *DischargeService) releaseBedAndPublish(patient *models.Patient, releasedAt string) (*models.Bed, error) {
	bed, err := s.bedStore.FindByPatientID(patient.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			// A patient without an assigned bed is a legitimate state.
			s.logger.Info("no bed assigned to patient, discharge complete",
				zap.String("patient_id", patient.ID))
			return nil, nil
		}
		return nil, err
	}

	released, err := s.bedStore.ReleaseIfOccupied(bed.ID, releasedAt)
	if err != nil {
		s.logger.Error("failed to release bed, patient discharge remains committed",
			zap.String("bed_id", bed.ID), zap.Error(err))
		return nil, err
	}
	if !released {
		// Some other process already freed the bed; skip rather than clobber.
		s.logger.Warn("bed no longer occupied, skipping release and event",
			zap.String("bed_id", bed.ID))
		return nil, nil
	}
	s.logger.Info("bed released", zap.String("bed_id", bed.ID))

	event := models.BedReleaseEvent{
		BedID:      bed.ID,
		PatientID:  patient.ID,
		ReleasedAt: releasedAt,
		Origin:     models.ReleaseOriginSystemAuto,
	}
	if err := s.publisher.Publish(s.topic, event); err != nil {
		// Bed and patient are already in their final state; downstream systems
		// were simply not notified. Reconciliation is out-of-band.
		s.logger.Error("failed to publish bed release event",
			zap.String("bed_id", bed.ID), zap.Error(err))
		return nil, apperrors.NewInternal("publish bed release event", err)
	}
	s.logger.Info("bed release event published",
		zap.String("topic", s.topic), zap.String("bed_id", bed.ID))

	updated, err := s.bedStore.FindByID(bed.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
