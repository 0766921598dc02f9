package service

import (
	"fmt"

	"hospital-bed-management/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PatientService struct {
	patientStore PatientStore
	auditSink    AuditSink
	logger       *zap.Logger
}

func NewPatientService(patientStore PatientStore, auditSink AuditSink, logger *zap.Logger) *PatientService {
	return &PatientService{
		patientStore: patientStore,
		auditSink:    auditSink,
		logger:       logger,
	}
}

// CreatePatient registers a new patient, always hospitalized
func (s *PatientService) CreatePatient(patient *models.Patient) (*models.Patient, error) {
	patient.ID = uuid.NewString()
	patient.Status = models.PatientStatusHospitalized
	patient.DischargedAt = nil

	if err := s.patientStore.Create(patient); err != nil {
		return nil, err
	}

	_ = s.auditSink.CreateAuditLog("patient_create",
		fmt.Sprintf("Registered patient %s (%s %s)", patient.ID, patient.FirstName, patient.LastName))

	s.logger.Info("patient registered", zap.String("patient_id", patient.ID))
	return patient, nil
}

// GetPatient retrieves a patient by ID
func (s *PatientService) GetPatient(id string) (*models.Patient, error) {
	return s.patientStore.FindByID(id)
}

// ListPatients retrieves all patients
func (s *PatientService) ListPatients() ([]models.Patient, error) {
	return s.patientStore.FindAll()
}

// DeletePatient removes a patient by ID
func (s *PatientService) DeletePatient(id string) error {
	if err := s.patientStore.Delete(id); err != nil {
		return err
	}

	_ = s.auditSink.CreateAuditLog("patient_delete",
		fmt.Sprintf("Deleted patient %s", id))

	s.logger.Info("patient deleted", zap.String("patient_id", id))
	return nil
}
