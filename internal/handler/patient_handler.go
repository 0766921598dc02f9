package handler

import (
	"net/http"

	"hospital-bed-management/internal/models"
	"hospital-bed-management/internal/service"
	"hospital-bed-management/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService   *service.PatientService
	dischargeService *service.DischargeService
}

func NewPatientHandler(patientService *service.PatientService, dischargeService *service.DischargeService) *PatientHandler {
	return &PatientHandler{
		patientService:   patientService,
		dischargeService: dischargeService,
	}
}

// CreatePatientRequest is the payload for registering a patient
type CreatePatientRequest struct {
	FirstName           string `json:"first_name" binding:"required"`
	LastName            string `json:"last_name" binding:"required"`
	DocumentID          string `json:"document_id"`
	BirthDate           string `json:"birth_date"`
	BloodType           string `json:"blood_type"`
	Gender              string `json:"gender"`
	Allergies           string `json:"allergies"`
	MedicalRecordNumber string `json:"medical_record_number"`
	Insurer             string `json:"insurer"`
}

// CreatePatient registers a new patient
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient := &models.Patient{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DocumentID:          req.DocumentID,
		BirthDate:           req.BirthDate,
		BloodType:           req.BloodType,
		Gender:              req.Gender,
		Allergies:           req.Allergies,
		MedicalRecordNumber: req.MedicalRecordNumber,
		Insurer:             req.Insurer,
	}

	created, err := h.patientService.CreatePatient(patient)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, created)
}

// GetPatient retrieves a patient by ID
func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, err := h.patientService.GetPatient(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// ListPatients retrieves all patients
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// Discharge ends the patient's hospitalization and frees their bed
func (h *PatientHandler) Discharge(c *gin.Context) {
	result, err := h.dischargeService.Discharge(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// DeletePatient removes a patient by ID
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	if err := h.patientService.DeletePatient(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}
