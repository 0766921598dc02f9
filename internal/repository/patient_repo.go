package repository

import (
	"errors"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// FindByID retrieves a patient by ID
func (r *PatientRepository) FindByID(id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("patient", id)
		}
		return nil, apperrors.NewStorage("find patient", err)
	}
	return &patient, nil
}

// FindAll retrieves all patients
func (r *PatientRepository) FindAll() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("last_name ASC, first_name ASC").Find(&patients).Error
	if err != nil {
		return nil, apperrors.NewStorage("list patients", err)
	}
	return patients, nil
}

// Create persists a new patient
func (r *PatientRepository) Create(patient *models.Patient) error {
	if err := r.db.Create(patient).Error; err != nil {
		return apperrors.NewStorage("create patient", err)
	}
	return nil
}

// Save updates an existing patient
func (r *PatientRepository) Save(patient *models.Patient) error {
	if err := r.db.Save(patient).Error; err != nil {
		return apperrors.NewStorage("save patient", err)
	}
	return nil
}

// Delete removes a patient by ID
func (r *PatientRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Patient{})
	if res.Error != nil {
		return apperrors.NewStorage("delete patient", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("patient", id)
	}
	return nil
}

// Exists reports whether a patient with the given ID exists
func (r *PatientRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.NewStorage("check patient exists", err)
	}
	return count > 0, nil
}
