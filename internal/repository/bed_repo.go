package repository

import (
	"errors"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/internal/models"

	"gorm.io/gorm"
)

type BedRepository struct {
	db *gorm.DB
}

func NewBedRepo(db *gorm.DB) *BedRepository {
	return &BedRepository{db: db}
}

// FindByID retrieves a bed by ID
func (r *BedRepository) FindByID(id string) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.Where("id = ?", id).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("bed", id)
		}
		return nil, apperrors.NewStorage("find bed", err)
	}
	return &bed, nil
}

// FindAll retrieves all beds regardless of status
func (r *BedRepository) FindAll() ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Order("room ASC").Find(&beds).Error
	if err != nil {
		return nil, apperrors.NewStorage("list beds", err)
	}
	return beds, nil
}

// FindByStatus retrieves all beds with the given status
func (r *BedRepository) FindByStatus(status string) ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Where("status = ?", status).Order("room ASC").Find(&beds).Error
	if err != nil {
		return nil, apperrors.NewStorage("list beds by status", err)
	}
	return beds, nil
}

// FindByPatientID retrieves the bed currently referencing the given patient
func (r *BedRepository) FindByPatientID(patientID string) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.Where("patient_id = ?", patientID).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("bed for patient", patientID)
		}
		return nil, apperrors.NewStorage("find bed by patient", err)
	}
	return &bed, nil
}

// Create persists a new bed
func (r *BedRepository) Create(bed *models.Bed) error {
	if err := r.db.Create(bed).Error; err != nil {
		return apperrors.NewStorage("create bed", err)
	}
	return nil
}

// AssignIfAvailable atomically occupies the bed for the given patient.
// The status guard in the WHERE clause makes the update a compare-and-set:
// of two racing callers exactly one sees RowsAffected == 1.
func (r *BedRepository) AssignIfAvailable(bedID, patientID, occupiedSince string) (bool, error) {
	res := r.db.Model(&models.Bed{}).
		Where("id = ? AND status = ?", bedID, models.BedStatusAvailable).
		Updates(map[string]interface{}{
			"status":         models.BedStatusOccupied,
			"patient_id":     patientID,
			"occupied_since": occupiedSince,
		})
	if res.Error != nil {
		return false, apperrors.NewStorage("assign bed", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ReleaseIfOccupied frees the bed only if it is still occupied. Returns false
// without error when some other process already freed it.
func (r *BedRepository) ReleaseIfOccupied(bedID, releasedAt string) (bool, error) {
	res := r.db.Model(&models.Bed{}).
		Where("id = ? AND status = ?", bedID, models.BedStatusOccupied).
		Updates(map[string]interface{}{
			"status":      models.BedStatusAvailable,
			"patient_id":  nil,
			"released_at": releasedAt,
		})
	if res.Error != nil {
		return false, apperrors.NewStorage("release bed", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// Release frees the bed unconditionally. Used by the event consumer, where
// both writers agree on the target state and last writer wins on released_at.
func (r *BedRepository) Release(bedID, releasedAt string) error {
	res := r.db.Model(&models.Bed{}).
		Where("id = ?", bedID).
		Updates(map[string]interface{}{
			"status":      models.BedStatusAvailable,
			"patient_id":  nil,
			"released_at": releasedAt,
		})
	if res.Error != nil {
		return apperrors.NewStorage("release bed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("bed", bedID)
	}
	return nil
}

// Delete removes a bed by ID
func (r *BedRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Bed{})
	if res.Error != nil {
		return apperrors.NewStorage("delete bed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("bed", id)
	}
	return nil
}

// Exists reports whether a bed with the given ID exists
func (r *BedRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bed{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.NewStorage("check bed exists", err)
	}
	return count > 0, nil
}
