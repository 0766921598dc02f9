package repository

import (
	"hospital-bed-management/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(action string, details string) error {
	log := &models.AuditLog{
		Action:  action,
		Details: details,
	}
	return r.db.Create(log).Error
}
