package repositories

import (
	"github.com/JWDT/bug-tracker/models"
	"gorm.io/gorm"
)

type AuditRepo interface {
	CreateAuditLog(entry *models.AuditLog) error
	ListAuditLogs(limit int) ([]models.AuditLog, error)
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) CreateAuditLog(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) ListAuditLogs(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.Order("created_at desc").Limit(limit).Find(&logs).Error
	return logs, err
}
