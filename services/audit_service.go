package services

import (
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/repositories"
)

const defaultAuditLogLimit = 100

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) ListAuditLogs(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}
	return s.repos.Audit.ListAuditLogs(limit)
}
