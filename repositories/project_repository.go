package repositories

import (
	"github.com/JWDT/bug-tracker/models"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (models.Project, error)
	CreateProject(p *models.Project) error
	ListProjects() ([]models.Project, error)
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	return project, err
}

func (r *DBProjectRepo) CreateProject(p *models.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Find(&projects).Error
	return projects, err
}
