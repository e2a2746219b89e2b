package repositories

import (
	"github.com/JWDT/bug-tracker/models"
	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	ListCommentsByTicket(ticketID uint) ([]models.Comment, error)
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *DBCommentRepo) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Commenter").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *DBCommentRepo) ListCommentsByTicket(ticketID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("ticket_id = ?", ticketID).
		Preload("Commenter").
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}
