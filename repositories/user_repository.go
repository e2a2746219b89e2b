package repositories

import (
	"github.com/JWDT/bug-tracker/models"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return r.db.Save(user).Error
}
