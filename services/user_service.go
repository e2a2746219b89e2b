package services

import (
	"errors"
	"fmt"

	"github.com/JWDT/bug-tracker/config"
	"github.com/JWDT/bug-tracker/dto"
	"github.com/JWDT/bug-tracker/middleware"
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/repositories"
	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/types"
	"github.com/JWDT/bug-tracker/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) RegisterUser(input dto.RegisterUserDTO) (*models.User, string, []response.FieldError, error) {
	_, err := s.repos.User.GetUserByEmail(input.Email)
	if err == nil {
		return nil, "", []response.FieldError{{
			Field:   "email",
			Message: "that email is already in use.",
		}}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", nil, err
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      models.UserRoleSubmitter,
	}
	if err := s.repos.User.CreateUser(user); err != nil {
		return nil, "", nil, err
	}

	token, err := middleware.GenerateToken(*user, config.TokenExpiry)
	if err != nil {
		return nil, "", nil, err
	}
	return user, token, nil, nil
}

func (s *UserService) LoginUser(input dto.LoginUserDTO) (*models.User, string, []response.FieldError, error) {
	user, err := s.repos.User.GetUserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", []response.FieldError{{
				Field:   "email",
				Message: "that email doesn't exist.",
			}}, nil
		}
		return nil, "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", []response.FieldError{{
			Field:   "password",
			Message: "incorrect password.",
		}}, nil
	}

	token, err := middleware.GenerateToken(user, config.TokenExpiry)
	if err != nil {
		return nil, "", nil, err
	}
	return &user, token, nil, nil
}

func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ChangeRole is an admin operation; route middleware enforces the role.
func (s *UserService) ChangeRole(actor types.ActorContext, userID uint, role string) (*models.User, []response.FieldError, error) {
	if !models.UserRole(role).Valid() {
		return nil, []response.FieldError{{
			Field:   "role",
			Message: "invalid user role.",
		}}, nil
	}

	user, err := s.repos.User.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, []response.FieldError{{
				Field:   "user",
				Message: "failed to find a user with that id.",
			}}, nil
		}
		return nil, nil, err
	}

	oldUser := user
	user.Role = models.UserRole(role)
	if err := s.repos.User.SaveUser(&user); err != nil {
		return nil, nil, err
	}

	utils.LogAuditWithConsole(actor, "changeRole", "user", fmt.Sprintf("id=%d", user.ID), oldUser, user, "", s.repos.Audit)
	return &user, nil, nil
}
