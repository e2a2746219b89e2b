package services

import (
	"errors"
	"fmt"

	"github.com/JWDT/bug-tracker/dto"
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/repositories"
	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/types"
	"github.com/JWDT/bug-tracker/utils"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	repos *repositories.Repos
}

func NewProjectService(repos *repositories.Repos) *ProjectService {
	return &ProjectService{repos: repos}
}

func (s *ProjectService) CreateProject(actor types.ActorContext, input dto.CreateProjectDTO) (*models.Project, error) {
	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repos.Project.CreateProject(project); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(actor, "create", "project", fmt.Sprintf("id=%d", project.ID), nil, project, "", s.repos.Audit)
	return project, nil
}

func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	project, err := s.repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.repos.Project.ListProjects()
}

// AssignProject points a user's single project assignment at the given
// project. Non-admin users carry at most one assignment in this model.
func (s *ProjectService) AssignProject(actor types.ActorContext, input dto.AssignProjectDTO) (*models.User, []response.FieldError, error) {
	project, err := s.repos.Project.GetProjectByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, []response.FieldError{{
				Field:   "project",
				Message: "failed to find a project with that id.",
			}}, nil
		}
		return nil, nil, err
	}

	user, err := s.repos.User.GetUserByID(input.UserID)
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
	user.AssignedProjectID = &project.ID
	if err := s.repos.User.SaveUser(&user); err != nil {
		return nil, nil, err
	}

	utils.LogAuditWithConsole(actor, "assignProject", "user", fmt.Sprintf("id=%d", user.ID), oldUser, user, "", s.repos.Audit)
	return &user, nil, nil
}

func (s *ProjectService) UnassignProject(actor types.ActorContext, input dto.UnassignProjectDTO) (*models.User, []response.FieldError, error) {
	user, err := s.repos.User.GetUserByID(input.UserID)
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
	user.AssignedProjectID = nil
	if err := s.repos.User.SaveUser(&user); err != nil {
		return nil, nil, err
	}

	utils.LogAuditWithConsole(actor, "unassignProject", "user", fmt.Sprintf("id=%d", user.ID), oldUser, user, "", s.repos.Audit)
	return &user, nil, nil
}
