package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/JWDT/bug-tracker/dto"
	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/services"
	"github.com/JWDT/bug-tracker/utils"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input dto.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	project, err := h.service.CreateProject(actor, input)
	if err != nil {
		log.Printf("createProject: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusCreated, response.ProjectResponse{Project: project})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	project, err := h.service.GetProject(id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "project not found"})
			return
		}
		log.Printf("getProject: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.ListProjects()
	if err != nil {
		log.Printf("listProjects: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) AssignProject(c *gin.Context) {
	var input dto.AssignProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, fieldErrs, err := h.service.AssignProject(actor, input)
	if err != nil {
		log.Printf("assignProject: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.UserResponse{Errors: fieldErrs})
		return
	}

	c.JSON(http.StatusOK, response.UserResponse{User: user})
}

func (h *ProjectHandler) UnassignProject(c *gin.Context) {
	var input dto.UnassignProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, fieldErrs, err := h.service.UnassignProject(actor, input)
	if err != nil {
		log.Printf("unassignProject: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.UserResponse{Errors: fieldErrs})
		return
	}

	c.JSON(http.StatusOK, response.UserResponse{User: user})
}
