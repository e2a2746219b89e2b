package handlers

import (
	"log"
	"net/http"

	"github.com/JWDT/bug-tracker/dto"
	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/services"
	"github.com/JWDT/bug-tracker/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ChangeRole is admin-only; the route carries the AdminOnly middleware.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.ChangeRoleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, fieldErrs, err := h.service.ChangeRole(actor, userID, input.Role)
	if err != nil {
		log.Printf("changeRole: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.UserResponse{Errors: fieldErrs})
		return
	}

	c.JSON(http.StatusOK, response.UserResponse{User: user})
}
