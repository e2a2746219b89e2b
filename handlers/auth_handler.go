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

const tokenCookieMaxAge = 60 * 60 * 24

type AuthHandler struct {
	service *services.UserService
}

func NewAuthHandler(service *services.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary Register a new submitter account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.RegisterUserDTO true "Registration info"
// @Success 201 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, token, fieldErrs, err := h.service.RegisterUser(input)
	if err != nil {
		log.Printf("register: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.UserResponse{Errors: fieldErrs})
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, response.TokenResponse{Token: token, User: user})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginUserDTO true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	user, token, fieldErrs, err := h.service.LoginUser(input)
	if err != nil {
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.UserResponse{Errors: fieldErrs})
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, response.TokenResponse{Token: token, User: user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// Me returns the logged-in user, the query the client cache keeps current
// across login/register/logout.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.service.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "user not found"})
			return
		}
		log.Printf("me: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, tokenCookieMaxAge, "/", "", false, true)
}
