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

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment godoc
// @Summary Attach a comment to a ticket
// @Tags comments
// @Accept json
// @Produce json
// @Param input body dto.CreateCommentDTO true "Comment text"
// @Success 201 {object} response.CommentResponse
// @Router /tickets/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	comment, fieldErrs, err := h.service.CreateComment(actor, ticketID, input)
	if err != nil {
		log.Printf("createComment: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.CommentResponse{Errors: fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, response.CommentResponse{Comment: comment})
}

func (h *CommentHandler) FindCommentsByTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	comments, err := h.service.FindCommentsByTicket(ticketID)
	if err != nil {
		log.Printf("findCommentsByTicket: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) FindComment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	comment, err := h.service.FindComment(id)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "comment not found"})
			return
		}
		log.Printf("findComment: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, comment)
}
