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

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	repos *repositories.Repos
}

func NewCommentService(repos *repositories.Repos) *CommentService {
	return &CommentService{repos: repos}
}

func (s *CommentService) CreateComment(actor types.ActorContext, ticketID uint, input dto.CreateCommentDTO) (*models.Comment, []response.FieldError, error) {
	if _, err := s.repos.User.GetUserByID(actor.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, []response.FieldError{{
				Field:   "user",
				Message: "no user is logged in.",
			}}, nil
		}
		return nil, nil, err
	}

	if _, err := s.repos.Ticket.GetTicketByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, []response.FieldError{{
				Field:   "ticket",
				Message: "failed to find a ticket with that id.",
			}}, nil
		}
		return nil, nil, err
	}

	comment := &models.Comment{
		CommentText: input.CommentText,
		CommenterID: actor.UserID,
		TicketID:    ticketID,
	}
	if err := s.repos.Comment.CreateComment(comment); err != nil {
		return nil, nil, err
	}

	// Re-read to materialize the commenter relation.
	created, err := s.repos.Comment.GetCommentByID(comment.ID)
	if err != nil {
		return nil, nil, err
	}

	utils.LogAuditWithConsole(actor, "create", "comment", fmt.Sprintf("id=%d", created.ID), nil, created, "", s.repos.Audit)
	return created, nil, nil
}

func (s *CommentService) FindComment(id uint) (*models.Comment, error) {
	comment, err := s.repos.Comment.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

// FindCommentsByTicket returns the ticket's comments in creation order.
func (s *CommentService) FindCommentsByTicket(ticketID uint) ([]models.Comment, error) {
	return s.repos.Comment.ListCommentsByTicket(ticketID)
}
