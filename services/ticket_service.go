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

var ErrTicketNotFound = errors.New("ticket not found")

type TicketService struct {
	repos *repositories.Repos
}

func NewTicketService(repos *repositories.Repos) *TicketService {
	return &TicketService{repos: repos}
}

// Workflow methods return three channels: the ticket on success, field
// errors for business-rule rejections, and error only for infrastructure
// failures. A store failure is never converted into a nil-ticket success.

func (s *TicketService) CreateTicket(actor types.ActorContext, input dto.CreateTicketDTO) (*models.Ticket, []response.FieldError, error) {
	user, fieldErrs, err := s.loadActor(actor)
	if fieldErrs != nil || err != nil {
		return nil, fieldErrs, err
	}

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

	if denial := CanActOnProject(user, project.ID, ActionCreateTicket); denial != nil {
		return nil, []response.FieldError{*denial}, nil
	}

	ticket := &models.Ticket{
		Title:     input.Title,
		Text:      input.Text,
		Status:    models.TicketStatusOpen,
		Priority:  models.TicketPriorityHigh,
		Type:      models.TicketTypeBug,
		CreatorID: user.ID,
		ProjectID: project.ID,
	}
	if err := s.repos.Ticket.CreateTicket(ticket); err != nil {
		return nil, nil, err
	}

	utils.LogAuditWithConsole(actor, "create", "ticket", fmt.Sprintf("id=%d", ticket.ID), nil, ticket, "", s.repos.Audit)
	return ticket, nil, nil
}

func (s *TicketService) ChangeTicketStatus(actor types.ActorContext, ticketID uint, status string) (*models.Ticket, []response.FieldError, error) {
	if !models.TicketStatus(status).Valid() {
		return nil, []response.FieldError{{
			Field:   "status",
			Message: "invalid ticket status.",
		}}, nil
	}
	return s.updateTicketColumn(actor, ticketID, "status", status)
}

func (s *TicketService) ChangeTicketPriority(actor types.ActorContext, ticketID uint, priority string) (*models.Ticket, []response.FieldError, error) {
	if !models.TicketPriority(priority).Valid() {
		return nil, []response.FieldError{{
			Field:   "priority",
			Message: "invalid ticket priority.",
		}}, nil
	}
	return s.updateTicketColumn(actor, ticketID, "priority", priority)
}

func (s *TicketService) ChangeTicketType(actor types.ActorContext, ticketID uint, ticketType string) (*models.Ticket, []response.FieldError, error) {
	if !models.TicketType(ticketType).Valid() {
		return nil, []response.FieldError{{
			Field:   "type",
			Message: "invalid ticket type.",
		}}, nil
	}
	return s.updateTicketColumn(actor, ticketID, "type", ticketType)
}

func (s *TicketService) AssignTicket(actor types.ActorContext, ticketID uint, userID uint) (*models.Ticket, []response.FieldError, error) {
	if _, err := s.repos.User.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, []response.FieldError{{
				Field:   "user",
				Message: "failed to find a user with that id.",
			}}, nil
		}
		return nil, nil, err
	}
	return s.updateTicketColumn(actor, ticketID, "assigned_developer_id", userID)
}

// updateTicketColumn holds the shared mutation shape: the actor must be a
// known user, then the store applies the update and returns the fresh row
// atomically. A vanished ticket surfaces as a field error, never as an
// empty success.
func (s *TicketService) updateTicketColumn(actor types.ActorContext, ticketID uint, column string, value interface{}) (*models.Ticket, []response.FieldError, error) {
	if _, fieldErrs, err := s.loadActor(actor); fieldErrs != nil || err != nil {
		return nil, fieldErrs, err
	}

	ticket, err := s.repos.Ticket.UpdateTicketFields(ticketID, map[string]interface{}{column: value})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, []response.FieldError{{
				Field:   "ticket",
				Message: "failed to find a ticket with that id.",
			}}, nil
		}
		return nil, nil, err
	}

	utils.LogAuditWithConsole(actor, "update", "ticket", fmt.Sprintf("id=%d", ticket.ID), nil, map[string]interface{}{column: value}, "", s.repos.Audit)
	return ticket, nil, nil
}

// FindTicket resolves the assigned developer and project eagerly so the
// caller gets a complete projection in one round trip.
func (s *TicketService) FindTicket(id uint) (*models.Ticket, error) {
	ticket, err := s.repos.Ticket.GetTicketByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) FindAssignedTickets(actor types.ActorContext, input dto.AssignedTicketFilterDTO) ([]models.Ticket, []response.FieldError, error) {
	var filter repositories.TicketFilter

	if input.Status != "" {
		status := models.TicketStatus(input.Status)
		if !status.Valid() {
			return nil, []response.FieldError{{Field: "status", Message: "invalid ticket status."}}, nil
		}
		filter.Status = &status
	}
	if input.Priority != "" {
		priority := models.TicketPriority(input.Priority)
		if !priority.Valid() {
			return nil, []response.FieldError{{Field: "priority", Message: "invalid ticket priority."}}, nil
		}
		filter.Priority = &priority
	}
	if input.Type != "" {
		ticketType := models.TicketType(input.Type)
		if !ticketType.Valid() {
			return nil, []response.FieldError{{Field: "type", Message: "invalid ticket type."}}, nil
		}
		filter.Type = &ticketType
	}

	tickets, err := s.repos.Ticket.ListTicketsByAssignee(actor.UserID, filter)
	if err != nil {
		return nil, nil, err
	}
	return tickets, nil, nil
}

func (s *TicketService) loadActor(actor types.ActorContext) (models.User, []response.FieldError, error) {
	user, err := s.repos.User.GetUserByID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, []response.FieldError{{
				Field:   "user",
				Message: "no user is logged in.",
			}}, nil
		}
		return models.User{}, nil, err
	}
	return user, nil, nil
}
