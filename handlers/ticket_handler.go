package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/JWDT/bug-tracker/dto"
	"github.com/JWDT/bug-tracker/events"
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/services"
	"github.com/JWDT/bug-tracker/types"
	"github.com/JWDT/bug-tracker/utils"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service *services.TicketService
	hub     *events.Hub
}

func NewTicketHandler(service *services.TicketService, hub *events.Hub) *TicketHandler {
	return &TicketHandler{service: service, hub: hub}
}

// CreateTicket godoc
// @Summary Create a ticket in a project
// @Tags tickets
// @Accept json
// @Produce json
// @Param input body dto.CreateTicketDTO true "Ticket info"
// @Success 201 {object} response.TicketResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input dto.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	ticket, fieldErrs, err := h.service.CreateTicket(actor, input)
	if err != nil {
		log.Printf("createTicket: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.TicketResponse{Errors: fieldErrs})
		return
	}

	h.hub.Broadcast(events.TicketEvent{Type: events.EventTicketCreated, Ticket: ticket})
	c.JSON(http.StatusCreated, response.TicketResponse{Ticket: ticket})
}

// FindTicket godoc
// @Summary Get a ticket with its project and assigned developer
// @Tags tickets
// @Produce json
// @Success 200 {object} models.Ticket
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) FindTicket(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	ticket, err := h.service.FindTicket(id)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "ticket not found"})
			return
		}
		log.Printf("findTicket: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) ChangeTicketStatus(c *gin.Context) {
	var input dto.ChangeTicketStatusDTO
	h.changeTicketField(c, &input, func(actor types.ActorContext, ticketID uint) (*models.Ticket, []response.FieldError, error) {
		return h.service.ChangeTicketStatus(actor, ticketID, input.Status)
	})
}

func (h *TicketHandler) ChangeTicketPriority(c *gin.Context) {
	var input dto.ChangeTicketPriorityDTO
	h.changeTicketField(c, &input, func(actor types.ActorContext, ticketID uint) (*models.Ticket, []response.FieldError, error) {
		return h.service.ChangeTicketPriority(actor, ticketID, input.Priority)
	})
}

func (h *TicketHandler) ChangeTicketType(c *gin.Context) {
	var input dto.ChangeTicketTypeDTO
	h.changeTicketField(c, &input, func(actor types.ActorContext, ticketID uint) (*models.Ticket, []response.FieldError, error) {
		return h.service.ChangeTicketType(actor, ticketID, input.Type)
	})
}

func (h *TicketHandler) AssignTicket(c *gin.Context) {
	var input dto.AssignTicketDTO
	h.changeTicketField(c, &input, func(actor types.ActorContext, ticketID uint) (*models.Ticket, []response.FieldError, error) {
		return h.service.AssignTicket(actor, ticketID, input.UserID)
	})
}

func (h *TicketHandler) changeTicketField(c *gin.Context, input interface{}, mutate func(types.ActorContext, uint) (*models.Ticket, []response.FieldError, error)) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := c.ShouldBindJSON(input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	ticket, fieldErrs, err := mutate(actor, ticketID)
	if err != nil {
		log.Printf("updateTicket: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, response.TicketResponse{Errors: fieldErrs})
		return
	}

	h.hub.Broadcast(events.TicketEvent{Type: events.EventTicketUpdated, Ticket: ticket})
	c.JSON(http.StatusOK, response.TicketResponse{Ticket: ticket})
}

// FindAssignedTickets returns the calling developer's worklist, optionally
// filtered by status, priority or type.
func (h *TicketHandler) FindAssignedTickets(c *gin.Context) {
	var input dto.AssignedTicketFilterDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	tickets, fieldErrs, err := h.service.FindAssignedTickets(actor, input)
	if err != nil {
		log.Printf("findAssignedTickets: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusOK, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
