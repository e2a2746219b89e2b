package services

import (
	"errors"
	"testing"

	"github.com/JWDT/bug-tracker/dto"
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/repositories"
	"github.com/JWDT/bug-tracker/repositories/mock_repositories"
	"github.com/JWDT/bug-tracker/types"
	"github.com/JWDT/bug-tracker/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type ticketServiceMocks struct {
	user    *mock_repositories.MockUserRepo
	project *mock_repositories.MockProjectRepo
	ticket  *mock_repositories.MockTicketRepo
	audit   *mock_repositories.MockAuditRepo
}

func setupTicketServiceMocks(t *testing.T) (*TicketService, ticketServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := ticketServiceMocks{
		user:    mock_repositories.NewMockUserRepo(ctrl),
		project: mock_repositories.NewMockProjectRepo(ctrl),
		ticket:  mock_repositories.NewMockTicketRepo(ctrl),
		audit:   mock_repositories.NewMockAuditRepo(ctrl),
	}
	repos := &repositories.Repos{
		User:    m.user,
		Project: m.project,
		Ticket:  m.ticket,
		Audit:   m.audit,
	}

	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(types.ActorContext, string, string, string, interface{}, interface{}, string, repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	return NewTicketService(repos), m
}

var testActor = types.ActorContext{UserID: 1, IPAddress: "127.0.0.1", UserAgent: "test"}

// --------------------- CreateTicket ---------------------
func TestCreateTicket_Success(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	submitter := models.User{ID: 1, Role: models.UserRoleSubmitter, AssignedProjectID: ptrUint(7)}
	m.user.EXPECT().GetUserByID(uint(1)).Return(submitter, nil)
	m.project.EXPECT().GetProjectByID(uint(7)).Return(models.Project{ID: 7}, nil)
	m.ticket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(ticket *models.Ticket) error {
		ticket.ID = 42
		return nil
	})

	input := dto.CreateTicketDTO{ProjectID: 7, Title: "Login broken", Text: "500 on submit"}
	ticket, fieldErrs, err := svc.CreateTicket(testActor, input)

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, uint(42), ticket.ID)
	assert.Equal(t, models.TicketStatusOpen, ticket.Status)
	assert.Equal(t, models.TicketPriorityHigh, ticket.Priority)
	assert.Equal(t, models.TicketTypeBug, ticket.Type)
	assert.Equal(t, uint(1), ticket.CreatorID)
	assert.Equal(t, uint(7), ticket.ProjectID)
}

func TestCreateTicket_WrongProject(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	submitter := models.User{ID: 1, Role: models.UserRoleSubmitter, AssignedProjectID: ptrUint(3)}
	m.user.EXPECT().GetUserByID(uint(1)).Return(submitter, nil)
	m.project.EXPECT().GetProjectByID(uint(7)).Return(models.Project{ID: 7}, nil)

	input := dto.CreateTicketDTO{ProjectID: 7, Title: "x", Text: "y"}
	ticket, fieldErrs, err := svc.CreateTicket(testActor, input)

	assert.NoError(t, err)
	assert.Nil(t, ticket)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "user", fieldErrs[0].Field)
	assert.Equal(t, "this user is not assigned to this project.", fieldErrs[0].Message)
}

func TestCreateTicket_ProjectNotFound(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{ID: 1, Role: models.UserRoleAdmin}, nil)
	m.project.EXPECT().GetProjectByID(uint(99)).Return(models.Project{}, gorm.ErrRecordNotFound)

	input := dto.CreateTicketDTO{ProjectID: 99, Title: "x", Text: "y"}
	ticket, fieldErrs, err := svc.CreateTicket(testActor, input)

	assert.NoError(t, err)
	assert.Nil(t, ticket)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "project", fieldErrs[0].Field)
}

func TestCreateTicket_UnknownActor(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{}, gorm.ErrRecordNotFound)

	input := dto.CreateTicketDTO{ProjectID: 7, Title: "x", Text: "y"}
	ticket, fieldErrs, err := svc.CreateTicket(testActor, input)

	assert.NoError(t, err)
	assert.Nil(t, ticket)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "no user is logged in.", fieldErrs[0].Message)
}

func TestCreateTicket_StoreFailure(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	admin := models.User{ID: 1, Role: models.UserRoleAdmin}
	m.user.EXPECT().GetUserByID(uint(1)).Return(admin, nil)
	m.project.EXPECT().GetProjectByID(uint(7)).Return(models.Project{ID: 7}, nil)
	m.ticket.EXPECT().CreateTicket(gomock.Any()).Return(errors.New("connection reset"))

	input := dto.CreateTicketDTO{ProjectID: 7, Title: "x", Text: "y"}
	ticket, fieldErrs, err := svc.CreateTicket(testActor, input)

	assert.Error(t, err)
	assert.Nil(t, ticket)
	assert.Empty(t, fieldErrs)
}

// --------------------- ChangeTicketStatus ---------------------
func TestChangeTicketStatus_Success(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{ID: 1, Role: models.UserRoleDeveloper}, nil)
	updated := &models.Ticket{ID: 4, Status: models.TicketStatusClosed}
	m.ticket.EXPECT().
		UpdateTicketFields(uint(4), map[string]interface{}{"status": "closed"}).
		Return(updated, nil)

	ticket, fieldErrs, err := svc.ChangeTicketStatus(testActor, 4, "closed")

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, models.TicketStatusClosed, ticket.Status)
}

func TestChangeTicketStatus_InvalidStatus(t *testing.T) {
	svc, _ := setupTicketServiceMocks(t)

	ticket, fieldErrs, err := svc.ChangeTicketStatus(testActor, 4, "reopened")

	assert.NoError(t, err)
	assert.Nil(t, ticket)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "status", fieldErrs[0].Field)
	assert.Equal(t, "invalid ticket status.", fieldErrs[0].Message)
}

func TestChangeTicketStatus_TicketNotFound(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{ID: 1, Role: models.UserRoleDeveloper}, nil)
	m.ticket.EXPECT().
		UpdateTicketFields(uint(99), gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound)

	ticket, fieldErrs, err := svc.ChangeTicketStatus(testActor, 99, "closed")

	assert.NoError(t, err)
	assert.Nil(t, ticket)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "ticket", fieldErrs[0].Field)
	assert.Equal(t, "failed to find a ticket with that id.", fieldErrs[0].Message)
}

// --------------------- ChangeTicketPriority / Type ---------------------
func TestChangeTicketPriority_InvalidPriority(t *testing.T) {
	svc, _ := setupTicketServiceMocks(t)

	_, fieldErrs, err := svc.ChangeTicketPriority(testActor, 4, "urgent")

	assert.NoError(t, err)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "priority", fieldErrs[0].Field)
	assert.Equal(t, "invalid ticket priority.", fieldErrs[0].Message)
}

func TestChangeTicketType_Success(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{ID: 1, Role: models.UserRoleDeveloper}, nil)
	updated := &models.Ticket{ID: 4, Type: models.TicketTypeFeature}
	m.ticket.EXPECT().
		UpdateTicketFields(uint(4), map[string]interface{}{"type": "feature"}).
		Return(updated, nil)

	ticket, fieldErrs, err := svc.ChangeTicketType(testActor, 4, "feature")

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, models.TicketTypeFeature, ticket.Type)
}

// --------------------- AssignTicket ---------------------
func TestAssignTicket_Success(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(5)).Return(models.User{ID: 5, Role: models.UserRoleDeveloper}, nil)
	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{ID: 1, Role: models.UserRoleAdmin}, nil)
	updated := &models.Ticket{ID: 4, AssignedDeveloperID: ptrUint(5)}
	m.ticket.EXPECT().
		UpdateTicketFields(uint(4), map[string]interface{}{"assigned_developer_id": uint(5)}).
		Return(updated, nil)

	ticket, fieldErrs, err := svc.AssignTicket(testActor, 4, 5)

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, uint(5), *ticket.AssignedDeveloperID)
}

func TestAssignTicket_UnknownUser(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	ticket, fieldErrs, err := svc.AssignTicket(testActor, 4, 99)

	assert.NoError(t, err)
	assert.Nil(t, ticket)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "user", fieldErrs[0].Field)
	assert.Equal(t, "failed to find a user with that id.", fieldErrs[0].Message)
}

// --------------------- FindTicket ---------------------
func TestFindTicket_Success(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	stored := &models.Ticket{ID: 4, Title: "Login broken", Project: &models.Project{ID: 7}}
	m.ticket.EXPECT().GetTicketByID(uint(4)).Return(stored, nil)

	ticket, err := svc.FindTicket(4)
	assert.NoError(t, err)
	assert.Equal(t, "Login broken", ticket.Title)
	assert.NotNil(t, ticket.Project)
}

func TestFindTicket_NotFound(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	m.ticket.EXPECT().GetTicketByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	ticket, err := svc.FindTicket(99)
	assert.Nil(t, ticket)
	assert.Equal(t, ErrTicketNotFound, err)
}

// --------------------- FindAssignedTickets ---------------------
func TestFindAssignedTickets_FiltersByStatus(t *testing.T) {
	svc, m := setupTicketServiceMocks(t)

	open := models.TicketStatusOpen
	m.ticket.EXPECT().
		ListTicketsByAssignee(uint(1), repositories.TicketFilter{Status: &open}).
		Return([]models.Ticket{{ID: 4}}, nil)

	tickets, fieldErrs, err := svc.FindAssignedTickets(testActor, dto.AssignedTicketFilterDTO{Status: "open"})

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Len(t, tickets, 1)
}

func TestFindAssignedTickets_InvalidFilter(t *testing.T) {
	svc, _ := setupTicketServiceMocks(t)

	tickets, fieldErrs, err := svc.FindAssignedTickets(testActor, dto.AssignedTicketFilterDTO{Priority: "urgent"})

	assert.NoError(t, err)
	assert.Nil(t, tickets)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "priority", fieldErrs[0].Field)
}
