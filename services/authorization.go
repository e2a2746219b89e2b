package services

import (
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/response"
)

// Action names a project-scoped operation for the authorization guard.
type Action string

const (
	ActionCreateTicket Action = "createTicket"
	ActionViewTickets  Action = "viewTickets"
	ActionAssignTarget Action = "assignTarget"
)

// CanActOnProject decides whether actor may perform action against the
// given project. Pure function over already-loaded records; returns nil
// on allow and a field-scoped denial otherwise.
//
// Submitters and project managers share the same project-assignment
// check. That mirrors the shipped rule set; a broader manager rule has
// been discussed but never specified, so it is not invented here.
func CanActOnProject(actor models.User, projectID uint, action Action) *response.FieldError {
	if actor.Role == models.UserRoleAdmin {
		return nil
	}

	// Developers read and receive assignments across projects, but get
	// no creation rights from that.
	if actor.Role == models.UserRoleDeveloper && action != ActionCreateTicket {
		return nil
	}

	if actor.AssignedProjectID == nil || *actor.AssignedProjectID != projectID {
		return &response.FieldError{
			Field:   "user",
			Message: "this user is not assigned to this project.",
		}
	}

	return nil
}
