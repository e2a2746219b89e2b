package handlers

import (
	"github.com/JWDT/bug-tracker/events"
	"github.com/JWDT/bug-tracker/services"
)

type Handlers struct {
	Auth       *AuthHandler
	User       *UserHandler
	Project    *ProjectHandler
	Ticket     *TicketHandler
	Comment    *CommentHandler
	Attachment *AttachmentHandler
	Audit      *AuditHandler
	WS         *WSHandler
}

func New(svc *services.Services, hub *events.Hub) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.User),
		User:       NewUserHandler(svc.User),
		Project:    NewProjectHandler(svc.Project),
		Ticket:     NewTicketHandler(svc.Ticket, hub),
		Comment:    NewCommentHandler(svc.Comment),
		Attachment: NewAttachmentHandler(svc.Ticket),
		Audit:      NewAuditHandler(svc.Audit),
		WS:         NewWSHandler(hub),
	}
}
