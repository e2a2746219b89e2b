package services

import "github.com/JWDT/bug-tracker/repositories"

type Services struct {
	Ticket  *TicketService
	Comment *CommentService
	User    *UserService
	Project *ProjectService
	Audit   *AuditService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Ticket:  NewTicketService(repos),
		Comment: NewCommentService(repos),
		User:    NewUserService(repos),
		Project: NewProjectService(repos),
		Audit:   NewAuditService(repos),
	}
}
