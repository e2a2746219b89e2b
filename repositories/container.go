package repositories

import "gorm.io/gorm"

type Repos struct {
	User    UserRepo
	Project ProjectRepo
	Ticket  TicketRepo
	Comment CommentRepo
	Audit   AuditRepo
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:    NewUserRepo(db),
		Project: NewProjectRepo(db),
		Ticket:  NewTicketRepo(db),
		Comment: NewCommentRepo(db),
		Audit:   NewAuditRepo(db),
	}
}
