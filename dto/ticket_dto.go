package dto

type CreateTicketDTO struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

type ChangeTicketStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type ChangeTicketPriorityDTO struct {
	Priority string `json:"priority" binding:"required"`
}

type ChangeTicketTypeDTO struct {
	Type string `json:"type" binding:"required"`
}

type AssignTicketDTO struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AssignedTicketFilterDTO narrows a developer's worklist. At most one of
// the fields is expected per request; empty fields are ignored.
type AssignedTicketFilterDTO struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Type     string `form:"type"`
}
