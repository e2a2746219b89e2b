package response

import "github.com/JWDT/bug-tracker/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError is a business-rule rejection scoped to one input field.
// It travels alongside a null result, never as a transport-level error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type TicketResponse struct {
	Ticket *models.Ticket `json:"ticket,omitempty"`
	Errors []FieldError   `json:"errors,omitempty"`
}

type CommentResponse struct {
	Comment *models.Comment `json:"comment,omitempty"`
	Errors  []FieldError    `json:"errors,omitempty"`
}

type UserResponse struct {
	User   *models.User `json:"user,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

type ProjectResponse struct {
	Project *models.Project `json:"project,omitempty"`
	Errors  []FieldError    `json:"errors,omitempty"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AttachmentResponse struct {
	ObjectKey string `json:"object_key"`
	URL       string `json:"url,omitempty"`
}
