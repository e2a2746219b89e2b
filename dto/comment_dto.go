package dto

type CreateCommentDTO struct {
	CommentText string `json:"comment_text" binding:"required"`
}
