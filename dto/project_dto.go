package dto

type CreateProjectDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type AssignProjectDTO struct {
	ProjectID uint `json:"project_id" binding:"required"`
	UserID    uint `json:"user_id" binding:"required"`
}

type UnassignProjectDTO struct {
	UserID uint `json:"user_id" binding:"required"`
}
