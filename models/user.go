package models

import "time"

type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleProjectManager UserRole = "projectManager"
	UserRoleDeveloper      UserRole = "developer"
	UserRoleSubmitter      UserRole = "submitter"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleProjectManager, UserRoleDeveloper, UserRoleSubmitter:
		return true
	}
	return false
}

type User struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	FirstName         string   `gorm:"size:50;not null" json:"first_name"`
	LastName          string   `gorm:"size:50;not null" json:"last_name"`
	Email             string   `gorm:"size:100;not null;unique" json:"email"`
	Password          string   `gorm:"size:255;not null" json:"-"`
	Role              UserRole `gorm:"type:user_role;default:'submitter';not null" json:"role"`
	AssignedProjectID *uint    `json:"assigned_project_id"`

	AssignedProject *Project `gorm:"foreignKey:AssignedProjectID;constraint:OnDelete:SET NULL" json:"assigned_project,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
