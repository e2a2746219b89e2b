package models

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "inProgress"
	TicketStatusClosed     TicketStatus = "closed"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

type TicketType string

const (
	TicketTypeBug     TicketType = "bug"
	TicketTypeFeature TicketType = "feature"
	TicketTypeTask    TicketType = "task"
)

func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeBug, TicketTypeFeature, TicketTypeTask:
		return true
	}
	return false
}

// Ticket belongs to exactly one project. ProjectID is set at creation and
// never updated; status, priority, type and assignee each change through
// their own workflow operation.
type Ticket struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Title               string         `gorm:"size:200;not null" json:"title"`
	Text                string         `gorm:"type:text;not null" json:"text"`
	Status              TicketStatus   `gorm:"type:ticket_status;default:'open';not null" json:"status"`
	Priority            TicketPriority `gorm:"type:ticket_priority;default:'high';not null" json:"priority"`
	Type                TicketType     `gorm:"type:ticket_type;default:'bug';not null" json:"type"`
	CreatorID           uint           `gorm:"not null" json:"creator_id"`
	ProjectID           uint           `gorm:"not null" json:"project_id"`
	AssignedDeveloperID *uint          `json:"assigned_developer_id"`

	Creator           *User    `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"creator,omitempty"`
	Project           *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	AssignedDeveloper *User    `gorm:"foreignKey:AssignedDeveloperID;constraint:OnDelete:SET NULL" json:"assigned_developer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
