package models

import "time"

type Comment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CommentText string `gorm:"type:text;not null" json:"comment_text"`
	CommenterID uint   `gorm:"not null" json:"commenter_id"`
	TicketID    uint   `gorm:"not null" json:"ticket_id"`

	Commenter *User   `gorm:"foreignKey:CommenterID;constraint:OnDelete:CASCADE" json:"commenter,omitempty"`
	Ticket    *Ticket `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
