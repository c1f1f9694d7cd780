package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignToUser is one assignment event in a lead's history. The table
// is append-only: reassignment adds a row, it never rewrites old ones.
// The lead's current assignee lives on the Lead row itself.
type AssignToUser struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	LeadID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"lead_id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	AssignedByID *uuid.UUID `gorm:"type:uuid" json:"assigned_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	// Relationships
	Lead Lead `gorm:"foreignKey:LeadID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new assignment record
func (a *AssignToUser) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AssignToUser model
func (AssignToUser) TableName() string {
	return "assign_to_users"
}
