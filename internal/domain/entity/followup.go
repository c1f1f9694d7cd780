package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Followup is one scheduled or completed contact touchpoint for a lead.
// Rows are append-only; a reschedule creates a new row instead of
// mutating an existing one.
type Followup struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	LeadID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"lead_id"`
	UserID       *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	FollowupDate *time.Time        `json:"followup_date,omitempty"`
	FollowupType enum.FollowupType `gorm:"size:120" json:"followup_type"`
	Remarks      string            `gorm:"type:text;column:followup_remarks" json:"followup_remarks"`
	EntryDate    time.Time         `gorm:"autoCreateTime;column:entry_date" json:"entry_date"`

	// Relationships
	Lead Lead  `gorm:"foreignKey:LeadID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new followup
func (f *Followup) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Followup model
func (Followup) TableName() string {
	return "followups"
}
