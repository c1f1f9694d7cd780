package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadLog is an immutable audit entry for a lead. Every create and
// update of a lead appends exactly one, even when remarks are empty;
// an empty entry still marks a revision. Entries are never updated or
// deleted. The newest entry per lead doubles as the lead's current
// remarks in read views.
type LeadLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	LeadID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"lead_id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Remarks    string     `gorm:"type:text" json:"remarks"`
	FollowupID *uuid.UUID `gorm:"type:uuid" json:"followup_id,omitempty"`
	EntryDate  time.Time  `gorm:"autoCreateTime;column:entry_date" json:"entry_date"`

	// Relationships
	Lead     Lead      `gorm:"foreignKey:LeadID" json:"-"`
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Followup *Followup `gorm:"foreignKey:FollowupID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new log entry
func (l *LeadLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeadLog model
func (LeadLog) TableName() string {
	return "lead_logs"
}
