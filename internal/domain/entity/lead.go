package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Lead represents a prospective or converted customer
type Lead struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name                  string     `gorm:"size:200;not null" json:"name"`
	Contact               string     `gorm:"size:20;uniqueIndex;not null" json:"contact"`
	Email                 *string    `gorm:"size:255" json:"email,omitempty"`
	Gender                *string    `gorm:"size:20" json:"gender,omitempty"`
	Address               *string    `gorm:"type:text" json:"address,omitempty"`
	City                  *string    `gorm:"size:150" json:"city,omitempty"`
	Landmark              *string    `gorm:"size:150" json:"landmark,omitempty"`
	LeadType              string     `gorm:"size:120" json:"lead_type"`
	Source                *string    `gorm:"size:120" json:"source,omitempty"`
	Category              *string    `gorm:"size:120" json:"category,omitempty"`
	PanVat                *string    `gorm:"size:120;column:pan_vat" json:"pan_vat,omitempty"`
	CompanyName           *string    `gorm:"size:120" json:"company_name,omitempty"`
	SubBranch             *string    `gorm:"size:150;column:subbranch" json:"subbranch,omitempty"`
	IsCustomer            bool       `gorm:"default:false" json:"is_customer"`
	TentetiveVisitDate    *time.Time `json:"tentetive_visit_date,omitempty"`
	TentetivePurchaseDate *time.Time `json:"tentetive_purchase_date,omitempty"`
	DivisionID            *uuid.UUID `gorm:"type:uuid;index" json:"division_id,omitempty"`
	SubDivisionID         *uuid.UUID `gorm:"type:uuid;index" json:"subdivision_id,omitempty"`
	BranchID              *uuid.UUID `gorm:"type:uuid;index" json:"branch_id,omitempty"`
	DealerID              *uuid.UUID `gorm:"type:uuid;index" json:"dealer_id,omitempty"`
	AssignToID            *uuid.UUID `gorm:"type:uuid;index" json:"assign_to,omitempty"`
	CreatedByID           uuid.UUID  `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`

	// Relationships
	Division    *Division     `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
	SubDivision *SubDivision  `gorm:"foreignKey:SubDivisionID" json:"subdivision,omitempty"`
	Branch      *Branch       `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Dealer      *Dealer       `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	AssignTo    *User         `gorm:"foreignKey:AssignToID" json:"assigned_user,omitempty"`
	CreatedBy   User          `gorm:"foreignKey:CreatedByID" json:"-"`
	Followups   []Followup    `gorm:"foreignKey:LeadID" json:"-"`
	Logs        []LeadLog     `gorm:"foreignKey:LeadID" json:"-"`
	Assignments []AssignToUser `gorm:"foreignKey:LeadID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new lead
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}

// EnforceCustomerConversion applies the conversion rule before a write.
// A lead that is a customer always carries lead_type "completed", and a
// lead that was already a customer can never leave that state: the
// flag stays true and any incoming lead_type is overwritten.
func (l *Lead) EnforceCustomerConversion(prev *Lead) {
	if prev != nil && prev.IsCustomer {
		l.IsCustomer = true
	}
	if l.IsCustomer {
		l.LeadType = enum.LeadTypeCompleted
	}
}
