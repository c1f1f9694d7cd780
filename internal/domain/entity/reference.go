package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Division is a top-level organizational unit
type Division struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SubDivisions []SubDivision `gorm:"foreignKey:DivisionID" json:"subdivisions,omitempty"`
}

func (d *Division) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Division model
func (Division) TableName() string {
	return "divisions"
}

// SubDivision is an organizational unit nested under a division
type SubDivision struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name       string     `gorm:"size:200;not null" json:"name"`
	DivisionID *uuid.UUID `gorm:"type:uuid;index" json:"division_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Division *Division `gorm:"foreignKey:DivisionID" json:"-"`
}

func (s *SubDivision) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SubDivision model
func (SubDivision) TableName() string {
	return "subdivisions"
}

// Branch is a sales branch office
type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Branch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}

// Dealer is an external dealer a lead can originate from
type Dealer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Contact   *string   `gorm:"size:20" json:"contact,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Dealer) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Dealer model
func (Dealer) TableName() string {
	return "dealers"
}
