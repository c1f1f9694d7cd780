package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
)

// LeadFilter holds the optional filter parameters applied conjunctively
// to lead list and export queries. Text fields are substring matches,
// gender and lead_type are exact, is_customer is a tri-state, and the
// two date pairs are inclusive ranges where either end may be open.
type LeadFilter struct {
	Name        string
	Contact     string
	Email       string
	Gender      string
	LeadType    string
	Source      string
	Category    string
	PanVat      string
	CompanyName string
	City        string
	Landmark    string
	SubBranch   string

	IsCustomer *bool

	DivisionID    *uuid.UUID
	SubDivisionID *uuid.UUID
	BranchID      *uuid.UUID
	DealerID      *uuid.UUID
	AssignToID    *uuid.UUID
	CreatedByID   *uuid.UUID

	VisitFrom   *time.Time
	VisitTo     *time.Time
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	// ExistsByContact reports whether any lead other than exclude uses
	// the contact. Pass uuid.Nil to check against all leads.
	ExistsByContact(ctx context.Context, contact string, exclude uuid.UUID) (bool, error)
	List(ctx context.Context, filter *LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error)
	// ListWithCursor returns leads using cursor-based pagination, fetching limit+1 rows.
	ListWithCursor(ctx context.Context, filter *LeadFilter, params *pagination.CursorParams) ([]entity.Lead, error)
	// ListBucket returns leads whose lead_type falls in the given bucket,
	// or leads converted to customers when isCustomer is true.
	ListBucket(ctx context.Context, bucket enum.LeadBucket, filter *LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error)
	ListCustomers(ctx context.Context, filter *LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Lead, int64, error)
	// ListForExport returns all matching leads with references preloaded,
	// without pagination.
	ListForExport(ctx context.Context, filter *LeadFilter) ([]entity.Lead, error)
}
