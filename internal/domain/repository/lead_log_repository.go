package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
)

// LeadLogFilter narrows the audit detail view
type LeadLogFilter struct {
	LeadID *uuid.UUID
	UserID *uuid.UUID
}

// LeadLogRepository defines the interface for audit log operations.
// Entries are append-only: there is deliberately no Update or Delete.
type LeadLogRepository interface {
	Create(ctx context.Context, log *entity.LeadLog) error
	// Latest returns the most recent entry for a lead, or nil when the
	// lead has none.
	Latest(ctx context.Context, leadID uuid.UUID) (*entity.LeadLog, error)
	// ListByLead returns the full history for a lead, oldest first.
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.LeadLog, error)
	List(ctx context.Context, filter *LeadLogFilter, params *pagination.PaginationParams) ([]entity.LeadLog, int64, error)
}
