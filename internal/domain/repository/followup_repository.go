package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
)

// FollowupRepository defines the interface for followup data operations
type FollowupRepository interface {
	Create(ctx context.Context, followup *entity.Followup) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Followup, error)
	// ListByLead returns all followups for a lead in insertion order.
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Followup, error)
	// ListByType returns followups of one type across all leads; a nil
	// followupType returns everything.
	ListByType(ctx context.Context, followupType *enum.FollowupType) ([]entity.Followup, error)
}

// AssignToUserRepository defines the interface for assignment history.
// The history is append-only: there is deliberately no Update or Delete.
type AssignToUserRepository interface {
	Create(ctx context.Context, record *entity.AssignToUser) error
	// ListByLead returns the assignment history of a lead, oldest first.
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.AssignToUser, error)
	// ListByUser returns every assignment event a user has ever received.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AssignToUser, error)
}
