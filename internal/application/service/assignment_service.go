package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
)

// AssignmentService manages lead ownership. The current assignee lives
// on the lead row; every change appends to an immutable history table.
type AssignmentService struct {
	leadRepo   repository.LeadRepository
	assignRepo repository.AssignToUserRepository
	userRepo   repository.UserRepository
	tx         repository.Transactor
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	leadRepo repository.LeadRepository,
	assignRepo repository.AssignToUserRepository,
	userRepo repository.UserRepository,
	tx repository.Transactor,
) *AssignmentService {
	return &AssignmentService{
		leadRepo:   leadRepo,
		assignRepo: assignRepo,
		userRepo:   userRepo,
		tx:         tx,
	}
}

// AssignmentResult reports what an assignment call did
type AssignmentResult struct {
	Lead    *entity.Lead `json:"lead"`
	Changed bool         `json:"changed"`
}

// Assign hands a lead to a user. Assigning a lead to its current
// assignee is a no-op: the lead is untouched and no history entry is
// written.
func (s *AssignmentService) Assign(ctx context.Context, leadID, userID, actorID uuid.UUID) (*AssignmentResult, error) {
	var result *AssignmentResult
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		lead, err := s.leadRepo.GetByID(ctx, leadID)
		if err != nil {
			return err
		}
		if lead == nil {
			return apperror.NewNotFoundError("Lead")
		}

		if lead.AssignToID != nil && *lead.AssignToID == userID {
			result = &AssignmentResult{Lead: lead, Changed: false}
			return nil
		}

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.NewNotFoundError("User")
		}

		lead.AssignToID = &userID
		lead.AssignTo = nil
		if err := s.leadRepo.Update(ctx, lead); err != nil {
			return err
		}

		if err := s.assignRepo.Create(ctx, &entity.AssignToUser{
			LeadID:       leadID,
			UserID:       userID,
			AssignedByID: &actorID,
		}); err != nil {
			return err
		}

		result = &AssignmentResult{Lead: lead, Changed: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CurrentAssignee returns the user a lead is assigned to, nil when
// unassigned.
func (s *AssignmentService) CurrentAssignee(ctx context.Context, leadID uuid.UUID) (*entity.User, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	if lead.AssignToID == nil {
		return nil, nil
	}
	return s.userRepo.GetByID(ctx, *lead.AssignToID)
}

// HistoryByLead lists a lead's assignment records, oldest first
func (s *AssignmentService) HistoryByLead(ctx context.Context, leadID uuid.UUID) ([]entity.AssignToUser, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return s.assignRepo.ListByLead(ctx, leadID)
}

// HistoryByUser lists the assignment records that ever pointed a lead
// at the given user, oldest first
func (s *AssignmentService) HistoryByUser(ctx context.Context, userID uuid.UUID) ([]entity.AssignToUser, error) {
	return s.assignRepo.ListByUser(ctx, userID)
}
