package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
)

// LeadLogService reads and appends the lead audit trail. Entries are
// append-only, there is no update or delete.
type LeadLogService struct {
	logRepo  repository.LeadLogRepository
	leadRepo repository.LeadRepository
}

// NewLeadLogService creates a new lead log service
func NewLeadLogService(logRepo repository.LeadLogRepository, leadRepo repository.LeadRepository) *LeadLogService {
	return &LeadLogService{logRepo: logRepo, leadRepo: leadRepo}
}

// Record appends a standalone audit entry to a lead, optionally linked
// to the followup that prompted it.
func (s *LeadLogService) Record(ctx context.Context, leadID, userID uuid.UUID, remarks string, followupID *uuid.UUID) (*entity.LeadLog, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	log := &entity.LeadLog{
		LeadID:     leadID,
		UserID:     &userID,
		Remarks:    remarks,
		FollowupID: followupID,
	}
	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Latest returns a lead's newest audit entry, nil when the trail is
// empty.
func (s *LeadLogService) Latest(ctx context.Context, leadID uuid.UUID) (*entity.LeadLog, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return s.logRepo.Latest(ctx, leadID)
}

// History lists a lead's full audit trail, oldest first
func (s *LeadLogService) History(ctx context.Context, leadID uuid.UUID) ([]entity.LeadLog, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return s.logRepo.ListByLead(ctx, leadID)
}

// List pages through audit entries across leads, newest first
func (s *LeadLogService) List(ctx context.Context, filter *repository.LeadLogFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.LeadLog], error) {
	logs, total, err := s.logRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
