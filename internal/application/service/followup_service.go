package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
)

// FollowupService schedules followups and classifies them into the
// worklist buckets salespeople pull from.
type FollowupService struct {
	followupRepo repository.FollowupRepository
	leadRepo     repository.LeadRepository
}

// NewFollowupService creates a new followup service
func NewFollowupService(
	followupRepo repository.FollowupRepository,
	leadRepo repository.LeadRepository,
) *FollowupService {
	return &FollowupService{
		followupRepo: followupRepo,
		leadRepo:     leadRepo,
	}
}

// ScheduleFollowupInput represents the schedule followup input
type ScheduleFollowupInput struct {
	LeadID       uuid.UUID
	UserID       uuid.UUID
	FollowupDate *time.Time
	FollowupType string
	Remarks      string
}

// Schedule records a new followup against a lead
func (s *FollowupService) Schedule(ctx context.Context, input *ScheduleFollowupInput) (*entity.Followup, error) {
	lead, err := s.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	followupType := enum.FollowupTypePending
	if input.FollowupType != "" {
		followupType = enum.ParseFollowupType(input.FollowupType)
	}

	followup := &entity.Followup{
		LeadID:       input.LeadID,
		UserID:       &input.UserID,
		FollowupDate: input.FollowupDate,
		FollowupType: followupType,
		Remarks:      input.Remarks,
	}
	if err := s.followupRepo.Create(ctx, followup); err != nil {
		return nil, err
	}
	return followup, nil
}

// FollowupBuckets groups a lead's followups by type, each group in
// worklist order.
type FollowupBuckets struct {
	All       []entity.Followup `json:"all"`
	Overdue   []entity.Followup `json:"overdue"`
	Pending   []entity.Followup `json:"pending"`
	Completed []entity.Followup `json:"completed"`
}

// Classify splits a lead's followups into type buckets. A followup
// whose type matches none of the known values still shows up in All.
func (s *FollowupService) Classify(ctx context.Context, leadID uuid.UUID, today time.Time) (*FollowupBuckets, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	followups, err := s.followupRepo.ListByLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	buckets := &FollowupBuckets{
		All: OrderedFollowups(followups, today),
	}
	var overdue, pending, completed []entity.Followup
	for _, f := range followups {
		switch f.FollowupType {
		case enum.FollowupTypeOverdue:
			overdue = append(overdue, f)
		case enum.FollowupTypePending:
			pending = append(pending, f)
		case enum.FollowupTypeCompleted:
			completed = append(completed, f)
		}
	}
	buckets.Overdue = OrderedFollowups(overdue, today)
	buckets.Pending = OrderedFollowups(pending, today)
	buckets.Completed = OrderedFollowups(completed, today)
	return buckets, nil
}

// ListByType lists followups of one type across all leads, in worklist
// order. A nil type lists everything.
func (s *FollowupService) ListByType(ctx context.Context, followupType *enum.FollowupType, today time.Time) ([]entity.Followup, error) {
	followups, err := s.followupRepo.ListByType(ctx, followupType)
	if err != nil {
		return nil, err
	}
	return OrderedFollowups(followups, today), nil
}

// ListByLead lists a lead's followups in worklist order
func (s *FollowupService) ListByLead(ctx context.Context, leadID uuid.UUID, today time.Time) ([]entity.Followup, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	followups, err := s.followupRepo.ListByLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	return OrderedFollowups(followups, today), nil
}

// OrderedFollowups sorts followups for a worklist: everything due
// today first, then by date descending. Followups without a date sort
// as the epoch, pushing them to the end of their group. The sort is
// stable and the input slice is left untouched.
func OrderedFollowups(followups []entity.Followup, today time.Time) []entity.Followup {
	ordered := make([]entity.Followup, len(followups))
	copy(ordered, followups)

	y, m, d := today.Date()

	isToday := func(f entity.Followup) bool {
		if f.FollowupDate == nil {
			return false
		}
		fy, fm, fd := f.FollowupDate.Date()
		return fy == y && fm == m && fd == d
	}
	stamp := func(f entity.Followup) int64 {
		if f.FollowupDate == nil {
			return 0
		}
		return f.FollowupDate.Unix()
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		ti, tj := isToday(ordered[i]), isToday(ordered[j])
		if ti != tj {
			return ti
		}
		return stamp(ordered[i]) > stamp(ordered[j])
	})
	return ordered
}
