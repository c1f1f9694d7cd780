package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	domainRepo "github.com/sangkips/leadtrack-api/internal/domain/repository"
	"gorm.io/gorm"
)

type followupRepository struct {
	db *gorm.DB
}

// NewFollowupRepository creates a new followup repository
func NewFollowupRepository(db *gorm.DB) domainRepo.FollowupRepository {
	return &followupRepository{db: db}
}

func (r *followupRepository) Create(ctx context.Context, followup *entity.Followup) error {
	return dbFrom(ctx, r.db).Create(followup).Error
}

func (r *followupRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Followup, error) {
	var followup entity.Followup
	err := dbFrom(ctx, r.db).First(&followup, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &followup, err
}

func (r *followupRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Followup, error) {
	var followups []entity.Followup
	err := dbFrom(ctx, r.db).
		Where("lead_id = ?", leadID).
		Order("entry_date ASC").
		Find(&followups).Error
	return followups, err
}

func (r *followupRepository) ListByType(ctx context.Context, followupType *enum.FollowupType) ([]entity.Followup, error) {
	var followups []entity.Followup
	query := dbFrom(ctx, r.db).Model(&entity.Followup{})
	if followupType != nil {
		query = query.Where("followup_type = ?", *followupType)
	}
	err := query.Order("entry_date ASC").Find(&followups).Error
	return followups, err
}

type assignToUserRepository struct {
	db *gorm.DB
}

// NewAssignToUserRepository creates a new assignment history repository
func NewAssignToUserRepository(db *gorm.DB) domainRepo.AssignToUserRepository {
	return &assignToUserRepository{db: db}
}

func (r *assignToUserRepository) Create(ctx context.Context, record *entity.AssignToUser) error {
	return dbFrom(ctx, r.db).Create(record).Error
}

func (r *assignToUserRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.AssignToUser, error) {
	var records []entity.AssignToUser
	err := dbFrom(ctx, r.db).
		Preload("User").
		Where("lead_id = ?", leadID).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *assignToUserRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AssignToUser, error) {
	var records []entity.AssignToUser
	err := dbFrom(ctx, r.db).
		Preload("Lead").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}
