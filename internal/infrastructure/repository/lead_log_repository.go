package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	domainRepo "github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
	"gorm.io/gorm"
)

type leadLogRepository struct {
	db *gorm.DB
}

// NewLeadLogRepository creates a new audit log repository
func NewLeadLogRepository(db *gorm.DB) domainRepo.LeadLogRepository {
	return &leadLogRepository{db: db}
}

func (r *leadLogRepository) Create(ctx context.Context, log *entity.LeadLog) error {
	return dbFrom(ctx, r.db).Create(log).Error
}

func (r *leadLogRepository) Latest(ctx context.Context, leadID uuid.UUID) (*entity.LeadLog, error) {
	var log entity.LeadLog
	err := dbFrom(ctx, r.db).
		Where("lead_id = ?", leadID).
		Order("entry_date DESC").
		First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &log, err
}

func (r *leadLogRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.LeadLog, error) {
	var logs []entity.LeadLog
	err := dbFrom(ctx, r.db).
		Where("lead_id = ?", leadID).
		Order("entry_date ASC").
		Find(&logs).Error
	return logs, err
}

func (r *leadLogRepository) List(ctx context.Context, filter *domainRepo.LeadLogFilter, params *pagination.PaginationParams) ([]entity.LeadLog, int64, error) {
	var logs []entity.LeadLog
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.LeadLog{})
	if filter != nil {
		if filter.LeadID != nil {
			query = query.Where("lead_id = ?", *filter.LeadID)
		}
		if filter.UserID != nil {
			query = query.Where("user_id = ?", *filter.UserID)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("entry_date DESC").
		Preload("Lead").Preload("User").Preload("Followup").
		Find(&logs).Error

	return logs, total, err
}
