package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	domainRepo "github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return translateContactConflict(dbFrom(ctx, r.db).Create(lead).Error)
}

// translateContactConflict maps a unique-index violation on the contact
// column to the same conflict error the pre-check raises. Two writers
// can both pass ExistsByContact inside their own transactions; the
// loser's commit surfaces here.
func translateContactConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Contact already exists")
	}
	return err
}

func (r *leadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var lead entity.Lead
	err := dbFrom(ctx, r.db).
		Preload("Division").Preload("SubDivision").Preload("Branch").
		Preload("Dealer").Preload("AssignTo").
		First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return translateContactConflict(dbFrom(ctx, r.db).Save(lead).Error)
}

func (r *leadRepository) ExistsByContact(ctx context.Context, contact string, exclude uuid.UUID) (bool, error) {
	var count int64
	query := dbFrom(ctx, r.db).Model(&entity.Lead{}).Where("contact = ?", contact)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// applyFilter composes the optional filter parameters conjunctively.
// Text fields are ILIKE substring matches, gender and lead_type exact,
// and the two date pairs are inclusive ranges with open ends allowed.
func applyFilter(query *gorm.DB, f *domainRepo.LeadFilter) *gorm.DB {
	if f == nil {
		return query
	}

	like := func(column, value string) {
		if value != "" {
			query = query.Where(column+" ILIKE ?", "%"+value+"%")
		}
	}
	like("name", f.Name)
	like("contact", f.Contact)
	like("email", f.Email)
	like("source", f.Source)
	like("category", f.Category)
	like("pan_vat", f.PanVat)
	like("company_name", f.CompanyName)
	like("city", f.City)
	like("landmark", f.Landmark)
	like("subbranch", f.SubBranch)

	if f.Gender != "" {
		query = query.Where("gender = ?", f.Gender)
	}
	if f.LeadType != "" {
		query = query.Where("lead_type = ?", f.LeadType)
	}
	if f.IsCustomer != nil {
		query = query.Where("is_customer = ?", *f.IsCustomer)
	}

	if f.DivisionID != nil {
		query = query.Where("division_id = ?", *f.DivisionID)
	}
	if f.SubDivisionID != nil {
		query = query.Where("sub_division_id = ?", *f.SubDivisionID)
	}
	if f.BranchID != nil {
		query = query.Where("branch_id = ?", *f.BranchID)
	}
	if f.DealerID != nil {
		query = query.Where("dealer_id = ?", *f.DealerID)
	}
	if f.AssignToID != nil {
		query = query.Where("assign_to_id = ?", *f.AssignToID)
	}
	if f.CreatedByID != nil {
		query = query.Where("created_by_id = ?", *f.CreatedByID)
	}

	for _, cond := range dateRangeConditions("tentetive_visit_date", f.VisitFrom, f.VisitTo) {
		query = query.Where(cond.Expr, cond.Arg)
	}
	for _, cond := range dateRangeConditions("created_at", f.CreatedFrom, f.CreatedTo) {
		query = query.Where(cond.Expr, cond.Arg)
	}

	return query
}

type rangeCondition struct {
	Expr string
	Arg  time.Time
}

// dateRangeConditions builds the inclusive bounds for one date column.
// Either end may be absent, leaving the range open on that side.
func dateRangeConditions(column string, from, to *time.Time) []rangeCondition {
	var conds []rangeCondition
	if from != nil {
		conds = append(conds, rangeCondition{Expr: column + " >= ?", Arg: *from})
	}
	if to != nil {
		conds = append(conds, rangeCondition{Expr: column + " <= ?", Arg: *to})
	}
	return conds
}

// bucketScope narrows a query to one lead_type bucket. Raw and
// completed are positive substring matches, the visit buckets are the
// complement of the excluded patterns.
func bucketScope(query *gorm.DB, bucket enum.LeadBucket) *gorm.DB {
	switch bucket {
	case enum.LeadBucketRaw:
		return query.Where(
			"lead_type ILIKE ? OR lead_type ILIKE ? OR lead_type = ''",
			"%raw%", "%pending%",
		)
	case enum.LeadBucketCompleted:
		return query.Where("lead_type ILIKE ?", "%complete%")
	case enum.LeadBucketBeforeVisit, enum.LeadBucketAfterVisit:
		return query.Where(
			"lead_type NOT ILIKE ? AND lead_type NOT ILIKE ? AND lead_type NOT ILIKE ?",
			"%raw%", "%complete%", "%overdue%",
		)
	}
	return query
}

func (r *leadRepository) List(ctx context.Context, filter *domainRepo.LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	query := applyFilter(dbFrom(ctx, r.db).Model(&entity.Lead{}), filter)
	return r.paginate(query, params)
}

// ListWithCursor returns leads using cursor-based pagination
// Fetches limit+1 items to detect if there are more results
func (r *leadRepository) ListWithCursor(ctx context.Context, filter *domainRepo.LeadFilter, params *pagination.CursorParams) ([]entity.Lead, error) {
	var leads []entity.Lead

	params.Validate()
	query := applyFilter(dbFrom(ctx, r.db).Model(&entity.Lead{}), filter)

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&leads).Error

	return leads, err
}

func (r *leadRepository) ListBucket(ctx context.Context, bucket enum.LeadBucket, filter *domainRepo.LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	query := bucketScope(dbFrom(ctx, r.db).Model(&entity.Lead{}), bucket)
	query = applyFilter(query, filter)
	return r.paginate(query, params)
}

func (r *leadRepository) ListCustomers(ctx context.Context, filter *domainRepo.LeadFilter, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	query := dbFrom(ctx, r.db).Model(&entity.Lead{}).Where("is_customer = ?", true)
	query = applyFilter(query, filter)
	return r.paginate(query, params)
}

func (r *leadRepository) ListByAssignee(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	query := dbFrom(ctx, r.db).Model(&entity.Lead{}).Where("assign_to_id = ?", userID)
	return r.paginate(query, params)
}

func (r *leadRepository) ListForExport(ctx context.Context, filter *domainRepo.LeadFilter) ([]entity.Lead, error) {
	var leads []entity.Lead
	query := applyFilter(dbFrom(ctx, r.db).Model(&entity.Lead{}), filter)
	err := query.
		Preload("Division").Preload("SubDivision").Preload("Branch").
		Preload("Dealer").Preload("AssignTo").
		Order("created_at ASC").
		Find(&leads).Error
	return leads, err
}

func (r *leadRepository) paginate(query *gorm.DB, params *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Preload("Division").Preload("SubDivision").Preload("Branch").Preload("AssignTo").
		Find(&leads).Error

	return leads, total, err
}
