package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	domainRepo "github.com/sangkips/leadtrack-api/internal/domain/repository"
	"gorm.io/gorm"
)

type divisionRepository struct {
	db *gorm.DB
}

// NewDivisionRepository creates a new division repository
func NewDivisionRepository(db *gorm.DB) domainRepo.DivisionRepository {
	return &divisionRepository{db: db}
}

func (r *divisionRepository) Create(ctx context.Context, division *entity.Division) error {
	return dbFrom(ctx, r.db).Create(division).Error
}

func (r *divisionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Division, error) {
	var division entity.Division
	err := dbFrom(ctx, r.db).First(&division, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &division, err
}

func (r *divisionRepository) List(ctx context.Context) ([]entity.Division, error) {
	var divisions []entity.Division
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&divisions).Error
	return divisions, err
}

type subDivisionRepository struct {
	db *gorm.DB
}

// NewSubDivisionRepository creates a new subdivision repository
func NewSubDivisionRepository(db *gorm.DB) domainRepo.SubDivisionRepository {
	return &subDivisionRepository{db: db}
}

func (r *subDivisionRepository) Create(ctx context.Context, subDivision *entity.SubDivision) error {
	return dbFrom(ctx, r.db).Create(subDivision).Error
}

func (r *subDivisionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SubDivision, error) {
	var subDivision entity.SubDivision
	err := dbFrom(ctx, r.db).First(&subDivision, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subDivision, err
}

func (r *subDivisionRepository) List(ctx context.Context, divisionID *uuid.UUID) ([]entity.SubDivision, error) {
	var subDivisions []entity.SubDivision
	query := dbFrom(ctx, r.db).Model(&entity.SubDivision{})
	if divisionID != nil {
		query = query.Where("division_id = ?", *divisionID)
	}
	err := query.Order("name ASC").Find(&subDivisions).Error
	return subDivisions, err
}

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) domainRepo.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	return dbFrom(ctx, r.db).Create(branch).Error
}

func (r *branchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	var branch entity.Branch
	err := dbFrom(ctx, r.db).First(&branch, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &branch, err
}

func (r *branchRepository) List(ctx context.Context) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&branches).Error
	return branches, err
}

type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) domainRepo.DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Create(ctx context.Context, dealer *entity.Dealer) error {
	return dbFrom(ctx, r.db).Create(dealer).Error
}

func (r *dealerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := dbFrom(ctx, r.db).First(&dealer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &dealer, err
}

func (r *dealerRepository) List(ctx context.Context) ([]entity.Dealer, error) {
	var dealers []entity.Dealer
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&dealers).Error
	return dealers, err
}
