package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
)

// ReferenceService resolves and manages the organizational entities a
// lead points at. Resolution never raises on a missing row: lookups
// return nil so each caller decides whether a dangling reference is an
// input error (interactive create/update) or simply absent (import).
type ReferenceService struct {
	divisionRepo    repository.DivisionRepository
	subDivisionRepo repository.SubDivisionRepository
	branchRepo      repository.BranchRepository
	dealerRepo      repository.DealerRepository
	userRepo        repository.UserRepository
	roleRepo        repository.RoleRepository
}

// NewReferenceService creates a new reference service
func NewReferenceService(
	divisionRepo repository.DivisionRepository,
	subDivisionRepo repository.SubDivisionRepository,
	branchRepo repository.BranchRepository,
	dealerRepo repository.DealerRepository,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
) *ReferenceService {
	return &ReferenceService{
		divisionRepo:    divisionRepo,
		subDivisionRepo: subDivisionRepo,
		branchRepo:      branchRepo,
		dealerRepo:      dealerRepo,
		userRepo:        userRepo,
		roleRepo:        roleRepo,
	}
}

// Division resolves a division id. A nil id resolves to nil without error.
func (s *ReferenceService) Division(ctx context.Context, id *uuid.UUID) (*entity.Division, error) {
	if id == nil {
		return nil, nil
	}
	return s.divisionRepo.GetByID(ctx, *id)
}

// SubDivision resolves a subdivision id. A nil id resolves to nil without error.
func (s *ReferenceService) SubDivision(ctx context.Context, id *uuid.UUID) (*entity.SubDivision, error) {
	if id == nil {
		return nil, nil
	}
	return s.subDivisionRepo.GetByID(ctx, *id)
}

// Branch resolves a branch id. A nil id resolves to nil without error.
func (s *ReferenceService) Branch(ctx context.Context, id *uuid.UUID) (*entity.Branch, error) {
	if id == nil {
		return nil, nil
	}
	return s.branchRepo.GetByID(ctx, *id)
}

// Dealer resolves a dealer id. A nil id resolves to nil without error.
func (s *ReferenceService) Dealer(ctx context.Context, id *uuid.UUID) (*entity.Dealer, error) {
	if id == nil {
		return nil, nil
	}
	return s.dealerRepo.GetByID(ctx, *id)
}

// User resolves an assignable user id. A nil id resolves to nil without error.
func (s *ReferenceService) User(ctx context.Context, id *uuid.UUID) (*entity.User, error) {
	if id == nil {
		return nil, nil
	}
	return s.userRepo.GetByID(ctx, *id)
}

// CreateDivision creates a new division
func (s *ReferenceService) CreateDivision(ctx context.Context, name string) (*entity.Division, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}
	division := &entity.Division{Name: name}
	if err := s.divisionRepo.Create(ctx, division); err != nil {
		return nil, err
	}
	return division, nil
}

// ListDivisions lists all divisions
func (s *ReferenceService) ListDivisions(ctx context.Context) ([]entity.Division, error) {
	return s.divisionRepo.List(ctx)
}

// GetDivision retrieves a division by ID
func (s *ReferenceService) GetDivision(ctx context.Context, id uuid.UUID) (*entity.Division, error) {
	division, err := s.divisionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, apperror.NewNotFoundError("Division")
	}
	return division, nil
}

// CreateSubDivision creates a new subdivision under an optional division
func (s *ReferenceService) CreateSubDivision(ctx context.Context, name string, divisionID *uuid.UUID) (*entity.SubDivision, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}
	if divisionID != nil {
		division, err := s.divisionRepo.GetByID(ctx, *divisionID)
		if err != nil {
			return nil, err
		}
		if division == nil {
			return nil, apperror.NewNotFoundError("Division")
		}
	}
	subDivision := &entity.SubDivision{Name: name, DivisionID: divisionID}
	if err := s.subDivisionRepo.Create(ctx, subDivision); err != nil {
		return nil, err
	}
	return subDivision, nil
}

// ListSubDivisions lists subdivisions, optionally scoped to a division
func (s *ReferenceService) ListSubDivisions(ctx context.Context, divisionID *uuid.UUID) ([]entity.SubDivision, error) {
	return s.subDivisionRepo.List(ctx, divisionID)
}

// CreateBranch creates a new branch
func (s *ReferenceService) CreateBranch(ctx context.Context, name string) (*entity.Branch, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Name is required")
	}
	branch := &entity.Branch{Name: name}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// ListBranches lists all branches
func (s *ReferenceService) ListBranches(ctx context.Context) ([]entity.Branch, error) {
	return s.branchRepo.List(ctx)
}

// ListDealers lists all dealers
func (s *ReferenceService) ListDealers(ctx context.Context) ([]entity.Dealer, error) {
	return s.dealerRepo.List(ctx)
}

// ListUsers lists assignable users
func (s *ReferenceService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// ListRoles lists the seeded roles with their permissions
func (s *ReferenceService) ListRoles(ctx context.Context) ([]entity.Role, error) {
	return s.roleRepo.List(ctx)
}
