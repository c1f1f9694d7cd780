package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
)

// DivisionRepository defines the interface for division lookups
type DivisionRepository interface {
	Create(ctx context.Context, division *entity.Division) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Division, error)
	List(ctx context.Context) ([]entity.Division, error)
}

// SubDivisionRepository defines the interface for subdivision lookups
type SubDivisionRepository interface {
	Create(ctx context.Context, subDivision *entity.SubDivision) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SubDivision, error)
	List(ctx context.Context, divisionID *uuid.UUID) ([]entity.SubDivision, error)
}

// BranchRepository defines the interface for branch lookups
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	List(ctx context.Context) ([]entity.Branch, error)
}

// DealerRepository defines the interface for dealer lookups
type DealerRepository interface {
	Create(ctx context.Context, dealer *entity.Dealer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Dealer, error)
	List(ctx context.Context) ([]entity.Dealer, error)
}
