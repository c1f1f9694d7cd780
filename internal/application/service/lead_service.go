package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
)

var (
	contactPattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

// LeadService owns the lead lifecycle. All lead mutation passes through
// it so the conversion invariant and the one-audit-entry-per-write rule
// hold regardless of where a write originates.
type LeadService struct {
	leadRepo     repository.LeadRepository
	followupRepo repository.FollowupRepository
	logRepo      repository.LeadLogRepository
	assignRepo   repository.AssignToUserRepository
	refs         *ReferenceService
	tx           repository.Transactor
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repository.LeadRepository,
	followupRepo repository.FollowupRepository,
	logRepo repository.LeadLogRepository,
	assignRepo repository.AssignToUserRepository,
	refs *ReferenceService,
	tx repository.Transactor,
) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		followupRepo: followupRepo,
		logRepo:      logRepo,
		assignRepo:   assignRepo,
		refs:         refs,
		tx:           tx,
	}
}

// CreateLeadInput represents the create lead input
type CreateLeadInput struct {
	Name                  string
	Contact               string
	Email                 *string
	Gender                *string
	Address               *string
	City                  *string
	Landmark              *string
	LeadType              *string
	Source                *string
	Category              *string
	PanVat                *string
	CompanyName           *string
	SubBranch             *string
	IsCustomer            bool
	TentetiveVisitDate    *time.Time
	TentetivePurchaseDate *time.Time
	DivisionID            *uuid.UUID
	SubDivisionID         *uuid.UUID
	BranchID              *uuid.UUID
	DealerID              *uuid.UUID
	AssignToID            *uuid.UUID
	CreatedBy             uuid.UUID

	FollowupDate    *time.Time
	FollowupType    *string
	FollowupRemarks *string
	Remarks         *string
}

// CreateLead validates and persists a new lead together with its
// initial followup (when a date was supplied), its first audit entry
// and, when an assignee was given, the first assignment history record.
// Everything happens in one transaction: a validation failure writes
// nothing.
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}
	if !contactPattern.MatchString(input.Contact) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "contact", Message: "Contact must be a 10-digit number"},
		})
	}
	if input.Email != nil && *input.Email != "" && !emailPattern.MatchString(*input.Email) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "email", Message: "Invalid email format"},
		})
	}

	var lead *entity.Lead
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		exists, err := s.leadRepo.ExistsByContact(ctx, input.Contact, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflictError("Contact already exists")
		}

		if err := s.resolveStrict(ctx, input.DivisionID, input.SubDivisionID, input.BranchID, input.DealerID); err != nil {
			return err
		}

		var assignee *entity.User
		if input.AssignToID != nil {
			assignee, err = s.refs.User(ctx, input.AssignToID)
			if err != nil {
				return err
			}
			if assignee == nil {
				return apperror.NewValidationError([]apperror.FieldError{
					{Field: "assign_to", Message: "Assigned user not found"},
				})
			}
		}

		lead = &entity.Lead{
			Name:                  input.Name,
			Contact:               input.Contact,
			Email:                 input.Email,
			Gender:                input.Gender,
			Address:               input.Address,
			City:                  input.City,
			Landmark:              input.Landmark,
			Source:                input.Source,
			Category:              input.Category,
			PanVat:                input.PanVat,
			CompanyName:           input.CompanyName,
			SubBranch:             input.SubBranch,
			IsCustomer:            input.IsCustomer,
			TentetiveVisitDate:    input.TentetiveVisitDate,
			TentetivePurchaseDate: input.TentetivePurchaseDate,
			DivisionID:            input.DivisionID,
			SubDivisionID:         input.SubDivisionID,
			BranchID:              input.BranchID,
			DealerID:              input.DealerID,
			AssignToID:            input.AssignToID,
			CreatedByID:           input.CreatedBy,
		}
		if input.LeadType != nil {
			lead.LeadType = *input.LeadType
		}
		lead.EnforceCustomerConversion(nil)

		if err := s.leadRepo.Create(ctx, lead); err != nil {
			return err
		}

		followup, err := s.createFollowup(ctx, lead.ID, input.CreatedBy, input.FollowupDate, input.FollowupType, input.FollowupRemarks)
		if err != nil {
			return err
		}

		if err := s.appendLog(ctx, lead.ID, input.CreatedBy, input.Remarks, followup); err != nil {
			return err
		}

		if input.AssignToID != nil {
			if err := s.assignRepo.Create(ctx, &entity.AssignToUser{
				LeadID:       lead.ID,
				UserID:       *input.AssignToID,
				AssignedByID: &input.CreatedBy,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// UpdateLeadInput represents the update lead input. Nil fields are left
// untouched.
type UpdateLeadInput struct {
	ID                    uuid.UUID
	Name                  *string
	Contact               *string
	Email                 *string
	Gender                *string
	Address               *string
	City                  *string
	Landmark              *string
	LeadType              *string
	Source                *string
	Category              *string
	PanVat                *string
	CompanyName           *string
	SubBranch             *string
	IsCustomer            *bool
	TentetiveVisitDate    *time.Time
	TentetivePurchaseDate *time.Time
	DivisionID            *uuid.UUID
	SubDivisionID         *uuid.UUID
	BranchID              *uuid.UUID
	DealerID              *uuid.UUID
	AssignToID            *uuid.UUID
	UpdatedBy             uuid.UUID

	FollowupDate    *time.Time
	FollowupType    *string
	FollowupRemarks *string
	Remarks         *string
}

// UpdateLead applies a partial update to a lead. Exactly one audit
// entry is appended per call, even when nothing changed semantically.
// A lead that is already a customer keeps lead_type "completed" no
// matter what the patch says.
func (s *LeadService) UpdateLead(ctx context.Context, input *UpdateLeadInput) (*entity.Lead, error) {
	var lead *entity.Lead
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		lead, err = s.leadRepo.GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if lead == nil {
			return apperror.NewNotFoundError("Lead")
		}
		prev := *lead

		if input.Contact != nil {
			if !contactPattern.MatchString(*input.Contact) {
				return apperror.NewValidationError([]apperror.FieldError{
					{Field: "contact", Message: "Contact must be a 10-digit number"},
				})
			}
			exists, err := s.leadRepo.ExistsByContact(ctx, *input.Contact, lead.ID)
			if err != nil {
				return err
			}
			if exists {
				return apperror.NewConflictError("Contact already exists")
			}
			lead.Contact = *input.Contact
		}
		if input.Email != nil {
			if *input.Email != "" && !emailPattern.MatchString(*input.Email) {
				return apperror.NewValidationError([]apperror.FieldError{
					{Field: "email", Message: "Invalid email format"},
				})
			}
			lead.Email = input.Email
		}

		if input.Name != nil {
			lead.Name = *input.Name
		}
		if input.Gender != nil {
			lead.Gender = input.Gender
		}
		if input.Address != nil {
			lead.Address = input.Address
		}
		if input.City != nil {
			lead.City = input.City
		}
		if input.Landmark != nil {
			lead.Landmark = input.Landmark
		}
		if input.LeadType != nil {
			lead.LeadType = *input.LeadType
		}
		if input.Source != nil {
			lead.Source = input.Source
		}
		if input.Category != nil {
			lead.Category = input.Category
		}
		if input.PanVat != nil {
			lead.PanVat = input.PanVat
		}
		if input.CompanyName != nil {
			lead.CompanyName = input.CompanyName
		}
		if input.SubBranch != nil {
			lead.SubBranch = input.SubBranch
		}
		if input.TentetiveVisitDate != nil {
			lead.TentetiveVisitDate = input.TentetiveVisitDate
		}
		if input.TentetivePurchaseDate != nil {
			lead.TentetivePurchaseDate = input.TentetivePurchaseDate
		}
		if input.IsCustomer != nil {
			lead.IsCustomer = *input.IsCustomer
		}

		if err := s.resolveStrict(ctx, input.DivisionID, input.SubDivisionID, input.BranchID, input.DealerID); err != nil {
			return err
		}
		if input.DivisionID != nil {
			lead.DivisionID = input.DivisionID
			lead.Division = nil
		}
		if input.SubDivisionID != nil {
			lead.SubDivisionID = input.SubDivisionID
			lead.SubDivision = nil
		}
		if input.BranchID != nil {
			lead.BranchID = input.BranchID
			lead.Branch = nil
		}
		if input.DealerID != nil {
			lead.DealerID = input.DealerID
			lead.Dealer = nil
		}

		// Reassignment appends to history only when the assignee changes
		if input.AssignToID != nil && (lead.AssignToID == nil || *lead.AssignToID != *input.AssignToID) {
			assignee, err := s.refs.User(ctx, input.AssignToID)
			if err != nil {
				return err
			}
			if assignee == nil {
				return apperror.NewValidationError([]apperror.FieldError{
					{Field: "assign_to", Message: "Assigned user not found"},
				})
			}
			lead.AssignToID = input.AssignToID
			lead.AssignTo = nil
			if err := s.assignRepo.Create(ctx, &entity.AssignToUser{
				LeadID:       lead.ID,
				UserID:       *input.AssignToID,
				AssignedByID: &input.UpdatedBy,
			}); err != nil {
				return err
			}
		}

		lead.EnforceCustomerConversion(&prev)

		if err := s.leadRepo.Update(ctx, lead); err != nil {
			return err
		}

		followup, err := s.createFollowup(ctx, lead.ID, input.UpdatedBy, input.FollowupDate, input.FollowupType, input.FollowupRemarks)
		if err != nil {
			return err
		}

		return s.appendLog(ctx, lead.ID, input.UpdatedBy, input.Remarks, followup)
	})
	if err != nil {
		return nil, err
	}
	return lead, nil
}

// resolveStrict verifies that every supplied reference id exists.
// Interactive writes treat a dangling id as an input error, unlike the
// lenient import path.
func (s *LeadService) resolveStrict(ctx context.Context, divisionID, subDivisionID, branchID, dealerID *uuid.UUID) error {
	division, err := s.refs.Division(ctx, divisionID)
	if err != nil {
		return err
	}
	if divisionID != nil && division == nil {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "division_id", Message: "Division not found"},
		})
	}

	subDivision, err := s.refs.SubDivision(ctx, subDivisionID)
	if err != nil {
		return err
	}
	if subDivisionID != nil && subDivision == nil {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "subdivision_id", Message: "Subdivision not found"},
		})
	}

	branch, err := s.refs.Branch(ctx, branchID)
	if err != nil {
		return err
	}
	if branchID != nil && branch == nil {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "branch_id", Message: "Branch not found"},
		})
	}

	dealer, err := s.refs.Dealer(ctx, dealerID)
	if err != nil {
		return err
	}
	if dealerID != nil && dealer == nil {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "dealer_id", Message: "Dealer not found"},
		})
	}

	return nil
}

func (s *LeadService) createFollowup(ctx context.Context, leadID, userID uuid.UUID, date *time.Time, followupType, remarks *string) (*entity.Followup, error) {
	if date == nil {
		return nil, nil
	}
	followup := &entity.Followup{
		LeadID:       leadID,
		UserID:       &userID,
		FollowupDate: date,
		FollowupType: enum.FollowupTypePending,
	}
	if followupType != nil {
		followup.FollowupType = enum.ParseFollowupType(*followupType)
	}
	if remarks != nil {
		followup.Remarks = *remarks
	}
	if err := s.followupRepo.Create(ctx, followup); err != nil {
		return nil, err
	}
	return followup, nil
}

func (s *LeadService) appendLog(ctx context.Context, leadID, userID uuid.UUID, remarks *string, followup *entity.Followup) error {
	log := &entity.LeadLog{
		LeadID: leadID,
		UserID: &userID,
	}
	if remarks != nil {
		log.Remarks = *remarks
	}
	if followup != nil {
		log.FollowupID = &followup.ID
	}
	return s.logRepo.Create(ctx, log)
}

// LeadDetail is a lead together with its current remarks, taken from
// the newest audit entry.
type LeadDetail struct {
	Lead    *entity.Lead    `json:"lead"`
	Remarks *entity.LeadLog `json:"latest_log,omitempty"`
}

// GetLead retrieves a lead and its latest audit entry
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*LeadDetail, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	latest, err := s.logRepo.Latest(ctx, id)
	if err != nil {
		return nil, err
	}
	return &LeadDetail{Lead: lead, Remarks: latest}, nil
}

// ListLeads lists leads matching the filter
func (s *LeadService) ListLeads(ctx context.Context, filter *repository.LeadFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.List(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// ListLeadsWithCursor lists leads using cursor-based pagination
func (s *LeadService) ListLeadsWithCursor(ctx context.Context, filter *repository.LeadFilter, params *pagination.CursorParams) (*pagination.CursorPaginatedResult[entity.Lead], error) {
	leads, err := s.leadRepo.ListWithCursor(ctx, filter, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""
	cursorPag, items := pagination.NewCursorPagination(leads, params.Limit,
		func(l entity.Lead) string { return l.ID.String() },
		func(l entity.Lead) time.Time { return l.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// ListBucket lists leads in one lifecycle bucket
func (s *LeadService) ListBucket(ctx context.Context, bucket enum.LeadBucket, filter *repository.LeadFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.ListBucket(ctx, bucket, filter, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// ListCustomers lists converted leads
func (s *LeadService) ListCustomers(ctx context.Context, filter *repository.LeadFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.ListCustomers(ctx, filter, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// ListAssigned lists leads currently assigned to a user
func (s *LeadService) ListAssigned(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.ListByAssignee(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}
