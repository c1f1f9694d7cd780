package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
)

// requiredImportColumns must all be present before any row is processed
var requiredImportColumns = []string{"name", "contact", "gender", "address", "email"}

// importDateLayouts are tried in order when parsing date cells
var importDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ImportService bulk-loads leads from tabular data. Each row commits
// or rolls back on its own: a bad row never takes its neighbours down.
type ImportService struct {
	leadRepo     repository.LeadRepository
	followupRepo repository.FollowupRepository
	logRepo      repository.LeadLogRepository
	assignRepo   repository.AssignToUserRepository
	refs         *ReferenceService
	tx           repository.Transactor
}

// NewImportService creates a new import service
func NewImportService(
	leadRepo repository.LeadRepository,
	followupRepo repository.FollowupRepository,
	logRepo repository.LeadLogRepository,
	assignRepo repository.AssignToUserRepository,
	refs *ReferenceService,
	tx repository.Transactor,
) *ImportService {
	return &ImportService{
		leadRepo:     leadRepo,
		followupRepo: followupRepo,
		logRepo:      logRepo,
		assignRepo:   assignRepo,
		refs:         refs,
		tx:           tx,
	}
}

// ImportRowResult reports the outcome of a single row. Row indexes are
// zero-based over the data rows, header excluded.
type ImportRowResult struct {
	Row     int    `json:"row"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ImportSummary aggregates an import run
type ImportSummary struct {
	TotalRows int               `json:"total_rows"`
	Imported  int               `json:"imported"`
	Failed    int               `json:"failed"`
	Results   []ImportRowResult `json:"results"`
}

// ImportLeads validates the header, then processes every row. Rows are
// independent: a failure is recorded in the summary and the import
// moves on.
func (s *ImportService) ImportLeads(ctx context.Context, actorID uuid.UUID, columns []string, rows []map[string]string) (*ImportSummary, error) {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[strings.ToLower(strings.TrimSpace(col))] = true
	}
	var missing []apperror.FieldError
	for _, col := range requiredImportColumns {
		if !present[col] {
			missing = append(missing, apperror.FieldError{
				Field:   col,
				Message: "Required column is missing",
			})
		}
	}
	if len(missing) > 0 {
		return nil, apperror.NewValidationError(missing)
	}

	summary := &ImportSummary{
		TotalRows: len(rows),
		Results:   make([]ImportRowResult, 0, len(rows)),
	}
	for i, row := range rows {
		if err := s.importRow(ctx, actorID, row); err != nil {
			summary.Failed++
			summary.Results = append(summary.Results, ImportRowResult{
				Row:     i,
				Success: false,
				Message: apperror.GetAppError(err).Message,
			})
			continue
		}
		summary.Imported++
		summary.Results = append(summary.Results, ImportRowResult{
			Row:     i,
			Success: true,
		})
	}
	return summary, nil
}

func (s *ImportService) importRow(ctx context.Context, actorID uuid.UUID, row map[string]string) error {
	get := func(key string) *string { return cleanCell(row[key]) }

	name := get("name")
	if name == nil {
		return apperror.NewBadRequestError("Name is required")
	}

	contact := get("contact")
	if contact == nil {
		return apperror.NewBadRequestError("Contact is required")
	}
	digits := strings.TrimSpace(*contact)
	if !contactPattern.MatchString(digits) {
		return apperror.NewBadRequestError("Contact must be a 10-digit number")
	}

	email := get("email")
	if email != nil && !emailPattern.MatchString(*email) {
		return apperror.NewBadRequestError("Invalid email format")
	}

	// References resolve leniently: an unparseable or unknown id is
	// treated as absent rather than failing the row
	divisionID, err := s.lenientDivision(ctx, get("division"))
	if err != nil {
		return err
	}
	subDivisionID, err := s.lenientSubDivision(ctx, get("subdivision"))
	if err != nil {
		return err
	}
	branchID, err := s.lenientBranch(ctx, get("branch"))
	if err != nil {
		return err
	}
	dealerID, err := s.lenientDealer(ctx, get("dealer"))
	if err != nil {
		return err
	}
	assignToID, err := s.lenientUser(ctx, get("assign_to"))
	if err != nil {
		return err
	}

	isCustomer := false
	if v := get("is_customer"); v != nil {
		switch strings.ToLower(*v) {
		case "true", "1", "yes":
			isCustomer = true
		}
	}

	lead := &entity.Lead{
		Name:          *name,
		Contact:       digits,
		Email:         email,
		Gender:        get("gender"),
		Address:       get("address"),
		City:          get("city"),
		Landmark:      get("landmark"),
		Source:        get("source"),
		Category:      get("category"),
		PanVat:        get("pan_vat"),
		CompanyName:   get("company_name"),
		SubBranch:     get("subbranch"),
		IsCustomer:    isCustomer,
		DivisionID:    divisionID,
		SubDivisionID: subDivisionID,
		BranchID:      branchID,
		DealerID:      dealerID,
		AssignToID:    assignToID,
		CreatedByID:   actorID,
	}
	if v := get("lead_type"); v != nil {
		lead.LeadType = *v
	}
	lead.EnforceCustomerConversion(nil)

	if v := get("tentetive_visit_date"); v != nil {
		if t, err := parseImportDate(*v); err == nil {
			lead.TentetiveVisitDate = &t
		}
	}
	if v := get("tentetive_purchase_date"); v != nil {
		if t, err := parseImportDate(*v); err == nil {
			lead.TentetivePurchaseDate = &t
		}
	}

	followupDate := get("followup_date")
	followupType := get("followup_type")
	followupRemarks := get("followup_remarks")
	remarks := get("remarks")

	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		exists, err := s.leadRepo.ExistsByContact(ctx, digits, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflictError("Contact number already exists")
		}

		if err := s.leadRepo.Create(ctx, lead); err != nil {
			return err
		}

		// A followup needs date, type and remarks together
		var followup *entity.Followup
		if followupDate != nil && followupType != nil && followupRemarks != nil {
			date, err := parseImportDate(*followupDate)
			if err != nil {
				return apperror.NewBadRequestError(fmt.Sprintf("Invalid followup date %q", *followupDate))
			}
			followup = &entity.Followup{
				LeadID:       lead.ID,
				UserID:       &actorID,
				FollowupDate: &date,
				FollowupType: enum.ParseFollowupType(*followupType),
				Remarks:      *followupRemarks,
			}
			if err := s.followupRepo.Create(ctx, followup); err != nil {
				return err
			}
		}

		if remarks != nil {
			log := &entity.LeadLog{
				LeadID:  lead.ID,
				UserID:  &actorID,
				Remarks: *remarks,
			}
			if followup != nil {
				log.FollowupID = &followup.ID
			}
			if err := s.logRepo.Create(ctx, log); err != nil {
				return err
			}
		}

		if assignToID != nil {
			if err := s.assignRepo.Create(ctx, &entity.AssignToUser{
				LeadID:       lead.ID,
				UserID:       *assignToID,
				AssignedByID: &actorID,
			}); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *ImportService) lenientDivision(ctx context.Context, cell *string) (*uuid.UUID, error) {
	id := parseCellUUID(cell)
	if id == nil {
		return nil, nil
	}
	division, err := s.refs.Division(ctx, id)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, nil
	}
	return id, nil
}

func (s *ImportService) lenientSubDivision(ctx context.Context, cell *string) (*uuid.UUID, error) {
	id := parseCellUUID(cell)
	if id == nil {
		return nil, nil
	}
	subDivision, err := s.refs.SubDivision(ctx, id)
	if err != nil {
		return nil, err
	}
	if subDivision == nil {
		return nil, nil
	}
	return id, nil
}

func (s *ImportService) lenientBranch(ctx context.Context, cell *string) (*uuid.UUID, error) {
	id := parseCellUUID(cell)
	if id == nil {
		return nil, nil
	}
	branch, err := s.refs.Branch(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return id, nil
}

func (s *ImportService) lenientDealer(ctx context.Context, cell *string) (*uuid.UUID, error) {
	id := parseCellUUID(cell)
	if id == nil {
		return nil, nil
	}
	dealer, err := s.refs.Dealer(ctx, id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, nil
	}
	return id, nil
}

func (s *ImportService) lenientUser(ctx context.Context, cell *string) (*uuid.UUID, error) {
	id := parseCellUUID(cell)
	if id == nil {
		return nil, nil
	}
	user, err := s.refs.User(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return id, nil
}

// cleanCell normalizes a raw cell. Empty and literal "null" cells are
// absent.
func cleanCell(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return nil
	}
	return &trimmed
}

func parseCellUUID(cell *string) *uuid.UUID {
	if cell == nil {
		return nil
	}
	id, err := uuid.Parse(*cell)
	if err != nil {
		return nil
	}
	return &id
}

func parseImportDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range importDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
