package service

import (
	"context"
	"time"

	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
)

const exportDateLayout = "2006-01-02 15:04"

// exportHeader is the fixed column order of a lead export
var exportHeader = []string{
	"Name", "Contact", "Email", "Gender", "Address", "City", "Landmark",
	"Pan/Vat", "Company Name", "Subbranch", "Lead Type", "Source",
	"Category", "Division", "Subdivision", "Branch", "Assigned To",
	"Is Customer", "Tentative Visit Date", "Tentative Purchase Date",
	"Created At",
}

// ExportService flattens filtered leads into tabular rows for download
type ExportService struct {
	leadRepo repository.LeadRepository
}

// NewExportService creates a new export service
func NewExportService(leadRepo repository.LeadRepository) *ExportService {
	return &ExportService{leadRepo: leadRepo}
}

// Header returns the export column names
func (s *ExportService) Header() []string {
	header := make([]string, len(exportHeader))
	copy(header, exportHeader)
	return header
}

// Export returns one row per lead matching the filter, oldest first.
// Absent values render as empty strings.
func (s *ExportService) Export(ctx context.Context, filter *repository.LeadFilter) ([][]string, error) {
	leads, err := s.leadRepo.ListForExport(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(leads))
	for i := range leads {
		rows = append(rows, exportRow(&leads[i]))
	}
	return rows, nil
}

func exportRow(lead *entity.Lead) []string {
	isCustomer := "No"
	if lead.IsCustomer {
		isCustomer = "Yes"
	}

	var division, subDivision, branch, assignedTo string
	if lead.Division != nil {
		division = lead.Division.Name
	}
	if lead.SubDivision != nil {
		subDivision = lead.SubDivision.Name
	}
	if lead.Branch != nil {
		branch = lead.Branch.Name
	}
	if lead.AssignTo != nil {
		assignedTo = lead.AssignTo.FullName()
	}

	return []string{
		lead.Name,
		lead.Contact,
		strValue(lead.Email),
		strValue(lead.Gender),
		strValue(lead.Address),
		strValue(lead.City),
		strValue(lead.Landmark),
		strValue(lead.PanVat),
		strValue(lead.CompanyName),
		strValue(lead.SubBranch),
		lead.LeadType,
		strValue(lead.Source),
		strValue(lead.Category),
		division,
		subDivision,
		branch,
		assignedTo,
		isCustomer,
		dateValue(lead.TentetiveVisitDate),
		dateValue(lead.TentetivePurchaseDate),
		lead.CreatedAt.Format(exportDateLayout),
	}
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func dateValue(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(exportDateLayout)
}
