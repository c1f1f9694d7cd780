package request

// CreateLeadRequest represents the create lead request. Dates accept
// "2006-01-02" or RFC 3339.
type CreateLeadRequest struct {
	Name                  string  `json:"name" binding:"required"`
	Contact               string  `json:"contact" binding:"required"`
	Email                 *string `json:"email"`
	Gender                *string `json:"gender"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	Landmark              *string `json:"landmark"`
	LeadType              *string `json:"lead_type"`
	Source                *string `json:"source"`
	Category              *string `json:"category"`
	PanVat                *string `json:"pan_vat"`
	CompanyName           *string `json:"company_name"`
	SubBranch             *string `json:"subbranch"`
	IsCustomer            bool    `json:"is_customer"`
	TentetiveVisitDate    *string `json:"tentetive_visit_date"`
	TentetivePurchaseDate *string `json:"tentetive_purchase_date"`
	DivisionID            *string `json:"division_id"`
	SubDivisionID         *string `json:"subdivision_id"`
	BranchID              *string `json:"branch_id"`
	DealerID              *string `json:"dealer_id"`
	AssignToID            *string `json:"assign_to_id"`

	FollowupDate    *string `json:"followup_date"`
	FollowupType    *string `json:"followup_type"`
	FollowupRemarks *string `json:"followup_remarks"`
	Remarks         *string `json:"remarks"`
}

// UpdateLeadRequest represents the update lead request. Omitted fields
// are left unchanged.
type UpdateLeadRequest struct {
	Name                  *string `json:"name"`
	Contact               *string `json:"contact"`
	Email                 *string `json:"email"`
	Gender                *string `json:"gender"`
	Address               *string `json:"address"`
	City                  *string `json:"city"`
	Landmark              *string `json:"landmark"`
	LeadType              *string `json:"lead_type"`
	Source                *string `json:"source"`
	Category              *string `json:"category"`
	PanVat                *string `json:"pan_vat"`
	CompanyName           *string `json:"company_name"`
	SubBranch             *string `json:"subbranch"`
	IsCustomer            *bool   `json:"is_customer"`
	TentetiveVisitDate    *string `json:"tentetive_visit_date"`
	TentetivePurchaseDate *string `json:"tentetive_purchase_date"`
	DivisionID            *string `json:"division_id"`
	SubDivisionID         *string `json:"subdivision_id"`
	BranchID              *string `json:"branch_id"`
	DealerID              *string `json:"dealer_id"`
	AssignToID            *string `json:"assign_to_id"`

	FollowupDate    *string `json:"followup_date"`
	FollowupType    *string `json:"followup_type"`
	FollowupRemarks *string `json:"followup_remarks"`
	Remarks         *string `json:"remarks"`
}

// AssignLeadRequest represents the assign lead request
type AssignLeadRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// ScheduleFollowupRequest represents the schedule followup request
type ScheduleFollowupRequest struct {
	FollowupDate *string `json:"followup_date"`
	FollowupType string  `json:"followup_type"`
	Remarks      string  `json:"remarks"`
}

// RecordLeadLogRequest represents the record lead log request
type RecordLeadLogRequest struct {
	Remarks    string  `json:"remarks" binding:"required"`
	FollowupID *string `json:"followup_id,omitempty"`
}

// CreateReferenceRequest represents a create request for divisions,
// branches and similar lookup entities
type CreateReferenceRequest struct {
	Name       string  `json:"name" binding:"required"`
	DivisionID *string `json:"division_id"`
}
