package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/application/service"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/request"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/response"
	"github.com/sangkips/leadtrack-api/pkg/pagination"
)

// dateLayouts accepted in request bodies and query filters
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService       *service.LeadService
	assignmentService *service.AssignmentService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService, assignmentService *service.AssignmentService) *LeadHandler {
	return &LeadHandler{
		leadService:       leadService,
		assignmentService: assignmentService,
	}
}

// Create handles creating a lead
func (h *LeadHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateLeadInput{
		Name:        req.Name,
		Contact:     req.Contact,
		Email:       req.Email,
		Gender:      req.Gender,
		Address:     req.Address,
		City:        req.City,
		Landmark:    req.Landmark,
		LeadType:    req.LeadType,
		Source:      req.Source,
		Category:    req.Category,
		PanVat:      req.PanVat,
		CompanyName: req.CompanyName,
		SubBranch:   req.SubBranch,
		IsCustomer:  req.IsCustomer,
		CreatedBy:   *userID,

		FollowupType:    req.FollowupType,
		FollowupRemarks: req.FollowupRemarks,
		Remarks:         req.Remarks,
	}

	var err error
	if input.TentetiveVisitDate, err = parseDatePtr(req.TentetiveVisitDate); err != nil {
		response.BadRequest(c, "Invalid tentetive_visit_date")
		return
	}
	if input.TentetivePurchaseDate, err = parseDatePtr(req.TentetivePurchaseDate); err != nil {
		response.BadRequest(c, "Invalid tentetive_purchase_date")
		return
	}
	if input.FollowupDate, err = parseDatePtr(req.FollowupDate); err != nil {
		response.BadRequest(c, "Invalid followup_date")
		return
	}
	if input.DivisionID, err = parseUUIDPtr(req.DivisionID); err != nil {
		response.BadRequest(c, "Invalid division_id")
		return
	}
	if input.SubDivisionID, err = parseUUIDPtr(req.SubDivisionID); err != nil {
		response.BadRequest(c, "Invalid subdivision_id")
		return
	}
	if input.BranchID, err = parseUUIDPtr(req.BranchID); err != nil {
		response.BadRequest(c, "Invalid branch_id")
		return
	}
	if input.DealerID, err = parseUUIDPtr(req.DealerID); err != nil {
		response.BadRequest(c, "Invalid dealer_id")
		return
	}
	if input.AssignToID, err = parseUUIDPtr(req.AssignToID); err != nil {
		response.BadRequest(c, "Invalid assign_to_id")
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead created successfully", lead)
}

// Get handles getting a single lead with its latest audit entry
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	detail, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", detail)
}

// Update handles updating a lead
func (h *LeadHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateLeadInput{
		ID:          id,
		Name:        req.Name,
		Contact:     req.Contact,
		Email:       req.Email,
		Gender:      req.Gender,
		Address:     req.Address,
		City:        req.City,
		Landmark:    req.Landmark,
		LeadType:    req.LeadType,
		Source:      req.Source,
		Category:    req.Category,
		PanVat:      req.PanVat,
		CompanyName: req.CompanyName,
		SubBranch:   req.SubBranch,
		IsCustomer:  req.IsCustomer,
		UpdatedBy:   *userID,

		FollowupType:    req.FollowupType,
		FollowupRemarks: req.FollowupRemarks,
		Remarks:         req.Remarks,
	}

	if input.TentetiveVisitDate, err = parseDatePtr(req.TentetiveVisitDate); err != nil {
		response.BadRequest(c, "Invalid tentetive_visit_date")
		return
	}
	if input.TentetivePurchaseDate, err = parseDatePtr(req.TentetivePurchaseDate); err != nil {
		response.BadRequest(c, "Invalid tentetive_purchase_date")
		return
	}
	if input.FollowupDate, err = parseDatePtr(req.FollowupDate); err != nil {
		response.BadRequest(c, "Invalid followup_date")
		return
	}
	if input.DivisionID, err = parseUUIDPtr(req.DivisionID); err != nil {
		response.BadRequest(c, "Invalid division_id")
		return
	}
	if input.SubDivisionID, err = parseUUIDPtr(req.SubDivisionID); err != nil {
		response.BadRequest(c, "Invalid subdivision_id")
		return
	}
	if input.BranchID, err = parseUUIDPtr(req.BranchID); err != nil {
		response.BadRequest(c, "Invalid branch_id")
		return
	}
	if input.DealerID, err = parseUUIDPtr(req.DealerID); err != nil {
		response.BadRequest(c, "Invalid dealer_id")
		return
	}
	if input.AssignToID, err = parseUUIDPtr(req.AssignToID); err != nil {
		response.BadRequest(c, "Invalid assign_to_id")
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead updated successfully", lead)
}

// List handles listing leads (supports both page-based and cursor-based pagination)
func (h *LeadHandler) List(c *gin.Context) {
	filter, err := parseLeadFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, filter)
		return
	}

	result, err := h.leadService.ListLeads(c.Request.Context(), filter, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

func (h *LeadHandler) listWithCursor(c *gin.Context, filter *repository.LeadFilter) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	params := &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}

	result, err := h.leadService.ListLeadsWithCursor(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Leads retrieved successfully", result)
}

// Bucket handles listing leads in one lifecycle bucket
func (h *LeadHandler) Bucket(c *gin.Context) {
	bucket, ok := enum.ParseLeadBucket(c.Param("bucket"))
	if !ok {
		response.BadRequest(c, "Invalid bucket")
		return
	}

	filter, err := parseLeadFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.leadService.ListBucket(c.Request.Context(), bucket, filter, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// Customers handles listing converted leads
func (h *LeadHandler) Customers(c *gin.Context) {
	filter, err := parseLeadFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.leadService.ListCustomers(c.Request.Context(), filter, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Assigned handles listing leads assigned to the current user
func (h *LeadHandler) Assigned(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.leadService.ListAssigned(c.Request.Context(), *userID, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Assigned leads retrieved successfully", result)
}

// Assign handles assigning a lead to a user
func (h *LeadHandler) Assign(c *gin.Context) {
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.AssignLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	result, err := h.assignmentService.Assign(c.Request.Context(), leadID, userID, *actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Lead assigned successfully"
	if !result.Changed {
		message = "Lead already assigned to this user"
	}
	response.OK(c, message, result)
}

// Assignments handles listing a lead's assignment history
func (h *LeadHandler) Assignments(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	history, err := h.assignmentService.HistoryByLead(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Assignment history retrieved successfully", history)
}

// AssignmentsByUser handles listing every assignment a user ever held
func (h *LeadHandler) AssignmentsByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	history, err := h.assignmentService.HistoryByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Assignment history retrieved successfully", history)
}

func pageParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{Page: page, PerPage: perPage}
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, *value)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func parseUUIDPtr(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryUUID(c *gin.Context, key string) (*uuid.UUID, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	return parseUUIDPtr(&v)
}

func queryDate(c *gin.Context, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	return parseDatePtr(&v)
}

// parseLeadFilter builds a lead filter from query parameters. Text
// fields match as case-insensitive substrings, gender and lead_type
// match exactly.
func parseLeadFilter(c *gin.Context) (*repository.LeadFilter, error) {
	filter := &repository.LeadFilter{
		Name:        c.Query("name"),
		Contact:     c.Query("contact"),
		Email:       c.Query("email"),
		Gender:      c.Query("gender"),
		LeadType:    c.Query("lead_type"),
		Source:      c.Query("source"),
		Category:    c.Query("category"),
		PanVat:      c.Query("pan_vat"),
		CompanyName: c.Query("company_name"),
		City:        c.Query("city"),
		Landmark:    c.Query("landmark"),
		SubBranch:   c.Query("subbranch"),
	}

	switch c.Query("is_customer") {
	case "true", "1":
		v := true
		filter.IsCustomer = &v
	case "false", "0":
		v := false
		filter.IsCustomer = &v
	}

	var err error
	if filter.DivisionID, err = queryUUID(c, "division_id"); err != nil {
		return nil, err
	}
	if filter.SubDivisionID, err = queryUUID(c, "subdivision_id"); err != nil {
		return nil, err
	}
	if filter.BranchID, err = queryUUID(c, "branch_id"); err != nil {
		return nil, err
	}
	if filter.DealerID, err = queryUUID(c, "dealer_id"); err != nil {
		return nil, err
	}
	if filter.AssignToID, err = queryUUID(c, "assign_to_id"); err != nil {
		return nil, err
	}
	if filter.CreatedByID, err = queryUUID(c, "created_by_id"); err != nil {
		return nil, err
	}
	if filter.VisitFrom, err = queryDate(c, "visit_from"); err != nil {
		return nil, err
	}
	if filter.VisitTo, err = queryDate(c, "visit_to"); err != nil {
		return nil, err
	}
	if filter.CreatedFrom, err = queryDate(c, "created_from"); err != nil {
		return nil, err
	}
	if filter.CreatedTo, err = queryDate(c, "created_to"); err != nil {
		return nil, err
	}

	return filter, nil
}
