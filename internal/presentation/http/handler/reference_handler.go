package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/application/service"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/request"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/response"
)

// ReferenceHandler handles division, subdivision, branch, dealer and
// user lookup endpoints
type ReferenceHandler struct {
	referenceService *service.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(referenceService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// CreateDivision handles creating a division
func (h *ReferenceHandler) CreateDivision(c *gin.Context) {
	var req request.CreateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	division, err := h.referenceService.CreateDivision(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Division created successfully", division)
}

// ListDivisions handles listing divisions
func (h *ReferenceHandler) ListDivisions(c *gin.Context) {
	divisions, err := h.referenceService.ListDivisions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Divisions retrieved successfully", divisions)
}

// GetDivision handles getting a single division
func (h *ReferenceHandler) GetDivision(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid division ID")
		return
	}

	division, err := h.referenceService.GetDivision(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Division retrieved successfully", division)
}

// CreateSubDivision handles creating a subdivision
func (h *ReferenceHandler) CreateSubDivision(c *gin.Context) {
	var req request.CreateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	divisionID, err := parseUUIDPtr(req.DivisionID)
	if err != nil {
		response.BadRequest(c, "Invalid division_id")
		return
	}

	subDivision, err := h.referenceService.CreateSubDivision(c.Request.Context(), req.Name, divisionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Subdivision created successfully", subDivision)
}

// ListSubDivisions handles listing subdivisions, optionally scoped to
// a division via the division_id query parameter
func (h *ReferenceHandler) ListSubDivisions(c *gin.Context) {
	divisionID, err := queryUUID(c, "division_id")
	if err != nil {
		response.BadRequest(c, "Invalid division_id")
		return
	}

	subDivisions, err := h.referenceService.ListSubDivisions(c.Request.Context(), divisionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subdivisions retrieved successfully", subDivisions)
}

// CreateBranch handles creating a branch
func (h *ReferenceHandler) CreateBranch(c *gin.Context) {
	var req request.CreateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	branch, err := h.referenceService.CreateBranch(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Branch created successfully", branch)
}

// ListBranches handles listing branches
func (h *ReferenceHandler) ListBranches(c *gin.Context) {
	branches, err := h.referenceService.ListBranches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Branches retrieved successfully", branches)
}

// ListDealers handles listing dealers
func (h *ReferenceHandler) ListDealers(c *gin.Context) {
	dealers, err := h.referenceService.ListDealers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dealers retrieved successfully", dealers)
}

// ListUsers handles listing assignable users
func (h *ReferenceHandler) ListUsers(c *gin.Context) {
	users, err := h.referenceService.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", users)
}

// ListRoles handles listing roles and their permissions
func (h *ReferenceHandler) ListRoles(c *gin.Context) {
	roles, err := h.referenceService.ListRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Roles retrieved successfully", roles)
}
