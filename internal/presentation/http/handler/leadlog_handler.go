package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/application/service"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/request"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/response"
)

// LeadLogHandler handles audit trail HTTP requests
type LeadLogHandler struct {
	logService *service.LeadLogService
}

// NewLeadLogHandler creates a new lead log handler
func NewLeadLogHandler(logService *service.LeadLogService) *LeadLogHandler {
	return &LeadLogHandler{logService: logService}
}

// Record handles appending an audit entry to a lead
func (h *LeadLogHandler) Record(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req request.RecordLeadLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	followupID, err := parseUUIDPtr(req.FollowupID)
	if err != nil {
		response.BadRequest(c, "Invalid followup_id")
		return
	}

	log, err := h.logService.Record(c.Request.Context(), leadID, *userID, req.Remarks, followupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Log recorded successfully", log)
}

// History handles listing a lead's full audit trail
func (h *LeadLogHandler) History(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	logs, err := h.logService.History(c.Request.Context(), leadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logs retrieved successfully", logs)
}

// List handles listing audit entries across leads
func (h *LeadLogHandler) List(c *gin.Context) {
	filter := &repository.LeadLogFilter{}

	var err error
	if filter.LeadID, err = queryUUID(c, "lead_id"); err != nil {
		response.BadRequest(c, "Invalid lead_id")
		return
	}
	if filter.UserID, err = queryUUID(c, "user_id"); err != nil {
		response.BadRequest(c, "Invalid user_id")
		return
	}

	result, err := h.logService.List(c.Request.Context(), filter, pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Logs retrieved successfully", result)
}
