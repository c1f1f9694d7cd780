package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/application/service"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/request"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/dto/response"
)

// FollowupHandler handles followup-related HTTP requests
type FollowupHandler struct {
	followupService *service.FollowupService
}

// NewFollowupHandler creates a new followup handler
func NewFollowupHandler(followupService *service.FollowupService) *FollowupHandler {
	return &FollowupHandler{followupService: followupService}
}

// Schedule handles scheduling a followup for a lead
func (h *FollowupHandler) Schedule(c *gin.Context) {
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

	var req request.ScheduleFollowupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	followupDate, err := parseDatePtr(req.FollowupDate)
	if err != nil {
		response.BadRequest(c, "Invalid followup_date")
		return
	}

	followup, err := h.followupService.Schedule(c.Request.Context(), &service.ScheduleFollowupInput{
		LeadID:       leadID,
		UserID:       *userID,
		FollowupDate: followupDate,
		FollowupType: req.FollowupType,
		Remarks:      req.Remarks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Followup scheduled successfully", followup)
}

// ListByLead handles listing a lead's followups grouped by type
func (h *FollowupHandler) ListByLead(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	buckets, err := h.followupService.Classify(c.Request.Context(), leadID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Followups retrieved successfully", buckets)
}

// ListByType handles listing followups of one type across all leads
func (h *FollowupHandler) ListByType(c *gin.Context) {
	var followupType *enum.FollowupType
	if raw := c.Param("type"); raw != "" && raw != "all" {
		parsed := enum.ParseFollowupType(raw)
		if !parsed.IsValid() {
			response.BadRequest(c, "Invalid followup type")
			return
		}
		followupType = &parsed
	}

	followups, err := h.followupService.ListByType(c.Request.Context(), followupType, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Followups retrieved successfully", followups)
}
