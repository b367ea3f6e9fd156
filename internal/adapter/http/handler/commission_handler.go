package handler

import (
	"time"

	"purchase-engine/internal/adapter/http/dto"
	"purchase-engine/internal/core/ports"
	"purchase-engine/pkg/apperror"
	"purchase-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CommissionHandler handles commission administration.
type CommissionHandler struct {
	commissionSvc ports.CommissionResolver
}

// NewCommissionHandler creates a new CommissionHandler.
func NewCommissionHandler(commissionSvc ports.CommissionResolver) *CommissionHandler {
	return &CommissionHandler{commissionSvc: commissionSvc}
}

// Create handles POST /api/v1/admin/commissions. Without effective_from the
// version takes effect immediately.
func (h *CommissionHandler) Create(c *gin.Context) {
	var req dto.CommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		response.Error(c, apperror.Validation("invalid rate"))
		return
	}
	effectiveFrom := time.Now().UTC()
	if req.EffectiveFrom != nil {
		effectiveFrom = *req.EffectiveFrom
	}

	cfg, err := h.commissionSvc.Create(c.Request.Context(), ports.CreateCommissionRequest{
		Category:      req.Category,
		Rate:          rate,
		EffectiveFrom: effectiveFrom,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewCommissionResponse(cfg))
}

// Toggle handles PATCH /api/v1/admin/commissions/:id.
func (h *CommissionHandler) Toggle(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ToggleCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	cfg, err := h.commissionSvc.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewCommissionResponse(cfg))
}
