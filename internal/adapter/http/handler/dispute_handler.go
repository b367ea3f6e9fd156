package handler

import (
	"purchase-engine/internal/adapter/http/dto"
	"purchase-engine/internal/adapter/http/middleware"
	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/pkg/apperror"
	"purchase-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DisputeHandler handles disputes and their resolution.
type DisputeHandler struct {
	disputeSvc ports.DisputeService
}

// NewDisputeHandler creates a new DisputeHandler.
func NewDisputeHandler(disputeSvc ports.DisputeService) *DisputeHandler {
	return &DisputeHandler{disputeSvc: disputeSvc}
}

// OpenDispute handles POST /api/v1/orders/:id/dispute.
func (h *DisputeHandler) OpenDispute(c *gin.Context) {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.disputeSvc.OpenDispute(c.Request.Context(), orderID, buyerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOrderResponse(&ports.PurchaseResult{Order: order}))
}

// Resolve handles POST /api/v1/admin/orders/:id/resolution.
func (h *DisputeHandler) Resolve(c *gin.Context) {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	decision := domain.Decision{Kind: domain.DecisionKind(req.Kind)}
	if req.Percent != "" {
		// Already validated by the percent binding.
		decision.Percent = decimal.RequireFromString(req.Percent)
	}

	order, err := h.disputeSvc.ApplyDisputeResolution(c.Request.Context(), orderID, decision)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewOrderResponse(&ports.PurchaseResult{Order: order}))
}
