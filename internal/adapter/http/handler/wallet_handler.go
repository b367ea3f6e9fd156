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

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
	reconSvc  ports.ReconciliationService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService, reconSvc ports.ReconciliationService) *WalletHandler {
	return &WalletHandler{
		ledgerSvc: ledgerSvc,
		reconSvc:  reconSvc,
	}
}

// GetBalance handles GET /api/v1/wallets/me/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, currency, err := h.ledgerSvc.GetWalletBalance(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletBalanceResponse{
		Balance:  balance.StringFixed(domain.DefaultCurrencyScale),
		Currency: currency,
	})
}

// OpenWallet handles POST /api/v1/admin/wallets/:owner_id.
func (h *WalletHandler) OpenWallet(c *gin.Context) {
	ownerID, err := pathUUID(c, "owner_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	wallet, err := h.ledgerSvc.OpenWallet(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewWalletResponse(wallet))
}

// Recharge handles POST /api/v1/admin/wallets/:owner_id/recharges.
func (h *WalletHandler) Recharge(c *gin.Context) {
	ownerID, err := pathUUID(c, "owner_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	rechargeReq := ports.RechargeRequest{
		OwnerID:   ownerID,
		Amount:    amount,
		Reference: req.Reference,
	}
	if actorID, ok := middleware.UserID(c); ok {
		rechargeReq.ActorID = &actorID
	}

	entry, err := h.ledgerSvc.Recharge(c.Request.Context(), rechargeReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewLedgerEntryResponse(entry))
}

// SetStatus handles PUT /api/v1/admin/wallets/:owner_id/status.
func (h *WalletHandler) SetStatus(c *gin.Context) {
	ownerID, err := pathUUID(c, "owner_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.WalletStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.ledgerSvc.SetWalletStatus(c.Request.Context(), ownerID, domain.WalletStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWalletResponse(wallet))
}

// Reconcile handles GET /api/v1/admin/wallets/:owner_id/reconcile.
func (h *WalletHandler) Reconcile(c *gin.Context) {
	ownerID, err := pathUUID(c, "owner_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reconSvc.VerifyWallet(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewReconcileResponse(report))
}
