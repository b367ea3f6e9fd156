package dto

import (
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Money amounts travel as decimal strings ("12.50") in both directions.

// PurchaseRequest is the request body for buying one unit of a product.
type PurchaseRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// ResolutionRequest is the request body for resolving a paid or disputed order.
type ResolutionRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=FULL_REFUND PARTIAL_REFUND RELEASE"`
	Percent string `json:"percent,omitempty" binding:"omitempty,percent"`
}

// RechargeRequest is the request body for an approved wallet deposit.
type RechargeRequest struct {
	Amount    string `json:"amount" binding:"required,money"`
	Reference string `json:"reference" binding:"required,max=100,safe_id"`
}

// WalletStatusRequest is the request body for suspending or reactivating a wallet.
type WalletStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE SUSPENDED"`
}

// CommissionRequest is the request body for a new commission version.
// A missing category creates a global default.
type CommissionRequest struct {
	Category      *string    `json:"category,omitempty" binding:"omitempty,min=1,max=50,safe_id"`
	Rate          string     `json:"rate" binding:"required,rate"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
}

// ToggleCommissionRequest activates or deactivates a commission version.
type ToggleCommissionRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SlotRequest describes one slot of a shared account.
type SlotRequest struct {
	ProfileName *string `json:"profile_name,omitempty" binding:"omitempty,max=50"`
	PIN         *string `json:"pin,omitempty" binding:"omitempty,max=16" sanitize:"-"`
}

// CreateProductRequest is the request body for listing a product.
type CreateProductRequest struct {
	ProviderID string        `json:"provider_id" binding:"required,uuid"`
	Category   string        `json:"category" binding:"required,max=50,safe_id"`
	Name       string        `json:"name" binding:"required,min=1,max=200"`
	Price      string        `json:"price" binding:"required,money"`
	Kind       string        `json:"kind" binding:"required,oneof=SINGLE_UNIT MULTI_SLOT"`
	Email      string        `json:"email" binding:"required,email" sanitize:"-"`
	Password   string        `json:"password" binding:"required,max=256" sanitize:"-"`
	Slots      []SlotRequest `json:"slots,omitempty" binding:"omitempty,max=50,dive"`
}

// CredentialsResponse carries the decrypted account details of a paid order.
type CredentialsResponse struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	ProfileName *string `json:"profile_name,omitempty"`
	PIN         *string `json:"pin,omitempty"`
}

// OrderResponse is the response body for purchase and order lookups.
type OrderResponse struct {
	ID                 string               `json:"id"`
	ProductID          string               `json:"product_id"`
	SlotID             *string              `json:"slot_id,omitempty"`
	Status             string               `json:"status"`
	GrossAmount        string               `json:"gross_amount"`
	ProviderEarnings   string               `json:"provider_earnings"`
	PlatformCommission string               `json:"platform_commission"`
	CommissionRate     string               `json:"commission_rate"`
	RefundedAmount     string               `json:"refunded_amount"`
	Currency           string               `json:"currency"`
	CreatedAt          string               `json:"created_at"`
	RefundedAt         *string              `json:"refunded_at,omitempty"`
	Credentials        *CredentialsResponse `json:"credentials,omitempty"`
}

// WalletResponse is the response body for wallet administration.
type WalletResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Balance   string `json:"balance"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updated_at"`
}

// WalletBalanceResponse is the response for balance query.
type WalletBalanceResponse struct {
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// LedgerEntryResponse is the response body for a recorded balance change.
type LedgerEntryResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ReconcileResponse compares a wallet's stored balance with its ledger.
type ReconcileResponse struct {
	WalletID          string `json:"wallet_id"`
	OwnerID           string `json:"owner_id"`
	StoredBalance     string `json:"stored_balance"`
	ReconciledBalance string `json:"reconciled_balance"`
	Consistent        bool   `json:"consistent"`
}

// CommissionResponse is the response body for commission administration.
type CommissionResponse struct {
	ID            string  `json:"id"`
	Category      *string `json:"category,omitempty"`
	Rate          string  `json:"rate"`
	EffectiveFrom string  `json:"effective_from"`
	IsActive      bool    `json:"is_active"`
}

// ProductResponse is the response body for a listed product. Credentials are
// never echoed back.
type ProductResponse struct {
	ID             string `json:"id"`
	ProviderID     string `json:"provider_id"`
	Category       string `json:"category"`
	Name           string `json:"name"`
	Price          string `json:"price"`
	Currency       string `json:"currency"`
	Kind           string `json:"kind"`
	TotalSlots     int    `json:"total_slots"`
	AvailableSlots int    `json:"available_slots"`
	IsActive       bool   `json:"is_active"`
}

// NewOrderResponse maps a purchase result.
func NewOrderResponse(res *ports.PurchaseResult) OrderResponse {
	o := res.Order
	resp := OrderResponse{
		ID:                 o.ID.String(),
		ProductID:          o.ProductID.String(),
		Status:             string(o.Status),
		GrossAmount:        money(o.GrossAmount),
		ProviderEarnings:   money(o.ProviderEarnings),
		PlatformCommission: money(o.PlatformCommission),
		CommissionRate:     o.CommissionRate.String(),
		RefundedAmount:     money(o.RefundedAmount),
		Currency:           o.Currency,
		CreatedAt:          o.CreatedAt.Format(time.RFC3339),
	}
	if o.SlotID != nil {
		s := o.SlotID.String()
		resp.SlotID = &s
	}
	if o.RefundedAt != nil {
		s := o.RefundedAt.Format(time.RFC3339)
		resp.RefundedAt = &s
	}
	if res.Credentials != nil {
		resp.Credentials = &CredentialsResponse{
			Email:       res.Credentials.Email,
			Password:    res.Credentials.Password,
			ProfileName: res.Credentials.ProfileName,
			PIN:         res.Credentials.PIN,
		}
	}
	return resp
}

// NewWalletResponse maps a wallet.
func NewWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID.String(),
		OwnerID:   w.OwnerID.String(),
		Balance:   money(w.Balance),
		Currency:  w.Currency,
		Status:    string(w.Status),
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}

// NewLedgerEntryResponse maps a ledger entry.
func NewLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:        e.ID.String(),
		Reference: e.Reference,
		Kind:      string(e.Kind),
		Amount:    money(e.Amount),
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

// NewReconcileResponse maps a wallet report.
func NewReconcileResponse(r *ports.WalletReport) ReconcileResponse {
	return ReconcileResponse{
		WalletID:          r.WalletID.String(),
		OwnerID:           r.OwnerID.String(),
		StoredBalance:     money(r.Stored),
		ReconciledBalance: money(r.Reconciled),
		Consistent:        r.Consistent,
	}
}

// NewCommissionResponse maps a commission config.
func NewCommissionResponse(c *domain.CommissionConfig) CommissionResponse {
	return CommissionResponse{
		ID:            c.ID.String(),
		Category:      c.Category,
		Rate:          c.Rate.String(),
		EffectiveFrom: c.EffectiveFrom.Format(time.RFC3339),
		IsActive:      c.IsActive,
	}
}

// NewProductResponse maps a product.
func NewProductResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:         p.ID.String(),
		ProviderID: p.ProviderID.String(),
		Category:   p.Category,
		Name:       p.Name,
		Price:      money(p.Price),
		Currency:   p.Currency,
		IsActive:   p.IsActive,
	}
	if p.Pool != nil {
		resp.Kind = string(p.Pool.Kind())
		resp.TotalSlots = p.Pool.TotalSlots()
		resp.AvailableSlots = p.Pool.AvailableSlots()
	}
	return resp
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.DefaultCurrencyScale)
}
