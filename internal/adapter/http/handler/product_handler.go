package handler

import (
	"purchase-engine/internal/adapter/http/dto"
	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/pkg/apperror"
	"purchase-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product listing.
type ProductHandler struct {
	inventory ports.InventoryPool
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(inventory ports.InventoryPool) *ProductHandler {
	return &ProductHandler{inventory: inventory}
}

// Create handles POST /api/v1/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	kind := domain.PoolKind(req.Kind)
	if kind == domain.PoolKindMultiSlot && len(req.Slots) == 0 {
		response.Error(c, apperror.Validation("a multi-slot product needs at least one slot"))
		return
	}
	if kind == domain.PoolKindSingleUnit && len(req.Slots) > 0 {
		response.Error(c, apperror.Validation("a single-unit product has no slots"))
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	slots := make([]ports.SlotInput, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, ports.SlotInput{ProfileName: s.ProfileName, PIN: s.PIN})
	}

	product, err := h.inventory.CreateProduct(c.Request.Context(), ports.CreateProductRequest{
		ProviderID: uuid.MustParse(req.ProviderID),
		Category:   req.Category,
		Name:       req.Name,
		Price:      price,
		Kind:       kind,
		Email:      req.Email,
		Password:   req.Password,
		Slots:      slots,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewProductResponse(product))
}
