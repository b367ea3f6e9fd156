package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/telemetry"
	"purchase-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InventoryServiceImpl implements ports.InventoryPool.
type InventoryServiceImpl struct {
	store    ports.InventoryStore
	encSvc   ports.EncryptionService
	currency string
	scale    int32
	metrics  *telemetry.Metrics
	log      zerolog.Logger
}

// NewInventoryService creates a new InventoryServiceImpl.
func NewInventoryService(
	store ports.InventoryStore,
	encSvc ports.EncryptionService,
	currency string,
	scale int32,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *InventoryServiceImpl {
	return &InventoryServiceImpl{
		store:    store,
		encSvc:   encSvc,
		currency: currency,
		scale:    scale,
		metrics:  metrics,
		log:      log,
	}
}

// CreateProduct encrypts the listing's credentials and stores it with a
// fresh pool.
func (s *InventoryServiceImpl) CreateProduct(ctx context.Context, req ports.CreateProductRequest) (*domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, apperror.Validation("name and category are required")
	}
	if !domain.ValidAmount(req.Price, s.scale) {
		return nil, apperror.ErrInvalidAmount()
	}

	account, err := s.encryptAccount(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	var product *domain.Product
	switch req.Kind {
	case domain.PoolKindSingleUnit:
		if len(req.Slots) > 0 {
			return nil, apperror.Validation("single-unit products cannot have slots")
		}
		product = domain.NewSingleUnitProduct(req.ProviderID, req.Category, req.Name, req.Price, s.currency, account)
	case domain.PoolKindMultiSlot:
		if len(req.Slots) == 0 {
			return nil, apperror.Validation("multi-slot products need at least one slot")
		}
		specs := make([]domain.SlotSpec, 0, len(req.Slots))
		for _, in := range req.Slots {
			spec := domain.SlotSpec{ProfileName: in.ProfileName}
			if in.PIN != nil {
				enc, err := s.encSvc.Encrypt(*in.PIN)
				if err != nil {
					return nil, apperror.ErrEncryptionFailure(err)
				}
				spec.PINEnc = &enc
			}
			specs = append(specs, spec)
		}
		product = domain.NewMultiSlotProduct(req.ProviderID, req.Category, req.Name, req.Price, s.currency, account, specs)
	default:
		return nil, apperror.Validation(fmt.Sprintf("unknown pool kind %q", req.Kind))
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, toAppError(fmt.Errorf("create product: %w", err))
	}
	s.log.Info().
		Str("product_id", product.ID.String()).
		Str("pool", string(product.Pool.Kind())).
		Int("slots", product.Pool.TotalSlots()).
		Msg("product created")
	return product, nil
}

// GetProduct loads a product and its pool.
func (s *InventoryServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}
	return product, nil
}

// ReserveOne takes one unit of productID for buyerID.
func (s *InventoryServiceImpl) ReserveOne(ctx context.Context, productID, buyerID uuid.UUID) (*domain.SlotHandle, error) {
	ctx, span := telemetry.StartSpan(ctx, "inventory.ReserveOne")
	defer span.End()

	started := time.Now()
	handle, err := s.store.ReserveOne(ctx, productID, buyerID)
	if err != nil {
		reason := "error"
		switch {
		case errors.Is(err, domain.ErrOutOfStock):
			reason = "out_of_stock"
			s.log.Info().Str("product_id", productID.String()).Msg("reservation lost: out of stock")
		case errors.Is(err, domain.ErrProductInactive):
			reason = "inactive"
		case errors.Is(err, domain.ErrProductNotFound):
			reason = "not_found"
		}
		s.metrics.ObserveReserve(started, reason)
		return nil, toAppError(err)
	}
	s.metrics.ObserveReserve(started, "")
	return handle, nil
}

// Release returns the unit behind handle to its pool.
func (s *InventoryServiceImpl) Release(ctx context.Context, handle *domain.SlotHandle) error {
	ctx, span := telemetry.StartSpan(ctx, "inventory.Release")
	defer span.End()

	if err := s.store.Release(ctx, handle.ReservationID); err != nil {
		return toAppError(fmt.Errorf("release reservation %s: %w", handle.ReservationID, err))
	}
	s.log.Info().Str("reservation_id", handle.ReservationID.String()).Str("product_id", handle.ProductID.String()).Msg("reservation released")
	return nil
}

// RevealCredentials decrypts the account, and slot if any, sold by order.
func (s *InventoryServiceImpl) RevealCredentials(ctx context.Context, order *domain.OrderLine) (*domain.Credentials, error) {
	product, err := s.store.GetProduct(ctx, order.ProductID)
	if err != nil {
		return nil, toAppError(err)
	}

	creds := &domain.Credentials{
		Email:    s.encSvc.SafeDecrypt(product.Account.EmailEnc),
		Password: s.encSvc.SafeDecrypt(product.Account.PasswordEnc),
	}

	switch pool := product.Pool.(type) {
	case *domain.SingleUnitPool:
	case *domain.MultiSlotPool:
		if order.SlotID == nil {
			return nil, apperror.InternalError(fmt.Errorf("order %s on multi-slot product has no slot", order.ID))
		}
		slot := pool.Slot(*order.SlotID)
		if slot == nil {
			return nil, apperror.InternalError(fmt.Errorf("slot %s of order %s not found", *order.SlotID, order.ID))
		}
		creds.ProfileName = slot.ProfileName
		if slot.PINEnc != nil {
			pin := s.encSvc.SafeDecrypt(*slot.PINEnc)
			creds.PIN = &pin
		}
	default:
		return nil, apperror.InternalError(fmt.Errorf("%w: %T", domain.ErrUnknownPool, product.Pool))
	}
	return creds, nil
}

func (s *InventoryServiceImpl) encryptAccount(email, password string) (domain.AccountCredentials, error) {
	emailEnc, err := s.encSvc.Encrypt(email)
	if err != nil {
		return domain.AccountCredentials{}, apperror.ErrEncryptionFailure(err)
	}
	passwordEnc, err := s.encSvc.Encrypt(password)
	if err != nil {
		return domain.AccountCredentials{}, apperror.ErrEncryptionFailure(err)
	}
	return domain.AccountCredentials{EmailEnc: emailEnc, PasswordEnc: passwordEnc}, nil
}
