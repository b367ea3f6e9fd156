package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/core/ports/mocks"
	"purchase-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router     *gin.Engine
	purchase   *mocks.MockPurchaseService
	dispute    *mocks.MockDisputeService
	ledger     *mocks.MockLedgerService
	recon      *mocks.MockReconciliationService
	commission *mocks.MockCommissionResolver
	inventory  *mocks.MockInventoryPool
	buyerID    uuid.UUID
	adminID    uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		purchase:   mocks.NewMockPurchaseService(ctrl),
		dispute:    mocks.NewMockDisputeService(ctrl),
		ledger:     mocks.NewMockLedgerService(ctrl),
		recon:      mocks.NewMockReconciliationService(ctrl),
		commission: mocks.NewMockCommissionResolver(ctrl),
		inventory:  mocks.NewMockInventoryPool(ctrl),
		buyerID:    uuid.New(),
		adminID:    uuid.New(),
	}

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("buyer-token").Return(&ports.TokenClaims{UserID: env.buyerID, Role: ports.RoleBuyer}, nil).AnyTimes()
	tokenSvc.EXPECT().Validate("admin-token").Return(&ports.TokenClaims{UserID: env.adminID, Role: ports.RoleAdmin}, nil).AnyTimes()

	env.router = SetupRouter(RouterDeps{
		PurchaseSvc:   env.purchase,
		DisputeSvc:    env.dispute,
		LedgerSvc:     env.ledger,
		ReconSvc:      env.recon,
		CommissionSvc: env.commission,
		Inventory:     env.inventory,
		TokenSvc:      tokenSvc,
		Gatherer:      prometheus.NewRegistry(),
		MaxBodyBytes:  1 << 20,
		Logger:        zerolog.Nop(),
	})
	return env
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "missing data envelope: %s", w.Body.String())
	return data
}

func paidOrder(buyerID uuid.UUID) *domain.OrderLine {
	now := time.Now().UTC()
	return &domain.OrderLine{
		ID:                 uuid.New(),
		BuyerID:            buyerID,
		ProductID:          uuid.New(),
		ProviderID:         uuid.New(),
		ReservationID:      uuid.New(),
		Category:           "streaming",
		GrossAmount:        decimal.RequireFromString("10.00"),
		ProviderEarnings:   decimal.RequireFromString("8.50"),
		PlatformCommission: decimal.RequireFromString("1.50"),
		CommissionRate:     decimal.RequireFromString("0.15"),
		Currency:           "USD",
		Status:             domain.OrderStatusPaid,
		RefundedAmount:     decimal.Zero,
		CreatedAt:          now,
		CompletedAt:        &now,
	}
}

// --- Purchase ---

func TestPurchase_Success(t *testing.T) {
	env := newTestEnv(t)
	productID := uuid.New()
	order := paidOrder(env.buyerID)

	env.purchase.EXPECT().Purchase(gomock.Any(), ports.PurchaseRequest{BuyerID: env.buyerID, ProductID: productID}).
		Return(&ports.PurchaseResult{
			Order:       order,
			Credentials: &domain.Credentials{Email: "acct@example.com", Password: "hunter2"},
		}, nil)

	w := env.do(http.MethodPost, "/api/v1/purchases", "buyer-token", map[string]string{"product_id": productID.String()})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, order.ID.String(), data["id"])
	assert.Equal(t, "PAID", data["status"])
	assert.Equal(t, "10.00", data["gross_amount"])
	creds := data["credentials"].(map[string]interface{})
	assert.Equal(t, "acct@example.com", creds["email"])
}

func TestPurchase_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/purchases", "", map[string]string{"product_id": uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPurchase_InvalidProductID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/purchases", "buyer-token", map[string]string{"product_id": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PAY_002")
}

func TestPurchase_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"out of stock", apperror.ErrOutOfStock(), http.StatusConflict, "INV_001"},
		{"insufficient funds", apperror.ErrInsufficientFunds(), http.StatusPaymentRequired, "PAY_001"},
		{"suspended", apperror.ErrWalletSuspended(), http.StatusForbidden, "WAL_001"},
		{"no commission", apperror.ErrNoActiveCommission(), http.StatusServiceUnavailable, "COM_001"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "SYS_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.purchase.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := env.do(http.MethodPost, "/api/v1/purchases", "buyer-token", map[string]string{"product_id": uuid.NewString()})
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

// --- Orders ---

func TestGetOrder_PassesCaller(t *testing.T) {
	env := newTestEnv(t)
	order := paidOrder(env.buyerID)
	order.Status = domain.OrderStatusDisputed

	env.purchase.EXPECT().GetOrder(gomock.Any(), order.ID, env.buyerID, false).
		Return(&ports.PurchaseResult{Order: order}, nil)

	w := env.do(http.MethodGet, "/api/v1/orders/"+order.ID.String(), "buyer-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "DISPUTED", data["status"])
	assert.Nil(t, data["credentials"])
}

func TestGetOrder_BadID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/orders/xyz", "buyer-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenDispute(t *testing.T) {
	env := newTestEnv(t)
	order := paidOrder(env.buyerID)
	order.Status = domain.OrderStatusDisputed

	env.dispute.EXPECT().OpenDispute(gomock.Any(), order.ID, env.buyerID).Return(order, nil)

	w := env.do(http.MethodPost, "/api/v1/orders/"+order.ID.String()+"/dispute", "buyer-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DISPUTED", decodeData(t, w)["status"])
}

// --- Admin ---

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/wallets/"+uuid.NewString(), "buyer-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestResolve_PartialRefund(t *testing.T) {
	env := newTestEnv(t)
	order := paidOrder(env.buyerID)
	order.Status = domain.OrderStatusResolvedPartialRefund
	order.RefundedAmount = decimal.RequireFromString("4.00")

	env.dispute.EXPECT().ApplyDisputeResolution(gomock.Any(), order.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, d domain.Decision) (*domain.OrderLine, error) {
			assert.Equal(t, domain.DecisionPartialRefund, d.Kind)
			assert.True(t, d.Percent.Equal(decimal.NewFromInt(40)))
			return order, nil
		})

	w := env.do(http.MethodPost, "/api/v1/admin/orders/"+order.ID.String()+"/resolution", "admin-token",
		map[string]string{"kind": "PARTIAL_REFUND", "percent": "40"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4.00", decodeData(t, w)["refunded_amount"])
}

func TestResolve_InvalidTransition(t *testing.T) {
	env := newTestEnv(t)
	orderID := uuid.New()
	env.dispute.EXPECT().ApplyDisputeResolution(gomock.Any(), orderID, domain.Decision{Kind: domain.DecisionRelease}).
		Return(nil, apperror.ErrInvalidTransition())

	w := env.do(http.MethodPost, "/api/v1/admin/orders/"+orderID.String()+"/resolution", "admin-token",
		map[string]string{"kind": "RELEASE"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ORD_001")
}

func TestGetBalance_Success(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.EXPECT().GetWalletBalance(gomock.Any(), env.buyerID).
		Return(decimal.RequireFromString("42.5"), "USD", nil)

	w := env.do(http.MethodGet, "/api/v1/wallets/me/balance", "buyer-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "42.50", data["balance"])
	assert.Equal(t, "USD", data["currency"])
}

func TestRecharge_Success(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	wallet := uuid.New()

	env.ledger.EXPECT().Recharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.RechargeRequest) (*domain.LedgerEntry, error) {
			assert.Equal(t, ownerID, req.OwnerID)
			assert.Equal(t, "bank-991", req.Reference)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(25)))
			require.NotNil(t, req.ActorID)
			assert.Equal(t, env.adminID, *req.ActorID)
			return domain.NewCreditEntry(wallet, req.Amount, domain.EntryKindRechargeCredit, domain.RechargeReference(req.Reference), nil), nil
		})

	w := env.do(http.MethodPost, "/api/v1/admin/wallets/"+ownerID.String()+"/recharges", "admin-token",
		map[string]string{"amount": "25.00", "reference": "bank-991"})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "RECHARGE_CREDIT", data["kind"])
	assert.Equal(t, "25.00", data["amount"])
}

func TestRecharge_RejectsNonPositive(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/wallets/"+uuid.NewString()+"/recharges", "admin-token",
		map[string]string{"amount": "-1", "reference": "bank-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetWalletStatus(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	wallet := domain.NewWallet(ownerID, "USD")
	wallet.Status = domain.WalletStatusSuspended

	env.ledger.EXPECT().SetWalletStatus(gomock.Any(), ownerID, domain.WalletStatusSuspended).Return(wallet, nil)

	w := env.do(http.MethodPut, "/api/v1/admin/wallets/"+ownerID.String()+"/status", "admin-token",
		map[string]string{"status": "SUSPENDED"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUSPENDED", decodeData(t, w)["status"])
}

func TestReconcileWallet(t *testing.T) {
	env := newTestEnv(t)
	ownerID := uuid.New()
	env.recon.EXPECT().VerifyWallet(gomock.Any(), ownerID).Return(&ports.WalletReport{
		WalletID:   uuid.New(),
		OwnerID:    ownerID,
		Stored:     decimal.RequireFromString("7"),
		Reconciled: decimal.RequireFromString("7"),
		Consistent: true,
	}, nil)

	w := env.do(http.MethodGet, "/api/v1/admin/wallets/"+ownerID.String()+"/reconcile", "admin-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["consistent"])
	assert.Equal(t, "7.00", data["stored_balance"])
}

func TestCreateCommission_DefaultsEffectiveNow(t *testing.T) {
	env := newTestEnv(t)
	before := time.Now().UTC()

	env.commission.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.CreateCommissionRequest) (*domain.CommissionConfig, error) {
			assert.Nil(t, req.Category)
			assert.False(t, req.EffectiveFrom.Before(before))
			return domain.NewCommissionConfig(req.Category, req.Rate, req.EffectiveFrom)
		})

	w := env.do(http.MethodPost, "/api/v1/admin/commissions", "admin-token", map[string]string{"rate": "0.12"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "0.12", decodeData(t, w)["rate"])
}

func TestToggleCommission(t *testing.T) {
	env := newTestEnv(t)
	cfg, err := domain.NewCommissionConfig(nil, decimal.RequireFromString("0.1"), time.Now())
	require.NoError(t, err)
	cfg.IsActive = false

	env.commission.EXPECT().SetActive(gomock.Any(), cfg.ID, false).Return(cfg, nil)

	w := env.do(http.MethodPatch, "/api/v1/admin/commissions/"+cfg.ID.String(), "admin-token", map[string]bool{"is_active": false})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeData(t, w)["is_active"])
}

func TestCreateProduct_MultiSlot(t *testing.T) {
	env := newTestEnv(t)
	providerID := uuid.New()

	env.inventory.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.CreateProductRequest) (*domain.Product, error) {
			assert.Equal(t, domain.PoolKindMultiSlot, req.Kind)
			assert.Equal(t, "s3cret<>", req.Password)
			require.Len(t, req.Slots, 2)
			return domain.NewMultiSlotProduct(req.ProviderID, req.Category, req.Name, req.Price, "USD",
				domain.AccountCredentials{EmailEnc: "enc", PasswordEnc: "enc"},
				[]domain.SlotSpec{{}, {}}), nil
		})

	w := env.do(http.MethodPost, "/api/v1/admin/products", "admin-token", map[string]interface{}{
		"provider_id": providerID.String(),
		"category":    "streaming",
		"name":        "Family plan",
		"price":       "9.99",
		"kind":        "MULTI_SLOT",
		"email":       "owner@example.com",
		"password":    "s3cret<>",
		"slots":       []map[string]string{{"profile_name": "A"}, {"profile_name": "B"}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "MULTI_SLOT", data["kind"])
	assert.Equal(t, float64(2), data["available_slots"])
	assert.NotContains(t, w.Body.String(), "s3cret")
}

func TestCreateProduct_MultiSlotWithoutSlots(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/products", "admin-token", map[string]interface{}{
		"provider_id": uuid.NewString(),
		"category":    "streaming",
		"name":        "Family plan",
		"price":       "9.99",
		"kind":        "MULTI_SLOT",
		"email":       "owner@example.com",
		"password":    "pw",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Infrastructure ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	healthy := mocks.NewMockHealthChecker(ctrl)
	healthy.EXPECT().Name().Return("postgresql").AnyTimes()
	healthy.EXPECT().Ping(gomock.Any()).Return(nil)
	broken := mocks.NewMockHealthChecker(ctrl)
	broken.EXPECT().Name().Return("redis").AnyTimes()
	broken.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	r := gin.New()
	r.GET("/health", HealthCheck(healthy, broken))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHealthCheck_NoDependencies(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerUI(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger", nil)

	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "Purchase Engine")
	assert.Contains(t, w.Body.String(), "persistAuthorization: true")
}

func TestSwaggerSpec_NotLoaded(t *testing.T) {
	SetSwaggerSpec(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwaggerSpec_Loaded(t *testing.T) {
	SetSwaggerSpec([]byte("openapi: 3.0.3"))
	defer SetSwaggerSpec(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "openapi: 3.0.3", w.Body.String())
}
