package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "purchase-engine/internal/adapter/http/handler"
	"purchase-engine/internal/adapter/http/middleware"
	"purchase-engine/internal/adapter/storage/memory"
	redisStorage "purchase-engine/internal/adapter/storage/redis"
	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/service"
	"purchase-engine/internal/telemetry"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testAESKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// testApp runs the real HTTP stack over the memory stores, with miniredis
// behind idempotency and rate limiting.
type testApp struct {
	server        *httptest.Server
	redis         *miniredis.Miniredis
	tokens        ports.TokenService
	adminToken    string
	platformOwner uuid.UUID
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zerolog.Nop()
	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(registry)

	db, stores := memory.NewStores()
	encSvc, err := service.NewAESEncryptionService(testAESKey)
	require.NoError(t, err)
	tokenSvc := service.NewJWTTokenService("integration-secret-key-32-bytes!!", time.Hour, "user-directory")

	settings := service.PurchaseSettings{
		PlatformOwnerID: uuid.New(),
		CurrencyScale:   domain.DefaultCurrencyScale,
		SagaTimeout:     5 * time.Second,
	}
	policy := domain.DisputePolicy{
		DefaultPartialPercent: decimal.NewFromInt(50),
		Categories: map[string]domain.CategoryPolicy{
			"streaming": {Returnable: true},
		},
	}

	ledgerSvc := service.NewLedgerService(stores.Wallets, "USD", settings.CurrencyScale, metrics, log)
	commissionSvc := service.NewCommissionResolver(stores.Commissions, log)
	inventorySvc := service.NewInventoryService(stores.Inventory, encSvc, "USD", settings.CurrencyScale, metrics, log)
	purchaseSvc := service.NewPurchaseService(inventorySvc, commissionSvc, ledgerSvc, stores.Orders, nil, settings, metrics, log)
	disputeSvc := service.NewDisputeService(stores.Orders, ledgerSvc, inventorySvc, nil, policy, settings, metrics, log)
	reconSvc := service.NewReconciliationService(stores.Inventory, stores.Wallets, ledgerSvc, service.SweepSettings{
		ReservationTimeout: time.Minute,
		Interval:           time.Second,
		Batch:              50,
	}, metrics, log)

	_, err = ledgerSvc.EnsureWallet(context.Background(), settings.PlatformOwnerID)
	require.NoError(t, err)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PurchaseSvc:      purchaseSvc,
		DisputeSvc:       disputeSvc,
		LedgerSvc:        ledgerSvc,
		ReconSvc:         reconSvc,
		CommissionSvc:    commissionSvc,
		Inventory:        inventorySvc,
		TokenSvc:         tokenSvc,
		IdempotencyCache: redisStorage.NewIdempotencyCache(rdb),
		IdempotencyTTL:   time.Hour,
		RateLimiter:      redisStorage.NewRateLimitStore(rdb),
		RateLimitRules:   middleware.DefaultRateLimitRules(1000, time.Minute),
		HealthCheckers:   []ports.HealthChecker{db, redisStorage.NewHealthCheck(rdb)},
		Metrics:          metrics,
		Gatherer:         registry,
		MaxBodyBytes:     1 << 20,
		Logger:           log,
	})

	app := &testApp{
		server:        httptest.NewServer(router),
		redis:         mr,
		tokens:        tokenSvc,
		platformOwner: settings.PlatformOwnerID,
	}
	t.Cleanup(app.server.Close)
	app.adminToken = app.token(t, uuid.New(), ports.RoleAdmin)
	return app
}

func (a *testApp) token(t *testing.T, userID uuid.UUID, role ports.Role) string {
	t.Helper()
	tok, _, err := a.tokens.Generate(userID, role)
	require.NoError(t, err)
	return tok
}

type apiResponse struct {
	Status int
	Header http.Header
	Data   map[string]interface{}
	Code   string
}

func (a *testApp) call(t *testing.T, method, path, token string, body interface{}, headers ...string) apiResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := apiResponse{Status: resp.StatusCode, Header: resp.Header}
	var envelope struct {
		Data      map[string]interface{} `json:"data"`
		ErrorCode string                 `json:"error_code"`
	}
	if len(raw) > 0 && json.Unmarshal(raw, &envelope) == nil {
		out.Data = envelope.Data
		out.Code = envelope.ErrorCode
	}
	return out
}

// openFunded opens a wallet for a new user and recharges it.
func (a *testApp) openFunded(t *testing.T, amount string) uuid.UUID {
	t.Helper()
	owner := uuid.New()
	resp := a.call(t, http.MethodPost, "/api/v1/admin/wallets/"+owner.String(), a.adminToken, nil)
	require.Equal(t, http.StatusCreated, resp.Status)
	if amount != "0" {
		resp = a.call(t, http.MethodPost, "/api/v1/admin/wallets/"+owner.String()+"/recharges", a.adminToken,
			map[string]string{"amount": amount, "reference": "seed-" + owner.String()})
		require.Equal(t, http.StatusCreated, resp.Status)
	}
	return owner
}

func (a *testApp) globalRate(t *testing.T, rate string) {
	t.Helper()
	resp := a.call(t, http.MethodPost, "/api/v1/admin/commissions", a.adminToken, map[string]interface{}{
		"rate":           rate,
		"effective_from": time.Now().Add(-time.Hour).UTC(),
	})
	require.Equal(t, http.StatusCreated, resp.Status)
}

func (a *testApp) listMultiSlot(t *testing.T, provider uuid.UUID, price string, slots int) string {
	t.Helper()
	in := make([]map[string]string, slots)
	for i := range in {
		in[i] = map[string]string{"profile_name": "Profile " + string(rune('A'+i)), "pin": "1234"}
	}
	resp := a.call(t, http.MethodPost, "/api/v1/admin/products", a.adminToken, map[string]interface{}{
		"provider_id": provider.String(),
		"category":    "streaming",
		"name":        "Family plan",
		"price":       price,
		"kind":        "MULTI_SLOT",
		"email":       "family@example.com",
		"password":    "s3cret",
		"slots":       in,
	})
	require.Equal(t, http.StatusCreated, resp.Status)
	return resp.Data["id"].(string)
}

func (a *testApp) balance(t *testing.T, owner uuid.UUID) string {
	t.Helper()
	resp := a.call(t, http.MethodGet, "/api/v1/wallets/me/balance", a.token(t, owner, ports.RoleBuyer), nil)
	require.Equal(t, http.StatusOK, resp.Status)
	return resp.Data["balance"].(string)
}

func (a *testApp) requireConsistent(t *testing.T, owners ...uuid.UUID) {
	t.Helper()
	for _, owner := range owners {
		resp := a.call(t, http.MethodGet, "/api/v1/admin/wallets/"+owner.String()+"/reconcile", a.adminToken, nil)
		require.Equal(t, http.StatusOK, resp.Status)
		require.Equal(t, true, resp.Data["consistent"], "wallet of %s drifted from its ledger", owner)
	}
}
