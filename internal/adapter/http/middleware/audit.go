package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	param        string // path parameter holding the resource id
}

var auditRoutes = map[string]auditRoute{
	"POST /api/v1/purchases":                         {domain.AuditActionPurchase, "order", ""},
	"POST /api/v1/orders/:id/dispute":                {domain.AuditActionOpenDispute, "order", "id"},
	"POST /api/v1/admin/orders/:id/resolution":       {domain.AuditActionResolveOrder, "order", "id"},
	"POST /api/v1/admin/wallets/:owner_id":           {domain.AuditActionOpenWallet, "wallet", "owner_id"},
	"POST /api/v1/admin/wallets/:owner_id/recharges": {domain.AuditActionRecharge, "wallet", "owner_id"},
	"PUT /api/v1/admin/wallets/:owner_id/status":     {domain.AuditActionSetWalletStatus, "wallet", "owner_id"},
	"POST /api/v1/admin/commissions":                 {domain.AuditActionCreateCommission, "commission", ""},
	"PATCH /api/v1/admin/commissions/:id":            {domain.AuditActionToggleCommission, "commission", "id"},
	"POST /api/v1/admin/products":                    {domain.AuditActionCreateProduct, "product", ""},
}

// AuditLog records successful write requests listed in auditRoutes, matched
// on the route template.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		route, ok := auditRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		var actorID *uuid.UUID
		if id, ok := UserID(c); ok {
			actorID = &id
		}
		resourceID := ""
		if route.param != "" {
			resourceID = c.Param(route.param)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(response.RequestIDKey),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}
