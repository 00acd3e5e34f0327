package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful money-moving requests after the handler ran.
// Gateway callbacks arrive as GET and are audited too.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var userID *uuid.UUID
		if id, ok := UserID(c); ok {
			userID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       userID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxAuditResource),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

// CtxAuditResource lets a handler name the row it touched.
const CtxAuditResource = "audit_resource_id"

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	switch {
	case path == "/api/v1/wallets" && method == http.MethodPost:
		return domain.AuditActionProvisionWallet, "wallet"
	case path == "/api/v1/wallets/deposit/fiat" && method == http.MethodPost:
		return domain.AuditActionFiatDeposit, "transaction"
	case path == "/api/v1/wallets/deposit/chain/verify" && method == http.MethodPost:
		return domain.AuditActionChainDeposit, "transaction"
	case path == "/api/v1/cart/pay" && method == http.MethodPost:
		return domain.AuditActionCartPayment, "cart"
	case path == "/api/v1/cart/pay/chain/verify" && method == http.MethodPost:
		return domain.AuditActionCartPayment, "transaction"
	case path == "/api/v1/wallets/deposit/fiat/callback" && method == http.MethodGet,
		path == "/api/v1/cart/pay/fiat/callback" && method == http.MethodGet:
		return domain.AuditActionGatewayCallback, "transaction"
	}
	return "", ""
}
