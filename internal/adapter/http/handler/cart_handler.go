package handler

import (
	"wallet-settlement/internal/adapter/http/dto"
	"wallet-settlement/internal/adapter/http/middleware"
	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// CartHandler handles cart settlement endpoints.
type CartHandler struct {
	settlementSvc ports.SettlementService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(settlementSvc ports.SettlementService) *CartHandler {
	return &CartHandler{settlementSvc: settlementSvc}
}

// Pay handles POST /api/v1/cart/pay.
func (h *CartHandler) Pay(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.PayCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	payment, err := h.settlementSvc.PayCart(c.Request.Context(), ports.Payer{
		UserID: userID,
		Email:  middleware.Email(c),
	}, domain.PaymentMethod(req.Method))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, payment.CartID.String())
	if payment.Method.UsesWallet() {
		response.OK(c, dto.NewCartPaymentResponse(payment))
		return
	}
	response.Created(c, dto.NewCartPaymentResponse(payment))
}

// FiatCallback handles GET /api/v1/cart/pay/fiat/callback.
func (h *CartHandler) FiatCallback(c *gin.Context) {
	var q dto.GatewayCallbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&q)

	result, err := h.settlementSvc.VerifyDirectFiat(c.Request.Context(), q.Status, q.Authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Transaction != nil {
		c.Set(middleware.CtxAuditResource, result.Transaction.ID.String())
	}
	response.OK(c, dto.NewSettlementResponse(result))
}

// VerifyChain handles POST /api/v1/cart/pay/chain/verify.
func (h *CartHandler) VerifyChain(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ChainVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.settlementSvc.VerifyDirectChain(c.Request.Context(), userID, req.TxHash)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, result.Transaction.ID.String())
	response.OK(c, dto.NewSettlementResponse(result))
}
