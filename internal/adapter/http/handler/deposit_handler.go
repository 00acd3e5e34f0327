package handler

import (
	"wallet-settlement/internal/adapter/http/dto"
	"wallet-settlement/internal/adapter/http/middleware"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles fiat and chain deposit endpoints.
type DepositHandler struct {
	depositSvc ports.DepositService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositSvc ports.DepositService) *DepositHandler {
	return &DepositHandler{depositSvc: depositSvc}
}

// InitiateFiat handles POST /api/v1/wallets/deposit/fiat.
func (h *DepositHandler) InitiateFiat(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.FiatDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	started, err := h.depositSvc.InitiateFiatDeposit(c.Request.Context(), ports.Payer{
		UserID: userID,
		Email:  middleware.Email(c),
	}, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, started.TransactionID.String())
	response.Created(c, dto.NewFiatInitiationResponse(started))
}

// FiatCallback handles GET /api/v1/wallets/deposit/fiat/callback. The
// gateway redirects the payer here with Status and Authority.
func (h *DepositHandler) FiatCallback(c *gin.Context) {
	var q dto.GatewayCallbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&q)

	result, err := h.depositSvc.VerifyFiatDeposit(c.Request.Context(), q.Status, q.Authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Transaction != nil {
		c.Set(middleware.CtxAuditResource, result.Transaction.ID.String())
	}
	response.OK(c, dto.NewSettlementResponse(result))
}

// ChainAddress handles GET /api/v1/wallets/deposit/chain/address.
func (h *DepositHandler) ChainAddress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	addr, err := h.depositSvc.GetDepositAddress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DepositAddressResponse{Address: addr})
}

// VerifyChain handles POST /api/v1/wallets/deposit/chain/verify.
func (h *DepositHandler) VerifyChain(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ChainVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.depositSvc.VerifyChainDeposit(c.Request.Context(), userID, req.TxHash)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, result.Transaction.ID.String())
	response.OK(c, dto.NewSettlementResponse(result))
}
