package handler

import (
	"wallet-settlement/internal/adapter/http/dto"
	"wallet-settlement/internal/adapter/http/middleware"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

// WalletHandler handles wallet provisioning and read endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Provision handles POST /api/v1/wallets.
func (h *WalletHandler) Provision(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	wallet, err := h.walletSvc.Provision(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, wallet.ID.String())
	response.Created(c, dto.NewWalletResponse(wallet))
}

// Me handles GET /api/v1/wallets/me.
func (h *WalletHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	wallet, err := h.walletSvc.GetWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWalletResponse(wallet))
}

// Transactions handles GET /api/v1/wallets/me/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	q := dto.PageQuery{Page: 1, PageSize: defaultPageSize}
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	txns, total, err := h.walletSvc.ListTransactions(c.Request.Context(), userID, q.Page, q.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, dto.NewTransactionResponse(&txns[i]))
	}
	response.Paged(c, items, response.PageMeta{Page: q.Page, PageSize: q.PageSize, Total: total})
}
