package dto

import (
	"time"

	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FiatDepositRequest is the request body for starting a gateway deposit.
// Amount is accepted as a JSON number or string.
type FiatDepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ChainVerifyRequest carries a chain transaction hash to verify.
type ChainVerifyRequest struct {
	TxHash string `json:"tx_hash" binding:"required,tx_hash"`
}

// PayCartRequest is the request body for paying the caller's pending cart.
type PayCartRequest struct {
	Method string `json:"method" binding:"required,pay_method"`
}

// GatewayCallbackQuery is what the gateway appends to the callback URL.
type GatewayCallbackQuery struct {
	Status    string `form:"Status"`
	Authority string `form:"Authority"`
}

// PageQuery selects one page of a listing.
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// WalletResponse never carries key material.
type WalletResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	BalanceFiat  decimal.Decimal `json:"balance_fiat"`
	BalanceChain decimal.Decimal `json:"balance_chain"`
	ChainAddress string          `json:"chain_address,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

// TransactionResponse is the response body for one ledger row.
type TransactionResponse struct {
	ID                string          `json:"id"`
	Kind              string          `json:"kind"`
	Currency          string          `json:"currency"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	ExternalReference string          `json:"external_reference,omitempty"`
	CartID            string          `json:"cart_id,omitempty"`
	GatewayRefID      string          `json:"gateway_ref_id,omitempty"`
	Description       string          `json:"description,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// FiatInitiationResponse tells the client where to send the user.
type FiatInitiationResponse struct {
	Authority     string `json:"authority"`
	PaymentURL    string `json:"payment_url"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// DepositAddressResponse is the wallet's chain deposit address.
type DepositAddressResponse struct {
	Address string `json:"address"`
}

// SettlementResponse is the outcome of a callback or chain verification.
type SettlementResponse struct {
	Transaction     *TransactionResponse `json:"transaction,omitempty"`
	RefID           string               `json:"ref_id,omitempty"`
	AlreadyVerified bool                 `json:"already_verified"`
}

// CartPaymentResponse is the outcome of PayCart.
type CartPaymentResponse struct {
	Method       string                  `json:"method"`
	CartID       string                  `json:"cart_id"`
	Amount       decimal.Decimal         `json:"amount"`
	Transaction  *TransactionResponse    `json:"transaction,omitempty"`
	Fiat         *FiatInitiationResponse `json:"fiat,omitempty"`
	ChainAddress string                  `json:"chain_address,omitempty"`
}

// NewWalletResponse converts a domain wallet.
func NewWalletResponse(w *domain.Wallet) WalletResponse {
	resp := WalletResponse{
		ID:           w.ID.String(),
		UserID:       w.UserID.String(),
		BalanceFiat:  w.BalanceFiat,
		BalanceChain: w.BalanceChain,
		CreatedAt:    w.CreatedAt.Format(time.RFC3339),
	}
	if w.ChainAddress != nil {
		resp.ChainAddress = *w.ChainAddress
	}
	return resp
}

// NewTransactionResponse converts a domain transaction.
func NewTransactionResponse(tx *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                tx.ID.String(),
		Kind:              string(tx.Kind),
		Currency:          string(tx.Currency),
		Amount:            tx.Amount,
		Status:            string(tx.Status),
		ExternalReference: tx.Reference(),
		Description:       tx.Description,
		CreatedAt:         tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CartID != nil {
		resp.CartID = tx.CartID.String()
	}
	if tx.GatewayRefID != nil {
		resp.GatewayRefID = *tx.GatewayRefID
	}
	return resp
}

// NewFiatInitiationResponse converts a gateway initiation.
func NewFiatInitiationResponse(f *ports.FiatInitiation) *FiatInitiationResponse {
	if f == nil {
		return nil
	}
	resp := &FiatInitiationResponse{Authority: f.Authority, PaymentURL: f.PaymentURL}
	if f.TransactionID != uuid.Nil {
		resp.TransactionID = f.TransactionID.String()
	}
	return resp
}

// NewSettlementResponse converts a verify outcome.
func NewSettlementResponse(r *ports.SettlementResult) SettlementResponse {
	resp := SettlementResponse{RefID: r.RefID, AlreadyVerified: r.AlreadyVerified}
	if r.Transaction != nil {
		tx := NewTransactionResponse(r.Transaction)
		resp.Transaction = &tx
	}
	return resp
}

// NewCartPaymentResponse converts a PayCart outcome.
func NewCartPaymentResponse(p *ports.CartPayment) CartPaymentResponse {
	resp := CartPaymentResponse{
		Method:       string(p.Method),
		CartID:       p.CartID.String(),
		Amount:       p.Amount,
		Fiat:         NewFiatInitiationResponse(p.Fiat),
		ChainAddress: p.ChainAddress,
	}
	if p.Transaction != nil {
		tx := NewTransactionResponse(p.Transaction)
		resp.Transaction = &tx
	}
	return resp
}
