package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency selects one of the two balances a wallet holds.
type Currency string

const (
	CurrencyFiat  Currency = "fiat"
	CurrencyChain Currency = "chain"
)

// Valid reports whether c is a known currency.
func (c Currency) Valid() bool {
	return c == CurrencyFiat || c == CurrencyChain
}

// Wallet is a user's stored balances plus the chain address deposits go to.
// Exactly one wallet exists per user.
type Wallet struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	BalanceFiat         decimal.Decimal `json:"balance_fiat"`
	BalanceChain        decimal.Decimal `json:"balance_chain"`
	ChainAddress        *string         `json:"chain_address,omitempty"`
	EncryptedPrivateKey string          `json:"-"` // AES-256-GCM, never expose
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Balance returns the balance held in currency c.
func (w *Wallet) Balance(c Currency) decimal.Decimal {
	if c == CurrencyChain {
		return w.BalanceChain
	}
	return w.BalanceFiat
}

// HasChainAddress reports whether chain deposits can be accepted.
func (w *Wallet) HasChainAddress() bool {
	return w.ChainAddress != nil && *w.ChainAddress != ""
}
