package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of money movement.
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "deposit"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
	TransactionKindPayment    TransactionKind = "payment"
)

// TransactionStatus represents the lifecycle state of a transaction.
// The only legal transitions are pending -> completed and pending -> failed.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is a ledger record of one money movement against a wallet.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	WalletID          uuid.UUID         `json:"wallet_id"`
	Kind              TransactionKind   `json:"kind"`
	Currency          Currency          `json:"currency"`
	Amount            decimal.Decimal   `json:"amount"`
	ExternalReference *string           `json:"external_reference,omitempty"` // gateway authority or chain tx hash
	CartID            *uuid.UUID        `json:"cart_id,omitempty"`
	Status            TransactionStatus `json:"status"`
	Description       string            `json:"description"`
	GatewayRefID      *string           `json:"gateway_ref_id,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted ||
		t.Status == TransactionStatusFailed
}

// IsCartPayment reports whether t settles a cart.
func (t *Transaction) IsCartPayment() bool {
	return t.Kind == TransactionKindPayment && t.CartID != nil
}

// Reference returns the external reference or "" when unset.
func (t *Transaction) Reference() string {
	if t.ExternalReference == nil {
		return ""
	}
	return *t.ExternalReference
}

// PaymentMethod selects how a cart is paid.
type PaymentMethod string

const (
	PayMethodWalletFiat  PaymentMethod = "wallet_fiat"
	PayMethodWalletChain PaymentMethod = "wallet_chain"
	PayMethodDirectFiat  PaymentMethod = "direct_fiat"
	PayMethodDirectChain PaymentMethod = "direct_chain"
)

// Valid reports whether m is one of the four supported methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PayMethodWalletFiat, PayMethodWalletChain, PayMethodDirectFiat, PayMethodDirectChain:
		return true
	}
	return false
}

// Currency returns the currency the method moves.
func (m PaymentMethod) Currency() Currency {
	if m == PayMethodWalletChain || m == PayMethodDirectChain {
		return CurrencyChain
	}
	return CurrencyFiat
}

// UsesWallet reports whether the method debits a stored balance.
func (m PaymentMethod) UsesWallet() bool {
	return m == PayMethodWalletFiat || m == PayMethodWalletChain
}
